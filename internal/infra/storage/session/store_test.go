package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/reservation"
	"github.com/rusunawa-id/booking-service/internal/wizard"
)

type store interface {
	Get(ctx context.Context, sessionID string) (*wizard.State, error)
	Save(ctx context.Context, state wizard.State, expectedRevision int64) error
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, 30*time.Minute), mr
}

func stores(t *testing.T) map[string]store {
	redisStore, _ := newRedisStore(t)
	return map[string]store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			state := wizard.New("sess-1", 7, 3, 1, time.Now(), 30*time.Minute)
			state.Quote = &reservation.Result{IsAvailable: true, DurationUnits: 4, TotalAmount: decimal.NewFromInt(200000)}

			require.NoError(t, s.Save(ctx, state, 0))

			got, err := s.Get(ctx, "sess-1")
			require.NoError(t, err)
			assert.Equal(t, state.Revision, got.Revision)
			assert.Equal(t, wizard.StepRoomDetails, got.Step)
			assert.True(t, got.Quote.TotalAmount.Equal(decimal.NewFromInt(200000)))
		})
	}
}

func TestStore_RevisionConflict(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			state := wizard.New("sess-2", 7, 3, 1, time.Now(), 30*time.Minute)
			require.NoError(t, s.Save(ctx, state, 0))

			// Повторное создание той же сессии
			assert.ErrorIs(t, s.Save(ctx, state, 0), ErrRevisionConflict)

			next, err := state.Next()
			require.NoError(t, err)
			require.NoError(t, s.Save(ctx, next, state.Revision))

			// Запись, вычисленная от старой ревизии
			assert.ErrorIs(t, s.Save(ctx, next, state.Revision), ErrRevisionConflict)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestMemoryStore_Expired(t *testing.T) {
	s := NewMemoryStore()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created.Add(time.Hour) }

	require.NoError(t, s.Save(context.Background(), wizard.New("old", 7, 3, 1, created, 30*time.Minute), 0))

	_, err := s.Get(context.Background(), "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_TTL(t *testing.T) {
	s, mr := newRedisStore(t)
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(context.Background(), wizard.New("ttl", 7, 3, 1, now, 10*time.Minute), 0))

	assert.Equal(t, 10*time.Minute, mr.TTL(keyPrefix+"ttl"))

	mr.FastForward(11 * time.Minute)
	_, err := s.Get(context.Background(), "ttl")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
