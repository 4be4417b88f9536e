package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rusunawa-id/booking-service/internal/wizard"
)

const keyPrefix = "rusunawa:wizard:"

// RedisStore хранит сессии мастера в Redis с TTL, равным сроку жизни сессии.
// Оптимистичная проверка ревизии выполняется через WATCH/MULTI.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore создает хранилище сессий поверх клиента Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return keyPrefix + sessionID
}

// Get возвращает сессию по ID
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*wizard.State, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}

	var state wizard.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrDecode, err)
	}

	return &state, nil
}

// Save сохраняет состояние, если текущая ревизия в Redis равна expectedRevision.
// Параллельная запись между WATCH и EXEC также считается конфликтом ревизий.
func (s *RedisStore) Save(ctx context.Context, state wizard.State, expectedRevision int64) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	key := s.key(state.SessionID)
	ttl := s.ttl
	if !state.ExpiresAt.IsZero() {
		if left := state.ExpiresAt.Sub(s.now()); left > 0 {
			ttl = left
		}
	}

	txf := func(tx *redis.Tx) error {
		var current int64
		exists := true

		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			exists = false
		case err != nil:
			return fmt.Errorf("%w: Save - read current: %v", ErrStorage, err)
		default:
			var stored wizard.State
			if err := json.Unmarshal(raw, &stored); err != nil {
				return fmt.Errorf("%w: Save - read current: %v", ErrDecode, err)
			}
			current = stored.Revision
		}

		if err := checkRevision(current, exists, expectedRevision); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}

	err = s.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%w: concurrent write", ErrRevisionConflict)
	case errors.Is(err, ErrRevisionConflict), errors.Is(err, ErrDecode), errors.Is(err, ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: Save: %v", ErrStorage, err)
	}
}
