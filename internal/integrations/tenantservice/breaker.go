package tenantservice

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// newCircuitBreaker размыкается после трёх подряд неудачных запросов
// и пропускает один пробный запрос через 10 секунд.
// Ответ 404 считается успешным: сервис работает, жильца просто нет.
func newCircuitBreaker(name string, log Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker '%s' changed from '%s' to '%s'", name, from, to)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrTenantNotFound)
		},
	})
}
