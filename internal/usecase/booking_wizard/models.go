package booking_wizard

import "time"

// StartRequest модель запроса на открытие мастера бронирования
type StartRequest struct {
	TenantID     int64
	RoomID       int64
	RentalTypeID int64 // 0 - тип аренды комнаты по умолчанию
}

// SessionRequest идентифицирует сессию и её владельца
type SessionRequest struct {
	TenantID  int64
	SessionID string
}

// DatesRequest модель запроса выбора периода
type DatesRequest struct {
	SessionRequest
	RentalTypeID int64 // 0 - оставить текущий
	StartDate    time.Time
	EndDate      time.Time
	MonthsToRent int
}

// Результаты переходов для метрик
const (
	resultOK       = "ok"
	resultRefused  = "refused"
	resultStale    = "stale"
	resultRejected = "rejected"
)
