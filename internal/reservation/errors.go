package reservation

import "errors"

var (
	// ErrDateRangeInvalid возвращается, когда даты не указаны или начало не раньше конца
	ErrDateRangeInvalid = errors.New("reservation: invalid date range")

	// ErrInvalidMonths возвращается, когда число месяцев вне диапазона 1..12
	ErrInvalidMonths = errors.New("reservation: months to rent must be between 1 and 12")

	// ErrDurationTooShort возвращается, когда помесячная аренда короче 30 дней
	ErrDurationTooShort = errors.New("reservation: monthly stay is shorter than 30 days")

	// ErrUnknownRentalType возвращается для типа аренды без модели цены
	ErrUnknownRentalType = errors.New("reservation: unknown rental type")

	// ErrRentalTypeMismatch возвращается, когда тип аренды не совпадает с типом аренды комнаты.
	// Ставка комнаты задана за единицу её собственного типа аренды.
	ErrRentalTypeMismatch = errors.New("reservation: rental type does not match the room")

	// ErrInvalidRate возвращается, когда у комнаты не задана положительная ставка
	ErrInvalidRate = errors.New("reservation: room rate must be positive")

	// ErrDateBlackout возвращается, когда один из дней периода недоступен
	ErrDateBlackout = errors.New("reservation: room is unavailable on a requested date")

	// ErrActiveBookingConflict возвращается, когда у жильца уже есть активное бронирование
	ErrActiveBookingConflict = errors.New("reservation: tenant already has an active booking")

	// ErrConflictCheckUnavailable возвращается, когда снапшот бронирований получить не удалось
	ErrConflictCheckUnavailable = errors.New("reservation: unable to verify booking conflicts")
)
