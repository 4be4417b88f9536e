package booking_wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking_wizard: session not found")

	// ErrForbidden возвращается при обращении к чужой сессии
	ErrForbidden = errors.New("booking_wizard: session belongs to another tenant")

	// ErrConcurrentUpdate возвращается, когда сессию изменили параллельным запросом
	ErrConcurrentUpdate = errors.New("booking_wizard: session was modified concurrently")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("booking_wizard: room not found")

	// ErrRentalTypeNotFound возвращается, когда тип аренды не найден
	ErrRentalTypeNotFound = errors.New("booking_wizard: rental type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)
