package check_availability

import (
	"errors"

	"github.com/rusunawa-id/booking-service/internal/reservation"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrRentalTypeNotFound возвращается, когда тип аренды не найден
	ErrRentalTypeNotFound = errors.New("check_availability: rental type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrConflictCheckUnavailable возвращается, когда не удалось получить бронирования или закрытые даты.
	// Вместе с ошибкой возвращается результат reservation.Unavailable().
	ErrConflictCheckUnavailable = reservation.ErrConflictCheckUnavailable

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
