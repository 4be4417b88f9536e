package get_rental_types

import (
	"context"

	"github.com/rusunawa-id/booking-service/internal/service/rooms/models"
)

type RoomService interface {
	GetRentalTypes(ctx context.Context) (*models.RentalTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
