package get_room_availability

import (
	"context"
	"time"

	"github.com/rusunawa-id/booking-service/internal/service/rooms/models"
)

type RoomService interface {
	GetAvailability(ctx context.Context, roomID int64, start, end time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
