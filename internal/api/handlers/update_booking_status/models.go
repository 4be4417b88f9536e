package update_booking_status

import (
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected cancelled checked_in completed"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(requester models.Requester) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Requester: requester,
		Status:    r.Status,
	}
}
