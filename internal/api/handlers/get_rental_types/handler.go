package get_rental_types

import (
	"net/http"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rental-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetRentalTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /rental-types - Failed to get rental types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
