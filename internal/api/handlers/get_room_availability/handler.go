package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/service/rooms"
)

const (
	msgInvalidRoomID = "ID kamar tidak valid"
	msgInvalidDate   = "parameter startDate dan endDate wajib diisi dengan format YYYY-MM-DD"
	msgInvalidRange  = "rentang tanggal tidak valid"
	msgRoomNotFound  = "kamar tidak ditemukan"
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

// Handle GET /api/v1/rooms/{roomId}/availability?startDate=2025-03-01&endDate=2025-04-01
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Парсим период из query параметров
	query := r.URL.Query()
	start, startErr := handlers.ParseDate(query.Get("startDate"))
	end, endErr := handlers.ParseDate(query.Get("endDate"))
	if startErr != nil || endErr != nil || start.IsZero() || end.IsZero() {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid dates: start=%q, end=%q",
			query.Get("startDate"), query.Get("endDate"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetAvailability(r.Context(), roomID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidRange):
			h.logger.Warn("GET /rooms/{roomId}/availability - %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{roomId}/availability - Failed to get availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomId}/availability - room_id=%d, days=%d", roomID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
