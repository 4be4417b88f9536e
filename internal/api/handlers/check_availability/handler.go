package check_availability

import (
	"errors"
	"net/http"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	checkAvailability "github.com/rusunawa-id/booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody  = "body permintaan tidak valid"
	msgInvalidDate         = "format tanggal tidak valid, gunakan YYYY-MM-DD"
	msgTenantRequired      = "penghuni tidak dapat ditentukan"
	msgRoomNotFound        = "kamar tidak ditemukan"
	msgRentalTypeNotFound  = "tipe sewa tidak ditemukan"
	msgCheckUnavailable    = "tidak dapat memeriksa ketersediaan, silakan coba lagi nanti"
	reasonCheckUnavailable = "conflict_check_unavailable"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /availability/check - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tenantID, ok := middleware.ResolveTenantID(r.Context(), req.TenantID)
	if !ok {
		h.logger.Warn("POST /availability/check - Tenant cannot be resolved: requested=%d", req.TenantID)
		handlers.RespondForbidden(w, msgTenantRequired)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if msg, ok := handlers.PeriodErrorMessage(err); ok {
			h.logger.Warn("POST /availability/check - Invalid period: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msg)
			return
		}

		switch {
		case errors.Is(err, checkAvailability.ErrConflictCheckUnavailable) && result != nil:
			h.logger.Error("POST /availability/check - Conflict check unavailable: tenant_id=%d, error=%v", tenantID, err)
			resp := FromUseCaseResponse(result)
			resp.Reason = reasonCheckUnavailable
			resp.Message = msgCheckUnavailable
			handlers.RespondJSON(w, http.StatusServiceUnavailable, resp)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("POST /availability/check - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAvailability.ErrRentalTypeNotFound):
			h.logger.Warn("POST /availability/check - Rental type not found: rental_type_id=%d", req.RentalTypeID)
			handlers.RespondNotFound(w, msgRentalTypeNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - tenant_id=%d, room_id=%d, available=%t",
		tenantID, req.RoomID, result.Result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
