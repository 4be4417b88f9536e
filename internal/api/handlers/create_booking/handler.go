package create_booking

import (
	"errors"
	"net/http"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/reservation"
	createBooking "github.com/rusunawa-id/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "body permintaan tidak valid"
	msgInvalidDate           = "format tanggal tidak valid, gunakan YYYY-MM-DD"
	msgTenantRequired        = "penghuni tidak dapat ditentukan"
	msgTenantNotFound        = "penghuni tidak ditemukan"
	msgRoomNotFound          = "kamar tidak ditemukan"
	msgRentalTypeNotFound    = "tipe sewa tidak ditemukan"
	msgNotEligible           = "dokumen Anda belum terverifikasi, pemesanan belum dapat dilakukan"
	msgVerificationDown      = "tidak dapat memverifikasi dokumen, silakan coba lagi nanti"
	msgConflictCheckDown     = "tidak dapat memeriksa ketersediaan, silakan coba lagi nanti"
	msgAmountMismatch        = "total harga telah berubah, silakan periksa kembali pemesanan Anda"
	msgSubmissionConflict    = "pemesanan lain sedang diproses, silakan coba lagi"
	reasonAmountMismatch     = "amount_mismatch"
	reasonSubmissionConflict = "submission_conflict"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tenantID, ok := middleware.ResolveTenantID(r.Context(), req.TenantID)
	if !ok {
		h.logger.Warn("POST /bookings - Tenant cannot be resolved: requested=%d", req.TenantID)
		handlers.RespondForbidden(w, msgTenantRequired)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err, result, tenantID, req.RoomID)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, tenant_id=%d, room_id=%d",
		result.Booking.ID, tenantID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, result *createBooking.Response, tenantID, roomID int64) {
	if msg, ok := handlers.PeriodErrorMessage(err); ok {
		h.logger.Warn("POST /bookings - Invalid period: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	var quote reservation.Result
	if result != nil {
		quote = result.Result
	}
	if reason, msg, ok := handlers.RejectionMessage(err, quote); ok {
		h.logger.Warn("POST /bookings - Rejected: tenant_id=%d, room_id=%d, error=%v", tenantID, roomID, err)
		resp := &RejectionResponse{Code: http.StatusConflict, Message: msg, Reason: reason}
		if result != nil {
			resp.Quote = handlers.FromReservationResult(quote)
		}
		handlers.RespondJSON(w, http.StatusConflict, resp)
		return
	}

	switch {
	case errors.Is(err, createBooking.ErrAmountMismatch):
		h.logger.Warn("POST /bookings - Amount mismatch: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondJSON(w, http.StatusConflict, &RejectionResponse{
			Code: http.StatusConflict, Message: msgAmountMismatch, Reason: reasonAmountMismatch,
		})

	case errors.Is(err, createBooking.ErrSubmissionConflict):
		h.logger.Warn("POST /bookings - Concurrent submission: tenant_id=%d", tenantID)
		handlers.RespondJSON(w, http.StatusConflict, &RejectionResponse{
			Code: http.StatusConflict, Message: msgSubmissionConflict, Reason: reasonSubmissionConflict,
		})

	case errors.Is(err, createBooking.ErrNotEligible):
		h.logger.Warn("POST /bookings - Tenant not eligible: tenant_id=%d", tenantID)
		handlers.RespondUnprocessable(w, msgNotEligible)

	case errors.Is(err, createBooking.ErrVerificationUnavailable):
		h.logger.Error("POST /bookings - Verification unavailable: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondServiceUnavailable(w, msgVerificationDown)

	case errors.Is(err, reservation.ErrConflictCheckUnavailable):
		h.logger.Error("POST /bookings - Conflict check unavailable: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondServiceUnavailable(w, msgConflictCheckDown)

	case errors.Is(err, createBooking.ErrTenantNotFound):
		h.logger.Warn("POST /bookings - Tenant not found: tenant_id=%d", tenantID)
		handlers.RespondNotFound(w, msgTenantNotFound)

	case errors.Is(err, createBooking.ErrRoomNotFound):
		h.logger.Warn("POST /bookings - Room not found: room_id=%d", roomID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, createBooking.ErrRentalTypeNotFound):
		h.logger.Warn("POST /bookings - Rental type not found: tenant_id=%d", tenantID)
		handlers.RespondNotFound(w, msgRentalTypeNotFound)

	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: tenant_id=%d, room_id=%d, error=%v",
			tenantID, roomID, err)
		handlers.RespondInternalError(w)
	}
}
