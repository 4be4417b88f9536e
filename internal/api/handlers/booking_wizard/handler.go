package booking_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/reservation"
	wizardUC "github.com/rusunawa-id/booking-service/internal/usecase/booking_wizard"
	createBooking "github.com/rusunawa-id/booking-service/internal/usecase/create_booking"
	"github.com/rusunawa-id/booking-service/internal/wizard"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgInvalidDate        = "format tanggal tidak valid, gunakan YYYY-MM-DD"
	msgTenantRequired     = "header X-Tenant-ID wajib diisi"
	msgSessionNotFound    = "sesi pemesanan tidak ditemukan"
	msgSessionExpired     = "sesi pemesanan telah berakhir, silakan mulai kembali"
	msgForbidden          = "akses ditolak"
	msgRoomNotFound       = "kamar tidak ditemukan"
	msgRentalTypeNotFound = "tipe sewa tidak ditemukan"
	msgConcurrentUpdate   = "sesi pemesanan telah berubah, silakan muat ulang"
	msgStaleResult        = "hasil pemeriksaan sudah tidak berlaku, silakan periksa kembali"
	msgNoPreviousStep     = "tidak ada langkah sebelumnya"
	msgCompleted          = "pemesanan sudah dikonfirmasi"
	msgTransitionRefused  = "pilih tanggal yang tersedia sebelum melanjutkan"
	msgInvalidStep        = "tindakan tidak tersedia pada langkah ini"
	msgNotEligible        = "dokumen Anda belum terverifikasi, pemesanan belum dapat dilakukan"
	msgServiceDown        = "layanan sedang tidak tersedia, silakan coba lagi nanti"
	msgSubmissionRejected = "pemesanan ditolak"
)

type Handler struct {
	useCase BookingWizardUseCase
	logger  Logger
}

func NewHandler(useCase BookingWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Start POST /api/v1/wizard
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgTenantRequired)
		return
	}

	var req StartRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /wizard - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.useCase.Start(r.Context(), &wizardUC.StartRequest{
		TenantID:     tenantID,
		RoomID:       req.RoomID,
		RentalTypeID: req.RentalTypeID,
	})
	if err != nil {
		h.respondError(w, "POST /wizard", err, state)
		return
	}

	h.logger.Info("POST /wizard - Session started: session_id=%s, tenant_id=%d", state.SessionID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromState(state))
}

// Get GET /api/v1/wizard/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	state, err := h.useCase.Get(r.Context(), session)
	if err != nil {
		h.respondError(w, "GET /wizard/{id}", err, state)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// SelectDates PUT /api/v1/wizard/{sessionId}/dates
func (h *Handler) SelectDates(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /wizard/{id}/dates - %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(*session)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Недоступный период не ошибка: причина в lastError, canProceed = false
	state, err := h.useCase.SelectDates(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "PUT /wizard/{id}/dates", err, state)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// Next POST /api/v1/wizard/{sessionId}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	state, err := h.useCase.Next(r.Context(), session)
	if err != nil {
		h.respondError(w, "POST /wizard/{id}/next", err, state)
		return
	}

	h.logger.Info("POST /wizard/{id}/next - session_id=%s, step=%s", state.SessionID, state.Step)
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

// Previous POST /api/v1/wizard/{sessionId}/previous
func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	state, err := h.useCase.Previous(r.Context(), session)
	if err != nil {
		h.respondError(w, "POST /wizard/{id}/previous", err, state)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*wizardUC.SessionRequest, bool) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgTenantRequired)
		return nil, false
	}

	return &wizardUC.SessionRequest{
		TenantID:  tenantID,
		SessionID: mux.Vars(r)["sessionId"],
	}, true
}

// respondError пишет ошибку; если состояние известно, оно возвращается вместе с ошибкой
func (h *Handler) respondError(w http.ResponseWriter, op string, err error, state *wizard.State) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("%s - %v", op, err)
	} else {
		h.logger.Warn("%s - %v", op, err)
	}

	if status == http.StatusInternalServerError {
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, status, &ErrorResponse{
		Code:    status,
		Message: message,
		State:   FromState(state),
	})
}

func errorStatus(err error) (int, string) {
	if msg, ok := handlers.PeriodErrorMessage(err); ok {
		return http.StatusBadRequest, msg
	}

	switch {
	case errors.Is(err, wizardUC.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidRequestBody
	case errors.Is(err, wizardUC.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, wizardUC.ErrSessionNotFound):
		return http.StatusNotFound, msgSessionNotFound
	case errors.Is(err, wizard.ErrSessionExpired):
		return http.StatusGone, msgSessionExpired
	case errors.Is(err, wizardUC.ErrRoomNotFound):
		return http.StatusNotFound, msgRoomNotFound
	case errors.Is(err, wizardUC.ErrRentalTypeNotFound):
		return http.StatusNotFound, msgRentalTypeNotFound

	case errors.Is(err, wizardUC.ErrConcurrentUpdate):
		return http.StatusConflict, msgConcurrentUpdate
	case errors.Is(err, wizard.ErrStaleResult):
		return http.StatusConflict, msgStaleResult
	case errors.Is(err, wizard.ErrNoPreviousStep):
		return http.StatusConflict, msgNoPreviousStep
	case errors.Is(err, wizard.ErrWizardCompleted):
		return http.StatusConflict, msgCompleted
	case errors.Is(err, wizard.ErrTransitionRefused):
		return http.StatusConflict, msgTransitionRefused
	case errors.Is(err, wizard.ErrInvalidStep):
		return http.StatusConflict, msgInvalidStep

	// Отказ при отправке бронирования
	case errors.Is(err, createBooking.ErrNotEligible):
		return http.StatusUnprocessableEntity, msgNotEligible
	case errors.Is(err, createBooking.ErrVerificationUnavailable),
		errors.Is(err, reservation.ErrConflictCheckUnavailable):
		return http.StatusServiceUnavailable, msgServiceDown
	case errors.Is(err, reservation.ErrDateBlackout),
		errors.Is(err, reservation.ErrActiveBookingConflict),
		errors.Is(err, createBooking.ErrAmountMismatch),
		errors.Is(err, createBooking.ErrSubmissionConflict):
		return http.StatusConflict, msgSubmissionRejected
	}

	return http.StatusInternalServerError, ""
}
