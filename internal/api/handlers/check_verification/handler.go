package check_verification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	checkVerification "github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
)

const (
	msgInvalidTenantID = "ID penghuni tidak valid"
	msgForbidden       = "akses ditolak"
	msgTenantNotFound  = "penghuni tidak ditemukan"
)

type Handler struct {
	useCase CheckVerificationUseCase
	logger  Logger
}

func NewHandler(useCase CheckVerificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/verification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("GET /tenants/{id}/verification - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Жилец видит только свой статус, администратор любой
	if callerID, _ := middleware.GetTenantID(r.Context()); callerID != tenantID && !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /tenants/{id}/verification - Access denied: tenant_id=%d, caller=%d", tenantID, callerID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkVerification.Request{TenantID: tenantID})
	if err != nil {
		switch {
		case errors.Is(err, checkVerification.ErrVerificationUnavailable) && result != nil:
			// Вердикт "unable to verify" отдается клиенту вместе с 503
			h.logger.Error("GET /tenants/{id}/verification - Verification unavailable: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, FromUseCaseResponse(result))

		case errors.Is(err, checkVerification.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/verification - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, checkVerification.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTenantID)

		default:
			h.logger.Error("GET /tenants/{id}/verification - Failed to verify: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/verification - Verdict: tenant_id=%d, can_book=%t", tenantID, result.Verdict.CanBook)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
