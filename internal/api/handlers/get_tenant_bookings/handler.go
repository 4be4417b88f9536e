package get_tenant_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/service/bookings"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidTenantID = "ID penghuni tidak valid"
	msgInvalidStatus   = "status pemesanan tidak valid"
	msgInvalidActive   = "parameter active tidak valid"
	msgForbidden       = "akses ditolak"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/bookings?status=approved&active=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tenantId из URL
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{tenantId}/bookings - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Получаем фильтры из query параметров (опционально)
	query := r.URL.Query()
	var statusPtr *string
	if status := query.Get("status"); status != "" {
		statusPtr = &status
	}

	onlyActive := false
	if raw := query.Get("active"); raw != "" {
		onlyActive, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /tenants/{tenantId}/bookings - Invalid active flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
	}

	callerID, _ := middleware.GetTenantID(r.Context())
	serviceReq := &models.GetTenantBookingsRequest{
		Requester:  models.Requester{TenantID: callerID, IsAdmin: middleware.IsAdmin(r.Context())},
		TenantID:   tenantID,
		Status:     statusPtr,
		OnlyActive: onlyActive,
	}

	result, err := h.service.GetTenantBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /tenants/{tenantId}/bookings - Access denied: tenant_id=%d, caller=%d", tenantID, callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /tenants/{tenantId}/bookings - Failed to get bookings: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{tenantId}/bookings - Bookings retrieved successfully: tenant_id=%d, count=%d",
		tenantID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
