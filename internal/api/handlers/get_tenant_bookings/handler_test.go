package get_tenant_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/service/bookings"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

type stubService struct {
	err error
	req *models.GetTenantBookingsRequest
}

func (s *stubService) GetTenantBookings(_ context.Context, req *models.GetTenantBookingsRequest) (*models.BookingListResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}, {ID: 2}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *stubService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/tenants/{tenantId}/bookings", NewHandler(svc, nopLogger{}).Handle)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), 7, false))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Filters(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/tenants/7/bookings?status=approved&active=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookings":[`)
	require.NotNil(t, svc.req.Status)
	assert.Equal(t, "approved", *svc.req.Status)
	assert.True(t, svc.req.OnlyActive)
	assert.Equal(t, int64(7), svc.req.TenantID)
	assert.Equal(t, int64(7), svc.req.Requester.TenantID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/tenants/abc/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/tenants/7/bookings?active=maybe").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{err: bookings.ErrInvalidInput}, "/tenants/7/bookings?status=x").Code)
	assert.Equal(t, http.StatusForbidden, serve(&stubService{err: bookings.ErrAccessDenied}, "/tenants/8/bookings").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: bookings.ErrInternal}, "/tenants/7/bookings").Code)
}
