package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/service/bookings"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

type stubService struct {
	err       error
	requester models.Requester
}

func (s *stubService) GetByID(_ context.Context, id int64, requester models.Requester) (*models.BookingResponse, error) {
	s.requester = requester
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, TenantID: requester.TenantID, Status: "pending"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{name: "ok", path: "/bookings/10", wantCode: http.StatusOK},
		{name: "bad id", path: "/bookings/abc", wantCode: http.StatusBadRequest},
		{name: "not found", path: "/bookings/10", err: bookings.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "forbidden", path: "/bookings/10", err: bookings.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "internal", path: "/bookings/10", err: bookings.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			r := mux.NewRouter()
			r.HandleFunc("/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req = req.WithContext(middleware.WithIdentity(req.Context(), 7, false))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"id":10`)
				assert.Equal(t, models.Requester{TenantID: 7}, svc.requester)
			}
		})
	}
}
