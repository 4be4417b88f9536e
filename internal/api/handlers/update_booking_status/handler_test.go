package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/service/bookings"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

type stubService struct {
	err error
	req *models.UpdateStatusRequest
}

func (s *stubService) UpdateStatus(_ context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: bookingID, Status: req.Status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		err      error
		wantCode int
	}{
		{name: "approve", path: "/bookings/10/status", body: `{"status":"approved"}`, wantCode: http.StatusOK},
		{name: "bad id", path: "/bookings/x/status", body: `{"status":"approved"}`, wantCode: http.StatusBadRequest},
		{name: "unknown status", path: "/bookings/10/status", body: `{"status":"archived"}`, wantCode: http.StatusBadRequest},
		{name: "pending is not a target", path: "/bookings/10/status", body: `{"status":"pending"}`, wantCode: http.StatusBadRequest},
		{name: "not found", path: "/bookings/10/status", body: `{"status":"approved"}`, err: bookings.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "not admin", path: "/bookings/10/status", body: `{"status":"approved"}`, err: bookings.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "transition", path: "/bookings/10/status", body: `{"status":"completed"}`, err: bookings.ErrInvalidTransition, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			r := mux.NewRouter()
			r.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle)

			req := httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithIdentity(req.Context(), 0, true))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.True(t, svc.req.Requester.IsAdmin)
				assert.Contains(t, rec.Body.String(), `"status":"approved"`)
			}
		})
	}
}
