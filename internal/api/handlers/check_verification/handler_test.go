package check_verification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/eligibility"
	checkVerification "github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
)

type stubUseCase struct {
	resp *checkVerification.Response
	err  error
	got  *checkVerification.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *checkVerification.Request) (*checkVerification.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, path string, tenantID int64, admin bool) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/tenants/{tenantId}/verification", h.Handle)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), tenantID, admin))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &checkVerification.Response{
		TenantID: 5,
		Category: domain.CategoryNonStudent,
		Verdict: eligibility.Verdict{
			StatusType: eligibility.StatusWarning,
			Message:    "pending",
			MissingDocuments: []eligibility.MissingDocument{
				{ID: 1, Label: "KTP", Status: domain.DocumentPending},
			},
		},
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "/tenants/5/verification", 5, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var body VerificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.CanBook)
	assert.Equal(t, "warning", body.StatusType)
	require.Len(t, body.MissingDocuments, 1)
	assert.Equal(t, "KTP", body.MissingDocuments[0].Label)
	assert.Equal(t, int64(5), uc.got.TenantID)
}

func TestHandle_Unavailable(t *testing.T) {
	uc := &stubUseCase{
		resp: &checkVerification.Response{TenantID: 5, Verdict: eligibility.Unavailable()},
		err:  errors.Join(checkVerification.ErrVerificationUnavailable, errors.New("db down")),
	}

	rec := serve(NewHandler(uc, nopLogger{}), "/tenants/5/verification", 5, false)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body VerificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.CanBook)
	assert.Equal(t, "error", body.StatusType)
	assert.Equal(t, eligibility.Unavailable().Message, body.Message)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		caller   int64
		admin    bool
		err      error
		wantCode int
	}{
		{name: "bad id", path: "/tenants/x/verification", caller: 5, wantCode: http.StatusBadRequest},
		{name: "other tenant", path: "/tenants/6/verification", caller: 5, wantCode: http.StatusForbidden},
		{name: "not found", path: "/tenants/6/verification", admin: true, err: checkVerification.ErrTenantNotFound, wantCode: http.StatusNotFound},
		{name: "internal", path: "/tenants/5/verification", caller: 5, err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, nopLogger{}), tt.path, tt.caller, tt.admin)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
