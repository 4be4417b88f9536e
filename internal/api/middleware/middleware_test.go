package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/rusunawa-id/booking-service/pkg/metrics"
)

func TestAuth(t *testing.T) {
	var (
		gotTenant int64
		gotOK     bool
		gotAdmin  bool
	)
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenant, gotOK = GetTenantID(r.Context())
		gotAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		tenant     string
		role       string
		wantStatus int
		wantTenant int64
		wantAdmin  bool
	}{
		{name: "tenant", tenant: "7", wantStatus: http.StatusNoContent, wantTenant: 7},
		{name: "admin without tenant", role: "Admin", wantStatus: http.StatusNoContent, wantAdmin: true},
		{name: "missing identity", wantStatus: http.StatusUnauthorized},
		{name: "bad tenant id", tenant: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative tenant id", tenant: "-1", role: "admin", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTenant, gotOK, gotAdmin = 0, false, false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.tenant != "" {
				req.Header.Set(HeaderTenantID, tt.tenant)
			}
			if tt.role != "" {
				req.Header.Set(HeaderRole, tt.role)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, tt.wantTenant, gotTenant)
				assert.Equal(t, tt.wantTenant > 0, gotOK)
				assert.Equal(t, tt.wantAdmin, gotAdmin)
			}
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "rusunawa")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "rusunawa"))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("rusunawa", http.MethodGet, "/bookings/{bookingId}", "404")))
}

func TestResolveTenantID(t *testing.T) {
	tenantCtx := WithIdentity(context.Background(), 7, false)
	adminCtx := WithIdentity(context.Background(), 0, true)

	id, ok := ResolveTenantID(tenantCtx, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	id, ok = ResolveTenantID(tenantCtx, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, ok = ResolveTenantID(tenantCtx, 8)
	assert.False(t, ok)

	id, ok = ResolveTenantID(adminCtx, 8)
	assert.True(t, ok)
	assert.Equal(t, int64(8), id)

	_, ok = ResolveTenantID(adminCtx, 0)
	assert.False(t, ok)
}
