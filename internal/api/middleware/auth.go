package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
)

const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderRole     = "X-Role"

	RoleAdmin = "admin"
)

type contextKey string

const (
	tenantIDKey contextKey = "tenant_id"
	isAdminKey  contextKey = "is_admin"
)

// Auth извлекает идентичность из заголовков, выставленных API gateway.
// Жилец передает X-Tenant-ID, администратор X-Role: admin (X-Tenant-ID для него опционален).
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin := strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderRole)), RoleAdmin)

		ctx := r.Context()
		raw := strings.TrimSpace(r.Header.Get(HeaderTenantID))
		if raw != "" {
			tenantID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || tenantID <= 0 {
				handlers.RespondUnauthorized(w, "X-Tenant-ID tidak valid")
				return
			}
			ctx = context.WithValue(ctx, tenantIDKey, tenantID)
		} else if !isAdmin {
			handlers.RespondUnauthorized(w, "header X-Tenant-ID wajib diisi")
			return
		}

		ctx = context.WithValue(ctx, isAdminKey, isAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTenantID возвращает ID жильца из контекста
func GetTenantID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(tenantIDKey).(int64)
	return id, ok
}

// IsAdmin возвращает true для запросов администратора
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(isAdminKey).(bool)
	return admin
}

// WithIdentity кладет идентичность в контекст (используется в тестах handlers)
func WithIdentity(ctx context.Context, tenantID int64, isAdmin bool) context.Context {
	if tenantID > 0 {
		ctx = context.WithValue(ctx, tenantIDKey, tenantID)
	}
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// ResolveTenantID определяет жильца, от имени которого выполняется запрос.
// Администратор может указать любого жильца, жилец только себя (0 означает "себя").
func ResolveTenantID(ctx context.Context, requested int64) (int64, bool) {
	callerID, hasTenant := GetTenantID(ctx)

	if requested > 0 {
		if IsAdmin(ctx) || (hasTenant && requested == callerID) {
			return requested, true
		}
		return 0, false
	}

	return callerID, hasTenant
}
