package tenantservice

import "github.com/rusunawa-id/booking-service/internal/domain"

// TenantType тип жильца из TenantService ("mahasiswa", "umum", ...)
type TenantType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tenant модель жильца из TenantService
type Tenant struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	TenantType TenantType `json:"tenantType"`
}

// ToDomain преобразует ответ сервиса в доменную модель
func (t *Tenant) ToDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:             t.ID,
		Name:           t.Name,
		TenantTypeName: t.TenantType.Name,
	}
}

// ErrorResponse модель ошибки от TenantService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
