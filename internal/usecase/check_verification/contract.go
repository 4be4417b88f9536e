package check_verification

import (
	"context"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/integrations/tenantservice"
)

// DocumentRepository интерфейс репозитория документов жильцов
type DocumentRepository interface {
	GetByTenantID(ctx context.Context, tenantID int64) ([]domain.Document, error)
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetTenant(ctx context.Context, tenantID int64) (*tenantservice.Tenant, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	RecordVerdict(statusType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
