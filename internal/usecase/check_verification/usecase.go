package check_verification

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/eligibility"
	tenantClient "github.com/rusunawa-id/booking-service/internal/integrations/tenantservice"
)

// UseCase use case проверки документов жильца перед бронированием
type UseCase struct {
	documentRepo DocumentRepository
	tenantClient TenantServiceClient
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	documentRepo DocumentRepository,
	tenantClient TenantServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		documentRepo: documentRepo,
		tenantClient: tenantClient,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute получает профиль и документы жильца и вычисляет вердикт.
// При ошибке получения данных возвращает вердикт "unable to verify" вместе с ErrVerificationUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckVerification: tenant=%d", req.TenantID)

	// 1. Валидация входных данных
	if req.TenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	// 2. Параллельно получаем профиль жильца и его документы
	var (
		tenant    *tenantClient.Tenant
		documents []domain.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tenant, err = uc.tenantClient.GetTenant(gctx, req.TenantID)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = uc.documentRepo.GetByTenantID(gctx, req.TenantID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("CheckVerification: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}

		// 3. Fail closed: бронирование запрещено, пока документы не удалось проверить
		uc.logger.Error("CheckVerification: failed to fetch snapshot for tenant=%d: %v", req.TenantID, err)
		verdict := eligibility.Unavailable()
		uc.metrics.RecordVerdict(string(verdict.StatusType))
		return &Response{TenantID: req.TenantID, Verdict: verdict},
			fmt.Errorf("%w: tenant=%d: %v", ErrVerificationUnavailable, req.TenantID, err)
	}

	// 4. Вычисляем вердикт
	category := tenant.ToDomain().Category()
	verdict := eligibility.Evaluate(documents, category)
	uc.metrics.RecordVerdict(string(verdict.StatusType))

	uc.logger.Info("CheckVerification: tenant=%d, category=%s, canBook=%t, status=%s, missing=%d",
		req.TenantID, category, verdict.CanBook, verdict.StatusType, len(verdict.MissingDocuments))

	return &Response{
		TenantID: req.TenantID,
		Category: category,
		Verdict:  verdict,
	}, nil
}
