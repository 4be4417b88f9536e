package document

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/pkg/dbmetrics"
	"github.com/rusunawa-id/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий документов жильцов (KTP, договор, KK)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория документов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenantID получает все загруженные документы жильца.
// Пустой результат не является ошибкой: отсутствующие документы считаются missing при оценке.
func (r *Repository) GetByTenantID(ctx context.Context, tenantID int64) ([]domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"doc_type_id",
		"status",
		"uploaded_at",
	).
		From("tenant_documents").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("doc_type_id ASC", "uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	documents := make([]domain.Document, 0)
	for rows.Next() {
		var doc domain.Document
		var status string
		var uploadedAt sql.NullTime

		if err := rows.Scan(&doc.ID, &doc.TenantID, &doc.DocTypeID, &status, &uploadedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByTenantID - scan row: %v", ErrScanRow, err)
		}

		doc.Status = domain.DocumentStatus(status)
		doc.UploadedAt = uploadedAt.Time
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - rows error: %v", ErrScanRow, err)
	}

	return documents, nil
}
