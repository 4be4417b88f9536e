package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

func TestGetByTenantID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	uploaded := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, tenant_id, doc_type_id, status, uploaded_at FROM tenant_documents WHERE tenant_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "doc_type_id", "status", "uploaded_at"}).
			AddRow(int64(1), int64(7), int64(1), "approved", uploaded).
			AddRow(int64(2), int64(7), int64(3), "pending", nil))

	docs, err := NewRepository(db).GetByTenantID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, domain.DocumentApproved, docs[0].Status)
	assert.Equal(t, uploaded, docs[0].UploadedAt)
	assert.Equal(t, domain.DocTypeFamilyCard.ID, docs[1].DocTypeID)
	assert.True(t, docs[1].UploadedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTenantID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM tenant_documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "doc_type_id", "status", "uploaded_at"}))

	docs, err := NewRepository(db).GetByTenantID(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestGetByTenantID_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM tenant_documents").WillReturnError(errors.New("timeout"))

	_, err = NewRepository(db).GetByTenantID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrExecQuery)
}
