package check_verification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/eligibility"
	"github.com/rusunawa-id/booking-service/internal/integrations/tenantservice"
)

type mockDocuments struct{ mock.Mock }

func (m *mockDocuments) GetByTenantID(ctx context.Context, tenantID int64) ([]domain.Document, error) {
	args := m.Called(ctx, tenantID)
	docs, _ := args.Get(0).([]domain.Document)
	return docs, args.Error(1)
}

type mockTenants struct{ mock.Mock }

func (m *mockTenants) GetTenant(ctx context.Context, tenantID int64) (*tenantservice.Tenant, error) {
	args := m.Called(ctx, tenantID)
	tenant, _ := args.Get(0).(*tenantservice.Tenant)
	return tenant, args.Error(1)
}

type mockMetrics struct{ verdicts []string }

func (m *mockMetrics) RecordVerdict(statusType string) { m.verdicts = append(m.verdicts, statusType) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func student() *tenantservice.Tenant {
	return &tenantservice.Tenant{ID: 7, Name: "Siti", TenantType: tenantservice.TenantType{ID: 1, Name: "mahasiswa"}}
}

func TestExecute_StudentFullyApproved(t *testing.T) {
	docs := &mockDocuments{}
	tenants := &mockTenants{}
	metrics := &mockMetrics{}
	uc := NewUseCase(docs, tenants, metrics, nopLogger{})

	tenants.On("GetTenant", mock.Anything, int64(7)).Return(student(), nil)
	docs.On("GetByTenantID", mock.Anything, int64(7)).Return([]domain.Document{
		{ID: 1, TenantID: 7, DocTypeID: domain.DocTypeKTP.ID, Status: domain.DocumentApproved},
		{ID: 2, TenantID: 7, DocTypeID: domain.DocTypeAgreementLetter.ID, Status: domain.DocumentApproved},
		{ID: 3, TenantID: 7, DocTypeID: domain.DocTypeFamilyCard.ID, Status: domain.DocumentApproved},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 7})

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryStudent, resp.Category)
	assert.True(t, resp.Verdict.CanBook)
	assert.Equal(t, eligibility.StatusSuccess, resp.Verdict.StatusType)
	assert.Equal(t, []string{"success"}, metrics.verdicts)
}

func TestExecute_StudentMissingFamilyCard(t *testing.T) {
	docs := &mockDocuments{}
	tenants := &mockTenants{}
	uc := NewUseCase(docs, tenants, &mockMetrics{}, nopLogger{})

	tenants.On("GetTenant", mock.Anything, int64(7)).Return(student(), nil)
	docs.On("GetByTenantID", mock.Anything, int64(7)).Return([]domain.Document{
		{ID: 1, TenantID: 7, DocTypeID: domain.DocTypeKTP.ID, Status: domain.DocumentApproved},
		{ID: 2, TenantID: 7, DocTypeID: domain.DocTypeAgreementLetter.ID, Status: domain.DocumentApproved},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 7})

	require.NoError(t, err)
	assert.False(t, resp.Verdict.CanBook)
	require.Len(t, resp.Verdict.MissingDocuments, 1)
	assert.Equal(t, "Kartu Keluarga", resp.Verdict.MissingDocuments[0].Label)
}

func TestExecute_FetchFailureFailsClosed(t *testing.T) {
	docs := &mockDocuments{}
	tenants := &mockTenants{}
	metrics := &mockMetrics{}
	uc := NewUseCase(docs, tenants, metrics, nopLogger{})

	tenants.On("GetTenant", mock.Anything, int64(7)).Return(student(), nil)
	docs.On("GetByTenantID", mock.Anything, int64(7)).Return(nil, errors.New("db down"))

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 7})

	assert.ErrorIs(t, err, ErrVerificationUnavailable)
	require.NotNil(t, resp)
	assert.False(t, resp.Verdict.CanBook)
	assert.Equal(t, eligibility.StatusError, resp.Verdict.StatusType)
	assert.Empty(t, resp.Verdict.MissingDocuments)
	assert.Equal(t, []string{"error"}, metrics.verdicts)
}

func TestExecute_TenantNotFound(t *testing.T) {
	docs := &mockDocuments{}
	tenants := &mockTenants{}
	uc := NewUseCase(docs, tenants, &mockMetrics{}, nopLogger{})

	tenants.On("GetTenant", mock.Anything, int64(9)).Return(nil, tenantservice.ErrTenantNotFound)
	docs.On("GetByTenantID", mock.Anything, int64(9)).Return([]domain.Document{}, nil).Maybe()

	_, err := uc.Execute(context.Background(), &Request{TenantID: 9})

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockDocuments{}, &mockTenants{}, &mockMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TenantID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
