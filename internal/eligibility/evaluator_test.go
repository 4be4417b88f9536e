package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

func doc(typeID int64, status domain.DocumentStatus) domain.Document {
	return domain.Document{TenantID: 7, DocTypeID: typeID, Status: status}
}

func TestEvaluate_StudentWithOnlyKTPApproved(t *testing.T) {
	verdict := Evaluate([]domain.Document{doc(1, domain.DocumentApproved)}, domain.CategoryStudent)

	assert.False(t, verdict.CanBook)
	assert.Equal(t, StatusWarning, verdict.StatusType)
	assert.Equal(t, 3, verdict.RequiredCount)
	assert.Equal(t, 1, verdict.ApprovedCount)
	assert.Equal(t, 1, verdict.TotalCount)
	require.Len(t, verdict.MissingDocuments, 2)
	assert.Equal(t, MissingDocument{ID: 2, Label: "Surat Perjanjian", Status: domain.DocumentMissing}, verdict.MissingDocuments[0])
	assert.Equal(t, MissingDocument{ID: 3, Label: "Kartu Keluarga", Status: domain.DocumentMissing}, verdict.MissingDocuments[1])
	assert.Equal(t, "Dokumen wajib belum diunggah: Surat Perjanjian, Kartu Keluarga", verdict.Message)
}

func TestEvaluate_NonStudentWithKTPApproved(t *testing.T) {
	verdict := Evaluate([]domain.Document{doc(1, domain.DocumentApproved)}, domain.CategoryNonStudent)

	assert.True(t, verdict.CanBook)
	assert.Equal(t, StatusSuccess, verdict.StatusType)
	assert.Equal(t, 1, verdict.RequiredCount)
	assert.Empty(t, verdict.MissingDocuments)
}

func TestEvaluate_NonStudentIgnoresExtraDocuments(t *testing.T) {
	docs := []domain.Document{
		doc(1, domain.DocumentApproved),
		doc(3, domain.DocumentRejected),
	}

	verdict := Evaluate(docs, domain.CategoryNonStudent)

	assert.True(t, verdict.CanBook)
	assert.Equal(t, 1, verdict.RejectedCount)
	assert.Equal(t, 2, verdict.TotalCount)
}

func TestEvaluate_NoDocuments(t *testing.T) {
	verdict := Evaluate(nil, domain.CategoryStudent)

	assert.False(t, verdict.CanBook)
	assert.Equal(t, StatusWarning, verdict.StatusType)
	assert.Equal(t, 0, verdict.TotalCount)
	require.Len(t, verdict.MissingDocuments, 3)
	for _, m := range verdict.MissingDocuments {
		assert.Equal(t, domain.DocumentMissing, m.Status)
	}
}

func TestEvaluate_MessagePriority(t *testing.T) {
	tests := []struct {
		name        string
		docs        []domain.Document
		wantStatus  StatusType
		wantMessage string
	}{
		{
			name: "missing wins over rejected and pending",
			docs: []domain.Document{
				doc(1, domain.DocumentRejected),
				doc(2, domain.DocumentPending),
			},
			wantStatus:  StatusWarning,
			wantMessage: "Dokumen wajib belum diunggah: Kartu Keluarga",
		},
		{
			name: "rejected wins over pending",
			docs: []domain.Document{
				doc(1, domain.DocumentApproved),
				doc(2, domain.DocumentPending),
				doc(3, domain.DocumentRejected),
			},
			wantStatus:  StatusError,
			wantMessage: "Dokumen ditolak, silakan unggah ulang: Kartu Keluarga",
		},
		{
			name: "only pending",
			docs: []domain.Document{
				doc(1, domain.DocumentPending),
				doc(2, domain.DocumentPending),
				doc(3, domain.DocumentApproved),
			},
			wantStatus:  StatusWarning,
			wantMessage: "Dokumen sedang menunggu verifikasi: KTP, Surat Perjanjian",
		},
		{
			name: "all approved",
			docs: []domain.Document{
				doc(1, domain.DocumentApproved),
				doc(2, domain.DocumentApproved),
				doc(3, domain.DocumentApproved),
			},
			wantStatus:  StatusSuccess,
			wantMessage: msgSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Evaluate(tt.docs, domain.CategoryStudent)
			assert.Equal(t, tt.wantStatus, verdict.StatusType)
			assert.Equal(t, tt.wantMessage, verdict.Message)
		})
	}
}

func TestEvaluate_UnknownStatusFallsBackToIncomplete(t *testing.T) {
	verdict := Evaluate([]domain.Document{doc(1, "archived")}, domain.CategoryNonStudent)

	assert.False(t, verdict.CanBook)
	assert.Equal(t, StatusError, verdict.StatusType)
	assert.Equal(t, msgIncomplete, verdict.Message)
}

func TestEvaluate_DuplicateTypeKeepsBestStatus(t *testing.T) {
	docs := []domain.Document{
		doc(1, domain.DocumentRejected),
		doc(1, domain.DocumentApproved),
		doc(1, domain.DocumentPending),
	}

	verdict := Evaluate(docs, domain.CategoryNonStudent)

	assert.True(t, verdict.CanBook)
	assert.Equal(t, 3, verdict.TotalCount)
}

// Для любых комбинаций статусов вердикт ровно один из трёх типов,
// а CanBook истинен тогда и только тогда, когда список недостающих пуст
func TestEvaluate_Totality(t *testing.T) {
	statuses := []domain.DocumentStatus{"", domain.DocumentPending, domain.DocumentApproved, domain.DocumentRejected}
	categories := []domain.TenantCategory{domain.CategoryStudent, domain.CategoryNonStudent}

	for _, category := range categories {
		for _, s1 := range statuses {
			for _, s2 := range statuses {
				for _, s3 := range statuses {
					docs := make([]domain.Document, 0, 3)
					for i, s := range []domain.DocumentStatus{s1, s2, s3} {
						if s != "" {
							docs = append(docs, doc(int64(i+1), s))
						}
					}

					verdict := Evaluate(docs, category)

					assert.Contains(t, []StatusType{StatusSuccess, StatusWarning, StatusError}, verdict.StatusType)
					assert.Equal(t, len(verdict.MissingDocuments) == 0, verdict.CanBook,
						"category=%s statuses=%v", category, []domain.DocumentStatus{s1, s2, s3})
					assert.Equal(t, verdict.CanBook, verdict.StatusType == StatusSuccess)
				}
			}
		}
	}
}

func TestUnavailable(t *testing.T) {
	verdict := Unavailable()

	assert.False(t, verdict.CanBook)
	assert.Equal(t, StatusError, verdict.StatusType)
	assert.Equal(t, msgUnavailable, verdict.Message)
	assert.NotNil(t, verdict.MissingDocuments)
	assert.Empty(t, verdict.MissingDocuments)
}
