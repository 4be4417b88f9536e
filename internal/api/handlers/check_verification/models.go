package check_verification

import (
	checkVerification "github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
)

// MissingDocumentResponse документ, которого не хватает для бронирования
type MissingDocumentResponse struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// VerificationResponse HTTP response model
type VerificationResponse struct {
	TenantID         int64                     `json:"tenantId"`
	Category         string                    `json:"category,omitempty"`
	CanBook          bool                      `json:"canBook"`
	StatusType       string                    `json:"statusType"`
	Message          string                    `json:"message"`
	ApprovedCount    int                       `json:"approvedCount"`
	PendingCount     int                       `json:"pendingCount"`
	RejectedCount    int                       `json:"rejectedCount"`
	TotalCount       int                       `json:"totalCount"`
	RequiredCount    int                       `json:"requiredCount"`
	MissingDocuments []MissingDocumentResponse `json:"missingDocuments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkVerification.Response) *VerificationResponse {
	v := resp.Verdict
	out := &VerificationResponse{
		TenantID:         resp.TenantID,
		Category:         string(resp.Category),
		CanBook:          v.CanBook,
		StatusType:       string(v.StatusType),
		Message:          v.Message,
		ApprovedCount:    v.ApprovedCount,
		PendingCount:     v.PendingCount,
		RejectedCount:    v.RejectedCount,
		TotalCount:       v.TotalCount,
		RequiredCount:    v.RequiredCount,
		MissingDocuments: make([]MissingDocumentResponse, len(v.MissingDocuments)),
	}

	for i, d := range v.MissingDocuments {
		out.MissingDocuments[i] = MissingDocumentResponse{ID: d.ID, Label: d.Label, Status: string(d.Status)}
	}

	return out
}
