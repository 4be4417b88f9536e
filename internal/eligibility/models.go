package eligibility

import "github.com/rusunawa-id/booking-service/internal/domain"

// StatusType is the severity of a verification verdict
type StatusType string

const (
	StatusSuccess StatusType = "success"
	StatusWarning StatusType = "warning"
	StatusError   StatusType = "error"
)

// MissingDocument is a required document that blocks booking
type MissingDocument struct {
	ID     int64
	Label  string
	Status domain.DocumentStatus // missing, pending или rejected
}

// Verdict is the derived booking eligibility of a tenant. It is never persisted.
type Verdict struct {
	CanBook          bool
	StatusType       StatusType
	Message          string
	ApprovedCount    int
	PendingCount     int
	RejectedCount    int
	TotalCount       int
	RequiredCount    int
	MissingDocuments []MissingDocument
}
