package domain

import "time"

// DocumentStatus represents the verification status of an uploaded document
type DocumentStatus string

const (
	// DocumentMissing is never stored, it is synthesized for absent required documents
	DocumentMissing  DocumentStatus = "missing"
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// DocumentType identifies the kind of uploaded document
type DocumentType struct {
	ID    int64
	Label string
}

// Known document types
var (
	DocTypeKTP             = DocumentType{ID: 1, Label: "KTP"}
	DocTypeAgreementLetter = DocumentType{ID: 2, Label: "Surat Perjanjian"}
	DocTypeFamilyCard      = DocumentType{ID: 3, Label: "Kartu Keluarga"}
)

// Document represents one uploaded identity or agreement artifact of a tenant
type Document struct {
	ID         int64
	TenantID   int64
	DocTypeID  int64
	Status     DocumentStatus
	UploadedAt time.Time
}

// IsApproved returns true if the document passed admin verification
func (d *Document) IsApproved() bool {
	return d.Status == DocumentApproved
}
