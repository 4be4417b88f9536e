package domain

import "strings"

// TenantCategory determines which documents a tenant has to provide
type TenantCategory string

const (
	CategoryStudent    TenantCategory = "student"
	CategoryNonStudent TenantCategory = "non_student"
)

// StudentTenantTypeName is the tenant type name marking students
const StudentTenantTypeName = "mahasiswa"

// Tenant is the profile data of a tenant relevant for booking
type Tenant struct {
	ID             int64
	Name           string
	TenantTypeName string
}

// Category derives the tenant category from the tenant type name
func (t *Tenant) Category() TenantCategory {
	return CategoryFromTypeName(t.TenantTypeName)
}

// CategoryFromTypeName maps "mahasiswa" to student, anything else to non-student
func CategoryFromTypeName(name string) TenantCategory {
	if strings.EqualFold(strings.TrimSpace(name), StudentTenantTypeName) {
		return CategoryStudent
	}
	return CategoryNonStudent
}

// RequiredDocuments returns the ordered set of document types the category must have approved
func (c TenantCategory) RequiredDocuments() []DocumentType {
	if c == CategoryStudent {
		return []DocumentType{DocTypeKTP, DocTypeAgreementLetter, DocTypeFamilyCard}
	}
	return []DocumentType{DocTypeKTP}
}
