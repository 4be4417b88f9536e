package check_verification

import (
	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/eligibility"
)

// Request модель запроса проверки документов
type Request struct {
	TenantID int64
}

// Response вердикт о возможности бронирования
type Response struct {
	TenantID int64
	Category domain.TenantCategory
	Verdict  eligibility.Verdict
}
