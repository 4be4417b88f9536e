package create_booking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.RentalTypeID <= 0 {
		return fmt.Errorf("%w: rentalTypeID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.ExpectedAmount != nil && req.ExpectedAmount.IsNegative() {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateAmount сверяет сумму клиента с пересчитанной
func validateAmount(expected *decimal.Decimal, actual decimal.Decimal) error {
	if expected == nil {
		return nil
	}
	if !expected.Equal(actual) {
		return fmt.Errorf("%w: expected %s, actual %s", ErrAmountMismatch, expected.StringFixed(2), actual.StringFixed(2))
	}
	return nil
}
