package check_availability

import "fmt"

// validateRequest валидирует идентификаторы запроса. Даты проверяет движок бронирования.
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

	return nil
}
