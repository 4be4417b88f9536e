package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет тело запроса по тегам `validate`
func Validate(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s:%s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("validation failed: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// ParseDate разбирает дату "2025-03-01". Пустая строка дает нулевое время.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
