package check_verification

import "errors"

var (
	// ErrTenantNotFound возвращается, когда жилец не найден
	ErrTenantNotFound = errors.New("check_verification: tenant not found")

	// ErrVerificationUnavailable возвращается, когда снапшот документов или профиля получить не удалось.
	// Вместе с ошибкой возвращается вердикт eligibility.Unavailable().
	ErrVerificationUnavailable = errors.New("check_verification: unable to verify documents")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_verification: invalid input data")
)
