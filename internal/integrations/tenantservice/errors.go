package tenantservice

import "errors"

var (
	// ErrTenantNotFound возвращается, когда жилец не найден в TenantService
	ErrTenantNotFound = errors.New("tenantservice client: tenant not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tenantservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("tenantservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда circuit breaker разомкнут
	ErrServiceUnavailable = errors.New("tenantservice client: service unavailable")
)
