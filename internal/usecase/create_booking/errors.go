package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRentalTypeNotFound возвращается, когда тип аренды не найден
	ErrRentalTypeNotFound = errors.New("create_booking: rental type not found")

	// ErrTenantNotFound возвращается, когда жилец не найден
	ErrTenantNotFound = errors.New("create_booking: tenant not found")

	// ErrNotEligible возвращается, когда документы жильца не одобрены
	ErrNotEligible = errors.New("create_booking: tenant documents are not verified")

	// ErrVerificationUnavailable возвращается, когда документы не удалось проверить
	ErrVerificationUnavailable = errors.New("create_booking: unable to verify documents")

	// ErrAmountMismatch возвращается, когда сумма клиента не совпадает с пересчитанной
	ErrAmountMismatch = errors.New("create_booking: total amount does not match current price")

	// ErrSubmissionConflict возвращается, когда параллельная транзакция изменила бронирования жильца
	ErrSubmissionConflict = errors.New("create_booking: concurrent booking submission")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
