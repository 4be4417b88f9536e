package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rusunawa-id/booking-service/internal/domain"
	roomRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/room"
	"github.com/rusunawa-id/booking-service/internal/reservation"
	"github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
	"github.com/rusunawa-id/booking-service/pkg/ptr"
	"github.com/rusunawa-id/booking-service/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	verification VerificationChecker
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	verification VerificationChecker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		verification: verification,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов повторяется внутри сериализуемой транзакции непосредственно перед вставкой,
// поэтому результат предыдущей проверки доступности не используется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%d, room=%d, rentalType=%d, start=%s, end=%s, months=%d",
		req.TenantID, req.RoomID, req.RentalTypeID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.MonthsToRent)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем документы жильца
	if err := uc.checkEligibility(ctx, req.TenantID); err != nil {
		return nil, err
	}

	// 3. Получаем комнату и тип аренды
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	rentalType, err := uc.roomRepo.GetRentalTypeByID(ctx, req.RentalTypeID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRentalTypeNotFound) {
			uc.logger.Warn("CreateBooking: rental type id=%d not found", req.RentalTypeID)
			return nil, ErrRentalTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get rental type id=%d: %v", req.RentalTypeID, err)
		return nil, fmt.Errorf("%w: failed to get rental type: %v", ErrInternal, err)
	}

	// 4. Валидация периода до открытия транзакции
	quote, err := reservation.CalculateQuote(*room, *rentalType, req.StartDate, req.EndDate, req.MonthsToRent)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid period for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	var (
		created *domain.Booking
		result  reservation.Result
	)

	// 5. Повторная проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования жильца с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByTenant(txCtx, domain.TenantBookingsFilter{
			TenantID:   req.TenantID,
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for tenant=%d: %v", req.TenantID, err)
			return fmt.Errorf("%w: %v", reservation.ErrConflictCheckUnavailable, err)
		}

		// 5.2. Закрытые даты комнаты
		blackouts, err := uc.roomRepo.GetUnavailableDates(txCtx, room.ID, quote.StartDate, quote.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get unavailable dates for room=%d: %v", room.ID, err)
			return fmt.Errorf("%w: %v", reservation.ErrConflictCheckUnavailable, err)
		}

		// 5.3. Полная проверка
		result, err = reservation.Evaluate(reservation.Request{
			Room:             *room,
			RentalType:       *rentalType,
			StartDate:        req.StartDate,
			EndDate:          req.EndDate,
			MonthsToRent:     req.MonthsToRent,
			BlackoutDates:    blackouts,
			ExistingBookings: bookings,
		})
		if err != nil {
			uc.logger.Warn("CreateBooking: tenant=%d, room=%d rejected: %v", req.TenantID, room.ID, err)
			return err
		}

		// 5.4. Сумма, которую видел жилец, должна совпадать с текущей
		if err := validateAmount(req.ExpectedAmount, result.TotalAmount); err != nil {
			uc.logger.Warn("CreateBooking: tenant=%d: %v", req.TenantID, err)
			return err
		}

		// 5.5. Создаем бронирование в статусе pending (одобряет администратор)
		booking := &domain.Booking{
			TenantID:     req.TenantID,
			RoomID:       room.ID,
			RentalTypeID: rentalType.ID,
			CheckInDate:  result.StartDate,
			CheckOutDate: result.EndDate,
			Status:       domain.StatusPending,
			TotalAmount:  result.TotalAmount,
		}
		if rentalType.IsMonthly() {
			booking.MonthsToRent = ptr.Ptr(req.MonthsToRent)
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		err = uc.mapTxError(err)
		if errors.Is(err, reservation.ErrDateBlackout) || errors.Is(err, reservation.ErrActiveBookingConflict) {
			// Результат проверки нужен клиенту, чтобы показать причину отказа
			return &Response{RentalType: *rentalType, Result: result}, err
		}
		return nil, err
	}

	uc.metrics.RecordBookingCreated(string(rentalType.Name))
	uc.logger.Info("CreateBooking: successfully created booking id=%d for tenant=%d, room=%d, total=%s",
		created.ID, req.TenantID, room.ID, created.TotalAmount.StringFixed(2))

	return &Response{
		Booking:    *created,
		RentalType: *rentalType,
		Result:     result,
	}, nil
}

// checkEligibility запрещает бронирование без полного набора одобренных документов
func (uc *UseCase) checkEligibility(ctx context.Context, tenantID int64) error {
	resp, err := uc.verification.Execute(ctx, &check_verification.Request{TenantID: tenantID})
	if err != nil {
		switch {
		case errors.Is(err, check_verification.ErrTenantNotFound):
			return ErrTenantNotFound
		case errors.Is(err, check_verification.ErrVerificationUnavailable):
			uc.logger.Error("CreateBooking: verification unavailable for tenant=%d: %v", tenantID, err)
			return fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
		default:
			uc.logger.Error("CreateBooking: verification failed for tenant=%d: %v", tenantID, err)
			return fmt.Errorf("%w: verification: %v", ErrInternal, err)
		}
	}

	if !resp.Verdict.CanBook {
		uc.logger.Warn("CreateBooking: tenant=%d is not eligible: %s", tenantID, resp.Verdict.Message)
		return fmt.Errorf("%w: %s", ErrNotEligible, resp.Verdict.Message)
	}

	return nil
}

// mapTxError переводит ошибки транзакции в ошибки use case.
// Бизнес-ошибки движка бронирования пробрасываются без изменений.
func (uc *UseCase) mapTxError(err error) error {
	switch {
	case errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("CreateBooking: serialization conflict: %v", err)
		return fmt.Errorf("%w: %v", ErrSubmissionConflict, err)
	case errors.Is(err, txmanager.ErrBeginTx), errors.Is(err, txmanager.ErrCommitTx):
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	default:
		return err
	}
}
