package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rusunawa-id/booking-service/internal/domain"
	roomRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/room"
	"github.com/rusunawa-id/booking-service/internal/reservation"
)

// UseCase use case проверки доступности комнаты и расчёта стоимости
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет, может ли жилец забронировать комнату на выбранный период.
//
// Ошибки валидации (даты, количество месяцев, минимальный срок) возвращаются как error.
// Закрытые даты и активные бронирования не являются ошибкой: Result.IsAvailable = false,
// причина в Response.Rejection. Если снапшот получить не удалось, возвращается
// reservation.Unavailable() вместе с ErrConflictCheckUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: tenant=%d, room=%d, rentalType=%d, start=%s, end=%s, months=%d",
		req.TenantID, req.RoomID, req.RentalTypeID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.MonthsToRent)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату и тип аренды
	room, rentalType, err := uc.loadRoom(ctx, req.RoomID, req.RentalTypeID)
	if err != nil {
		return nil, err
	}

	// 3. Валидация периода и расчёт стоимости (шаги 1-3 без обращения к БД)
	quote, err := reservation.CalculateQuote(*room, *rentalType, req.StartDate, req.EndDate, req.MonthsToRent)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid period for tenant=%d: %v", req.TenantID, err)
		uc.metrics.RecordAvailability(outcomeInvalid)
		return nil, err
	}

	// 4. Параллельно получаем закрытые даты комнаты и бронирования жильца
	blackouts, bookings, err := uc.loadConflicts(ctx, req.TenantID, room.ID, quote.StartDate, quote.EndDate)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load conflicts for tenant=%d, room=%d: %v", req.TenantID, room.ID, err)
		uc.metrics.RecordAvailability(outcomeUnavailable)
		return &Response{Room: *room, RentalType: *rentalType, Result: reservation.Unavailable()},
			fmt.Errorf("%w: %v", ErrConflictCheckUnavailable, err)
	}

	// 5. Полная проверка
	result, err := reservation.Evaluate(reservation.Request{
		Room:             *room,
		RentalType:       *rentalType,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		MonthsToRent:     req.MonthsToRent,
		BlackoutDates:    blackouts,
		ExistingBookings: bookings,
	})

	resp := &Response{Room: *room, RentalType: *rentalType, Result: result}

	switch {
	case err == nil:
		uc.metrics.RecordAvailability(outcomeAvailable)
		uc.logger.Info("CheckAvailability: available, tenant=%d, room=%d, units=%d, total=%s",
			req.TenantID, room.ID, result.DurationUnits, result.TotalAmount.StringFixed(2))
		return resp, nil
	case errors.Is(err, reservation.ErrDateBlackout):
		uc.metrics.RecordAvailability(outcomeBlackout)
		uc.logger.Warn("CheckAvailability: tenant=%d, room=%d: %v", req.TenantID, room.ID, err)
		resp.Rejection = err
		return resp, nil
	case errors.Is(err, reservation.ErrActiveBookingConflict):
		uc.metrics.RecordAvailability(outcomeConflict)
		uc.logger.Warn("CheckAvailability: tenant=%d, room=%d: %v", req.TenantID, room.ID, err)
		resp.Rejection = err
		return resp, nil
	default:
		uc.metrics.RecordAvailability(outcomeInvalid)
		uc.logger.Warn("CheckAvailability: evaluation failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}
}

func (uc *UseCase) loadRoom(ctx context.Context, roomID, rentalTypeID int64) (*domain.Room, *domain.RentalType, error) {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", roomID)
			return nil, nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", roomID, err)
		return nil, nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	rentalType, err := uc.roomRepo.GetRentalTypeByID(ctx, rentalTypeID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRentalTypeNotFound) {
			uc.logger.Warn("CheckAvailability: rental type id=%d not found", rentalTypeID)
			return nil, nil, ErrRentalTypeNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get rental type id=%d: %v", rentalTypeID, err)
		return nil, nil, fmt.Errorf("%w: failed to get rental type: %v", ErrInternal, err)
	}

	return room, rentalType, nil
}

func (uc *UseCase) loadConflicts(ctx context.Context, tenantID, roomID int64, start, end time.Time) ([]time.Time, []domain.Booking, error) {
	var (
		blackouts []time.Time
		bookings  []domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blackouts, err = uc.roomRepo.GetUnavailableDates(gctx, roomID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.GetByTenant(gctx, domain.TenantBookingsFilter{TenantID: tenantID, OnlyActive: true})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return blackouts, bookings, nil
}
