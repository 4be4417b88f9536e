package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rusunawa-id/booking-service/internal/domain"
	roomRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/room"
	sessionStore "github.com/rusunawa-id/booking-service/internal/infra/storage/session"
	"github.com/rusunawa-id/booking-service/internal/reservation"
	"github.com/rusunawa-id/booking-service/internal/usecase/check_availability"
	"github.com/rusunawa-id/booking-service/internal/usecase/create_booking"
	"github.com/rusunawa-id/booking-service/internal/wizard"
)

// UseCase оркестрация мастера бронирования:
// RoomDetails -> SelectDates -> ReviewAndPay -> Confirmation
type UseCase struct {
	store        SessionStore
	roomRepo     RoomRepository
	availability AvailabilityChecker
	creator      BookingCreator
	metrics      Metrics
	timeProvider TimeProvider
	sessionTTL   time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	roomRepo RoomRepository,
	availability AvailabilityChecker,
	creator BookingCreator,
	metrics Metrics,
	sessionTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		roomRepo:     roomRepo,
		availability: availability,
		creator:      creator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Start открывает новую сессию мастера на шаге RoomDetails
func (uc *UseCase) Start(ctx context.Context, req *StartRequest) (*wizard.State, error) {
	uc.logger.Info("BookingWizard.Start: tenant=%d, room=%d, rentalType=%d", req.TenantID, req.RoomID, req.RentalTypeID)

	// 1. Валидация входных данных
	if req.TenantID <= 0 || req.RoomID <= 0 || req.RentalTypeID < 0 {
		return nil, fmt.Errorf("%w: tenantID and roomID must be positive", ErrInvalidInput)
	}

	// 2. Проверяем комнату
	room, err := uc.getRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	// 3. Тип аренды по умолчанию берётся из комнаты
	rentalTypeID := req.RentalTypeID
	if rentalTypeID == 0 {
		rentalTypeID = room.RentalTypeID
	}
	if err := uc.ensureRentalType(ctx, room, rentalTypeID); err != nil {
		return nil, err
	}

	// 4. Создаем сессию
	state := wizard.New(uuid.NewString(), req.TenantID, room.ID, rentalTypeID, uc.timeProvider.Now(), uc.sessionTTL)
	if err := uc.save(ctx, state, 0); err != nil {
		return nil, err
	}

	uc.metrics.RecordWizardTransition(string(state.Step), resultOK)
	uc.logger.Info("BookingWizard.Start: session=%s created for tenant=%d", state.SessionID, req.TenantID)
	return &state, nil
}

// Get возвращает текущее состояние сессии
func (uc *UseCase) Get(ctx context.Context, req *SessionRequest) (*wizard.State, error) {
	return uc.load(ctx, req)
}

// SelectDates сохраняет выбор периода и пересчитывает стоимость.
// Результат проверки применяется только к той ревизии, для которой он считался.
func (uc *UseCase) SelectDates(ctx context.Context, req *DatesRequest) (*wizard.State, error) {
	uc.logger.Info("BookingWizard.SelectDates: session=%s, start=%s, end=%s, months=%d",
		req.SessionID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.MonthsToRent)

	// 1. Загружаем сессию
	state, err := uc.load(ctx, &req.SessionRequest)
	if err != nil {
		return nil, err
	}

	// 2. Смена типа аренды сбрасывает даты и расчёт
	updated := *state
	if req.RentalTypeID != 0 && req.RentalTypeID != state.Selection.RentalTypeID {
		room, err := uc.getRoom(ctx, state.RoomID)
		if err != nil {
			return state, err
		}
		if err := uc.ensureRentalType(ctx, room, req.RentalTypeID); err != nil {
			uc.metrics.RecordWizardTransition(string(state.Step), resultRefused)
			return state, err
		}
		if updated, err = updated.WithRentalType(req.RentalTypeID); err != nil {
			uc.metrics.RecordWizardTransition(string(state.Step), resultRefused)
			return state, err
		}
	}

	// 3. Фиксируем выбранные даты
	if updated, err = updated.WithDates(req.StartDate, req.EndDate, req.MonthsToRent); err != nil {
		uc.metrics.RecordWizardTransition(string(state.Step), resultRefused)
		return state, err
	}
	if err := uc.save(ctx, updated, state.Revision); err != nil {
		return state, err
	}
	captured := updated.Revision

	// 4. Проверяем доступность и считаем стоимость
	resp, checkErr := uc.availability.Execute(ctx, &check_availability.Request{
		TenantID:     updated.TenantID,
		RoomID:       updated.RoomID,
		RentalTypeID: updated.Selection.RentalTypeID,
		StartDate:    updated.Selection.StartDate,
		EndDate:      updated.Selection.EndDate,
		MonthsToRent: updated.Selection.MonthsToRent,
	})
	result, reason := quoteOutcome(resp, checkErr)

	// 5. Применяем результат к актуальному состоянию
	latest, err := uc.load(ctx, &req.SessionRequest)
	if err != nil {
		return nil, err
	}
	applied, err := latest.ApplyQuote(captured, result, reason)
	if err != nil {
		if errors.Is(err, wizard.ErrStaleResult) {
			uc.metrics.RecordWizardTransition(string(latest.Step), resultStale)
			uc.logger.Warn("BookingWizard.SelectDates: session=%s: %v", req.SessionID, err)
		}
		return latest, err
	}
	if err := uc.save(ctx, applied, latest.Revision); err != nil {
		return latest, err
	}

	uc.logger.Info("BookingWizard.SelectDates: session=%s, available=%t, total=%s",
		req.SessionID, result.IsAvailable, result.TotalAmount.StringFixed(2))
	return &applied, nil
}

// Next переходит на следующий шаг. На шаге ReviewAndPay отправляет бронирование:
// при успехе мастер переходит в Confirmation, при отказе остаётся на ReviewAndPay с LastError.
func (uc *UseCase) Next(ctx context.Context, req *SessionRequest) (*wizard.State, error) {
	uc.logger.Info("BookingWizard.Next: session=%s, tenant=%d", req.SessionID, req.TenantID)

	state, err := uc.load(ctx, req)
	if err != nil {
		return nil, err
	}

	if state.Step == wizard.StepReviewAndPay {
		return uc.submit(ctx, req, state)
	}

	next, err := state.Next()
	if err != nil {
		uc.metrics.RecordWizardTransition(string(state.Step), resultRefused)
		uc.logger.Warn("BookingWizard.Next: session=%s refused: %v", req.SessionID, err)
		return state, err
	}
	if err := uc.save(ctx, next, state.Revision); err != nil {
		return state, err
	}

	uc.metrics.RecordWizardTransition(string(next.Step), resultOK)
	return &next, nil
}

// Previous возвращается на предыдущий шаг, сохраняя введённые данные
func (uc *UseCase) Previous(ctx context.Context, req *SessionRequest) (*wizard.State, error) {
	uc.logger.Info("BookingWizard.Previous: session=%s, tenant=%d", req.SessionID, req.TenantID)

	state, err := uc.load(ctx, req)
	if err != nil {
		return nil, err
	}

	prev, err := state.Previous()
	if err != nil {
		uc.metrics.RecordWizardTransition(string(state.Step), resultRefused)
		return state, err
	}
	if err := uc.save(ctx, prev, state.Revision); err != nil {
		return state, err
	}

	uc.metrics.RecordWizardTransition(string(prev.Step), resultOK)
	return &prev, nil
}

// submit отправляет бронирование один раз, без повторов
func (uc *UseCase) submit(ctx context.Context, req *SessionRequest, state *wizard.State) (*wizard.State, error) {
	if !state.CanProceed() {
		uc.metrics.RecordWizardTransition(string(state.Step), resultRefused)
		return state, fmt.Errorf("%w: quote is not available", wizard.ErrTransitionRefused)
	}

	captured := state.Revision
	amount := state.Quote.TotalAmount

	resp, submitErr := uc.creator.Execute(ctx, &create_booking.Request{
		TenantID:       state.TenantID,
		RoomID:         state.RoomID,
		RentalTypeID:   state.Selection.RentalTypeID,
		StartDate:      state.Selection.StartDate,
		EndDate:        state.Selection.EndDate,
		MonthsToRent:   state.Selection.MonthsToRent,
		ExpectedAmount: &amount,
	})

	latest, err := uc.load(ctx, req)
	if err != nil {
		if submitErr == nil {
			uc.logger.Error("BookingWizard.Next: booking id=%d created but session=%s is gone: %v",
				resp.Booking.ID, req.SessionID, err)
		}
		return nil, err
	}

	if submitErr != nil {
		uc.metrics.RecordWizardTransition(string(state.Step), resultRejected)
		uc.logger.Warn("BookingWizard.Next: session=%s submission rejected: %v", req.SessionID, submitErr)

		failed, err := latest.Fail(captured, publicReason(submitErr))
		if err != nil {
			return latest, err
		}
		if err := uc.save(ctx, failed, latest.Revision); err != nil {
			return latest, err
		}
		return &failed, submitErr
	}

	confirmed, err := latest.Confirm(captured, resp.Booking)
	if err != nil {
		uc.metrics.RecordWizardTransition(string(latest.Step), resultStale)
		uc.logger.Error("BookingWizard.Next: booking id=%d created but session=%s changed: %v",
			resp.Booking.ID, req.SessionID, err)
		return latest, err
	}
	if err := uc.save(ctx, confirmed, latest.Revision); err != nil {
		return latest, err
	}

	uc.metrics.RecordWizardTransition(string(confirmed.Step), resultOK)
	uc.logger.Info("BookingWizard.Next: session=%s confirmed booking id=%d", req.SessionID, resp.Booking.ID)
	return &confirmed, nil
}

func (uc *UseCase) load(ctx context.Context, req *SessionRequest) (*wizard.State, error) {
	if req.TenantID <= 0 || req.SessionID == "" {
		return nil, fmt.Errorf("%w: tenantID and sessionID are required", ErrInvalidInput)
	}

	state, err := uc.store.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("BookingWizard: failed to load session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	if state.TenantID != req.TenantID {
		uc.logger.Warn("BookingWizard: tenant=%d has no access to session=%s", req.TenantID, req.SessionID)
		return nil, ErrForbidden
	}

	if state.IsExpired(uc.timeProvider.Now()) {
		return nil, wizard.ErrSessionExpired
	}

	return state, nil
}

func (uc *UseCase) save(ctx context.Context, state wizard.State, expectedRevision int64) error {
	err := uc.store.Save(ctx, state, expectedRevision)
	if err == nil {
		return nil
	}
	if errors.Is(err, sessionStore.ErrRevisionConflict) {
		uc.logger.Warn("BookingWizard: session=%s: %v", state.SessionID, err)
		return ErrConcurrentUpdate
	}
	uc.logger.Error("BookingWizard: failed to save session=%s: %v", state.SessionID, err)
	return fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
}

func (uc *UseCase) getRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("BookingWizard: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	return room, nil
}

// ensureRentalType допускает только тип аренды комнаты: ставка комнаты задана за его единицу
func (uc *UseCase) ensureRentalType(ctx context.Context, room *domain.Room, rentalTypeID int64) error {
	if rentalTypeID != room.RentalTypeID {
		return fmt.Errorf("%w: room id=%d has rental type id=%d, requested id=%d",
			reservation.ErrRentalTypeMismatch, room.ID, room.RentalTypeID, rentalTypeID)
	}
	if _, err := uc.roomRepo.GetRentalTypeByID(ctx, rentalTypeID); err != nil {
		if errors.Is(err, roomRepo.ErrRentalTypeNotFound) {
			return ErrRentalTypeNotFound
		}
		uc.logger.Error("BookingWizard: failed to get rental type id=%d: %v", rentalTypeID, err)
		return fmt.Errorf("%w: failed to get rental type: %v", ErrInternal, err)
	}
	return nil
}

// quoteOutcome приводит ответ проверки доступности к результату для мастера.
// Любая ошибка даёт недоступный результат.
func quoteOutcome(resp *check_availability.Response, err error) (reservation.Result, error) {
	switch {
	case err != nil && resp != nil:
		return resp.Result, publicReason(err)
	case err != nil:
		return reservation.Unavailable(), publicReason(err)
	case resp.Rejection != nil:
		return resp.Result, resp.Rejection
	default:
		return resp.Result, nil
	}
}

// publicReason скрывает детали инфраструктурных ошибок, оставляя только sentinel
func publicReason(err error) error {
	for _, sentinel := range []error{
		reservation.ErrConflictCheckUnavailable,
		check_availability.ErrInternal,
		create_booking.ErrInternal,
		create_booking.ErrVerificationUnavailable,
		create_booking.ErrSubmissionConflict,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}
