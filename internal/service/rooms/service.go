package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
	roomRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/room"
	"github.com/rusunawa-id/booking-service/internal/service/rooms/models"
)

// Service сервис справочников и календаря доступности комнат
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetRentalTypes возвращает справочник типов аренды
func (s *Service) GetRentalTypes(ctx context.Context) (*models.RentalTypeListResponse, error) {
	types, err := s.roomRepo.GetRentalTypes(ctx)
	if err != nil {
		s.logger.Error("GetRentalTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRentalTypes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRentalTypes(types), nil
}

// GetAvailability строит календарь комнаты на период [start, end).
// День недоступен, если он закрыт администрацией или занят активным бронированием комнаты.
func (s *Service) GetAvailability(ctx context.Context, roomID int64, start, end time.Time) (*models.AvailabilityResponse, error) {
	period := domain.NewDateRange(start, end)
	s.logger.Info("GetAvailability: room=%d, period=%s to %s",
		roomID, period.Start.Format(domain.DateFormat), period.End.Format(domain.DateFormat))

	if !period.IsValid() {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}
	if period.Days() > domain.MaxAvailabilityDays {
		return nil, fmt.Errorf("%w: period longer than %d days", ErrInvalidRange, domain.MaxAvailabilityDays)
	}

	var (
		room      *domain.Room
		blackouts []time.Time
		bookings  []domain.Booking
	)

	// Комната, закрытые даты и бронирования читаются из одного снимка
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		room, err = s.roomRepo.GetByID(txCtx, roomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to get room id=%d: %w", roomID, err)
		}

		blackouts, err = s.roomRepo.GetUnavailableDates(txCtx, roomID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to get unavailable dates: %w", err)
		}

		bookings, err = s.bookingRepo.GetActiveByRoom(txCtx, roomID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			s.logger.Warn("GetAvailability: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetAvailability: room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	days := buildCalendar(period, blackouts, bookings)

	return &models.AvailabilityResponse{
		RoomID:    room.ID,
		RoomName:  room.Name,
		Rate:      room.Rate,
		StartDate: period.Start.Format(domain.DateFormat),
		EndDate:   period.End.Format(domain.DateFormat),
		Days:      models.FromDomainDays(days),
	}, nil
}

func buildCalendar(period domain.DateRange, blackouts []time.Time, bookings []domain.Booking) []domain.RoomDayAvailability {
	closed := make(map[time.Time]struct{}, len(blackouts))
	for _, d := range blackouts {
		closed[domain.DateOnly(d)] = struct{}{}
	}

	days := make([]domain.RoomDayAvailability, 0, period.Days())
	period.EachDay(func(day time.Time) bool {
		_, isClosed := closed[day]
		available := !isClosed
		for i := range bookings {
			if bookings[i].IsActive() && bookings[i].Range().Contains(day) {
				available = false
				break
			}
		}
		days = append(days, domain.RoomDayAvailability{Date: day, IsAvailable: available})
		return true
	})
	return days
}
