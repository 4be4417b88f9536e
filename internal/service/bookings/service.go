package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rusunawa-id/booking-service/internal/domain"
	bookingRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/booking"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Жилец может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, requester models.Requester) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for tenant=%d, admin=%t", id, requester.TenantID, requester.IsAdmin)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !requester.CanAccessTenant(booking.TenantID) {
		s.logger.Warn("GetByID: access denied for tenant=%d to booking id=%d", requester.TenantID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetTenantBookings получает историю бронирований жильца
// Опционально фильтрует по статусу или только активные
func (s *Service) GetTenantBookings(ctx context.Context, req *models.GetTenantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTenantBookings: fetching bookings for tenant=%d, status=%v, onlyActive=%t",
		req.TenantID, req.Status, req.OnlyActive)

	if !req.Requester.CanAccessTenant(req.TenantID) {
		s.logger.Warn("GetTenantBookings: access denied for tenant=%d to tenant=%d bookings", req.Requester.TenantID, req.TenantID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTenantBookings: invalid status=%v for tenant=%d", req.Status, req.TenantID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTenant(ctx, filter)
	if err != nil {
		s.logger.Error("GetTenantBookings: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: GetTenantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTenantBookings: successfully fetched %d bookings for tenant=%d", len(bookings), req.TenantID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование по запросу жильца.
// Отменить можно только своё бронирование в статусе pending или approved.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by tenant=%d", bookingID, req.Requester.TenantID)

	var result *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if !req.Requester.CanAccessTenant(booking.TenantID) {
			s.logger.Warn("Cancel: access denied for tenant=%d to booking id=%d", req.Requester.TenantID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.updateStatus(txCtx, "Cancel", bookingID, domain.StatusCancelled); err != nil {
			return err
		}

		booking.Status = domain.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// UpdateStatus обновляет статус бронирования. Доступно только администратору.
// Допустимые переходы: pending -> approved|rejected|cancelled,
// approved -> checked_in|cancelled, checked_in -> completed
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s, admin=%t", bookingID, req.Status, req.Requester.IsAdmin)

	if !req.Requester.IsAdmin {
		s.logger.Warn("UpdateStatus: tenant=%d is not an admin", req.Requester.TenantID)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var result *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d transition %s -> %s not allowed", bookingID, booking.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.updateStatus(txCtx, "UpdateStatus", bookingID, newStatus); err != nil {
			return err
		}

		booking.Status = newStatus
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(result), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, op string, id int64, status domain.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found during update", op, id)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
