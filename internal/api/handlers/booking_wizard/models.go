package booking_wizard

import (
	"time"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/service/bookings/models"
	wizardUC "github.com/rusunawa-id/booking-service/internal/usecase/booking_wizard"
	"github.com/rusunawa-id/booking-service/internal/wizard"
)

// StartRequest HTTP request model
type StartRequest struct {
	RoomID       int64 `json:"roomId" validate:"required,gt=0"`
	RentalTypeID int64 `json:"rentalTypeId,omitempty" validate:"gte=0"`
}

// SelectDatesRequest HTTP request model
type SelectDatesRequest struct {
	RentalTypeID int64  `json:"rentalTypeId,omitempty" validate:"gte=0"`
	StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthsToRent int    `json:"monthsToRent,omitempty" validate:"gte=0"`
}

// SelectionResponse выбор жильца
type SelectionResponse struct {
	RentalTypeID int64  `json:"rentalTypeId"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	MonthsToRent int    `json:"monthsToRent,omitempty"`
}

// StateResponse состояние мастера бронирования
type StateResponse struct {
	SessionID  string                  `json:"sessionId"`
	RoomID     int64                   `json:"roomId"`
	Step       string                  `json:"step"`
	Revision   int64                   `json:"revision"`
	Selection  SelectionResponse       `json:"selection"`
	Quote      *handlers.QuoteResponse `json:"quote,omitempty"`
	Booking    *models.BookingResponse `json:"booking,omitempty"`
	LastError  string                  `json:"lastError,omitempty"`
	CanProceed bool                    `json:"canProceed"`
	ExpiresAt  time.Time               `json:"expiresAt"`
}

// ErrorResponse ошибка перехода вместе с актуальным состоянием
type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	State   *StateResponse `json:"state,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDatesRequest) ToUseCaseRequest(session wizardUC.SessionRequest) (*wizardUC.DatesRequest, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &wizardUC.DatesRequest{
		SessionRequest: session,
		RentalTypeID:   r.RentalTypeID,
		StartDate:      start,
		EndDate:        end,
		MonthsToRent:   r.MonthsToRent,
	}, nil
}

// FromState конвертирует состояние мастера в HTTP response
func FromState(s *wizard.State) *StateResponse {
	if s == nil {
		return nil
	}

	resp := &StateResponse{
		SessionID: s.SessionID,
		RoomID:    s.RoomID,
		Step:      string(s.Step),
		Revision:  s.Revision,
		Selection: SelectionResponse{
			RentalTypeID: s.Selection.RentalTypeID,
			MonthsToRent: s.Selection.MonthsToRent,
		},
		Booking:    models.FromDomainBooking(s.Booking),
		LastError:  s.LastError,
		CanProceed: s.CanProceed(),
		ExpiresAt:  s.ExpiresAt,
	}

	if s.Selection.HasDates() {
		resp.Selection.StartDate = s.Selection.StartDate.Format(domain.DateFormat)
		if !s.Selection.EndDate.IsZero() {
			resp.Selection.EndDate = s.Selection.EndDate.Format(domain.DateFormat)
		}
	}
	if s.Quote != nil {
		resp.Quote = handlers.FromReservationResult(*s.Quote)
	}

	return resp
}
