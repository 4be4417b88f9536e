package wizard

import (
	"fmt"
	"time"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/reservation"
)

// Step is a page of the booking wizard
type Step string

const (
	StepRoomDetails  Step = "room_details"
	StepSelectDates  Step = "select_dates"
	StepReviewAndPay Step = "review_and_pay"
	StepConfirmation Step = "confirmation"
)

// Selection holds the user's choices that drive the quote
type Selection struct {
	RentalTypeID int64     `json:"rentalTypeId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	MonthsToRent int       `json:"monthsToRent"`
}

// HasDates reports whether a stay has been selected
func (s Selection) HasDates() bool {
	return !s.StartDate.IsZero()
}

// State is an immutable snapshot of one wizard session.
// Every method returns a new State with Revision incremented; the receiver is never modified.
type State struct {
	SessionID string `json:"sessionId"`
	TenantID  int64  `json:"tenantId"`
	RoomID    int64  `json:"roomId"`
	Step      Step   `json:"step"`
	Revision  int64  `json:"revision"`

	Selection Selection           `json:"selection"`
	Quote     *reservation.Result `json:"quote,omitempty"`
	Booking   *domain.Booking     `json:"booking,omitempty"`
	LastError string              `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// New starts a session on the room details page
func New(sessionID string, tenantID, roomID, rentalTypeID int64, now time.Time, ttl time.Duration) State {
	return State{
		SessionID: sessionID,
		TenantID:  tenantID,
		RoomID:    roomID,
		Step:      StepRoomDetails,
		Revision:  1,
		Selection: Selection{RentalTypeID: rentalTypeID},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session outlived its TTL
func (s State) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// IsCompleted reports whether a booking has been confirmed
func (s State) IsCompleted() bool {
	return s.Step == StepConfirmation
}

// CanProceed reports whether Next would be accepted from SelectDates
func (s State) CanProceed() bool {
	return s.Quote != nil && s.Quote.IsAvailable && s.Quote.TotalAmount.IsPositive()
}

func (s State) bump() State {
	s.Revision++
	return s
}

// Next moves forward one page. RoomDetails -> SelectDates is unconditional,
// SelectDates -> ReviewAndPay requires an available quote with a positive total.
// ReviewAndPay -> Confirmation happens only through Confirm after a successful submission.
func (s State) Next() (State, error) {
	switch s.Step {
	case StepRoomDetails:
		next := s.bump()
		next.Step = StepSelectDates
		next.LastError = ""
		return next, nil
	case StepSelectDates:
		if !s.CanProceed() {
			reason := s.LastError
			if reason == "" {
				reason = "no available quote for selected dates"
			}
			return s, fmt.Errorf("%w: %s", ErrTransitionRefused, reason)
		}
		next := s.bump()
		next.Step = StepReviewAndPay
		next.LastError = ""
		return next, nil
	case StepReviewAndPay:
		return s, fmt.Errorf("%w: booking must be submitted", ErrTransitionRefused)
	default:
		return s, ErrWizardCompleted
	}
}

// Previous moves back one page keeping all entered data
func (s State) Previous() (State, error) {
	switch s.Step {
	case StepRoomDetails:
		return s, ErrNoPreviousStep
	case StepSelectDates:
		prev := s.bump()
		prev.Step = StepRoomDetails
		return prev, nil
	case StepReviewAndPay:
		prev := s.bump()
		prev.Step = StepSelectDates
		return prev, nil
	default:
		return s, ErrWizardCompleted
	}
}

// WithRentalType switches the rental type. Dates and quote no longer apply and are reset;
// from ReviewAndPay the wizard returns to SelectDates.
func (s State) WithRentalType(rentalTypeID int64) (State, error) {
	if s.IsCompleted() {
		return s, ErrWizardCompleted
	}
	if rentalTypeID == s.Selection.RentalTypeID {
		return s, nil
	}

	next := s.bump()
	next.Selection = Selection{RentalTypeID: rentalTypeID}
	next.Quote = nil
	next.LastError = ""
	if next.Step == StepReviewAndPay {
		next.Step = StepSelectDates
	}
	return next, nil
}

// WithDates records a new stay selection and drops the previous quote
func (s State) WithDates(start, end time.Time, monthsToRent int) (State, error) {
	if s.IsCompleted() {
		return s, ErrWizardCompleted
	}
	if s.Step != StepSelectDates {
		return s, fmt.Errorf("%w: dates are selected on %s", ErrInvalidStep, StepSelectDates)
	}

	next := s.bump()
	next.Selection.StartDate = domain.DateOnly(start)
	next.Selection.EndDate = domain.DateOnly(end)
	next.Selection.MonthsToRent = monthsToRent
	next.Quote = nil
	next.LastError = ""
	return next, nil
}

// ApplyQuote stores the availability result computed for the given revision.
// A result computed against an older revision is dropped with ErrStaleResult.
// evalErr is surfaced as LastError; the quote itself is kept so the page can show conflicts.
func (s State) ApplyQuote(revision int64, result reservation.Result, evalErr error) (State, error) {
	if s.IsCompleted() {
		return s, ErrWizardCompleted
	}
	if revision != s.Revision {
		return s, fmt.Errorf("%w: computed for revision %d, current %d", ErrStaleResult, revision, s.Revision)
	}

	next := s.bump()
	q := result
	next.Quote = &q
	next.LastError = ""
	if evalErr != nil {
		next.LastError = evalErr.Error()
	}
	return next, nil
}

// Confirm completes the wizard with the created booking
func (s State) Confirm(revision int64, booking domain.Booking) (State, error) {
	if s.IsCompleted() {
		return s, ErrWizardCompleted
	}
	if s.Step != StepReviewAndPay {
		return s, fmt.Errorf("%w: confirmation requires %s", ErrInvalidStep, StepReviewAndPay)
	}
	if revision != s.Revision {
		return s, fmt.Errorf("%w: computed for revision %d, current %d", ErrStaleResult, revision, s.Revision)
	}

	next := s.bump()
	next.Step = StepConfirmation
	next.Booking = &booking
	next.LastError = ""
	return next, nil
}

// Fail keeps the wizard on ReviewAndPay and records why the submission was rejected
func (s State) Fail(revision int64, cause error) (State, error) {
	if s.IsCompleted() {
		return s, ErrWizardCompleted
	}
	if revision != s.Revision {
		return s, fmt.Errorf("%w: computed for revision %d, current %d", ErrStaleResult, revision, s.Revision)
	}

	next := s.bump()
	if cause != nil {
		next.LastError = cause.Error()
	}
	return next, nil
}
