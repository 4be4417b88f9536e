package booking_wizard

import (
	"context"

	wizardUC "github.com/rusunawa-id/booking-service/internal/usecase/booking_wizard"
	"github.com/rusunawa-id/booking-service/internal/wizard"
)

type BookingWizardUseCase interface {
	Start(ctx context.Context, req *wizardUC.StartRequest) (*wizard.State, error)
	Get(ctx context.Context, req *wizardUC.SessionRequest) (*wizard.State, error)
	SelectDates(ctx context.Context, req *wizardUC.DatesRequest) (*wizard.State, error)
	Next(ctx context.Context, req *wizardUC.SessionRequest) (*wizard.State, error)
	Previous(ctx context.Context, req *wizardUC.SessionRequest) (*wizard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
