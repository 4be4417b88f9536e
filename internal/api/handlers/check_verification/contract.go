package check_verification

import (
	"context"

	checkVerification "github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
)

type CheckVerificationUseCase interface {
	Execute(ctx context.Context, req *checkVerification.Request) (*checkVerification.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
