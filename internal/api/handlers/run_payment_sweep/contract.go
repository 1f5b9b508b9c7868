package run_payment_sweep

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/usecase/payment_sweep"
)

type PaymentSweep interface {
	Execute(ctx context.Context) (*payment_sweep.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
