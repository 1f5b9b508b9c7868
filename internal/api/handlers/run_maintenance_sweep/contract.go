package run_maintenance_sweep

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/usecase/maintenance_sweep"
)

type MaintenanceSweep interface {
	Execute(ctx context.Context) (*maintenance_sweep.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
