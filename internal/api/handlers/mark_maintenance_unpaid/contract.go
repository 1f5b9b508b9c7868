package mark_maintenance_unpaid

import "context"

type MaintenanceService interface {
	MarkUnpaid(ctx context.Context, paymentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
