package run_maintenance_sweep

import (
	"github.com/m04kA/SMC-HallBookingService/internal/usecase/maintenance_sweep"
)

// SweepResponse итог прохода по ежемесячным взносам
type SweepResponse struct {
	ProfilesScanned int  `json:"profilesScanned"`
	RowsCreated     int  `json:"rowsCreated"`
	InvoicesSent    int  `json:"invoicesSent"`
	RemindersSent   int  `json:"remindersSent"`
	ReminderSkipped bool `json:"reminderSkipped"`
	Failures        int  `json:"failures"`
}

// FromReport конвертирует отчет usecase в HTTP response
func FromReport(r *maintenance_sweep.Report) SweepResponse {
	return SweepResponse{
		ProfilesScanned: r.ProfilesScanned,
		RowsCreated:     r.RowsCreated,
		InvoicesSent:    r.InvoicesSent,
		RemindersSent:   r.RemindersSent,
		ReminderSkipped: r.ReminderSkipped,
		Failures:        r.Failures,
	}
}
