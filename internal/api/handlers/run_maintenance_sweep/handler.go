package run_maintenance_sweep

import (
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

type Handler struct {
	usecase MaintenanceSweep
	logger  Logger
}

func NewHandler(usecase MaintenanceSweep, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sweeps/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.usecase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /sweeps/maintenance - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sweeps/maintenance - Sweep completed: profiles=%d, rows_created=%d, invoices=%d, reminders=%d, failures=%d",
		report.ProfilesScanned, report.RowsCreated, report.InvoicesSent, report.RemindersSent, report.Failures)
	handlers.RespondJSON(w, http.StatusOK, FromReport(report))
}
