package run_payment_sweep

import (
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

type Handler struct {
	usecase PaymentSweep
	logger  Logger
}

func NewHandler(usecase PaymentSweep, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sweeps/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.usecase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /sweeps/payments - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sweeps/payments - Sweep completed: scanned=%d, reminded=%d, cancelled=%d, confirmed=%d, failures=%d",
		report.Scanned, report.Reminded, report.Cancelled, report.Confirmed, report.Failures)
	handlers.RespondJSON(w, http.StatusOK, FromReport(report))
}
