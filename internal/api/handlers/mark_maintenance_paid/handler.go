package mark_maintenance_paid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/maintenance"
)

const (
	msgInvalidPaymentID = "некорректный ID взноса"
	msgNotFound         = "взнос не найден"
	msgAlreadyPaid      = "взнос уже оплачен"
)

type Handler struct {
	service MaintenanceService
	logger  Logger
}

func NewHandler(service MaintenanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/maintenance/{paymentId}/paid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentIDStr := vars["paymentId"]

	paymentID, err := strconv.ParseInt(paymentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/paid - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	err = h.service.MarkPaid(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrPaymentNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/paid - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, maintenance.ErrAlreadyPaid):
			h.logger.Warn("PATCH /maintenance/{id}/paid - Already paid: payment_id=%d", paymentID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		default:
			h.logger.Error("PATCH /maintenance/{id}/paid - Failed to mark paid: payment_id=%d, error=%v",
				paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id}/paid - Payment marked paid: payment_id=%d", paymentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
