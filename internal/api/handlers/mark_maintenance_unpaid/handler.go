package mark_maintenance_unpaid

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
	msgNotPaid          = "взнос не отмечен оплаченным"
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

// Handle PATCH /api/v1/maintenance/{paymentId}/unpaid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentIDStr := vars["paymentId"]

	paymentID, err := strconv.ParseInt(paymentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /maintenance/{id}/unpaid - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	err = h.service.MarkUnpaid(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrPaymentNotFound):
			h.logger.Warn("PATCH /maintenance/{id}/unpaid - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, maintenance.ErrAlreadyUnpaid):
			h.logger.Warn("PATCH /maintenance/{id}/unpaid - Not paid: payment_id=%d", paymentID)
			handlers.RespondConflict(w, msgNotPaid)

		default:
			h.logger.Error("PATCH /maintenance/{id}/unpaid - Failed to mark unpaid: payment_id=%d, error=%v",
				paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /maintenance/{id}/unpaid - Payment reverted to unpaid: payment_id=%d", paymentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
