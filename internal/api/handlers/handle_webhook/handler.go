package handle_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/usecase/handle_message"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "отсутствует номер отправителя или текст сообщения"
)

type Handler struct {
	usecase MessageHandler
	logger  Logger
}

func NewHandler(usecase MessageHandler, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.usecase.Execute(r.Context(), req.ToUsecaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, handle_message.ErrInvalidInput):
			h.logger.Warn("POST /webhook - Invalid input: from=%s", req.From)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /webhook - Failed to handle message: from=%s, error=%v", req.From, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhook - Message handled: from=%s", req.From)
	handlers.RespondJSON(w, http.StatusOK, WebhookResponse{Reply: result.Reply})
}
