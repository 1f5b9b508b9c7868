package handle_webhook

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/usecase/handle_message"
)

type MessageHandler interface {
	Execute(ctx context.Context, req *handle_message.Request) (*handle_message.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
