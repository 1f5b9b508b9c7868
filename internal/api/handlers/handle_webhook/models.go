package handle_webhook

import (
	"github.com/m04kA/SMC-HallBookingService/internal/usecase/handle_message"
)

// WebhookRequest HTTP request model входящего сообщения WhatsApp
type WebhookRequest struct {
	From string `json:"from"` // Номер отправителя (E.164)
	Body string `json:"body"` // Текст сообщения
	Name string `json:"name"` // Имя отправителя из мессенджера
}

// WebhookResponse HTTP response model: ровно один ответ на сообщение
type WebhookResponse struct {
	Reply string `json:"reply"`
}

// ToUsecaseRequest конвертирует HTTP request в модель usecase
func (r *WebhookRequest) ToUsecaseRequest() *handle_message.Request {
	return &handle_message.Request{
		PhoneNumber: r.From,
		Body:        r.Body,
		DisplayName: r.Name,
	}
}
