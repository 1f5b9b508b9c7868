package whatsapp

// SendRequest модель запроса на отправку сообщения
type SendRequest struct {
	To      string `json:"to"`      // Номер телефона получателя (E.164)
	Message string `json:"message"` // Текст сообщения
}

// SendResponse модель ответа шлюза
type SendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
