package whatsapp

import "errors"

var (
	// ErrSendFailed возвращается, когда шлюз отклонил сообщение
	ErrSendFailed = errors.New("whatsapp client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")
)
