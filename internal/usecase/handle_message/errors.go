package handle_message

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустой номер телефона или тело сообщения)
	ErrInvalidInput = errors.New("handle_message: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("handle_message: internal error")
)
