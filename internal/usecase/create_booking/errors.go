package create_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот уже занят подтвержденным
	// бронированием (проверкой перед вставкой или констрейнтом БД)
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
