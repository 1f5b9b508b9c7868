package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrAlreadyPaid возвращается, когда бронирование уже оплачено
	ErrAlreadyPaid = errors.New("booking is already paid")

	// ErrCannotPay возвращается при попытке оплатить отменённое бронирование
	ErrCannotPay = errors.New("cancelled booking cannot be paid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
