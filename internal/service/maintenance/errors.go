package maintenance

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда строка взноса не найдена
	ErrPaymentNotFound = errors.New("maintenance payment not found")

	// ErrAlreadyPaid возвращается при повторной отметке об оплате
	ErrAlreadyPaid = errors.New("maintenance payment is already paid")

	// ErrAlreadyUnpaid возвращается при снятии отметки с неоплаченной строки
	ErrAlreadyUnpaid = errors.New("maintenance payment is not paid")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
