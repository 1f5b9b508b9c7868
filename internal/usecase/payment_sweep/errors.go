package payment_sweep

import "errors"

var (
	// ErrInternal возвращается, когда проход не удалось даже начать
	// (например, не читается список бронирований)
	ErrInternal = errors.New("payment_sweep: internal error")
)
