package maintenance_sweep

import "errors"

var (
	// ErrInternal возвращается, когда проход не удалось даже начать
	ErrInternal = errors.New("maintenance_sweep: internal error")
)
