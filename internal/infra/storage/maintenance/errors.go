package maintenance

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда строка взноса не найдена
	ErrPaymentNotFound = errors.New("maintenance.repository: payment not found")

	// ErrMonthExists возвращается при попытке создать вторую строку
	// взноса для той же пары (профиль, год, месяц)
	ErrMonthExists = errors.New("maintenance.repository: month already exists for profile")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("maintenance.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("maintenance.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("maintenance.repository: failed to scan row")
)
