package payment_sweep

// Report итог одного прохода по бронированиям
type Report struct {
	Scanned   int // Сколько бронирований просмотрено
	Reminded  int // Отправлено напоминаний об оплате
	Cancelled int // Отменено за неуплату
	Confirmed int // Отправлено подтверждений оплаты
	Failures  int // Ошибок по отдельным бронированиям (проход продолжен)
}
