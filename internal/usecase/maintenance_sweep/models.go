package maintenance_sweep

// Report итог одного прохода по взносам
type Report struct {
	ProfilesScanned int  // Сколько профилей просмотрено
	RowsCreated     int  // Создано строк взносов
	InvoicesSent    int  // Отправлено уведомлений о новом месяце
	RemindersSent   int  // Отправлено консолидированных напоминаний
	Failures        int  // Ошибок по отдельным профилям (проход продолжен)
	ReminderSkipped bool // Напоминания пропущены (день месяца < порога)
}
