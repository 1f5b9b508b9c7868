package domain

import "errors"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "02-01-2006" // DD-MM-YYYY, как в диалоге с жителем
)

// Payment lifecycle constants
const (
	// BookingGracePeriodDays число суток с момента создания брони,
	// после которых неоплаченная бронь отменяется
	BookingGracePeriodDays = 3

	// MaintenanceReminderStartDay день месяца, начиная с которого
	// рассылаются напоминания о взносах
	MaintenanceReminderStartDay = 3
)

// ErrInvalidSettings возвращается при некорректной конфигурации
// рабочих часов (ошибка оператора, не пользователя)
var ErrInvalidSettings = errors.New("domain: invalid booking settings")
