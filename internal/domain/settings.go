package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// BookingSettings represents the singleton operating-hours configuration
// for the hall. Mutated only through the admin surface; the booking core
// treats it as read-only.
type BookingSettings struct {
	ID                  int64
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	// WorkingDays дни недели, доступные для бронирования (ISO: 1=Пн .. 7=Вс)
	WorkingDays []int
	UpdatedAt   time.Time
}

// Validate проверяет корректность конфигурации.
// Некорректная конфигурация - это ошибка оператора, а не пользователя.
func (s *BookingSettings) Validate() error {
	if s.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidSettings, s.SlotDurationMinutes)
	}
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidSettings, err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidSettings, err)
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("%w: end time %s must be after start time %s", ErrInvalidSettings, s.EndTime, s.StartTime)
	}
	if len(s.WorkingDays) == 0 {
		return fmt.Errorf("%w: working days must not be empty", ErrInvalidSettings)
	}
	for _, d := range s.WorkingDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("%w: working day %d is out of range 1..7", ErrInvalidSettings, d)
		}
	}
	return nil
}

// IsWorkingDay returns true if the given weekday is bookable.
// WorkingDays uses ISO numbering (1=Monday .. 7=Sunday).
func (s *BookingSettings) IsWorkingDay(weekday time.Weekday) bool {
	iso := int(weekday)
	if weekday == time.Sunday {
		iso = 7
	}
	for _, d := range s.WorkingDays {
		if d == iso {
			return true
		}
	}
	return false
}
