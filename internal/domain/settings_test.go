package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

func validSettings() *BookingSettings {
	start, _ := types.NewTimeStringFromString("09:00")
	end, _ := types.NewTimeStringFromString("21:00")
	return &BookingSettings{
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: 60,
		WorkingDays:         []int{1, 2, 3, 4, 5},
	}
}

func TestBookingSettings_Validate(t *testing.T) {
	assert.NoError(t, validSettings().Validate())

	s := validSettings()
	s.SlotDurationMinutes = 0
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = validSettings()
	s.StartTime, s.EndTime = s.EndTime, s.StartTime
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = validSettings()
	s.WorkingDays = nil
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = validSettings()
	s.WorkingDays = []int{0}
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = validSettings()
	s.WorkingDays = []int{8}
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
}

func TestBookingSettings_IsWorkingDay(t *testing.T) {
	s := validSettings() // Пн-Пт

	assert.True(t, s.IsWorkingDay(time.Monday))
	assert.True(t, s.IsWorkingDay(time.Friday))
	assert.False(t, s.IsWorkingDay(time.Saturday))
	assert.False(t, s.IsWorkingDay(time.Sunday))

	// ISO: воскресенье - это 7, а не 0
	s.WorkingDays = []int{7}
	assert.True(t, s.IsWorkingDay(time.Sunday))
	assert.False(t, s.IsWorkingDay(time.Monday))
}

func TestBooking_DaysSinceCreation(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	b := &Booking{CreatedAt: now.Add(-23 * time.Hour)}
	assert.Equal(t, 0, b.DaysSinceCreation(now))

	b = &Booking{CreatedAt: now.Add(-25 * time.Hour)}
	assert.Equal(t, 1, b.DaysSinceCreation(now))

	b = &Booking{CreatedAt: now.AddDate(0, 0, -3)}
	assert.Equal(t, 3, b.DaysSinceCreation(now))
}
