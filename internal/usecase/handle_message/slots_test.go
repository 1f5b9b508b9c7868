package handle_message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

func testSettings(start, end string, duration int) *domain.BookingSettings {
	s, _ := types.NewTimeStringFromString(start)
	e, _ := types.NewTimeStringFromString(end)
	return &domain.BookingSettings{
		StartTime:           s,
		EndTime:             e,
		SlotDurationMinutes: duration,
		WorkingDays:         []int{1, 2, 3, 4, 5, 6, 7},
	}
}

func confirmedBooking(start, end string) *domain.Booking {
	s, _ := types.NewTimeStringFromString(start)
	e, _ := types.NewTimeStringFromString(end)
	return &domain.Booking{
		BookingDate: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		StartTime:   s,
		EndTime:     e,
		Status:      domain.StatusConfirmed,
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots, err := generateSlots(testSettings("09:00", "17:00", 60), nil)
	require.NoError(t, err)

	require.Len(t, slots, 8)
	assert.Equal(t, "09:00 - 10:00", slots[0].Label)
	assert.Equal(t, "16:00 - 17:00", slots[7].Label)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateSlots_PartialTailDropped(t *testing.T) {
	// 09:00-17:30 по 60 минут: хвост 17:00-17:30 не нарезается
	slots, err := generateSlots(testSettings("09:00", "17:30", 60), nil)
	require.NoError(t, err)

	require.Len(t, slots, 8)
	assert.Equal(t, "16:00 - 17:00", slots[7].Label)
}

func TestGenerateSlots_BookedSlotUnavailable(t *testing.T) {
	confirmed := []*domain.Booking{confirmedBooking("11:00", "12:00")}

	slots, err := generateSlots(testSettings("09:00", "17:00", 60), confirmed)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	for i, slot := range slots {
		if i == 2 {
			assert.False(t, slot.Available, "slot %s must be booked", slot.Label)
		} else {
			assert.True(t, slot.Available, "slot %s must be free", slot.Label)
		}
	}

	free := availableSlots(slots)
	assert.Len(t, free, 7)
}

func TestGenerateSlots_CancelledBookingFreesSlot(t *testing.T) {
	cancelled := confirmedBooking("11:00", "12:00")
	cancelled.Status = domain.StatusCancelled

	slots, err := generateSlots(testSettings("09:00", "17:00", 60), []*domain.Booking{cancelled})
	require.NoError(t, err)

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateSlots_InvalidSettings(t *testing.T) {
	_, err := generateSlots(testSettings("09:00", "17:00", 0), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	_, err = generateSlots(testSettings("17:00", "09:00", 60), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("25-12-2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), date)

	// Разделители "/" и "." равнозначны
	date, err = parseDate("25/12/2025")
	require.NoError(t, err)
	assert.Equal(t, 25, date.Day())

	date, err = parseDate("1.2.2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), date)

	// Календарно некорректные значения
	_, err = parseDate("31-02-2025")
	assert.ErrorIs(t, err, errNotACalendarDate)

	_, err = parseDate("00-01-2025")
	assert.ErrorIs(t, err, errNotACalendarDate)
}

func TestLooksLikeDate(t *testing.T) {
	assert.True(t, looksLikeDate("25-12-2025"))
	assert.True(t, looksLikeDate("1/1/2026"))
	assert.False(t, looksLikeDate("hello"))
	assert.False(t, looksLikeDate("25-12-25"))
	assert.False(t, looksLikeDate("3"))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшняя дата допустима даже вечером
	assert.False(t, isDateInPast(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), now))
}
