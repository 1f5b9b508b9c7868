package handle_message

import (
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// generateSlots разбивает рабочий день [start_time, end_time) на слоты
// фиксированной длительности. Неполный хвост короче одной длительности
// отбрасывается. Слот занят тогда и только тогда, когда существует
// подтвержденное бронирование с точно совпадающими началом и концом.
//
// Предусловия (прошедшая дата, нерабочий день недели) проверяет
// вызывающая сторона до генерации.
func generateSlots(settings *domain.BookingSettings, confirmed []*domain.Booking) ([]domain.Slot, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0)
	current := settings.StartTime

	for current.IsBefore(settings.EndTime) {
		next, err := current.AddMinutes(settings.SlotDurationMinutes)
		if err != nil {
			// Слот пересек полночь - остаток дня не нарезается
			break
		}
		if next.IsAfter(settings.EndTime) {
			break
		}

		slots = append(slots, domain.Slot{
			StartTime: current,
			EndTime:   next,
			Available: !slotBooked(current, next, confirmed),
			Label:     fmt.Sprintf("%s - %s", current, next),
		})

		current = next
	}

	return slots, nil
}

// availableSlots возвращает только свободные слоты - именно этот список
// показывается жителю и фиксируется в снимке сессии
func availableSlots(slots []domain.Slot) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			result = append(result, slot)
		}
	}
	return result
}

func slotBooked(start, end types.TimeString, confirmed []*domain.Booking) bool {
	for _, booking := range confirmed {
		if !booking.IsConfirmed() {
			continue
		}
		if booking.StartTime == start && booking.EndTime == end {
			return true
		}
	}
	return false
}
