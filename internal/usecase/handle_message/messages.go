package handle_message

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Тексты ответов бота. Грамматика диалога фиксирована: дата в формате
// DD-MM-YYYY (разделители "-", "/" или "."), номер слота - целое число,
// контрольное слово "back" из любого состояния.
const (
	msgUsage = "Hi! To book the community hall, send me a date as DD-MM-YYYY (for example 25-12-2025). Type 'back' at any time to start over."

	msgStartOver = "Okay, starting over. Send me a date as DD-MM-YYYY to see available slots."

	msgInvalidDate = "That doesn't look like a valid date. Please send it as DD-MM-YYYY, for example 25-12-2025."

	msgPastDate = "That date is already in the past. Please pick today or a future date."

	msgNonWorkingDay = "The hall is not available for booking on that day of the week. Please pick another date."

	msgNoSlots = "All slots are already booked for %s. Please try another date."

	msgInvalidSlot = "Please reply with a slot number between 1 and %d, or type 'back' to pick another date."

	msgSlotConflict = "Sorry, that slot was taken just now. Pick another number from the list, or type 'back' to choose a new date."

	msgTryAgain = "Something went wrong on our side. Please try again in a moment."
)

// formatSlotList формирует сообщение со списком доступных слотов;
// номер в списке - это и есть ожидаемый ответ жителя
func formatSlotList(date time.Time, slots []domain.Slot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Available slots for %s:\n", date.Format(domain.DateFormat))
	for i, slot := range slots {
		fmt.Fprintf(&b, "%d. %s\n", i+1, slot.Label)
	}
	b.WriteString("Reply with the slot number to book.")
	return b.String()
}

// formatConfirmation формирует сообщение об успешном бронировании
func formatConfirmation(profile *domain.Profile, date time.Time, slot domain.Slot, charge float64) string {
	var b strings.Builder
	b.WriteString("Your booking is confirmed!\n")
	fmt.Fprintf(&b, "Date: %s\n", date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Time: %s\n", slot.Label)
	fmt.Fprintf(&b, "Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "Phone: %s\n", profile.PhoneNumber)
	fmt.Fprintf(&b, "Payment of %.2f is due within %d days to keep the booking.", charge, domain.BookingGracePeriodDays)
	return b.String()
}
