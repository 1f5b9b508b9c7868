package payment_sweep

import (
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

func reminderText(booking *domain.Booking, dayNumber int) string {
	return fmt.Sprintf(
		"Reminder: payment of %.2f for your hall booking on %s (%s - %s) is still pending. Day %d of %d - the booking is cancelled if unpaid after day %d.",
		booking.ChargeAmount,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime, booking.EndTime,
		dayNumber, domain.BookingGracePeriodDays, domain.BookingGracePeriodDays,
	)
}

func cancellationText(booking *domain.Booking) string {
	return fmt.Sprintf(
		"Your hall booking on %s (%s - %s) has been cancelled because payment was not received within %d days.",
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime, booking.EndTime,
		domain.BookingGracePeriodDays,
	)
}

func confirmationText(booking *domain.Booking) string {
	return fmt.Sprintf(
		"Payment received - your hall booking on %s (%s - %s) is fully confirmed. Thank you!",
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime, booking.EndTime,
	)
}
