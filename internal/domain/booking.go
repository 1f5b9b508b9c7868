package domain

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// BookingStatus represents the status of a hall booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking represents a confirmed reservation of the community hall
// for a single time slot on a single date.
type Booking struct {
	ID            int64
	ProfileID     int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        BookingStatus
	PaymentStatus PaymentStatus
	ChargeAmount  float64

	// Lifecycle flags driven by the payment sweeps
	ConfirmationSent bool
	LastReminderAt   *time.Time

	CreatedAt time.Time
}

// IsConfirmed returns true if the booking is still active
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsPaymentPending returns true if the booking has not been paid yet
func (b *Booking) IsPaymentPending() bool {
	return b.PaymentStatus == PaymentPending
}

// DaysSinceCreation returns the number of whole days elapsed since the
// booking was created (floor division by 24h).
func (b *Booking) DaysSinceCreation(now time.Time) int {
	return int(now.Sub(b.CreatedAt).Hours() / 24)
}

// ReminderSentOn returns true if a payment reminder was already sent on
// the given calendar day.
func (b *Booking) ReminderSentOn(day time.Time) bool {
	if b.LastReminderAt == nil {
		return false
	}
	y1, m1, d1 := b.LastReminderAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BookingsFilter фильтр для выборки бронирований (админская выдача)
type BookingsFilter struct {
	Date          *time.Time     // Конкретная дата (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	PaymentStatus *PaymentStatus // Фильтр по статусу оплаты (опционально)
}
