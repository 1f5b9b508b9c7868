package domain

import (
	"fmt"
	"time"
)

// MaintenanceStatus represents the payment state of a monthly ledger row
type MaintenanceStatus string

const (
	MaintenanceUnpaid MaintenanceStatus = "unpaid"
	MaintenancePaid   MaintenanceStatus = "paid"
)

// MaintenancePayment represents one resident's maintenance due for one
// calendar month. Unique per (profile, year, month).
type MaintenancePayment struct {
	ID        int64
	ProfileID int64
	Year      int
	Month     int // 1..12
	// Amount снимок размера взноса на момент создания строки
	Amount float64
	Status MaintenanceStatus

	PaidDate         *time.Time
	ConfirmationSent bool
	LastReminderAt   *time.Time

	CreatedAt time.Time
}

// IsUnpaid returns true if the row is still outstanding
func (m *MaintenancePayment) IsUnpaid() bool {
	return m.Status == MaintenanceUnpaid
}

// MonthLabel returns a human-readable label like "March 2024"
func (m *MaintenancePayment) MonthLabel() string {
	return fmt.Sprintf("%s %d", time.Month(m.Month).String(), m.Year)
}

// ReminderSentOn returns true if a reminder was already sent on the
// given calendar day.
func (m *MaintenancePayment) ReminderSentOn(day time.Time) bool {
	if m.LastReminderAt == nil {
		return false
	}
	y1, mo1, d1 := m.LastReminderAt.Date()
	y2, mo2, d2 := day.Date()
	return y1 == y2 && mo1 == mo2 && d1 == d2
}
