package domain

import "time"

// Profile represents a resident known to the service.
// Created on the first inbound message or by an admin.
type Profile struct {
	ID          int64
	PhoneNumber string // E.164, unique
	Name        string
	// MonthlyCharge текущий размер ежемесячного взноса на обслуживание
	MonthlyCharge   float64
	MaintenancePaid bool
	CreatedAt       time.Time
}

// JoinYearMonth returns the (year, month) of the month the resident joined
func (p *Profile) JoinYearMonth() (int, time.Month) {
	return p.CreatedAt.Year(), p.CreatedAt.Month()
}
