package domain

import "github.com/m04kA/SMC-HallBookingService/pkg/types"

// Slot represents one bookable interval of the hall's operating day
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	Label     string // "09:00 - 10:00"
}

// Matches returns true if the slot covers exactly the given interval
func (s *Slot) Matches(start, end types.TimeString) bool {
	return s.StartTime == start && s.EndTime == end
}
