package domain

import "time"

// SessionStep этап диалога бронирования для одного номера телефона
type SessionStep string

const (
	StepIdle         SessionStep = "idle"
	StepAwaitingDate SessionStep = "awaiting_date"
	StepAwaitingSlot SessionStep = "awaiting_slot"
)

// ConversationState is the per-phone-number state of the booking dialogue.
// Date and Slots are only meaningful in StepAwaitingSlot: the snapshot of
// slots shown to the user is immutable for the turn, and a later "slot N"
// reply always resolves against this exact list.
type ConversationState struct {
	Step  SessionStep
	Date  time.Time
	Slots []Slot
}

// NewIdleState returns the initial state of a conversation
func NewIdleState() *ConversationState {
	return &ConversationState{Step: StepIdle}
}

// NewAwaitingDateState returns a state waiting for a date input,
// with any previously stored date/slots discarded.
func NewAwaitingDateState() *ConversationState {
	return &ConversationState{Step: StepAwaitingDate}
}

// NewAwaitingSlotState returns a state holding the slot snapshot shown
// to the user for the selected date.
func NewAwaitingSlotState(date time.Time, slots []Slot) *ConversationState {
	return &ConversationState{
		Step:  StepAwaitingSlot,
		Date:  date,
		Slots: slots,
	}
}
