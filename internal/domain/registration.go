package domain

import (
	"fmt"
	"time"
)

type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "registered"
	StatusCheckedIn  RegistrationStatus = "checked-in"
	StatusCancelled  RegistrationStatus = "cancelled"
)

// ParseStatus validates an operator-supplied status value.
func ParseStatus(s string) (RegistrationStatus, error) {
	switch RegistrationStatus(s) {
	case StatusRegistered, StatusCheckedIn, StatusCancelled:
		return RegistrationStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
}

// CanTransitionTo encodes the registration lifecycle:
// registered -> checked-in, registered|checked-in -> cancelled,
// cancelled is terminal.
func (s RegistrationStatus) CanTransitionTo(target RegistrationStatus) bool {
	switch s {
	case StatusRegistered:
		return target == StatusCheckedIn || target == StatusCancelled
	case StatusCheckedIn:
		return target == StatusCancelled
	default:
		return false
	}
}

type Registration struct {
	ID            string             `json:"id"`
	EventID       string             `json:"event_id"`
	AttendeeID    string             `json:"attendee_id"`
	PassID        string             `json:"pass_id"`
	PassSeq       int64              `json:"pass_seq"`
	Status        RegistrationStatus `json:"status"`
	OccurrenceIDs []string           `json:"occurrence_ids"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type AdmitInput struct {
	EventID       string
	Attendee      AttendeeInput
	OccurrenceIDs []string
}

// ReminderItem is one not-yet-reminded occurrence selection joined with
// the data needed to address the reminder.
type ReminderItem struct {
	RegistrationID string
	OccurrenceID   string
	PassID         string
	AttendeeEmail  string
	AttendeeName   string
	EventName      string
	StartTime      time.Time
}
