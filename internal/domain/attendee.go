package domain

import "time"

// Attendee is keyed naturally by email: the first registration for an
// email creates the row, later registrations merge-update it.
type Attendee struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AttendeeInput struct {
	Email    string
	FullName string
	Phone    string
	Company  string
}
