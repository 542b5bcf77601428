package domain

import "time"

// Sortable fields for registration search. Anything outside this set is
// rejected before it can reach the query builder.
const (
	SortByCreatedAt     = "created_at"
	SortByStatus        = "status"
	SortByAttendeeName  = "attendee_name"
	SortByAttendeeEmail = "attendee_email"
	SortByEventName     = "event_name"
)

type SearchQuery struct {
	Status       string
	EventID      string
	OccurrenceID string
	FreeText     string
	SortBy       string
	SortDesc     bool
	Limit        int
	Offset       int
}

// RegistrationView is a registration joined with the attendee and event
// columns the operations desk filters and sorts on.
type RegistrationView struct {
	ID            string             `json:"id"`
	EventID       string             `json:"event_id"`
	EventName     string             `json:"event_name"`
	AttendeeID    string             `json:"attendee_id"`
	AttendeeName  string             `json:"attendee_name"`
	AttendeeEmail string             `json:"attendee_email"`
	Company       string             `json:"company"`
	PassID        string             `json:"pass_id"`
	Status        RegistrationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

type SearchResult struct {
	Items []RegistrationView `json:"items"`
	Total int                `json:"total"`
}
