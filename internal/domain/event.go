package domain

import "time"

type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ContactEmail string    `json:"contact_email"`
	Capacity     *int      `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EventDetails struct {
	Event             Event        `json:"event"`
	RegistrationCount int          `json:"registration_count"`
	Occurrences       []Occurrence `json:"occurrences"`
}

type CreateEventInput struct {
	Name         string
	Description  string
	Location     string
	ContactEmail string
	Capacity     *int
}

// Occurrence is one scheduled, time-boxed session belonging to exactly
// one event. (event_id, start_time) is unique.
type Occurrence struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Location  string     `json:"location"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OccurrenceInput is one desired schedule entry. An empty ID means
// "create"; a non-empty ID must reference an occurrence already owned
// by the event being reconciled.
type OccurrenceInput struct {
	ID        string
	StartTime time.Time
	EndTime   *time.Time
	Location  string
}
