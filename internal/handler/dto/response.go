package dto

import (
	"time"

	"github.com/eventpass/eventpass/internal/domain"
)

type EventResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactEmail string `json:"contact_email"`
	Capacity     *int   `json:"capacity,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event             EventResponse        `json:"event"`
	RegistrationCount int                  `json:"registration_count"`
	Occurrences       []OccurrenceResponse `json:"occurrences"`
}

type OccurrenceResponse struct {
	ID        string  `json:"id"`
	EventID   string  `json:"event_id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Location  string  `json:"location,omitempty"`
}

type RegistrationResponse struct {
	ID            string   `json:"id"`
	EventID       string   `json:"event_id"`
	AttendeeID    string   `json:"attendee_id"`
	PassID        string   `json:"pass_id"`
	Status        string   `json:"status"`
	OccurrenceIDs []string `json:"occurrence_ids"`
	CreatedAt     string   `json:"created_at"`
}

type RegistrationViewResponse struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	EventName     string `json:"event_name"`
	AttendeeName  string `json:"attendee_name"`
	AttendeeEmail string `json:"attendee_email"`
	Company       string `json:"company,omitempty"`
	PassID        string `json:"pass_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type SearchResponse struct {
	Items []RegistrationViewResponse `json:"items"`
	Total int                        `json:"total"`
}

// ErrorResponse carries a stable machine-readable kind next to the
// human-readable message.
type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Location:     e.Location,
		ContactEmail: e.ContactEmail,
		Capacity:     e.Capacity,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	occ := make([]OccurrenceResponse, 0, len(d.Occurrences))
	for _, o := range d.Occurrences {
		occ = append(occ, ToOccurrenceResponse(o))
	}

	return EventDetailsResponse{
		Event:             ToEventResponse(&d.Event),
		RegistrationCount: d.RegistrationCount,
		Occurrences:       occ,
	}
}

func ToOccurrenceResponse(o domain.Occurrence) OccurrenceResponse {
	resp := OccurrenceResponse{
		ID:        o.ID,
		EventID:   o.EventID,
		StartTime: o.StartTime.Format(time.RFC3339),
		Location:  o.Location,
	}
	if o.EndTime != nil {
		s := o.EndTime.Format(time.RFC3339)
		resp.EndTime = &s
	}
	return resp
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:            r.ID,
		EventID:       r.EventID,
		AttendeeID:    r.AttendeeID,
		PassID:        r.PassID,
		Status:        string(r.Status),
		OccurrenceIDs: r.OccurrenceIDs,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func ToSearchResponse(res *domain.SearchResult) SearchResponse {
	items := make([]RegistrationViewResponse, 0, len(res.Items))
	for _, v := range res.Items {
		items = append(items, RegistrationViewResponse{
			ID:            v.ID,
			EventID:       v.EventID,
			EventName:     v.EventName,
			AttendeeName:  v.AttendeeName,
			AttendeeEmail: v.AttendeeEmail,
			Company:       v.Company,
			PassID:        v.PassID,
			Status:        string(v.Status),
			CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		})
	}
	return SearchResponse{Items: items, Total: res.Total}
}
