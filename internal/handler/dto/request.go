package dto

type CreateEventRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactEmail string `json:"contact_email"`
	Capacity     *int   `json:"capacity" binding:"omitempty,gt=0"`
}

type OccurrenceEntry struct {
	ID        string  `json:"id"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   *string `json:"end_time"`
	Location  string  `json:"location"`
}

type ReconcileOccurrencesRequest struct {
	Occurrences []OccurrenceEntry `json:"occurrences"`
}

type RegisterRequest struct {
	Email         string   `json:"email" binding:"required"`
	FullName      string   `json:"full_name" binding:"required"`
	Phone         string   `json:"phone"`
	Company       string   `json:"company"`
	OccurrenceIDs []string `json:"occurrence_ids" binding:"required,min=1"`
}

type PatchStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CheckInRequest struct {
	Query string `json:"query" binding:"required"`
}
