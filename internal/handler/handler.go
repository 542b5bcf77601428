package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ReconcileOccurrences(ctx context.Context, eventID string, desired []domain.OccurrenceInput) ([]domain.Occurrence, error)
}

type AdmissionSvc interface {
	Admit(ctx context.Context, input domain.AdmitInput) (*domain.Registration, bool, error)
}

type RegistrationSvc interface {
	Transition(ctx context.Context, id string, target domain.RegistrationStatus) (*domain.Registration, error)
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)
	CheckIn(ctx context.Context, query string) (*domain.Registration, error)
}

type BadgeSvc interface {
	RenderBadge(ctx context.Context, passQuery string) ([]byte, error)
}

type Handler struct {
	eventService        EventSvc
	admissionService    AdmissionSvc
	registrationService RegistrationSvc
	badgeService        BadgeSvc
}

func NewHandler(eventService EventSvc, admissionService AdmissionSvc, registrationService RegistrationSvc, badgeService BadgeSvc) *Handler {
	return &Handler{
		eventService:        eventService,
		admissionService:    admissionService,
		registrationService: registrationService,
		badgeService:        badgeService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		Capacity:     req.Capacity,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// ReconcileOccurrences replaces the event's schedule with the desired
// one; the whole edit either applies or leaves the schedule untouched.
func (h *Handler) ReconcileOccurrences(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: "invalid event id"})
		return
	}

	var req dto.ReconcileOccurrencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: err.Error()})
		return
	}

	desired := make([]domain.OccurrenceInput, 0, len(req.Occurrences))
	for _, entry := range req.Occurrences {
		start, err := time.Parse(time.RFC3339, entry.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Kind: "validation", Error: "invalid start_time, expected RFC3339",
			})
			return
		}
		input := domain.OccurrenceInput{ID: entry.ID, StartTime: start, Location: entry.Location}
		if entry.EndTime != nil {
			end, err := time.Parse(time.RFC3339, *entry.EndTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Kind: "validation", Error: "invalid end_time, expected RFC3339",
				})
				return
			}
			input.EndTime = &end
		}
		desired = append(desired, input)
	}

	final, err := h.eventService.ReconcileOccurrences(c.Request.Context(), eventID, desired)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OccurrenceResponse, 0, len(final))
	for _, o := range final {
		resp = append(resp, dto.ToOccurrenceResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: "invalid event id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: err.Error()})
		return
	}

	reg, created, err := h.admissionService.Admit(c.Request.Context(), domain.AdmitInput{
		EventID: eventID,
		Attendee: domain.AttendeeInput{
			Email:    req.Email,
			FullName: req.FullName,
			Phone:    req.Phone,
			Company:  req.Company,
		},
		OccurrenceIDs: req.OccurrenceIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK // idempotent re-submit
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToRegistrationResponse(reg))
}

func (h *Handler) PatchStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: "invalid registration id"})
		return
	}

	var req dto.PatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: err.Error()})
		return
	}

	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	reg, err := h.registrationService.Transition(c.Request.Context(), id, target)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) SearchRegistrations(c *ginext.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	q := domain.SearchQuery{
		Status:       c.Query("status"),
		EventID:      c.Query("event_id"),
		OccurrenceID: c.Query("occurrence_id"),
		FreeText:     c.Query("q"),
		SortBy:       c.Query("sort_by"),
		SortDesc:     c.Query("order") == "desc",
		Limit:        limit,
		Offset:       offset,
	}

	// Both filters compare against uuid columns; let a typo fail here
	// instead of as a database type error.
	if q.EventID != "" {
		if _, err := uuid.Parse(q.EventID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: "invalid event_id filter"})
			return
		}
	}
	if q.OccurrenceID != "" {
		if _, err := uuid.Parse(q.OccurrenceID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: "invalid occurrence_id filter"})
			return
		}
	}

	result, err := h.registrationService.Search(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(result))
}

func (h *Handler) CheckIn(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: err.Error()})
		return
	}

	reg, err := h.registrationService.CheckIn(c.Request.Context(), req.Query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) GetBadge(c *ginext.Context) {
	doc, err := h.badgeService.RenderBadge(c.Request.Context(), c.Param("passID"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=badge.pdf")
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrOccurrenceNotFound),
		errors.Is(err, domain.ErrAttendeeNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrPassNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Kind: "not_found", Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrDuplicateStartTime),
		errors.Is(err, domain.ErrAdmissionConflict),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Kind: "conflict", Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAmbiguousPass):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Kind: "validation", Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Kind: "internal", Error: "internal server error"})
	}
}
