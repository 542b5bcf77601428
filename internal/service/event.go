package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo           ports.EventRepo
	occurrenceRepo ports.OccurrenceRepo
}

func NewEventService(repo ports.EventRepo, occurrenceRepo ports.OccurrenceRepo) *EventService {
	return &EventService{
		repo:           repo,
		occurrenceRepo: occurrenceRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive when set", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Description:  input.Description,
		Location:     input.Location,
		ContactEmail: input.ContactEmail,
		Capacity:     input.Capacity,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	details.Occurrences, err = s.occurrenceRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ReconcileOccurrences validates the desired schedule and applies it
// atomically. Two desired entries sharing a start time are rejected up
// front; the same collision against persisted rows surfaces from the
// store's unique constraint as the same conflict error.
func (s *EventService) ReconcileOccurrences(ctx context.Context, eventID string, desired []domain.OccurrenceInput) ([]domain.Occurrence, error) {
	seen := make(map[int64]bool, len(desired))
	for i, d := range desired {
		if d.StartTime.IsZero() {
			return nil, fmt.Errorf("%w: occurrence %d has no start time", domain.ErrValidation, i)
		}
		if d.EndTime != nil && !d.EndTime.After(d.StartTime) {
			return nil, fmt.Errorf("%w: occurrence %d ends before it starts", domain.ErrValidation, i)
		}
		key := d.StartTime.UTC().Unix()
		if seen[key] {
			return nil, domain.ErrDuplicateStartTime
		}
		seen[key] = true
	}

	return s.occurrenceRepo.Reconcile(ctx, eventID, desired)
}
