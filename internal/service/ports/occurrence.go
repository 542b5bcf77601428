package ports

import (
	"context"

	"github.com/eventpass/eventpass/internal/domain"
)

type OccurrenceRepo interface {
	// Reconcile replaces the persisted schedule of an event with the
	// desired one inside a single transaction and returns the final
	// schedule ordered by start time.
	Reconcile(ctx context.Context, eventID string, desired []domain.OccurrenceInput) ([]domain.Occurrence, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Occurrence, error)
}
