package ports

import (
	"context"

	"github.com/eventpass/eventpass/internal/domain"
)

type AttendeeRepo interface {
	// UpsertByEmail creates the attendee on first sight of the email and
	// merge-updates on later ones, filling only empty fields.
	UpsertByEmail(ctx context.Context, input domain.AttendeeInput) (*domain.Attendee, error)
	GetByID(ctx context.Context, id string) (*domain.Attendee, error)
}
