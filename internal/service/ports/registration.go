package ports

import (
	"context"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
)

type RegistrationRepo interface {
	// Admit runs the admission transaction: event row lock, capacity
	// check, pass allocation, registration + selection inserts. On
	// success the registration's PassID, PassSeq and CreatedAt are
	// filled in.
	Admit(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	GetByEventAndAttendee(ctx context.Context, eventID, attendeeID string) (*domain.Registration, error)
	GetByPassID(ctx context.Context, passID string) (*domain.Registration, error)
	FindByPassDigits(ctx context.Context, digits string) ([]*domain.Registration, error)
	// UpdateStatus performs a compare-and-set write: the row must still
	// be in the expected prior status for the update to apply.
	UpdateStatus(ctx context.Context, id string, from, to domain.RegistrationStatus) error
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)
	ListDueReminders(ctx context.Context, window time.Duration) ([]domain.ReminderItem, error)
	MarkReminded(ctx context.Context, registrationID, occurrenceID string) error
}
