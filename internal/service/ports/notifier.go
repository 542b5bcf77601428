package ports

import (
	"context"

	"github.com/eventpass/eventpass/internal/domain"
)

type Notifier interface {
	NotifyRegistrationAdmitted(ctx context.Context, attendee *domain.Attendee, event *domain.Event, reg *domain.Registration)
	NotifyOccurrenceReminder(ctx context.Context, item domain.ReminderItem)
}
