package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// RegistrationService is the operational side of the system: status
// lifecycle, directory search and pass resolution.
type RegistrationService struct {
	regRepo  ports.RegistrationRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewRegistrationService(regRepo ports.RegistrationRepo, notifier ports.Notifier, logger logger.Logger) *RegistrationService {
	return &RegistrationService{
		regRepo:  regRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Transition moves a registration to the target status. Re-requesting
// the current status is a no-op, not an error. Cancelled is terminal.
func (s *RegistrationService) Transition(ctx context.Context, id string, target domain.RegistrationStatus) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if reg.Status == target {
		return reg, nil
	}
	if !reg.Status.CanTransitionTo(target) {
		if reg.Status == domain.StatusCancelled {
			return nil, domain.ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, reg.Status, target)
	}

	if err = s.regRepo.UpdateStatus(ctx, id, reg.Status, target); err != nil {
		return nil, err
	}

	s.logger.Info("registration status changed",
		logger.String("registration_id", id),
		logger.String("from", string(reg.Status)),
		logger.String("to", string(target)),
	)

	reg.Status = target
	return reg, nil
}

// ResolvePass locates a registration from operator input. It is a pure
// read: the check-in side effect lives in CheckIn, composed from this
// and Transition explicitly.
func (s *RegistrationService) ResolvePass(ctx context.Context, query string) (*domain.Registration, error) {
	normalized := domain.NormalizePassQuery(query)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty pass query", domain.ErrValidation)
	}

	reg, err := s.regRepo.GetByPassID(ctx, normalized)
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, err
	}

	digits := domain.PassDigits(normalized)
	if digits == "" {
		return nil, domain.ErrPassNotFound
	}

	matches, err := s.regRepo.FindByPassDigits(ctx, digits)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, domain.ErrPassNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, domain.ErrAmbiguousPass
	}
}

// CheckIn resolves a pass and, if the registration is not yet checked
// in, transitions it. Both steps are idempotent on their own; a second
// scan of the same badge returns the registration unchanged.
func (s *RegistrationService) CheckIn(ctx context.Context, query string) (*domain.Registration, error) {
	reg, err := s.ResolvePass(ctx, query)
	if err != nil {
		return nil, err
	}

	if reg.Status == domain.StatusCheckedIn {
		return reg, nil
	}
	if reg.Status == domain.StatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	return s.Transition(ctx, reg.ID, domain.StatusCheckedIn)
}

func (s *RegistrationService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	if q.Status != "" {
		if _, err := domain.ParseStatus(q.Status); err != nil {
			return nil, err
		}
	}
	if q.SortBy != "" {
		switch q.SortBy {
		case domain.SortByCreatedAt, domain.SortByStatus, domain.SortByAttendeeName,
			domain.SortByAttendeeEmail, domain.SortByEventName:
		default:
			return nil, fmt.Errorf("%w: unsupported sort field %q", domain.ErrValidation, q.SortBy)
		}
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	return s.regRepo.Search(ctx, q)
}

// SendReminders mails attendees whose selected occurrences start within
// the window and marks each selection so the next tick skips it.
func (s *RegistrationService) SendReminders(ctx context.Context, window time.Duration) (int, error) {
	items, err := s.regRepo.ListDueReminders(ctx, window)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, item := range items {
		s.notifier.NotifyOccurrenceReminder(ctx, item)
		if err := s.regRepo.MarkReminded(ctx, item.RegistrationID, item.OccurrenceID); err != nil {
			s.logger.Error("failed to mark reminder",
				logger.String("registration_id", item.RegistrationID),
				logger.String("occurrence_id", item.OccurrenceID),
				logger.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	return sent, nil
}
