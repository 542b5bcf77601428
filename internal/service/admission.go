package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// maxAdmitAttempts bounds retries when a concurrent admission trips a
// uniqueness constraint between the capacity read and the insert.
const maxAdmitAttempts = 3

type AdmissionService struct {
	eventRepo      ports.EventRepo
	occurrenceRepo ports.OccurrenceRepo
	attendeeRepo   ports.AttendeeRepo
	regRepo        ports.RegistrationRepo
	notifier       ports.Notifier
	logger         logger.Logger
}

func NewAdmissionService(
	eventRepo ports.EventRepo,
	occurrenceRepo ports.OccurrenceRepo,
	attendeeRepo ports.AttendeeRepo,
	regRepo ports.RegistrationRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *AdmissionService {
	return &AdmissionService{
		eventRepo:      eventRepo,
		occurrenceRepo: occurrenceRepo,
		attendeeRepo:   attendeeRepo,
		regRepo:        regRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Admit validates and admits one registration. The returned bool is
// false when the attendee was already registered for the event: the
// existing registration comes back unchanged and nothing counts twice
// against capacity.
func (s *AdmissionService) Admit(ctx context.Context, input domain.AdmitInput) (*domain.Registration, bool, error) {
	input.Attendee.Email = strings.TrimSpace(strings.ToLower(input.Attendee.Email))
	if !isValidEmail(input.Attendee.Email) {
		return nil, false, fmt.Errorf("%w: invalid attendee email", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Attendee.FullName) == "" {
		return nil, false, fmt.Errorf("%w: attendee name is required", domain.ErrValidation)
	}
	if len(input.OccurrenceIDs) == 0 {
		return nil, false, fmt.Errorf("%w: at least one occurrence must be selected", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, false, err
	}

	occurrences, err := s.occurrenceRepo.ListByEvent(ctx, input.EventID)
	if err != nil {
		return nil, false, fmt.Errorf("list occurrences: %w", err)
	}
	owned := make(map[string]bool, len(occurrences))
	for _, o := range occurrences {
		owned[o.ID] = true
	}
	selected := dedup(input.OccurrenceIDs)
	for _, id := range selected {
		if !owned[id] {
			return nil, false, fmt.Errorf("%w: occurrence %s does not belong to event %s",
				domain.ErrValidation, id, input.EventID)
		}
	}

	attendee, err := s.attendeeRepo.UpsertByEmail(ctx, input.Attendee)
	if err != nil {
		return nil, false, fmt.Errorf("resolve attendee: %w", err)
	}

	if existing, err := s.regRepo.GetByEventAndAttendee(ctx, input.EventID, attendee.ID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, false, fmt.Errorf("check existing registration: %w", err)
	}

	reg := &domain.Registration{
		ID:            uuid.New().String(),
		EventID:       input.EventID,
		AttendeeID:    attendee.ID,
		OccurrenceIDs: selected,
	}

	for attempt := 1; ; attempt++ {
		err = s.regRepo.Admit(ctx, reg)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			// Lost the race against our own duplicate submit.
			existing, getErr := s.regRepo.GetByEventAndAttendee(ctx, input.EventID, attendee.ID)
			if getErr != nil {
				return nil, false, fmt.Errorf("load concurrent duplicate: %w", getErr)
			}
			return existing, false, nil
		}
		if errors.Is(err, domain.ErrAdmissionConflict) && attempt < maxAdmitAttempts {
			continue
		}
		return nil, false, err
	}

	s.logger.Info("registration admitted",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", reg.EventID),
		logger.String("pass_id", reg.PassID),
	)

	go s.notifier.NotifyRegistrationAdmitted(context.WithoutCancel(ctx), attendee, event, reg)

	return reg, true, nil
}

func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			res = append(res, id)
		}
	}
	return res
}

func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
