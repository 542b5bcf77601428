package service

import (
	"context"
	"fmt"

	"github.com/eventpass/eventpass/internal/badge"
	"github.com/eventpass/eventpass/internal/domain"
	"github.com/eventpass/eventpass/internal/service/ports"
)

type passResolver interface {
	ResolvePass(ctx context.Context, query string) (*domain.Registration, error)
}

type badgeRenderer interface {
	Render(d badge.Data) ([]byte, error)
}

// BadgeService turns a pass id into the printable badge document.
type BadgeService struct {
	resolver     passResolver
	attendeeRepo ports.AttendeeRepo
	eventRepo    ports.EventRepo
	renderer     badgeRenderer
}

func NewBadgeService(resolver passResolver, attendeeRepo ports.AttendeeRepo, eventRepo ports.EventRepo, renderer badgeRenderer) *BadgeService {
	return &BadgeService{
		resolver:     resolver,
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
		renderer:     renderer,
	}
}

func (s *BadgeService) RenderBadge(ctx context.Context, passQuery string) ([]byte, error) {
	reg, err := s.resolver.ResolvePass(ctx, passQuery)
	if err != nil {
		return nil, err
	}

	attendee, err := s.attendeeRepo.GetByID(ctx, reg.AttendeeID)
	if err != nil {
		return nil, fmt.Errorf("load attendee: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	doc, err := s.renderer.Render(badge.Data{
		PassID:       reg.PassID,
		AttendeeName: attendee.FullName,
		Company:      attendee.Company,
		EventName:    event.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("render badge: %w", err)
	}

	return doc, nil
}
