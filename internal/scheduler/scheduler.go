package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendReminders(ctx context.Context, window time.Duration) (int, error)
}

// Scheduler periodically mails reminders for occurrences starting
// within the configured window. It never mutates registration status.
type Scheduler struct {
	registrationService reminderSender
	interval            time.Duration
	window              time.Duration
	logger              logger.Logger
}

func New(
	registrationService reminderSender,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		registrationService: registrationService,
		interval:            interval,
		window:              window,
		logger:              logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.registrationService.SendReminders(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send occurrence reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("occurrence reminders sent",
			logger.Int("count", sent),
		)
	}
}
