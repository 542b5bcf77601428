package notification

import (
	"context"
	"fmt"

	"github.com/eventpass/eventpass/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier delivers credential and reminder mail. Delivery is
// best-effort: failures are logged, never propagated, and admission is
// never rolled back because of them.
type EmailNotifier struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
	logger  logger.Logger
}

func NewEmailNotifier(host string, port int, username, password, from, baseURL string, logger logger.Logger) *EmailNotifier {
	if host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{dialer: nil, from: from, baseURL: baseURL, logger: logger}
	}

	return &EmailNotifier{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (n *EmailNotifier) NotifyRegistrationAdmitted(ctx context.Context, attendee *domain.Attendee, event *domain.Event, reg *domain.Registration) {
	subject := fmt.Sprintf("Your pass for %s", event.Name)
	body := fmt.Sprintf(
		"<p>Hello %s,</p>"+
			"<p>You are registered for <b>%s</b>. Your pass id is <b>%s</b>.</p>"+
			"<p><a href=%q>Download your printable badge</a> and bring it to the entrance.</p>",
		attendee.FullName, event.Name, reg.PassID, n.badgeLink(reg.PassID),
	)
	n.send(ctx, attendee.Email, subject, body)
}

func (n *EmailNotifier) NotifyOccurrenceReminder(ctx context.Context, item domain.ReminderItem) {
	subject := fmt.Sprintf("Reminder: %s", item.EventName)
	body := fmt.Sprintf(
		"<p>Hello %s,</p>"+
			"<p>Your session at <b>%s</b> starts %s (UTC).</p>"+
			"<p>Have your badge ready: <a href=%q>%s</a></p>",
		item.AttendeeName, item.EventName,
		item.StartTime.UTC().Format("02.01.2006 15:04"),
		n.badgeLink(item.PassID), item.PassID,
	)
	n.send(ctx, item.AttendeeEmail, subject, body)
}

func (n *EmailNotifier) badgeLink(passID string) string {
	return fmt.Sprintf("%s/api/passes/%s/badge", n.baseURL, passID)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("notification skipped (smtp disabled)", logger.String("to", to))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
