package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"portfolio.backend/internal/config"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/pkg/logger"
)

var dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error {
	return d.DialAndSend(m...)
}

// SMTPNotifier emails the site owner about new contact messages
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// Notifier is satisfied by SMTPNotifier and NoopNotifier
type Notifier interface {
	NotifyNewMessage(ctx context.Context, msg *entities.Message) error
}

// NewNotifier returns an SMTP notifier, or a no-op one when SMTP is not configured
func NewNotifier(cfg config.MailConfig) Notifier {
	if !cfg.Enabled() {
		return NoopNotifier{}
	}
	return NewSMTPNotifier(cfg)
}

func NewSMTPNotifier(cfg config.MailConfig) *SMTPNotifier {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	to := cfg.NotifyTo
	if to == "" {
		to = from
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		to:     to,
	}
}

func (n *SMTPNotifier) NotifyNewMessage(ctx context.Context, msg *entities.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := buildMessage(n.from, n.to, msg)
	if err := dialAndSend(n.dialer, m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	logger.Info(ctx, "Contact notification sent", zap.String("message_id", msg.ID.String()))
	return nil
}

func buildMessage(from, to string, msg *entities.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "New Portfolio Message from "+msg.Name)

	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message))
	m.AddAlternative("text/html", renderHTML(msg))
	return m
}

func renderHTML(msg *entities.Message) string {
	return fmt.Sprintf(
		"<h3>New message from your portfolio</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"),
	)
}

// NoopNotifier skips delivery when no SMTP credentials are configured
type NoopNotifier struct{}

func (NoopNotifier) NotifyNewMessage(ctx context.Context, msg *entities.Message) error {
	logger.Warn(ctx, "Email credentials not configured, skipping contact notification",
		zap.String("message_id", msg.ID.String()))
	return nil
}
