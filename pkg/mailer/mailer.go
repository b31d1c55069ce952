package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"plek-backend/pkg/config"
)

// Service sends transactional email through Mailgun.
type Service struct {
	mg        mailgun.Mailgun
	fromEmail string
	fromName  string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		mg:        mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		fromEmail: cfg.MailFromEmail,
		fromName:  cfg.MailFromName,
	}
}

// Send delivers a single email. One round trip, no retry.
func (s *Service) Send(ctx context.Context, toEmail, subject, htmlContent, textContent string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	message := s.mg.NewMessage(from, subject, textContent, toEmail)
	message.SetHtml(htmlContent)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, id, err := s.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("[Mailer] Email sent to %s (id: %s)", toEmail, id)
	return nil
}

// SendPasswordResetEmail sends the reset link for a requested password reset.
func (s *Service) SendPasswordResetEmail(ctx context.Context, toEmail, resetLink, userName string) error {
	subject := "Reset your Plek password"

	greeting := "Hi,"
	if userName != "" {
		greeting = fmt.Sprintf("Hi %s,", userName)
	}

	htmlContent := fmt.Sprintf(`<p>%s</p>
<p>You requested a password reset for your Plek account.</p>
<p><a href="%s">Reset your password</a></p>
<p>If you didn't request this, you can safely ignore this email.
This link will expire in 1 hour.</p>`, greeting, resetLink)

	textContent := fmt.Sprintf(`Reset your password

%s

You requested a password reset for your Plek account.

Reset your password here: %s

If you didn't request this, you can safely ignore this email.
This link will expire in 1 hour.`, greeting, resetLink)

	return s.Send(ctx, toEmail, subject, htmlContent, textContent)
}

// SendNotificationEmail mirrors an in-app notification to the user's inbox.
func (s *Service) SendNotificationEmail(ctx context.Context, toEmail, title, body string) error {
	htmlContent := fmt.Sprintf("<h2>%s</h2><p>%s</p>", title, body)
	textContent := fmt.Sprintf("%s\n\n%s", title, body)
	return s.Send(ctx, toEmail, title, htmlContent, textContent)
}
