package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/raghulkannan/portfolio-api/config"
)

// SMTP sends contact notifications over a plain SMTP transport.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTP(cfg config.MailConfig) *SMTP {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	to := cfg.To
	if to == "" {
		to = cfg.Username
	}

	return &SMTP{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		to:     to,
	}
}

func (s *SMTP) Notify(n Notification) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Portfolio Contact")
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("New Portfolio Contact from %s", n.Name))
	m.SetBody("text/plain", textBody(n))
	m.AddAlternative("text/html", htmlBody(n))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func textBody(n Notification) string {
	return fmt.Sprintf(
		"New contact message from your portfolio:\n\nName: %s\nEmail: %s\nSubject: %s\nMessage: %s\n\nReceived: %s\n",
		n.Name, n.Email, n.Subject, n.Message,
		n.ReceivedAt.Format("Monday, January 2, 2006 15:04 MST"),
	)
}

func htmlBody(n Notification) string {
	msg := strings.ReplaceAll(html.EscapeString(n.Message), "\n", "<br/>")
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Portfolio Contact</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  <p><strong>Subject:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <blockquote>%s</blockquote>
  <p style="color:#666;font-size:14px;">Received on: %s</p>
</div>`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Email), html.EscapeString(n.Email),
		html.EscapeString(n.Subject),
		msg,
		n.ReceivedAt.Format("Monday, January 2, 2006 15:04 MST"),
	)
}
