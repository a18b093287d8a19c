package mailer

import "log"

// Disabled is the no-op mailer used when no SMTP host is configured.
// Submissions still succeed; the notification is logged instead.
type Disabled struct{}

func (Disabled) Notify(n Notification) error {
	log.Printf("mail disabled, dropping contact notification from %s <%s>", n.Name, n.Email)
	return nil
}
