package mailer

import "time"

// Notification is the payload for a contact-form alert email sent to
// the site owner.
type Notification struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt time.Time
}

// Mailer delivers contact notifications. The SMTP implementation is
// the production transport; Disabled logs and succeeds for local
// development without credentials.
type Mailer interface {
	Notify(n Notification) error
}
