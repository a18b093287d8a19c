package domain

import (
	"errors"
	"time"

	"github.com/raghulkannan/portfolio-api/internal/validation"
)

var (
	ErrNotFound = errors.New("contact not found")

	// ErrEmailDelivery marks a failed notification send. The submit
	// path treats it as fatal and rolls the contact back, so a 500
	// never leaves an orphaned row behind.
	ErrEmailDelivery = errors.New("email delivery failed")
)

// Contact is one contact-form submission. Subject is optional on the
// wire: an older schema variant stored messages without it.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateSubmission enforces the public form contract. Subject is
// required for new submissions even though legacy rows may lack it.
func (c *Contact) ValidateSubmission() error {
	errs := validation.FieldErrors{}
	errs.Require("name", c.Name)
	errs.Require("email", c.Email)
	errs.Require("subject", c.Subject)
	errs.Require("message", c.Message)
	return errs.OrNil()
}
