package service

import (
	"context"
	"fmt"
	"log"

	"github.com/raghulkannan/portfolio-api/internal/contacts/domain"
	"github.com/raghulkannan/portfolio-api/internal/contacts/repository"
	"github.com/raghulkannan/portfolio-api/internal/mailer"
)

// ContactService handles the public submission flow and the admin
// inbox operations.
type ContactService struct {
	repo repository.Repository
	mail mailer.Mailer
}

func NewContactService(repo repository.Repository, mail mailer.Mailer) *ContactService {
	return &ContactService{
		repo: repo,
		mail: mail,
	}
}

// Submit validates, persists and notifies. The notification is part
// of the request: when the send fails, the just-created row is rolled
// back with a compensating delete and the whole submission fails.
// (Policy choice documented in DESIGN.md; the source was ambiguous
// between this and commit-then-notify.)
func (s *ContactService) Submit(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if err := c.ValidateSubmission(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	err = s.mail.Notify(mailer.Notification{
		Name:       created.Name,
		Email:      created.Email,
		Subject:    created.Subject,
		Message:    created.Message,
		ReceivedAt: created.CreatedAt,
	})
	if err != nil {
		if delErr := s.repo.Delete(ctx, created.ID); delErr != nil {
			log.Printf("rolling back contact %s after failed notification: %v", created.ID, delErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrEmailDelivery, err)
	}

	return created, nil
}

// List returns the admin inbox, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

// SetRead toggles the read flag; repeating the same value is a no-op
// that still succeeds.
func (s *ContactService) SetRead(ctx context.Context, id string, read bool) (*domain.Contact, error) {
	return s.repo.SetRead(ctx, id, read)
}
