package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghulkannan/portfolio-api/internal/contacts/domain"
	"github.com/raghulkannan/portfolio-api/internal/contacts/repository"
	"github.com/raghulkannan/portfolio-api/internal/mailer"
	"github.com/raghulkannan/portfolio-api/internal/validation"
)

// fakeMailer records notifications and can be told to fail.
type fakeMailer struct {
	sent []mailer.Notification
	err  error
}

func (f *fakeMailer) Notify(n mailer.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

func newService() (*ContactService, *repository.MemoryRepo, *fakeMailer) {
	repo := repository.NewMemoryRepo()
	mail := &fakeMailer{}
	return NewContactService(repo, mail), repo, mail
}

func validContact() *domain.Contact {
	return &domain.Contact{
		Name:    "A",
		Email:   "a@b.com",
		Subject: "Hi",
		Message: "Hello there",
	}
}

func TestSubmit_PersistsAndNotifies(t *testing.T) {
	svc, repo, mail := newService()

	created, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Read)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a@b.com", items[0].Email)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Hello there", mail.sent[0].Message)
}

func TestSubmit_ValidationError(t *testing.T) {
	svc, repo, mail := newService()

	in := validContact()
	in.Message = "  "

	_, err := svc.Submit(context.Background(), in)
	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "message")

	items, _ := repo.List(context.Background())
	assert.Empty(t, items)
	assert.Empty(t, mail.sent)
}

func TestSubmit_EmailFailureLeavesNoOrphan(t *testing.T) {
	svc, repo, mail := newService()
	mail.err = errors.New("smtp: 535 authentication failed")

	_, err := svc.Submit(context.Background(), validContact())
	require.ErrorIs(t, err, domain.ErrEmailDelivery)

	// The failed notification rolls the row back: reject atomically.
	items, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, items)
}

func TestSetRead_Idempotent(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)

	first, err := svc.SetRead(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, first.Read)

	// Repeating the same write succeeds and yields the same state.
	second, err := svc.SetRead(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, second.Read)

	back, err := svc.SetRead(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, back.Read)
}

func TestSetRead_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.SetRead(context.Background(), "nope", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
