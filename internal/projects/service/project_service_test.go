package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
	"github.com/raghulkannan/portfolio-api/internal/projects/repository"
	"github.com/raghulkannan/portfolio-api/internal/validation"
)

// fakeImages records delete calls and can be told to fail.
type fakeImages struct {
	deleted []string
	err     error
}

func (f *fakeImages) DeleteImage(name string) error {
	f.deleted = append(f.deleted, name)
	return f.err
}

func newService() (*ProjectService, *repository.MemoryRepo, *fakeImages) {
	repo := repository.NewMemoryRepo()
	images := &fakeImages{}
	return NewProjectService(repo, images), repo, images
}

func validInput() *domain.Project {
	return &domain.Project{
		Title:        "Portfolio",
		Description:  "Personal site",
		Technologies: []string{"Go"},
		GithubURL:    "https://github.com/x/portfolio",
	}
}

func TestCreate_Valid(t *testing.T) {
	svc, _, _ := newService()

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
}

func TestCreate_ValidationError(t *testing.T) {
	svc, repo, _ := newService()

	in := validInput()
	in.Title = ""

	_, err := svc.Create(context.Background(), in)
	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "title")

	// Nothing persisted on rejection.
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdate_RejectsBlankingRequiredField(t *testing.T) {
	svc, _, _ := newService()
	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	blank := ""
	_, err = svc.Update(context.Background(), p.ID, domain.Update{Title: &blank})

	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "title")
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _ := newService()

	title := "x"
	_, err := svc.Update(context.Background(), "nope", domain.Update{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemovesImageBestEffort(t *testing.T) {
	svc, repo, images := newService()

	in := validInput()
	in.Image = "/uploads/projects/123_shot.png"
	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.Equal(t, []string{"/uploads/projects/123_shot.png"}, images.deleted)

	_, err = repo.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_ImageFailureIsSwallowed(t *testing.T) {
	svc, repo, images := newService()
	images.err = errors.New("file does not exist")

	in := validInput()
	in.Image = "/uploads/projects/gone.png"
	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	// The storage failure must not fail the delete.
	require.NoError(t, svc.Delete(context.Background(), p.ID))

	_, err = repo.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_NoImageSkipsStorage(t *testing.T) {
	svc, _, images := newService()

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.Empty(t, images.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _, images := newService()

	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, images.deleted)
}
