package service

import (
	"context"
	"log"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
	"github.com/raghulkannan/portfolio-api/internal/projects/repository"
)

// ImageRemover deletes an uploaded project image by its public URL or
// filename. Satisfied by uploads.Store.
type ImageRemover interface {
	DeleteImage(urlOrName string) error
}

// ProjectService handles project business logic on top of the
// repository: validation on writes and the best-effort image cleanup
// on delete.
type ProjectService struct {
	repo   repository.Repository
	images ImageRemover
}

func NewProjectService(repo repository.Repository, images ImageRemover) *ProjectService {
	return &ProjectService{
		repo:   repo,
		images: images,
	}
}

// List returns all projects, newest first. Served unauthenticated for
// the public site and authenticated for the admin dashboard; the
// payload is identical.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

// Update merges the partial update onto the stored project.
// Unspecified fields are preserved; concurrent updates resolve
// last-write-wins.
func (s *ProjectService) Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes the project and then its uploaded image. The image
// delete is best-effort: a storage failure is logged and must not
// fail the project deletion.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	if p.Image != "" && s.images != nil {
		if err := s.images.DeleteImage(p.Image); err != nil {
			log.Printf("deleting image for project %s: %v", id, err)
		}
	}
	return nil
}
