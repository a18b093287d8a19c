package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
)

// MemoryRepo is an in-memory Repository used by tests and local
// development without a database.
type MemoryRepo struct {
	mu       sync.Mutex
	projects map[string]domain.Project

	now func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		projects: make(map[string]domain.Project),
		now:      time.Now,
	}
}

func (r *MemoryRepo) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneProject(p)
	return &c, nil
}

func (r *MemoryRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneProject(*p)
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.now()
	stored.UpdatedAt = stored.CreatedAt
	r.projects[stored.ID] = stored

	c := cloneProject(stored)
	return &c, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Technologies != nil {
		p.Technologies = append([]string(nil), (*upd.Technologies)...)
	}
	if upd.GithubURL != nil {
		p.GithubURL = *upd.GithubURL
	}
	if upd.LiveURL != nil {
		p.LiveURL = *upd.LiveURL
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	p.UpdatedAt = r.now()
	r.projects[id] = p

	c := cloneProject(p)
	return &c, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

func cloneProject(p domain.Project) domain.Project {
	p.Technologies = append([]string(nil), p.Technologies...)
	return p
}
