package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raghulkannan/portfolio-api/internal/contacts/domain"
)

// MemoryRepo is an in-memory Repository used by tests.
type MemoryRepo struct {
	mu       sync.Mutex
	contacts map[string]domain.Contact

	now func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		contacts: make(map[string]domain.Contact),
		now:      time.Now,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.ID = uuid.NewString()
	stored.Read = false
	stored.CreatedAt = r.now()
	r.contacts[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) SetRead(ctx context.Context, id string, read bool) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Read = read
	r.contacts[id] = c

	out := c
	return &out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.contacts, id)
	return nil
}
