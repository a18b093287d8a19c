package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
)

const listCacheKey = "portfolio:projects:list"

// CachedRepo wraps a Repository with a short-TTL read-through cache
// of the full project listing. The public site hits List on every
// page view; everything else passes through. Every mutation drops the
// cached listing. Cache failures degrade to the inner repository and
// are logged only.
type CachedRepo struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedRepo(inner Repository, client *redis.Client, ttl time.Duration) *CachedRepo {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedRepo{inner: inner, client: client, ttl: ttl}
}

func (r *CachedRepo) List(ctx context.Context) ([]domain.Project, error) {
	data, err := r.client.Get(ctx, listCacheKey).Result()
	if err == nil {
		var cached []domain.Project
		if err := json.Unmarshal([]byte(data), &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry; fall through to the source of truth.
		r.invalidate(ctx)
	} else if err != redis.Nil {
		log.Printf("projects cache read failed: %v", err)
	}

	out, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err := r.client.Set(ctx, listCacheKey, data, r.ttl).Err(); err != nil {
			log.Printf("projects cache write failed: %v", err)
		}
	}
	return out, nil
}

func (r *CachedRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *CachedRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	created, err := r.inner.Create(ctx, p)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *CachedRepo) Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error) {
	updated, err := r.inner.Update(ctx, id, upd)
	if err == nil {
		r.invalidate(ctx)
	}
	return updated, err
}

func (r *CachedRepo) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err == nil && deleted {
		r.invalidate(ctx)
	}
	return deleted, err
}

func (r *CachedRepo) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, listCacheKey).Err(); err != nil {
		log.Printf("projects cache invalidation failed: %v", err)
	}
}
