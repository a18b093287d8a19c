package uploads

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/raghulkannan/portfolio-api/internal/projects/repository"
)

// sweepGrace shields fresh uploads from the sweep. The admin flow
// uploads an image first and creates the referencing project after,
// so a file only counts as an orphan once it has sat unreferenced
// well past that window.
const sweepGrace = 24 * time.Hour

// Sweeper removes uploaded project images no longer referenced by any
// project row. Deletes on the API path are already best-effort, so
// failed ones accumulate on disk; the sweep reclaims them.
type Sweeper struct {
	store    *Store
	projects repository.Repository
	grace    time.Duration

	now func() time.Time
}

// NewSweeper builds a sweeper. The projects repository must read
// committed rows directly; a cached listing could report a fresh
// reference as absent.
func NewSweeper(store *Store, projects repository.Repository) *Sweeper {
	return &Sweeper{
		store:    store,
		projects: projects,
		grace:    sweepGrace,
		now:      time.Now,
	}
}

// Sweep deletes orphaned images and returns how many were removed.
// Files younger than the grace period are left alone even when
// unreferenced.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	items, err := s.projects.List(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]bool, len(items))
	for _, p := range items {
		if p.Image != "" {
			referenced[filepath.Base(p.Image)] = true
		}
	}

	onDisk, err := s.store.ListImages()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range onDisk {
		if referenced[name] {
			continue
		}

		fi, err := os.Stat(s.store.imagePath(name))
		if err != nil {
			// Raced with a delete on the API path.
			continue
		}
		if s.now().Sub(fi.ModTime()) < s.grace {
			continue
		}

		if err := s.store.DeleteImage(name); err != nil {
			log.Printf("sweeping orphan image %s: %v", name, err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Start schedules an hourly sweep on the given cron runner.
func (s *Sweeper) Start(c *cron.Cron) error {
	_, err := c.AddFunc("@hourly", func() {
		removed, err := s.Sweep(context.Background())
		if err != nil {
			log.Printf("image sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("image sweep removed %d orphaned file(s)", removed)
		}
	})
	return err
}
