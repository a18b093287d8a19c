package uploads

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
	"github.com/raghulkannan/portfolio-api/internal/projects/repository"
)

// backdate pushes a stored image's mtime past the sweep grace period.
func backdate(t *testing.T, store *Store, name string) {
	t.Helper()
	old := time.Now().Add(-2 * sweepGrace)
	require.NoError(t, os.Chtimes(store.imagePath(name), old, old))
}

func TestSweep_RemovesOrphansKeepsReferenced(t *testing.T) {
	store := NewStore(t.TempDir(), 1024)
	repo := repository.NewMemoryRepo()

	kept, err := store.SaveImage("kept.png", "image/png", strings.NewReader("x"), 1)
	require.NoError(t, err)
	orphan, err := store.SaveImage("orphan.png", "image/png", strings.NewReader("x"), 1)
	require.NoError(t, err)
	backdate(t, store, kept.Filename)
	backdate(t, store, orphan.Filename)

	_, err = repo.Create(context.Background(), &domain.Project{
		Title:        "P",
		Description:  "d",
		Technologies: []string{"Go"},
		GithubURL:    "https://x.com",
		Image:        kept.URL,
	})
	require.NoError(t, err)

	removed, err := NewSweeper(store, repo).Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	names, err := store.ListImages()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, kept.Filename, names[0])
	assert.NotEqual(t, orphan.Filename, names[0])
}

func TestSweep_SparesFreshUploads(t *testing.T) {
	store := NewStore(t.TempDir(), 1024)
	repo := repository.NewMemoryRepo()

	// Uploaded moments ago and not yet referenced by any project;
	// the admin may still be filling in the create form.
	fresh, err := store.SaveImage("fresh.png", "image/png", strings.NewReader("x"), 1)
	require.NoError(t, err)

	removed, err := NewSweeper(store, repo).Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)

	names, err := store.ListImages()
	require.NoError(t, err)
	assert.Equal(t, []string{fresh.Filename}, names)
}

func TestSweep_NothingToDo(t *testing.T) {
	store := NewStore(t.TempDir(), 1024)
	repo := repository.NewMemoryRepo()

	removed, err := NewSweeper(store, repo).Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}
