package uploads

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), 1024)
}

func TestSaveImage(t *testing.T) {
	store := newTestStore(t)

	data := []byte("fake png bytes")
	saved, err := store.SaveImage("screen shot.png", "image/png", bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(saved.URL, "/uploads/projects/"))
	assert.True(t, strings.HasSuffix(saved.Filename, "_screen_shot.png"))

	onDisk, err := os.ReadFile(filepath.Join(store.Dir(), "projects", saved.Filename))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveImage("doc.pdf", "application/pdf", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveImage_RejectsOversized(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveImage("big.png", "image/png", strings.NewReader("x"), 2048)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveImage_RejectsLyingContentLength(t *testing.T) {
	store := newTestStore(t)

	// Declared size fits, actual stream does not.
	body := strings.Repeat("x", 2048)
	_, err := store.SaveImage("big.png", "image/png", strings.NewReader(body), 10)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	names, err := store.ListImages()
	require.NoError(t, err)
	assert.Empty(t, names, "partial file must not remain on disk")
}

func TestDeleteImage(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.SaveImage("a.png", "image/png", strings.NewReader("x"), 1)
	require.NoError(t, err)

	t.Run("by url", func(t *testing.T) {
		require.NoError(t, store.DeleteImage(saved.URL))
		assert.ErrorIs(t, store.DeleteImage(saved.URL), ErrFileNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, store.DeleteImage("never-existed.png"), ErrFileNotFound)
	})
}

func TestDeleteImage_IgnoresPathTraversal(t *testing.T) {
	store := newTestStore(t)

	outside := filepath.Join(store.Dir(), "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	err := store.DeleteImage("../../victim.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestResumeLifecycle(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Resume().Exists)
	assert.ErrorIs(t, store.DeleteResume(), ErrFileNotFound)

	require.NoError(t, store.SaveResume("application/pdf", strings.NewReader("%PDF-1.4 v1"), 11))
	info := store.Resume()
	assert.True(t, info.Exists)
	assert.EqualValues(t, 11, info.Size)

	// A second upload replaces the previous file.
	require.NoError(t, store.SaveResume("application/pdf", strings.NewReader("%PDF-1.4 longer v2"), 18))
	assert.EqualValues(t, 18, store.Resume().Size)

	require.NoError(t, store.DeleteResume())
	assert.False(t, store.Resume().Exists)
}

func TestSaveResume_RejectsNonPDF(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveResume("image/png", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestListImages_EmptyWhenNoUploads(t *testing.T) {
	store := newTestStore(t)

	names, err := store.ListImages()
	require.NoError(t, err)
	assert.Empty(t, names)
}
