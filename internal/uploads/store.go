package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrFileNotFound    = errors.New("file not found")
)

const (
	projectsSubdir = "projects"
	resumeFilename = "resume.pdf"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Store persists uploaded binaries on local disk: project images
// under <dir>/projects and a single fixed-name resume PDF at the
// root of <dir>.
type Store struct {
	dir     string
	maxSize int64

	now func() time.Time
}

func NewStore(dir string, maxSize int64) *Store {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &Store{
		dir:     dir,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// MaxSize is the upload ceiling in bytes.
func (s *Store) MaxSize() int64 { return s.maxSize }

// Dir is the root of the on-disk upload tree, served under /uploads.
func (s *Store) Dir() string { return s.dir }

type SavedImage struct {
	Filename string
	URL      string
}

// SaveImage validates and writes a project image, returning its
// public URL. Filenames are timestamped and sanitized so uploads
// never collide or escape the uploads directory.
func (s *Store) SaveImage(name, contentType string, r io.Reader, size int64) (*SavedImage, error) {
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	dir := filepath.Join(s.dir, projectsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	if name == "" {
		name = "image"
	}
	filename := fmt.Sprintf("%d_%s", s.now().UnixMilli(), filenameSanitizer.ReplaceAllString(filepath.Base(name), "_"))

	if err := writeFile(filepath.Join(dir, filename), r, s.maxSize); err != nil {
		return nil, err
	}

	return &SavedImage{
		Filename: filename,
		URL:      "/uploads/" + projectsSubdir + "/" + filename,
	}, nil
}

// DeleteImage removes a stored image given its public URL or bare
// filename. Only the basename is honored; path traversal in the
// input cannot reach outside the projects directory.
func (s *Store) DeleteImage(urlOrName string) error {
	name := filepath.Base(urlOrName)
	if name == "." || name == "/" || name == "" {
		return ErrFileNotFound
	}

	if err := os.Remove(s.imagePath(name)); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

func (s *Store) imagePath(name string) string {
	return filepath.Join(s.dir, projectsSubdir, filepath.Base(name))
}

// ListImages returns the filenames currently stored on disk, for the
// orphan sweep.
func (s *Store) ListImages() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, projectsSubdir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// SaveResume replaces the stored resume PDF. There is exactly one
// resume; an existing file is removed first.
func (s *Store) SaveResume(contentType string, r io.Reader, size int64) error {
	if contentType != "application/pdf" {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if size > s.maxSize {
		return ErrFileTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}

	path := s.ResumePath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace resume: %w", err)
	}
	return writeFile(path, r, s.maxSize)
}

func (s *Store) DeleteResume() error {
	if err := os.Remove(s.ResumePath()); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}

func (s *Store) ResumePath() string {
	return filepath.Join(s.dir, resumeFilename)
}

type ResumeInfo struct {
	Exists    bool      `json:"exists"`
	Size      int64     `json:"size,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (s *Store) Resume() ResumeInfo {
	fi, err := os.Stat(s.ResumePath())
	if err != nil {
		return ResumeInfo{}
	}
	return ResumeInfo{Exists: true, Size: fi.Size(), UpdatedAt: fi.ModTime()}
}

// writeFile copies at most limit+1 bytes so a lying Content-Length
// cannot sneak an oversized body onto disk.
func writeFile(path string, r io.Reader, limit int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write file: %w", err)
	}
	if n > limit {
		os.Remove(path)
		return ErrFileTooLarge
	}
	return nil
}
