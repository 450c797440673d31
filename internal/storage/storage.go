package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStorage persists uploaded files and serves them back by URL.
type FileStorage interface {
	// Save writes the content under a generated name and returns the
	// public URL the file is reachable at.
	Save(r io.Reader, originalName string) (url string, size int64, err error)
	// Delete removes the file a previously returned URL points at.
	// Deleting a URL that no longer resolves is not an error.
	Delete(url string) error
	// Root returns the directory served for public access.
	Root() string
}

// LocalStorage stores files on the local filesystem, partitioned by
// upload date so directories stay small.
type LocalStorage struct {
	rootDir   string
	publicURL string
	maxBytes  int64
}

// NewLocalStorage creates a local storage rooted at rootDir. publicURL is
// the URL prefix the root directory is served under.
func NewLocalStorage(rootDir, publicURL string, maxSizeMB int) (*LocalStorage, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		rootDir:   rootDir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  int64(maxSizeMB) * 1024 * 1024,
	}, nil
}

// Save writes the file under <root>/<yyyy>/<mm>/<uuid><ext>
func (s *LocalStorage) Save(r io.Reader, originalName string) (string, int64, error) {
	now := time.Now().UTC()
	rel := path.Join(
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		uuid.New().String()+strings.ToLower(filepath.Ext(originalName)),
	)

	dst := filepath.Join(s.rootDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	limited := r
	if s.maxBytes > 0 {
		limited = io.LimitReader(r, s.maxBytes+1)
	}
	size, err := io.Copy(f, limited)
	if err != nil {
		os.Remove(dst)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		os.Remove(dst)
		return "", 0, fmt.Errorf("file exceeds maximum size of %d bytes", s.maxBytes)
	}

	return s.publicURL + "/" + rel, size, nil
}

// Delete removes a stored file given its public URL
func (s *LocalStorage) Delete(url string) error {
	rel, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok {
		return fmt.Errorf("url %q is not served by this storage", url)
	}
	rel = path.Clean("/" + rel)[1:]

	err := os.Remove(filepath.Join(s.rootDir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Root returns the local directory files are stored under
func (s *LocalStorage) Root() string {
	return s.rootDir
}
