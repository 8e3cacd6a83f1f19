package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes documents to a directory served statically under /uploads.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a LocalStore rooted at baseDir.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

// Save writes the document under baseDir/verification and returns its public
// path.
func (s *LocalStore) Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, "verification")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}

	return "/uploads/verification/" + name, nil
}
