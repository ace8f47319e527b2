// Package storage holds the blob-storage collaborator for medical record
// report files. Records reference uploads by path only; serving the files
// back is the web server's job, not this service's.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore saves uploaded report files and returns a reference path.
type FileStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

type localFileStore struct {
	baseDir string
}

// NewLocalFileStore stores files on local disk under baseDir. The
// directory is created on first use.
func NewLocalFileStore(baseDir string) (FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localFileStore{baseDir: baseDir}, nil
}

// Save writes the content under a random name so uploads can never
// overwrite each other. The original extension is kept for the benefit of
// whatever serves the file later.
func (s *localFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.baseDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, nil
}

func (s *localFileStore) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
