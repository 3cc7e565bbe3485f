package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore persists an uploaded prescription and returns the stored
// object name.
type FileStore interface {
	Save(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Accepted upload types and the extension each maps to.
var extensions = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// Allowed reports whether the MIME type may be uploaded.
func Allowed(mimeType string) bool {
	_, ok := extensions[mimeType]
	return ok
}

func objectName(mimeType string) string {
	return uuid.NewString() + extensions[mimeType]
}

// LocalFileStore writes files to a directory on disk.
type LocalFileStore struct {
	Dir string
}

func NewLocalFileStore(dir string) *LocalFileStore {
	return &LocalFileStore{Dir: dir}
}

func (l *LocalFileStore) Save(_ context.Context, data []byte, mimeType string) (string, error) {
	if !Allowed(mimeType) {
		return "", fmt.Errorf("unsupported mime type %q", mimeType)
	}
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := objectName(mimeType)
	if err := os.WriteFile(filepath.Join(l.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

var _ FileStore = (*LocalFileStore)(nil)
