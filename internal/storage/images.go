// Package storage keeps uploaded cover images on the local filesystem.
// Filenames are generated per write, so concurrent uploads never collide
// and files never need locking.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

func (s *ImageStore) Dir() string { return s.dir }

// Save writes src to a new file named <unix-millis>-<uuid fragment><ext>,
// preserving the original extension, and returns the stored name.
func (s *ImageStore) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored image, used to back out an upload whose novel
// row failed to insert.
func (s *ImageStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
