// Package download writes exported files from the backend to local disk.
package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/ports"
)

// Saver fetches an export's download URL and stores the file in the
// downloads directory under the filename the export result suggests.
type Saver struct {
	backend ports.Backend
	dir     string
}

// NewSaver creates a saver writing into dir.
func NewSaver(backend ports.Backend, dir string) *Saver {
	return &Saver{backend: backend, dir: dir}
}

// Save downloads the exported file and returns the local path written.
func (s *Saver) Save(ctx context.Context, result domain.ExportResult) (string, error) {
	name := result.Filename()
	if name == "" {
		return "", fmt.Errorf("export result has no output file name")
	}
	if result.DownloadURL == "" {
		return "", fmt.Errorf("export result has no download URL")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	rc, err := s.backend.Download(ctx, result.DownloadURL)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dest := filepath.Join(s.dir, name)
	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, rc); err != nil {
		f.Close()
		os.Remove(dest)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return dest, nil
}
