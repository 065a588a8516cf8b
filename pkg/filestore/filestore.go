package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FileStore persists uploaded proof images and yields the public URL they
// are served under.
type FileStore interface {
	Save(originalName string, data []byte) (string, error)
}

type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create uploads dir")
	}
	return &Local{dir: dir}, nil
}

// Save writes data under a fresh uuid-based name, keeping the original
// extension, and returns the /uploads URL of the stored file.
func (l *Local) Save(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("payment_%s%s", uuid.New().String(), ext)
	path := filepath.Join(l.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "write upload")
	}
	return "/uploads/" + name, nil
}
