package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
)

// Local serves dataset files from a directory on disk. Names are resolved
// inside the directory only; "../" and absolute names are rejected.
type Local struct {
	dir string
	src dataset.Source
}

// NewLocal returns a Local rooted at dir, which must be an existing directory.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty data directory", ErrInvalidConfig)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, abs)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	return &Local{dir: abs, src: dataset.FS(os.DirFS(abs))}, nil
}

// Dir returns the absolute data directory.
func (l *Local) Dir() string { return l.dir }

func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return l.src.Open(ctx, filepath.ToSlash(name))
}
