package dataset

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
)

// Source resolves a dataset file name to a readable byte stream.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns a Source serving the datasets embedded in the binary.
func Builtin() Source {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		// fs.Sub only fails on an invalid directory name
		panic(err)
	}
	return FS(sub)
}

// FS adapts an fs.FS into a Source.
func FS(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToReadData, name, err)
	}
	return f, nil
}

// FileName returns the file a dataset is stored under.
func FileName(dataset string) string {
	return dataset + ".yaml"
}
