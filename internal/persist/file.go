package persist

import (
	"context"
	"os"
)

// File stores the snapshot as a single JSON file on disk.  This is the
// default driver for the single-session deployment.
type File struct {
	Path string
}

// NewFile returns a file driver writing to the given path.
func NewFile(path string) *File { return &File{Path: path} }

// Load reads the snapshot file.  A missing file is reported as
// ErrNoData so the store falls back to the seed dataset.
func (f *File) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return data, nil
}

// Save writes the snapshot file in place.
func (f *File) Save(_ context.Context, data []byte) error {
	return os.WriteFile(f.Path, data, 0o644)
}
