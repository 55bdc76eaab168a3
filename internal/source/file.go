package source

import (
	"context"
	"fmt"

	"golang.org/x/exp/mmap"
)

// File reads a plain word list from disk
type File struct {
	Path string
}

func (f *File) Load(ctx context.Context) (string, error) {
	r, err := mmap.Open(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open word list %s: %w", f.Path, err)
	}
	defer r.Close()

	buf := make([]byte, r.Len())
	if _, err := r.ReadAt(buf, 0); err != nil {
		return "", fmt.Errorf("failed to read word list %s: %w", f.Path, err)
	}
	return string(buf), nil
}

func (f *File) String() string {
	return f.Path
}
