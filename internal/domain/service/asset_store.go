package service

import (
	"context"
	"io"
)

// Asset is an opened image ready to stream. Callers must Close it.
type Asset struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// AssetStore resolves product image names to their bytes.
type AssetStore interface {
	// Open returns the named image, or the default image when the name is absent.
	// Names escaping the store root are rejected.
	Open(ctx context.Context, name string) (*Asset, error)

	// Close releases the underlying bucket.
	Close() error
}
