package storage

import (
	"context"
	"io"
)

// Provider is the storage abstraction every media backend implements.
type Provider interface {
	// SaveWithContext writes a file under the given storage path.
	SaveWithContext(ctx context.Context, storagePath string, file io.Reader) error

	// GetWithContext opens a stored file for reading.
	GetWithContext(ctx context.Context, storagePath string) (io.ReadSeeker, error)

	// DeleteWithContext removes a stored file.
	DeleteWithContext(ctx context.Context, storagePath string) error

	// Exists reports whether a file is present at the path.
	Exists(ctx context.Context, storagePath string) (bool, error)

	// Health checks backend availability.
	Health(ctx context.Context) error

	// Name returns the backend name.
	Name() string
}
