package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// AvailableName returns a storage path under dir that does not collide
// with an existing object. On collision a numeric suffix is appended
// before the extension: photo.jpg, photo-1.jpg, photo-2.jpg.
func AvailableName(ctx context.Context, p Provider, dir, filename string) (string, error) {
	dir = strings.Trim(dir, "/")

	candidate := path.Join(dir, filename)
	exists, err := p.Exists(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to check name availability: %w", err)
	}
	if !exists {
		return candidate, nil
	}

	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for i := 1; ; i++ {
		candidate = path.Join(dir, fmt.Sprintf("%s-%d%s", base, i, ext))
		exists, err := p.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check name availability: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
