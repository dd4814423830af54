package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads host configuration from the file at path, applying the
	// built-in defaults for anything the file leaves unset.
	Load(ctx context.Context, path string) (*Model, error)
}
