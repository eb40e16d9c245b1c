package config

import "context"

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Load reads every file it understands under the given paths and
	// translates them into a single format-agnostic Model. A path that does
	// not exist is an error.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file extensions (with leading dot) the loader reads.
	Extensions() []string
}
