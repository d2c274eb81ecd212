package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest at the given path and translates it into the
	// format-agnostic model, applying defaults for omitted blocks.
	Load(ctx context.Context, path string) (*Model, error)
}
