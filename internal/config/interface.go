package config

import "context"

// Loader is the interface for a format-specific project document loader.
// A Loader returns an error only for structurally fatal input: a missing or
// unreadable file, or a document the format parser cannot decode at all.
// Everything below that level of breakage is preserved in the Document for
// the project parser to warn about and degrade gracefully.
type Loader interface {
	Load(ctx context.Context, path string) (*Document, error)
}
