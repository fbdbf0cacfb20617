// Package config defines the format-agnostic representation of a raw
// project document, plus the Loader interface implemented by each
// format-specific loader (JSON, HCL).
//
// A Document is deliberately "raw": every field is carried exactly as the
// author wrote it, including values that will later turn out to be invalid.
// Deciding what a field means — defaults, clamping, skip-vs-warn policy —
// is the project parser's job, not the loader's. The loaders only answer
// one question fatally: could the document be read at all.
package config
