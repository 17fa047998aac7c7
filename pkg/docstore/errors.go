package docstore

import "errors"

var (
	// ErrNotFound is returned when no document exists at the requested path.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidPath is returned for paths that do not address a document,
	// e.g. an odd number of segments or empty segments.
	ErrInvalidPath = errors.New("invalid document path")
)
