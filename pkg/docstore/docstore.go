package docstore

import (
	"context"
	"strings"
)

// Document is a single document read from the store: its identifier within
// the parent collection plus its fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Reader reads a single document addressed by a slash-separated path of
// alternating collection and document segments, e.g. "users/u1" or
// "companies/c1/users/u1".
type Reader interface {
	Read(ctx context.Context, path string) (Document, error)
}

// splitPath validates a document path and returns its segments.
// A valid path has an even number of non-empty segments, at least two.
func splitPath(path string) ([]string, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || len(segments)%2 != 0 {
		return nil, ErrInvalidPath
	}
	for _, s := range segments {
		if s == "" {
			return nil, ErrInvalidPath
		}
	}
	return segments, nil
}

// collectionName flattens the collection segments of a path into a single
// dotted collection name: "companies/c1/users/u1" -> "companies.users".
func collectionName(segments []string) string {
	parts := make([]string, 0, len(segments)/2)
	for i := 0; i < len(segments); i += 2 {
		parts = append(parts, segments[i])
	}
	return strings.Join(parts, ".")
}
