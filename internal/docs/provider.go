// Package docs fetches the plain-text paragraphs of a hosted document.
package docs

import (
	"context"
	"errors"
)

// Typed fetch failures. The HTTP layer maps these onto status codes.
var (
	ErrNotFound    = errors.New("document not found")
	ErrForbidden   = errors.New("document not readable with this credential")
	ErrUnavailable = errors.New("document provider unavailable")
)

// Provider returns the ordered, normalized paragraphs of a document.
// Empty strings are preserved as separators. Errors wrap one of the
// sentinels above.
type Provider interface {
	Paragraphs(ctx context.Context, docID string) ([]string, error)
}
