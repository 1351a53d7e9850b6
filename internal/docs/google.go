package docs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gdocs "google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleProvider reads documents through the Google Docs API with a
// service-account credential. The credential must be able to read the
// document, i.e. the document is shared with the service account's
// email.
type GoogleProvider struct {
	svc     *gdocs.Service
	timeout time.Duration
}

func NewGoogleProvider(ctx context.Context, timeout time.Duration, opts ...option.ClientOption) (*GoogleProvider, error) {
	svc, err := gdocs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("docs service: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleProvider{svc: svc, timeout: timeout}, nil
}

func (p *GoogleProvider) Paragraphs(ctx context.Context, docID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	doc, err := p.svc.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, mapError(err)
	}
	return Flatten(doc.Body), nil
}

// Flatten walks the document body in order and emits one normalized
// line per textual paragraph. Tables, section breaks and other
// non-textual structural elements are skipped.
func Flatten(body *gdocs.Body) []string {
	if body == nil {
		return nil
	}
	out := make([]string, 0, len(body.Content))
	for _, el := range body.Content {
		if el.Paragraph == nil {
			continue
		}
		var b strings.Builder
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun != nil {
				b.WriteString(pe.TextRun.Content)
			}
		}
		out = append(out, normalizeLine(b.String()))
	}
	return out
}

// normalizeLine collapses internal whitespace runs to single spaces and
// trims the ends. NBSP counts as whitespace.
func normalizeLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, " ", " ")), " ")
}

func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, gerr.Message)
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrForbidden, gerr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
