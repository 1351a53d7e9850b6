package docs

import "context"

// MemProvider serves fixed paragraph streams from memory. Used in
// tests in place of the Google client.
type MemProvider struct {
	Docs map[string][]string
	Err  error // returned for every call when set
}

func NewInMemoryProvider() *MemProvider {
	return &MemProvider{Docs: map[string][]string{}}
}

func (m *MemProvider) Paragraphs(_ context.Context, docID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ps, ok := m.Docs[docID]
	if !ok {
		return nil, ErrNotFound
	}
	return ps, nil
}
