// Package corpus defines the document model consumed by the analysis engine
// and the source abstraction that supplies a corpus snapshot.
package corpus

import (
	"context"
	"strings"
)

// Document is a single unit of source text with its tags.
type Document struct {
	// Name is the document identifier, unique within a corpus.
	Name string `json:"name"`

	// Text is the plain-text body used for extraction.
	Text string `json:"text"`

	// Tags are caller-supplied labels; each tag is treated as a concept
	// candidate verbatim during extraction.
	Tags []string `json:"tags,omitempty"`

	// Frontmatter holds any structured metadata parsed from the original
	// document, keyed by field name.
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
}

// Empty reports whether the document carries no usable text.
func (d Document) Empty() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Corpus is an in-memory snapshot of documents for one analysis run.
type Corpus struct {
	Documents []Document
}

// Len returns the number of documents in the snapshot.
func (c Corpus) Len() int { return len(c.Documents) }

// Source supplies documents to the engine. Implementations are expected to
// return a complete, consistent snapshot; the engine never writes back.
type Source interface {
	ListDocuments(ctx context.Context) ([]Document, error)
}

// StaticSource is a Source backed by a fixed slice of documents.
type StaticSource struct {
	docs []Document
}

// NewStaticSource creates a source over the given documents.
func NewStaticSource(docs []Document) *StaticSource {
	return &StaticSource{docs: docs}
}

// ListDocuments returns the wrapped documents.
func (s *StaticSource) ListDocuments(_ context.Context) ([]Document, error) {
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// Snapshot collects a corpus from a source.
func Snapshot(ctx context.Context, src Source) (Corpus, error) {
	docs, err := src.ListDocuments(ctx)
	if err != nil {
		return Corpus{}, err
	}
	return Corpus{Documents: docs}, nil
}
