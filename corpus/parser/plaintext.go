package parser

import (
	"github.com/c360studio/ontograph/corpus"
)

// PlainTextParser passes text through unchanged.
type PlainTextParser struct{}

// NewPlainTextParser creates a new plain text parser.
func NewPlainTextParser() *PlainTextParser {
	return &PlainTextParser{}
}

// Parse wraps raw text in a corpus document.
func (p *PlainTextParser) Parse(name string, content []byte) (*corpus.Document, error) {
	return &corpus.Document{
		Name: docName(name),
		Text: string(content),
	}, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *PlainTextParser) CanParse(mimeType string) bool {
	return mimeType == "text/plain"
}

// MimeType returns the primary MIME type for this parser.
func (p *PlainTextParser) MimeType() string {
	return "text/plain"
}
