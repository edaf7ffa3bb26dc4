package parser

import (
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/c360studio/ontograph/corpus"
)

// HTMLParser converts HTML documents to markdown, then defers to the
// markdown parser for frontmatter handling and text stripping.
type HTMLParser struct {
	converter *md.Converter
	markdown  *MarkdownParser
}

// NewHTMLParser creates a new HTML parser.
func NewHTMLParser() *HTMLParser {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &HTMLParser{
		converter: converter,
		markdown:  NewMarkdownParser(),
	}
}

// Parse converts HTML to markdown and extracts plain text.
func (p *HTMLParser) Parse(name string, content []byte) (*corpus.Document, error) {
	markdown, err := p.converter.ConvertString(string(content))
	if err != nil {
		return nil, fmt.Errorf("convert HTML: %w", err)
	}

	doc, err := p.markdown.Parse(name, []byte(markdown))
	if err != nil {
		return nil, err
	}
	doc.Name = docName(name)
	return doc, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *HTMLParser) CanParse(mimeType string) bool {
	switch mimeType {
	case "text/html", "application/xhtml+xml":
		return true
	default:
		return false
	}
}

// MimeType returns the primary MIME type for this parser.
func (p *HTMLParser) MimeType() string {
	return "text/html"
}
