package parser

import (
	"regexp"
	"strings"

	"github.com/c360studio/ontograph/corpus"
	"gopkg.in/yaml.v3"
)

// MarkdownParser parses markdown documents with optional YAML frontmatter.
// Frontmatter `tags` and `title` fields map onto the corpus document; the
// remaining markdown is stripped to plain text for extraction.
type MarkdownParser struct{}

// NewMarkdownParser creates a new markdown parser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse parses a markdown document, extracting frontmatter and body.
func (p *MarkdownParser) Parse(name string, content []byte) (*corpus.Document, error) {
	doc := &corpus.Document{
		Name: docName(name),
	}

	body := string(content)
	if strings.HasPrefix(body, "---\n") || strings.HasPrefix(body, "---\r\n") {
		frontmatter, rest, err := extractFrontmatter(body)
		if err == nil {
			doc.Frontmatter = frontmatter
			body = rest
			applyFrontmatter(doc, frontmatter)
		}
		// If frontmatter parsing fails, treat entire content as body.
	}

	doc.Text = StripMarkdown(body)
	return doc, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *MarkdownParser) CanParse(mimeType string) bool {
	switch mimeType {
	case "text/markdown", "text/x-markdown":
		return true
	default:
		return false
	}
}

// MimeType returns the primary MIME type for this parser.
func (p *MarkdownParser) MimeType() string {
	return "text/markdown"
}

// applyFrontmatter maps recognised frontmatter fields onto the document.
func applyFrontmatter(doc *corpus.Document, fm map[string]any) {
	if title, ok := fm["title"].(string); ok && title != "" {
		doc.Name = title
	}
	switch tags := fm["tags"].(type) {
	case []any:
		for _, t := range tags {
			if s, ok := t.(string); ok && s != "" {
				doc.Tags = append(doc.Tags, s)
			}
		}
	case string:
		for _, s := range strings.Fields(tags) {
			doc.Tags = append(doc.Tags, s)
		}
	}
}

// extractFrontmatter parses YAML frontmatter from markdown content.
// Returns the parsed frontmatter map, the remaining body, and any error.
func extractFrontmatter(content string) (map[string]any, string, error) {
	const delimiter = "---"

	start := len(delimiter)
	if len(content) > start && content[start] == '\r' {
		start++
	}
	if len(content) > start && content[start] == '\n' {
		start++
	}

	rest := content[start:]
	endIdx := strings.Index(rest, "\n"+delimiter)
	if endIdx < 0 {
		return nil, content, errMissingDelimiter
	}

	yamlBlock := rest[:endIdx]
	body := rest[endIdx+len(delimiter)+1:]
	body = strings.TrimPrefix(body, "\r")
	body = strings.TrimPrefix(body, "\n")

	var frontmatter map[string]any
	if err := yaml.Unmarshal([]byte(yamlBlock), &frontmatter); err != nil {
		return nil, content, err
	}
	return frontmatter, body, nil
}

var errMissingDelimiter = &frontmatterError{"missing closing frontmatter delimiter"}

type frontmatterError struct{ msg string }

func (e *frontmatterError) Error() string { return e.msg }

// Markdown stripping regexes. Applied in order; each removes syntax while
// keeping the human-readable text for the tokenizer.
var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]*)`")
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasisRe   = regexp.MustCompile(`(\*{1,3}|_{1,3})([^*_]+)(\*{1,3}|_{1,3})`)
	listMarkerRe = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+`)
	blockquoteRe = regexp.MustCompile(`(?m)^>\s?`)
	tableRuleRe  = regexp.MustCompile(`(?m)^[|\s:-]+$`)
)

// StripMarkdown removes markdown syntax, returning plain prose.
func StripMarkdown(md string) string {
	text := fencedCodeRe.ReplaceAllString(md, " ")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = imageRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "$2")
	text = listMarkerRe.ReplaceAllString(text, "")
	text = blockquoteRe.ReplaceAllString(text, "")
	text = tableRuleRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "|", " ")
	return strings.TrimSpace(text)
}
