package document

import (
	"fmt"
	"path"
	"strings"
)

// Format is the markup a document is written in.
type Format int

const (
	FormatHTML Format = iota
	FormatMarkdown
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatText:
		return "text"
	default:
		return "html"
	}
}

// ParseFormat maps a config string to a Format. The empty string is HTML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "plain":
		return FormatText, nil
	default:
		return FormatHTML, fmt.Errorf("unknown document format %q", s)
	}
}

// DetectFormat guesses a locator's format from its extension, defaulting
// to HTML. Query strings and fragments are ignored.
func DetectFormat(locator string) Format {
	if i := strings.IndexAny(locator, "?#"); i >= 0 {
		locator = locator[:i]
	}
	switch strings.ToLower(path.Ext(locator)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".txt", ".text":
		return FormatText
	default:
		return FormatHTML
	}
}

// ContentKind tags which representation a Content carries.
type ContentKind int

const (
	// KindInline content is handed to the surface as a blob.
	KindInline ContentKind = iota
	// KindLocator content is fetched by the surface itself.
	KindLocator
)

func (k ContentKind) String() string {
	if k == KindLocator {
		return "locator"
	}
	return "inline"
}

// Content is either an inline blob or a locator, never both. The zero value
// is an empty inline HTML document.
type Content struct {
	kind    ContentKind
	body    string
	locator string
	format  Format
}

// Inline returns content that is displayed directly.
func Inline(body string, format Format) Content {
	return Content{kind: KindInline, body: body, format: format}
}

// Locate returns content the surface loads from locator.
func Locate(locator string, format Format) Content {
	return Content{kind: KindLocator, locator: locator, format: format}
}

func (c Content) Kind() ContentKind { return c.kind }
func (c Content) Body() string      { return c.body }
func (c Content) Locator() string   { return c.locator }
func (c Content) Format() Format    { return c.format }

// IsLocator reports whether the surface must load the content itself.
func (c Content) IsLocator() bool {
	return c.kind == KindLocator
}
