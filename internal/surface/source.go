package surface

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/notedeck/notedeck/internal/document"
)

func lexerName(format document.Format) string {
	switch format {
	case document.FormatMarkdown:
		return "markdown"
	case document.FormatText:
		return "plaintext"
	default:
		return "html"
	}
}

// highlightSource renders the raw document with syntax highlighting. The
// source is stripped of terminal control first; the source view shows
// text, never active content.
func highlightSource(source string, format document.Format) string {
	source = sanitize(source, false)

	lexer := lexers.Get(lexerName(format))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}
