package surface

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/sandbox"
)

// minWrapWidth keeps deeply nested lists readable in narrow panels.
const minWrapWidth = 10

// Rendered is a document turned into terminal text.
type Rendered struct {
	Title string
	Body  string
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Render turns source into terminal text for a surface of the given width.
// A width of zero or less disables wrapping.
func Render(source string, format document.Format, policy sandbox.Policy, width int) (Rendered, error) {
	switch format {
	case document.FormatMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(source), &buf); err != nil {
			return Rendered{}, fmt.Errorf("converting markdown: %w", err)
		}
		return renderHTML(buf.String(), policy, width)
	case document.FormatText:
		body := sanitize(source, policy.AllowScripts)
		if width > 0 {
			body = ansi.Wrap(body, width, "")
		}
		return Rendered{Body: body}, nil
	default:
		return renderHTML(source, policy, width)
	}
}

// inline carries the character formatting in effect for a text run.
type inline struct {
	heading int
	bold    bool
	italic  bool
	code    bool
	link    bool
}

func (st inline) render(text string) string {
	if st == (inline{}) {
		return text
	}
	s := lipgloss.NewStyle()
	if st.heading > 0 {
		s = headingStyle(st.heading)
	}
	if st.bold {
		s = s.Bold(true)
	}
	if st.italic {
		s = s.Italic(true)
	}
	if st.code {
		s = s.Inherit(docCodeStyle)
	}
	if st.link {
		s = s.Underline(true).Foreground(docLinkColor)
	}
	return s.Render(text)
}

type listState struct {
	ordered bool
	n       int
}

type htmlRenderer struct {
	policy sandbox.Policy
	width  int

	lines   []string
	gapNext bool

	para         strings.Builder
	paraHasText  bool
	pendingSpace bool
	bullet       string

	title string
	pre   int
	quote int
	lists []listState
}

func renderHTML(source string, policy sandbox.Policy, width int) (Rendered, error) {
	root, err := html.ParseWithOptions(strings.NewReader(source), html.ParseOptionEnableScripting(policy.AllowScripts))
	if err != nil {
		return Rendered{}, fmt.Errorf("parsing html: %w", err)
	}

	r := &htmlRenderer{policy: policy, width: width}
	r.walk(root, inline{})
	r.flush()

	body := strings.Join(r.lines, "\n")
	if strings.TrimSpace(body) == "" {
		body = docMutedStyle.Render("(empty document)")
	}
	return Rendered{Title: r.title, Body: body}, nil
}

func (r *htmlRenderer) walkChildren(n *html.Node, st inline) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c, st)
	}
}

func (r *htmlRenderer) walk(n *html.Node, st inline) {
	switch n.Type {
	case html.DocumentNode:
		r.walkChildren(n, st)
		return
	case html.TextNode:
		r.text(n.Data, st)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.Data {
	case "title":
		r.title = strings.Join(strings.Fields(sanitize(textContent(n), false)), " ")

	case "script", "style", "template", "svg", "iframe", "object", "embed", "canvas", "meta", "link":
		// never displayed

	case "noscript":
		// Parsed as markup only when scripting is off, which is exactly
		// when its fallback content should show.
		if !r.policy.AllowScripts {
			r.block(n, st)
		}

	case "br":
		r.para.WriteString("\n")
		r.pendingSpace = false

	case "hr":
		r.flush()
		w := r.width
		if w <= 0 {
			w = 40
		}
		r.gapNext = true
		r.addBlock([]string{docMutedStyle.Render(strings.Repeat("─", w))})
		r.gapNext = true

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(n.Data[1:])
		st.heading = level
		r.block(n, st)

	case "ul", "ol":
		r.flush()
		r.gapNext = true
		r.lists = append(r.lists, listState{ordered: n.Data == "ol"})
		r.walkChildren(n, st)
		r.flush()
		r.lists = r.lists[:len(r.lists)-1]
		r.gapNext = true

	case "li":
		r.flush()
		if len(r.lists) > 0 {
			l := &r.lists[len(r.lists)-1]
			l.n++
			if l.ordered {
				r.bullet = strconv.Itoa(l.n) + ". "
			} else {
				r.bullet = "• "
			}
		} else {
			r.bullet = "• "
		}
		r.walkChildren(n, st)
		r.flush()

	case "pre":
		r.flush()
		r.gapNext = true
		r.pre++
		st.code = true
		r.walkChildren(n, st)
		r.flush()
		r.pre--
		r.gapNext = true

	case "blockquote":
		r.flush()
		r.gapNext = true
		r.quote++
		st.italic = true
		r.walkChildren(n, st)
		r.flush()
		r.quote--
		r.gapNext = true

	case "table":
		r.flush()
		r.gapNext = true
		r.walkChildren(n, st)
		r.flush()
		r.gapNext = true

	case "tr":
		r.flush()
		r.walkChildren(n, st)
		r.flush()

	case "td", "th":
		if r.paraHasText {
			r.para.WriteString(docMutedStyle.Render(" │ "))
			r.pendingSpace = false
		}
		if n.Data == "th" {
			st.bold = true
		}
		r.walkChildren(n, st)

	case "a":
		st.link = true
		r.walkChildren(n, st)
		href := attr(n, "href")
		if href != "" && !strings.HasPrefix(href, "#") && strings.TrimSpace(textContent(n)) != href {
			r.inlineRaw(docMutedStyle.Render("<" + sanitize(href, false) + ">"))
		}

	case "img":
		alt := attr(n, "alt")
		if alt == "" {
			if src := attr(n, "src"); src != "" {
				alt = path.Base(src)
			} else {
				alt = "image"
			}
		}
		r.inlineRaw(docMutedStyle.Render("[image: " + sanitize(alt, false) + "]"))

	case "b", "strong":
		st.bold = true
		r.walkChildren(n, st)

	case "i", "em", "cite", "var":
		st.italic = true
		r.walkChildren(n, st)

	case "code", "kbd", "samp", "tt":
		st.code = true
		r.walkChildren(n, st)

	case "p", "div", "section", "article", "main", "header", "footer", "nav", "aside",
		"figure", "figcaption", "address", "details", "summary", "dl", "dt", "dd", "form", "center":
		r.block(n, st)

	default:
		r.walkChildren(n, st)
	}
}

// block renders n as a paragraph-like block separated from its neighbours.
func (r *htmlRenderer) block(n *html.Node, st inline) {
	r.flush()
	r.gapNext = true
	r.walkChildren(n, st)
	r.flush()
	r.gapNext = true
}

func (r *htmlRenderer) text(data string, st inline) {
	data = sanitize(data, r.policy.AllowScripts)

	if r.pre > 0 {
		lines := strings.Split(data, "\n")
		for i, l := range lines {
			if i > 0 {
				r.para.WriteString("\n")
			}
			if l != "" {
				r.para.WriteString(st.render(l))
				r.paraHasText = true
			}
		}
		return
	}

	fields := strings.Fields(data)
	if len(fields) == 0 {
		if data != "" && r.paraHasText {
			r.pendingSpace = true
		}
		return
	}
	if r.paraHasText && startsWithSpace(data) {
		r.pendingSpace = true
	}
	if r.pendingSpace {
		r.para.WriteString(" ")
	}
	r.para.WriteString(st.render(strings.Join(fields, " ")))
	r.paraHasText = true
	r.pendingSpace = endsWithSpace(data)
}

// inlineRaw appends already styled text as its own word.
func (r *htmlRenderer) inlineRaw(s string) {
	if r.paraHasText {
		r.para.WriteString(" ")
	}
	r.para.WriteString(s)
	r.paraHasText = true
	r.pendingSpace = false
}

func (r *htmlRenderer) prefixes() (first, rest string) {
	quote := strings.Repeat("│ ", r.quote)
	indent := ""
	if len(r.lists) > 1 {
		indent = strings.Repeat("  ", len(r.lists)-1)
	}
	return quote + indent + r.bullet, quote + indent + strings.Repeat(" ", ansi.StringWidth(r.bullet))
}

// flush wraps the pending paragraph and appends it to the output.
func (r *htmlRenderer) flush() {
	text := r.para.String()
	r.para.Reset()
	r.pendingSpace = false
	hadText := r.paraHasText
	r.paraHasText = false
	if !hadText {
		return
	}

	first, rest := r.prefixes()
	r.bullet = ""

	if r.pre == 0 && r.width > 0 {
		avail := r.width - ansi.StringWidth(first)
		if avail < minWrapWidth {
			avail = minWrapWidth
		}
		text = ansi.Wrap(text, avail, "")
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i, l := range lines {
		if r.pre == 0 {
			l = strings.TrimRight(l, " ")
		}
		if i == 0 {
			out = append(out, first+l)
		} else {
			out = append(out, rest+l)
		}
	}
	r.addBlock(out)
}

func (r *htmlRenderer) addBlock(lines []string) {
	if r.gapNext && len(r.lines) > 0 && r.lines[len(r.lines)-1] != "" {
		r.lines = append(r.lines, "")
	}
	r.gapNext = false
	r.lines = append(r.lines, lines...)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t\n\r\f") != s
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRight(s, " \t\n\r\f") != s
}
