package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/notedeck/notedeck/internal/pointer"
)

// DefaultTitle is shown when the config does not set one.
const DefaultTitle = "notedeck"

// Header represents the top header bar: the application title on the left
// and the document menu trigger on the right.
type Header struct {
	width      int
	title      string
	activeName string
	menuOpen   bool

	// trigger cell range, recomputed by layout
	triggerX int
	triggerW int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{title: DefaultTitle}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the application title
func (h *Header) SetTitle(title string) {
	if title == "" {
		title = DefaultTitle
	}
	h.title = title
}

// SetActiveName sets the name shown on the menu trigger
func (h *Header) SetActiveName(name string) {
	h.activeName = name
}

// SetMenuOpen marks the trigger as expanded
func (h *Header) SetMenuOpen(open bool) {
	h.menuOpen = open
}

// TriggerRect returns the screen area of the menu trigger.
func (h *Header) TriggerRect() pointer.Rect {
	h.layout()
	return pointer.Rect{X: h.triggerX, Y: 0, W: h.triggerW, H: HeaderHeight}
}

func (h *Header) titleText() string {
	return " " + h.title
}

func (h *Header) triggerText() string {
	arrow := "▾"
	if h.menuOpen {
		arrow = "▴"
	}
	name := h.activeName
	if h.width > 0 {
		avail := h.width - uniseg.StringWidth(h.titleText()) - uniseg.StringWidth("View:  "+arrow) - 3
		if avail < 4 {
			avail = 4
		}
		name = runewidth.Truncate(name, avail, "…")
	}
	return "View: " + name + " " + arrow
}

// layout computes the trigger position and returns the full header text.
func (h *Header) layout() string {
	titleText := h.titleText()
	trigger := h.triggerText()
	rightText := trigger + " "

	paddingLen := h.width - uniseg.StringWidth(titleText) - uniseg.StringWidth(rightText)
	if paddingLen < 1 {
		paddingLen = 1
	}

	h.triggerX = uniseg.StringWidth(titleText) + paddingLen
	h.triggerW = uniseg.StringWidth(trigger)

	return titleText + strings.Repeat(" ", paddingLen) + rightText
}

// View renders the header
func (h *Header) View() string {
	content := h.layout()
	return h.renderGradient(content, len(h.titleText()), len(content)-len(h.triggerText())-1)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Bytes before titleEnd are the bold title, bytes from triggerStart are the
// trigger (excluding the trailing space).
func (h *Header) renderGradient(content string, titleEnd, triggerStart int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	width := len([]rune(content))
	triggerEnd := len(content) - 1

	var result strings.Builder
	i := 0
	for pos, r := range content {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		var style lipgloss.Style
		switch {
		case pos >= triggerStart && pos < triggerEnd && h.menuOpen:
			style = HeaderTriggerOpenStyle
		case pos >= triggerStart && pos < triggerEnd:
			style = HeaderTriggerStyle.Background(bgColor)
		default:
			style = lipgloss.NewStyle().
				Background(bgColor).
				Foreground(textColor).
				Bold(pos < titleEnd)
		}

		result.WriteString(style.Render(string(r)))
		i++
	}

	return result.String()
}
