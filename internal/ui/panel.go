package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ViewerPanel frames the content surface: a rounded border, a title line
// with the entry name and how its content reached the surface.
type ViewerPanel struct {
	width  int
	height int

	name    string
	meta    []string
	warning string
}

// NewViewerPanel creates an empty panel.
func NewViewerPanel() *ViewerPanel {
	return &ViewerPanel{}
}

// SetSize sets the outer size of the panel.
func (p *ViewerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTitle sets the entry name and the muted details after it.
func (p *ViewerPanel) SetTitle(name string, meta ...string) {
	p.name = name
	p.meta = meta
}

// SetWarning shows a highlighted notice at the right of the title line.
func (p *ViewerPanel) SetWarning(w string) {
	p.warning = w
}

func (p *ViewerPanel) titleLine(inner int) string {
	line := PanelTitleStyle.Render(p.name)
	if len(p.meta) > 0 {
		line += PanelMetaStyle.Render("  " + strings.Join(p.meta, " · "))
	}
	if p.warning != "" {
		warn := PanelWarnStyle.Render(p.warning)
		gap := inner - ansi.StringWidth(line) - ansi.StringWidth(warn)
		if gap >= 2 {
			line += strings.Repeat(" ", gap) + warn
		}
	}
	return ansi.Truncate(line, inner, "…")
}

// View wraps body, which must already fit the inner area.
func (p *ViewerPanel) View(body string) string {
	ctx := GetViewContext()
	inner := ctx.InnerWidth(p.width)
	if inner < 1 {
		return ""
	}
	content := p.titleLine(inner) + "\n" + body
	return PanelStyle.Width(p.width).Height(p.height).Render(content)
}
