package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/notedeck/notedeck/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.panel.SetSize(ctx.ViewerWidth, ctx.ContentHeight)
	m.viewer.SetSize(ctx.SurfaceWidth, ctx.SurfaceHeight)
	m.menu.Place(m.header.TriggerRect(), ctx.TerminalWidth)
	m.syncPanel()
}

// syncPanel refreshes the viewer panel title from the live surface.
func (m *Model) syncPanel() {
	s := m.viewer.Current()
	if s == nil {
		return
	}
	entry := s.Entry()

	name := entry.Name
	if t := s.Title(); t != "" && t != name {
		name += ": " + t
	}
	meta := []string{entry.Content.Kind().String(), entry.Content.Format().String()}
	if st := s.Status().String(); st != "ready" {
		meta = append(meta, st)
	}
	if s.SourceView() {
		meta = append(meta, "source")
	}
	m.panel.SetTitle(name, meta...)

	if m.policy.Permissive() {
		m.panel.SetWarning("unsandboxed")
	} else {
		m.panel.SetWarning("")
	}
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.footer.SetContext(m.store.MenuOpen(), m.viewer.SourceView())
	m.syncPanel()

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.panel.View(m.viewer.View()),
		m.footer.View(),
	)

	if !m.menu.IsOpen() {
		return view
	}
	return m.overlayMenu(view)
}

// overlayMenu draws the open menu on top of the composed frame.
func (m *Model) overlayMenu(view string) string {
	ctx := ui.GetViewContext()
	width, height := ctx.TerminalWidth, ctx.TerminalHeight

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	menu := m.menu.View()
	r := m.menu.Rect()
	uv.NewStyledString(menu).Draw(scr, uv.Rect(r.X, r.Y, r.W, r.H))

	return strings.TrimRight(scr.Render(), "\n")
}

// plainView is the rendered frame without styling, for tests and logs.
func (m *Model) plainView() string {
	return ansi.Strip(m.RenderToString())
}
