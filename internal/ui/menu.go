package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/notedeck/notedeck/internal/pointer"
)

// MenuItem is one row of the document menu.
type MenuItem struct {
	ID   string
	Name string
}

// Menu is the document dropdown. It is positioned under the header trigger
// and drawn on top of the viewer while open.
type Menu struct {
	items     []MenuItem
	activeID  string
	highlight int
	open      bool

	// outer geometry, set by Place
	x, y  int
	inner int
}

// NewMenu creates a closed menu listing items in order.
func NewMenu(items []MenuItem) *Menu {
	m := &Menu{}
	m.SetItems(items)
	return m
}

// SetItems replaces the listed entries.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = append([]MenuItem(nil), items...)
	if m.highlight >= len(m.items) {
		m.highlight = 0
	}
	m.inner = m.measure()
}

// Items returns the listed entries.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// SetActive marks the displayed entry.
func (m *Menu) SetActive(id string) {
	m.activeID = id
}

// SetOpen shows or hides the menu. Opening moves the highlight to the
// active entry.
func (m *Menu) SetOpen(open bool) {
	if open && !m.open {
		m.highlight = m.indexOf(m.activeID)
	}
	m.open = open
}

// IsOpen reports whether the menu is showing.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Highlight returns the keyboard-highlighted row.
func (m *Menu) Highlight() int {
	return m.highlight
}

// MoveUp moves the highlight up, wrapping at the top.
func (m *Menu) MoveUp() {
	if len(m.items) == 0 {
		return
	}
	m.highlight = (m.highlight - 1 + len(m.items)) % len(m.items)
}

// MoveDown moves the highlight down, wrapping at the bottom.
func (m *Menu) MoveDown() {
	if len(m.items) == 0 {
		return
	}
	m.highlight = (m.highlight + 1) % len(m.items)
}

// MoveFirst moves the highlight to the first entry.
func (m *Menu) MoveFirst() {
	if len(m.items) > 0 {
		m.highlight = 0
	}
}

// MoveLast moves the highlight to the last entry.
func (m *Menu) MoveLast() {
	if len(m.items) > 0 {
		m.highlight = len(m.items) - 1
	}
}

// Highlighted returns the highlighted entry.
func (m *Menu) Highlighted() (MenuItem, bool) {
	if m.highlight < 0 || m.highlight >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[m.highlight], true
}

// Place anchors the menu under trigger, right-aligned with it and kept
// inside a screen of the given width.
func (m *Menu) Place(trigger pointer.Rect, screenWidth int) {
	w := m.inner + BorderSize
	x := trigger.X + trigger.W - w
	if x+w > screenWidth {
		x = screenWidth - w
	}
	if x < 0 {
		x = 0
	}
	m.x = x
	m.y = trigger.Y + trigger.H
}

// Rect returns the menu's screen area, or an empty rect while closed.
func (m *Menu) Rect() pointer.Rect {
	if !m.open {
		return pointer.Rect{}
	}
	return pointer.Rect{X: m.x, Y: m.y, W: m.inner + BorderSize, H: len(m.items) + BorderSize}
}

// Contains reports whether p is inside the open menu.
func (m *Menu) Contains(p pointer.Point) bool {
	return m.Rect().Contains(p)
}

// ItemAt returns the index of the row under p.
func (m *Menu) ItemAt(p pointer.Point) (int, bool) {
	r := m.Rect()
	inner := pointer.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - BorderSize, H: r.H - BorderSize}
	if !inner.Contains(p) {
		return -1, false
	}
	return p.Y - inner.Y, true
}

// Origin returns the top-left cell the menu is drawn at.
func (m *Menu) Origin() (x, y int) {
	return m.x, m.y
}

func (m *Menu) indexOf(id string) int {
	for i, it := range m.items {
		if it.ID == id {
			return i
		}
	}
	return 0
}

func (m *Menu) label(i int) string {
	idx := " "
	if i < MenuQuickSelectMax {
		idx = strconv.Itoa(i + 1)
	}
	return idx + " " + m.items[i].Name
}

// markWidth is the trailing " ●" active marker.
const markWidth = 2

func (m *Menu) measure() int {
	w := MenuMinWidth
	for i := range m.items {
		if lw := runewidth.StringWidth(m.label(i)) + markWidth + 2; lw > w {
			w = lw
		}
	}
	if w > MenuMaxWidth {
		w = MenuMaxWidth
	}
	return w
}

// View renders the open menu box, or "" while closed.
func (m *Menu) View() string {
	if !m.open {
		return ""
	}

	// MenuItemStyle pads one cell on each side
	textW := m.inner - 2
	rows := make([]string, 0, len(m.items))
	for i, it := range m.items {
		idx := " "
		if i < MenuQuickSelectMax {
			idx = strconv.Itoa(i + 1)
		}
		mark := ""
		if it.ID == m.activeID {
			mark = " ●"
		}
		nameW := textW - 2 - runewidth.StringWidth(mark)
		name := runewidth.Truncate(it.Name, nameW, "…")
		pad := strings.Repeat(" ", max(0, nameW-runewidth.StringWidth(name)))

		style := MenuItemStyle
		if i == m.highlight {
			style = MenuSelectedStyle
		}
		line := MenuIndexStyle.Render(idx) + " " + name + pad
		if mark != "" {
			line += MenuActiveStyle.Render(mark)
		}
		rows = append(rows, style.Width(m.inner).Render(line))
	}
	return MenuStyle.Render(strings.Join(rows, "\n"))
}
