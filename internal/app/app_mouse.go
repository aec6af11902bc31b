package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/notedeck/notedeck/internal/pointer"
	"github.com/notedeck/notedeck/internal/ui"
)

func pointerButton(b tea.MouseButton) pointer.Button {
	switch b {
	case tea.MouseLeft:
		return pointer.ButtonLeft
	case tea.MouseMiddle:
		return pointer.ButtonMiddle
	case tea.MouseRight:
		return pointer.ButtonRight
	default:
		return pointer.ButtonOther
	}
}

// handleMouseClick publishes the pointer-down to every listener first, so
// outside-click dismissal sees the click before any component reacts to it,
// and then routes left clicks to the trigger or a menu item.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	p := pointer.Point{X: msg.X, Y: msg.Y}
	m.bus.Publish(pointer.Event{Point: p, Button: pointerButton(msg.Button)})

	if msg.Button != tea.MouseLeft {
		return nil
	}

	if m.header.TriggerRect().Contains(p) {
		m.store.ToggleMenu()
		return nil
	}

	if idx, ok := m.menu.ItemAt(p); ok && idx < m.collection.Len() {
		m.store.Select(m.collection.At(idx).ID)
	}
	return nil
}

// handleMouseWheel moves the menu highlight over the open menu and scrolls
// the surface when the wheel is over it.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	p := pointer.Point{X: msg.X, Y: msg.Y}
	if m.menu.Contains(p) {
		switch msg.Button {
		case tea.MouseWheelUp:
			m.menu.MoveUp()
		case tea.MouseWheelDown:
			m.menu.MoveDown()
		}
		return nil
	}
	if !m.surfaceRect().Contains(p) {
		return nil
	}
	return m.viewer.Update(msg)
}

// surfaceRect returns the screen area the surface is drawn in.
func (m *Model) surfaceRect() pointer.Rect {
	ctx := ui.GetViewContext()
	x, y := ctx.SurfaceOrigin()
	return pointer.Rect{X: x, Y: y, W: ctx.SurfaceWidth, H: ctx.SurfaceHeight}
}

// TriggerRect returns where the menu trigger is drawn.
func (m *Model) TriggerRect() pointer.Rect {
	return m.header.TriggerRect()
}

// MenuRect returns the area of the open menu, empty while closed.
func (m *Model) MenuRect() pointer.Rect {
	return m.menu.Rect()
}
