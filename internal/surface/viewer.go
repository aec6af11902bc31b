package surface

import (
	tea "charm.land/bubbletea/v2"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/sandbox"
)

// Viewer owns the single live surface of the content panel. The surface is
// keyed by entry ID: showing a different entry destroys the current surface
// and creates a fresh one, showing the same entry again is a no-op.
type Viewer struct {
	policy sandbox.Policy
	loader Loader

	current    *Surface
	width      int
	height     int
	sourceView bool

	created int
}

// NewViewer creates an empty viewer whose surfaces run under policy.
func NewViewer(policy sandbox.Policy, loader Loader) *Viewer {
	return &Viewer{policy: policy, loader: loader}
}

// Show displays entry, recreating the surface when the entry ID changes.
func (v *Viewer) Show(entry document.Entry) tea.Cmd {
	if v.current != nil && v.current.EntryID() == entry.ID {
		return nil
	}
	return v.replace(entry)
}

// Reload discards the current surface and builds a new one for the same
// entry.
func (v *Viewer) Reload() tea.Cmd {
	if v.current == nil {
		return nil
	}
	return v.replace(v.current.Entry())
}

func (v *Viewer) replace(entry document.Entry) tea.Cmd {
	prev := ""
	if v.current != nil {
		prev = v.current.EntryID()
		v.current.Close()
	}

	s := New(entry, v.policy, v.loader)
	if v.width > 0 || v.height > 0 {
		s.SetSize(v.width, v.height)
	}
	s.SetSourceView(v.sourceView)
	v.current = s
	v.created++

	logger.Debug("Viewer: surface %s -> %s (instance %s)", prev, entry.ID, s.ID())
	return s.Init()
}

// Current returns the live surface, or nil before the first Show.
func (v *Viewer) Current() *Surface { return v.current }

// Created counts the surfaces this viewer has built.
func (v *Viewer) Created() int { return v.created }

// Policy returns the sandbox applied to new surfaces.
func (v *Viewer) Policy() sandbox.Policy { return v.policy }

// SetSize resizes the live surface and remembers the size for new ones.
func (v *Viewer) SetSize(width, height int) {
	v.width, v.height = width, height
	if v.current != nil {
		v.current.SetSize(width, height)
	}
}

// ToggleSourceView flips between rendered and source display.
func (v *Viewer) ToggleSourceView() {
	v.sourceView = !v.sourceView
	if v.current != nil {
		v.current.SetSourceView(v.sourceView)
	}
}

// SourceView reports whether source display is on.
func (v *Viewer) SourceView() bool { return v.sourceView }

// Update routes msg to the live surface. Load results for surfaces that
// have since been destroyed are dropped.
func (v *Viewer) Update(msg tea.Msg) tea.Cmd {
	if v.current == nil {
		return nil
	}
	if m, ok := msg.(LoadedMsg); ok && m.InstanceID != v.current.ID() {
		logger.Debug("Viewer: dropping stale load for instance %s", m.InstanceID)
		return nil
	}
	return v.current.Update(msg)
}

// View renders the live surface.
func (v *Viewer) View() string {
	if v.current == nil {
		return ""
	}
	return v.current.View()
}

// Close destroys the live surface.
func (v *Viewer) Close() {
	if v.current != nil {
		v.current.Close()
	}
}
