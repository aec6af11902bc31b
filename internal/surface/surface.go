// Package surface renders one document inside an isolated display surface.
//
// A Surface is created for exactly one document entry and is thrown away
// when the user picks another: nothing (scroll position, load state,
// rendered text) is ever carried from one document to the next. Inline
// documents are rendered at construction; locator documents are loaded by
// the surface itself through a Loader, and the result is delivered as a
// LoadedMsg tagged with the surface's instance ID.
package surface

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/sandbox"
)

// Status is the load state of a surface.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadedMsg carries the result of a locator load back to the surface that
// started it.
type LoadedMsg struct {
	InstanceID string
	Data       []byte
	Err        error
}

// Surface is an isolated display surface for one entry.
type Surface struct {
	id     string
	entry  document.Entry
	policy sandbox.Policy
	loader Loader

	ctx    context.Context
	cancel context.CancelFunc

	viewport   viewport.Model
	status     Status
	err        error
	source     string
	title      string
	sourceView bool
	closed     bool
	rendered   bool
	createdAt  time.Time

	log *slog.Logger
}

// New creates a surface for entry. Inline content is rendered immediately;
// locator content waits for the command returned by Init.
func New(entry document.Entry, policy sandbox.Policy, loader Loader) *Surface {
	ctx, cancel := context.WithCancel(context.Background())

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	s := &Surface{
		id:        uuid.New().String(),
		entry:     entry,
		policy:    policy,
		loader:    loader,
		ctx:       ctx,
		cancel:    cancel,
		viewport:  vp,
		createdAt: time.Now(),
	}
	s.log = logger.ComponentLogger("surface").With("instance", s.id, "entry", entry.ID)

	if entry.Content.IsLocator() {
		s.status = StatusLoading
	} else {
		s.source = entry.Content.Body()
		s.status = StatusReady
	}
	s.render()
	s.log.Debug("surface created", "mode", entry.Content.Kind().String(), "sandbox", policy.String())
	return s
}

// Init returns the load command for locator content, or nil.
func (s *Surface) Init() tea.Cmd {
	if s.status != StatusLoading || s.loader == nil {
		return nil
	}
	ctx, id, locator, loader := s.ctx, s.id, s.entry.Content.Locator(), s.loader
	return func() tea.Msg {
		data, err := loader.Load(ctx, locator)
		return LoadedMsg{InstanceID: id, Data: data, Err: err}
	}
}

// ScrollOffset returns the first visible line of the rendered document.
func (s *Surface) ScrollOffset() int { return s.viewport.YOffset() }

// ID returns the instance ID, unique per created surface.
func (s *Surface) ID() string { return s.id }

// Entry returns the entry this surface was created for.
func (s *Surface) Entry() document.Entry { return s.entry }

// EntryID returns the identifier of the displayed entry.
func (s *Surface) EntryID() string { return s.entry.ID }

// Status returns the load state.
func (s *Surface) Status() Status { return s.status }

// Err returns the load error of a failed surface.
func (s *Surface) Err() error { return s.err }

// Title returns the document's own title, if it declares one.
func (s *Surface) Title() string { return s.title }

// Source returns the raw document once it is available.
func (s *Surface) Source() string { return s.source }

// CreatedAt returns when the surface was created, which is also when its
// load started.
func (s *Surface) CreatedAt() time.Time { return s.createdAt }

// Closed reports whether the surface has been torn down.
func (s *Surface) Closed() bool { return s.closed }

// Policy returns the sandbox the surface runs under.
func (s *Surface) Policy() sandbox.Policy { return s.policy }

// SourceView reports whether the raw source is shown.
func (s *Surface) SourceView() bool { return s.sourceView }

// SetSourceView switches between the rendered document and its source.
func (s *Surface) SetSourceView(on bool) {
	if s.sourceView == on {
		return
	}
	s.sourceView = on
	s.render()
	s.viewport.GotoTop()
}

// SetSize resizes the surface and re-renders for the new width.
func (s *Surface) SetSize(width, height int) {
	widthChanged := width != s.viewport.Width()
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)
	if widthChanged {
		s.render()
	}
}

// Close tears the surface down and cancels any load in flight.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.log.Debug("surface destroyed")
}

// Update handles load results addressed to this surface and scrolling.
func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	if s.closed {
		return nil
	}

	if msg, ok := msg.(LoadedMsg); ok {
		if msg.InstanceID != s.id || s.status != StatusLoading {
			return nil
		}
		if msg.Err != nil {
			s.status = StatusFailed
			s.err = msg.Err
			s.log.Warn("document load failed", "locator", s.entry.Content.Locator(), "error", msg.Err)
		} else {
			s.status = StatusReady
			s.source = string(msg.Data)
			s.log.Debug("document loaded", "bytes", len(msg.Data))
		}
		s.render()
		s.viewport.GotoTop()
		return nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View renders the visible part of the surface.
func (s *Surface) View() string {
	return s.viewport.View()
}

func (s *Surface) render() {
	width := s.viewport.Width()

	var body string
	switch s.status {
	case StatusLoading:
		body = docMutedStyle.Render(fmt.Sprintf("Loading %s …", s.entry.Content.Locator()))
	case StatusFailed:
		body = docErrorStyle.Render("This document could not be loaded.") + "\n\n" +
			docMutedStyle.Render(sanitize(s.err.Error(), false))
		if width > 0 {
			body = ansi.Wrap(body, width, "")
		}
	default:
		if s.sourceView {
			body = highlightSource(s.source, s.entry.Content.Format())
		} else {
			r, err := Render(s.source, s.entry.Content.Format(), s.policy, width)
			if err != nil {
				s.status = StatusFailed
				s.err = err
				s.render()
				return
			}
			s.title = r.Title
			body = r.Body
		}
	}

	s.viewport.SetContent(confine(body, width))
	if !s.rendered {
		s.rendered = true
		s.viewport.GotoTop()
	}
}
