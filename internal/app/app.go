package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/notedeck/notedeck/internal/clipboard"
	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/pointer"
	"github.com/notedeck/notedeck/internal/sandbox"
	"github.com/notedeck/notedeck/internal/selection"
	"github.com/notedeck/notedeck/internal/surface"
	"github.com/notedeck/notedeck/internal/ui"
)

// Options configures a Model.
type Options struct {
	Title      string
	Theme      string
	Version    string
	Collection *document.Collection
	InitialID  string
	Policy     sandbox.Policy
	Loader     surface.Loader

	// CopyText writes to the system clipboard; nil uses the clipboard package.
	CopyText func(string) error

	// Notify, when set, is told about locator loads slower than
	// SlowLoadThreshold.
	Notify func(name string, err error) error
}

// Model is the main Bubble Tea model
type Model struct {
	version    string
	collection *document.Collection
	policy     sandbox.Policy

	store     *selection.Store
	bus       *pointer.Bus
	dismisser *selection.Dismisser
	storeSub  *selection.Subscription

	viewer *surface.Viewer
	header *ui.Header
	footer *ui.Footer
	menu   *ui.Menu
	panel  *ui.ViewerPanel

	copyText func(string) error
	notify   func(name string, err error) error
	slowLoad time.Duration

	width  int
	height int

	// commands produced by selection observers, flushed by Update
	pending []tea.Cmd
	closed  bool
}

// dropdown is the area inside which a pointer-down keeps the menu open:
// the trigger plus the open menu box.
type dropdown struct {
	header *ui.Header
	menu   *ui.Menu
}

func (d dropdown) Contains(p pointer.Point) bool {
	return d.header.TriggerRect().Contains(p) || d.menu.Contains(p)
}

// New creates a new app model and mounts the outside-click listener.
func New(opts Options) *Model {
	if opts.Theme != "" {
		ui.SetThemeByName(opts.Theme)
	}
	coll := opts.Collection
	if coll == nil {
		coll = document.Builtin()
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteText
	}

	items := make([]ui.MenuItem, 0, coll.Len())
	for _, e := range coll.Entries() {
		items = append(items, ui.MenuItem{ID: e.ID, Name: e.Name})
	}

	m := &Model{
		version:    opts.Version,
		collection: coll,
		policy:     opts.Policy,
		store:      selection.NewStore(opts.InitialID),
		bus:        pointer.NewBus(),
		viewer:     surface.NewViewer(opts.Policy, opts.Loader),
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		menu:       ui.NewMenu(items),
		panel:      ui.NewViewerPanel(),
		copyText:   copyText,
		notify:     opts.Notify,
		slowLoad:   SlowLoadThreshold,
	}
	m.header.SetTitle(opts.Title)

	if opts.InitialID != "" {
		if _, ok := coll.Lookup(opts.InitialID); !ok {
			logger.Warn("App: initial document %q not found, showing %q", opts.InitialID, coll.First().ID)
		}
	}
	if opts.Policy.Permissive() {
		logger.Warn("App: documents run with %s; surfaces are not isolated from the host origin", opts.Policy.String())
	}

	m.dismisser = selection.NewDismisser(m.store, dropdown{header: m.header, menu: m.menu})
	m.dismisser.Mount(m.bus)
	m.storeSub = m.store.Subscribe(m.onSelectionChange)

	m.pending = append(m.pending, m.viewer.Show(m.store.ResolveActive(coll)))
	m.syncChrome()
	return m
}

// Init returns the load command of the first surface.
func (m *Model) Init() tea.Cmd {
	return m.flush()
}

// Close releases everything the model attached for its lifetime. It is
// safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.dismisser.Unmount()
	m.storeSub.Close()
	m.viewer.Close()
	logger.Debug("App: closed, %d pointer listeners remain", m.bus.Len())
}

// Store returns the selection store.
func (m *Model) Store() *selection.Store { return m.store }

// Bus returns the pointer bus.
func (m *Model) Bus() *pointer.Bus { return m.bus }

// Viewer returns the content viewer.
func (m *Model) Viewer() *surface.Viewer { return m.viewer }

// Active returns the entry currently displayed.
func (m *Model) Active() document.Entry {
	return m.store.ResolveActive(m.collection)
}

// onSelectionChange keeps the chrome and the surface in step with the store.
func (m *Model) onSelectionChange(prev, next selection.State) {
	m.syncChrome()
	if prev.ActiveID != next.ActiveID {
		if cmd := m.viewer.Show(m.store.ResolveActive(m.collection)); cmd != nil {
			m.pending = append(m.pending, cmd)
		}
	}
}

func (m *Model) syncChrome() {
	active := m.Active()
	open := m.store.MenuOpen()

	m.header.SetActiveName(active.Name)
	m.header.SetMenuOpen(open)
	m.menu.SetActive(active.ID)
	m.menu.SetOpen(open)
	m.menu.Place(m.header.TriggerRect(), m.width)
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
