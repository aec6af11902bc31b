package selection

import (
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/pointer"
)

// Dismisser closes the menu when a pointer-down lands outside the menu's
// boundary. It listens to the whole screen for as long as it is mounted.
type Dismisser struct {
	store    *Store
	boundary pointer.Boundary
	sub      *pointer.Subscription
}

// NewDismisser creates an unmounted dismisser for store. boundary is asked
// on every event, so it may change shape while mounted.
func NewDismisser(store *Store, boundary pointer.Boundary) *Dismisser {
	return &Dismisser{store: store, boundary: boundary}
}

// Mount attaches the listener to bus. Mounting an already mounted
// dismisser is a no-op.
func (d *Dismisser) Mount(bus *pointer.Bus) {
	if d.sub.Active() {
		return
	}
	d.sub = bus.Subscribe(d.handle)
	logger.ComponentLogger("selection").Debug("dismisser mounted", "listeners", bus.Len())
}

// Unmount releases the listener. Safe to call any number of times.
func (d *Dismisser) Unmount() {
	if !d.sub.Active() {
		return
	}
	d.sub.Close()
	d.sub = nil
	logger.ComponentLogger("selection").Debug("dismisser unmounted")
}

// Mounted reports whether the listener is attached.
func (d *Dismisser) Mounted() bool {
	return d.sub.Active()
}

func (d *Dismisser) handle(ev pointer.Event) {
	if !d.store.MenuOpen() {
		return
	}
	if d.boundary != nil && d.boundary.Contains(ev.Point) {
		return
	}
	d.store.CloseMenu()
}
