// Package selection holds the only mutable state of the dashboard: which
// document is active and whether the document menu is open.
package selection

import (
	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/logger"
)

// State is the selection snapshot observers see. Both fields always change
// together in one assignment.
type State struct {
	ActiveID string
	MenuOpen bool
}

// Observer is told about every applied change.
type Observer func(prev, next State)

// Store owns State. It is driven from the UI event loop and is not safe for
// concurrent use.
type Store struct {
	state     State
	observers map[int]Observer
	order     []int
	nextID    int
}

// NewStore creates a store with the menu closed.
func NewStore(initialID string) *Store {
	return &Store{
		state:     State{ActiveID: initialID},
		observers: make(map[int]Observer),
	}
}

// State returns a snapshot.
func (s *Store) State() State {
	return s.state
}

// ActiveID returns the selected identifier, which may not resolve.
func (s *Store) ActiveID() string {
	return s.state.ActiveID
}

// MenuOpen reports whether the menu is open.
func (s *Store) MenuOpen() bool {
	return s.state.MenuOpen
}

// Select makes id active and closes the menu in the same update. id is not
// checked against any collection; ResolveActive applies the fallback.
func (s *Store) Select(id string) {
	s.apply(State{ActiveID: id, MenuOpen: false})
}

// ToggleMenu flips the menu-open flag.
func (s *Store) ToggleMenu() {
	s.apply(State{ActiveID: s.state.ActiveID, MenuOpen: !s.state.MenuOpen})
}

// OpenMenu opens the menu.
func (s *Store) OpenMenu() {
	s.apply(State{ActiveID: s.state.ActiveID, MenuOpen: true})
}

// CloseMenu closes the menu. Closing a closed menu is a no-op.
func (s *Store) CloseMenu() {
	s.apply(State{ActiveID: s.state.ActiveID, MenuOpen: false})
}

// ResolveActive returns the active entry of c, or c's first entry when the
// active identifier matches nothing.
func (s *Store) ResolveActive(c *document.Collection) document.Entry {
	return c.Resolve(s.state.ActiveID)
}

func (s *Store) apply(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	logger.ComponentLogger("selection").Debug("state changed",
		"activeID", next.ActiveID,
		"menuOpen", next.MenuOpen,
	)

	ids := make([]int, len(s.order))
	copy(ids, s.order)
	for _, id := range ids {
		if fn, ok := s.observers[id]; ok {
			fn(prev, next)
		}
	}
}

// Subscription detaches an observer when closed.
type Subscription struct {
	store *Store
	id    int
}

// Subscribe registers fn for every future change.
func (s *Store) Subscribe(fn Observer) *Subscription {
	s.nextID++
	s.observers[s.nextID] = fn
	s.order = append(s.order, s.nextID)
	return &Subscription{store: s, id: s.nextID}
}

// Close removes the observer. Closing twice is a no-op.
func (sub *Subscription) Close() {
	if sub == nil || sub.store == nil {
		return
	}
	st := sub.store
	delete(st.observers, sub.id)
	for i, id := range st.order {
		if id == sub.id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	sub.store = nil
}
