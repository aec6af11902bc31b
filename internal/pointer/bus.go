package pointer

// Listener receives pointer-down events.
type Listener func(Event)

// Bus fans pointer-down events out to subscribers. It is driven from the
// UI event loop and is not safe for concurrent use.
type Bus struct {
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]Listener)}
}

// Subscription is the handle returned by Subscribe. Close releases it.
type Subscription struct {
	bus *Bus
	id  int
}

// Subscribe attaches l until the returned Subscription is closed.
func (b *Bus) Subscribe(l Listener) *Subscription {
	b.nextID++
	id := b.nextID
	b.listeners[id] = l
	b.order = append(b.order, id)
	return &Subscription{bus: b, id: id}
}

// Close detaches the listener. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.bus != nil
}

func (b *Bus) remove(id int) {
	if _, ok := b.listeners[id]; !ok {
		return
	}
	delete(b.listeners, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish delivers ev to every listener in subscription order. Listeners
// added or removed during delivery take effect on the next event.
func (b *Bus) Publish(ev Event) {
	ids := make([]int, len(b.order))
	copy(ids, b.order)
	for _, id := range ids {
		if l, ok := b.listeners[id]; ok {
			l(ev)
		}
	}
}

// Len returns the number of attached listeners.
func (b *Bus) Len() int {
	return len(b.listeners)
}

// Scoped runs fn with l attached and detaches it when fn returns or panics.
func (b *Bus) Scoped(l Listener, fn func()) {
	sub := b.Subscribe(l)
	defer sub.Close()
	fn()
}
