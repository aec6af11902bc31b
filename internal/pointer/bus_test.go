package pointer

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 2, W: 5, H: 3}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Point{10, 2}, true},
		{"bottom-right inside", Point{14, 4}, true},
		{"right edge exclusive", Point{15, 2}, false},
		{"bottom edge exclusive", Point{10, 5}, false},
		{"left of rect", Point{9, 3}, false},
		{"above rect", Point{12, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_EmptyContainsNothing(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 0, H: 10}
	if !r.Empty() {
		t.Error("zero-width rect should be empty")
	}
	if r.Contains(Point{0, 0}) {
		t.Error("empty rect should not contain its origin")
	}
}

func TestRects_Union(t *testing.T) {
	b := Rects{{X: 0, Y: 0, W: 2, H: 1}, {X: 5, Y: 5, W: 1, H: 1}}

	if !b.Contains(Point{1, 0}) || !b.Contains(Point{5, 5}) {
		t.Error("union should contain points of each rect")
	}
	if b.Contains(Point{3, 3}) {
		t.Error("union should not contain the gap")
	}
}

func TestBus_PublishInOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(func(Event) { got = append(got, "a") })
	bus.Subscribe(func(Event) { got = append(got, "b") })
	bus.Publish(Event{Point: Point{1, 1}})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("delivery order = %v, want [a b]", got)
	}
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	bus := NewBus()
	calls := 0

	sub := bus.Subscribe(func(Event) { calls++ })
	if bus.Len() != 1 || !sub.Active() {
		t.Fatal("subscription should be attached")
	}

	sub.Close()
	sub.Close()
	bus.Publish(Event{})

	if bus.Len() != 0 {
		t.Errorf("Len() = %d after close, want 0", bus.Len())
	}
	if calls != 0 {
		t.Error("closed listener must not be called")
	}
	if sub.Active() {
		t.Error("closed subscription should not report active")
	}

	var nilSub *Subscription
	nilSub.Close()
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	calls := 0

	var first *Subscription
	first = bus.Subscribe(func(Event) { first.Close() })
	bus.Subscribe(func(Event) { calls++ })

	bus.Publish(Event{})
	bus.Publish(Event{})

	if calls != 2 {
		t.Errorf("second listener called %d times, want 2", calls)
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}
}

func TestBus_ScopedReleasesOnPanic(t *testing.T) {
	bus := NewBus()

	func() {
		defer func() { _ = recover() }()
		bus.Scoped(func(Event) {}, func() {
			if bus.Len() != 1 {
				t.Errorf("listener should be attached inside scope")
			}
			panic("abrupt exit")
		})
	}()

	if bus.Len() != 0 {
		t.Errorf("Len() = %d after panicking scope, want 0", bus.Len())
	}
}
