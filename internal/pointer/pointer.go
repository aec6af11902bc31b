// Package pointer carries the ambient pointer-down stream of the terminal.
// Components that care about clicks anywhere on screen (not only on
// themselves) subscribe to a Bus and must release the Subscription when
// they unmount.
package pointer

// Point is a terminal cell position, 0-based from the top-left corner.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned region of cells. A Rect with no area contains
// nothing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.W > 0 && r.H > 0 &&
		p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Boundary is anything that can say whether a point falls inside it.
type Boundary interface {
	Contains(p Point) bool
}

// Rects is a Boundary made of several rectangles.
type Rects []Rect

// Contains reports whether any rectangle contains p.
func (rs Rects) Contains(p Point) bool {
	for _, r := range rs {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Button identifies the pressed mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonOther
)

// Event is a pointer-down.
type Event struct {
	Point
	Button Button
}
