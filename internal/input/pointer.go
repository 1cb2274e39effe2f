// Package input turns polled pointer state into touch-style edges.
package input

// Sample is the pointer state polled for one frame.
type Sample struct {
	Down bool
	X, Y float64
}

// Kind classifies a pointer event.
type Kind int

const (
	// None means nothing changed since the previous sample.
	None Kind = iota
	// Began is a press.
	Began
	// Moved is movement while pressed. Hovering never produces it.
	Moved
	// Ended is a release.
	Ended
)

func (k Kind) String() string {
	switch k {
	case Began:
		return "began"
	case Moved:
		return "moved"
	case Ended:
		return "ended"
	default:
		return "none"
	}
}

// Event is a pointer edge with the position it happened at.
type Event struct {
	Kind Kind
	X, Y float64
}

// Tracker remembers the previous sample so edges fire once.
type Tracker struct {
	down bool
	x, y float64
}

// Update compares s with the previous sample. A press or release wins
// over movement in the same frame.
func (t *Tracker) Update(s Sample) Event {
	prevDown, prevX, prevY := t.down, t.x, t.y
	t.down, t.x, t.y = s.Down, s.X, s.Y

	switch {
	case s.Down && !prevDown:
		return Event{Kind: Began, X: s.X, Y: s.Y}
	case !s.Down && prevDown:
		return Event{Kind: Ended, X: s.X, Y: s.Y}
	case s.Down && (s.X != prevX || s.Y != prevY):
		return Event{Kind: Moved, X: s.X, Y: s.Y}
	}
	return Event{}
}

// Down reports whether the pointer was held at the last Update.
func (t *Tracker) Down() bool { return t.down }

// Target receives pointer-driven control changes.
type Target interface {
	SetUmbrella(open bool)
	SetPointerX(x float64)
}

// Apply routes e to target. A press opens the umbrella and a release
// closes it; presses and drags move the body. It reports the umbrella
// edge, if any.
func Apply(target Target, e Event) (changed, open bool) {
	switch e.Kind {
	case Began:
		target.SetUmbrella(true)
		target.SetPointerX(e.X)
		return true, true
	case Moved:
		target.SetPointerX(e.X)
	case Ended:
		target.SetUmbrella(false)
		return true, false
	}
	return false, false
}

// ApplySuspended handles e while the run ignores input. Only a release
// gets through, so the umbrella never stays open past the touch that
// opened it. It reports whether the umbrella was closed.
func ApplySuspended(target Target, e Event) bool {
	if e.Kind != Ended {
		return false
	}
	target.SetUmbrella(false)
	return true
}
