// Package reorder models drag-to-reorder as a pure reducer over an ordering.
// Rendering layers translate pointer or keyboard input into Events and
// project the resulting State; they never mutate the order themselves.
package reorder

import (
	"math"

	"github.com/abhisek/showrank/internal/quiz"
)

// Backend identifies the input device driving a gesture.
type Backend int

const (
	// BackendMouse is a press/drag/release gesture. Its "moving" styling is
	// deferred by one tick.
	BackendMouse Backend = iota
	// BackendKeyboard is a grab/step/drop gesture, styled immediately.
	BackendKeyboard
)

// Event is a gesture event fed to Reduce.
type Event interface {
	isEvent()
}

// Start begins a gesture over the item whose box contains Y.
type Start struct {
	Y       float64
	Backend Backend
}

// Move repositions the in-motion item relative to pointer Y.
type Move struct {
	Y float64
}

// End finishes the gesture. It is always accepted.
type End struct{}

// StyleTick applies styling deferred by a mouse Start.
type StyleTick struct{}

func (Start) isEvent()     {}
func (Move) isEvent()      {}
func (End) isEvent()       {}
func (StyleTick) isEvent() {}

// State is an immutable snapshot of the surface. Build it with New.
type State struct {
	order   quiz.Ordering
	moving  int
	styled  bool
	pending bool
}

// New returns a State displaying order with nothing in motion.
func New(order quiz.Ordering) State {
	return State{order: order.Clone(), moving: -1}
}

// CurrentOrder returns the displayed ordering, top to bottom.
func (s State) CurrentOrder() quiz.Ordering {
	return s.order.Clone()
}

// Len returns the number of items on the surface.
func (s State) Len() int {
	return len(s.order)
}

// At returns the item displayed at position.
func (s State) At(position int) quiz.Item {
	return s.order[position]
}

// Moving returns the position of the in-motion item, or -1.
func (s State) Moving() int {
	return s.moving
}

// Styled reports whether the in-motion item should render as moving.
func (s State) Styled() bool {
	return s.styled
}

// PendingStyle reports whether a StyleTick is expected.
func (s State) PendingStyle() bool {
	return s.pending
}

// Equal reports whether s and o display the same thing.
func (s State) Equal(o State) bool {
	if s.moving != o.moving || s.styled != o.styled || s.pending != o.pending {
		return false
	}
	if len(s.order) != len(o.order) {
		return false
	}
	for i := range s.order {
		if s.order[i] != o.order[i] {
			return false
		}
	}
	return true
}

// Reduce applies e to s and returns the resulting state. s is never modified.
func Reduce(s State, g Geometry, e Event) State {
	switch e := e.(type) {
	case Start:
		return s.start(g, e)
	case Move:
		return s.move(g, e.Y)
	case End:
		s.moving = -1
		s.styled = false
		s.pending = false
		return s
	case StyleTick:
		if s.moving >= 0 && s.pending {
			s.pending = false
			s.styled = true
		}
		return s
	}
	return s
}

func (s State) start(g Geometry, e Start) State {
	pos := HitTest(g, len(s.order), e.Y)
	if pos < 0 {
		return s
	}
	s.moving = pos
	if e.Backend == BackendMouse {
		s.styled = false
		s.pending = true
	} else {
		s.styled = true
		s.pending = false
	}
	return s
}

func (s State) move(g Geometry, y float64) State {
	if s.moving < 0 || s.moving >= len(s.order) {
		return s
	}

	anchor := InsertionAnchor(g, len(s.order), s.moving, y)

	// Target index once the moving item is lifted out of the list.
	target := len(s.order) - 1
	if anchor >= 0 {
		target = anchor
		if anchor > s.moving {
			target--
		}
	}
	if target == s.moving {
		return s
	}

	item := s.order[s.moving]
	next := make(quiz.Ordering, 0, len(s.order))
	for i, it := range s.order {
		if i != s.moving {
			next = append(next, it)
		}
	}
	next = append(next, "")
	copy(next[target+1:], next[target:])
	next[target] = item

	s.order = next
	s.moving = target
	return s
}

// HitTest returns the position whose box contains y, or -1.
func HitTest(g Geometry, count int, y float64) int {
	for i := 0; i < count; i++ {
		if g.Box(i).Contains(y) {
			return i
		}
	}
	return -1
}

// InsertionAnchor returns the position of the first item other than moving
// whose midpoint lies below y, or -1 when y is below every such midpoint.
func InsertionAnchor(g Geometry, count, moving int, y float64) int {
	anchor := -1
	closest := math.Inf(-1)
	for i := 0; i < count; i++ {
		if i == moving {
			continue
		}
		offset := y - g.Box(i).Mid()
		if offset < 0 && offset > closest {
			closest = offset
			anchor = i
		}
	}
	return anchor
}
