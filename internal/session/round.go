package session

import (
	"time"

	"github.com/abhisek/showrank/internal/reorder"
	"github.com/abhisek/showrank/internal/scoring"
)

// Phase represents where a round is in its lifecycle.
type Phase int

const (
	PhaseArranging Phase = iota // user is reordering
	PhaseScored                 // submitted; result is read-only
)

// Round is one attempt at ordering the quiz items.
type Round struct {
	ID        string
	Surface   reorder.State
	Phase     Phase
	Result    *scoring.Result
	StartedAt time.Time
}

// Apply feeds a gesture event to the surface while the round is being
// arranged. It reports whether the surface changed.
func (r *Round) Apply(g reorder.Geometry, e reorder.Event) bool {
	if r.Phase != PhaseArranging {
		return false
	}
	next := reorder.Reduce(r.Surface, g, e)
	if next.Equal(r.Surface) {
		return false
	}
	r.Surface = next
	return true
}

// Submitted reports whether the round has been scored.
func (r *Round) Submitted() bool {
	return r.Phase == PhaseScored
}
