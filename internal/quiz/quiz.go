package quiz

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxItems bounds the quiz size. Twelve rows still fit a 24-line terminal
// and keep the best-score search small.
const MaxItems = 12

var (
	ErrEmpty         = errors.New("quiz has no items")
	ErrDuplicateItem = errors.New("duplicate item")
	ErrPointsLength  = errors.New("points row length does not match item count")
	ErrNegativePoint = errors.New("points must not be negative")
	ErrTooManyItems  = errors.New("too many items")
)

// Entry describes one item of a quiz together with its points row.
// The order of entries passed to New is the reference ordering.
type Entry struct {
	Name   string
	Points []int
}

// Quiz is an immutable ranking quiz: a reference ordering plus a
// per-item, per-position points table.
type Quiz struct {
	title     string
	reference Ordering
	points    map[Item][]int
	best      int
}

// New validates entries and builds a Quiz.
func New(title string, entries []Entry) (*Quiz, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	if len(entries) > MaxItems {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrTooManyItems, len(entries), MaxItems)
	}

	q := &Quiz{
		title:     title,
		reference: make(Ordering, 0, len(entries)),
		points:    make(map[Item][]int, len(entries)),
	}

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: empty name", i)
		}
		item := Item(name)
		if _, exists := q.points[item]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, name)
		}
		if len(e.Points) != len(entries) {
			return nil, fmt.Errorf("%w: %q has %d values, want %d",
				ErrPointsLength, name, len(e.Points), len(entries))
		}
		for pos, p := range e.Points {
			if p < 0 {
				return nil, fmt.Errorf("%w: %q position %d", ErrNegativePoint, name, pos)
			}
		}

		row := make([]int, len(e.Points))
		copy(row, e.Points)
		q.points[item] = row
		q.reference = append(q.reference, item)
	}

	q.best = q.bestAssignment()
	return q, nil
}

// Title returns the display title of the quiz.
func (q *Quiz) Title() string {
	return q.title
}

// Len returns the number of items in the quiz.
func (q *Quiz) Len() int {
	return len(q.reference)
}

// Reference returns a copy of the reference ordering.
func (q *Quiz) Reference() Ordering {
	return q.reference.Clone()
}

// Has reports whether item belongs to the quiz.
func (q *Quiz) Has(item Item) bool {
	_, ok := q.points[item]
	return ok
}

// TrueIndex returns the index of item in the reference ordering, or -1.
func (q *Quiz) TrueIndex(item Item) int {
	return q.reference.IndexOf(item)
}

// PointsAt returns the points awarded when item is placed at position.
// ok is false for unknown items or out-of-range positions.
func (q *Quiz) PointsAt(item Item, position int) (points int, ok bool) {
	row, found := q.points[item]
	if !found || position < 0 || position >= len(row) {
		return 0, false
	}
	return row[position], true
}

// PointsFor returns a copy of the points row for item, or nil.
func (q *Quiz) PointsFor(item Item) []int {
	row, ok := q.points[item]
	if !ok {
		return nil
	}
	out := make([]int, len(row))
	copy(out, row)
	return out
}

// Entries returns the quiz definition in reference order.
func (q *Quiz) Entries() []Entry {
	entries := make([]Entry, 0, len(q.reference))
	for _, item := range q.reference {
		entries = append(entries, Entry{Name: string(item), Points: q.PointsFor(item)})
	}
	return entries
}

// ReferenceScore returns the total earned by the reference ordering.
func (q *Quiz) ReferenceScore() int {
	total := 0
	for i, item := range q.reference {
		total += q.points[item][i]
	}
	return total
}

// BestScore returns the highest total any ordering can earn. For tables
// where every item scores most in its own slot it equals ReferenceScore.
func (q *Quiz) BestScore() int {
	return q.best
}

// bestAssignment solves the item-to-position assignment exactly. best[mask]
// is the top total for placing the first popcount(mask) reference items on
// the positions in mask.
func (q *Quiz) bestAssignment() int {
	n := len(q.reference)
	full := 1<<n - 1
	best := make([]int, full+1)
	for mask := 1; mask <= full; mask++ {
		best[mask] = -1
	}

	for mask := 0; mask < full; mask++ {
		if best[mask] < 0 {
			continue
		}
		row := q.points[q.reference[bits.OnesCount(uint(mask))]]
		for pos := 0; pos < n; pos++ {
			bit := 1 << pos
			if mask&bit != 0 {
				continue
			}
			if total := best[mask] + row[pos]; total > best[mask|bit] {
				best[mask|bit] = total
			}
		}
	}
	return best[full]
}
