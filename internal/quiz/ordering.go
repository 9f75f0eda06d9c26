package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotPermutation reports an ordering that misses, repeats or adds items.
var ErrNotPermutation = errors.New("ordering is not a permutation of the quiz items")

// Item is an opaque quiz label, e.g. a show title.
type Item string

// Ordering is a sequence of items, top to bottom.
type Ordering []Item

// Clone returns an independent copy of o.
func (o Ordering) Clone() Ordering {
	if o == nil {
		return nil
	}
	out := make(Ordering, len(o))
	copy(out, o)
	return out
}

// IndexOf returns the position of item in o, or -1.
func (o Ordering) IndexOf(item Item) int {
	for i, it := range o {
		if it == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item appears in o.
func (o Ordering) Contains(item Item) bool {
	return o.IndexOf(item) >= 0
}

// IsPermutationOf reports whether o holds exactly the items of ref,
// each exactly once.
func (o Ordering) IsPermutationOf(ref Ordering) bool {
	if len(o) != len(ref) {
		return false
	}
	counts := make(map[Item]int, len(ref))
	for _, it := range ref {
		counts[it]++
	}
	for _, it := range o {
		counts[it]--
		if counts[it] < 0 {
			return false
		}
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// Strings returns the labels of o.
func (o Ordering) Strings() []string {
	out := make([]string, len(o))
	for i, it := range o {
		out[i] = string(it)
	}
	return out
}

// ParseOrdering resolves a comma-separated list of item names against q.
// Names are matched case-insensitively after trimming whitespace.
func ParseOrdering(q *Quiz, s string) (Ordering, error) {
	byFold := make(map[string]Item, q.Len())
	for _, it := range q.reference {
		byFold[strings.ToLower(string(it))] = it
	}

	var out Ordering
	for _, raw := range strings.Split(s, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		item, ok := byFold[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown item %q", name)
		}
		out = append(out, item)
	}

	if !out.IsPermutationOf(q.reference) {
		return nil, fmt.Errorf("%w: got %d items, want each of %d exactly once",
			ErrNotPermutation, len(out), q.Len())
	}
	return out, nil
}
