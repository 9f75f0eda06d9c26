// Package scoring turns a submitted ordering into points and proximity
// classes, and folds round totals into session statistics.
package scoring

import (
	"fmt"

	"github.com/abhisek/showrank/internal/quiz"
)

// ScoredItem is the outcome for one position of a submitted ordering.
type ScoredItem struct {
	Item      quiz.Item
	Position  int
	TrueIndex int
	Expected  quiz.Item // reference item at Position
	Points    int
	Proximity Proximity
}

// Result is the outcome of scoring one submission.
type Result struct {
	Total int
	Items []ScoredItem
}

// Score looks up PointsTable[item][position] for every position of
// submitted and classifies each item by its distance from the reference.
//
// submitted must be a permutation of the quiz items. Anything else means
// the interaction layer broke its invariant, so Score panics.
func Score(q *quiz.Quiz, submitted quiz.Ordering) Result {
	if len(submitted) != q.Len() {
		panic(fmt.Sprintf("scoring: submitted %d items, quiz has %d", len(submitted), q.Len()))
	}

	ref := q.Reference()
	res := Result{Items: make([]ScoredItem, 0, len(submitted))}

	for i, item := range submitted {
		points, ok := q.PointsAt(item, i)
		if !ok {
			panic(fmt.Sprintf("scoring: unknown item %q", item))
		}
		trueIndex := ref.IndexOf(item)

		res.Total += points
		res.Items = append(res.Items, ScoredItem{
			Item:      item,
			Position:  i,
			TrueIndex: trueIndex,
			Expected:  ref[i],
			Points:    points,
			Proximity: Classify(trueIndex - i),
		})
	}

	return res
}

// CountBy returns how many items fell into each proximity class.
func (r Result) CountBy() map[Proximity]int {
	counts := make(map[Proximity]int)
	for _, it := range r.Items {
		counts[it.Proximity]++
	}
	return counts
}
