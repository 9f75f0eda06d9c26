package reorder

import (
	"math/rand/v2"

	"github.com/abhisek/showrank/internal/quiz"
)

// Shuffle returns a uniformly random permutation of items using
// Fisher-Yates. items is not modified. A nil rng uses the global source.
func Shuffle(items quiz.Ordering, rng *rand.Rand) quiz.Ordering {
	out := items.Clone()
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
