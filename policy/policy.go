// Package policy converts raw action scores into a legal,
// probability-weighted action choice.
package policy

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
)

// ErrNoValidActions reports a distribution requested over a mask with
// no legal entries. Callers hit this only by sampling on a terminal
// state instead of checking the Step result first.
var ErrNoValidActions = errors.New("no valid actions to sample")

// MaskedSoftmax returns the softmax of scores with masked-out entries
// forced to exactly zero probability. A nil mask treats every entry as
// legal. The maximum score is subtracted before exponentiation so large
// scores cannot overflow; the mask is applied after exponentiation and
// before normalization.
func MaskedSoftmax(scores []float64, mask []bool) ([]float64, error) {
	max := math.Inf(-1)
	for _, s := range scores {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		if mask != nil && !mask[i] {
			continue
		}
		e := math.Exp(s - max)
		probs[i] = e
		sum += e
	}
	if sum == 0 {
		return nil, ErrNoValidActions
	}

	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// Sample draws one action index under the masked-softmax distribution
// of scores. The returned index always has a true mask entry.
func Sample(rng *rand.Rand, scores []float64, mask []bool) (int, error) {
	probs, err := MaskedSoftmax(scores, mask)
	if err != nil {
		return 0, err
	}

	r := rng.Float64()
	var cum float64
	last := -1
	for i, p := range probs {
		if p == 0 {
			continue
		}
		last = i
		cum += p
		if r < cum {
			return i, nil
		}
	}
	// Rounding left cum fractionally below 1: charge the draw to the
	// last legal index.
	return last, nil
}
