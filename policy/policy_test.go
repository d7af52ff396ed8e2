package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMaskedSoftmax(t *testing.T) {
	t.Run("normalizes to one", func(t *testing.T) {
		probs, err := MaskedSoftmax([]float64{1, 2, 3}, []bool{true, true, true})
		require.NoError(t, err)

		var sum float64
		for _, p := range probs {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
		require.Greater(t, probs[2], probs[1], "Higher scores should get more probability")
	})

	t.Run("masked entries get exactly zero", func(t *testing.T) {
		probs, err := MaskedSoftmax([]float64{5, 1, 5}, []bool{true, false, true})
		require.NoError(t, err)
		require.Zero(t, probs[1], "Illegal actions must have zero probability, not merely small")
		require.InDelta(t, 0.5, probs[0], 1e-9)
		require.InDelta(t, 0.5, probs[2], 1e-9)
	})

	t.Run("nil mask treats everything as legal", func(t *testing.T) {
		probs, err := MaskedSoftmax([]float64{0, 0}, nil)
		require.NoError(t, err)
		require.InDelta(t, 0.5, probs[0], 1e-9)
	})

	t.Run("large scores do not overflow", func(t *testing.T) {
		probs, err := MaskedSoftmax([]float64{1e4, 1e4 - 1}, nil)
		require.NoError(t, err)
		var sum float64
		for _, p := range probs {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("all-zero mask is a domain error", func(t *testing.T) {
		_, err := MaskedSoftmax([]float64{1, 2}, []bool{false, false})
		require.ErrorIs(t, err, ErrNoValidActions)
	})
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("never returns a masked index", func(t *testing.T) {
		scores := []float64{3, 10, -2, 10}
		mask := []bool{true, false, true, false}

		for i := 0; i < 1000; i++ {
			got, err := Sample(rng, scores, mask)
			require.NoError(t, err)
			require.True(t, mask[got], "Sampled index %d should be legal", got)
		}
	})

	t.Run("follows the distribution", func(t *testing.T) {
		// One action dominates: it should be drawn nearly always.
		counts := make([]int, 3)
		for i := 0; i < 1000; i++ {
			got, err := Sample(rng, []float64{10, 0, 0}, nil)
			require.NoError(t, err)
			counts[got]++
		}
		require.Greater(t, counts[0], 950)
	})

	t.Run("single legal action is forced", func(t *testing.T) {
		got, err := Sample(rng, []float64{0, 0, 0}, []bool{false, true, false})
		require.NoError(t, err)
		require.Equal(t, 1, got)
	})

	t.Run("all-zero mask is a domain error", func(t *testing.T) {
		_, err := Sample(rng, []float64{1}, []bool{false})
		require.ErrorIs(t, err, ErrNoValidActions)
	})
}
