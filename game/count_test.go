package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	g := Count{}

	t.Run("counting in order wins", func(t *testing.T) {
		transition, err := g.Step(g.Start(), 1)
		require.NoError(t, err)
		require.False(t, transition.Over, "Game should continue after counting 1")
		require.Equal(t, 1, transition.Next)
		require.Equal(t, First, transition.Player)

		transition, err = g.Step(transition.Next, 2)
		require.NoError(t, err)
		require.True(t, transition.Over, "Reaching 2 should end the game")
		require.Equal(t, Win, transition.Outcome)
	})

	t.Run("skipping a number loses", func(t *testing.T) {
		transition, err := g.Step(g.Start(), 2)
		require.NoError(t, err)
		require.True(t, transition.Over)
		require.Equal(t, Loss, transition.Outcome,
			"Non-consecutive counting should lose immediately")
	})

	t.Run("repeating the state loses", func(t *testing.T) {
		transition, err := g.Step(g.Start(), 0)
		require.NoError(t, err)
		require.Equal(t, Loss, transition.Outcome)
	})
}
