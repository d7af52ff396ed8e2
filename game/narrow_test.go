package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNarrow(t *testing.T) {
	g := Narrow{}

	t.Run("choices narrow to the chosen bound", func(t *testing.T) {
		require.Equal(t, []bool{true, true, true}, g.Valid(g.Start()))

		transition, err := g.Step(g.Start(), 2)
		require.NoError(t, err)
		require.False(t, transition.Over)
		require.Equal(t, 2, transition.Next)
		require.Equal(t, []bool{true, true, false}, g.Valid(transition.Next),
			"Actions at or above the bound should be masked out")
	})

	t.Run("choosing zero loses", func(t *testing.T) {
		transition, err := g.Step(g.Start(), 0)
		require.NoError(t, err)
		require.True(t, transition.Over)
		require.Equal(t, Loss, transition.Outcome)
	})

	t.Run("action at the bound is illegal", func(t *testing.T) {
		transition, err := g.Step(g.Start(), 1)
		require.NoError(t, err)

		_, err = g.Step(transition.Next, 1)
		require.ErrorIs(t, err, ErrIllegalAction,
			"Only actions below the bound should be playable")
	})
}
