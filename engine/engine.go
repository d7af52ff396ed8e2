// Package engine drives a single game episode to completion.
package engine

import (
	"fmt"

	"gamearena/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Actor chooses an action for the side to move. Implementations must
// return an action whose validity entry is true.
type Actor[S comparable] interface {
	Act(g game.Game[S], s S, valid []bool) (game.Action, error)
}

// Episode runs one game from Start to a terminal outcome.
type Episode[S comparable] struct {
	id    string
	game  game.Game[S]
	actor Actor[S]
}

func NewEpisode[S comparable](g game.Game[S], a Actor[S]) *Episode[S] {
	return &Episode[S]{id: uuid.NewString(), game: g, actor: a}
}

// Run loops valid/act/step until the game terminates and returns the
// outcome from the first player's perspective.
func (e *Episode[S]) Run() (game.Outcome, error) {
	state := e.game.Start()
	player := game.First

	log.Info().Str("episode", e.id).Msg("episode started")

	for turn := 1; ; turn++ {
		valid := e.game.Valid(state)
		action, err := e.actor.Act(e.game, state, valid)
		if err != nil {
			return 0, fmt.Errorf("turn %d: %w", turn, err)
		}

		transition, err := e.game.Step(state, action)
		if err != nil {
			return 0, fmt.Errorf("turn %d: %w", turn, err)
		}

		log.Debug().
			Str("episode", e.id).
			Int("turn", turn).
			Int8("player", int8(player)).
			Int("action", int(action)).
			Msg("move played")

		if transition.Over {
			log.Info().
				Str("episode", e.id).
				Int("turns", turn).
				Int8("outcome", int8(transition.Outcome)).
				Msg("episode over")
			return transition.Outcome, nil
		}
		state, player = transition.Next, transition.Player
	}
}
