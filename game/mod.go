package game

import (
	"errors"
	"fmt"
)

// Player marks a side: +1 for the player who moves first, -1 for the
// opponent, None once the game is over.
type Player int8

const (
	None   Player = 0
	First  Player = 1
	Second Player = -1
)

// Action indexes a variant's fixed-size validity vector.
type Action int

// Outcome is a terminal result, always from the first player's
// perspective regardless of whose turn ended the game.
type Outcome int8

const (
	Loss Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

// Transition is the result of one Step: either a continuation (Next and
// Player set, Over false) or a terminal outcome (Over true, Outcome set).
// Exactly one of the two holds.
type Transition[S comparable] struct {
	Next    S
	Player  Player
	Outcome Outcome
	Over    bool
}

// Continue builds a continuation transition.
func Continue[S comparable](next S, player Player) Transition[S] {
	return Transition[S]{Next: next, Player: player}
}

// Terminal builds a terminal transition.
func Terminal[S comparable](outcome Outcome) Transition[S] {
	return Transition[S]{Outcome: outcome, Over: true}
}

// Game is the contract every variant satisfies. States are immutable
// values - Step always derives a new state, never mutates its argument,
// so transitions are safe to share across search branches and to cache.
//
// The first player is always to move in the state returned by Start.
// Valid returns a mask over the variant's fixed action space; calling it
// on a terminal state is undefined (callers learn about termination from
// the Transition returned by Step).
type Game[S comparable] interface {
	Start() S
	Valid(s S) []bool
	Step(s S, a Action) (Transition[S], error)
	Human(s S) string
}

// ErrIllegalAction reports a Step called with an action the current
// state does not allow. Callers must re-check Valid before retrying.
var ErrIllegalAction = errors.New("illegal action")

func illegalAction(state any, a Action) error {
	return fmt.Errorf("%w: action %d in state %v", ErrIllegalAction, a, state)
}
