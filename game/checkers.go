package game

import (
	"fmt"
)

// CheckerMove is one entry of the external engine's move enumeration.
type CheckerMove struct {
	From int
	To   int
}

// CheckerBoard is the capability the checkers adapter requires of an
// external board engine: legal-move enumeration keyed by a side label,
// a non-mutating copy, and an update that reports illegality instead of
// leaving the board in an ambiguous state.
type CheckerBoard interface {
	LegalMoves(side string) []CheckerMove
	Copy() CheckerBoard
	Apply(move CheckerMove, side string) error
}

// CheckerState pairs the side to move with the engine's board value.
// The board behind the interface is mutable; the adapter never updates
// it in place, so a CheckerState can be treated as immutable like every
// other state in this package.
type CheckerState struct {
	Player Player
	Board  CheckerBoard
}

// Checkers adapts an external board engine to the Game contract. Its
// action space is not fixed: an action indexes the engine's move
// enumeration for the current state, so the validity vector's length
// follows that enumeration.
type Checkers struct {
	NewBoard func() CheckerBoard
}

func (c Checkers) Start() CheckerState {
	return CheckerState{Player: First, Board: c.NewBoard()}
}

func (Checkers) Valid(s CheckerState) []bool {
	moves := s.Board.LegalMoves(sideLabel(s.Player))
	v := make([]bool, len(moves))
	for i := range v {
		v[i] = true
	}
	return v
}

func (Checkers) Step(s CheckerState, a Action) (Transition[CheckerState], error) {
	moves := s.Board.LegalMoves(sideLabel(s.Player))
	if a < 0 || int(a) >= len(moves) {
		return Transition[CheckerState]{}, illegalAction(s, a)
	}

	// Never mutate the caller's board.
	board := s.Board.Copy()
	if err := board.Apply(moves[a], sideLabel(s.Player)); err != nil {
		return Transition[CheckerState]{}, fmt.Errorf("%w: move %+v for %s: %v",
			ErrIllegalAction, moves[a], sideLabel(s.Player), err)
	}

	next := -s.Player
	if len(board.LegalMoves(sideLabel(next))) == 0 {
		// Opponent is blocked: the mover takes the game.
		return Terminal[CheckerState](Outcome(s.Player)), nil
	}
	return Continue(CheckerState{Player: next, Board: board}, next), nil
}

func (Checkers) Human(s CheckerState) string {
	return fmt.Sprintf("%s to move: %v", sideLabel(s.Player), s.Board)
}

func sideLabel(p Player) string {
	switch p {
	case First:
		return "white"
	case Second:
		return "black"
	}
	panic(fmt.Sprintf("invalid player value %d", p))
}
