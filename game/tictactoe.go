package game

import (
	"fmt"
	"strings"

	"gamearena/memo"
)

// Board is the tic-tac-toe grid in row-major order: 0 for an empty
// cell, otherwise the marker of the player who filled it.
type Board [9]int8

var winLines = [8][3]int{
	{0, 1, 2}, {0, 3, 6}, {0, 4, 8}, {1, 4, 7},
	{2, 4, 6}, {2, 5, 8}, {3, 4, 5}, {6, 7, 8},
}

type stepResult struct {
	transition Transition[Board]
	err        error
}

// TicTacToe carries no explicit turn field: the side to move is
// inferred from the board sum (+1 and -1 markers cancel exactly when
// both sides have played equally often). Valid and Step are memoized -
// Step rescans all eight winning lines, and tree search revisits the
// same positions across independent branches.
type TicTacToe struct {
	valid      func(Board) []bool
	step       func(Board, Action) stepResult
	validCache *memo.Cache[Board, []bool]
	stepCache  *memo.Cache[memo.Key2[Board, Action], stepResult]
}

func NewTicTacToe() *TicTacToe {
	t := &TicTacToe{}
	t.valid, t.validCache = memo.Func1(openCells)
	t.step, t.stepCache = memo.Func2(place)
	return t
}

func (*TicTacToe) Start() Board { return Board{} }

func (t *TicTacToe) Valid(b Board) []bool { return t.valid(b) }

func (t *TicTacToe) Step(b Board, a Action) (Transition[Board], error) {
	r := t.step(b, a)
	return r.transition, r.err
}

func openCells(b Board) []bool {
	v := make([]bool, len(b))
	for i, c := range b {
		v[i] = c == 0
	}
	return v
}

func place(b Board, a Action) stepResult {
	if a < 0 || int(a) >= len(b) || b[a] != 0 {
		return stepResult{err: illegalAction(b, a)}
	}

	player := First
	if sum(b) != 0 {
		player = Second
	}
	b[a] = int8(player)

	for _, line := range winLines {
		if b[line[0]] == int8(player) && b[line[1]] == int8(player) && b[line[2]] == int8(player) {
			return stepResult{transition: Terminal[Board](Outcome(player))}
		}
	}
	for _, c := range b {
		if c == 0 {
			return stepResult{transition: Continue(b, -player)}
		}
	}
	return stepResult{transition: Terminal[Board](Draw)}
}

func sum(b Board) int {
	var s int
	for _, c := range b {
		s += int(c)
	}
	return s
}

func (*TicTacToe) Human(b Board) string {
	var sb strings.Builder
	for i, c := range b {
		if i%3 == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	return sb.String()
}

func (*TicTacToe) View(b Board) []float64 {
	view := make([]float64, len(b))
	for i, c := range b {
		view[i] = float64(c)
	}
	return view
}
