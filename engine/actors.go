package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gamearena/game"
	"gamearena/policy"
	"gamearena/utils"

	"golang.org/x/exp/rand"
)

// Sampler draws actions through a masked softmax over uniform scores,
// so every legal action is equally likely.
type Sampler[S comparable] struct {
	rng *rand.Rand
}

func NewSampler[S comparable](rng *rand.Rand) *Sampler[S] {
	return &Sampler[S]{rng: rng}
}

func (a *Sampler[S]) Act(_ game.Game[S], _ S, valid []bool) (game.Action, error) {
	scores := make([]float64, len(valid))
	i, err := policy.Sample(a.rng, scores, valid)
	if err != nil {
		return 0, err
	}
	return game.Action(i), nil
}

// Interactive prompts a human on out and reads action indices from in,
// re-prompting until the input names a legal action.
type Interactive[S comparable] struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewInteractive[S comparable](in io.Reader, out io.Writer) *Interactive[S] {
	return &Interactive[S]{in: bufio.NewScanner(in), out: out}
}

func (a *Interactive[S]) Act(g game.Game[S], s S, valid []bool) (game.Action, error) {
	fmt.Fprintf(a.out, "State: %s\n", g.Human(s))
	fmt.Fprintf(a.out, "Valid: %v\n", utils.TrueIndices(valid))

	for {
		fmt.Fprint(a.out, "Move: ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		n, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil || n < 0 || n >= len(valid) || !valid[n] {
			fmt.Fprintln(a.out, "not a legal move")
			continue
		}
		return game.Action(n), nil
	}
}
