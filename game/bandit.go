package game

import (
	"strconv"

	"golang.org/x/exp/rand"
)

const banditLevers = 10

// Bandit is a perfect-information slot machine. Start draws the one
// winning lever uniformly; the state is that lever, every pull is legal,
// and the game is over after a single action.
type Bandit struct {
	rng *rand.Rand
}

func NewBandit(rng *rand.Rand) *Bandit {
	return &Bandit{rng: rng}
}

func (b *Bandit) Start() int { return b.rng.Intn(banditLevers) }

func (*Bandit) Valid(int) []bool {
	v := make([]bool, banditLevers)
	for i := range v {
		v[i] = true
	}
	return v
}

func (*Bandit) Step(s int, a Action) (Transition[int], error) {
	if a < 0 || a >= banditLevers {
		return Transition[int]{}, illegalAction(s, a)
	}
	if int(a) == s {
		return Terminal[int](Win), nil
	}
	return Terminal[int](Loss), nil
}

func (*Bandit) Human(s int) string { return strconv.Itoa(s) }

func (*Bandit) View(s int) []float64 { return []float64{float64(s)} }
