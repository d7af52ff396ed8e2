package game

import "strconv"

// Narrow offers fewer choices every step. The state is the number of
// choices still open: actions at or above it are illegal, action 0
// loses immediately, and any other action becomes the next bound.
type Narrow struct{}

func (Narrow) Start() int { return 3 }

func (Narrow) Valid(s int) []bool {
	v := make([]bool, 3)
	for i := range v {
		v[i] = i < s
	}
	return v
}

func (Narrow) Step(s int, a Action) (Transition[int], error) {
	if a < 0 || int(a) >= s {
		return Transition[int]{}, illegalAction(s, a)
	}
	if a == 0 {
		return Terminal[int](Loss), nil
	}
	return Continue(int(a), First), nil
}

func (Narrow) Human(s int) string { return strconv.Itoa(s) }

func (Narrow) View(s int) []float64 { return []float64{float64(s)} }
