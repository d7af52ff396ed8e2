package game

import "strconv"

// Count counts up from zero. The state is the last number counted; the
// only winning line is to keep incrementing by exactly one until 2 is
// reached, and any non-consecutive action loses on the spot.
type Count struct{}

func (Count) Start() int { return 0 }

func (Count) Valid(int) []bool { return []bool{true, true, true} }

func (Count) Step(s int, a Action) (Transition[int], error) {
	if a < 0 || a > 2 {
		return Transition[int]{}, illegalAction(s, a)
	}
	if s+1 == int(a) {
		if a == 2 {
			return Terminal[int](Win), nil
		}
		return Continue(int(a), First), nil
	}
	return Terminal[int](Loss), nil
}

func (Count) Human(s int) string { return strconv.Itoa(s) }

func (Count) View(s int) []float64 { return []float64{float64(s)} }
