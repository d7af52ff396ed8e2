package game

// Symbols for RockPaperScissors actions and recorded states.
const (
	Rock     = 0
	Paper    = 1
	Scissors = 2
)

// RockPaperScissors plays the game turn by turn instead of
// simultaneously: state -1 means the first player is yet to commit,
// otherwise the state is the symbol the first player committed to.
// Playing second is a guaranteed win for anyone who peeks at the state.
type RockPaperScissors struct{}

func (RockPaperScissors) Start() int { return -1 }

func (RockPaperScissors) Valid(int) []bool { return []bool{true, true, true} }

func (RockPaperScissors) Step(s int, a Action) (Transition[int], error) {
	if a < 0 || a > 2 {
		return Transition[int]{}, illegalAction(s, a)
	}
	if s < 0 {
		return Continue(int(a), Second), nil
	}
	switch s {
	case int(a):
		return Terminal[int](Draw), nil
	case (int(a) + 2) % 3: // s beats a
		return Terminal[int](Loss), nil
	default: // a beats s
		return Terminal[int](Win), nil
	}
}

func (RockPaperScissors) Human(s int) string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Start"
	}
}

func (RockPaperScissors) View(s int) []float64 { return []float64{float64(s)} }
