package game

// Viewer exposes a state's numeric fields for an external learner.
type Viewer[S comparable] interface {
	View(s S) []float64
}

// Observation flattens a state view into the fixed-width vector a
// learner consumes: the state's own fields followed by the acting
// player's marker.
func Observation(view []float64, p Player) []float64 {
	obs := make([]float64, 0, len(view)+1)
	obs = append(obs, view...)
	return append(obs, float64(p))
}

// Observe is Observation applied through a variant's Viewer.
func Observe[S comparable](v Viewer[S], s S, p Player) []float64 {
	return Observation(v.View(s), p)
}
