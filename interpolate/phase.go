// Package interpolate turns a built timeline.DynamicGraph's keyframes into a
// continuous animation by lerping positions and fading alpha between every
// pair of adjacent keyframes according to a configurable phase order.
package interpolate

import "github.com/driftmap/dyng/graph"

// Phase names one stage of the transition between two adjacent keyframes.
type Phase int

const (
	// Idle is a stage where nothing changes; useful as a pause at the
	// start or end of a transition.
	Idle Phase = iota
	// Appear fades newly-added elements in (alpha 0 -> 1).
	Appear
	// Disappear fades soon-to-be-removed elements out (alpha 1 -> 0).
	Disappear
	// Morph lerps persisting elements' positions toward their next state.
	Morph
	// Simultaneous runs Appear, Disappear, and Morph all at once.
	Simultaneous
)

// PhasedOrder is the default phase sequence: old elements fade out, then
// persisting elements morph, then new elements fade in.
func PhasedOrder() []Phase { return []Phase{Idle, Disappear, Morph, Appear} }

// SimultaneousOrder is the default single-phase sequence where every
// transition happens at once.
func SimultaneousOrder() []Phase { return []Phase{Idle, Simultaneous} }

// defaultDuration returns the built-in duration, in seconds, of a single
// phase's default order.
func defaultDuration(p Phase) float32 {
	switch p {
	case Idle:
		return 0.5
	case Appear:
		return 0.25
	case Disappear:
		return 0.25
	case Morph:
		return 1.0
	case Simultaneous:
		return 1.5
	default:
		return 0
	}
}

// validatePhases enforces the allowed phase-sequence shapes: either exactly
// one each of Appear, Disappear, and Morph with no Simultaneous, or exactly
// one Simultaneous with none of the other three. Idle may appear any
// number of times either way.
func validatePhases(phases []Phase) error {
	var a, d, m, s int
	for _, p := range phases {
		switch p {
		case Appear:
			a++
		case Disappear:
			d++
		case Morph:
			m++
		case Simultaneous:
			s++
		}
	}
	if s > 1 || a > 1 || d > 1 || m > 1 {
		return graph.NewInvalidPhasesError("a phase other than idle is present multiple times")
	}
	eitherThree := a > 0 || d > 0 || m > 0
	threeCorrect := a == 1 && d == 1 && m == 1
	if (s == 0 && !threeCorrect) || (s == 1 && eitherThree) {
		return graph.NewInvalidPhasesError("phases must be exactly one each of appear/disappear/morph, or exactly one simultaneous")
	}
	return nil
}
