package interpolate

import (
	"math"

	"github.com/driftmap/dyng/graph"
)

// Interpolator produces a single continuous animation out of a sequence of
// keyframe states, given a phase order and the per-phase durations that
// order is run with.
type Interpolator struct {
	phases []Phase

	idleTime         float32
	appearTime       float32
	disappearTime    float32
	morphTime        float32
	simultaneousTime float32
}

// NewPhasedInterpolator returns an Interpolator using PhasedOrder with the
// built-in default durations.
func NewPhasedInterpolator() *Interpolator {
	return newInterpolator(PhasedOrder())
}

// NewSimultaneousInterpolator returns an Interpolator using
// SimultaneousOrder with the built-in default durations.
func NewSimultaneousInterpolator() *Interpolator {
	return newInterpolator(SimultaneousOrder())
}

// NewInterpolator returns an Interpolator using a caller-supplied phase
// order, validated the same way SetPhases validates one.
func NewInterpolator(phases []Phase) (*Interpolator, error) {
	i := newInterpolator(PhasedOrder())
	if err := i.SetPhases(phases); err != nil {
		return nil, err
	}
	return i, nil
}

func newInterpolator(phases []Phase) *Interpolator {
	return &Interpolator{
		phases:           phases,
		idleTime:         defaultDuration(Idle),
		appearTime:       defaultDuration(Appear),
		disappearTime:    defaultDuration(Disappear),
		morphTime:        defaultDuration(Morph),
		simultaneousTime: defaultDuration(Simultaneous),
	}
}

// SetPhases replaces the phase order. On validation failure the previous
// phase order is left untouched and an *graph.InvalidPhasesError is
// returned.
func (i *Interpolator) SetPhases(phases []Phase) error {
	if err := validatePhases(phases); err != nil {
		return err
	}
	i.phases = append([]Phase(nil), phases...)
	return nil
}

// Phases returns the current phase order.
func (i *Interpolator) Phases() []Phase { return i.phases }

// Duration returns the configured duration of phase p.
func (i *Interpolator) Duration(p Phase) float32 {
	switch p {
	case Idle:
		return i.idleTime
	case Appear:
		return i.appearTime
	case Disappear:
		return i.disappearTime
	case Morph:
		return i.morphTime
	case Simultaneous:
		return i.simultaneousTime
	default:
		return 0
	}
}

// SetDuration overrides the duration of phase p.
func (i *Interpolator) SetDuration(p Phase, d float32) {
	switch p {
	case Idle:
		i.idleTime = d
	case Appear:
		i.appearTime = d
	case Disappear:
		i.disappearTime = d
	case Morph:
		i.morphTime = d
	case Simultaneous:
		i.simultaneousTime = d
	}
}

// TransitionDuration is the sum of every configured phase's duration — the
// time a single keyframe-to-keyframe transition takes.
func (i *Interpolator) TransitionDuration() float32 {
	var total float32
	for _, p := range i.phases {
		total += i.Duration(p)
	}
	return total
}

// Length is the duration of the full animation over every keyframe in
// states.
func (i *Interpolator) Length(states []*graph.Graph) float32 {
	if len(states) == 0 {
		return 0
	}
	return float32(len(states)-1) * i.TransitionDuration()
}

// frameState accumulates the alpha/interpolation parameters every phase up
// to and including the current one contributes to a single frame.
type frameState struct {
	interpolation float32
	alpha         float32
	adding        bool
	added         bool
	deleting      bool
	deleted       bool
}

// At returns the single interpolated frame at time t within [0, Length(states)].
func (i *Interpolator) At(states []*graph.Graph, t float32) (*graph.Graph, error) {
	if t < 0 {
		return nil, graph.NewOutOfRangeError("time < 0")
	}
	if t > i.Length(states) {
		return nil, graph.NewOutOfRangeError("time > length")
	}
	if len(states) == 0 {
		return graph.NewGraph(), nil
	}

	td := i.TransitionDuration()
	index1 := int(math.Floor(float64(t / td)))
	index2 := int(math.Ceil(float64(t / td)))
	value := t - float32(index1)*td

	var anim frameState
	elapsed, current := i.currentPhase(value)
	for k := 0; k < current; k++ {
		i.performPhase(i.phases[k], i.Duration(i.phases[k]), &anim)
	}
	i.performPhase(i.phases[current], elapsed, &anim)

	if index1 > len(states)-1 {
		index1 = len(states) - 1
	}
	if index2 > len(states)-1 {
		index2 = len(states) - 1
	}
	frame := states[index1].Clone()
	next := states[index2]

	nodes := frame.Nodes()
	for k := range nodes {
		nodes[k].IsNew = false
	}
	edges := frame.Edges()
	for k := range edges {
		edges[k].IsNew = false
	}

	for _, n := range next.Nodes() {
		if n.IsNew {
			n.IsOld = false
			frame.PushNode(n)
		}
	}
	for _, e := range next.Edges() {
		if e.IsNew {
			e.IsOld = false
			_, _ = frame.PushEdge(e)
		}
	}

	nodes = frame.Nodes()
	for k := range nodes {
		node := &nodes[k]
		if other, err := next.NodeAt(node.ID); err == nil {
			node.Pos.X = lerp(node.Pos.X, other.Pos.X, anim.interpolation)
			node.Pos.Y = lerp(node.Pos.Y, other.Pos.Y, anim.interpolation)
		}
		calcAlphaNode(node, &anim)
	}
	edges = frame.Edges()
	for k := range edges {
		calcAlphaEdge(&edges[k], &anim)
	}
	return frame, nil
}

func lerp(a, b, value float32) float32 { return a + value*(b-a) }

// calcAlphaNode applies the shared appear/disappear alpha rule to a node.
func calcAlphaNode(n *graph.Node, anim *frameState) {
	if !n.IsOld && !n.IsNew {
		return
	}
	if n.IsNew && !anim.added {
		n.Alpha = 0
	}
	if n.IsOld && anim.deleted {
		n.Alpha = 0
	}
	ape := n.IsNew && anim.adding && !anim.added
	dis := n.IsOld && anim.deleting
	if ape || dis {
		n.Alpha = (boolToFloat(!ape) + anim.alpha*boolToFloat(ape)) * (1.0 - anim.alpha*boolToFloat(dis))
	}
}

// calcAlphaEdge applies the same alpha rule to an edge.
func calcAlphaEdge(e *graph.Edge, anim *frameState) {
	if !e.IsOld && !e.IsNew {
		return
	}
	if e.IsNew && !anim.added {
		e.Alpha = 0
	}
	if e.IsOld && anim.deleted {
		e.Alpha = 0
	}
	ape := e.IsNew && anim.adding && !anim.added
	dis := e.IsOld && anim.deleting
	if ape || dis {
		e.Alpha = (boolToFloat(!ape) + anim.alpha*boolToFloat(ape)) * (1.0 - anim.alpha*boolToFloat(dis))
	}
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// currentPhase walks the phase order accumulating durations until it finds
// the phase time falls within, returning the elapsed time within that phase
// and its index.
func (i *Interpolator) currentPhase(time float32) (float32, int) {
	for idx, p := range i.phases {
		d := i.Duration(p)
		if time < d {
			return time, idx
		}
		time -= d
	}
	// Only reachable through floating-point rounding right at a transition
	// boundary; treat it as exactly the end of the last phase.
	last := len(i.phases) - 1
	return i.Duration(i.phases[last]), last
}

// performPhase advances animation state as if phase p had run for `time`
// seconds out of its own duration.
func (i *Interpolator) performPhase(p Phase, time float32, anim *frameState) {
	d := i.Duration(p)
	switch p {
	case Idle:
	case Appear:
		anim.adding = time < d
		anim.alpha = time / d
		if time >= d {
			anim.added = true
		}
	case Disappear:
		anim.deleting = time < d
		anim.alpha = time / d
		if time >= d {
			anim.deleted = true
		}
	case Morph:
		anim.interpolation = time / d
	case Simultaneous:
		anim.adding = time < d
		anim.deleting = time < d
		anim.alpha = time / d
		anim.interpolation = time / d
		if time >= d {
			anim.deleted = true
			anim.added = true
		}
	}
}
