// Package distortion applies a purely cosmetic simplex-noise perturbation
// to already-interpolated animation frames. It runs strictly after
// interpolate.Interpolator.At has produced a frame and never participates
// in layout, distance, or tolerance decisions.
package distortion

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/driftmap/dyng/graph"
)

// Distorter perturbs node positions in an already-built frame with
// two-dimensional simplex noise that evolves over a caller-advanced time
// step, for a hand-drawn/organic look in demos.
type Distorter struct {
	noise     opensimplex.Noise
	scale     float32
	amplitude float32
	timeStep  float64
}

// New returns a Distorter seeded deterministically. scale controls the
// spatial frequency of the noise field; amplitude controls how far a node
// can be pushed from its interpolated position, and an amplitude of 0
// leaves noise disabled.
func New(seed int64, scale, amplitude float32) *Distorter {
	return &Distorter{
		noise:     opensimplex.New(seed),
		scale:     scale,
		amplitude: amplitude,
	}
}

// Amplitude returns the current distortion strength. Zero means disabled.
func (d *Distorter) Amplitude() float32 { return d.amplitude }

// SetAmplitude changes the distortion strength. Pass 0 to disable.
func (d *Distorter) SetAmplitude(amplitude float32) { d.amplitude = amplitude }

// SetScale changes the spatial frequency of the noise field.
func (d *Distorter) SetScale(scale float32) { d.scale = scale }

// Reset returns the internal time step to zero.
func (d *Distorter) Reset() { d.timeStep = 0 }

// Apply perturbs every node position in frame in place and advances the
// internal time step by one frame. A zero-amplitude Distorter leaves frame
// untouched other than the time step advance, so it is safe to call
// unconditionally from a render loop.
func (d *Distorter) Apply(frame *graph.Graph) {
	if d.amplitude != 0 {
		nodes := frame.Nodes()
		for i := range nodes {
			n := &nodes[i]
			dx := d.noise.Eval3(float64(n.Pos.X)*float64(d.scale), float64(n.Pos.Y)*float64(d.scale), d.timeStep)
			dy := d.noise.Eval3(float64(n.Pos.X)*float64(d.scale)+100, float64(n.Pos.Y)*float64(d.scale)+100, d.timeStep)
			n.Pos.X += float32(dx) * d.amplitude
			n.Pos.Y += float32(dy) * d.amplitude
		}
	}
	d.timeStep += 0.01
}
