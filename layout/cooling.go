package layout

// Cooling describes an annealing schedule: how many iterations to run,
// the starting temperature (the maximum fraction of the canvas a node may
// move per iteration), and how the temperature decays after each one.
type Cooling struct {
	Iterations       uint
	StartTemperature float32
	Anneal           func(float32) float32
}

// defaultFirstCooling is the coarse first pass of ForceDirectedLayout's two
// annealing schedules: many iterations, high temperature, faster decay.
func defaultFirstCooling() Cooling {
	return Cooling{
		Iterations:       500,
		StartTemperature: 0.8,
		Anneal:           func(t float32) float32 { return t * 0.9893 },
	}
}

// defaultSecondCooling is the fine-tuning second pass: same iteration
// count, much lower temperature, slower decay.
func defaultSecondCooling() Cooling {
	return Cooling{
		Iterations:       500,
		StartTemperature: 0.05,
		Anneal:           func(t float32) float32 { return t * 0.993 },
	}
}

// DefaultToleranceCooling is the annealing schedule ForesightedLayout uses
// for its per-keyframe tolerance refinement pass.
func DefaultToleranceCooling() Cooling {
	return Cooling{
		Iterations:       250,
		StartTemperature: 0.4,
		Anneal:           func(t float32) float32 { return t * 0.977 },
	}
}
