package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFirstCoolingAnneals(t *testing.T) {
	c := defaultFirstCooling()
	assert.Equal(t, uint(500), c.Iterations)
	assert.InDelta(t, float32(0.8)*0.9893, c.Anneal(c.StartTemperature), 1e-6)
}

func TestDefaultSecondCoolingIsFinerThanFirst(t *testing.T) {
	first := defaultFirstCooling()
	second := defaultSecondCooling()
	assert.Less(t, second.StartTemperature, first.StartTemperature)
}

func TestDefaultToleranceCooling(t *testing.T) {
	c := DefaultToleranceCooling()
	assert.Equal(t, uint(250), c.Iterations)
	assert.InDelta(t, float32(0.4)*0.977, c.Anneal(c.StartTemperature), 1e-6)
}
