package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDStringers(t *testing.T) {
	assert.Equal(t, "42", NodeID(42).String())
	assert.Equal(t, "7", EdgeID(7).String())
}

func TestNewNodeIsOpaqueAtOrigin(t *testing.T) {
	n := NewNode(3)
	assert.Equal(t, NodeID(3), n.ID)
	assert.Equal(t, Coord{}, n.Pos)
	assert.Equal(t, float32(1), n.Alpha)
}
