package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildLiveSet(times ...uint) LiveSet {
	var s LiveSet
	for _, t := range times {
		s.Add(t)
	}
	return s
}

func TestLiveSetIntersection(t *testing.T) {
	a := buildLiveSet(0, 1, 2, 5)
	b := buildLiveSet(1, 2, 3)
	got := a.Intersection(&b)
	assert.Equal(t, []uint{1, 2}, got.Values())
}

func TestLiveSetIntersectionDisjoint(t *testing.T) {
	a := buildLiveSet(0, 1)
	b := buildLiveSet(2, 3)
	got := a.Intersection(&b)
	assert.True(t, got.Empty())
}

func TestLiveSetUnion(t *testing.T) {
	a := buildLiveSet(0, 2, 4)
	b := buildLiveSet(1, 2, 5)
	got := a.Union(&b)
	assert.Equal(t, []uint{0, 1, 2, 4, 5}, got.Values())
}

func TestLiveSetJoinMutatesInPlace(t *testing.T) {
	a := buildLiveSet(0, 3)
	b := buildLiveSet(1, 2)
	a.Join(&b)
	assert.Equal(t, []uint{0, 1, 2, 3}, a.Values())
}

func TestEmptyLiveSet(t *testing.T) {
	var s LiveSet
	assert.True(t, s.Empty())
	s.Add(0)
	assert.False(t, s.Empty())
}
