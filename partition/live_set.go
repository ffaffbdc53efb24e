// Package partition implements the graph-animation-partitioning machinery
// that groups supergraph elements sharing no overlapping lifetime into
// partitions suitable for a single shared base layout.
package partition

// LiveSet is the sorted set of keyframe indices at which some node or edge
// exists. Two elements with intersecting live sets can never be collapsed
// into the same partition, since both would need to occupy the same spot
// in the same keyframe.
type LiveSet struct {
	values []uint
}

// Add appends a time index. Callers must add indices in non-decreasing
// order; LiveSet does no sorting of its own; it only merges already-sorted
// sequences.
func (s *LiveSet) Add(time uint) {
	s.values = append(s.values, time)
}

// Empty reports whether the set holds no time indices.
func (s *LiveSet) Empty() bool { return len(s.values) == 0 }

// Values returns the set's time indices in ascending order.
func (s *LiveSet) Values() []uint { return s.values }

// Intersection returns the sorted set of time indices present in both s and
// other.
func (s *LiveSet) Intersection(other *LiveSet) LiveSet {
	var result LiveSet
	i, j := 0, 0
	for i < len(s.values) && j < len(other.values) {
		switch {
		case s.values[i] < other.values[j]:
			i++
		case other.values[j] < s.values[i]:
			j++
		default:
			result.values = append(result.values, s.values[i])
			i++
			j++
		}
	}
	return result
}

// Union returns the sorted set of time indices present in either s or other.
func (s *LiveSet) Union(other *LiveSet) LiveSet {
	var result LiveSet
	i, j := 0, 0
	for i < len(s.values) && j < len(other.values) {
		switch {
		case s.values[i] < other.values[j]:
			result.values = append(result.values, s.values[i])
			i++
		case other.values[j] < s.values[i]:
			result.values = append(result.values, other.values[j])
			j++
		default:
			result.values = append(result.values, s.values[i])
			i++
			j++
		}
	}
	result.values = append(result.values, s.values[i:]...)
	result.values = append(result.values, other.values[j:]...)
	return result
}

// Join replaces s with the union of s and other.
func (s *LiveSet) Join(other *LiveSet) {
	u := s.Union(other)
	s.values = u.values
}
