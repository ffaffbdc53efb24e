// Package graph provides the static keyframe data model: disjoint node and
// edge identifiers, coordinates, and the graph container that a single
// animation keyframe is built from.
package graph

import "fmt"

// NodeID identifies a node. Disjoint from EdgeID so the two can never be
// confused at compile time.
type NodeID uint64

// String implements fmt.Stringer.
func (id NodeID) String() string { return fmt.Sprintf("%d", uint64(id)) }

// EdgeID identifies an edge. Disjoint from NodeID so the two can never be
// confused at compile time.
type EdgeID uint64

// String implements fmt.Stringer.
func (id EdgeID) String() string { return fmt.Sprintf("%d", uint64(id)) }
