// Package timeline turns a sequence of timestamped node/edge modifications
// into the vector of keyframe graphs a layout stage consumes.
package timeline

import "github.com/driftmap/dyng/graph"

// opKind discriminates the closed set of modifications a DynamicGraph can
// queue. Using a sum type here, rather than a boxed closure, keeps a queued
// modification inspectable and trivially copyable.
type opKind int

const (
	opPushNode opKind = iota
	opPushEdge
	opRemoveNode
	opRemoveEdge
)

// operation is one queued modification, applied against a graph.Graph copy
// when the timeline is built.
type operation struct {
	kind opKind

	node graph.NodeID // opPushNode, opRemoveNode
	edge graph.EdgeID // opPushEdge, opRemoveEdge
	one  graph.NodeID // opPushEdge
	two  graph.NodeID // opPushEdge
}

// apply runs the operation against a graph state.
func (o operation) apply(g *graph.Graph) error {
	switch o.kind {
	case opPushNode:
		g.PushNode(graph.NewNode(o.node))
		return nil
	case opPushEdge:
		_, err := g.PushEdge(graph.NewEdge(o.edge, o.one, o.two))
		return err
	case opRemoveNode:
		return g.RemoveNode(o.node)
	case opRemoveEdge:
		return g.RemoveEdge(o.edge)
	}
	return nil
}
