// Package ingest turns an externally authored modification script into a
// built timeline.DynamicGraph. A script names its nodes and edges with
// small caller-chosen integers rather than the engine's own NodeID/EdgeID
// space, so a ScriptProcessor's main job is maintaining the alias table
// between the two.
package ingest

import (
	"github.com/pkg/errors"

	"github.com/driftmap/dyng/graph"
	"github.com/driftmap/dyng/timeline"
)

// ScriptProcessor turns raw script bytes into a built dynamic graph.
type ScriptProcessor interface {
	Process(data []byte) (*timeline.DynamicGraph, error)
	Name() string
}

// opKind enumerates the four modification kinds a script op can request.
type opKind string

const (
	kindAddNode    opKind = "add_node"
	kindAddEdge    opKind = "add_edge"
	kindRemoveNode opKind = "remove_node"
	kindRemoveEdge opKind = "remove_edge"
)

// op is a single timestamped modification, in the script's own local id
// space. ID is the local id this op assigns (for add_node/add_edge) or
// refers back to (for remove_node/remove_edge); when an add op omits it,
// the op is assigned the next unused local id for its kind, in script
// order. One/Two name the local node ids an add_edge connects.
type op struct {
	Time int
	Kind opKind
	ID   *int
	One  *int
	Two  *int
}

// replay runs ops against a fresh DynamicGraph, translating each op's local
// ids through a pair of alias tables, and returns the built result.
func replay(ops []op) (*timeline.DynamicGraph, error) {
	dg := timeline.NewDynamicGraph()
	nodeAlias := make(map[int]graph.NodeID)
	edgeAlias := make(map[int]graph.EdgeID)
	nextNodeLocal := 0
	nextEdgeLocal := 0

	for i, o := range ops {
		switch o.Kind {
		case kindAddNode:
			local := nextNodeLocal
			if o.ID != nil {
				local = *o.ID
			}
			if _, exists := nodeAlias[local]; exists {
				return nil, errors.Errorf("op %d: add_node local id %d already in use", i, local)
			}
			nodeAlias[local] = dg.AddNode(o.Time)
			if local >= nextNodeLocal {
				nextNodeLocal = local + 1
			}

		case kindAddEdge:
			if o.One == nil || o.Two == nil {
				return nil, errors.Errorf("op %d: add_edge requires one and two", i)
			}
			one, ok := nodeAlias[*o.One]
			if !ok {
				return nil, errors.Errorf("op %d: add_edge references unknown node %d", i, *o.One)
			}
			two, ok := nodeAlias[*o.Two]
			if !ok {
				return nil, errors.Errorf("op %d: add_edge references unknown node %d", i, *o.Two)
			}
			local := nextEdgeLocal
			if o.ID != nil {
				local = *o.ID
			}
			if _, exists := edgeAlias[local]; exists {
				return nil, errors.Errorf("op %d: add_edge local id %d already in use", i, local)
			}
			edgeAlias[local] = dg.AddEdge(o.Time, one, two)
			if local >= nextEdgeLocal {
				nextEdgeLocal = local + 1
			}

		case kindRemoveNode:
			if o.ID == nil {
				return nil, errors.Errorf("op %d: remove_node requires id", i)
			}
			id, ok := nodeAlias[*o.ID]
			if !ok {
				return nil, errors.Errorf("op %d: remove_node references unknown node %d", i, *o.ID)
			}
			dg.RemoveNode(o.Time, id)

		case kindRemoveEdge:
			if o.ID == nil {
				return nil, errors.Errorf("op %d: remove_edge requires id", i)
			}
			id, ok := edgeAlias[*o.ID]
			if !ok {
				return nil, errors.Errorf("op %d: remove_edge references unknown edge %d", i, *o.ID)
			}
			dg.RemoveEdge(o.Time, id)

		default:
			return nil, errors.Errorf("op %d: unknown kind %q", i, o.Kind)
		}
	}

	if err := dg.Build(); err != nil {
		return nil, errors.Wrap(err, "building dynamic graph from script")
	}
	return dg, nil
}
