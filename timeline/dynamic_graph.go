package timeline

import "github.com/driftmap/dyng/graph"

// DynamicGraph holds a sequence of queued modifications and, once Build or
// BuildFrom has run, the resulting sequence of keyframe states.
type DynamicGraph struct {
	lastNodeID graph.NodeID
	lastEdgeID graph.EdgeID

	modifications [][]operation
	states        []*graph.Graph
}

// NewDynamicGraph returns an empty DynamicGraph.
func NewDynamicGraph() *DynamicGraph {
	return &DynamicGraph{}
}

// AddNode queues the creation of a node at the given time step. Time 0
// places the node in the initial state. The returned id is valid
// immediately, before Build runs.
func (d *DynamicGraph) AddNode(time int) graph.NodeID {
	id := d.lastNodeID
	d.lastNodeID++
	d.queue(time, operation{kind: opPushNode, node: id})
	return id
}

// AddEdge queues the creation of an edge between one and two at the given
// time step.
func (d *DynamicGraph) AddEdge(time int, one, two graph.NodeID) graph.EdgeID {
	id := d.lastEdgeID
	d.lastEdgeID++
	d.queue(time, operation{kind: opPushEdge, edge: id, one: one, two: two})
	return id
}

// RemoveNode queues the removal of a node at the given time step.
func (d *DynamicGraph) RemoveNode(time int, id graph.NodeID) {
	d.queue(time, operation{kind: opRemoveNode, node: id})
}

// RemoveEdge queues the removal of an edge at the given time step.
func (d *DynamicGraph) RemoveEdge(time int, id graph.EdgeID) {
	d.queue(time, operation{kind: opRemoveEdge, edge: id})
}

func (d *DynamicGraph) queue(time int, op operation) {
	if time >= len(d.modifications) {
		grown := make([][]operation, time+1)
		copy(grown, d.modifications)
		d.modifications = grown
	}
	d.modifications[time] = append(d.modifications[time], op)
}

// Build applies every queued modification, in time order, each step starting
// from a copy of the previous step's state, then computes isNew/isOld by
// diffing adjacent states. The modification queue is cleared afterward.
func (d *DynamicGraph) Build() error {
	d.states = make([]*graph.Graph, 0, len(d.modifications))
	for _, mods := range d.modifications {
		state := graph.NewGraph()
		if len(d.states) > 0 {
			state = d.states[len(d.states)-1].Clone()
		}
		for _, op := range mods {
			if err := op.apply(state); err != nil {
				return err
			}
		}
		d.states = append(d.states, state)
	}
	d.modifications = nil
	setLifecycleFlags(d.states)
	return nil
}

// BuildFrom replaces the modification queue with an already-built sequence
// of states, as produced by a text-format parse, recomputes isNew/isOld, and
// advances the id counters past every id observed in states so subsequent
// AddNode/AddEdge calls never collide with one already present.
func (d *DynamicGraph) BuildFrom(states []*graph.Graph) {
	d.modifications = nil
	d.states = states
	setLifecycleFlags(d.states)
	d.recalculateIDs()
}

// States returns the built sequence of keyframe states. Empty until Build or
// BuildFrom has run.
func (d *DynamicGraph) States() []*graph.Graph { return d.states }

// NodeCount returns the number of distinct node ids ever assigned. A node
// added and removed within the same time step is counted here even though
// it appears in no state.
func (d *DynamicGraph) NodeCount() int { return int(d.lastNodeID) }

// EdgeCount returns the number of distinct edge ids ever assigned, with the
// same same-step add/remove caveat as NodeCount.
func (d *DynamicGraph) EdgeCount() int { return int(d.lastEdgeID) }

func (d *DynamicGraph) recalculateIDs() {
	for _, state := range d.states {
		for _, n := range state.Nodes() {
			if n.ID+1 > d.lastNodeID {
				d.lastNodeID = n.ID + 1
			}
		}
		for _, e := range state.Edges() {
			if e.ID+1 > d.lastEdgeID {
				d.lastEdgeID = e.ID + 1
			}
		}
	}
}

// setLifecycleFlags recomputes IsNew/IsOld on every element of every state
// by checking for its presence in the adjacent states.
func setLifecycleFlags(states []*graph.Graph) {
	for i, state := range states {
		nodes := state.Nodes()
		for idx := range nodes {
			id := nodes[idx].ID
			nodes[idx].IsOld = i < len(states)-1 && !states[i+1].NodeExists(id)
			nodes[idx].IsNew = i > 0 && !states[i-1].NodeExists(id)
		}
		edges := state.Edges()
		for idx := range edges {
			id := edges[idx].ID
			edges[idx].IsOld = i < len(states)-1 && !states[i+1].EdgeExists(id)
			edges[idx].IsNew = i > 0 && !states[i-1].EdgeExists(id)
		}
	}
}
