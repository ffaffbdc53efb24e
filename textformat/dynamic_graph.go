package textformat

import (
	"io"

	"github.com/driftmap/dyng/timeline"
)

// ParseDynamicGraph parses the text format and loads the resulting
// keyframe sequence into a fresh timeline.DynamicGraph via BuildFrom, so
// its id counters and isNew/isOld flags come out consistent with a graph
// built from modifications instead of read from disk.
func ParseDynamicGraph(r io.Reader) (*timeline.DynamicGraph, error) {
	states, err := Parse(r)
	if err != nil {
		return nil, err
	}
	dg := timeline.NewDynamicGraph()
	dg.BuildFrom(states)
	return dg, nil
}

// SerializeDynamicGraph writes dg's built states in the text format.
func SerializeDynamicGraph(w io.Writer, dg *timeline.DynamicGraph) error {
	return Serialize(w, dg.States())
}
