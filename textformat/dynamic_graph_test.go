package textformat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftmap/dyng/timeline"
)

func TestSerializeDynamicGraphThenParseDynamicGraphRoundTrips(t *testing.T) {
	dg := timeline.NewDynamicGraph()
	n0 := dg.AddNode(0)
	n1 := dg.AddNode(0)
	dg.AddEdge(1, n0, n1)
	require.NoError(t, dg.Build())

	var buf bytes.Buffer
	require.NoError(t, SerializeDynamicGraph(&buf, dg))

	parsed, err := ParseDynamicGraph(&buf)
	require.NoError(t, err)

	states := parsed.States()
	require.Len(t, states, 2)
	assert.Len(t, states[0].Edges(), 0)
	assert.Len(t, states[1].Edges(), 1)
}

func TestParseDynamicGraphOnMalformedTextIsError(t *testing.T) {
	_, err := ParseDynamicGraph(bytes.NewReader([]byte("not the text format")))
	require.Error(t, err)
}
