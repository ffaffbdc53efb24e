package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `{"ops": [
  {"time": 0, "kind": "add_node"},
  {"time": 0, "kind": "add_node"},
  {"time": 2, "kind": "add_edge", "one": 0, "two": 1},
  {"time": 5, "kind": "remove_edge", "id": 0}
]}`

func TestJSONScriptProcessorBuildsExpectedKeyframes(t *testing.T) {
	dg, err := NewJSONScriptProcessor().Process([]byte(sampleScript))
	require.NoError(t, err)
	states := dg.States()
	require.Len(t, states, 6)

	assert.Equal(t, 2, len(states[0].Nodes()))
	assert.Equal(t, 0, len(states[0].Edges()))

	assert.Equal(t, 1, len(states[2].Edges()))

	assert.Equal(t, 0, len(states[5].Edges()))
}

func TestJSONScriptProcessorUnknownNodeIsWrappedError(t *testing.T) {
	script := `{"ops": [{"time": 0, "kind": "add_edge", "one": 7, "two": 8}]}`
	_, err := NewJSONScriptProcessor().Process([]byte(script))
	require.Error(t, err)
}

func TestJSONScriptProcessorMalformedJSONIsWrappedError(t *testing.T) {
	_, err := NewJSONScriptProcessor().Process([]byte(`{not json`))
	require.Error(t, err)
}

func TestJSONScriptProcessorExplicitLocalIDs(t *testing.T) {
	script := `{"ops": [
	  {"time": 0, "kind": "add_node", "id": 10},
	  {"time": 0, "kind": "add_node", "id": 20},
	  {"time": 1, "kind": "add_edge", "one": 10, "two": 20, "id": 99},
	  {"time": 2, "kind": "remove_edge", "id": 99}
	]}`
	dg, err := NewJSONScriptProcessor().Process([]byte(script))
	require.NoError(t, err)
	states := dg.States()
	require.Len(t, states, 3)
	assert.Equal(t, 1, len(states[1].Edges()))
	assert.Equal(t, 0, len(states[2].Edges()))
}

func TestJSONScriptProcessorDuplicateLocalIDIsWrappedError(t *testing.T) {
	script := `{"ops": [
	  {"time": 0, "kind": "add_node", "id": 5},
	  {"time": 0, "kind": "add_node", "id": 5}
	]}`
	_, err := NewJSONScriptProcessor().Process([]byte(script))
	require.Error(t, err)
}

func TestCSVScriptProcessorMatchesJSONEquivalent(t *testing.T) {
	csvData := "time,kind,one,two,id\n" +
		"0,add_node,,,\n" +
		"0,add_node,,,\n" +
		"2,add_edge,0,1,\n" +
		"5,remove_edge,,,0\n"
	dg, err := NewCSVScriptProcessor().Process([]byte(csvData))
	require.NoError(t, err)
	states := dg.States()
	require.Len(t, states, 6)
	assert.Equal(t, 2, len(states[0].Nodes()))
	assert.Equal(t, 1, len(states[2].Edges()))
	assert.Equal(t, 0, len(states[5].Edges()))
}

func TestCSVScriptProcessorWithoutHeader(t *testing.T) {
	csvData := "0,add_node,,,\n" +
		"0,add_node,,,\n" +
		"1,add_edge,0,1,\n"
	dg, err := NewCSVScriptProcessor().Process([]byte(csvData))
	require.NoError(t, err)
	require.Len(t, dg.States(), 2)
}

func TestCSVScriptProcessorMalformedRowIsWrappedError(t *testing.T) {
	_, err := NewCSVScriptProcessor().Process([]byte("not,enough\n"))
	require.Error(t, err)
}

func TestProcessorNames(t *testing.T) {
	assert.Equal(t, "json", NewJSONScriptProcessor().Name())
	assert.Equal(t, "csv", NewCSVScriptProcessor().Name())
}
