package ingest

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/driftmap/dyng/timeline"
)

// JSONScriptProcessor reads the `{"ops": [...]}` script schema.
type JSONScriptProcessor struct{}

// NewJSONScriptProcessor returns a ready-to-use JSONScriptProcessor.
func NewJSONScriptProcessor() *JSONScriptProcessor { return &JSONScriptProcessor{} }

// Name implements ScriptProcessor.
func (p *JSONScriptProcessor) Name() string { return "json" }

type jsonOp struct {
	Time int    `json:"time"`
	Kind string `json:"kind"`
	ID   *int   `json:"id,omitempty"`
	One  *int   `json:"one,omitempty"`
	Two  *int   `json:"two,omitempty"`
}

type jsonScript struct {
	Ops []jsonOp `json:"ops"`
}

// Process implements ScriptProcessor.
func (p *JSONScriptProcessor) Process(data []byte) (*timeline.DynamicGraph, error) {
	var script jsonScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrap(err, "decoding json script")
	}
	ops := make([]op, len(script.Ops))
	for i, j := range script.Ops {
		ops[i] = op{Time: j.Time, Kind: opKind(j.Kind), ID: j.ID, One: j.One, Two: j.Two}
	}
	dg, err := replay(ops)
	if err != nil {
		return nil, errors.Wrap(err, "replaying json script")
	}
	return dg, nil
}
