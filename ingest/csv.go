package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/driftmap/dyng/timeline"
)

// CSVScriptProcessor reads time,kind,one,two,id rows, one op per row. one,
// two, and id are optional and may be left blank depending on kind, the
// same way they are optional JSON fields on JSONScriptProcessor's schema.
// A header row of exactly those column names is skipped if present.
type CSVScriptProcessor struct{}

// NewCSVScriptProcessor returns a ready-to-use CSVScriptProcessor.
func NewCSVScriptProcessor() *CSVScriptProcessor { return &CSVScriptProcessor{} }

// Name implements ScriptProcessor.
func (p *CSVScriptProcessor) Name() string { return "csv" }

var csvHeader = []string{"time", "kind", "one", "two", "id"}

// Process implements ScriptProcessor.
func (p *CSVScriptProcessor) Process(data []byte) (*timeline.DynamicGraph, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var ops []op
	rowNum := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading csv script")
		}
		rowNum++
		if rowNum == 1 && isCSVHeader(record) {
			continue
		}
		o, err := parseCSVRow(record)
		if err != nil {
			return nil, errors.Wrapf(err, "csv row %d", rowNum)
		}
		ops = append(ops, o)
	}

	dg, err := replay(ops)
	if err != nil {
		return nil, errors.Wrap(err, "replaying csv script")
	}
	return dg, nil
}

func isCSVHeader(record []string) bool {
	if len(record) != len(csvHeader) {
		return false
	}
	for i, col := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(record[i]), col) {
			return false
		}
	}
	return true
}

func parseCSVRow(record []string) (op, error) {
	if len(record) != 5 {
		return op{}, errors.Errorf("expected 5 columns (time,kind,one,two,id), got %d", len(record))
	}
	time, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return op{}, errors.Wrap(err, "parsing time")
	}
	kind := strings.TrimSpace(record[1])
	one, err := parseOptionalCSVInt(record[2])
	if err != nil {
		return op{}, errors.Wrap(err, "parsing one")
	}
	two, err := parseOptionalCSVInt(record[3])
	if err != nil {
		return op{}, errors.Wrap(err, "parsing two")
	}
	id, err := parseOptionalCSVInt(record[4])
	if err != nil {
		return op{}, errors.Wrap(err, "parsing id")
	}
	return op{Time: time, Kind: opKind(kind), ID: id, One: one, Two: two}, nil
}

func parseOptionalCSVInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
