// Package textformat implements the plain-text keyframe serialization
// grammar: a dynamic graph is written as a brace-delimited sequence of
// bracket-delimited states, each holding semicolon-terminated node and edge
// statements.
package textformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/driftmap/dyng/graph"
)

// Serialize writes states in the text format: "{ [ n ID X Y; e ID ONE TWO; ] }".
func Serialize(w io.Writer, states []*graph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "{\n"); err != nil {
		return err
	}
	for _, state := range states {
		if err := serializeState(bw, state); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(bw, "}\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func serializeState(w io.Writer, state *graph.Graph) error {
	if _, err := fmt.Fprint(w, "[\n"); err != nil {
		return err
	}
	for _, n := range state.Nodes() {
		if _, err := fmt.Fprintf(w, "n %s %g %g;\n", n.ID, n.Pos.X, n.Pos.Y); err != nil {
			return err
		}
	}
	for _, e := range state.Edges() {
		if _, err := fmt.Fprintf(w, "e %s %s %s;\n", e.ID, e.One, e.Two); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "]\n")
	return err
}

// Parse reads the text format and returns the sequence of keyframe states
// it describes. Any character outside an n/e statement that is neither
// whitespace nor a structural brace/bracket triggers a *graph.ParseError,
// as does an input that ends before its closing brace is found.
func Parse(r io.Reader) ([]*graph.Graph, error) {
	br := bufio.NewReader(r)
	if err := skipUntil(br, '{'); err != nil {
		return nil, err
	}
	var states []*graph.Graph
	for {
		ch, err := br.ReadByte()
		if err != nil {
			return nil, graph.NewParseError("stream ended, expected '}'")
		}
		switch {
		case ch == '}':
			return states, nil
		case ch == '[':
			if err := br.UnreadByte(); err != nil {
				return nil, graph.NewParseError(err.Error())
			}
			state, err := parseState(br)
			if err != nil {
				return nil, err
			}
			states = append(states, state)
		case isSpace(ch):
			// ignore
		default:
			return nil, graph.NewParseError(fmt.Sprintf("unexpected character %q", ch))
		}
	}
}

func parseState(br *bufio.Reader) (*graph.Graph, error) {
	if err := skipUntil(br, '['); err != nil {
		return nil, err
	}
	state := graph.NewGraph()
	for {
		ch, err := br.ReadByte()
		if err != nil {
			return nil, graph.NewParseError("stream ended, expected ']'")
		}
		switch {
		case ch == ']':
			return state, nil
		case ch == 'n':
			id, x, y, err := parseNodeStatement(br)
			if err != nil {
				return nil, err
			}
			state.PushNode(graph.Node{ID: graph.NodeID(id), Pos: graph.Coord{X: x, Y: y}, Alpha: 1.0})
		case ch == 'e':
			id, one, two, err := parseEdgeStatement(br)
			if err != nil {
				return nil, err
			}
			if _, err := state.PushEdge(graph.NewEdge(graph.EdgeID(id), graph.NodeID(one), graph.NodeID(two))); err != nil {
				return nil, err
			}
		case isSpace(ch):
			// ignore
		default:
			return nil, graph.NewParseError(fmt.Sprintf("unexpected character %q", ch))
		}
	}
}

func parseNodeStatement(br *bufio.Reader) (id uint64, x, y float32, err error) {
	raw, err := readUntil(br, ';')
	if err != nil {
		return 0, 0, 0, err
	}
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return 0, 0, 0, graph.NewParseError("invalid number of node parameters")
	}
	id, err1 := strconv.ParseUint(fields[0], 10, 64)
	xv, err2 := strconv.ParseFloat(fields[1], 32)
	yv, err3 := strconv.ParseFloat(fields[2], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, graph.NewParseError("invalid node parameters")
	}
	return id, float32(xv), float32(yv), nil
}

func parseEdgeStatement(br *bufio.Reader) (id, one, two uint64, err error) {
	raw, err := readUntil(br, ';')
	if err != nil {
		return 0, 0, 0, err
	}
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return 0, 0, 0, graph.NewParseError("invalid number of edge parameters")
	}
	id, err1 := strconv.ParseUint(fields[0], 10, 64)
	one, err2 := strconv.ParseUint(fields[1], 10, 64)
	two, err3 := strconv.ParseUint(fields[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, graph.NewParseError("invalid edge parameters")
	}
	return id, one, two, nil
}

// skipUntil discards whitespace up to and including the first occurrence of
// ch; any other byte before ch is a *graph.ParseError.
func skipUntil(br *bufio.Reader, ch byte) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return graph.NewParseError(fmt.Sprintf("stream ended, expected %q", ch))
		}
		if b == ch {
			return nil
		}
		if !isSpace(b) {
			return graph.NewParseError(fmt.Sprintf("unexpected character %q, expected %q", b, ch))
		}
	}
}

// readUntil accumulates bytes up to but excluding the first occurrence of
// ch, which is consumed.
func readUntil(br *bufio.Reader, ch byte) (string, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", graph.NewParseError(fmt.Sprintf("stream ended, expected %q", ch))
		}
		if b == ch {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
