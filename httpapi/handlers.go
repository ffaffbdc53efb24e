package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/driftmap/dyng/graph"
	"github.com/driftmap/dyng/ingest"
	"github.com/driftmap/dyng/interpolate"
	"github.com/driftmap/dyng/layout"
	"github.com/driftmap/dyng/textformat"
	"github.com/driftmap/dyng/timeline"
)

const textFormatContentType = "text/x-dyng"

type createGraphResponse struct {
	ID     string  `json:"id"`
	States int     `json:"states"`
	Length float32 `json:"length"`
}

// handleCreateGraph ingests a script (or, with Content-Type: text/x-dyng,
// the §6 keyframe text format), runs the foresighted layout, and stores the
// result under a fresh uuid.
func (s *Server) handleCreateGraph(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 32<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "reading request body"))
		return
	}

	dg, err := s.buildDynamicGraph(r.Header.Get("Content-Type"), body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.runLayout(r, dg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	interp := interpolate.NewPhasedInterpolator()
	states := dg.States()
	sess := &session{states: states, interpolator: interp, length: interp.Length(states)}
	id := uuid.New().String()
	s.store.put(id, sess)

	s.logger.Info("built graph", zap.String("id", id), zap.Int("states", len(states)))
	writeJSON(w, http.StatusOK, createGraphResponse{ID: id, States: len(states), Length: sess.length})
}

func (s *Server) buildDynamicGraph(contentType string, body []byte) (*timeline.DynamicGraph, error) {
	if contentType == textFormatContentType {
		dg, err := textformat.ParseDynamicGraph(bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "parsing text format")
		}
		return dg, nil
	}

	var proc ingest.ScriptProcessor = ingest.NewJSONScriptProcessor()
	if contentType == "text/csv" {
		proc = ingest.NewCSVScriptProcessor()
	}
	dg, err := proc.Process(body)
	if err != nil {
		return nil, errors.Wrap(err, "ingesting script")
	}
	return dg, nil
}

func (s *Server) runLayout(r *http.Request, dg *timeline.DynamicGraph) error {
	width, height := float32(*s.cfg.Canvas.Width), float32(*s.cfg.Canvas.Height)
	tolerance := float32(*s.cfg.Tolerance)
	workers := *s.cfg.Workers
	if q := r.URL.Query().Get("workers"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return errors.Wrap(err, "parsing workers query param")
		}
		workers = n
	}

	if workers > 1 {
		pl := layout.NewParallelForesightedLayout(workers, tolerance, width, height)
		defer pl.Close()
		pl.Run(dg)
		return nil
	}

	l := layout.NewForesightedLayout(width, height)
	l.Tolerance = tolerance
	l.Run(dg)
	return nil
}

// handleFrame returns the single interpolated frame at time t.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("graph not found"))
		return
	}

	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "parsing t query param"))
		return
	}

	frame, err := sess.interpolator.At(sess.states, float32(t))
	if err != nil {
		status := http.StatusInternalServerError
		var oor *graph.OutOfRangeError
		if errors.As(err, &oor) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, newFrameResponse(frame))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
