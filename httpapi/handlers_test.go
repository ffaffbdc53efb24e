package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftmap/dyng/config"
	"github.com/driftmap/dyng/frameview"
)

const sampleScript = `{"ops": [
  {"time": 0, "kind": "add_node"},
  {"time": 0, "kind": "add_node"},
  {"time": 1, "kind": "add_edge", "one": 0, "two": 1}
]}`

func newTestServer() *Server {
	cfg := config.Defaults()
	return New(cfg, nil)
}

func TestCreateGraphAndFetchFrame(t *testing.T) {
	s := newTestServer()
	router := s.Router()

	req := httptest.NewRequest(http.MethodPost, "/graphs", bytes.NewBufferString(sampleScript))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var created createGraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.States > 0)

	frameReq := httptest.NewRequest(http.MethodGet, "/graphs/"+created.ID+"/frame?t=0", nil)
	frameRec := httptest.NewRecorder()
	router.ServeHTTP(frameRec, frameReq)
	require.Equal(t, http.StatusOK, frameRec.Code)

	var frame frameview.Frame
	require.NoError(t, json.Unmarshal(frameRec.Body.Bytes(), &frame))
	assert.Len(t, frame.Nodes, 2)
}

func TestFetchFrameUnknownGraphIs404(t *testing.T) {
	s := newTestServer()
	router := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/graphs/does-not-exist/frame?t=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchFrameOutOfRangeTimeIs400(t *testing.T) {
	s := newTestServer()
	router := s.Router()

	req := httptest.NewRequest(http.MethodPost, "/graphs", bytes.NewBufferString(sampleScript))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var created createGraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	frameReq := httptest.NewRequest(http.MethodGet, "/graphs/"+created.ID+"/frame?t=-1", nil)
	frameRec := httptest.NewRecorder()
	router.ServeHTTP(frameRec, frameReq)
	assert.Equal(t, http.StatusBadRequest, frameRec.Code)
}

func TestCreateGraphMalformedScriptIs400(t *testing.T) {
	s := newTestServer()
	router := s.Router()

	req := httptest.NewRequest(http.MethodPost, "/graphs", bytes.NewBufferString(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
