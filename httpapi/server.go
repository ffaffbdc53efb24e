// Package httpapi exposes the engine over HTTP: submit a modification
// script, get back an id; query that id for one interpolated frame, or
// stream a continuously paced sequence of frames over a WebSocket.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/driftmap/dyng/config"
)

// Server wires the engine up to chi routes.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store
}

// New returns a Server backed by cfg's canvas/tolerance/worker defaults.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, logger: logger, store: newStore()}
}

// Router returns the assembled http.Handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Post("/graphs", s.handleCreateGraph)
	r.Get("/graphs/{id}/frame", s.handleFrame)
	r.Get("/graphs/{id}/stream", s.handleStream)
	return r
}
