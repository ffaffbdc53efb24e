package httpapi

import (
	"sync"

	"github.com/driftmap/dyng/graph"
	"github.com/driftmap/dyng/interpolate"
)

// session holds one built-and-laid-out animation, ready to be queried for
// frames at arbitrary times.
type session struct {
	states       []*graph.Graph
	interpolator *interpolate.Interpolator
	length       float32
}

// store is an in-memory, uuid-keyed table of sessions. In a production
// deployment this would be backed by a database; for this service a single
// process's lifetime is the intended scope.
type store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newStore() *store {
	return &store{sessions: make(map[string]*session)}
}

func (s *store) put(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *store) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}
