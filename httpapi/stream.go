package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const defaultFrameRate = 30.0

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleStream upgrades the connection and pushes frames from t=0 to
// t=length, paced by a rate.Limiter at the configured frames-per-second,
// closing cleanly when the animation ends or the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "graph not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	fps := defaultFrameRate
	if s.cfg.Server.FrameRate != nil {
		fps = *s.cfg.Server.FrameRate
	}
	limiter := rate.NewLimiter(rate.Limit(fps), 1)
	dt := float32(1.0 / fps)

	ctx := r.Context()
	for t := float32(0); t <= sess.length; t += dt {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		frame, err := sess.interpolator.At(sess.states, t)
		if err != nil {
			return
		}
		if err := conn.WriteJSON(newFrameResponse(frame)); err != nil {
			return
		}
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
}
