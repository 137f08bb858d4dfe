package handlers

import (
	"bufio"
	"csrfdemo/utils"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the API routes. hub may be nil, in which case /ws is not
// served.
func NewRouter(h *Handler, hub *Hub) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(h.logger))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", h.StateHandler).Methods(http.MethodGet)
	api.HandleFunc("/login", h.LoginHandler).Methods(http.MethodPost)
	api.HandleFunc("/logout", h.LogOutHandler).Methods(http.MethodPost)
	api.HandleFunc("/mode", h.ModeHandler).Methods(http.MethodPost)
	api.HandleFunc("/transfer", h.TransferHandler).Methods(http.MethodPost)

	if hub != nil {
		r.HandleFunc("/ws", hub.ServeWS).Methods(http.MethodGet)
	}
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Hijack lets the websocket upgrade pass through the middleware
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func requestLogger(logger *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debugw("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"ip", utils.GetIP(r),
				"user_agent", utils.GetUserAgent(r),
				"duration", time.Since(start))
		})
	}
}
