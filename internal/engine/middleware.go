package engine

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Middleware carries the cross-cutting HTTP concerns: CORS for the frontend
// origin and per-request logging with metrics.
type Middleware struct {
	engine *Engine
}

// NewMiddleware creates a new middleware instance.
func NewMiddleware(engine *Engine) *Middleware {
	return &Middleware{engine: engine}
}

// CORS allows the configured frontend origins and answers preflights.
func (m *Middleware) CORS(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(m.engine.config.CORSOrigins))
	for _, origin := range m.engine.config.CORSOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogging tags each request with an id, logs its outcome and feeds the
// Prometheus collectors.
func (m *Middleware) RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		m.engine.metrics.ObserveRequest(r.Method, r.URL.Path, recorder.status, duration)
		m.engine.logger.WithField("request_id", requestID).
			Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, recorder.status, duration)
	})
}
