package server

import (
	"net/http"
	"time"

	"rainbot/internal/logging"
)

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs each request with method, path, status and duration
func (s *Server) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logging.Info("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// ConcurrencyLimitMiddleware caps the number of requests handled at
// once. Excess requests wait their turn, mirroring a fixed-size thread
// pool in front of the handlers.
func (s *Server) ConcurrencyLimitMiddleware(next http.Handler) http.Handler {
	limit := s.config.MaxInFlight
	if limit < 1 {
		limit = 1
	}
	sem := make(chan struct{}, limit)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			// Client gave up while waiting for a slot
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})
}
