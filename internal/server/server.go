package server

import (
	"context"
	"net/http"
	"path/filepath"

	"rainbot/internal/bot"
	"rainbot/internal/config"
	"rainbot/internal/logging"
	"rainbot/internal/version"
)

// TaskRunner executes one weather tweet run. Satisfied by bot.Runner.
type TaskRunner interface {
	Run(ctx context.Context) (*bot.RunResult, error)
	Live() bool
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	runner     TaskRunner
	version    version.Info
	httpServer *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, runner TaskRunner, versionInfo version.Info) *Server {
	return &Server{
		config:  cfg,
		runner:  runner,
		version: versionInfo,
	}
}

// Routes builds the request handler with all middleware applied
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Static file serving for the bundled image assets
	assetsDir := filepath.Dir(s.config.ImagePath)
	fs := http.FileServer(http.Dir(assetsDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/run-tweet-task", s.handleRunTweetTask)

	// API routes
	mux.HandleFunc("/api/v1/status", s.handleAPIStatus)
	mux.HandleFunc("/api/v1/posts", s.handleAPIPosts)

	return s.LoggingMiddleware(s.ConcurrencyLimitMiddleware(mux))
}

// Start starts the HTTP server. Request timeouts are deliberately left
// unset: tweet runs call two upstream APIs and the original deployment
// ran with timeout enforcement disabled.
func (s *Server) Start() error {
	addr := s.config.ListenAddr
	if addr == "" {
		addr = ":" + config.DefaultPort
	}

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	logging.Info("Starting server on %s (max in-flight: %d)", addr, s.config.MaxInFlight)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
