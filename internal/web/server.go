// Package web exposes the tool registry as an async REST surface: jobs
// are created, started in the background, and polled for results.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/web/jobs"
)

// Server is the HTTP server for the appsec tool API.
type Server struct {
	router   chi.Router
	addr     string
	registry *tool.Registry
	runner   *tool.Runner
	manager  *jobs.Manager
	log      *zap.Logger
}

// NewServer builds a new Server with middleware and routes configured.
func NewServer(addr string, reg *tool.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	runner := tool.NewRunner(reg)
	s := &Server{
		router:   chi.NewRouter(),
		addr:     addr,
		registry: reg,
		runner:   runner,
		manager:  jobs.NewManager(runner, log),
		log:      log,
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	// Long scans run in background jobs; this bounds only the HTTP
	// request handling itself.
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.registerRoutes()

	return s
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.log.Info("http server listening", zap.String("addr", s.addr))
	return http.ListenAndServe(s.addr, s.router)
}

// Router exposes the chi.Router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
