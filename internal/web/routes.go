package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/0xmanhnv/mcp-appsec/internal/web/api"
)

// registerRoutes mounts all route groups on the server's router.
func (s *Server) registerRoutes() {
	apiHandlers := api.NewHandlers(s.manager, s.registry)

	// Health check
	s.router.Get("/health", s.handleHealth)

	// REST API
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/tools", apiHandlers.ListTools)
		r.Post("/jobs", apiHandlers.CreateJob)
		r.Get("/jobs", apiHandlers.ListJobs)
		r.Get("/jobs/{id}", apiHandlers.GetJob)
		r.Get("/jobs/{id}/report", apiHandlers.GetJobReport)
		r.Delete("/jobs/{id}", apiHandlers.DeleteJob)
	})
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
