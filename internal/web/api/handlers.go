package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/0xmanhnv/mcp-appsec/internal/output"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/web/jobs"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// Handlers holds dependencies for the REST API handlers.
type Handlers struct {
	Manager  *jobs.Manager
	Registry *tool.Registry
}

// NewHandlers creates API handlers with the given dependencies.
func NewHandlers(manager *jobs.Manager, registry *tool.Registry) *Handlers {
	return &Handlers{Manager: manager, Registry: registry}
}

// ListTools handles GET /api/v1/tools.
func (h *Handlers) ListTools(w http.ResponseWriter, r *http.Request) {
	type toolInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	all := h.Registry.All()
	infos := make([]toolInfo, len(all))
	for i, t := range all {
		infos[i] = toolInfo{Name: t.Name(), Description: t.Description()}
	}

	writeJSON(w, http.StatusOK, infos)
}

// CreateJob handles POST /api/v1/jobs.
func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateJobRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Registry.Get(req.Tool); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	target, err := types.ParseTarget(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target: "+err.Error())
		return
	}

	opts := tool.DefaultOptions()
	if req.Concurrency > 0 {
		opts.Concurrency = req.Concurrency
	}
	if req.Timeout != "" {
		d, _ := time.ParseDuration(req.Timeout) // already validated
		opts.Timeout = d
	}
	opts.ExtraArgs = req.Params

	job := h.Manager.Create(req.Tool, target, opts)
	if err := h.Manager.Start(job.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start job: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     job.ID,
		"status": jobs.StatusRunning,
	})
}

// ListJobs handles GET /api/v1/jobs.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobList := h.Manager.List()

	type jobSummary struct {
		ID        string         `json:"id"`
		Tool      string         `json:"tool"`
		Target    string         `json:"target"`
		Status    jobs.JobStatus `json:"status"`
		CreatedAt time.Time      `json:"created_at"`
		Success   bool           `json:"success"`
	}

	summaries := make([]jobSummary, len(jobList))
	for i, j := range jobList {
		summaries[i] = jobSummary{
			ID:        j.ID,
			Tool:      j.ToolName,
			Target:    j.Target.Display(),
			Status:    j.Status,
			CreatedAt: j.CreatedAt,
			Success:   j.Succeeded(),
		}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetJob handles GET /api/v1/jobs/{id}.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// GetJobReport handles GET /api/v1/jobs/{id}/report.
func (h *Handlers) GetJobReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if job.Status != jobs.StatusCompleted || job.Result == nil {
		writeError(w, http.StatusConflict, "job is not yet completed")
		return
	}

	formatter := &output.HTMLFormatter{}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, []types.ToolResult{*job.Result}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// DeleteJob handles DELETE /api/v1/jobs/{id}.
func (h *Handlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Manager.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
