package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CreateJobRequest is the JSON body for POST /api/v1/jobs.
type CreateJobRequest struct {
	Tool        string                 `json:"tool"`
	Target      string                 `json:"target"`
	Timeout     string                 `json:"timeout"`
	Concurrency int                    `json:"concurrency"`
	Params      map[string]interface{} `json:"params"`
}

// decodeCreateJobRequest reads and validates the request body. Tool
// parameter constraints are the tool's own concern; only the envelope is
// checked here.
func decodeCreateJobRequest(r *http.Request) (*CreateJobRequest, error) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if req.Tool == "" {
		return nil, fmt.Errorf("tool is required")
	}
	if req.Target == "" {
		return nil, fmt.Errorf("target is required")
	}

	if req.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must be non-negative")
	}

	if req.Timeout != "" {
		if _, err := time.ParseDuration(req.Timeout); err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", req.Timeout, err)
		}
	}

	return &req, nil
}
