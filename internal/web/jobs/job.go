package jobs

import (
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// JobStatus represents the current state of a tool job.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job represents one async tool invocation.
type Job struct {
	ID          string           `json:"id"`
	ToolName    string           `json:"tool"`
	Target      types.Target     `json:"target"`
	Options     tool.Options     `json:"-"`
	Status      JobStatus        `json:"status"`
	Result      *types.ToolResult `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	StartedAt   time.Time        `json:"started_at,omitempty"`
	CompletedAt time.Time        `json:"completed_at,omitempty"`
}

// Succeeded reports whether the job completed with a successful result.
func (j *Job) Succeeded() bool {
	return j.Status == StatusCompleted && j.Result != nil && j.Result.Success
}

// snapshot copies the job for use outside the manager's lock. Result is
// shared by pointer: it is published once on completion and never mutated
// afterwards.
func (j *Job) snapshot() *Job {
	c := *j
	return &c
}
