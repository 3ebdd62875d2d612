package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// newUUID generates a job id. Extracted as a variable for testing.
var newUUID = defaultNewUUID

func defaultNewUUID() string {
	// Timestamp-based id — good enough for in-memory use.
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// Manager manages tool job lifecycle: create, execute, track, store
// results. Jobs live in memory only; there is no persistent queue.
type Manager struct {
	mu     sync.RWMutex
	jobs   map[string]*Job
	runner *tool.Runner
	log    *zap.Logger
}

// NewManager creates a job manager backed by the given tool runner.
func NewManager(runner *tool.Runner, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		jobs:   make(map[string]*Job),
		runner: runner,
		log:    log,
	}
}

// Create creates a new pending job and returns a snapshot of it.
func (m *Manager) Create(toolName string, target types.Target, opts tool.Options) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &Job{
		ID:        newUUID(),
		ToolName:  toolName,
		Target:    target,
		Options:   opts,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	m.jobs[job.ID] = job
	return job.snapshot()
}

// Start launches the job in a background goroutine.
func (m *Manager) Start(jobID string) error {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("job %q not found", jobID)
	}
	job.Status = StatusRunning
	job.StartedAt = time.Now()
	m.mu.Unlock()

	go m.execute(job)
	return nil
}

func (m *Manager) execute(job *Job) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("job panicked",
				zap.String("job", job.ID),
				zap.Any("panic", r))
			m.mu.Lock()
			job.Status = StatusFailed
			job.Error = fmt.Sprintf("panic: %v", r)
			job.CompletedAt = time.Now()
			m.mu.Unlock()
		}
	}()

	// The tool enforces its own subprocess timeout; the job context gets
	// slack on top so the sentinel result wins over a hard cancel.
	ctx := context.Background()
	var cancel context.CancelFunc
	if job.Options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, job.Options.Timeout+30*time.Second)
		defer cancel()
	}

	result, err := m.runner.RunOne(ctx, job.ToolName, job.Target, job.Options)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
	} else {
		job.Status = StatusCompleted
		job.Result = result
	}
	job.CompletedAt = time.Now()
}

// Get returns a snapshot of a job by ID. The execute goroutine keeps
// writing the live job, so callers never see the tracked pointer.
func (m *Manager) Get(jobID string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %q not found", jobID)
	}
	return job.snapshot(), nil
}

// List returns snapshots of all jobs sorted by CreatedAt descending.
func (m *Manager) List() []*Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		result = append(result, j.snapshot())
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].CreatedAt.After(result[k].CreatedAt)
	})
	return result
}

// Delete removes a job from the manager.
func (m *Manager) Delete(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[jobID]; !ok {
		return fmt.Errorf("job %q not found", jobID)
	}
	delete(m.jobs, jobID)
	return nil
}
