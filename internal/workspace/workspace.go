// Package workspace manages ephemeral per-job scratch directories under
// the system temp root. Each invocation that produces files acquires its
// own directory and releases it on every exit path.
package workspace

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Workspace is one job-scoped scratch directory. It is owned exclusively
// by the invocation that acquired it.
type Workspace struct {
	ID   string
	Path string
}

// Manager creates and destroys scratch workspaces.
type Manager struct {
	root string
	log  *zap.Logger
}

// NewManager creates a workspace manager rooted at the system temp dir.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{root: os.TempDir(), log: log}
}

// Acquire creates the scratch directory for jobID, generating a random id
// when none is given. Creation is idempotent: a pre-existing directory
// with the same name is not an error.
func (m *Manager) Acquire(jobID string) (Workspace, error) {
	if jobID == "" {
		jobID = newJobID()
	}
	path := filepath.Join(m.root, "mcp-job-"+jobID)
	if err := os.MkdirAll(path, 0o700); err != nil {
		return Workspace{}, fmt.Errorf("creating workspace %s: %w", path, err)
	}
	return Workspace{ID: jobID, Path: path}, nil
}

// Release recursively deletes the workspace directory. Deletion errors
// are logged and swallowed: callers must not depend on Release signaling
// success. Safe to call more than once.
func (m *Manager) Release(ws Workspace) {
	if ws.Path == "" {
		return
	}
	if err := os.RemoveAll(ws.Path); err != nil {
		m.log.Warn("workspace cleanup failed",
			zap.String("path", ws.Path),
			zap.Error(err))
	}
}

// newJobID returns a random 32-char hex id.
func newJobID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// pid-derived id rather than panic.
		return fmt.Sprintf("pid%d", os.Getpid())
	}
	return hex.EncodeToString(b[:])
}
