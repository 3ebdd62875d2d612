package types

import "time"

// StderrLimit caps the diagnostic text carried back from a failed external
// tool. Anything longer is cut, not summarized.
const StderrLimit = 2000

// ToolResult is the uniform outcome of a single tool invocation.
//
// Exactly one of the failure fields is populated on failure: Error for
// validation failures and timeouts ("invalid params: ...", "timeout"),
// Stderr for external tools that exited nonzero without usable output.
type ToolResult struct {
	ToolName    string                 `json:"tool_name"`
	Target      string                 `json:"target"`
	Success     bool                   `json:"success"`
	StartedAt   time.Time              `json:"started_at"`
	CompletedAt time.Time              `json:"completed_at"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Stderr      string                 `json:"stderr,omitempty"`
}

// Duration returns the wall-clock time the invocation took.
func (r *ToolResult) Duration() time.Duration {
	if r.CompletedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// TimedOut reports whether the result represents a forced-kill timeout.
func (r *ToolResult) TimedOut() bool {
	return !r.Success && r.Error == "timeout"
}

// Truncate cuts s to at most n bytes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// ProbeResult is the liveness outcome for one swept address. RTTMillis is
// nil when the host answered without a measurable round-trip time or did
// not answer at all.
type ProbeResult struct {
	Addr      string   `json:"ip"`
	Alive     bool     `json:"alive"`
	RTTMillis *float64 `json:"rtt_ms"`
}
