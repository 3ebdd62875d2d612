package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 60*time.Second, opts.Timeout)
	assert.Equal(t, 50, opts.Concurrency)
}

func TestOptionsStringArg(t *testing.T) {
	opts := Options{ExtraArgs: map[string]interface{}{"ports": "80,443", "empty": ""}}

	assert.Equal(t, "80,443", opts.StringArg("ports", "1-1024"))
	assert.Equal(t, "def", opts.StringArg("empty", "def"))
	assert.Equal(t, "def", opts.StringArg("missing", "def"))
	assert.Equal(t, "def", Options{}.StringArg("anything", "def"))
}

func TestOptionsIntArg(t *testing.T) {
	opts := Options{ExtraArgs: map[string]interface{}{
		"threads": 8,
		"decoded": float64(12), // JSON numbers decode as float64
		"wrong":   "nope",
	}}

	assert.Equal(t, 8, opts.IntArg("threads", 1))
	assert.Equal(t, 12, opts.IntArg("decoded", 1))
	assert.Equal(t, 1, opts.IntArg("wrong", 1))
	assert.Equal(t, 1, opts.IntArg("missing", 1))
}

func TestOptionsBoolArg(t *testing.T) {
	opts := Options{ExtraArgs: map[string]interface{}{"fast": false, "wrong": "yes"}}

	assert.False(t, opts.BoolArg("fast", true))
	assert.True(t, opts.BoolArg("wrong", true))
	assert.True(t, opts.BoolArg("missing", true))
}

func TestNewEnvNilLogger(t *testing.T) {
	cfg := config.Defaults()
	env := NewEnv(&cfg, nil)
	assert.NotNil(t, env.Log)
}

func TestExecRunnerLocalByDefault(t *testing.T) {
	cfg := config.Defaults()
	env := NewEnv(&cfg, nil)

	r := env.ExecRunner("nmap")
	_, ok := r.(*command.Local)
	assert.True(t, ok)
}

func TestExecRunnerSandboxedWhenEnabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.DockerBin = "podman"
	cfg.Tools = map[string]config.ToolSandbox{
		"nmap": {Enabled: true, Image: "instrumentisto/nmap", Network: "host"},
	}
	env := NewEnv(&cfg, nil)

	r := env.ExecRunner("nmap")
	sb, ok := r.(*command.Sandboxed)
	require.True(t, ok)
	assert.Equal(t, "instrumentisto/nmap", sb.Spec.Image)
	assert.Equal(t, "host", sb.Spec.Network)
	assert.Equal(t, "podman", sb.Docker)

	// Other tools stay local.
	_, local := env.ExecRunner("ffuf").(*command.Local)
	assert.True(t, local)
}

func TestInvalidResultShape(t *testing.T) {
	res := Invalid("nmap", "10.0.0.1", "ports must match pattern")

	assert.False(t, res.Success)
	assert.Equal(t, "nmap", res.ToolName)
	assert.Equal(t, "10.0.0.1", res.Target)
	assert.Equal(t, "invalid params: ports must match pattern", res.Error)
	assert.Equal(t, res.StartedAt, res.CompletedAt)
}

func TestOutOfScopeResultShape(t *testing.T) {
	res := OutOfScope("sweep", "192.168.1.0/24")

	assert.False(t, res.Success)
	assert.Equal(t, "target out of allowed scope", res.Error)
}
