package tool

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/config"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// Tool is the core interface every recon/enum operation implements.
type Tool interface {
	Name() string
	Description() string
	Run(ctx context.Context, target types.Target, opts Options) (*types.ToolResult, error)
}

// Options holds tool-wide execution parameters. Tool-specific knobs ride
// in ExtraArgs and are validated by each tool at its boundary.
type Options struct {
	Timeout     time.Duration
	Concurrency int
	ExtraArgs   map[string]interface{}
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:     60 * time.Second,
		Concurrency: 50,
	}
}

// StringArg reads a string extra, falling back to def when absent.
func (o Options) StringArg(key, def string) string {
	if v, ok := o.ExtraArgs[key].(string); ok && v != "" {
		return v
	}
	return def
}

// IntArg reads an integer extra. JSON decoding produces float64, so both
// shapes are accepted.
func (o Options) IntArg(key string, def int) int {
	switch v := o.ExtraArgs[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// BoolArg reads a boolean extra, falling back to def when absent.
func (o Options) BoolArg(key string, def bool) bool {
	if v, ok := o.ExtraArgs[key].(bool); ok {
		return v
	}
	return def
}

// Env bundles the execution-core dependencies handed to each tool at
// construction: the immutable configuration and the process logger.
type Env struct {
	Config *config.Config
	Log    *zap.Logger
}

// NewEnv builds a tool environment.
func NewEnv(cfg *config.Config, log *zap.Logger) Env {
	if log == nil {
		log = zap.NewNop()
	}
	return Env{Config: cfg, Log: log}
}

// ExecRunner returns the command runner for the named tool: the local
// process runner, or the container-wrapping runner when the tool's
// sandbox is enabled in configuration.
func (e Env) ExecRunner(name string) command.Runner {
	local := command.NewLocal(e.Log)
	sb := e.Config.Tool(name)
	if !sb.Enabled {
		return local
	}
	return &command.Sandboxed{
		Spec:   sb.Spec(),
		Docker: e.Config.DockerBin,
		Base:   local,
	}
}

// Invalid produces the uniform validation-failure result: no process is
// ever spawned for it.
func Invalid(toolName, target, msg string) *types.ToolResult {
	now := time.Now()
	return &types.ToolResult{
		ToolName:    toolName,
		Target:      target,
		Success:     false,
		StartedAt:   now,
		CompletedAt: now,
		Error:       "invalid params: " + msg,
	}
}

// OutOfScope produces the uniform scope-rejection result.
func OutOfScope(toolName, target string) *types.ToolResult {
	now := time.Now()
	return &types.ToolResult{
		ToolName:    toolName,
		Target:      target,
		Success:     false,
		StartedAt:   now,
		CompletedAt: now,
		Error:       "target out of allowed scope",
	}
}
