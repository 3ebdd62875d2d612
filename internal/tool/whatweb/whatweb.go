// Package whatweb wraps WhatWeb for web technology fingerprinting.
// WhatWeb's output format varies across versions, so the raw text is
// returned as-is rather than parsed.
package whatweb

import (
	"context"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

const (
	minTimeout = 1 * time.Second
	maxTimeout = 600 * time.Second
)

// Tool runs WhatWeb fingerprint scans.
type Tool struct {
	env    tool.Env
	runner command.Runner
}

// New creates the whatweb tool with its configured execution runner.
func New(env tool.Env) *Tool {
	return &Tool{env: env, runner: env.ExecRunner("whatweb")}
}

func (t *Tool) Name() string        { return "whatweb" }
func (t *Tool) Description() string { return "Web technology fingerprinting (whatweb)" }

// BuildCommand constructs the whatweb argv at aggression level 2.
func BuildCommand(target string, timeout time.Duration) command.Command {
	return command.Command{
		Argv:    []string{"whatweb", "-a", "2", target},
		Timeout: timeout,
	}
}

func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	dest := target.Display()
	if dest == "" {
		return tool.Invalid(t.Name(), "", "target host or URL is required"), nil
	}
	if !t.env.Config.InScope(target.Host) {
		return tool.OutOfScope(t.Name(), dest), nil
	}

	timeout := opts.Timeout
	if timeout < minTimeout || timeout > maxTimeout {
		return tool.Invalid(t.Name(), dest, "timeout must be between 1s and 600s"), nil
	}

	result := &types.ToolResult{
		ToolName:  t.Name(),
		Target:    dest,
		StartedAt: time.Now(),
	}

	res := t.runner.Run(ctx, BuildCommand(dest, timeout))
	result.CompletedAt = time.Now()

	switch {
	case res.TimedOut():
		result.Error = "timeout"
	case res.ExitCode != 0 && res.Stdout == "":
		result.Stderr = types.Truncate(res.Stderr, types.StderrLimit)
	default:
		result.Success = true
		result.Data = map[string]interface{}{
			"stdout": res.Stdout,
		}
	}
	return result, nil
}
