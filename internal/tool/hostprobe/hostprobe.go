// Package hostprobe is the quick single-host liveness check: one system
// ping, raw output passed back truncated.
package hostprobe

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

const outputLimit = 1000

// Tool pings a single host.
type Tool struct {
	env    tool.Env
	runner command.Runner
}

// New creates the host probe tool.
func New(env tool.Env) *Tool {
	return &Tool{env: env, runner: env.ExecRunner("ping")}
}

func (t *Tool) Name() string        { return "probe" }
func (t *Tool) Description() string { return "Quick single-host ping probe" }

// BuildCommand constructs the ping argv with a whole-second -W deadline
// and one second of subprocess slack.
func BuildCommand(host string, timeout time.Duration) command.Command {
	secs := int(math.Ceil(timeout.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return command.Command{
		Argv:    []string{"ping", "-c", "1", "-W", strconv.Itoa(secs), host},
		Timeout: timeout + time.Second,
	}
}

func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	host := target.Host
	if host == "" {
		return tool.Invalid(t.Name(), "", "host is required"), nil
	}
	if !t.env.Config.InScope(host) {
		return tool.OutOfScope(t.Name(), host), nil
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if timeout > 60*time.Second {
		return tool.Invalid(t.Name(), host, "timeout must be at most 60s"), nil
	}

	result := &types.ToolResult{
		ToolName:  t.Name(),
		Target:    host,
		StartedAt: time.Now(),
	}

	res := t.runner.Run(ctx, BuildCommand(host, timeout))
	result.CompletedAt = time.Now()

	result.Success = res.ExitCode == 0
	result.Data = map[string]interface{}{
		"rc":     res.ExitCode,
		"stdout": types.Truncate(res.Stdout, outputLimit),
		"stderr": types.Truncate(res.Stderr, outputLimit),
	}
	return result, nil
}
