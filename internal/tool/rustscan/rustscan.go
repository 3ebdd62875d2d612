// Package rustscan wraps rustscan for quick full-range open-port sweeps.
// The result is only the list of open ports; service detail belongs to
// the nmap tool.
package rustscan

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/parse"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

var rangePattern = regexp.MustCompile(`^[0-9,\-]+$`)

// Tool runs rustscan greppable port sweeps.
type Tool struct {
	env    tool.Env
	runner command.Runner
}

// New creates the rustscan tool with its configured execution runner.
func New(env tool.Env) *Tool {
	return &Tool{env: env, runner: env.ExecRunner("rustscan")}
}

func (t *Tool) Name() string        { return "rustscan" }
func (t *Tool) Description() string { return "Quick full-range open-port sweep (rustscan)" }

// BuildCommand constructs the rustscan argv. rustscan's internal timeout
// is per-connection in milliseconds, derived from the caller's
// second-scale budget; -g keeps the output greppable.
func BuildCommand(target, portRange string, timeout time.Duration) command.Command {
	argv := []string{
		"rustscan",
		"-a", target,
		"-r", portRange,
		"--timeout", strconv.FormatInt(timeout.Milliseconds(), 10),
		"--ulimit", "10000",
		"-g",
	}
	// The subprocess gets slack beyond the scanner's own budget so the
	// scanner times out internally before we kill it.
	return command.Command{Argv: argv, Timeout: timeout + 5*time.Second}
}

func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	host := target.Host
	if host == "" {
		return tool.Invalid(t.Name(), "", "target is required"), nil
	}
	if !t.env.Config.InScope(host) {
		return tool.OutOfScope(t.Name(), host), nil
	}

	portRange := strings.ReplaceAll(opts.StringArg("range", "1-65535"), " ", "")
	if !rangePattern.MatchString(portRange) {
		return tool.Invalid(t.Name(), host, "range must be ports or a range like \"1-65535\""), nil
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	result := &types.ToolResult{
		ToolName:  t.Name(),
		Target:    host,
		StartedAt: time.Now(),
	}

	res := t.runner.Run(ctx, BuildCommand(host, portRange, timeout))
	result.CompletedAt = time.Now()

	switch {
	case res.TimedOut():
		result.Error = "timeout"
	case res.ExitCode != 0:
		result.Stderr = types.Truncate(res.Stderr, types.StderrLimit)
		result.Data = map[string]interface{}{
			"stdout": types.Truncate(res.Stdout, 1000),
		}
	default:
		result.Success = true
		result.Data = map[string]interface{}{
			"ports":  parse.OpenPorts(res.Stdout),
			"stdout": res.Stdout,
		}
	}
	return result, nil
}
