// Package nmap wraps the nmap scanner for service and version detection
// against a single host.
package nmap

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/parse"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/workspace"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

const (
	minTimeout = 5 * time.Second
	maxTimeout = 600 * time.Second
)

var portsPattern = regexp.MustCompile(`^[0-9,\-]+$`)

// Tool runs nmap service-detection scans.
type Tool struct {
	env    tool.Env
	runner command.Runner
	ws     *workspace.Manager
}

// New creates the nmap tool with its configured execution runner.
func New(env tool.Env) *Tool {
	return &Tool{
		env:    env,
		runner: env.ExecRunner("nmap"),
		ws:     workspace.NewManager(env.Log),
	}
}

func (t *Tool) Name() string        { return "nmap" }
func (t *Tool) Description() string { return "Service and version detection scan (nmap)" }

// BuildCommand constructs the nmap argv. JSON output goes to stdout so
// no result file handling is needed.
func BuildCommand(target, ports string, fast, serviceDetection bool, minRate int, timeout time.Duration) command.Command {
	argv := []string{"nmap"}
	if serviceDetection {
		argv = append(argv, "-sV")
	}
	if fast {
		argv = append(argv, "-T4", "--min-rate", strconv.Itoa(minRate))
	}
	argv = append(argv, "-oJ", "-", "-p", ports, target)
	return command.Command{Argv: argv, Timeout: timeout}
}

// Run validates parameters, gates on scope, and executes the scan inside
// a scratch workspace.
func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	host := target.Host
	if host == "" {
		return tool.Invalid(t.Name(), "", "target is required"), nil
	}
	if !t.env.Config.InScope(host) {
		return tool.OutOfScope(t.Name(), host), nil
	}

	ports := opts.StringArg("ports", "1-1024")
	if !portsPattern.MatchString(ports) {
		return tool.Invalid(t.Name(), host, "ports must be a list or range like \"22,80\" or \"1-65535\""), nil
	}

	timeout := opts.Timeout
	if timeout < minTimeout || timeout > maxTimeout {
		return tool.Invalid(t.Name(), host, "timeout must be between 5s and 600s"), nil
	}

	fast := opts.BoolArg("fast", true)
	serviceDetection := opts.BoolArg("service_detection", true)

	result := &types.ToolResult{
		ToolName:  t.Name(),
		Target:    host,
		StartedAt: time.Now(),
	}

	ws, err := t.ws.Acquire("")
	if err != nil {
		return nil, err
	}
	defer t.ws.Release(ws)

	res := t.runner.Run(ctx, BuildCommand(host, ports, fast, serviceDetection, t.env.Config.MinRate, timeout))
	result.CompletedAt = time.Now()

	switch {
	case res.TimedOut():
		result.Error = "timeout"
	case res.ExitCode != 0:
		result.Stderr = types.Truncate(res.Stderr, types.StderrLimit)
	default:
		result.Success = true
		result.Data = map[string]interface{}{
			"nmap": parse.RecoverJSON(res.Stdout),
		}
	}
	return result, nil
}
