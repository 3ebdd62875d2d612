// Package gobuster wraps gobuster's dir mode for wordlist-driven path
// enumeration.
package gobuster

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/workspace"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

const (
	defaultThreads = 40
	maxThreads     = 200

	minTimeout = 5 * time.Second
	maxTimeout = 3600 * time.Second
)

// Tool runs gobuster dir enumerations.
type Tool struct {
	env    tool.Env
	runner command.Runner
	ws     *workspace.Manager
}

// New creates the gobuster tool with its configured execution runner.
func New(env tool.Env) *Tool {
	return &Tool{
		env:    env,
		runner: env.ExecRunner("gobuster"),
		ws:     workspace.NewManager(env.Log),
	}
}

func (t *Tool) Name() string        { return "gobuster" }
func (t *Tool) Description() string { return "Directory enumeration in quiet mode (gobuster)" }

// BuildCommand constructs the gobuster dir argv; -q keeps the output to
// found entries only.
func BuildCommand(url, wordlist string, threads int, timeout time.Duration) command.Command {
	argv := []string{
		"gobuster", "dir",
		"-u", url,
		"-w", wordlist,
		"-t", strconv.Itoa(threads),
		"-q",
	}
	return command.Command{Argv: argv, Timeout: timeout}
}

// ParseFound extracts the discovered path lines from quiet-mode output.
func ParseFound(stdout string) []string {
	var found []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") || strings.Contains(line, "Status:") {
			found = append(found, line)
		}
	}
	return found
}

func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	url := target.URL
	if url == "" {
		return tool.Invalid(t.Name(), target.Display(), "base url is required, e.g. http://target"), nil
	}
	if !t.env.Config.InScope(target.Host) {
		return tool.OutOfScope(t.Name(), url), nil
	}

	wordlist := opts.StringArg("wordlist", t.env.Config.Wordlist)

	threads := opts.IntArg("threads", defaultThreads)
	if threads < 1 || threads > maxThreads {
		return tool.Invalid(t.Name(), url, "threads must be between 1 and 200"), nil
	}

	timeout := opts.Timeout
	if timeout < minTimeout || timeout > maxTimeout {
		return tool.Invalid(t.Name(), url, "timeout must be between 5s and 3600s"), nil
	}

	result := &types.ToolResult{
		ToolName:  t.Name(),
		Target:    url,
		StartedAt: time.Now(),
	}

	ws, err := t.ws.Acquire("")
	if err != nil {
		return nil, err
	}
	defer t.ws.Release(ws)

	res := t.runner.Run(ctx, BuildCommand(url, wordlist, threads, timeout))
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
			"found":  ParseFound(res.Stdout),
		}
	}
	return result, nil
}
