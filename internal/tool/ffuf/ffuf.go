// Package ffuf wraps the ffuf web fuzzer for directory and file
// discovery against a URL carrying the FUZZ substitution marker.
package ffuf

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/parse"
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

// Tool runs ffuf fuzzing jobs.
type Tool struct {
	env    tool.Env
	runner command.Runner
	ws     *workspace.Manager
}

// New creates the ffuf tool with its configured execution runner.
func New(env tool.Env) *Tool {
	return &Tool{
		env:    env,
		runner: env.ExecRunner("ffuf"),
		ws:     workspace.NewManager(env.Log),
	}
}

func (t *Tool) Name() string        { return "ffuf" }
func (t *Tool) Description() string { return "Directory and file fuzzing with a wordlist (ffuf)" }

// BuildCommand constructs the ffuf argv with JSON output on stdout.
func BuildCommand(url, wordlist string, threads int, timeout time.Duration) command.Command {
	argv := []string{
		"ffuf",
		"-u", url,
		"-w", wordlist,
		"-t", strconv.Itoa(threads),
		"-of", "json",
		"-o", "-",
	}
	return command.Command{Argv: argv, Timeout: timeout}
}

func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	url := target.URL
	if url == "" {
		return tool.Invalid(t.Name(), target.Display(), "url with FUZZ marker is required, e.g. http://target/FUZZ"), nil
	}
	if !strings.Contains(url, "FUZZ") {
		return tool.Invalid(t.Name(), url, "url must contain the FUZZ marker"), nil
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

	storeRaw := opts.BoolArg("store_raw", false)

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
			"ffuf": parse.RecoverJSON(res.Stdout),
		}
		if storeRaw {
			result.Data["stdout"] = res.Stdout
		}
	}
	return result, nil
}
