package rustscan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/config"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

type fakeRunner struct {
	got command.Command
	res command.Result
}

func (f *fakeRunner) Run(_ context.Context, cmd command.Command) command.Result {
	f.got = cmd
	return f.res
}

func newTestTool(res command.Result) (*Tool, *fakeRunner) {
	cfg := config.Defaults()
	runner := &fakeRunner{res: res}
	return &Tool{env: tool.NewEnv(&cfg, nil), runner: runner}, runner
}

func TestBuildCommand(t *testing.T) {
	cmd := BuildCommand("10.0.0.5", "1-65535", 30*time.Second)

	assert.Equal(t, []string{
		"rustscan",
		"-a", "10.0.0.5",
		"-r", "1-65535",
		"--timeout", "30000",
		"--ulimit", "10000",
		"-g",
	}, cmd.Argv)
	// The subprocess budget exceeds the scanner's internal budget.
	assert.Equal(t, 35*time.Second, cmd.Timeout)
}

func TestRunSuccessExtractsPorts(t *testing.T) {
	tl, _ := newTestTool(command.Result{
		ExitCode: 0,
		Stdout:   "10.0.0.5 -> [22,80,443]",
	})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.5"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)

	assert.True(t, res.Success)
	ports, ok := res.Data["ports"].([]int)
	require.True(t, ok)
	assert.Contains(t, ports, 22)
	assert.Contains(t, ports, 80)
	assert.Contains(t, ports, 443)
	assert.Equal(t, "10.0.0.5 -> [22,80,443]", res.Data["stdout"])
}

func TestRunStripsSpacesFromRange(t *testing.T) {
	tl, runner := newTestTool(command.Result{ExitCode: 0})

	_, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.5"}, tool.Options{
		Timeout:   30 * time.Second,
		ExtraArgs: map[string]interface{}{"range": "1 - 1024"},
	})
	require.NoError(t, err)
	assert.Contains(t, runner.got.Argv, "1-1024")
}

func TestRunRejectsBadRange(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.5"}, tool.Options{
		Timeout:   30 * time.Second,
		ExtraArgs: map[string]interface{}{"range": "1-1024; evil"},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "invalid params")
}

func TestRunTimeout(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: command.ExitTimeout, Stderr: "timeout"})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.5"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)

	assert.Equal(t, "timeout", res.Error)
	assert.False(t, res.Success)
}

func TestRunFailureKeepsPartialStdout(t *testing.T) {
	tl, _ := newTestTool(command.Result{
		ExitCode: 1,
		Stdout:   "partial output",
		Stderr:   "ulimit too low",
	})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.5"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "ulimit too low", res.Stderr)
	assert.Equal(t, "partial output", res.Data["stdout"])
}

func TestRunDefaultTimeoutWhenUnset(t *testing.T) {
	tl, runner := newTestTool(command.Result{ExitCode: 0})

	_, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.5"}, tool.Options{})
	require.NoError(t, err)
	assert.Contains(t, runner.got.Argv, "30000")
}

func TestRunRejectsMissingTarget(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), types.Target{}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "invalid params")
}
