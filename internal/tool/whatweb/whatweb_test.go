package whatweb

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
	cmd := BuildCommand("http://example.com", 30*time.Second)

	assert.Equal(t, []string{"whatweb", "-a", "2", "http://example.com"}, cmd.Argv)
	assert.Equal(t, 30*time.Second, cmd.Timeout)
}

func TestRunSuccess(t *testing.T) {
	tl, runner := newTestTool(command.Result{
		ExitCode: 0,
		Stdout:   "http://example.com [200 OK] Apache[2.4.62], PHP[8.2]",
	})

	res, err := tl.Run(context.Background(), types.Target{
		URL: "http://example.com", Host: "example.com", Scheme: "http",
	}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Contains(t, res.Data["stdout"], "Apache")
	assert.Equal(t, "http://example.com", runner.got.Argv[3])
}

func TestRunPlainHostTarget(t *testing.T) {
	tl, runner := newTestTool(command.Result{ExitCode: 0, Stdout: "x"})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.1"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "10.0.0.1", res.Target)
	assert.Equal(t, "10.0.0.1", runner.got.Argv[3])
}

func TestRunNonzeroExitWithOutputStillSucceeds(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: 1, Stdout: "partial fingerprint"})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.1"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRunNonzeroExitNoOutputFails(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: 1, Stderr: "ERROR: no response"})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.1"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "ERROR: no response", res.Stderr)
}

func TestRunTimeout(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: command.ExitTimeout, Stderr: "timeout"})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.1"}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "timeout", res.Error)
}

func TestRunRejectsMissingTarget(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), types.Target{}, tool.Options{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "invalid params")
}

func TestRunRejectsTimeoutOutOfBounds(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), types.Target{Host: "10.0.0.1"}, tool.Options{Timeout: 20 * time.Minute})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "timeout must be between")
}
