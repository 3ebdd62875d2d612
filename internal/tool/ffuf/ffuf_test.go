package ffuf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/config"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/workspace"
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
	return &Tool{
		env:    tool.NewEnv(&cfg, nil),
		runner: runner,
		ws:     workspace.NewManager(nil),
	}, runner
}

func fuzzTarget() types.Target {
	return types.Target{
		URL:    "http://example.com/FUZZ",
		Host:   "example.com",
		Scheme: "http",
	}
}

func TestBuildCommand(t *testing.T) {
	cmd := BuildCommand("http://x/FUZZ", "/tmp/words.txt", 40, 120*time.Second)

	assert.Equal(t, []string{
		"ffuf",
		"-u", "http://x/FUZZ",
		"-w", "/tmp/words.txt",
		"-t", "40",
		"-of", "json",
		"-o", "-",
	}, cmd.Argv)
	assert.Equal(t, 120*time.Second, cmd.Timeout)
}

func TestRunSuccessParsesJSON(t *testing.T) {
	tl, _ := newTestTool(command.Result{
		ExitCode: 0,
		Stdout:   `{"results": [{"input": {"FUZZ": "admin"}, "status": 200}]}`,
	})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)

	assert.True(t, res.Success)
	payload, ok := res.Data["ffuf"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, payload, "results")
	assert.NotContains(t, res.Data, "stdout")
}

func TestRunStoreRawKeepsStdout(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: 0, Stdout: `{"results": []}`})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{
		Timeout:   120 * time.Second,
		ExtraArgs: map[string]interface{}{"store_raw": true},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"results": []}`, res.Data["stdout"])
}

func TestRunNonzeroExitWithStdoutStillSucceeds(t *testing.T) {
	// ffuf exits nonzero on some match conditions while producing a full
	// report; output presence wins.
	tl, _ := newTestTool(command.Result{
		ExitCode: 1,
		Stdout:   `{"results": []}`,
		Stderr:   "warning",
	})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRunNonzeroExitNoOutputFails(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: 2, Stderr: "bad flag"})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "bad flag", res.Stderr)
}

func TestRunTimeout(t *testing.T) {
	tl, _ := newTestTool(command.Result{ExitCode: command.ExitTimeout, Stderr: "timeout"})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "timeout", res.Error)
}

func TestRunDefaultWordlistFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Wordlist = "/opt/lists/common.txt"
	runner := &fakeRunner{res: command.Result{ExitCode: 0}}
	tl := &Tool{env: tool.NewEnv(&cfg, nil), runner: runner, ws: workspace.NewManager(nil)}

	_, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)
	assert.Contains(t, runner.got.Argv, "/opt/lists/common.txt")
}

func TestRunRejectsMissingURL(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), types.Target{Host: "example.com"}, tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "invalid params")
}

func TestRunRejectsURLWithoutFuzzMarker(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), types.Target{
		URL:  "http://example.com/",
		Host: "example.com",
	}, tool.Options{Timeout: 120 * time.Second})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "FUZZ")
}

func TestRunRejectsBadThreads(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{
		Timeout:   120 * time.Second,
		ExtraArgs: map[string]interface{}{"threads": 500},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "threads must be")
}

func TestRunRejectsTimeoutOutOfBounds(t *testing.T) {
	tl, _ := newTestTool(command.Result{})

	res, err := tl.Run(context.Background(), fuzzTarget(), tool.Options{Timeout: time.Second})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "timeout must be between")
}
