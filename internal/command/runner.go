// Package command executes external scanner processes with hard wall-clock
// timeouts, either directly on the host or wrapped in an isolated container.
package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ExitTimeout is the sentinel exit code reported when a process was
// forcibly killed for exceeding its timeout. It is out of the range a
// process can exit with normally.
const ExitTimeout = -1

// exitStartFailure is reported when the binary could not be launched at
// all (not installed, not executable). Mirrors the shell convention.
const exitStartFailure = 127

// killGrace bounds how long Wait may keep collecting pipe output once the
// process itself is gone. Orphaned grandchildren can hold the write ends
// of the capture pipes open indefinitely.
const killGrace = 3 * time.Second

// Command is a single external invocation: an argv vector plus the hard
// wall-clock budget for the whole run. Immutable once constructed.
type Command struct {
	Argv    []string
	Timeout time.Duration
}

// Result is the outcome of one execution. ExitCode is ExitTimeout iff the
// process was killed on timeout; in that case Stdout is empty and Stderr
// is "timeout". A nonzero exit code is a normal result, not an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// TimedOut reports whether the process was killed for exceeding its budget.
func (r Result) TimedOut() bool {
	return r.ExitCode == ExitTimeout
}

// Runner executes a Command to completion and always produces a Result.
// Implementations must not leave the process running after returning.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// Local runs commands directly on the host.
type Local struct {
	log *zap.Logger
}

// NewLocal creates a host-process runner.
func NewLocal(log *zap.Logger) *Local {
	if log == nil {
		log = zap.NewNop()
	}
	return &Local{log: log}
}

// Run launches the command, captures stdout and stderr separately, and
// races completion against the command's timeout. On expiry the process
// is killed and the timeout sentinel returned; whatever output was
// captured before the kill is discarded in favor of the sentinel shape.
func (l *Local) Run(ctx context.Context, cmd Command) Result {
	if len(cmd.Argv) == 0 {
		return Result{ExitCode: exitStartFailure, Stderr: "empty command"}
	}

	proc := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	// Own process group, so a timeout kill reaches helpers the tool forked
	// and not just the direct child.
	proc.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	proc.WaitDelay = killGrace

	l.log.Debug("running command",
		zap.Strings("argv", cmd.Argv),
		zap.Duration("timeout", cmd.Timeout))

	if err := proc.Start(); err != nil {
		return Result{ExitCode: exitStartFailure, Stderr: err.Error()}
	}

	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()

	var expired <-chan time.Time
	if cmd.Timeout > 0 {
		timer := time.NewTimer(cmd.Timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-done:
		return l.finish(proc, err, &stdout, &stderr)

	case <-expired:
		l.log.Warn("command timed out, killing",
			zap.String("binary", cmd.Argv[0]),
			zap.Duration("timeout", cmd.Timeout))
		kill(proc)
		<-done // reap; WaitDelay bounds the pipe drain
		return Result{ExitCode: ExitTimeout, Stderr: "timeout"}

	case <-ctx.Done():
		kill(proc)
		<-done
		return Result{ExitCode: ExitTimeout, Stderr: "timeout"}
	}
}

// kill takes down the whole process group; the direct child alone is not
// enough for tools that fork.
func kill(proc *exec.Cmd) {
	if err := syscall.Kill(-proc.Process.Pid, syscall.SIGKILL); err != nil {
		_ = proc.Process.Kill()
	}
}

func (l *Local) finish(proc *exec.Cmd, waitErr error, stdout, stderr *bytes.Buffer) Result {
	code := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(waitErr, &exitErr):
			code = exitErr.ExitCode()
		case errors.Is(waitErr, exec.ErrWaitDelay):
			// The process exited but an orphan held the pipes open past
			// the grace period. The exit status is still valid.
			code = proc.ProcessState.ExitCode()
		default:
			// Wait failed for a non-exit reason; surface it as a start
			// failure with diagnostic text rather than a distinct error.
			return Result{
				ExitCode: exitStartFailure,
				Stdout:   lossyDecode(stdout.Bytes()),
				Stderr:   waitErr.Error(),
			}
		}
	}
	return Result{
		ExitCode: code,
		Stdout:   lossyDecode(stdout.Bytes()),
		Stderr:   lossyDecode(stderr.Bytes()),
	}
}

// lossyDecode converts raw process output to a string, replacing invalid
// byte sequences. External tools make no encoding guarantees.
func lossyDecode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
