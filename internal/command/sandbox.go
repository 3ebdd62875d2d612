package command

import "context"

// Resource ceilings for sandboxed runs. Fixed policy, not per-call knobs.
const (
	sandboxCPUs   = "0.5"
	sandboxMemory = "512m"
)

// DefaultDockerBin is the container runtime binary used when none is
// configured.
const DefaultDockerBin = "docker"

// Mount is a read-only bind mount into the container.
type Mount struct {
	HostPath      string
	ContainerPath string
}

// Spec describes how to wrap a Command for isolated execution. Network
// and CapAdd values are passed through verbatim; vetting them is a
// deployment-time concern.
type Spec struct {
	Image   string
	Network string
	CapAdd  []string
	Mounts  []Mount
}

// Wrap builds the container-runtime invocation around cmd. The wrapped
// command keeps the original timeout: the sandbox adds no budget of its
// own.
func (s Spec) Wrap(docker string, cmd Command) Command {
	if docker == "" {
		docker = DefaultDockerBin
	}

	argv := []string{
		docker, "run", "--rm", "--init",
		"--cpus", sandboxCPUs,
		"--memory", sandboxMemory,
	}
	if s.Network != "" {
		argv = append(argv, "--network", s.Network)
	}
	for _, c := range s.CapAdd {
		if c != "" {
			argv = append(argv, "--cap-add", c)
		}
	}
	for _, m := range s.Mounts {
		argv = append(argv, "-v", m.HostPath+":"+m.ContainerPath+":ro")
	}
	argv = append(argv, s.Image)
	argv = append(argv, cmd.Argv...)

	return Command{Argv: argv, Timeout: cmd.Timeout}
}

// Sandboxed executes every command inside an isolated container by
// wrapping it per the Spec and delegating to the base runner. A missing
// container runtime surfaces as a start failure in the Result, the same
// as any other unlaunchable binary.
type Sandboxed struct {
	Spec   Spec
	Docker string
	Base   Runner
}

// Run wraps cmd and delegates to the base runner.
func (s *Sandboxed) Run(ctx context.Context, cmd Command) Result {
	return s.Base.Run(ctx, s.Spec.Wrap(s.Docker, cmd))
}
