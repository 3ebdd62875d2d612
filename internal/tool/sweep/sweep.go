// Package sweep implements batch host discovery: a target spec is
// expanded to concrete addresses and probed for liveness by the bounded
// worker-pool engine.
package sweep

import (
	"context"
	"strings"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/probe"
	"github.com/0xmanhnv/mcp-appsec/internal/targets"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

const (
	defaultTCPPort  = 80
	defaultMaxHosts = 1024
	maxMaxHosts     = 65536
	maxConcurrency  = 500

	minPerHostTimeout = 1 * time.Second
	maxPerHostTimeout = 60 * time.Second
)

// Tool sweeps a CIDR, list, or range of addresses for live hosts.
type Tool struct {
	env tool.Env
}

// New creates the sweep tool.
func New(env tool.Env) *Tool {
	return &Tool{env: env}
}

func (t *Tool) Name() string        { return "sweep" }
func (t *Tool) Description() string { return "ICMP/TCP liveness sweep over a CIDR or address list" }

// Run expands the network spec, enforces the host safety cap wholesale,
// and fans probes out across the worker pool. Per-host failures flag the
// host not-alive; the sweep itself still succeeds.
func (t *Tool) Run(ctx context.Context, target types.Target, opts tool.Options) (*types.ToolResult, error) {
	network := target.Host
	if network == "" {
		network = opts.StringArg("network", "")
	}
	if network == "" {
		return tool.Invalid(t.Name(), "", "network is required"), nil
	}
	if !t.env.Config.InScope(network) {
		return tool.OutOfScope(t.Name(), network), nil
	}

	method := strings.ToLower(opts.StringArg("method", "icmp"))
	if method != "icmp" && method != "tcp" {
		return tool.Invalid(t.Name(), network, "method must be \"icmp\" or \"tcp\""), nil
	}

	tcpPort := opts.IntArg("tcp_port", defaultTCPPort)
	if tcpPort < 1 || tcpPort > 65535 {
		return tool.Invalid(t.Name(), network, "tcp_port out of range (1-65535)"), nil
	}

	concurrency := opts.Concurrency
	if concurrency < 1 || concurrency > maxConcurrency {
		return tool.Invalid(t.Name(), network, "concurrency must be between 1 and 500"), nil
	}

	perHost := opts.Timeout
	if perHost < minPerHostTimeout || perHost > maxPerHostTimeout {
		return tool.Invalid(t.Name(), network, "timeout must be between 1s and 60s"), nil
	}

	maxHosts := opts.IntArg("max_hosts", defaultMaxHosts)
	if maxHosts < 1 || maxHosts > maxMaxHosts {
		return tool.Invalid(t.Name(), network, "max_hosts must be between 1 and 65536"), nil
	}

	result := &types.ToolResult{
		ToolName:  t.Name(),
		Target:    network,
		StartedAt: time.Now(),
	}

	addrs := targets.Expand(network)
	if len(addrs) == 0 {
		result.CompletedAt = time.Now()
		result.Error = "no valid hosts parsed from network"
		return result, nil
	}
	if len(addrs) > maxHosts {
		// Rejected wholesale rather than silently truncated.
		result.CompletedAt = time.Now()
		result.Error = "too_many_hosts"
		result.Data = map[string]interface{}{"count": len(addrs)}
		return result, nil
	}

	engine := &probe.Engine{
		Concurrency: concurrency,
		Prober:      t.prober(method, tcpPort, perHost),
	}
	probes, errs := engine.Sweep(ctx, addrs)
	result.CompletedAt = time.Now()

	alive := 0
	for _, p := range probes {
		if p.Alive {
			alive++
		}
	}

	result.Success = true
	result.Data = map[string]interface{}{
		"scanned":     len(addrs),
		"alive_count": alive,
		"hosts":       probes,
	}
	if len(errs) > 0 {
		result.Data["errors"] = errs
	}
	return result, nil
}

func (t *Tool) prober(method string, tcpPort int, perHost time.Duration) probe.Prober {
	if method == "tcp" {
		return &probe.TCP{Port: tcpPort, Timeout: perHost}
	}
	return &probe.ICMP{
		Runner:  t.env.ExecRunner("ping"),
		Timeout: perHost,
	}
}
