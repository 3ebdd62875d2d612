package probe

import (
	"context"
	"math"
	"net"
	"strconv"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
	"github.com/0xmanhnv/mcp-appsec/internal/parse"
)

// Prober checks liveness of a single address.
type Prober interface {
	Probe(ctx context.Context, addr string) (alive bool, rttMillis *float64, err error)
}

// ICMP probes by shelling out to one system ping per address. Requires
// ping to be present; on locked-down hosts this may need CAP_NET_RAW.
type ICMP struct {
	Runner  command.Runner
	Timeout time.Duration
}

// Probe sends a single echo request. ping's -W flag has one-second
// resolution, so the per-host timeout rounds up to whole seconds; the
// subprocess itself gets two seconds of slack on top.
func (p *ICMP) Probe(ctx context.Context, addr string) (bool, *float64, error) {
	secs := int(math.Ceil(p.Timeout.Seconds()))
	if secs < 1 {
		secs = 1
	}

	res := p.Runner.Run(ctx, command.Command{
		Argv:    []string{"ping", "-c", "1", "-W", strconv.Itoa(secs), addr},
		Timeout: p.Timeout + 2*time.Second,
	})

	if res.ExitCode == 0 {
		// Alive even when the RTT pattern is missing from the output.
		return true, parse.PingRTT(res.Stdout), nil
	}

	// Some ping builds exit nonzero yet still report a reply.
	if rtt := parse.PingRTT(res.Stdout + res.Stderr); rtt != nil {
		return true, rtt, nil
	}
	return false, nil, nil
}

// TCP probes by attempting a raw connect to a fixed port.
type TCP struct {
	Port    int
	Timeout time.Duration
}

// Probe dials (addr, port) bounded by the per-host timeout. Success is
// alive with the connect latency in milliseconds at two-decimal
// precision; refusal, timeout, or unreachable is simply not-alive.
func (p *TCP) Probe(ctx context.Context, addr string) (bool, *float64, error) {
	d := net.Dialer{Timeout: p.Timeout}
	start := time.Now()

	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(addr, strconv.Itoa(p.Port)))
	if err != nil {
		return false, nil, nil
	}
	rtt := math.Round(time.Since(start).Seconds()*1000*100) / 100
	_ = conn.Close()

	return true, &rtt, nil
}
