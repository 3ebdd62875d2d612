package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var (
	sweepMethodFlag   string
	sweepTCPPortFlag  int
	sweepMaxHostsFlag int
	sweepPerHostFlag  time.Duration
)

var reconSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Liveness sweep over a network",
	Long: `Expands the target (CIDR, dash range, or comma-separated list) and
probes every address for liveness via ICMP echo or a TCP connect.`,
	RunE: runSweep,
}

func init() {
	reconSweepCmd.Flags().StringVar(&sweepMethodFlag, "method", "icmp", "probe method: icmp or tcp")
	reconSweepCmd.Flags().IntVar(&sweepTCPPortFlag, "tcp-port", 80, "port to connect to in tcp mode")
	reconSweepCmd.Flags().IntVar(&sweepMaxHostsFlag, "max-hosts", 1024, "refuse to sweep more hosts than this")
	reconSweepCmd.Flags().DurationVar(&sweepPerHostFlag, "probe-timeout", 2*time.Second, "per-host probe timeout")
	reconCmd.AddCommand(reconSweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     sweepPerHostFlag,
		Concurrency: concurrencyFlag,
		ExtraArgs: map[string]interface{}{
			"method":    sweepMethodFlag,
			"tcp_port":  sweepTCPPortFlag,
			"max_hosts": sweepMaxHostsFlag,
		},
	}
	// A full sweep runs many per-host probes; give the overall context
	// room for the worst case instead of a single probe timeout.
	return runToolDeadline("sweep", opts, 30*time.Minute)
}
