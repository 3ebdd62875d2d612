package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var probeTimeoutFlag time.Duration

var reconProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Single-host ICMP liveness check",
	Long:  "Sends one ICMP echo request to the target and reports whether it answered.",
	RunE:  runProbe,
}

func init() {
	reconProbeCmd.Flags().DurationVar(&probeTimeoutFlag, "probe-timeout", 5*time.Second, "echo reply wait time")
	reconCmd.AddCommand(reconProbeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     probeTimeoutFlag,
		Concurrency: concurrencyFlag,
	}
	return runTool("probe", opts)
}
