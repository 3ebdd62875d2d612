package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var (
	nmapPortsFlag   string
	nmapFastFlag    bool
	nmapServiceFlag bool
)

var reconNmapCmd = &cobra.Command{
	Use:   "nmap",
	Short: "Port and service scan with nmap",
	Long:  "Runs an nmap scan against the target and returns the parsed JSON report.",
	RunE:  runNmap,
}

func init() {
	reconNmapCmd.Flags().StringVar(&nmapPortsFlag, "ports", "1-1024", "ports to scan: single, range (1-1024), or comma-separated")
	reconNmapCmd.Flags().BoolVar(&nmapFastFlag, "fast", true, "aggressive timing with a minimum packet rate")
	reconNmapCmd.Flags().BoolVar(&nmapServiceFlag, "service-detection", true, "probe open ports for service versions (-sV)")
	reconCmd.AddCommand(reconNmapCmd)
}

func runNmap(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     timeoutFlag,
		Concurrency: concurrencyFlag,
		ExtraArgs: map[string]interface{}{
			"ports":             nmapPortsFlag,
			"fast":              nmapFastFlag,
			"service_detection": nmapServiceFlag,
		},
	}
	return runTool("nmap", opts)
}
