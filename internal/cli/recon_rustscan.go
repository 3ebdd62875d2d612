package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var rustscanRangeFlag string

var reconRustscanCmd = &cobra.Command{
	Use:   "rustscan",
	Short: "Fast port discovery with rustscan",
	Long:  "Runs rustscan in greppable mode and returns the open port list.",
	RunE:  runRustscan,
}

func init() {
	reconRustscanCmd.Flags().StringVar(&rustscanRangeFlag, "range", "1-65535", "port range to scan")
	reconCmd.AddCommand(reconRustscanCmd)
}

func runRustscan(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     timeoutFlag,
		Concurrency: concurrencyFlag,
		ExtraArgs: map[string]interface{}{
			"range": rustscanRangeFlag,
		},
	}
	return runTool("rustscan", opts)
}
