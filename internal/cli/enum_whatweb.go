package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var enumWhatwebCmd = &cobra.Command{
	Use:   "whatweb",
	Short: "Fingerprint web technologies with whatweb",
	Long:  "Identifies the web server, frameworks, and libraries behind the target.",
	RunE:  runWhatweb,
}

func init() {
	enumCmd.AddCommand(enumWhatwebCmd)
}

func runWhatweb(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     timeoutFlag,
		Concurrency: concurrencyFlag,
	}
	return runTool("whatweb", opts)
}
