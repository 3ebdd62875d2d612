package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  "Start an interactive terminal UI for selecting and running recon tools.",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	return tui.Run(newRegistry())
}
