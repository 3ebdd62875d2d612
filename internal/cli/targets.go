package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/targets"
)

var targetsCmd = &cobra.Command{
	Use:   "targets <spec>",
	Short: "Show how a network spec expands",
	Long: `Expands a CIDR, dash range, or comma-separated address list the same
way recon sweep would, and prints the resulting addresses one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	addrs := targets.Expand(args[0])
	if len(addrs) == 0 {
		return fmt.Errorf("no valid hosts parsed from %q", args[0])
	}
	for _, a := range addrs {
		fmt.Fprintln(cmd.OutOrStdout(), a)
	}
	return nil
}
