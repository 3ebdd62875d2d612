package cli

import "github.com/spf13/cobra"

var reconCmd = &cobra.Command{
	Use:   "recon",
	Short: "Network reconnaissance",
	Long:  "Discover live hosts, open ports, and running services on a target or network.",
}
