package cli

import "github.com/spf13/cobra"

var enumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Web content and technology enumeration",
	Long:  "Fuzz paths, brute-force directories, and fingerprint web technologies.",
}
