package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var (
	gobusterWordlistFlag string
	gobusterThreadsFlag  int
)

var enumGobusterCmd = &cobra.Command{
	Use:   "gobuster",
	Short: "Directory brute-force with gobuster",
	Long:  "Runs gobuster in dir mode against the target URL and lists discovered paths.",
	RunE:  runGobuster,
}

func init() {
	enumGobusterCmd.Flags().StringVarP(&gobusterWordlistFlag, "wordlist", "w", "", "wordlist path (default from config)")
	enumGobusterCmd.Flags().IntVar(&gobusterThreadsFlag, "threads", 40, "brute-force threads")
	enumCmd.AddCommand(enumGobusterCmd)
}

func runGobuster(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     timeoutFlag,
		Concurrency: concurrencyFlag,
		ExtraArgs: map[string]interface{}{
			"wordlist": gobusterWordlistFlag,
			"threads":  gobusterThreadsFlag,
		},
	}
	return runTool("gobuster", opts)
}
