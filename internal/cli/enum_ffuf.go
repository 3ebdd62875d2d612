package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

var (
	ffufWordlistFlag string
	ffufThreadsFlag  int
	ffufStoreRawFlag bool
)

var enumFfufCmd = &cobra.Command{
	Use:   "ffuf",
	Short: "Fuzz a URL with ffuf",
	Long: `Runs ffuf against the target URL, which must contain the FUZZ
placeholder, and returns the parsed JSON report.`,
	RunE: runFfuf,
}

func init() {
	enumFfufCmd.Flags().StringVarP(&ffufWordlistFlag, "wordlist", "w", "", "wordlist path (default from config)")
	enumFfufCmd.Flags().IntVar(&ffufThreadsFlag, "threads", 40, "fuzzing threads")
	enumFfufCmd.Flags().BoolVar(&ffufStoreRawFlag, "store-raw", false, "include raw stdout in the result")
	enumCmd.AddCommand(enumFfufCmd)
}

func runFfuf(cmd *cobra.Command, args []string) error {
	opts := tool.Options{
		Timeout:     timeoutFlag,
		Concurrency: concurrencyFlag,
		ExtraArgs: map[string]interface{}{
			"wordlist":  ffufWordlistFlag,
			"threads":   ffufThreadsFlag,
			"store_raw": ffufStoreRawFlag,
		},
	}
	return runTool("ffuf", opts)
}
