package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0xmanhnv/mcp-appsec/internal/config"
)

var version = "dev"

var (
	targetFlag      string
	outputFlag      string
	verboseFlag     bool
	concurrencyFlag int
	timeoutFlag     time.Duration
	scopeFlag       string
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

// appLog is the process logger; silent unless --verbose is set.
var appLog = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "appsec",
	Short: "appsec — recon and enumeration tool server",
	Long: `appsec wraps common network reconnaissance and web enumeration
tools (nmap, rustscan, ffuf, gobuster, whatweb) behind a uniform
result model, with optional container sandboxing per tool and a
job-oriented HTTP API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so all existing commands
		// pick up config-file and env-var defaults transparently.
		outputFlag = cfg.OutputFormat
		concurrencyFlag = cfg.Concurrency
		timeoutFlag = cfg.Timeout
		scopeFlag = cfg.AllowedPrefix

		appConfig = cfg

		if verboseFlag {
			log, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			appLog = log
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&targetFlag, "target", "t", "", "target host, IP, URL, or network spec")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, json, markdown, html")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&concurrencyFlag, "concurrency", "c", 50, "max concurrent operations")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 60*time.Second, "tool execution timeout")
	rootCmd.PersistentFlags().StringVar(&scopeFlag, "scope", "", "allowed target prefix (empty = unrestricted)")

	rootCmd.AddCommand(reconCmd)
	rootCmd.AddCommand(enumCmd)
	rootCmd.AddCommand(versionCmd)
}
