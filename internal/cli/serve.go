package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0xmanhnv/mcp-appsec/internal/web"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the appsec job server",
	Long:  "Launches the HTTP API for submitting tool jobs and retrieving their results.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (host:port, default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := addrFlag
	if addr == "" {
		addr = appConfig.ListenAddr
	}

	log := appLog
	if !verboseFlag {
		// The server always logs, even without --verbose.
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
	}
	defer log.Sync()

	s := web.NewServer(addr, newRegistryWithLog(log), log)
	fmt.Fprintf(cmd.OutOrStdout(), "appsec server listening on %s\n", addr)
	return s.Start()
}
