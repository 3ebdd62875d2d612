package main

import (
	"os"

	"github.com/0xmanhnv/mcp-appsec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
