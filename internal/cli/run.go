package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/0xmanhnv/mcp-appsec/internal/output"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// runTool executes a single registered tool against --target and prints
// the result in the selected output format. The surrounding context gets
// slack beyond the tool timeout so the tool's own sentinel wins the race.
func runTool(name string, opts tool.Options) error {
	return runToolDeadline(name, opts, opts.Timeout+30*time.Second)
}

// runToolDeadline is runTool with an explicit overall context deadline,
// for tools whose total runtime is not bounded by a single Options.Timeout.
func runToolDeadline(name string, opts tool.Options, overall time.Duration) error {
	if targetFlag == "" {
		return fmt.Errorf("--target (-t) is required")
	}

	target, err := types.ParseTarget(targetFlag)
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	formatter, err := output.GetFormatter(outputFlag)
	if err != nil {
		return err
	}

	runner := tool.NewRunner(newRegistry())

	ctx, cancel := context.WithTimeout(context.Background(), overall)
	defer cancel()

	result, err := runner.RunOne(ctx, name, target, opts)
	if err != nil {
		return err
	}

	return formatter.Format(os.Stdout, []types.ToolResult{*result})
}
