package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// cellLimit keeps long payloads (raw scanner output, recovered JSON)
// from blowing up terminal tables.
const cellLimit = 120

// TableFormatter renders results as a colored terminal table.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, results []types.ToolResult) error {
	for _, result := range results {
		fmt.Fprintf(w, "\n[%s] %s — %s (%s)\n",
			result.ToolName,
			result.Target,
			colorStatus(result),
			result.Duration().Round(time.Millisecond),
		)

		if result.Error != "" {
			fmt.Fprintf(w, "  Error: %s\n", result.Error)
			continue
		}
		if result.Stderr != "" {
			fmt.Fprintf(w, "  Stderr: %s\n", renderValue(result.Stderr, cellLimit))
			continue
		}
		if len(result.Data) == 0 {
			fmt.Fprintln(w, "  No data.")
			continue
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Field", "Value"})
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		table.SetColumnSeparator("│")

		for _, key := range sortedKeys(result.Data) {
			table.Append([]string{key, renderValue(result.Data[key], cellLimit)})
		}

		table.Render()
	}

	return nil
}

func colorStatus(r types.ToolResult) string {
	switch {
	case r.Success:
		return color.GreenString("OK")
	case r.TimedOut():
		return color.YellowString("TIMEOUT")
	default:
		return color.RedString("FAIL")
	}
}
