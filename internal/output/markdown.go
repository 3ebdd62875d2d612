package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// MarkdownFormatter renders results as Markdown tables suitable for
// pasting into docs, issues, or engagement notes.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, results []types.ToolResult) error {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "## %s — %s\n\n**%s**", result.ToolName, result.Target, statusLabel(result))
		if d := result.Duration(); d > 0 {
			fmt.Fprintf(w, " in %s", d.Round(time.Millisecond))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)

		if result.Error != "" {
			fmt.Fprintf(w, "> %s\n", escapeMarkdown(result.Error))
			continue
		}
		if result.Stderr != "" {
			fmt.Fprintf(w, "> %s\n", escapeMarkdown(renderValue(result.Stderr, cellLimit)))
			continue
		}
		if len(result.Data) == 0 {
			fmt.Fprintln(w, "_No data._")
			continue
		}

		fmt.Fprintln(w, "| Field | Value |")
		fmt.Fprintln(w, "|-------|-------|")
		for _, key := range sortedKeys(result.Data) {
			fmt.Fprintf(w, "| %s | %s |\n",
				escapeMarkdown(key),
				escapeMarkdown(renderValue(result.Data[key], cellLimit)))
		}
	}

	return nil
}

// escapeMarkdown escapes pipe characters that would break Markdown tables.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
