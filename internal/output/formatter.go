package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// Formatter renders tool results to a writer.
type Formatter interface {
	Format(w io.Writer, results []types.ToolResult) error
}

// GetFormatter returns the appropriate formatter for the given format
// string.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{}, nil
	case "html":
		return &HTMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, markdown, html)", format)
	}
}

// statusLabel returns the short status word for a result.
func statusLabel(r types.ToolResult) string {
	switch {
	case r.Success:
		return "OK"
	case r.TimedOut():
		return "TIMEOUT"
	default:
		return "FAIL"
	}
}

// sortedKeys returns the data keys of a result in stable order.
func sortedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// renderValue flattens a data value into a single display string,
// truncated to keep tables readable.
func renderValue(v interface{}, limit int) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case fmt.Stringer:
		s = val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			s = fmt.Sprintf("%v", val)
		} else {
			s = string(b)
		}
	}
	if limit > 0 && len(s) > limit {
		return s[:limit] + "…"
	}
	return s
}
