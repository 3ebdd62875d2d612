package views

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xmanhnv/mcp-appsec/internal/tui/styles"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// ResultsModel is the view model for displaying tool results.
type ResultsModel struct {
	results   []types.ToolResult
	cursor    int
	offset    int
	maxRows   int
	exported  bool
	exportErr string
}

// NewResultsModel creates a results view from tool results.
func NewResultsModel(results []types.ToolResult) ResultsModel {
	return ResultsModel{
		results: results,
		maxRows: 20,
	}
}

// Init returns nil (no initial command).
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for scrolling and export.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rows := m.allRows()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.maxRows {
					m.offset = m.cursor - m.maxRows + 1
				}
			}
		case "e":
			m.exportJSON()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the results table.
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("appsec — Results"))
	b.WriteString("\n\n")

	for _, r := range m.results {
		status := statusLabel(r)
		b.WriteString(fmt.Sprintf("%s  %s  %s (%s)\n",
			styles.SelectedStyle.Render(r.ToolName),
			r.Target,
			styles.StatusStyle(status).Render(status),
			r.Duration().Round(time.Millisecond),
		))
		if r.Error != "" {
			b.WriteString(styles.ErrorStyle.Render("  " + r.Error))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	rows := m.allRows()
	if len(rows) == 0 {
		b.WriteString("No data returned.\n")
	} else {
		header := fmt.Sprintf("  %-20s %-50s %s", "FIELD", "VALUE", "TOOL")
		b.WriteString(styles.HeaderStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", 80))
		b.WriteString("\n")

		end := m.offset + m.maxRows
		if end > len(rows) {
			end = len(rows)
		}

		for i := m.offset; i < end; i++ {
			row := rows[i]
			cursor := "  "
			if i == m.cursor {
				cursor = styles.CursorStyle.Render("> ")
			}

			b.WriteString(fmt.Sprintf("%s%-20s %-50s %s\n",
				cursor,
				truncate(row.field, 20),
				truncate(row.value, 50),
				styles.HelpStyle.Render(row.toolName)))
		}

		if len(rows) > m.maxRows {
			b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d fields\n",
				m.offset+1, end, len(rows)))
		}
	}

	if len(rows) > 0 && m.cursor < len(rows) {
		b.WriteString("\n")
		b.WriteString(m.detailView(rows[m.cursor]))
	}

	if m.exported {
		b.WriteString("\n")
		b.WriteString(styles.SelectedStyle.Render("Results exported to appsec-results.json"))
	}
	if m.exportErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.exportErr))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ scroll • e export JSON • esc back • q quit"))

	return b.String()
}

type fieldRow struct {
	field    string
	value    string
	toolName string
}

func (m ResultsModel) allRows() []fieldRow {
	var rows []fieldRow
	for _, r := range m.results {
		keys := make([]string, 0, len(r.Data))
		for k := range r.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			rows = append(rows, fieldRow{
				field:    k,
				value:    renderValue(r.Data[k]),
				toolName: r.ToolName,
			})
		}
	}
	return rows
}

func (m ResultsModel) detailView(row fieldRow) string {
	return styles.BorderStyle.Render(
		fmt.Sprintf("Field: %s\nTool: %s\nValue: %s",
			row.field,
			row.toolName,
			truncate(row.value, 500),
		),
	)
}

func (m *ResultsModel) exportJSON() {
	data, err := json.MarshalIndent(m.results, "", "  ")
	if err != nil {
		m.exportErr = fmt.Sprintf("export failed: %v", err)
		return
	}

	if err := os.WriteFile("appsec-results.json", data, 0644); err != nil {
		m.exportErr = fmt.Sprintf("export failed: %v", err)
		return
	}

	m.exported = true
	m.exportErr = ""
}

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

func renderValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
