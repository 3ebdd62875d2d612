package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/tui/styles"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// RunCompleteMsg is sent when a tool run finishes.
type RunCompleteMsg struct {
	Result types.ToolResult
}

// runErrorMsg is sent when a tool run encounters an error.
type runErrorMsg struct {
	err error
}

// RunModel is the view model for the tool-in-progress view.
type RunModel struct {
	spinner spinner.Model
	tool    tool.Tool
	target  types.Target
	done    bool
	err     string
	result  types.ToolResult
}

// NewRunModel creates a progress view for the given tool and target.
func NewRunModel(t tool.Tool, target types.Target) RunModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	return RunModel{
		spinner: sp,
		tool:    t,
		target:  target,
	}
}

// Init starts the spinner and launches the tool.
func (m RunModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runTool())
}

// Update handles spinner ticks and run completion.
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RunCompleteMsg:
		m.done = true
		m.result = msg.Result
		return m, nil

	case runErrorMsg:
		m.done = true
		m.err = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the run progress.
func (m RunModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("appsec — Interactive Mode"))
	b.WriteString("\n\n")

	if m.done {
		if m.err != "" {
			b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Run failed: %s", m.err)))
		} else {
			b.WriteString(fmt.Sprintf("Run complete in %s.\n",
				m.result.Duration().Round(time.Millisecond)))
		}
	} else {
		b.WriteString(fmt.Sprintf("%s Running %s...\n",
			m.spinner.View(),
			styles.SelectedStyle.Render(m.tool.Name())))
		b.WriteString(fmt.Sprintf("  Target: %s\n", m.target.Display()))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+c quit"))

	return b.String()
}

func (m RunModel) runTool() tea.Cmd {
	t := m.tool
	target := m.target
	return func() tea.Msg {
		opts := tool.DefaultOptions()

		ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout+30*time.Second)
		defer cancel()

		result, err := t.Run(ctx, target, opts)
		if err != nil {
			return runErrorMsg{err: err}
		}
		return RunCompleteMsg{Result: *result}
	}
}
