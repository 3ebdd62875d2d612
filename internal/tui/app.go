package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
)

// Run starts the interactive TUI with the given tool registry.
func Run(reg *tool.Registry) error {
	m := NewModel(reg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
