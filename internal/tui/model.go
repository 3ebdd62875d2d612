package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/tui/views"
	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// appState represents which view is currently active.
type appState int

const (
	stateMenu    appState = iota // Tool selection menu
	stateTarget                  // Target input
	stateRun                     // Tool in progress
	stateResults                 // Results display
)

// Model is the root Bubble Tea model that manages view transitions.
type Model struct {
	state    appState
	registry *tool.Registry
	width    int
	height   int

	// Sub-models for each view.
	menu    views.MenuModel
	target  views.TargetModel
	run     views.RunModel
	results views.ResultsModel
}

// NewModel creates a root model with the given tool registry.
func NewModel(reg *tool.Registry) Model {
	tools := reg.All()
	items := make([]views.ToolItem, len(tools))
	for i, t := range tools {
		items[i] = views.ToolItem{
			Name:        t.Name(),
			Description: t.Description(),
		}
	}

	return Model{
		state:    stateMenu,
		registry: reg,
		menu:     views.NewMenuModel(items),
		target:   views.NewTargetModel(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.target.Init()
}

// Update handles messages and manages state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.handleBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case stateTarget:
		return m.updateTarget(msg)
	case stateRun:
		return m.updateRun(msg)
	case stateResults:
		return m.updateResults(msg)
	}

	return m, nil
}

// View renders the current view.
func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.menu.View()
	case stateTarget:
		return m.target.View()
	case stateRun:
		return m.run.View()
	case stateResults:
		return m.results.View()
	}
	return ""
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateTarget:
		m.state = stateMenu
		return m, nil
	case stateResults:
		m.state = stateMenu
		return m, nil
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		selected := m.menu.Selected()
		if selected != nil {
			m.target = views.NewTargetModel()
			m.target.SetToolName(selected.Name)
			m.state = stateTarget
			return m, m.target.Init()
		}
	}

	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(views.MenuModel)
	return m, cmd
}

func (m Model) updateTarget(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		target, err := m.target.ValidatedTarget()
		if err == nil {
			toolName := m.target.ToolName()
			t, tErr := m.registry.Get(toolName)
			if tErr != nil {
				return m, nil
			}
			m.run = views.NewRunModel(t, target)
			m.state = stateRun
			return m, m.run.Init()
		}
	}

	updated, cmd := m.target.Update(msg)
	m.target = updated.(views.TargetModel)
	return m, cmd
}

func (m Model) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	if runMsg, ok := msg.(views.RunCompleteMsg); ok {
		m.results = views.NewResultsModel([]types.ToolResult{runMsg.Result})
		m.state = stateResults
		return m, nil
	}

	updated, cmd := m.run.Update(msg)
	m.run = updated.(views.RunModel)
	return m, cmd
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.results.Update(msg)
	m.results = updated.(views.ResultsModel)
	return m, cmd
}
