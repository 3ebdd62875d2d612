package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/0xmanhnv/mcp-appsec/internal/config"
	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/hostprobe"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/whatweb"
)

func newTestRegistry() *tool.Registry {
	cfg := config.Defaults()
	env := tool.NewEnv(&cfg, nil)

	reg := tool.NewRegistry()
	reg.Register(hostprobe.New(env))
	reg.Register(whatweb.New(env))
	return reg
}

func TestNewModelStartsAtMenuState(t *testing.T) {
	m := NewModel(newTestRegistry())
	assert.Equal(t, stateMenu, m.state)
}

func TestNewModelPopulatesMenuItems(t *testing.T) {
	m := NewModel(newTestRegistry())
	items := m.menu.Items()
	assert.Equal(t, 2, len(items))
}

func TestModelViewRendersMenuByDefault(t *testing.T) {
	m := NewModel(newTestRegistry())
	view := m.View()
	assert.Contains(t, view, "appsec")
	assert.Contains(t, view, "Select a tool")
}

func TestModelCtrlCQuits(t *testing.T) {
	m := NewModel(newTestRegistry())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestModelEscFromTargetReturnsToMenu(t *testing.T) {
	m := NewModel(newTestRegistry())
	m.state = stateTarget

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	assert.Equal(t, stateMenu, model.state)
}

func TestModelEscFromResultsReturnsToMenu(t *testing.T) {
	m := NewModel(newTestRegistry())
	m.state = stateResults

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	assert.Equal(t, stateMenu, model.state)
}

func TestModelWindowSizeMsg(t *testing.T) {
	m := NewModel(newTestRegistry())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}
