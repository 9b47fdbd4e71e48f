package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/tui/model"
)

// NewProgram creates the Bubble Tea program running the featured-snaps
// screen on the alternate screen buffer.
func NewProgram(cfg model.Config, opts ...tea.ProgramOption) *tea.Program {
	app := NewAppModel(model.InitialModel(cfg))
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(app, opts...)
}
