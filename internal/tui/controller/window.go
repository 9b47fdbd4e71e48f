package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/tui/model"
	"snaplist/internal/tui/view"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
// The detail view re-splits itself on the next render.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	view.SizeLogViewport(m)
	return m, nil
}
