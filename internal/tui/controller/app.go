package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/tui/model"
	"snaplist/internal/tui/view"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Model exposes the wrapped model.
func (a AppModel) Model() *model.Model {
	return a.model
}

// Init implements tea.Model. The snap list is requested right away; a
// cached answer is applied before the first frame.
func (a AppModel) Init() tea.Cmd {
	return tea.Batch(a.model.Init(), loadSnapList(a.model))
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := Update(msg, a.model)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
