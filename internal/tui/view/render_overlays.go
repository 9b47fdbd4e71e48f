package view

import (
	"snaplist/internal/tui/components"
	"snaplist/internal/tui/model"
)

// renderDialog draws the open fetching dialog. The fetching variant shows
// the spinner between the message and its Cancel button.
func renderDialog(m *model.Model) string {
	o := m.Overlay
	d := components.Dialog{
		Message: o.Message(),
		Buttons: o.Buttons(),
		Focused: o.Button,
	}
	if o.Kind == model.OverlayFetchingInfo {
		d.Spinner = m.Spinner.View()
	}
	return d.Render()
}
