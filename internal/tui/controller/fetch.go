package controller

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/snaps"
	"snaplist/internal/tui/model"
)

// loadSnapList asks the catalogue for the snap list. A Ready answer is
// applied on the spot and never starts the spinner; a Pending one shows
// the loading screen until it arrives.
func loadSnapList(m *model.Model) tea.Cmd {
	m.CurrentAppMode = model.ModeLoading
	m.ButtonIndex = 0
	if m.Catalog == nil {
		applySnapList(m, nil)
		return nil
	}

	res := m.Catalog.SnapList(m.Ctx)
	if res.IsReady() {
		applySnapList(m, res.Value())
		return nil
	}
	return tea.Batch(m.StartSpinner(), model.AwaitSnapListCmd(res))
}

// applySnapList shows the fetched list minus the preinstalled snaps, or
// the retry screen when nothing came back.
func applySnapList(m *model.Model, list []snaps.Snap) {
	m.StopSpinner()
	if len(list) == 0 {
		m.Log.Warn("no snaps to show, offering to retry")
		m.CurrentAppMode = model.ModeRetry
		m.ButtonIndex = 0
		return
	}

	rows := make([]snaps.Snap, 0, len(list))
	for _, s := range list {
		if m.Preinstalled.Has(s.Name) {
			continue
		}
		rows = append(rows, s)
	}
	m.Log.Info("showing %d snaps, %d already in the seed", len(rows), len(list)-len(rows))

	m.Snaps = rows
	m.Cursor = 0
	m.ListOffset = 0
	m.Focus = model.FocusList
	m.ButtonIndex = 0
	m.CurrentAppMode = model.ModeMain
}

// loadSnapInfo asks the catalogue for s with its channels. While a Pending
// answer is awaited a dialog with a spinner covers the screen.
func loadSnapInfo(m *model.Model, s snaps.Snap) tea.Cmd {
	if m.Catalog == nil {
		applySnapInfo(m, s, nil)
		return nil
	}

	res := m.Catalog.SnapInfo(m.Ctx, s)
	if res.IsReady() {
		applySnapInfo(m, res.Value(), nil)
		return nil
	}

	dialog := model.NewOverlay(model.OverlayFetchingInfo, s.Name)
	m.Overlay = dialog
	return tea.Batch(m.StartSpinner(), model.AwaitSnapInfoCmd(res, dialog))
}

// applySnapInfo closes the dialog opened for the request, if it is still
// open, then shows the detail view or the failure dialog. A result whose
// dialog was cancelled is applied all the same.
func applySnapInfo(m *model.Model, s snaps.Snap, dialog *model.Overlay) {
	if dialog.Close() {
		m.StopSpinner()
	}
	if dialog != nil && m.Overlay == dialog {
		m.Overlay = nil
	}

	if len(s.Channels) == 0 {
		if m.Overlay != nil {
			// A newer dialog is up; this failure belongs to a cancelled request.
			m.Log.Warn("dropping late failure for %s", s.Name)
			return
		}
		m.Log.Warn("no channels for %s", s.Name)
		m.Overlay = model.NewOverlay(model.OverlayFetchingFailed, s.Name)
		return
	}

	current := ""
	if sel, ok := m.Selections.Get(s.Name); ok {
		current = sel.Channel
	}
	name := s.Name
	m.Detail = model.NewDetailPanel(s, current, func(channel string, sel snaps.Selection) {
		m.Log.Debug("%s: channel %s chosen", name, channel)
		m.Selections.Set(name, sel)
	})
	m.CurrentAppMode = model.ModeDetail
}

// snapByName finds a row of the main list.
func snapByName(m *model.Model, name string) (snaps.Snap, bool) {
	for _, s := range m.Snaps {
		if s.Name == name {
			return s, true
		}
	}
	return snaps.Snap{}, false
}

// finishDone reports the selections and quits. Only the first report
// counts.
func finishDone(m *model.Model) tea.Cmd {
	if m.Reported {
		return nil
	}
	m.Reported = true
	m.Log.Info("done with %d snaps selected", m.Selections.Len())
	logDebug(m, "selected: %s", strings.Join(m.Selections.Names(), ", "))
	if m.Reporter != nil {
		m.Reporter.Done(m.Selections.All())
	}
	m.CurrentAppMode = model.ModeQuitting
	return tea.Quit
}

// finishCancel reports the cancellation and quits.
func finishCancel(m *model.Model) tea.Cmd {
	if m.Reported {
		return nil
	}
	m.Reported = true
	m.Log.Info("cancelled")
	if m.Reporter != nil {
		m.Reporter.Cancel()
	}
	m.CurrentAppMode = model.ModeQuitting
	return tea.Quit
}
