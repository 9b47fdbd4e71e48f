package controller

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/seed"
	"snaplist/internal/tui/model"
	"snaplist/internal/tui/view"
)

const statusMessageTimeout = 3 * time.Second

// handleKeyMsg processes key presses. Global keys come first, then the log
// overlay and dialogs, which swallow everything else while open, then the
// keys of the current screen.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return m, finishCancel(m)
	}

	if m.ShowLog {
		return handleLogOverlayKey(m, keyMsg)
	}
	if key.Matches(keyMsg, m.Keys.ToggleLog) {
		m.ShowLog = true
		view.SizeLogViewport(m)
		view.RefreshLogViewport(m)
		m.LogViewport.GotoBottom()
		return m, nil
	}

	if m.Overlay != nil {
		return handleOverlayKey(m, keyMsg)
	}

	switch m.CurrentAppMode {
	case model.ModeLoading:
		return handleLoadingKey(m, keyMsg)
	case model.ModeRetry:
		return handleRetryKey(m, keyMsg)
	case model.ModeMain:
		return handleMainKey(m, keyMsg)
	case model.ModeDetail:
		return handleDetailKey(m, keyMsg)
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
		m.ShowLog = false
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		if err := clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			m.Log.Error(err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageTimeout)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageTimeout)
	}
	switch keyMsg.String() {
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd
	}
	return m, nil
}

// handleOverlayKey drives the fetching dialogs.
func handleOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	o := m.Overlay
	switch {
	case key.Matches(keyMsg, m.Keys.Tab), key.Matches(keyMsg, m.Keys.Right):
		o.MoveButton(1)
	case key.Matches(keyMsg, m.Keys.ShiftTab), key.Matches(keyMsg, m.Keys.Left):
		o.MoveButton(-1)
	case key.Matches(keyMsg, m.Keys.Esc):
		m.CloseOverlay()
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Toggle):
		return pressOverlayButton(m, o.FocusedButton())
	}
	return m, nil
}

func pressOverlayButton(m *model.Model, label string) (*model.Model, tea.Cmd) {
	name := m.Overlay.SnapName
	m.CloseOverlay()
	if label != model.ButtonTryAgain {
		return m, nil
	}
	s, ok := snapByName(m, name)
	if !ok {
		return m, nil
	}
	m.Log.Info("retrying info for %s", name)
	return m, loadSnapInfo(m, s)
}

// moveButton moves the button focus of the current screen, wrapping.
func moveButton(m *model.Model, delta int) {
	n := len(m.Buttons())
	if n == 0 {
		return
	}
	m.ButtonIndex = ((m.ButtonIndex+delta)%n + n) % n
}

func handleLoadingKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Toggle):
		return m, finishDone(m)
	case key.Matches(keyMsg, m.Keys.Esc):
		return m, finishCancel(m)
	}
	return m, nil
}

func handleRetryKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Tab), key.Matches(keyMsg, m.Keys.Right):
		moveButton(m, 1)
	case key.Matches(keyMsg, m.Keys.ShiftTab), key.Matches(keyMsg, m.Keys.Left):
		moveButton(m, -1)
	case key.Matches(keyMsg, m.Keys.Esc):
		return m, finishCancel(m)
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Toggle):
		if m.Buttons()[m.ButtonIndex] == model.ButtonTryAgain {
			m.Log.Info("retrying snap list")
			return m, loadSnapList(m)
		}
		return m, finishDone(m)
	}
	return m, nil
}

func handleMainKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		return m, finishCancel(m)
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copySelection(m)
	case key.Matches(keyMsg, m.Keys.Tab), key.Matches(keyMsg, m.Keys.ShiftTab):
		if m.Focus == model.FocusList {
			m.Focus = model.FocusButtons
		} else {
			m.Focus = model.FocusList
		}
		return m, nil
	}

	if m.Focus == model.FocusButtons {
		switch {
		case key.Matches(keyMsg, m.Keys.Left):
			moveButton(m, -1)
		case key.Matches(keyMsg, m.Keys.Right):
			moveButton(m, 1)
		case key.Matches(keyMsg, m.Keys.Up):
			m.Focus = model.FocusList
		case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Toggle):
			if m.Buttons()[m.ButtonIndex] == model.ButtonDone {
				return m, finishDone(m)
			}
			return m, finishCancel(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(keyMsg, m.Keys.Down):
		if m.Cursor < len(m.Snaps)-1 {
			m.Cursor++
		} else {
			m.Focus = model.FocusButtons
		}
	case key.Matches(keyMsg, m.Keys.Toggle):
		toggleCurrent(m)
	case key.Matches(keyMsg, m.Keys.Enter):
		if s, ok := m.CurrentSnap(); ok {
			return m, loadSnapInfo(m, s)
		}
	}
	return m, nil
}

// toggleCurrent flips the checkbox under the cursor. Ticking selects the
// default channel.
func toggleCurrent(m *model.Model) {
	s, ok := m.CurrentSnap()
	if !ok {
		return
	}
	if m.Selections.Has(s.Name) {
		m.Selections.Remove(s.Name)
		return
	}
	m.Selections.Set(s.Name, s.DefaultSelection(m.DefaultChannel))
}

// copySelection puts the selection, as a seed manifest, on the clipboard.
func copySelection(m *model.Model) tea.Cmd {
	out, err := seed.FromSelections(m.Selections.All()).Marshal()
	if err == nil {
		err = clipboard.WriteAll(string(out))
	}
	if err != nil {
		m.Log.Error(err, "Failed to copy selection")
		return m.SetStatusMessage("Copy selection failed", model.StatusBarError, statusMessageTimeout)
	}
	return m.SetStatusMessage("Selection copied to clipboard", model.StatusBarSuccess, statusMessageTimeout)
}

func handleDetailKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	d := m.Detail
	if d == nil {
		m.CurrentAppMode = model.ModeMain
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		closeDetail(m)
	case key.Matches(keyMsg, m.Keys.Up):
		d.Move(-1)
	case key.Matches(keyMsg, m.Keys.Down):
		d.Move(1)
	case key.Matches(keyMsg, m.Keys.Tab):
		d.CycleFocus(1)
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		d.CycleFocus(-1)
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Toggle):
		if d.Activate() {
			closeDetail(m)
		}
	}
	return m, nil
}

func closeDetail(m *model.Model) {
	m.Detail = nil
	m.CurrentAppMode = model.ModeMain
}
