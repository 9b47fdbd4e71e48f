package controller

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/tui/model"
)

// Update routes a message to its handler. It is the only place the model
// is mutated once the program runs.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		logDebug(m, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.CurrentAppMode == model.ModeQuitting {
			return m, nil
		}
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tea.MouseMsg:
		if m.ShowLog {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case model.SnapListLoadedMsg:
		if m.CurrentAppMode != model.ModeLoading {
			logDebug(m, "Dropping snap list arriving in mode %s", m.CurrentAppMode)
			return m, nil
		}
		applySnapList(m, msg.Snaps)
		return m, nil

	case model.SnapInfoLoadedMsg:
		if m.CurrentAppMode == model.ModeQuitting {
			return m, nil
		}
		applySnapInfo(m, msg.Snap, msg.Dialog)
		return m, nil

	case spinner.TickMsg:
		if !m.SpinnerActive {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogsCmd(m.LogChannel)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil
	}

	logDebug(m, "Unhandled msg type: %T", msg)
	return m, nil
}
