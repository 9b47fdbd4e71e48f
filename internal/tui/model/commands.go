package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/fetch"
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

// AwaitSnapListCmd waits for a pending snap list off the UI goroutine.
func AwaitSnapListCmd(res fetch.Result[[]snaps.Snap]) tea.Cmd {
	return func() tea.Msg {
		return SnapListLoadedMsg{Snaps: res.Await()}
	}
}

// AwaitSnapInfoCmd waits for pending snap info off the UI goroutine.
func AwaitSnapInfoCmd(res fetch.Result[snaps.Snap], dialog *Overlay) tea.Cmd {
	return func() tea.Msg {
		return SnapInfoLoadedMsg{Snap: res.Await(), Dialog: dialog}
	}
}

// ListenForLogsCmd reads the next entry from the logging channel. It
// returns nil once the channel is closed.
func ListenForLogsCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
