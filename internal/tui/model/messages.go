package model

import (
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

// SnapListLoadedMsg carries the awaited snap list. Empty means failure.
type SnapListLoadedMsg struct {
	Snaps []snaps.Snap
}

// SnapInfoLoadedMsg carries an awaited snap populated with its channels.
// Dialog is the fetching dialog opened for the request.
type SnapInfoLoadedMsg struct {
	Snap   snaps.Snap
	Dialog *Overlay
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}
