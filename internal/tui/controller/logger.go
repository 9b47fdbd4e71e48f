package controller

import (
	"snaplist/internal/tui/model"
)

// logDebug logs through the model's logger, but only in debug mode.
func logDebug(m *model.Model, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		m.Log.Debug(format, a...)
	}
}

// handleNewLogEntry appends an entry from the logging channel to the
// activity log.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	model.AddRawLineToActivityLog(m, model.FormatLogEntry(msg.Entry))
	return m
}
