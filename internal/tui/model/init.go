package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"snaplist/internal/seed"
	"snaplist/internal/snaps"
	"snaplist/internal/tui/design"
	"snaplist/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous button"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next button"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next area"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous area"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select/deselect"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details/confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
	}
}

// InitialModel builds the screen in its loading state. Nothing is fetched
// until Init runs.
func InitialModel(cfg Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = design.SpinnerStyle

	log := cfg.Log
	if log == nil {
		log = logging.Discard()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	preinstalled := cfg.Preinstalled
	if preinstalled == nil {
		preinstalled = seed.Set{}
	}
	channel := cfg.DefaultChannel
	if channel == "" {
		channel = snaps.DefaultChannel
	}

	return &Model{
		CurrentAppMode: ModeLoading,
		DebugMode:      cfg.DebugMode,
		Title:          cfg.Title,
		DefaultChannel: channel,
		Ctx:            context.Background(),
		Catalog:        cfg.Catalog,
		Reporter:       cfg.Reporter,
		Log:            log,
		Now:            now,
		Preinstalled:   preinstalled,
		Selections:     snaps.NewSelectionStore(),
		Spinner:        s,
		LogViewport:    viewport.New(0, 0),
		LogChannel:     cfg.LogChannel,
		Keys:           DefaultKeyMap(),
	}
}

// Init implements the first half of tea.Model for the controller: it starts
// listening for log entries. The snap list itself is requested by the
// controller so that a Ready answer can be applied synchronously.
func (m *Model) Init() tea.Cmd {
	if m.LogChannel == nil {
		return nil
	}
	return ListenForLogsCmd(m.LogChannel)
}

// StartSpinner marks the spinner running and returns its first tick.
func (m *Model) StartSpinner() tea.Cmd {
	m.SpinnerActive = true
	m.SpinnerStarts++
	return m.Spinner.Tick
}

// StopSpinner stops the spinner. Pending ticks are dropped on arrival.
func (m *Model) StopSpinner() {
	m.SpinnerActive = false
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// CurrentSnap is the snap under the main list cursor.
func (m *Model) CurrentSnap() (snaps.Snap, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Snaps) {
		return snaps.Snap{}, false
	}
	return m.Snaps[m.Cursor], true
}

// IsChecked reports whether the snap's checkbox is ticked. The box is
// derived from the selection store so the two cannot disagree.
func (m *Model) IsChecked(name string) bool {
	return m.Selections.Has(name)
}

// Buttons lists the buttons of the current screen.
func (m *Model) Buttons() []string {
	switch m.CurrentAppMode {
	case ModeLoading:
		return []string{ButtonContinue}
	case ModeRetry:
		return []string{ButtonTryAgain, ButtonContinue}
	case ModeMain:
		return []string{ButtonDone, ButtonBack}
	case ModeDetail:
		return []string{ButtonClose}
	}
	return nil
}

// CloseOverlay closes the open dialog, if any. A fetching dialog also
// stops the spinner. Closing twice is harmless.
func (m *Model) CloseOverlay() {
	if m.Overlay == nil {
		return
	}
	if m.Overlay.Close() && m.Overlay.Kind == OverlayFetchingInfo {
		m.StopSpinner()
	}
	m.Overlay = nil
}
