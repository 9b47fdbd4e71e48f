package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"snaplist/internal/fetch"
	"snaplist/internal/seed"
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

// AppMode is the screen currently shown.
type AppMode int

const (
	ModeLoading AppMode = iota
	ModeMain
	ModeRetry
	ModeDetail
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeMain:
		return "Main"
	case ModeRetry:
		return "Retry"
	case ModeDetail:
		return "Detail"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MainFocus is the part of the main screen holding the focus.
type MainFocus int

const (
	FocusList MainFocus = iota
	FocusButtons
)

// Button labels.
const (
	ButtonDone     = "Done"
	ButtonBack     = "Back"
	ButtonContinue = "Continue"
	ButtonTryAgain = "Try again"
	ButtonCancel   = "Cancel"
	ButtonClose    = "Close"
)

const MaxActivityLogLines = 1000

// Catalog answers the screen's data requests. A Ready result is used on the
// spot; a Pending one is awaited in a command while a spinner runs. An empty
// list or a snap without channels means the request failed.
type Catalog interface {
	SnapList(ctx context.Context) fetch.Result[[]snaps.Snap]
	SnapInfo(ctx context.Context, s snaps.Snap) fetch.Result[snaps.Snap]
}

// Reporter receives the outcome of the screen.
type Reporter interface {
	Done(selections map[string]snaps.Selection)
	Cancel()
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Toggle    key.Binding
	Enter     key.Binding
	Esc       key.Binding
	Quit      key.Binding
	ToggleLog key.Binding
	Copy      key.Binding
}

// Config is what the screen needs from the outside world.
type Config struct {
	Title          string
	DefaultChannel string
	DebugMode      bool
	Catalog        Catalog
	Reporter       Reporter
	Preinstalled   seed.Set
	Log            logging.Logger
	LogChannel     <-chan logging.LogEntry
	Now            func() time.Time
}

// Model is the state of the featured-snaps screen.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	DebugMode      bool
	Title          string
	DefaultChannel string

	Ctx          context.Context
	Catalog      Catalog
	Reporter     Reporter
	Log          logging.Logger
	Now          func() time.Time
	Preinstalled seed.Set

	// Main screen
	Snaps       []snaps.Snap
	Selections  *snaps.SelectionStore
	Cursor      int
	ListOffset  int
	Focus       MainFocus
	ButtonIndex int

	// Detail view and dialogs
	Detail  *DetailPanel
	Overlay *Overlay

	Spinner       spinner.Model
	SpinnerActive bool
	SpinnerStarts int

	// Activity log
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	ShowLog          bool
	LogChannel       <-chan logging.LogEntry

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	Keys     KeyMap
	Reported bool
}
