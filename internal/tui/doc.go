// Package tui provides the Terminal User Interface for snaplist: the
// featured-snaps screen of a server installer.
//
// The screen is built on the Bubble Tea framework and follows a
// Model-View-Controller layout:
//
//   - Model (internal/tui/model/): screen state, the detail panel and the
//     fetching dialogs, plus the interfaces to the catalogue and the
//     reporter.
//   - View (internal/tui/view/): renders the loading, retry, main and
//     detail screens and composites dialogs and the activity log on top.
//   - Controller (internal/tui/controller/): routes messages and keys,
//     fetches snap lists and snap info, and reports Done or Cancel.
//
// Shared pieces live in components/ (layout splitting, buttons, toggles,
// dialogs, header and status bar), design/ (palette and styles) and
// utils/ (text fitting and humanized times and sizes).
//
// # Fetching
//
// The catalogue answers with fetch.Result values. A Ready answer is used
// immediately and never starts the spinner; a Pending one is awaited in a
// tea.Cmd and delivered back as a message. Dialogs can be dismissed while
// a fetch is in flight; the late answer is still applied.
//
// # Keys
//
// Arrows (or h/j/k/l) move, tab cycles focus, space toggles a snap or
// chooses a channel, enter opens details or presses the focused button,
// esc goes back, L shows the activity log and y copies the selection.
package tui
