package model

import "fmt"

// OverlayKind tells the dialogs apart.
type OverlayKind int

const (
	// OverlayFetchingInfo is shown while snap info loads.
	OverlayFetchingInfo OverlayKind = iota
	// OverlayFetchingFailed offers to retry a failed info fetch.
	OverlayFetchingFailed
)

// Overlay is a small dialog drawn over the current screen.
type Overlay struct {
	Kind     OverlayKind
	SnapName string
	Button   int

	closed bool
}

// NewOverlay creates an open dialog about name.
func NewOverlay(kind OverlayKind, name string) *Overlay {
	return &Overlay{Kind: kind, SnapName: name}
}

// Close marks the dialog closed. It reports whether this call closed it;
// later calls do nothing.
func (o *Overlay) Close() bool {
	if o == nil || o.closed {
		return false
	}
	o.closed = true
	return true
}

// Closed reports whether Close has been called.
func (o *Overlay) Closed() bool {
	return o == nil || o.closed
}

// Message is the dialog text.
func (o *Overlay) Message() string {
	if o.Kind == OverlayFetchingFailed {
		return fmt.Sprintf("Fetching info for %s failed", o.SnapName)
	}
	return fmt.Sprintf("Fetching info for %s", o.SnapName)
}

// Buttons lists the dialog's buttons in order.
func (o *Overlay) Buttons() []string {
	if o.Kind == OverlayFetchingFailed {
		return []string{ButtonTryAgain, ButtonCancel}
	}
	return []string{ButtonCancel}
}

// MoveButton moves the button focus by delta, wrapping around.
func (o *Overlay) MoveButton(delta int) {
	n := len(o.Buttons())
	o.Button = ((o.Button+delta)%n + n) % n
}

// FocusedButton is the label of the focused button.
func (o *Overlay) FocusedButton() string {
	buttons := o.Buttons()
	if o.Button < 0 || o.Button >= len(buttons) {
		return buttons[0]
	}
	return buttons[o.Button]
}
