package model

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"snaplist/internal/snaps"
)

// DetailFocus is the element of the detail view holding the focus.
type DetailFocus int

const (
	DetailFocusDescription DetailFocus = iota
	DetailFocusChannels
	DetailFocusClose
)

// DetailPanel is the state of the detail view of one snap: its description
// and a channel chooser. How the rows are divided between the two is
// decided at render time and handed back through ApplyLayout.
type DetailPanel struct {
	Snap   snaps.Snap
	Chosen string

	ChannelCursor int
	ChannelOffset int
	Focus         DetailFocus

	Description          viewport.Model
	DescriptionFocusable bool
	ChannelScrollbar     bool
	DescriptionRows      int
	ChannelRows          int

	// OnChannelChosen is called whenever a channel radio is chosen.
	OnChannelChosen func(name string, sel snaps.Selection)

	needsFocus bool
}

// NewDetailPanel shows s with the channel current preselected. An empty
// or unknown current leaves every radio unchosen.
func NewDetailPanel(s snaps.Snap, current string, onChosen func(string, snaps.Selection)) *DetailPanel {
	d := &DetailPanel{
		Snap:            s,
		Chosen:          current,
		Focus:           DetailFocusChannels,
		Description:     viewport.New(0, 0),
		OnChannelChosen: onChosen,
		needsFocus:      true,
	}
	for i, c := range s.Channels {
		if c.Name == current {
			d.ChannelCursor = i
			break
		}
	}
	return d
}

// DescriptionText is the description as displayed: carriage returns
// removed, surrounding whitespace trimmed.
func (d *DetailPanel) DescriptionText() string {
	return strings.TrimSpace(strings.ReplaceAll(d.Snap.Description, "\r", ""))
}

// LatestUpdate is the most recent release across the snap's channels.
func (d *DetailPanel) LatestUpdate() time.Time {
	return d.Snap.LatestUpdate()
}

// NeedsFocus reports whether the first layout is still to come.
func (d *DetailPanel) NeedsFocus() bool {
	return d.needsFocus
}

// ApplyLayout records the rows given to the description (rowsA) and the
// channel list (rowsB) against what each wanted. The description can only
// be focused when it is cut off; the channel list shows a scrollbar when it
// is. The first call moves the focus to the first focusable element.
func (d *DetailPanel) ApplyLayout(rowsA, rowsB, wantedA, wantedB int) {
	d.DescriptionRows = rowsA
	d.ChannelRows = rowsB
	d.DescriptionFocusable = rowsA < wantedA
	d.ChannelScrollbar = rowsB < wantedB
	d.Description.Height = rowsA

	if d.needsFocus {
		d.Focus = d.focusOrder()[0]
		d.needsFocus = false
	}
}

func (d *DetailPanel) focusOrder() []DetailFocus {
	var order []DetailFocus
	if d.DescriptionFocusable {
		order = append(order, DetailFocusDescription)
	}
	if len(d.Snap.Channels) > 0 {
		order = append(order, DetailFocusChannels)
	}
	return append(order, DetailFocusClose)
}

// CycleFocus moves the focus delta steps through the focusable elements.
func (d *DetailPanel) CycleFocus(delta int) {
	order := d.focusOrder()
	current := -1
	for i, f := range order {
		if f == d.Focus {
			current = i
			break
		}
	}
	if current < 0 {
		d.Focus = order[0]
		return
	}
	n := len(order)
	d.Focus = order[((current+delta)%n+n)%n]
}

// Move scrolls the description or moves the channel cursor by delta,
// depending on the focus.
func (d *DetailPanel) Move(delta int) {
	switch d.Focus {
	case DetailFocusDescription:
		if d.DescriptionFocusable {
			d.Description.SetYOffset(d.Description.YOffset + delta)
		}
	case DetailFocusChannels:
		d.ChannelCursor += delta
		if d.ChannelCursor >= len(d.Snap.Channels) {
			d.ChannelCursor = len(d.Snap.Channels) - 1
		}
		if d.ChannelCursor < 0 {
			d.ChannelCursor = 0
		}
	}
}

// ChooseChannel chooses the channel at index i, notifying OnChannelChosen.
func (d *DetailPanel) ChooseChannel(i int) {
	if i < 0 || i >= len(d.Snap.Channels) {
		return
	}
	c := d.Snap.Channels[i]
	d.Chosen = c.Name
	if d.OnChannelChosen != nil {
		d.OnChannelChosen(c.Name, c.SelectionFor())
	}
}

// Activate handles space/enter: it chooses the channel under the cursor
// or reports that Close was pressed.
func (d *DetailPanel) Activate() (closePressed bool) {
	switch d.Focus {
	case DetailFocusChannels:
		d.ChooseChannel(d.ChannelCursor)
	case DetailFocusClose:
		return true
	}
	return false
}

// FitChannels scrolls the channel list so the cursor row is visible, given
// the rendered height of every channel row.
func (d *DetailPanel) FitChannels(heights []int) {
	if len(heights) == 0 {
		d.ChannelOffset = 0
		return
	}
	if d.ChannelOffset >= len(heights) {
		d.ChannelOffset = len(heights) - 1
	}
	if d.ChannelCursor < d.ChannelOffset {
		d.ChannelOffset = d.ChannelCursor
	}
	for d.ChannelOffset < d.ChannelCursor && sum(heights[d.ChannelOffset:d.ChannelCursor+1]) > d.ChannelRows {
		d.ChannelOffset++
	}
	// Don't leave blank rows at the bottom when scrolled.
	for d.ChannelOffset > 0 && sum(heights[d.ChannelOffset-1:]) <= d.ChannelRows {
		d.ChannelOffset--
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
