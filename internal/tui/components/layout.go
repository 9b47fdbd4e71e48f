package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/tui/design"
)

// MinChannelRows is the fewest rows the channel list gets when the
// description is long.
const MinChannelRows = 3

// Layout helps organize the screen into sections
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// CalculateContentArea returns the rows left once the fixed sections have
// taken theirs.
func (l *Layout) CalculateContentArea(fixed ...int) int {
	contentHeight := l.Height
	for _, h := range fixed {
		contentHeight -= h
	}
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// Split divides available rows between a description (A) and a channel
// list (B). When both fit they get what they want. Otherwise a description
// shorter than two thirds of the space is shown whole and the channels get
// the rest; a longer one leaves the channels a third of the space. Either
// way the channels keep at least MinChannelRows once that many rows are
// available. Negative inputs count as zero and the result never exceeds
// available.
func Split(available, wantedA, wantedB int) (rowsA, rowsB int) {
	available = max(available, 0)
	wantedA = max(wantedA, 0)
	wantedB = max(wantedB, 0)

	switch {
	case wantedA+wantedB <= available:
		return wantedA, wantedB
	case 3*wantedA < 2*available:
		rowsA = wantedA
		rowsB = available - rowsA
		if available >= MinChannelRows && rowsB < MinChannelRows {
			rowsB = MinChannelRows
			rowsA = available - rowsB
		}
	default:
		rowsB = max(min(wantedB, available/3), MinChannelRows)
		rowsB = min(rowsB, available)
		rowsA = available - rowsB
	}
	return max(rowsA, 0), rowsB
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 && len(components) > 1 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// ScrollIndicator draws a one-column scrollbar for a window of rows lines
// starting at offset into total lines.
func ScrollIndicator(rows, offset, total int) []string {
	if rows <= 0 {
		return nil
	}
	col := make([]string, rows)
	for i := range col {
		col[i] = design.ScrollBar
	}
	if total <= rows {
		return col
	}
	knob := offset * rows / total
	if offset+rows >= total {
		knob = rows - 1
	}
	col[min(max(knob, 0), rows-1)] = design.ScrollKnob
	return col
}
