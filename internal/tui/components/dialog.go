package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"snaplist/internal/tui/design"
)

// Dialog is a boxed message with an optional spinner line and buttons.
type Dialog struct {
	Message string
	Spinner string
	Buttons []string
	Focused int
}

// Render draws the dialog box. It is as wide as the message plus the frame.
func (d Dialog) Render() string {
	text := " " + d.Message
	buttons := ButtonRow(0, d.Buttons, d.Focused)
	inner := max(ansi.StringWidth(text)+1, lipgloss.Width(buttons))

	lines := []string{text}
	if d.Spinner != "" {
		lines = append(lines, design.CenterHorizontal(inner, d.Spinner))
	}
	lines = append(lines, design.CenterHorizontal(inner, buttons))

	return design.DialogStyle.Render(strings.Join(lines, "\n"))
}

// PlaceOverlay composites fg over the centre of bg, a width x height grid.
// ANSI styling on both sides of the overlay is kept.
func PlaceOverlay(bg, fg string, width, height int) string {
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)
	x := max((width-fgWidth)/2, 0)
	y := max((height-len(fgLines))/2, 0)
	return overlayAt(bg, fgLines, fgWidth, x, y, width, height)
}

func overlayAt(bg string, fgLines []string, fgWidth, x, y, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) || row >= height {
			continue
		}
		target := padCells(bgLines[row], width)

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		middle := padCells(line, fgWidth)
		pos := x + ansi.StringWidth(middle)

		right := ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		bgLines[row] = left + middle + right
	}
	return strings.Join(bgLines, "\n")
}

func padCells(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
