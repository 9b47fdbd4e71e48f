package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const ellipsis = "…"

// TruncateString cuts s to at most width terminal cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// Clip cuts s to width cells, marking the cut with an ellipsis. ANSI
// sequences are preserved.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// PadRight pads s with spaces to width cells. ANSI sequences take no room.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// WrapLines word-wraps s to width cells. Words longer than a line are
// broken. Blank lines are kept.
func WrapLines(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// WrappedHeight is the number of lines s takes when wrapped to width.
func WrappedHeight(s string, width int) int {
	return len(WrapLines(s, width))
}
