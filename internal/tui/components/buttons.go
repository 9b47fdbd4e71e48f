package components

import (
	"snaplist/internal/tui/design"
)

// RenderButton draws "[ label ]", highlighted when focused.
func RenderButton(label string, focused bool) string {
	text := "[ " + label + " ]"
	if focused {
		return design.ButtonFocusedStyle.Render(text)
	}
	return design.ButtonStyle.Render(text)
}

// ButtonRow draws buttons side by side centred in width. focused is the
// index of the focused button, or -1.
func ButtonRow(width int, labels []string, focused int) string {
	rendered := make([]string, len(labels))
	for i, label := range labels {
		rendered[i] = RenderButton(label, i == focused)
	}
	return design.CenterHorizontal(width, JoinHorizontal(design.ColumnGap, rendered...))
}
