package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/tui/design"
	"snaplist/internal/tui/utils"
)

// Header is the title bar of a screen: the title on the left and optional
// content flushed right.
type Header struct {
	Title        string
	RightContent string
	Width        int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	available := h.Width - design.HeaderStyle.GetHorizontalPadding()

	content := h.Title
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(h.Title)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+1 <= available {
			content = h.Title + strings.Repeat(" ", available-leftWidth-rightWidth) + h.RightContent
		} else {
			// The right side goes first; the title is clipped to what remains.
			content = utils.Clip(h.Title, available-rightWidth-1) + " " + h.RightContent
		}
	}

	return design.HeaderStyle.
		Width(max(h.Width, 0)).
		MaxWidth(max(h.Width, 0)).
		Render(content)
}
