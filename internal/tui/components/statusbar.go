package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/tui/design"
	"snaplist/internal/tui/model"
	"snaplist/internal/tui/utils"
)

var statusStyles = map[model.MessageType]lipgloss.Style{
	model.StatusBarSuccess: design.StatusBarSuccessStyle,
	model.StatusBarError:   design.StatusBarErrorStyle,
	model.StatusBarWarning: design.StatusBarWarningStyle,
	model.StatusBarInfo:    design.StatusBarInfoStyle,
}

// StatusBar is the bottom line: selection count on the left, key hints on
// the right. A transient message replaces both.
type StatusBar struct {
	width       int
	left, right string
	message     string
	kind        model.MessageType
}

func NewStatusBar(width int) *StatusBar {
	return &StatusBar{width: max(width, 0)}
}

func (s *StatusBar) WithMessage(message string, kind model.MessageType) *StatusBar {
	s.message, s.kind = message, kind
	return s
}

func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.left = text
	return s
}

func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.right = text
	return s
}

func (s *StatusBar) Render() string {
	style := design.StatusBarStyle
	if s.message != "" {
		if st, ok := statusStyles[s.kind]; ok {
			style = st
		}
	}
	inner := s.width - style.GetHorizontalPadding()
	return style.Width(s.width).MaxWidth(s.width).Render(s.content(inner))
}

func (s *StatusBar) content(inner int) string {
	if s.message != "" {
		return utils.Clip(s.message, inner)
	}
	if s.left == "" || s.right == "" {
		return utils.Clip(s.left+s.right, inner)
	}
	// The hints are dropped when both do not fit.
	gap := inner - lipgloss.Width(s.left) - lipgloss.Width(s.right)
	if gap <= 0 {
		return utils.Clip(s.left, inner)
	}
	return s.left + strings.Repeat(" ", gap) + s.right
}

// FormatSelectionInfo summarises the selection for the status bar.
func FormatSelectionInfo(selected int) string {
	if selected == 0 {
		return "Nothing selected"
	}
	return utils.Plural(selected, "snap") + " selected"
}
