package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/tui/components"
	"snaplist/internal/tui/design"
	"snaplist/internal/tui/model"
	"snaplist/internal/tui/utils"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}

	var screen string
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return ""
	case model.ModeLoading:
		screen = renderLoading(m)
	case model.ModeRetry:
		screen = renderRetry(m)
	case model.ModeMain:
		screen = renderMain(m)
	case model.ModeDetail:
		screen = renderDetail(m)
	}

	if m.Overlay != nil {
		screen = components.PlaceOverlay(screen, renderDialog(m), m.Width, m.Height)
	}
	if m.ShowLog {
		screen = components.PlaceOverlay(screen, renderLogOverlay(m), m.Width, m.Height)
	}
	return screen
}

// contentWidth is the width available inside the app padding.
func contentWidth(m *model.Model) int {
	return max(m.Width-design.AppStyle.GetHorizontalFrameSize(), 0)
}

// bodyHeight is what is left between the header and the status bar.
func bodyHeight(m *model.Model) int {
	return components.NewLayout(m.Width, m.Height).CalculateContentArea(1, 1)
}

// frame puts header, body and status bar together. The body is padded or
// cut to exactly fill the space between them.
func frame(m *model.Model, header string, body []string) string {
	height := bodyHeight(m)
	if len(body) > height {
		body = body[:height]
	}
	for len(body) < height {
		body = append(body, "")
	}
	padded := design.AppStyle.Width(m.Width).Render(strings.Join(body, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, header, padded, renderStatusBar(m))
}

func renderTitle(m *model.Model) string {
	return components.NewHeader(m.Title).WithWidth(m.Width).Render()
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width).
		WithLeftText(components.FormatSelectionInfo(m.Selections.Len())).
		WithRightText(keyHints(m))
	if m.StatusBarMessage != "" {
		bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}

func keyHints(m *model.Model) string {
	switch {
	case m.ShowLog:
		return "↑/↓ scroll • y copy • esc close"
	case m.Overlay != nil:
		return "tab move • enter press"
	case m.CurrentAppMode == model.ModeMain:
		return "space select • enter details • y copy • L log"
	case m.CurrentAppMode == model.ModeDetail:
		return "space choose • tab focus • esc back"
	}
	return "L log"
}

// wrapped word-wraps text to width and returns its lines.
func wrapped(text string, width int) []string {
	return utils.WrapLines(text, width)
}

// buttonLines is the blank line and button row closing a screen.
func buttonLines(m *model.Model, focused int) []string {
	return []string{"", components.ButtonRow(contentWidth(m), m.Buttons(), focused)}
}
