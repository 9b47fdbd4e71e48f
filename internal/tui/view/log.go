package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/tui/design"
	"snaplist/internal/tui/model"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

// logOverlaySize is the outer size of the log overlay for the terminal.
func logOverlaySize(m *model.Model) (width, height int) {
	return m.Width * 8 / 10, m.Height * 7 / 10
}

// SizeLogViewport fits the log viewport inside the overlay frame and the
// title line.
func SizeLogViewport(m *model.Model) {
	width, height := logOverlaySize(m)
	m.LogViewport.Width = max(width-design.LogOverlayStyle.GetHorizontalFrameSize(), 0)
	m.LogViewport.Height = max(height-design.LogOverlayStyle.GetVerticalFrameSize()-1, 0)
}

// RefreshLogViewport restyles the activity log into the viewport when new
// lines arrived, keeping the view pinned to the bottom if it was there.
func RefreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.ActivityLogDirty = false
}

func renderLogOverlay(m *model.Model) string {
	SizeLogViewport(m)
	RefreshLogViewport(m)

	width, height := logOverlaySize(m)
	title := design.OverlayTitleStyle.Render(logOverlayTitle)
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.
		Width(max(width-design.LogOverlayStyle.GetHorizontalBorderSize(), 0)).
		Height(max(height-design.LogOverlayStyle.GetVerticalBorderSize(), 0)).
		Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
