package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants, in terminal cells.
const (
	padX      = 1
	padWideX  = 2
	ColumnGap = 2

	// MinSummaryWidth is the narrowest the summary column gets before the
	// publisher column is dropped.
	MinSummaryWidth = 40
)

// Glyphs used across the screen.
const (
	CheckMark  = "✓"
	RowArrow   = "▸"
	ScrollBar  = "│"
	ScrollKnob = "█"
)

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Installer palette: orange accents, aubergine header.
var (
	orange    = adaptive("#E95420", "#F47B4D")
	aubergine = adaptive("#77216F", "#A8509F")
	green     = adaptive("#0E8420", "#3DBB4F")
	red       = adaptive("#C7162B", "#EF4444")
	amber     = adaptive("#CC7900", "#F59E0B")
	slate     = adaptive("#335280", "#5D8AC7")

	paper   = adaptive("#FFFFFF", "#111111")
	ink     = adaptive("#111111", "#F7F7F7")
	inkSoft = adaptive("#666666", "#A5A5A5")
	inkFade = adaptive("#999999", "#6B6B6B")
	rule    = adaptive("#CDCDCD", "#4A4A4A")
	shelf   = adaptive("#EDEDED", "#2C2C2C")
	glow    = adaptive("#FBE3DA", "#4A2A20")
	card    = adaptive("#FFFFFF", "#1A1A1A")
)

var (
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(inkSoft)

	// InfoMinorStyle labels values in the detail view ("LICENSE:", headings).
	InfoMinorStyle = lipgloss.NewStyle().Foreground(inkFade)

	VerifiedStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, padX)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(aubergine).
			Foreground(paper).
			Padding(0, padWideX)

	ExcerptStyle = lipgloss.NewStyle().Foreground(inkSoft)

	StatusBarStyle = lipgloss.NewStyle().
			Background(shelf).
			Foreground(ink).
			Padding(0, padWideX).
			Height(1)

	StatusBarSuccessStyle = statusBar(green)
	StatusBarErrorStyle   = statusBar(red)
	StatusBarWarningStyle = statusBar(amber)
	StatusBarInfoStyle    = statusBar(slate)
)

func statusBar(bg lipgloss.AdaptiveColor) lipgloss.Style {
	return StatusBarStyle.Background(bg).Foreground(paper)
}

var (
	RowStyle        = lipgloss.NewStyle().Foreground(ink)
	RowFocusedStyle = lipgloss.NewStyle().Background(glow).Foreground(ink).Bold(true)

	ButtonStyle        = lipgloss.NewStyle().Foreground(ink)
	ButtonFocusedStyle = lipgloss.NewStyle().Background(orange).Foreground(paper).Bold(true)
)

var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(rule).
			Background(card).
			Foreground(ink).
			Padding(0, padX)

	LogOverlayStyle = DialogStyle.Border(lipgloss.RoundedBorder())

	OverlayTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(ink)

	SpinnerStyle = lipgloss.NewStyle().Foreground(orange)
)

var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ink)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(amber)
	LogErrorStyle = lipgloss.NewStyle().Foreground(red)
	LogDebugStyle = lipgloss.NewStyle().Foreground(inkFade).Italic(true)
)

// CenterHorizontal pads content so it sits in the middle of width cells.
func CenterHorizontal(width int, content string) string {
	w := lipgloss.Width(content)
	if w >= width {
		return content
	}
	return lipgloss.NewStyle().PaddingLeft((width - w) / 2).Width(width).Render(content)
}
