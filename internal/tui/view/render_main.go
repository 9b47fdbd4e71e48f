package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/snaps"
	"snaplist/internal/tui/components"
	"snaplist/internal/tui/design"
	"snaplist/internal/tui/model"
	"snaplist/internal/tui/utils"
)

const (
	loadingExcerpt = "Loading server snaps from store, please wait..."
	retryMessage   = "Sorry, loading snaps from the store failed."
	mainExcerpt    = "These are popular snaps in server environments. Select or deselect with SPACE, press ENTER to see more details of the package, publisher and versions available."
)

func renderLoading(m *model.Model) string {
	width := contentWidth(m)
	body := excerptLines(loadingExcerpt, width)
	body = append(body, design.CenterHorizontal(width, m.Spinner.View()))
	body = append(body, buttonLines(m, m.ButtonIndex)...)
	return frame(m, renderTitle(m), body)
}

func renderRetry(m *model.Model) string {
	width := contentWidth(m)
	body := wrapped(retryMessage, width)
	body = append(body, buttonLines(m, m.ButtonIndex)...)
	return frame(m, renderTitle(m), body)
}

func excerptLines(text string, width int) []string {
	lines := wrapped(text, width)
	for i, l := range lines {
		lines[i] = design.ExcerptStyle.Render(l)
	}
	return append(lines, "")
}

// mainColumns are the widths of the main table's columns. publisher is 0
// when the column is omitted.
type mainColumns struct {
	name      int
	publisher int
	summary   int
}

func layoutMainColumns(list []snaps.Snap, width int) mainColumns {
	var cols mainColumns
	for _, s := range list {
		cols.name = max(cols.name, lipgloss.Width(components.RenderToggle(components.Unchecked, s.Name)))
		cols.publisher = max(cols.publisher, lipgloss.Width(publisherText(s)))
	}
	arrow := lipgloss.Width(design.RowArrow)

	rest := width - cols.name - cols.publisher - arrow - 3*design.ColumnGap
	if rest < design.MinSummaryWidth {
		// Drop the publisher before squeezing the summary.
		cols.publisher = 0
		rest = width - cols.name - arrow - 2*design.ColumnGap
	}
	cols.summary = max(rest, 0)
	return cols
}

func publisherText(s snaps.Snap) string {
	if !s.Verified {
		return s.Publisher
	}
	return s.Publisher + design.CheckMark
}

func styledPublisher(s snaps.Snap) string {
	if !s.Verified {
		return s.Publisher
	}
	return s.Publisher + design.VerifiedStyle.Render(design.CheckMark)
}

func renderMainRow(m *model.Model, s snaps.Snap, cols mainColumns, focused bool) string {
	gap := strings.Repeat(" ", design.ColumnGap)

	var b strings.Builder
	b.WriteString(utils.PadRight(components.RenderToggle(components.StateOf(m.IsChecked(s.Name)), s.Name), cols.name))
	if cols.publisher > 0 {
		b.WriteString(gap)
		pub := styledPublisher(s)
		b.WriteString(pub + strings.Repeat(" ", max(cols.publisher-lipgloss.Width(pub), 0)))
	}
	b.WriteString(gap)
	b.WriteString(utils.PadRight(utils.Clip(s.Summary, cols.summary), cols.summary))
	b.WriteString(gap)
	b.WriteString(design.RowArrow)

	if focused {
		return design.RowFocusedStyle.Render(b.String())
	}
	return design.RowStyle.Render(b.String())
}

func renderMain(m *model.Model) string {
	width := contentWidth(m)
	body := excerptLines(mainExcerpt, width)

	buttonFocus := -1
	if m.Focus == model.FocusButtons {
		buttonFocus = m.ButtonIndex
	}
	buttons := buttonLines(m, buttonFocus)

	listHeight := max(bodyHeight(m)-len(body)-len(buttons), 0)
	scrollList(m, listHeight)

	cols := layoutMainColumns(m.Snaps, width)
	end := min(m.ListOffset+listHeight, len(m.Snaps))
	for i := m.ListOffset; i < end; i++ {
		focused := m.Focus == model.FocusList && i == m.Cursor && m.Overlay == nil
		body = append(body, renderMainRow(m, m.Snaps[i], cols, focused))
	}
	for i := end - m.ListOffset; i < listHeight; i++ {
		body = append(body, "")
	}

	body = append(body, buttons...)
	return frame(m, renderTitle(m), body)
}

// scrollList keeps the cursor row inside the visible window.
func scrollList(m *model.Model, height int) {
	if height <= 0 {
		return
	}
	if m.Cursor < m.ListOffset {
		m.ListOffset = m.Cursor
	}
	if m.Cursor >= m.ListOffset+height {
		m.ListOffset = m.Cursor - height + 1
	}
	if maxOffset := max(len(m.Snaps)-height, 0); m.ListOffset > maxOffset {
		m.ListOffset = maxOffset
	}
}
