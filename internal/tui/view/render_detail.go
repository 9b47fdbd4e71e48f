package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"snaplist/internal/snaps"
	"snaplist/internal/tui/components"
	"snaplist/internal/tui/design"
	"snaplist/internal/tui/model"
	"snaplist/internal/tui/utils"
)

// infoBlockRows is the license line, a blank and the table heading.
const infoBlockRows = 3

func detailPublisher(s snaps.Snap) string {
	text := design.InfoMinorStyle.Render("by: ") + s.Publisher
	if s.Verified {
		text += design.VerifiedStyle.Render(" " + design.CheckMark)
	}
	return text
}

// channelTable lays out the channel rows and their heading in aligned
// columns.
type channelTable struct {
	cells   [][]string
	widths  []int
	heading string
}

func newChannelTable(d *model.DetailPanel, now time.Time) channelTable {
	var t channelTable
	for _, c := range d.Snap.Channels {
		t.cells = append(t.cells, []string{
			components.RenderToggle(components.StateOf(c.Name == d.Chosen), c.Name),
			c.Version,
			"(" + c.Revision + ")",
			utils.HumanizeSize(c.Size),
			utils.FormatDatetime(now, c.ReleasedAt),
			string(c.Confinement),
		})
	}

	t.widths = make([]int, 6)
	headings := []string{"CHANNEL", "", "", "SIZE", "PUBLISHED", "CONFINEMENT"}
	for i, h := range headings {
		t.widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.cells {
		for i, cell := range row {
			t.widths[i] = max(t.widths[i], lipgloss.Width(cell))
		}
	}
	// VERSION spans the version and revision columns.
	if span := t.widths[1] + design.ColumnGap + t.widths[2]; span < len("VERSION") {
		t.widths[2] += len("VERSION") - span
	}

	gap := strings.Repeat(" ", design.ColumnGap)
	t.heading = strings.Join([]string{
		utils.PadRight("CHANNEL", t.widths[0]),
		utils.PadRight("VERSION", t.widths[1]+design.ColumnGap+t.widths[2]),
		utils.PadRight("SIZE", t.widths[3]),
		utils.PadRight("PUBLISHED", t.widths[4]),
		"CONFINEMENT",
	}, gap)
	return t
}

func (t channelTable) row(i int) string {
	cells := make([]string, len(t.cells[i]))
	for j, cell := range t.cells[i] {
		if j == len(cells)-1 {
			cells[j] = cell
			continue
		}
		cells[j] = utils.PadRight(cell, t.widths[j])
	}
	return strings.Join(cells, strings.Repeat(" ", design.ColumnGap))
}

// wrappedRows wraps every row to width.
func (t channelTable) wrappedRows(width int) [][]string {
	rows := make([][]string, len(t.cells))
	for i := range t.cells {
		rows[i] = utils.WrapLines(t.row(i), width)
	}
	return rows
}

func renderInfoBlock(d *model.DetailPanel, t channelTable, width int, now time.Time) []string {
	half := width / 2
	license := utils.Clip(design.InfoMinorStyle.Render("LICENSE: ")+d.Snap.License, max(half-design.ColumnGap, 0))
	updated := utils.Clip(design.InfoMinorStyle.Render("LAST UPDATED: ")+utils.FormatDatetime(now, d.LatestUpdate()), max(width-half, 0))
	return []string{
		utils.PadRight(license, half) + updated,
		"",
		design.InfoMinorStyle.Render(utils.Clip(t.heading, width)),
	}
}

func renderDetail(m *model.Model) string {
	d := m.Detail
	if d == nil {
		return renderMain(m)
	}
	width := contentWidth(m)
	now := m.Now()

	header := components.NewHeader(d.Snap.Name).
		WithRightContent(detailPublisher(d.Snap)).
		WithWidth(m.Width).
		Render()

	summary := wrapped(d.Snap.Summary, width)
	if len(summary) == 0 {
		summary = []string{""}
	}
	closeFocus := -1
	if d.Focus == model.DetailFocusClose {
		closeFocus = 0
	}
	buttons := buttonLines(m, closeFocus)

	fixed := len(summary) + 1 + 1 + infoBlockRows + 1 + len(buttons)
	available := max(bodyHeight(m)-fixed, 0)

	descWidth := max(width-1, 1)
	description := wrapped(d.DescriptionText(), descWidth)
	table := newChannelTable(d, now)
	wantedB := 0
	for i := range table.cells {
		wantedB += utils.WrappedHeight(table.row(i), width)
	}

	rowsA, rowsB := components.Split(available, len(description), wantedB)
	d.ApplyLayout(rowsA, rowsB, len(description), wantedB)

	body := append([]string{}, summary...)
	body = append(body, "")
	body = append(body, renderDescription(d, description, descWidth)...)
	body = append(body, "")

	infoWidth := width
	if d.ChannelScrollbar {
		infoWidth = width - 1
	}
	body = append(body, renderInfoBlock(d, table, infoWidth, now)...)
	body = append(body, "")

	channelLines := renderChannels(d, table, infoWidth)
	for len(channelLines) < available-rowsA {
		channelLines = append(channelLines, "")
	}
	body = append(body, channelLines...)
	body = append(body, buttons...)

	return frame(m, header, body)
}

func renderDescription(d *model.DetailPanel, lines []string, width int) []string {
	d.Description.Width = width
	d.Description.SetContent(strings.Join(lines, "\n"))

	offset := min(d.Description.YOffset, max(len(lines)-d.DescriptionRows, 0))
	out := make([]string, d.DescriptionRows)
	for i := range out {
		if offset+i < len(lines) {
			out[i] = utils.PadRight(lines[offset+i], width)
		}
	}
	if d.DescriptionFocusable {
		bar := components.ScrollIndicator(d.DescriptionRows, offset, len(lines))
		for i := range out {
			knob := bar[i]
			if d.Focus == model.DetailFocusDescription {
				knob = design.SpinnerStyle.Render(knob)
			}
			out[i] = utils.PadRight(out[i], width) + knob
		}
	}
	return out
}

func renderChannels(d *model.DetailPanel, t channelTable, width int) []string {
	rows := t.wrappedRows(width)
	heights := make([]int, len(rows))
	total := 0
	for i, lines := range rows {
		heights[i] = len(lines)
		total += heights[i]
	}
	d.FitChannels(heights)

	var out []string
	skipped := 0
	for i := 0; i < d.ChannelOffset; i++ {
		skipped += heights[i]
	}
	for i := d.ChannelOffset; i < len(rows) && len(out) < d.ChannelRows; i++ {
		for _, line := range rows[i] {
			if len(out) == d.ChannelRows {
				break
			}
			line = utils.PadRight(line, width)
			if d.Focus == model.DetailFocusChannels && i == d.ChannelCursor {
				line = design.RowFocusedStyle.Render(line)
			}
			out = append(out, line)
		}
	}
	for len(out) < d.ChannelRows {
		out = append(out, strings.Repeat(" ", width))
	}

	if d.ChannelScrollbar {
		bar := components.ScrollIndicator(d.ChannelRows, skipped, total)
		for i := range out {
			out[i] += bar[i]
		}
	}
	return out
}
