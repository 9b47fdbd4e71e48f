package controller

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaplist/internal/fetch"
	"snaplist/internal/seed"
	"snaplist/internal/snaps"
	"snaplist/internal/tui/model"
	"snaplist/pkg/logging"
)

type fakeCatalog struct {
	list      fetch.Result[[]snaps.Snap]
	info      map[string]fetch.Result[snaps.Snap]
	listCalls int
	infoCalls int
}

func (c *fakeCatalog) SnapList(context.Context) fetch.Result[[]snaps.Snap] {
	c.listCalls++
	return c.list
}

func (c *fakeCatalog) SnapInfo(_ context.Context, s snaps.Snap) fetch.Result[snaps.Snap] {
	c.infoCalls++
	if res, ok := c.info[s.Name]; ok {
		return res
	}
	return fetch.Ready(s)
}

type fakeReporter struct {
	done      []map[string]snaps.Selection
	cancelled int
}

func (r *fakeReporter) Done(selections map[string]snaps.Selection) {
	r.done = append(r.done, selections)
}

func (r *fakeReporter) Cancel() {
	r.cancelled++
}

var (
	snapA = snaps.Snap{Name: "a", Summary: "first", Confinement: snaps.ConfinementStrict}
	snapB = snaps.Snap{Name: "b", Summary: "second", Confinement: snaps.ConfinementStrict}
	snapC = snaps.Snap{Name: "c", Summary: "third", Confinement: snaps.ConfinementClassic}
)

func withChannels(s snaps.Snap) snaps.Snap {
	s.Channels = []snaps.ChannelInfo{
		{Name: "stable", Version: "1.0", Revision: "10", Confinement: s.Confinement},
		{Name: "edge", Version: "1.1", Revision: "12", Confinement: snaps.ConfinementClassic},
	}
	return s
}

func newTestModel(cat *fakeCatalog, preinstalled ...string) (*model.Model, *fakeReporter) {
	rep := &fakeReporter{}
	set := seed.Set{}
	for _, name := range preinstalled {
		set[name] = struct{}{}
	}
	m := model.InitialModel(model.Config{
		Title:        "Featured Server Snaps",
		Catalog:      cat,
		Reporter:     rep,
		Preinstalled: set,
		Log:          logging.Discard(),
	})
	m.Width, m.Height = 100, 30
	return m, rep
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = Update(msg, m)
	}
	return cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestLoad_ReadyNeverStartsSpinner(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapB, snapC})}
	m, _ := newTestModel(cat)

	cmd := loadSnapList(m)

	assert.Nil(t, cmd)
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Zero(t, m.SpinnerStarts)
	assert.False(t, m.SpinnerActive)
}

func TestLoad_ExcludesPreinstalled(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapB, snapC})}
	m, _ := newTestModel(cat, "b")

	loadSnapList(m)

	require.Len(t, m.Snaps, 2)
	assert.Equal(t, "a", m.Snaps[0].Name)
	assert.Equal(t, "c", m.Snaps[1].Name)
}

func TestLoad_PendingShowsSpinnerUntilArrival(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Pending(func() []snaps.Snap {
		return []snaps.Snap{snapA}
	})}
	m, _ := newTestModel(cat)

	cmd := loadSnapList(m)
	require.NotNil(t, cmd)
	assert.Equal(t, model.ModeLoading, m.CurrentAppMode)
	assert.True(t, m.SpinnerActive)
	assert.Equal(t, 1, m.SpinnerStarts)

	msg := model.AwaitSnapListCmd(cat.list)()
	press(m, msg)

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.False(t, m.SpinnerActive)
	assert.Equal(t, 1, m.SpinnerStarts)
}

func TestLoad_EmptyOffersRetry(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready[[]snaps.Snap](nil)}
	m, rep := newTestModel(cat)

	loadSnapList(m)
	require.Equal(t, model.ModeRetry, m.CurrentAppMode)
	assert.Equal(t, []string{model.ButtonTryAgain, model.ButtonContinue}, m.Buttons())

	cat.list = fetch.Ready([]snaps.Snap{snapA})
	press(m, keyMsg(tea.KeyEnter))

	assert.Equal(t, 2, cat.listCalls)
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Empty(t, rep.done)
}

func TestRetry_ContinueReportsDone(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready[[]snaps.Snap](nil)}
	m, rep := newTestModel(cat)
	loadSnapList(m)

	cmd := press(m, keyMsg(tea.KeyRight), keyMsg(tea.KeyEnter))

	assert.True(t, isQuit(t, cmd))
	require.Len(t, rep.done, 1)
	assert.Empty(t, rep.done[0])
}

func TestLoading_ContinueReportsDoneAndDropsLateList(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Pending(func() []snaps.Snap { return []snaps.Snap{snapA} })}
	m, rep := newTestModel(cat)
	loadSnapList(m)

	cmd := press(m, keyMsg(tea.KeyEnter))
	assert.True(t, isQuit(t, cmd))
	assert.Len(t, rep.done, 1)

	press(m, model.SnapListLoadedMsg{Snaps: []snaps.Snap{snapA}})
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	assert.Empty(t, m.Snaps)
}

func TestMain_SpaceTogglesDefaultSelection(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapC})}
	m, _ := newTestModel(cat)
	loadSnapList(m)

	press(m, keyMsg(tea.KeySpace))
	sel, ok := m.Selections.Get("a")
	require.True(t, ok)
	assert.Equal(t, snaps.Selection{Channel: "stable", IsClassic: false}, sel)
	assert.True(t, m.IsChecked("a"))

	press(m, keyMsg(tea.KeyDown), keyMsg(tea.KeySpace))
	sel, ok = m.Selections.Get("c")
	require.True(t, ok)
	assert.True(t, sel.IsClassic)

	press(m, keyMsg(tea.KeyUp), keyMsg(tea.KeySpace))
	assert.False(t, m.Selections.Has("a"))
	assert.Equal(t, 1, m.Selections.Len())
}

func TestMain_CursorStopsAtEnds(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapB})}
	m, _ := newTestModel(cat)
	loadSnapList(m)

	press(m, keyMsg(tea.KeyUp))
	assert.Equal(t, 0, m.Cursor)

	press(m, keyMsg(tea.KeyDown))
	assert.Equal(t, 1, m.Cursor)

	// Moving past the last row reaches the buttons.
	press(m, keyMsg(tea.KeyDown))
	assert.Equal(t, 1, m.Cursor)
	assert.Equal(t, model.FocusButtons, m.Focus)

	press(m, keyMsg(tea.KeyUp))
	assert.Equal(t, model.FocusList, m.Focus)
}

func TestMain_DoneReportsSelectionsOnce(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapB})}
	m, rep := newTestModel(cat)
	loadSnapList(m)

	press(m, keyMsg(tea.KeySpace), keyMsg(tea.KeyTab))
	require.Equal(t, model.FocusButtons, m.Focus)

	cmd := press(m, keyMsg(tea.KeyEnter))
	assert.True(t, isQuit(t, cmd))
	require.Len(t, rep.done, 1)
	assert.Equal(t, map[string]snaps.Selection{"a": {Channel: "stable"}}, rep.done[0])

	press(m, keyMsg(tea.KeyEsc), keyMsg(tea.KeyCtrlC))
	assert.Len(t, rep.done, 1)
	assert.Zero(t, rep.cancelled)
}

func TestMain_BackAndEscCancel(t *testing.T) {
	for name, keys := range map[string][]tea.Msg{
		"esc":    {keyMsg(tea.KeyEsc)},
		"back":   {keyMsg(tea.KeyTab), keyMsg(tea.KeyRight), keyMsg(tea.KeyEnter)},
		"ctrl+c": {keyMsg(tea.KeyCtrlC)},
	} {
		t.Run(name, func(t *testing.T) {
			cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA})}
			m, rep := newTestModel(cat)
			loadSnapList(m)

			cmd := press(m, keys...)

			assert.True(t, isQuit(t, cmd))
			assert.Equal(t, 1, rep.cancelled)
			assert.Empty(t, rep.done)
			assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
		})
	}
}

func TestInfo_ReadyOpensDetailWithCurrentChannel(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Ready(withChannels(snapA))},
	}
	m, _ := newTestModel(cat)
	loadSnapList(m)
	m.Selections.Set("a", snaps.Selection{Channel: "edge", IsClassic: true})

	cmd := press(m, keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Zero(t, m.SpinnerStarts)
	assert.Nil(t, m.Overlay)
	require.Equal(t, model.ModeDetail, m.CurrentAppMode)
	require.NotNil(t, m.Detail)
	assert.Equal(t, "edge", m.Detail.Chosen)
	assert.Equal(t, 1, m.Detail.ChannelCursor)
}

func TestInfo_ChoosingChannelUpdatesSelection(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Ready(withChannels(snapA))},
	}
	m, _ := newTestModel(cat)
	loadSnapList(m)
	press(m, keyMsg(tea.KeyEnter))
	require.Equal(t, model.ModeDetail, m.CurrentAppMode)

	m.Detail.Focus = model.DetailFocusChannels
	press(m, keyMsg(tea.KeyDown), keyMsg(tea.KeySpace))

	sel, ok := m.Selections.Get("a")
	require.True(t, ok)
	assert.Equal(t, snaps.Selection{Channel: "edge", IsClassic: true}, sel)
	assert.True(t, m.IsChecked("a"))

	press(m, keyMsg(tea.KeyEsc))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Nil(t, m.Detail)
}

func TestInfo_ClosePressedReturnsToMain(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Ready(withChannels(snapA))},
	}
	m, rep := newTestModel(cat)
	loadSnapList(m)
	press(m, keyMsg(tea.KeyEnter))

	m.Detail.Focus = model.DetailFocusClose
	press(m, keyMsg(tea.KeyEnter))

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Zero(t, rep.cancelled)
}

func TestInfo_EmptyChannelsOfferRetry(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Ready(snapA)},
	}
	m, _ := newTestModel(cat)
	loadSnapList(m)

	press(m, keyMsg(tea.KeyEnter))

	require.NotNil(t, m.Overlay)
	assert.Equal(t, model.OverlayFetchingFailed, m.Overlay.Kind)
	assert.Equal(t, "Fetching info for a failed", m.Overlay.Message())
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)

	// Try again is focused first.
	cat.info["a"] = fetch.Ready(withChannels(snapA))
	press(m, keyMsg(tea.KeyEnter))

	assert.Equal(t, 2, cat.infoCalls)
	assert.Nil(t, m.Overlay)
	assert.Equal(t, model.ModeDetail, m.CurrentAppMode)
}

func TestInfo_FailedDialogCancel(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Ready(snapA)},
	}
	m, rep := newTestModel(cat)
	loadSnapList(m)
	press(m, keyMsg(tea.KeyEnter))

	press(m, keyMsg(tea.KeyTab), keyMsg(tea.KeyEnter))

	assert.Nil(t, m.Overlay)
	assert.Equal(t, 1, cat.infoCalls)
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Zero(t, rep.cancelled, "closing a dialog is not cancelling the screen")
}

func TestInfo_PendingShowsDialog(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Pending(func() snaps.Snap { return withChannels(snapA) })},
	}
	m, _ := newTestModel(cat)
	loadSnapList(m)

	cmd := press(m, keyMsg(tea.KeyEnter))

	require.NotNil(t, cmd)
	require.NotNil(t, m.Overlay)
	assert.Equal(t, model.OverlayFetchingInfo, m.Overlay.Kind)
	assert.True(t, m.SpinnerActive)

	dialog := m.Overlay
	press(m, model.AwaitSnapInfoCmd(cat.info["a"], dialog)())

	assert.Nil(t, m.Overlay)
	assert.True(t, dialog.Closed())
	assert.False(t, m.SpinnerActive)
	assert.Equal(t, model.ModeDetail, m.CurrentAppMode)
}

func TestInfo_LateResultAfterCancelIsApplied(t *testing.T) {
	cat := &fakeCatalog{
		list: fetch.Ready([]snaps.Snap{snapA}),
		info: map[string]fetch.Result[snaps.Snap]{"a": fetch.Pending(func() snaps.Snap { return withChannels(snapA) })},
	}
	m, rep := newTestModel(cat)
	loadSnapList(m)
	press(m, keyMsg(tea.KeyEnter))
	dialog := m.Overlay
	require.NotNil(t, dialog)

	press(m, keyMsg(tea.KeyEsc))
	assert.Nil(t, m.Overlay)
	assert.False(t, m.SpinnerActive)
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Zero(t, rep.cancelled, "esc on a dialog only dismisses it")

	press(m, model.SnapInfoLoadedMsg{Snap: withChannels(snapA), Dialog: dialog})

	assert.Equal(t, model.ModeDetail, m.CurrentAppMode)
	assert.Nil(t, m.Overlay)
	assert.Equal(t, 1, m.SpinnerStarts)
}

func TestInfo_LateResultLeavesNewerDialogOpen(t *testing.T) {
	m, _ := newTestModel(&fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapB})})
	loadSnapList(m)

	stale := model.NewOverlay(model.OverlayFetchingInfo, "a")
	stale.Close()
	current := model.NewOverlay(model.OverlayFetchingInfo, "b")
	m.Overlay = current
	m.StartSpinner()

	press(m, model.SnapInfoLoadedMsg{Snap: withChannels(snapA), Dialog: stale})

	assert.Same(t, current, m.Overlay)
	assert.True(t, m.SpinnerActive)
}

func TestInfo_LateFailureLeavesNewerDialogOpen(t *testing.T) {
	m, _ := newTestModel(&fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA, snapB})})
	loadSnapList(m)

	stale := model.NewOverlay(model.OverlayFetchingInfo, "a")
	stale.Close()
	current := model.NewOverlay(model.OverlayFetchingInfo, "b")
	m.Overlay = current
	m.StartSpinner()

	press(m, model.SnapInfoLoadedMsg{Snap: snapA, Dialog: stale})

	assert.Same(t, current, m.Overlay)
	assert.False(t, current.Closed())
	assert.True(t, m.SpinnerActive)
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestInfo_LateFailureAfterCancelOffersRetry(t *testing.T) {
	m, _ := newTestModel(&fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA})})
	loadSnapList(m)

	stale := model.NewOverlay(model.OverlayFetchingInfo, "a")
	stale.Close()

	press(m, model.SnapInfoLoadedMsg{Snap: snapA, Dialog: stale})

	require.NotNil(t, m.Overlay)
	assert.Equal(t, model.OverlayFetchingFailed, m.Overlay.Kind)
	assert.Equal(t, "a", m.Overlay.SnapName)
}

func TestSpinnerTickIgnoredWhenStopped(t *testing.T) {
	m, _ := newTestModel(&fakeCatalog{})
	m.StopSpinner()

	cmd := press(m, m.Spinner.Tick())
	assert.Nil(t, cmd)
}

func TestLogOverlay(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA})}
	m, rep := newTestModel(cat)
	loadSnapList(m)

	press(m, runeMsg("L"))
	assert.True(t, m.ShowLog)

	// Keys go to the overlay, not the list.
	press(m, keyMsg(tea.KeySpace))
	assert.False(t, m.Selections.Has("a"))

	press(m, keyMsg(tea.KeyEsc))
	assert.False(t, m.ShowLog)
	assert.Zero(t, rep.cancelled)
}

func TestNewLogEntryIsAppended(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	m, _ := newTestModel(&fakeCatalog{})
	m.LogChannel = ch

	cmd := press(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelInfo, Subsystem: "Store", Message: "hello"}})

	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "[INFO] [Store] hello")
	assert.True(t, m.ActivityLogDirty)
	assert.NotNil(t, cmd, "listening continues")
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(&fakeCatalog{})
	press(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
	assert.Positive(t, m.LogViewport.Width)
}

func TestAppModel_InitAppliesReadyList(t *testing.T) {
	cat := &fakeCatalog{list: fetch.Ready([]snaps.Snap{snapA})}
	m, _ := newTestModel(cat)
	app := NewAppModel(m)

	app.Init()

	assert.Equal(t, model.ModeMain, app.Model().CurrentAppMode)
	assert.Zero(t, app.Model().SpinnerStarts)
	assert.NotEmpty(t, app.View())
}
