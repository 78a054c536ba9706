package tui

import (
	"testing"
	"time"

	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/storage"
	"gotest.tools/v3/assert"
)

func TestTeaTimer_Generations(t *testing.T) {
	timer := newTeaTimer(PaneGrid)
	assert.Assert(t, timer.Cmd() == nil, "nothing scheduled")

	calls := 0
	timer.Schedule(10*time.Millisecond, func() { calls++ })
	stale := tickMsg{pane: PaneGrid, gen: timer.gen - 1}
	current := tickMsg{pane: PaneGrid, gen: timer.gen}

	assert.Assert(t, timer.Cmd() != nil)
	assert.Assert(t, timer.Cmd() == nil, "a tick is already in flight")

	timer.Fire(stale)
	assert.Equal(t, calls, 0)

	timer.Fire(current)
	assert.Equal(t, calls, 1)
	assert.Assert(t, timer.Cmd() != nil, "re-armed after firing")

	timer.Unschedule()
	timer.Fire(current)
	assert.Equal(t, calls, 1)
	assert.Assert(t, !timer.Scheduled())
	assert.Assert(t, timer.Cmd() == nil)
}

// drainTicks feeds tick messages for p until its timer goes quiet.
func drainTicks(t *testing.T, app App, p Pane) (App, int) {
	t.Helper()
	ticks := 0
	for timer := app.views[p].timer; timer.Scheduled(); ticks++ {
		if ticks > 100 {
			t.Fatal("timer never unscheduled")
		}
		m, _ := app.Update(tickMsg{pane: p, gen: timer.gen})
		app = m.(App)
	}
	return app, ticks
}

func TestApp_ScheduledLoadTicks(t *testing.T) {
	cfg := storage.DefaultConfig()
	cfg.Scroll.ScheduleLoad = true
	app, err := NewApp(AppParams{Dataset: model.Seed(30), Config: &cfg})
	assert.NilError(t, err)

	assert.Assert(t, app.Init() != nil)
	assert.Assert(t, app.Loading(PaneVertical))

	// six items at five per tick
	app, ticks := drainTicks(t, app, PaneVertical)
	assert.Equal(t, ticks, 2)
	assert.Equal(t, len(app.Visible(PaneVertical)), 6)
	assert.Assert(t, !app.Loading(PaneVertical))

	// eighteen grid cells
	app, ticks = drainTicks(t, app, PaneGrid)
	assert.Equal(t, ticks, 4)
	assert.Equal(t, len(app.Visible(PaneGrid)), 18)
}

func TestApp_ScrollRestartsScheduledLoad(t *testing.T) {
	cfg := storage.DefaultConfig()
	cfg.Scroll.ScheduleLoad = true
	cfg.Scroll.Step = 30
	app, err := NewApp(AppParams{Dataset: model.Seed(60), Config: &cfg})
	assert.NilError(t, err)

	staleGen := app.views[PaneVertical].timer.gen
	m, _ := app.Update(tickMsg{pane: PaneVertical, gen: staleGen})
	app = m.(App)
	assert.Equal(t, len(app.Visible(PaneVertical)), 5)

	// scroll before the cycle finishes: ten rows down
	m, cmd := app.Update(keyRune('j'))
	app = m.(App)
	assert.Assert(t, cmd != nil)
	assert.Equal(t, app.Window(PaneVertical).Start, 10)

	// the old generation no longer binds anything
	m, _ = app.Update(tickMsg{pane: PaneVertical, gen: staleGen})
	app = m.(App)
	visible := app.Visible(PaneVertical)
	assert.Equal(t, len(visible), 5)
	assert.Equal(t, visible[0].(model.Entry).Content, "content1")

	app, _ = drainTicks(t, app, PaneVertical)
	visible = app.Visible(PaneVertical)
	assert.Equal(t, len(visible), 6)
	assert.Equal(t, visible[0].(model.Entry).Content, "content11")
}
