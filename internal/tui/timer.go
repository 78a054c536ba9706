package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg delivers one scheduled loader tick to a pane.
type tickMsg struct {
	pane Pane
	gen  uint64
}

// teaTimer implements loader.Timer on top of tea.Tick. Schedule and
// Unschedule only record intent; Cmd turns it into the next tick command.
// Every (un)schedule bumps the generation so ticks already in flight are
// dropped when they arrive.
type teaTimer struct {
	pane     Pane
	interval time.Duration
	tick     func()
	gen      uint64
	armed    bool
}

func newTeaTimer(pane Pane) *teaTimer {
	return &teaTimer{pane: pane}
}

func (t *teaTimer) Schedule(interval time.Duration, tick func()) {
	t.interval = interval
	t.tick = tick
	t.gen++
	t.armed = false
}

func (t *teaTimer) Unschedule() {
	t.tick = nil
	t.gen++
	t.armed = false
}

// Scheduled reports whether a tick function is registered.
func (t *teaTimer) Scheduled() bool {
	return t.tick != nil
}

// Cmd returns the command for the next tick, or nil when nothing is
// scheduled or a tick is already on its way.
func (t *teaTimer) Cmd() tea.Cmd {
	if t.tick == nil || t.armed {
		return nil
	}
	t.armed = true
	msg := tickMsg{pane: t.pane, gen: t.gen}
	return tea.Tick(t.interval, func(time.Time) tea.Msg { return msg })
}

// Fire runs the scheduled tick for msg. Stale ticks are ignored.
func (t *teaTimer) Fire(msg tickMsg) {
	if msg.gen != t.gen || t.tick == nil {
		return
	}
	t.armed = false
	t.tick()
}
