// Package loader spreads the binding of a freshly computed window across
// several host ticks instead of doing it in one synchronous pass.
package loader

import (
	"time"

	"github.com/nikbrunner/vscroll/internal/recycler"
)

const (
	// DefaultInterval is the tick period requested from the host.
	DefaultInterval = 10 * time.Millisecond

	DefaultFrameLoadCount = 5
	MinFrameLoadCount     = 1
	MaxFrameLoadCount     = 10
)

// Timer is the host's periodic callback facility. Schedule replaces any
// previously scheduled tick; Unschedule stops it. Both are called from the
// host's own update loop, never concurrently.
type Timer interface {
	Schedule(interval time.Duration, tick func())
	Unschedule()
}

// Pool is the part of the recycler the loader writes to.
type Pool interface {
	Grow(count int)
	Apply(item recycler.Item, poolIndex int)
}

// Loader applies a queue of items to a pool in batches of frameLoadCount.
// At most one cycle is live at a time; starting a new one discards the old.
type Loader struct {
	pool           Pool
	timer          Timer
	frameLoadCount int
	interval       time.Duration

	queue      []recycler.Item
	applied    int
	ticks      int
	live       bool
	generation uint64
}

// New creates a loader. frameLoadCount is clamped to [MinFrameLoadCount, MaxFrameLoadCount].
func New(pool Pool, timer Timer, frameLoadCount int) *Loader {
	if frameLoadCount < MinFrameLoadCount {
		frameLoadCount = MinFrameLoadCount
	}
	if frameLoadCount > MaxFrameLoadCount {
		frameLoadCount = MaxFrameLoadCount
	}
	return &Loader{
		pool:           pool,
		timer:          timer,
		frameLoadCount: frameLoadCount,
		interval:       DefaultInterval,
	}
}

// Start cancels any live cycle and begins applying items, in order, from pool slot 0.
// An empty window schedules nothing.
func (l *Loader) Start(items []recycler.Item) {
	l.Cancel()
	if len(items) == 0 {
		return
	}

	l.queue = append([]recycler.Item(nil), items...)
	l.applied = 0
	l.ticks = 0
	l.live = true

	gen := l.generation
	l.timer.Schedule(l.interval, func() { l.tick(gen) })
}

// Cancel stops the live cycle and drops whatever is still queued.
// Ticks already in flight from the host become no-ops.
func (l *Loader) Cancel() {
	l.generation++
	if !l.live {
		return
	}
	l.timer.Unschedule()
	l.queue = nil
	l.live = false
}

func (l *Loader) tick(gen uint64) {
	if gen != l.generation || !l.live {
		return
	}

	count := min(l.frameLoadCount, len(l.queue))
	l.pool.Grow(l.applied + count)
	for i, item := range l.queue[:count] {
		l.pool.Apply(item, l.applied+i)
	}
	l.queue = l.queue[count:]
	l.applied += count
	l.ticks++

	if len(l.queue) == 0 {
		l.timer.Unschedule()
		l.queue = nil
		l.live = false
	}
}

// Live reports whether a cycle is in progress.
func (l *Loader) Live() bool {
	return l.live
}

// Applied returns how many items the current (or last) cycle has bound.
func (l *Loader) Applied() int {
	return l.applied
}

// Pending returns how many items are still queued.
func (l *Loader) Pending() int {
	return len(l.queue)
}

// Ticks returns how many ticks the current (or last) cycle has consumed.
func (l *Loader) Ticks() int {
	return l.ticks
}

// FrameLoadCount returns the per-tick batch size.
func (l *Loader) FrameLoadCount() int {
	return l.frameLoadCount
}
