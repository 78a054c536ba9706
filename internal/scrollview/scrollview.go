// Package scrollview virtualizes a scrollable list or grid of fixed-size items.
//
// A ScrollView owns a small pool of item views and keeps them bound to the
// items that intersect the viewport. Hosts register the dataset once and
// report every scroll; everything else happens inside.
package scrollview

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
	"github.com/nikbrunner/vscroll/internal/loader"
	"github.com/nikbrunner/vscroll/internal/recycler"
	"github.com/nikbrunner/vscroll/internal/window"
)

// Item is a keyed payload. Keys must be unique within one registration.
type Item = recycler.Item

// Content is the host node that item views are parented to.
type Content interface {
	recycler.Parent
	Size() geom.Size
	SetSize(size geom.Size)
	Anchor() geom.Vec2
	Children() []recycler.Node

	// Layout returns the host's auto-layout settings, if the node has any.
	Layout() (layout.Config, bool)
	// DisableLayout stops the host from arranging children itself.
	DisableLayout()
}

// Container is the scrollable host node.
type Container interface {
	ScrollOffset() geom.Vec2
	ViewportSize() geom.Size
	Content() Content
}

// Phase is the lifecycle state of a ScrollView.
type Phase int

const (
	// Idle means no data has been registered yet.
	Idle Phase = iota
	// Ready means a dataset is registered and scrolls are handled.
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "idle"
}

// Params groups the dependencies of New.
type Params struct {
	Container Container
	Template  recycler.Template
	// Timer is required when Options.ScheduleLoad is set.
	Timer   loader.Timer
	Options Options
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// ScrollView is the windowing orchestrator.
type ScrollView struct {
	container Container
	content   Content
	opts      Options
	logger    *log.Logger

	metrics layout.ItemMetrics
	config  layout.Config

	pool   *recycler.Recycler
	loader *loader.Loader

	phase     Phase
	items     []Item
	positions layout.PositionCache
	window    window.Range
}

// New builds a scroll view around a host container.
//
// The item metrics are read from one prototype instance that is never
// attached to the scene. The host's layout settings are captured and the host
// layout is switched off, since positions are computed here from now on.
func New(p Params) (*ScrollView, error) {
	if p.Container == nil {
		return nil, ErrNilContainer
	}
	content := p.Container.Content()
	if content == nil {
		return nil, fmt.Errorf("%w: container has no content node", ErrNilContainer)
	}
	if p.Template == nil {
		return nil, ErrNilTemplate
	}

	opts, err := p.Options.Validate()
	if err != nil {
		return nil, err
	}
	if opts.ScheduleLoad && p.Timer == nil {
		return nil, fmt.Errorf("%w: scheduled loading needs a timer", ErrInvalidOptions)
	}

	cfg, ok := content.Layout()
	if !ok {
		cfg = layout.Config{Mode: layout.ModeNone}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if opts.MaxCol > 0 {
		cfg.MaxCols = opts.MaxCol
	}
	if opts.MaxRow > 0 {
		cfg.MaxRows = opts.MaxRow
	}
	cfg = cfg.Normalize()
	content.DisableLayout()

	logger := p.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	sv := &ScrollView{
		container: p.Container,
		content:   content,
		opts:      opts,
		logger:    logger,
		metrics:   recycler.MetricsOf(p.Template.Instantiate()),
		config:    cfg,
		pool:      recycler.New(p.Template, content),
	}
	if opts.ScheduleLoad {
		sv.loader = loader.New(sv.pool, p.Timer, opts.FrameLoadCount)
	}

	logger.Printf("scrollview: mode=%s item=%vx%v schedule=%v",
		cfg.Mode, sv.metrics.Width, sv.metrics.Height, opts.ScheduleLoad)
	return sv, nil
}

// RegisterData replaces the dataset. Content size and every item position
// are recomputed, then the window at the current offset is bound.
func (sv *ScrollView) RegisterData(items []Item) {
	sv.items = append([]Item(nil), items...)

	size := layout.CalculateContentSize(len(sv.items), sv.container.ViewportSize(), sv.metrics, sv.config)
	sv.content.SetSize(size)

	keys := make([]string, len(sv.items))
	for i, it := range sv.items {
		keys[i] = it.Key()
	}
	box := layout.Box{Size: size, Anchor: sv.content.Anchor()}
	sv.positions = layout.BuildPositionCache(keys, box, sv.metrics, sv.config)
	sv.pool.SetPositions(sv.positions)
	sv.phase = Ready

	st := sv.state()
	r, changed := window.Calculate(st, sv.window)
	if !changed {
		// The offset is past the end of the new content. Bind the window at
		// the furthest offset the content allows; the host settles there too.
		if r, changed = window.Calculate(settle(st), sv.window); !changed {
			r = sv.window.Clamp(len(sv.items))
		}
	}
	sv.logger.Printf("scrollview: registered %d items, content %vx%v", len(sv.items), size.Width, size.Height)
	sv.bind(r)
}

// OnScroll recomputes the window for the container's current offset. It is
// a no-op when the set of realized indices does not change.
func (sv *ScrollView) OnScroll() {
	if sv.phase != Ready {
		return
	}
	r, changed := window.Calculate(sv.state(), sv.window)
	if !changed || r.Equal(sv.window) {
		return
	}
	sv.bind(r)
}

// Relayout re-registers the current dataset. Hosts call it after the
// viewport has been resized.
func (sv *ScrollView) Relayout() {
	if sv.phase != Ready {
		return
	}
	sv.RegisterData(sv.items)
}

func (sv *ScrollView) state() window.State {
	return window.State{
		Offset:   sv.container.ScrollOffset(),
		Viewport: sv.container.ViewportSize(),
		Content:  sv.content.Size(),
		Metrics:  sv.metrics,
		Config:   sv.config,
		Len:      len(sv.items),
	}
}

// settle pulls the offset of s back inside the scrollable area, keeping
// its sign.
func settle(s window.State) window.State {
	maxX := math.Max(0, s.Content.Width-s.Viewport.Width)
	maxY := math.Max(0, s.Content.Height-s.Viewport.Height)
	s.Offset = geom.Vec2{
		X: math.Copysign(math.Min(math.Abs(s.Offset.X), maxX), s.Offset.X),
		Y: math.Copysign(math.Min(math.Abs(s.Offset.Y), maxY), s.Offset.Y),
	}
	return s
}

// bind makes r the current window and hands its items to the pool.
func (sv *ScrollView) bind(r window.Range) {
	if sv.loader != nil {
		sv.loader.Cancel()
	}
	sv.window = r
	visible := sv.items[r.Start:r.End]
	sv.pool.Ensure(len(visible))

	sv.logger.Printf("scrollview: window [%d,%d) pool=%d", r.Start, r.End, sv.pool.Len())

	if sv.loader != nil {
		sv.loader.Start(visible)
		return
	}
	for i, it := range visible {
		sv.pool.Apply(it, i)
	}
}

// Window returns the current realized range.
func (sv *ScrollView) Window() window.Range {
	return sv.window
}

// Phase returns the lifecycle state.
func (sv *ScrollView) Phase() Phase {
	return sv.phase
}

// ContentSize returns the content size computed at the last registration.
func (sv *ScrollView) ContentSize() geom.Size {
	return sv.content.Size()
}

// Len returns the number of registered items.
func (sv *ScrollView) Len() int {
	return len(sv.items)
}

// Items returns the registered dataset.
func (sv *ScrollView) Items() []Item {
	return sv.items
}

// Position returns the cached content-local position of key.
func (sv *ScrollView) Position(key string) (geom.Vec2, bool) {
	return sv.positions.Lookup(key)
}

// Loading reports whether a scheduled binding cycle is in progress.
func (sv *ScrollView) Loading() bool {
	return sv.loader != nil && sv.loader.Live()
}

// PoolSize returns how many item views have been instantiated.
func (sv *ScrollView) PoolSize() int {
	return sv.pool.Len()
}

// ItemAt returns the item shown by pool slot i, or nil.
func (sv *ScrollView) ItemAt(i int) Item {
	return sv.pool.Item(i)
}

// Visible returns the items currently shown, in pool order.
func (sv *ScrollView) Visible() []Item {
	var out []Item
	for i := 0; i < sv.pool.Len(); i++ {
		if it := sv.pool.Item(i); it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Metrics returns the item metrics captured at construction.
func (sv *ScrollView) Metrics() layout.ItemMetrics {
	return sv.metrics
}

// Config returns the effective layout config.
func (sv *ScrollView) Config() layout.Config {
	return sv.config
}
