package scrollview

import (
	"errors"
	"fmt"

	"github.com/nikbrunner/vscroll/internal/loader"
)

var (
	ErrNilContainer   = errors.New("scroll view has no container")
	ErrNilTemplate    = errors.New("scroll view has no item template")
	ErrInvalidOptions = errors.New("invalid scroll view options")
)

// Options are the knobs a host sets on a scroll view.
type Options struct {
	// ScheduleLoad spreads binding of a new window across timer ticks.
	ScheduleLoad bool

	// FrameLoadCount is the number of items bound per tick (1-10).
	// Zero selects the default.
	FrameLoadCount int

	// MaxCol and MaxRow override the grid dimensions read from the host
	// layout when positive. Anything below 1 after merging becomes 1.
	MaxCol int
	MaxRow int
}

// DefaultOptions returns synchronous binding with the default batch size.
func DefaultOptions() Options {
	return Options{
		FrameLoadCount: loader.DefaultFrameLoadCount,
	}
}

// Validate checks the options and fills in defaults.
func (o Options) Validate() (Options, error) {
	if o.FrameLoadCount == 0 {
		o.FrameLoadCount = loader.DefaultFrameLoadCount
	}
	if o.FrameLoadCount < loader.MinFrameLoadCount || o.FrameLoadCount > loader.MaxFrameLoadCount {
		return o, fmt.Errorf("%w: frame load count %d outside [%d, %d]",
			ErrInvalidOptions, o.FrameLoadCount, loader.MinFrameLoadCount, loader.MaxFrameLoadCount)
	}
	return o, nil
}
