// Package window resolves a scroll offset to the contiguous range of item
// indices that must be realized as views.
package window

import (
	"math"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
)

// GridTolerance is the fraction of the viewport a grid may be scrolled past
// its end before recomputation is skipped.
const GridTolerance = 0.5

// MarginUnits is the number of extra rows (or columns) kept beyond the
// geometrically visible area so a fast scroll never exposes a gap.
const MarginUnits = 1

// Range is the half-open index range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether i lies in the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Equal reports whether both ranges cover the same indices.
// Empty ranges are equal regardless of where they sit.
func (r Range) Equal(o Range) bool {
	if r.Len() <= 0 && o.Len() <= 0 {
		return true
	}
	return r == o
}

// Clamp limits r to [0, n).
func (r Range) Clamp(n int) Range {
	return clamp(r.Start, r.End, n)
}

// State is everything the calculator needs to know about the viewport.
type State struct {
	Offset   geom.Vec2
	Viewport geom.Size
	Content  geom.Size
	Metrics  layout.ItemMetrics
	Config   layout.Config
	Len      int
}

// Calculate returns the visible range for s.
//
// When the offset lies beyond the scrollable end the previous range is
// returned unchanged and the second result is false; this keeps the window
// stable while a host overscrolls at a boundary.
func Calculate(s State, prev Range) (Range, bool) {
	cfg := s.Config.Normalize()
	off := s.Offset.Abs()

	switch cfg.Mode {
	case layout.ModeVertical:
		if off.Y > s.Content.Height-s.Viewport.Height {
			return prev, false
		}
		start, end := units(off.Y, cfg.PaddingTop, s.Metrics.Height+cfg.SpacingY, s.Viewport.Height)
		return clamp(start, end, s.Len), true

	case layout.ModeHorizontal:
		if off.X > s.Content.Width-s.Viewport.Width {
			return prev, false
		}
		start, end := units(off.X, cfg.PaddingLeft, s.Metrics.Width+cfg.SpacingX, s.Viewport.Width)
		return clamp(start, end, s.Len), true

	case layout.ModeGrid:
		if pastGridEnd(off, s.Viewport, s.Content) {
			return prev, false
		}
		var start, end int
		if cfg.GridAxis == layout.VerticalFirst {
			start, end = units(off.X, cfg.PaddingLeft, s.Metrics.Width+cfg.SpacingX, s.Viewport.Width)
		} else {
			start, end = units(off.Y, cfg.PaddingTop, s.Metrics.Height+cfg.SpacingY, s.Viewport.Height)
		}
		perLine := cfg.PerLine()
		return clamp(start*perLine, end*perLine, s.Len), true

	default:
		return clamp(0, s.Len, s.Len), true
	}
}

// units returns the first and one-past-last row (or column) touched by the
// viewport at offset, including the margin.
func units(offset, padding, unit, viewport float64) (int, int) {
	if unit <= 0 {
		return 0, 0
	}
	visible := int(math.Ceil(viewport/unit)) + MarginUnits
	start := int(math.Floor((offset - padding) / unit))
	return start, start + visible
}

func pastGridEnd(off geom.Vec2, viewport, content geom.Size) bool {
	return off.X-viewport.Width*GridTolerance > content.Width-viewport.Width ||
		off.Y-viewport.Height*GridTolerance > content.Height-viewport.Height
}

func clamp(start, end, n int) Range {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < 0 {
		end = 0
	}
	if start > end {
		start = end
	}
	return Range{Start: start, End: end}
}
