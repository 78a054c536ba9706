// Package layout computes content size and item positions for fixed-size items.
//
// Every function here is pure: results depend only on the item count, the
// item metrics, the layout config and the viewport or content box passed in.
package layout

import (
	"math"

	"github.com/nikbrunner/vscroll/internal/geom"
)

// CalculateContentSize returns the size the content node needs to hold n items.
// The result is never smaller than the viewport on either axis.
func CalculateContentSize(n int, viewport geom.Size, m ItemMetrics, cfg Config) geom.Size {
	cfg = cfg.Normalize()

	var size geom.Size
	switch cfg.Mode {
	case ModeGrid:
		var cols, rows int
		if cfg.GridAxis == VerticalFirst {
			rows = cfg.MaxRows
			cols = ceilDiv(n, rows)
		} else {
			cols = cfg.MaxCols
			rows = ceilDiv(n, cols)
		}
		size = geom.Size{
			Width:  span(cols, m.Width, cfg.SpacingX) + cfg.PaddingLeft + cfg.PaddingRight,
			Height: span(rows, m.Height, cfg.SpacingY) + cfg.PaddingTop + cfg.PaddingBottom,
		}
	case ModeVertical:
		size = geom.Size{
			Width:  m.Width,
			Height: span(n, m.Height, cfg.SpacingY) + cfg.PaddingTop + cfg.PaddingBottom,
		}
	case ModeHorizontal:
		size = geom.Size{
			Width:  span(n, m.Width, cfg.SpacingX) + cfg.PaddingLeft + cfg.PaddingRight,
			Height: m.Height,
		}
	default:
		return viewport
	}

	return size.Max(viewport)
}

// span is the extent of count items laid end to end with spacing between them.
func span(count int, extent, spacing float64) float64 {
	return float64(count)*extent + float64(count-1)*spacing
}

func ceilDiv(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(d)))
}
