package layout

import "github.com/nikbrunner/vscroll/internal/geom"

// Box describes the content node the items are placed in.
type Box struct {
	Size   geom.Size
	Anchor geom.Vec2
}

// CalculatePosition returns the content-local position of item i.
//
// Coordinates follow the host convention: y grows upward and the origin is the
// content node's anchor point. The returned point is where the item's own
// anchor must sit so that its visual edges land on its cell.
func CalculatePosition(i int, box Box, m ItemMetrics, cfg Config) geom.Vec2 {
	cfg = cfg.Normalize()

	var left, top float64
	switch cfg.Mode {
	case ModeGrid:
		var row, col int
		if cfg.GridAxis == VerticalFirst {
			row, col = i%cfg.MaxRows, i/cfg.MaxRows
		} else {
			row, col = i/cfg.MaxCols, i%cfg.MaxCols
		}
		left = cfg.PaddingLeft + float64(col)*(m.Width+cfg.SpacingX)
		top = cfg.PaddingTop + float64(row)*(m.Height+cfg.SpacingY)
	case ModeVertical:
		// centred on x
		left = (box.Size.Width - m.Width) / 2
		top = cfg.PaddingTop + float64(i)*(m.Height+cfg.SpacingY)
	case ModeHorizontal:
		// centred on y
		left = cfg.PaddingLeft + float64(i)*(m.Width+cfg.SpacingX)
		top = (box.Size.Height - m.Height) / 2
	default:
		return geom.Vec2{}
	}

	contentLeft := -box.Size.Width * box.Anchor.X
	contentTop := box.Size.Height * (1 - box.Anchor.Y)

	return geom.Vec2{
		X: contentLeft + left + m.Width*m.AnchorX,
		Y: contentTop - top - m.Height*(1-m.AnchorY),
	}
}

// PositionCache maps item keys to content-local positions.
type PositionCache map[string]geom.Vec2

// BuildPositionCache computes the position of every key, in order.
// A duplicated key keeps the position of its last occurrence.
func BuildPositionCache(keys []string, box Box, m ItemMetrics, cfg Config) PositionCache {
	cache := make(PositionCache, len(keys))
	for i, k := range keys {
		cache[k] = CalculatePosition(i, box, m, cfg)
	}
	return cache
}

// Lookup returns the cached position of key.
func (c PositionCache) Lookup(key string) (geom.Vec2, bool) {
	p, ok := c[key]
	return p, ok
}

// At returns the cached position of key, or the origin when the key is unknown.
func (c PositionCache) At(key string) geom.Vec2 {
	return c[key]
}
