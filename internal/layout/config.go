package layout

import (
	"errors"
	"fmt"
)

// Mode selects how items are arranged inside the content node.
type Mode int

const (
	ModeNone Mode = iota
	ModeGrid
	ModeVertical
	ModeHorizontal
)

// String returns the config-file spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeVertical:
		return "vertical"
	case ModeHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// ParseMode is the inverse of Mode.String. Unknown names map to ModeNone.
func ParseMode(s string) Mode {
	switch s {
	case "grid":
		return ModeGrid
	case "vertical":
		return ModeVertical
	case "horizontal":
		return ModeHorizontal
	default:
		return ModeNone
	}
}

// GridAxis is the fill priority of a grid.
type GridAxis int

const (
	// HorizontalFirst fills a row of MaxCols items before starting the next row.
	HorizontalFirst GridAxis = iota
	// VerticalFirst fills a column of MaxRows items before starting the next column.
	VerticalFirst
)

// String returns the config-file spelling of the axis.
func (a GridAxis) String() string {
	if a == VerticalFirst {
		return "vertical"
	}
	return "horizontal"
}

// ParseGridAxis is the inverse of GridAxis.String.
func ParseGridAxis(s string) GridAxis {
	if s == "vertical" {
		return VerticalFirst
	}
	return HorizontalFirst
}

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid layout config")

// Config holds the geometric parameters of a layout.
// It is read once from the host and treated as immutable afterwards.
type Config struct {
	Mode Mode

	SpacingX float64
	SpacingY float64

	PaddingTop    float64
	PaddingBottom float64
	PaddingLeft   float64
	PaddingRight  float64

	GridAxis GridAxis

	// MaxCols is the column count of a horizontal-first grid.
	MaxCols int
	// MaxRows is the row count of a vertical-first grid.
	MaxRows int
}

// ItemMetrics is the uniform size and anchor of every item.
type ItemMetrics struct {
	Width   float64
	Height  float64
	AnchorX float64
	AnchorY float64
}

// DefaultConfig returns a single-column vertical stack with no spacing.
func DefaultConfig() Config {
	return Config{
		Mode:    ModeVertical,
		MaxCols: 1,
		MaxRows: 1,
	}
}

// Normalize clamps MaxCols and MaxRows to at least 1.
func (c Config) Normalize() Config {
	if c.MaxCols < 1 {
		c.MaxCols = 1
	}
	if c.MaxRows < 1 {
		c.MaxRows = 1
	}
	return c
}

// Validate rejects negative spacing and padding.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"spacingX", c.SpacingX},
		{"spacingY", c.SpacingY},
		{"paddingTop", c.PaddingTop},
		{"paddingBottom", c.PaddingBottom},
		{"paddingLeft", c.PaddingLeft},
		{"paddingRight", c.PaddingRight},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// PerLine returns how many items share one row (horizontal-first) or one
// column (vertical-first) of a grid. Stacks always report 1.
func (c Config) PerLine() int {
	if c.Mode != ModeGrid {
		return 1
	}
	c = c.Normalize()
	if c.GridAxis == VerticalFirst {
		return c.MaxRows
	}
	return c.MaxCols
}
