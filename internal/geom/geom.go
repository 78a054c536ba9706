// Package geom holds the small value types shared by the layout engine and its hosts.
package geom

import "math"

// Vec2 is a point or offset in host coordinates.
type Vec2 struct {
	X float64
	Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Abs returns the vector with both components made non-negative.
// Scroll offsets are reported signed by some hosts; the engine only needs magnitude.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// S is shorthand for Size{Width: w, Height: h}.
func S(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(o Size) Size {
	return Size{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}
