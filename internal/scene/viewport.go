package scene

import (
	"math"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
	"github.com/nikbrunner/vscroll/internal/recycler"
	"github.com/nikbrunner/vscroll/internal/scrollview"
)

// Content parents the item views of one viewport.
type Content struct {
	*Node
	children      []recycler.Node
	layout        layout.Config
	layoutEnabled bool
}

// NewContent returns a content node with an active auto-layout.
func NewContent(anchor geom.Vec2, cfg layout.Config) *Content {
	return &Content{
		Node:          NewNode(geom.Size{}, anchor),
		layout:        cfg,
		layoutEnabled: true,
	}
}

// AddChild implements recycler.Parent.
func (c *Content) AddChild(n recycler.Node) {
	c.children = append(c.children, n)
}

func (c *Content) Children() []recycler.Node {
	return c.children
}

func (c *Content) Layout() (layout.Config, bool) {
	return c.layout, c.layoutEnabled
}

func (c *Content) DisableLayout() {
	c.layoutEnabled = false
}

// LayoutEnabled reports whether the auto-layout is still active.
func (c *Content) LayoutEnabled() bool {
	return c.layoutEnabled
}

// Viewport is a scroll container. The offset is kept as a non-negative
// distance from the content's top-left corner; ScrollOffset reports it the
// way scroll hosts usually do, with x negated.
type Viewport struct {
	size    geom.Size
	offset  geom.Vec2
	content *Content
}

// NewViewport wraps content in a viewport of the given size.
func NewViewport(size geom.Size, content *Content) *Viewport {
	return &Viewport{size: size, content: content}
}

// ScrollOffset implements scrollview.Container.
func (v *Viewport) ScrollOffset() geom.Vec2 {
	return geom.Vec2{X: -v.offset.X, Y: v.offset.Y}
}

// ViewportSize implements scrollview.Container.
func (v *Viewport) ViewportSize() geom.Size {
	return v.size
}

// Content implements scrollview.Container.
func (v *Viewport) Content() scrollview.Content {
	if v.content == nil {
		return nil
	}
	return v.content
}

// ContentNode returns the concrete content node.
func (v *Viewport) ContentNode() *Content {
	return v.content
}

// Offset returns the scroll distance from the content's top-left corner.
func (v *Viewport) Offset() geom.Vec2 {
	return v.offset
}

// MaxOffset returns the furthest the viewport can scroll on each axis.
func (v *Viewport) MaxOffset() geom.Vec2 {
	cs := v.content.Size()
	return geom.Vec2{
		X: math.Max(0, cs.Width-v.size.Width),
		Y: math.Max(0, cs.Height-v.size.Height),
	}
}

// ScrollTo moves to off, clamped to the scrollable area.
func (v *Viewport) ScrollTo(off geom.Vec2) {
	limit := v.MaxOffset()
	v.offset = geom.Vec2{
		X: math.Min(math.Max(off.X, 0), limit.X),
		Y: math.Min(math.Max(off.Y, 0), limit.Y),
	}
}

// ScrollBy moves by d, clamped.
func (v *Viewport) ScrollBy(d geom.Vec2) {
	v.ScrollTo(geom.Vec2{X: v.offset.X + d.X, Y: v.offset.Y + d.Y})
}

// Clamp pulls the offset back inside the scrollable area. Hosts call it
// after the content has shrunk.
func (v *Viewport) Clamp() {
	v.ScrollTo(v.offset)
}

// SetOffset moves to off without clamping, as an elastic host does while
// the user drags past an edge.
func (v *Viewport) SetOffset(off geom.Vec2) {
	v.offset = off
}

// Resize changes the viewport size and re-clamps the offset.
func (v *Viewport) Resize(size geom.Size) {
	v.size = size
	v.ScrollTo(v.offset)
}
