// Package recycler keeps a grow-only pool of view instances and binds items to them.
package recycler

import (
	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
)

// Opacity values used for shown and hidden slots.
const (
	Hidden uint8 = 0
	Opaque uint8 = 255
)

// Item is anything that can be bound to a pooled view. The key is the only
// thing the pool reads; the rest of the payload goes to the view untouched.
type Item interface {
	Key() string
}

// Node is a view instance living in the host scene graph.
type Node interface {
	Size() geom.Size
	Anchor() geom.Vec2
	SetOpacity(opacity uint8)
	SetPosition(p geom.Vec2)
}

// Receiver is the optional capability of a node that renders a payload.
type Receiver interface {
	SetData(item Item)
}

// Template creates new view instances.
type Template interface {
	Instantiate() Node
}

// Parent attaches newly created nodes to the scene.
type Parent interface {
	AddChild(n Node)
}

// MetricsOf reads the item metrics from a prototype instance.
func MetricsOf(n Node) layout.ItemMetrics {
	size, anchor := n.Size(), n.Anchor()
	return layout.ItemMetrics{
		Width:   size.Width,
		Height:  size.Height,
		AnchorX: anchor.X,
		AnchorY: anchor.Y,
	}
}

type slot struct {
	node     Node
	receiver Receiver // nil when the node cannot render data
	item     Item
	visible  bool
}

// Recycler owns the pool. Its size is the largest window seen so far.
type Recycler struct {
	template  Template
	parent    Parent
	positions layout.PositionCache
	slots     []slot
}

// New creates an empty pool that instantiates from template into parent.
func New(template Template, parent Parent) *Recycler {
	return &Recycler{
		template: template,
		parent:   parent,
	}
}

// SetPositions replaces the position cache used by Apply.
func (r *Recycler) SetPositions(c layout.PositionCache) {
	r.positions = c
}

// Ensure grows the pool to at least count instances and hides every slot at
// or beyond count, starting from the tail.
func (r *Recycler) Ensure(count int) {
	r.Grow(count)
	for i := len(r.slots) - 1; i >= count && i >= 0; i-- {
		r.hide(i)
	}
}

// Grow instantiates new nodes until the pool holds count of them.
// New nodes start hidden.
func (r *Recycler) Grow(count int) {
	for len(r.slots) < count {
		n := r.template.Instantiate()
		n.SetOpacity(Hidden)
		if r.parent != nil {
			r.parent.AddChild(n)
		}
		s := slot{node: n}
		// resolve the data capability once, when the view joins the pool
		if recv, ok := n.(Receiver); ok {
			s.receiver = recv
		}
		r.slots = append(r.slots, s)
	}
}

// Apply shows the node at poolIndex, places it at the cached position of the
// item's key and hands it the item. Unknown keys are placed at the origin.
func (r *Recycler) Apply(item Item, poolIndex int) {
	if poolIndex < 0 {
		return
	}
	r.Grow(poolIndex + 1)

	s := &r.slots[poolIndex]
	s.node.SetOpacity(Opaque)
	s.node.SetPosition(r.positions.At(item.Key()))
	if s.receiver != nil {
		s.receiver.SetData(item)
	}
	s.item = item
	s.visible = true
}

func (r *Recycler) hide(i int) {
	s := &r.slots[i]
	if !s.visible {
		return
	}
	s.node.SetOpacity(Hidden)
	s.visible = false
}

// Len returns the pool size.
func (r *Recycler) Len() int {
	return len(r.slots)
}

// Visible returns how many pooled nodes are currently shown.
func (r *Recycler) Visible() int {
	count := 0
	for _, s := range r.slots {
		if s.visible {
			count++
		}
	}
	return count
}

// Node returns the node in pool slot i.
func (r *Recycler) Node(i int) Node {
	return r.slots[i].node
}

// Item returns the item last bound to slot i, or nil if the slot is hidden.
func (r *Recycler) Item(i int) Item {
	if i < 0 || i >= len(r.slots) || !r.slots[i].visible {
		return nil
	}
	return r.slots[i].item
}
