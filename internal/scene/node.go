// Package scene is a minimal retained scene graph measured in terminal cells.
//
// It implements the host side of a scroll view: a viewport with a scroll
// offset, a content node that parents item views, and label views that
// render the item bound to them. Coordinates follow the engine convention
// (y up, origin at the node anchor); Render converts them to rows and columns.
package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/recycler"
)

// Node is the base of every scene object.
type Node struct {
	ID       uuid.UUID
	size     geom.Size
	anchor   geom.Vec2
	position geom.Vec2
	opacity  uint8
}

// NewNode returns an opaque node at the origin.
func NewNode(size geom.Size, anchor geom.Vec2) *Node {
	return &Node{
		ID:      uuid.New(),
		size:    size,
		anchor:  anchor,
		opacity: recycler.Opaque,
	}
}

func (n *Node) Size() geom.Size          { return n.size }
func (n *Node) SetSize(size geom.Size)   { n.size = size }
func (n *Node) Anchor() geom.Vec2        { return n.anchor }
func (n *Node) Position() geom.Vec2      { return n.position }
func (n *Node) SetPosition(p geom.Vec2)  { n.position = p }
func (n *Node) Opacity() uint8           { return n.opacity }
func (n *Node) SetOpacity(opacity uint8) { n.opacity = opacity }
func (n *Node) Shown() bool              { return n.opacity > 0 }

// Formatter turns a bound item into the text a label shows.
type Formatter func(item recycler.Item) string

// DefaultFormatter shows the item's String method when it has one and its
// key otherwise.
func DefaultFormatter(item recycler.Item) string {
	if s, ok := item.(fmt.Stringer); ok {
		return s.String()
	}
	return item.Key()
}

// Label is an item view that shows one line of text.
type Label struct {
	*Node
	Text   string
	format Formatter
	item   recycler.Item
	binds  int
}

// NewLabel creates a label whose text comes from format.
func NewLabel(size geom.Size, anchor geom.Vec2, format Formatter) *Label {
	if format == nil {
		format = DefaultFormatter
	}
	return &Label{Node: NewNode(size, anchor), format: format}
}

// SetData binds item to the label.
func (l *Label) SetData(item recycler.Item) {
	l.item = item
	l.Text = l.format(item)
	l.binds++
}

// Item returns the bound item, or nil.
func (l *Label) Item() recycler.Item {
	return l.item
}

// Binds returns how many times data was bound to this label.
func (l *Label) Binds() int {
	return l.binds
}

// Prefab instantiates labels of one size.
type Prefab struct {
	Size   geom.Size
	Anchor geom.Vec2
	Format Formatter

	created int
}

// Instantiate implements recycler.Template.
func (p *Prefab) Instantiate() recycler.Node {
	p.created++
	return NewLabel(p.Size, p.Anchor, p.Format)
}

// Created returns how many labels the prefab has made, prototypes included.
func (p *Prefab) Created() int {
	return p.created
}
