package scene

import (
	"image"
	"math"
	"strings"

	"github.com/nikbrunner/vscroll/internal/tui/panes"
)

// Placement is a shown label and the viewport cells it covers.
// The rectangle may extend past the viewport; callers clip.
type Placement struct {
	Label *Label
	Rect  image.Rectangle
}

// Placements returns every shown label of v in child order.
func Placements(v *Viewport) []Placement {
	c := v.content
	cs, ca := c.Size(), c.Anchor()
	off := v.offset

	var out []Placement
	for _, child := range c.Children() {
		l, ok := child.(*Label)
		if !ok || !l.Shown() {
			continue
		}
		p, s, a := l.Position(), l.Size(), l.Anchor()
		left := p.X - s.Width*a.X + cs.Width*ca.X - off.X
		top := cs.Height*(1-ca.Y) - p.Y - s.Height*(1-a.Y) - off.Y
		x, y := int(math.Round(left)), int(math.Round(top))
		out = append(out, Placement{
			Label: l,
			Rect:  image.Rect(x, y, x+int(math.Round(s.Width)), y+int(math.Round(s.Height))),
		})
	}
	return out
}

// Bounds returns the viewport rectangle in cells.
func (v *Viewport) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(v.size.Width), int(v.size.Height))
}

var textConfig = panes.TextConfig{Ellipsis: "…"}

// Render draws v as plain text, one string per viewport row. Labels at least
// three rows tall get a box; shorter ones are a single line of text.
func Render(v *Viewport) []string {
	bounds := v.Bounds()
	grid := make([][]rune, bounds.Dy())
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", bounds.Dx()))
	}

	set := func(x, y int, r rune) {
		if image.Pt(x, y).In(bounds) {
			grid[y][x] = r
		}
	}
	text := func(x, y, width int, s string) {
		for i, r := range []rune(panes.Cell(s, width, textConfig)) {
			set(x+i, y, r)
		}
	}

	for _, p := range Placements(v) {
		r := p.Rect
		if r.Dy() >= 3 && r.Dx() >= 2 {
			for x := r.Min.X + 1; x < r.Max.X-1; x++ {
				set(x, r.Min.Y, '─')
				set(x, r.Max.Y-1, '─')
			}
			for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
				set(r.Min.X, y, '│')
				set(r.Max.X-1, y, '│')
			}
			set(r.Min.X, r.Min.Y, '┌')
			set(r.Max.X-1, r.Min.Y, '┐')
			set(r.Min.X, r.Max.Y-1, '└')
			set(r.Max.X-1, r.Max.Y-1, '┘')
			text(r.Min.X+1, r.Min.Y+r.Dy()/2, r.Dx()-2, p.Label.Text)
			continue
		}
		text(r.Min.X, r.Min.Y, r.Dx(), p.Label.Text)
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}
