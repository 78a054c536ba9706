// Package snapshot rasterizes a scene viewport to an image.
package snapshot

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/nikbrunner/vscroll/internal/scene"
)

// Theme holds the colours used when drawing.
type Theme struct {
	Background color.Color
	Fill       color.Color
	Border     color.Color
	Text       color.Color
}

// DefaultTheme is a light theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.White,
		Fill:       color.RGBA{R: 0xe8, G: 0xf0, B: 0xfe, A: 0xff},
		Border:     color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff},
		Text:       color.Black,
	}
}

// Renderer draws viewports at a fixed scale of pixels per scene unit.
type Renderer struct {
	context *gg.Context
	scale   float64
	theme   Theme
}

// NewRenderer creates a renderer sized for viewport.
func NewRenderer(vp *scene.Viewport, scale float64, theme Theme) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	b := vp.Bounds()
	w, h := int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)
	return &Renderer{
		context: gg.NewContext(max(w, 1), max(h, 1)),
		scale:   scale,
		theme:   theme,
	}
}

// Render clears the canvas and draws every shown item of vp.
func (r *Renderer) Render(vp *scene.Viewport) {
	dc := r.context
	dc.SetColor(r.theme.Background)
	dc.Clear()

	for _, p := range scene.Placements(vp) {
		r.drawItem(p)
	}
}

func (r *Renderer) drawItem(p scene.Placement) {
	dc := r.context
	x := float64(p.Rect.Min.X) * r.scale
	y := float64(p.Rect.Min.Y) * r.scale
	w := float64(p.Rect.Dx()) * r.scale
	h := float64(p.Rect.Dy()) * r.scale

	// inset by half a line so the stroke stays inside the cell
	dc.DrawRectangle(x+1, y+1, w-2, h-2)
	dc.SetColor(r.theme.Fill)
	dc.FillPreserve()
	dc.SetColor(r.theme.Border)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetColor(r.theme.Text)
	dc.DrawStringAnchored(p.Label.Text, x+w/2, y+h/2, 0.5, 0.5)
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the canvas to filename.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
