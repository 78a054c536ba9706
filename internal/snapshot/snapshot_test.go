package snapshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
	"github.com/nikbrunner/vscroll/internal/scene"
	"github.com/nikbrunner/vscroll/internal/scrollview"
	"gotest.tools/v3/assert"
)

type item string

func (i item) Key() string { return string(i) }

func newList(t *testing.T) *scene.Viewport {
	t.Helper()
	vp := scene.NewViewport(geom.S(12, 6), scene.NewContent(geom.V(0, 1), layout.Config{Mode: layout.ModeVertical}))
	sv, err := scrollview.New(scrollview.Params{
		Container: vp,
		Template:  &scene.Prefab{Size: geom.S(10, 3), Anchor: geom.V(0.5, 0.5)},
	})
	assert.NilError(t, err)
	sv.RegisterData([]scrollview.Item{item("a"), item("b"), item("c")})
	return vp
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRenderer_Size(t *testing.T) {
	vp := newList(t)
	r := NewRenderer(vp, 10, DefaultTheme())
	r.Render(vp)

	b := r.Image().Bounds()
	assert.Equal(t, b.Dx(), 120)
	assert.Equal(t, b.Dy(), 60)
}

func TestRenderer_DrawsItemCells(t *testing.T) {
	vp := newList(t)
	theme := DefaultTheme()
	r := NewRenderer(vp, 10, theme)
	r.Render(vp)
	img := r.Image()

	// column 0 is outside every item (items span cells 1..10)
	assert.Assert(t, sameColor(img.At(5, 15), theme.Background))
	// inside the first item, away from its label and border
	assert.Assert(t, sameColor(img.At(20, 6), theme.Fill))
	// the second item starts at row 3
	assert.Assert(t, sameColor(img.At(20, 36), theme.Fill))
}

func TestRenderer_SavePNG(t *testing.T) {
	vp := newList(t)
	r := NewRenderer(vp, 4, DefaultTheme())
	r.Render(vp)

	path := filepath.Join(t.TempDir(), "view.png")
	assert.NilError(t, r.SavePNG(path))

	f, err := os.Open(path)
	assert.NilError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	assert.NilError(t, err)
	assert.Equal(t, img.Bounds().Dx(), 48)
}

func TestNewRenderer_NonPositiveScale(t *testing.T) {
	vp := newList(t)
	r := NewRenderer(vp, 0, DefaultTheme())
	assert.Equal(t, r.Image().Bounds().Dx(), 12)
}
