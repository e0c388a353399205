package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/render"
	"github.com/gogpu/ggedit/shape"
)

func testPage(t *testing.T) *shape.Page {
	t.Helper()
	style := shape.NewStyle("red", shape.ARGB(255, 0, 0, 0), shape.ARGB(255, 255, 0, 0), 1)
	f := shape.NewFactory(style)
	f.IsFilled = true
	f.IsStroked = false
	page := f.Page("page", 40, 20)
	page.Current().Add(f.Rectangle(10, 5, 30, 15))
	return page
}

func rgba8(img image.Image, x, y int) (r, g, b, a uint8) {
	r32, g32, b32, a32 := img.At(x, y).RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8), uint8(a32 >> 8)
}

func TestRegistered(t *testing.T) {
	assert.True(t, render.IsRegistered(Name))
	exp, err := render.NewBackend(Name, nil)
	require.NoError(t, err)
	assert.IsType(t, &Exporter{}, exp)
}

func TestRenderPage(t *testing.T) {
	e := NewExporter(render.NewRenderer())
	s, err := e.Render(testPage(t))
	require.NoError(t, err)
	defer s.Close()

	img := s.Image()
	assert.Equal(t, image.Pt(40, 20), img.Bounds().Size())

	r, g, b, a := rgba8(img, 20, 10)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, [4]uint8{r, g, b, a}, "inside the rectangle")

	r, g, b, a = rgba8(img, 2, 2)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{r, g, b, a}, "page background")
}

func TestRenderPageAtZoom(t *testing.T) {
	r := render.NewRenderer()
	r.Zoom = 2
	s, err := NewExporter(r).Render(testPage(t))
	require.NoError(t, err)
	defer s.Close()

	img := s.Image()
	assert.Equal(t, image.Pt(80, 40), img.Bounds().Size())
	red, _, _, _ := rgba8(img, 58, 28)
	assert.Equal(t, uint8(255), red)
	_, green, _, _ := rgba8(img, 58, 28)
	assert.Equal(t, uint8(0), green)
}

func TestExportPNG(t *testing.T) {
	var buf bytes.Buffer
	e := NewExporter(render.NewRenderer())
	require.NoError(t, e.Export(&buf, testPage(t)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), img.Bounds().Size())
}

func TestExportRejectsOtherContainers(t *testing.T) {
	e := NewExporter(render.NewRenderer())
	f := shape.NewFactory(nil)
	for _, c := range []any{f.Document("doc"), f.Project("proj"), "page"} {
		err := e.Export(&bytes.Buffer{}, c)
		assert.True(t, errors.Is(err, render.ErrUnsupportedContainer), "%T", c)
	}
}

func TestEmptyPage(t *testing.T) {
	page := shape.NewFactory(nil).Page("empty", 0, 10)
	_, err := NewExporter(render.NewRenderer()).Render(page)
	assert.ErrorContains(t, err, "no area")
}

func TestSurfaceDrawsEveryPrimitive(t *testing.T) {
	s := NewSurface(64, 64)
	defer s.Close()
	pen := ggedit.Pen{Color: ggedit.RGBA{A: 1}, Width: 2, Cap: ggedit.LineCapRound, Dashes: []float64{4, 2}}
	fill := ggedit.Paint{Color: ggedit.RGBA{R: 1, A: 1}}

	p := ggedit.NewPath()
	p.MoveTo(2, 2)
	p.QuadraticTo(10, 20, 20, 2)
	p.CubicTo(25, 10, 30, 10, 40, 2)
	p.Close()

	assert.NotPanics(t, func() {
		s.FillPath(p, fill)
		s.StrokePath(p, pen)
		s.FillEllipse(ggedit.XYWH(10, 10, 20, 10), fill)
		s.StrokeEllipse(ggedit.XYWH(10, 10, 20, 10), pen)
		s.StrokeRect(ggedit.XYWH(1, 1, 60, 60), ggedit.Pen{Color: ggedit.RGBA{A: 1}, Width: 1})
		s.DrawText("Hi", ggedit.Pt(5, 50), ggedit.Font{Size: 12, Bold: true}, fill)
		s.DrawImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), ggedit.XYWH(40, 40, 10, 10))
		s.DrawImage(nil, ggedit.XYWH(0, 0, 1, 1))
	})

	r, _, _, a := rgba8(s.Image(), 20, 15)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(255), a)
}

func TestGoSourceVariants(t *testing.T) {
	for _, tt := range []struct{ bold, italic bool }{{false, false}, {true, false}, {false, true}, {true, true}} {
		src, err := goSource(tt.bold, tt.italic)
		require.NoError(t, err)
		assert.NotNil(t, src)
	}
}
