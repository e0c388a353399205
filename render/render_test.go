package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// recorder is a Surface that logs every call.
type recorder struct {
	ops  []string
	pens []ggedit.Pen
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) Save()                    { r.add("save") }
func (r *recorder) Restore()                 { r.add("restore") }
func (r *recorder) Translate(dx, dy float64) { r.add("translate %g %g", dx, dy) }
func (r *recorder) Scale(sx, sy float64)     { r.add("scale %g %g", sx, sy) }
func (r *recorder) FillPath(p *ggedit.Path, _ ggedit.Paint) {
	r.add("fillpath %d", len(p.Elements()))
}
func (r *recorder) StrokePath(p *ggedit.Path, pen ggedit.Pen) {
	r.pens = append(r.pens, pen)
	r.add("strokepath %d", len(p.Elements()))
}
func (r *recorder) FillRect(rc ggedit.Rect, _ ggedit.Paint) { r.add("fillrect %v", rc) }
func (r *recorder) StrokeRect(rc ggedit.Rect, pen ggedit.Pen) {
	r.pens = append(r.pens, pen)
	r.add("strokerect %v", rc)
}
func (r *recorder) FillEllipse(rc ggedit.Rect, _ ggedit.Paint) { r.add("fillellipse %v", rc) }
func (r *recorder) StrokeEllipse(rc ggedit.Rect, pen ggedit.Pen) {
	r.pens = append(r.pens, pen)
	r.add("strokeellipse %v", rc)
}
func (r *recorder) DrawText(s string, _ ggedit.Point, _ ggedit.Font, _ ggedit.Paint) {
	r.add("text %s", s)
}
func (r *recorder) DrawImage(img image.Image, dst ggedit.Rect) {
	r.add("image %v", img.Bounds().Size())
}

func (r *recorder) reset() {
	r.ops = nil
	r.pens = nil
}

func newFactory() *shape.Factory {
	return shape.NewFactory(shape.NewStyle("test", shape.ARGB(255, 0, 0, 0), shape.ARGB(255, 255, 0, 0), 2))
}

func TestNodeBuiltOnceAndReused(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	rect := f.Rectangle(0, 0, 10, 10)
	dc := &recorder{}

	r.DrawShapes(dc, []shape.Shape{rect})
	n := r.Node(rect)
	require.NotNil(t, n)
	assert.False(t, rect.IsDirty(), "commit should clear the dirty state")

	r.DrawShapes(dc, []shape.Shape{rect})
	assert.Same(t, n, r.Node(rect))
	assert.Equal(t, 1, r.Cache.Len())
}

func TestNodeRebuildsOnPointMove(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	rect := f.Rectangle(0, 0, 10, 10)
	dc := &recorder{}

	r.DrawShapes(dc, []shape.Shape{rect})
	rect.BottomRight.Set(20, 20)
	dc.reset()
	r.DrawShapes(dc, []shape.Shape{rect})

	assert.Equal(t, []string{"strokerect " + fmt.Sprint(ggedit.XYWH(0, 0, 20, 20))}, dc.ops)
}

func TestSharedPointRebuildsBothShapes(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	a := f.Line(0, 0, 10, 0)
	b := f.LineFrom(a.End, f.Point(10, 10))
	dc := &recorder{}
	r.DrawShapes(dc, []shape.Shape{a, b})

	a.End.Set(20, 0)
	r.DrawShapes(dc, []shape.Shape{a, b})

	assert.Equal(t, ggedit.Pt(10, 0), r.Node(a).Center)
	assert.Equal(t, ggedit.Pt(15, 5), r.Node(b).Center)
}

func TestSharedPointAcrossLayers(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	page := f.Page("p", 100, 100)
	a := f.Line(0, 0, 10, 0)
	b := f.LineFrom(a.End, f.Point(10, 10))
	page.Current().Add(a)
	top := f.Layer("top")
	top.Add(b)
	page.Layers = append(page.Layers, top)
	dc := &recorder{}
	r.DrawPage(dc, page)

	a.End.Set(20, 0)
	r.DrawPage(dc, page)

	assert.Equal(t, ggedit.Pt(15, 5), r.Node(b).Center)
	assert.False(t, a.End.IsDirty())
}

func TestDrawLayerLeavesShapesDirty(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	l := f.Layer("l")
	rect := f.Rectangle(0, 0, 10, 10)
	l.Add(rect)

	r.DrawLayer(&recorder{}, l)
	assert.True(t, rect.IsDirty())
	r.Commit()
	assert.False(t, rect.IsDirty())
}

func TestNodeRefreshesOnStyleUpdate(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	l := f.Line(0, 0, 10, 0)
	dc := &recorder{}
	r.DrawShapes(dc, []shape.Shape{l})

	l.Style.Update(func(s *shape.Style) { s.Thickness = 5 })
	dc.reset()
	r.DrawShapes(dc, []shape.Shape{l})
	require.Len(t, dc.pens, 1)
	assert.Equal(t, 5.0, dc.pens[0].Width)

	other := shape.NewStyle("other", shape.ARGB(255, 0, 0, 255), shape.ARGB(0, 0, 0, 0), 3)
	l.Style = other
	dc.reset()
	r.DrawShapes(dc, []shape.Shape{l})
	assert.Equal(t, 3.0, dc.pens[0].Width)
	assert.Same(t, other, r.Node(l).Style)
}

func TestTextRelayoutsOnStyleUpdate(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	txt := f.Text(0, 0, 200, 50, "hello")
	dc := &recorder{}
	r.DrawShapes(dc, []shape.Shape{txt})
	g := r.Node(txt).geo.(*textNode)
	require.Equal(t, 12.0, g.font.Size)
	centered := g.origin

	txt.Style.Update(func(s *shape.Style) {
		s.Text.FontSize = 40
		s.Text.HAlign = shape.TextHAlignLeft
	})
	r.DrawShapes(dc, []shape.Shape{txt})

	g = r.Node(txt).geo.(*textNode)
	assert.Equal(t, 40.0, g.font.Size)
	assert.Equal(t, 0.0, g.origin.X)
	assert.NotEqual(t, centered, g.origin)
}

func TestZoomCompensation(t *testing.T) {
	f := newFactory()
	tests := []struct {
		name      string
		state     shape.State
		zoom      float64
		width     float64
		transform []string
	}{
		{"plain", 0, 2, 2, nil},
		{"thickness", shape.StateThickness, 2, 1, nil},
		{"size", shape.StateSize, 2, 4, []string{"save", "translate 5 5", "scale 0.5 0.5"}},
		{"size and thickness", shape.StateSize | shape.StateThickness, 2, 2, []string{"save", "translate 5 5", "scale 0.5 0.5"}},
		{"size at zoom 1", shape.StateSize, 1, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer()
			r.Zoom = tt.zoom
			rect := f.Rectangle(0, 0, 20, 20)
			rect.State = shape.StateVisible | tt.state
			dc := &recorder{}
			r.DrawShapes(dc, []shape.Shape{rect})

			require.Len(t, dc.pens, 1)
			assert.InDelta(t, tt.width, dc.pens[0].Width, 1e-12)
			if tt.transform == nil {
				assert.Equal(t, "strokerect "+fmt.Sprint(ggedit.XYWH(0, 0, 20, 20)), dc.ops[0])
				return
			}
			assert.Equal(t, tt.transform, dc.ops[:3])
			assert.Equal(t, "restore", dc.ops[len(dc.ops)-1])
		})
	}
}

func TestFillNodeSkipsCompensation(t *testing.T) {
	n := NewFillNode(ggedit.XYWH(0, 0, 100, 50), shape.ARGB(255, 255, 255, 255))
	dc := &recorder{}
	n.Draw(dc, 4)
	assert.Equal(t, []string{"fillrect " + fmt.Sprint(ggedit.XYWH(0, 0, 100, 50))}, dc.ops)
}

func TestWithWidthScalesDashes(t *testing.T) {
	pen := ggedit.Pen{Width: 2, Dashes: []float64{4, 2}, DashOffset: 1}
	got := withWidth(pen, 1)
	assert.Equal(t, []float64{2, 1}, got.Dashes)
	assert.Equal(t, 0.5, got.DashOffset)
	assert.Equal(t, []float64{4, 2}, pen.Dashes, "input pen must not change")
}

func TestDrawPoints(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	l := f.Line(0, 0, 10, 0)
	dc := &recorder{}

	r.DrawShapes(dc, []shape.Shape{l})
	assert.Len(t, dc.ops, 1)

	r.DrawPoints = true
	dc.reset()
	r.DrawShapes(dc, []shape.Shape{l})
	// One stroke, then a filled and stroked marker per point.
	assert.Equal(t, "strokepath 2", dc.ops[0])
	assert.Contains(t, dc.ops, "fillrect "+fmt.Sprint(ggedit.XYWH(-4, -4, 8, 8)))
	assert.Contains(t, dc.ops, "fillrect "+fmt.Sprint(ggedit.XYWH(6, -4, 8, 8)))
}

func TestGroupDrawsMembersAndConnectors(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	g := f.Group("g")
	g.AddShape(f.Rectangle(0, 0, 10, 10))
	g.AddShape(f.Ellipse(0, 0, 10, 10))
	g.AddConnectorAsInput(f.Point(5, 5))
	dc := &recorder{}

	r.DrawShapes(dc, []shape.Shape{g})
	assert.Equal(t, "strokerect "+fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)), dc.ops[0])
	assert.Equal(t, "strokeellipse "+fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)), dc.ops[1])
	assert.Contains(t, dc.ops, "fillrect "+fmt.Sprint(ggedit.XYWH(1, 1, 8, 8)))
	assert.False(t, g.IsDirty())
}

func TestHiddenShapesSkipped(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	rect := f.Rectangle(0, 0, 10, 10)
	rect.State &^= shape.StateVisible
	dc := &recorder{}
	r.DrawShapes(dc, []shape.Shape{rect})
	assert.Empty(t, dc.ops)
}

func TestFilledShapes(t *testing.T) {
	f := newFactory()
	f.IsFilled = true
	r := NewRenderer()
	dc := &recorder{}
	geo := f.PathGeometry()
	geo.BeginFigure(0, 0, false, true).LineTo(10, 0).LineTo(10, 10)
	r.DrawShapes(dc, []shape.Shape{
		f.Rectangle(0, 0, 10, 10),
		f.Ellipse(0, 0, 10, 10),
		f.Line(0, 0, 10, 10),
		f.Path(geo),
	})
	assert.Equal(t, []string{
		"fillrect " + fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)),
		"strokerect " + fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)),
		"fillellipse " + fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)),
		"strokeellipse " + fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)),
		"strokepath 2",
		"fillpath 4",
		"strokepath 4",
	}, dc.ops)
}

type images map[string]image.Image

func (m images) Image(key string) (image.Image, bool) {
	img, ok := m[key]
	return img, ok
}

func TestImageAndText(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.White)
	r.Images = images{"logo": img}
	dc := &recorder{}

	r.DrawShapes(dc, []shape.Shape{
		f.Image(0, 0, 30, 20, "logo"),
		f.Image(0, 0, 30, 20, "missing"),
		f.Text(0, 0, 100, 20, "hello"),
	})
	assert.Contains(t, dc.ops, "image (3,2)")
	assert.Contains(t, dc.ops, "text hello")
	assert.Equal(t, 1, countPrefix(dc.ops, "image"))
}

func countPrefix(ops []string, prefix string) int {
	n := 0
	for _, op := range ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func TestDrawPageBackgroundAndLayers(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	page := f.Page("p", 200, 100)
	page.Current().Add(f.Rectangle(0, 0, 10, 10))
	hidden := f.Layer("hidden")
	hidden.IsVisible = false
	hidden.Add(f.Ellipse(0, 0, 10, 10))
	page.Layers = append(page.Layers, hidden)
	dc := &recorder{}

	r.DrawPage(dc, page)
	assert.Equal(t, []string{
		"fillrect " + fmt.Sprint(ggedit.XYWH(0, 0, 200, 100)),
		"strokerect " + fmt.Sprint(ggedit.XYWH(0, 0, 10, 10)),
	}, dc.ops)

	first := r.background(page)
	page.Background = shape.ARGB(255, 0, 0, 0)
	assert.NotSame(t, first, r.background(page), "background node follows the page color")
}

func TestClearCache(t *testing.T) {
	f := newFactory()
	r := NewRenderer()
	rect := f.Rectangle(0, 0, 10, 10)
	r.DrawShapes(&recorder{}, []shape.Shape{rect})
	n := r.Node(rect)

	r.ClearCache()
	assert.Equal(t, 0, r.Cache.Len())
	assert.NotSame(t, n, r.Node(rect))
}

type stubExporter struct{ r *Renderer }

func (e stubExporter) Export(w io.Writer, c any) error {
	if _, ok := c.(*shape.Page); !ok {
		return Unsupported("stub", c)
	}
	_, err := io.WriteString(w, "ok")
	return err
}

func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestBackendRegistry(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	RegisterBackend("stub", func(r *Renderer) Exporter { return stubExporter{r} })
	assert.True(t, IsRegistered("stub"))
	assert.Equal(t, []string{"stub"}, Backends())

	exp, err := NewBackend("stub", nil)
	require.NoError(t, err)
	assert.NotNil(t, exp.(stubExporter).r, "nil renderer is replaced")

	var buf bytes.Buffer
	require.NoError(t, exp.Export(&buf, newFactory().Page("p", 1, 1)))
	assert.Equal(t, "ok", buf.String())

	err = exp.Export(&buf, newFactory().Document("d"))
	assert.True(t, errors.Is(err, ErrUnsupportedContainer))
	assert.Contains(t, err.Error(), "*shape.Document")

	_, err = NewBackend("nope", nil)
	assert.ErrorContains(t, err, "forgotten import")
	assert.Panics(t, func() { MustBackend("nope", nil) })

	UnregisterBackend("stub")
	assert.False(t, IsRegistered("stub"))
}

func TestRegisterBackendPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	assert.Panics(t, func() { RegisterBackend("nil", nil) })
	RegisterBackend("dup", func(r *Renderer) Exporter { return stubExporter{r} })
	assert.Panics(t, func() {
		RegisterBackend("dup", func(r *Renderer) Exporter { return stubExporter{r} })
	})
}
