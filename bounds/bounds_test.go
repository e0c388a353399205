package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

func newFactory() *shape.Factory {
	return shape.NewFactory(shape.DefaultStyle())
}

func TestDefaultRegistryCoversEveryKind(t *testing.T) {
	r := Default()
	f := newFactory()
	shapes := []shape.Shape{
		f.Point(0, 0),
		f.Line(0, 0, 1, 1),
		f.Arc(0, 0, 10, 10, 10, 5, 5, 0),
		f.QuadraticBezier(0, 0, 5, 5, 10, 0),
		f.CubicBezier(0, 0, 0, 5, 10, 5, 10, 0),
		f.Rectangle(0, 0, 1, 1),
		f.Ellipse(0, 0, 1, 1),
		f.Path(f.PathGeometry()),
		f.Text(0, 0, 1, 1, "x"),
		f.Image(0, 0, 1, 1, "img"),
		f.Group("g"),
	}
	for _, s := range shapes {
		_, ok := r.Resolve(s)
		assert.True(t, ok, "kind %v", s.Kind())
	}
}

func TestMissingProviderNeverMatches(t *testing.T) {
	r := Default()
	r.Register(shape.KindRectangle, nil)
	rect := newFactory().Rectangle(0, 0, 10, 10)

	assert.False(t, r.Contains(rect, ggedit.Pt(5, 5), 7, 1))
	assert.False(t, r.Overlaps(rect, ggedit.XYWH(0, 0, 20, 20), 7, 1))
	assert.Nil(t, r.TryGetPoint(rect, ggedit.Pt(0, 0), 7, 1))
}

func TestPointBounds(t *testing.T) {
	r := Default()
	p := newFactory().Point(10, 10)

	assert.True(t, r.Contains(p, ggedit.Pt(17, 10), 7, 1))
	assert.False(t, r.Contains(p, ggedit.Pt(18, 10), 7, 1))
	// Zoom shrinks the tolerance in model units.
	assert.False(t, r.Contains(p, ggedit.Pt(14, 10), 7, 2))
	assert.True(t, r.Contains(p, ggedit.Pt(13.5, 10), 7, 2))
	assert.Same(t, p, r.TryGetPoint(p, ggedit.Pt(12, 12), 7, 1))
	assert.True(t, r.Overlaps(p, ggedit.XYWH(0, 0, 5, 5), 7, 1))
}

func TestLineBounds(t *testing.T) {
	r := Default()
	l := newFactory().Line(0, 0, 100, 0)

	tests := []struct {
		name   string
		target ggedit.Point
		want   bool
	}{
		{"on stroke", ggedit.Pt(50, 0), true},
		{"within radius", ggedit.Pt(50, 6), true},
		{"outside radius", ggedit.Pt(50, 8), false},
		{"past end", ggedit.Pt(110, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(l, tt.target, 7, 1))
		})
	}

	assert.Same(t, l.End, r.TryGetPoint(l, ggedit.Pt(98, 2), 7, 1))
	assert.Nil(t, r.TryGetPoint(l, ggedit.Pt(50, 0), 7, 1))
	assert.True(t, r.Overlaps(l, ggedit.XYWH(40, -5, 10, 10), 0, 1))
	assert.False(t, r.Overlaps(l, ggedit.XYWH(40, 10, 10, 10), 0, 1))
}

func TestBoxBounds(t *testing.T) {
	r := Default()
	f := newFactory()
	rect := f.Rectangle(0, 0, 10, 10)

	assert.True(t, r.Contains(rect, ggedit.Pt(5, 5), 0, 1))
	assert.True(t, r.Contains(rect, ggedit.Pt(-3, 5), 4, 1))
	assert.False(t, r.Contains(rect, ggedit.Pt(-5, 5), 4, 1))
	assert.Same(t, rect.BottomRight, r.TryGetPoint(rect, ggedit.Pt(11, 11), 4, 1))
	assert.True(t, r.Overlaps(rect, ggedit.XYWH(9, 9, 5, 5), 0, 1))

	// A constant-size box shrinks about its center when zoomed in.
	rect.State |= shape.StateSize
	assert.False(t, r.Contains(rect, ggedit.Pt(1, 1), 0, 2))
	assert.True(t, r.Contains(rect, ggedit.Pt(3, 3), 0, 2))
}

func TestEllipseBounds(t *testing.T) {
	r := Default()
	e := newFactory().Ellipse(0, 0, 20, 10)

	assert.True(t, r.Contains(e, ggedit.Pt(10, 5), 0, 1))
	assert.False(t, r.Contains(e, ggedit.Pt(1, 1), 0, 1), "corner is outside the ellipse")
	assert.True(t, r.Contains(e, ggedit.Pt(-1, 5), 2, 1))
	assert.True(t, r.Overlaps(e, ggedit.XYWH(8, 3, 4, 4), 0, 1))
	assert.False(t, r.Overlaps(e, ggedit.XYWH(0, 0, 1, 1), 0, 1))
}

func TestCurveBounds(t *testing.T) {
	r := Default()
	f := newFactory()
	q := f.QuadraticBezier(0, 0, 50, 100, 100, 0)

	assert.True(t, r.Contains(q, ggedit.Pt(50, 50), 1, 1), "apex lies on the curve")
	assert.False(t, r.Contains(q, ggedit.Pt(50, 20), 1, 1), "open curve has no interior")
	q.IsFilled = true
	assert.True(t, r.Contains(q, ggedit.Pt(50, 20), 1, 1))

	c := f.CubicBezier(0, 0, 0, 100, 100, 100, 100, 0)
	assert.True(t, r.Contains(c, ggedit.Pt(50, 75), 1, 1))
	assert.Same(t, c.Point2, r.TryGetPoint(c, ggedit.Pt(1, 99), 2, 1))
}

func trianglePath(f *shape.Factory, filled, closed bool) *shape.Path {
	geo := f.PathGeometry()
	geo.BeginFigure(0, 0, filled, closed).LineTo(100, 0).LineTo(100, 100)
	return f.Path(geo)
}

func TestPathBounds(t *testing.T) {
	r := Default()
	f := newFactory()

	open := trianglePath(f, false, false)
	assert.True(t, r.Contains(open, ggedit.Pt(100, 50), 1, 1))
	assert.False(t, r.Contains(open, ggedit.Pt(80, 20), 1, 1))

	filled := trianglePath(f, true, true)
	assert.True(t, r.Contains(filled, ggedit.Pt(80, 20), 1, 1))
	assert.False(t, r.Contains(filled, ggedit.Pt(20, 80), 1, 1))
	assert.True(t, r.Overlaps(filled, ggedit.XYWH(70, 10, 5, 5), 0, 1))
}

func TestPathEvenOddHole(t *testing.T) {
	r := Default()
	f := newFactory()
	geo := f.PathGeometry()
	geo.FillRule = ggedit.FillRuleEvenOdd
	geo.BeginFigure(0, 0, true, true).LineTo(100, 0).LineTo(100, 100).LineTo(0, 100)
	geo.BeginFigure(25, 25, true, true).LineTo(75, 25).LineTo(75, 75).LineTo(25, 75)
	p := f.Path(geo)

	assert.True(t, r.Contains(p, ggedit.Pt(10, 10), 1, 1))
	assert.False(t, r.Contains(p, ggedit.Pt(50, 50), 1, 1), "even-odd leaves a hole")

	geo.FillRule = ggedit.FillRuleNonZero
	assert.True(t, r.Contains(p, ggedit.Pt(50, 50), 1, 1))
}

func TestPathNonZeroOppositeWinding(t *testing.T) {
	r := Default()
	f := newFactory()
	geo := f.PathGeometry()
	geo.FillRule = ggedit.FillRuleNonZero
	geo.BeginFigure(0, 0, true, true).LineTo(100, 0).LineTo(100, 100).LineTo(0, 100)
	geo.BeginFigure(25, 25, true, true).LineTo(25, 75).LineTo(75, 75).LineTo(75, 25)
	p := f.Path(geo)

	assert.True(t, r.Contains(p, ggedit.Pt(10, 10), 1, 1))
	assert.False(t, r.Contains(p, ggedit.Pt(50, 50), 1, 1), "reversed inner ring cancels the outer one")

	geo.FillRule = ggedit.FillRuleEvenOdd
	assert.False(t, r.Contains(p, ggedit.Pt(50, 50), 1, 1))
}

func TestGroupBounds(t *testing.T) {
	r := Default()
	f := newFactory()
	layer := f.Layer("l")
	a := f.Rectangle(0, 0, 10, 10)
	b := f.Rectangle(100, 100, 110, 110)
	c := f.Point(50, 50)
	layer.Add(a, b, c)
	g := shape.GroupShapes(f, "g", []shape.Shape{a, b, c}, layer)

	assert.True(t, r.Contains(g, ggedit.Pt(105, 105), 0, 1))
	assert.False(t, r.Contains(g, ggedit.Pt(30, 30), 0, 1))
	assert.Same(t, c, r.TryGetPoint(g, ggedit.Pt(51, 51), 2, 1), "connectors are tested first")
	assert.True(t, r.Overlaps(g, ggedit.XYWH(45, 45, 10, 10), 0, 1))
}

func TestOf(t *testing.T) {
	f := newFactory()
	_, ok := Of(nil)
	assert.False(t, ok)

	box, ok := Of([]shape.Shape{f.Point(0, 0), f.Point(10, 0), f.Point(10, 10)})
	require.True(t, ok)
	assert.Equal(t, ggedit.XYWH(0, 0, 10, 10), box)
}
