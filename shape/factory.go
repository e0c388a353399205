package shape

import "github.com/gogpu/ggedit"

// Factory creates shapes with default state, an empty property list and
// the current default style.
type Factory struct {
	Style     *Style
	IsStroked bool
	IsFilled  bool
	IsClosed  bool
	FillRule  ggedit.FillRule
}

// DefaultStyle returns the style used when nothing else is configured.
func DefaultStyle() *Style {
	return NewStyle("Default", ARGB(255, 0, 0, 0), ARGB(80, 0, 0, 0), 2.0)
}

// NewFactory returns a factory with the editor's default settings.
func NewFactory(style *Style) *Factory {
	if style == nil {
		style = DefaultStyle()
	}
	return &Factory{
		Style:     style,
		IsStroked: true,
		IsClosed:  true,
		FillRule:  ggedit.FillRuleEvenOdd,
	}
}

func (f *Factory) base(k Kind) Base {
	b := newBase(k, f.Style, StateDefault)
	b.IsStroked = f.IsStroked
	b.IsFilled = f.IsFilled
	return b
}

// owned creates a point that belongs to another shape.
func (f *Factory) owned(x, y float64) *Point {
	p := newPoint(x, y)
	p.Style = f.Style
	return p
}

// Point creates a standalone point.
func (f *Factory) Point(x, y float64) *Point {
	return &Point{Base: f.base(KindPoint), X: x, Y: y}
}

// Line creates a line between two new points.
func (f *Factory) Line(x1, y1, x2, y2 float64) *Line {
	return f.LineFrom(f.owned(x1, y1), f.owned(x2, y2))
}

// LineFrom creates a line over existing points, sharing them.
func (f *Factory) LineFrom(start, end *Point) *Line {
	l := &Line{Base: f.base(KindLine), Start: start, End: end}
	claim(l.ID(), start, end)
	return l
}

// Arc creates an arc inside the box (x1,y1)-(x2,y2) from the ray through
// (x3,y3) to the ray through (x4,y4).
func (f *Factory) Arc(x1, y1, x2, y2, x3, y3, x4, y4 float64) *Arc {
	a := &Arc{
		Base:   f.base(KindArc),
		Point1: f.owned(x1, y1),
		Point2: f.owned(x2, y2),
		Point3: f.owned(x3, y3),
		Point4: f.owned(x4, y4),
	}
	claim(a.ID(), a.Point1, a.Point2, a.Point3, a.Point4)
	return a
}

// QuadraticBezier creates a quadratic curve.
func (f *Factory) QuadraticBezier(x1, y1, x2, y2, x3, y3 float64) *QuadraticBezier {
	q := &QuadraticBezier{
		Base:   f.base(KindQuadraticBezier),
		Point1: f.owned(x1, y1),
		Point2: f.owned(x2, y2),
		Point3: f.owned(x3, y3),
	}
	claim(q.ID(), q.Point1, q.Point2, q.Point3)
	return q
}

// CubicBezier creates a cubic curve.
func (f *Factory) CubicBezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) *CubicBezier {
	c := &CubicBezier{
		Base:   f.base(KindCubicBezier),
		Point1: f.owned(x1, y1),
		Point2: f.owned(x2, y2),
		Point3: f.owned(x3, y3),
		Point4: f.owned(x4, y4),
	}
	claim(c.ID(), c.Point1, c.Point2, c.Point3, c.Point4)
	return c
}

func (f *Factory) box(x1, y1, x2, y2 float64) Box {
	return Box{TopLeft: f.owned(x1, y1), BottomRight: f.owned(x2, y2)}
}

// Rectangle creates a rectangle with corners (x1,y1) and (x2,y2).
func (f *Factory) Rectangle(x1, y1, x2, y2 float64) *Rectangle {
	r := &Rectangle{Base: f.base(KindRectangle), Box: f.box(x1, y1, x2, y2)}
	claim(r.ID(), r.TopLeft, r.BottomRight)
	return r
}

// Ellipse creates the ellipse inscribed in (x1,y1)-(x2,y2).
func (f *Factory) Ellipse(x1, y1, x2, y2 float64) *Ellipse {
	e := &Ellipse{Base: f.base(KindEllipse), Box: f.box(x1, y1, x2, y2)}
	claim(e.ID(), e.TopLeft, e.BottomRight)
	return e
}

// Text creates a text shape laid out in (x1,y1)-(x2,y2).
func (f *Factory) Text(x1, y1, x2, y2 float64, text string) *Text {
	t := &Text{Base: f.base(KindText), Box: f.box(x1, y1, x2, y2), Text: text}
	claim(t.ID(), t.TopLeft, t.BottomRight)
	return t
}

// Image creates an image shape drawing the bitmap stored under key.
func (f *Factory) Image(x1, y1, x2, y2 float64, key string) *Image {
	i := &Image{Base: f.base(KindImage), Box: f.box(x1, y1, x2, y2), Key: key}
	claim(i.ID(), i.TopLeft, i.BottomRight)
	return i
}

// PathGeometry returns an empty geometry using the factory fill rule.
func (f *Factory) PathGeometry() *PathGeometry {
	return &PathGeometry{FillRule: f.FillRule}
}

// Path wraps geo in a path shape and claims its points.
func (f *Factory) Path(geo *PathGeometry) *Path {
	p := &Path{Base: f.base(KindPath), Geometry: geo}
	for _, pt := range p.Points(nil) {
		pt.Owner = p.ID()
		if pt.Style == nil {
			pt.Style = f.Style
		}
	}
	return p
}

// Group creates an empty group.
func (f *Factory) Group(name string) *Group {
	g := &Group{Base: f.base(KindGroup)}
	g.Name = name
	return g
}

// Layer creates an empty visible layer.
func (f *Factory) Layer(name string) *Layer {
	return &Layer{ID: NewID(PrefixLayer), Name: name, IsVisible: true}
}

// Page creates a page with a single layer.
func (f *Factory) Page(name string, width, height float64) *Page {
	l := f.Layer("Layer1")
	return &Page{
		ID:           NewID(PrefixPage),
		Name:         name,
		Width:        width,
		Height:       height,
		Background:   ARGB(255, 255, 255, 255),
		Layers:       []*Layer{l},
		CurrentLayer: l,
	}
}

// Document creates an empty document.
func (f *Factory) Document(name string) *Document {
	return &Document{ID: NewID(PrefixDocument), Name: name}
}

// Project creates a project whose style library holds the factory style.
func (f *Factory) Project(name string) *Project {
	return &Project{
		ID:           NewID(PrefixProject),
		Name:         name,
		Styles:       []*Style{f.Style},
		CurrentStyle: f.Style,
	}
}
