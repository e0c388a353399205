package shape

import (
	"math"

	"github.com/gogpu/ggedit"
)

// Segment is one piece of a figure. Each segment carries its trailing
// point(s); the leading point is the previous segment's last point or the
// figure's start.
type Segment interface {
	points(dst []*Point) []*Point
	last() *Point
	copySegment(shared map[*Point]*Point) Segment
	appendTo(p *ggedit.Path)
}

// LineSegment draws a straight line to Point.
type LineSegment struct {
	Point *Point
}

func (s *LineSegment) points(dst []*Point) []*Point { return append(dst, s.Point) }
func (s *LineSegment) last() *Point                 { return s.Point }
func (s *LineSegment) copySegment(shared map[*Point]*Point) Segment {
	return &LineSegment{Point: copyPoint(s.Point, shared)}
}
func (s *LineSegment) appendTo(p *ggedit.Path) { p.LineTo(s.Point.X, s.Point.Y) }

// ArcSegment draws an SVG-style elliptical arc to Point.
type ArcSegment struct {
	Point         *Point
	Width, Height float64
	// RotationAngle is in degrees.
	RotationAngle float64
	IsLargeArc    bool
	Clockwise     bool
}

func (s *ArcSegment) points(dst []*Point) []*Point { return append(dst, s.Point) }
func (s *ArcSegment) last() *Point                 { return s.Point }
func (s *ArcSegment) copySegment(shared map[*Point]*Point) Segment {
	c := *s
	c.Point = copyPoint(s.Point, shared)
	return &c
}
func (s *ArcSegment) appendTo(p *ggedit.Path) {
	p.ArcTo(s.Width, s.Height, s.RotationAngle*math.Pi/180, s.IsLargeArc, s.Clockwise, s.Point.X, s.Point.Y)
}

// QuadraticBezierSegment draws a quadratic curve; Point1 is the control.
type QuadraticBezierSegment struct {
	Point1, Point2 *Point
}

func (s *QuadraticBezierSegment) points(dst []*Point) []*Point {
	return append(dst, s.Point1, s.Point2)
}
func (s *QuadraticBezierSegment) last() *Point { return s.Point2 }
func (s *QuadraticBezierSegment) copySegment(shared map[*Point]*Point) Segment {
	return &QuadraticBezierSegment{
		Point1: copyPoint(s.Point1, shared),
		Point2: copyPoint(s.Point2, shared),
	}
}
func (s *QuadraticBezierSegment) appendTo(p *ggedit.Path) {
	p.QuadraticTo(s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y)
}

// CubicBezierSegment draws a cubic curve; Point1 and Point2 are controls.
type CubicBezierSegment struct {
	Point1, Point2, Point3 *Point
}

func (s *CubicBezierSegment) points(dst []*Point) []*Point {
	return append(dst, s.Point1, s.Point2, s.Point3)
}
func (s *CubicBezierSegment) last() *Point { return s.Point3 }
func (s *CubicBezierSegment) copySegment(shared map[*Point]*Point) Segment {
	return &CubicBezierSegment{
		Point1: copyPoint(s.Point1, shared),
		Point2: copyPoint(s.Point2, shared),
		Point3: copyPoint(s.Point3, shared),
	}
}
func (s *CubicBezierSegment) appendTo(p *ggedit.Path) {
	p.CubicTo(s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y, s.Point3.X, s.Point3.Y)
}

// Figure is a start point followed by connected segments.
type Figure struct {
	StartPoint *Point
	Segments   []Segment
	IsFilled   bool
	IsClosed   bool
}

// LineTo appends a line segment to a new point at (x, y).
func (f *Figure) LineTo(x, y float64) *Figure {
	f.Segments = append(f.Segments, &LineSegment{Point: newPoint(x, y)})
	return f
}

// LineToPoint appends a line segment ending on an existing point, sharing it.
func (f *Figure) LineToPoint(p *Point) *Figure {
	f.Segments = append(f.Segments, &LineSegment{Point: p})
	return f
}

// QuadraticTo appends a quadratic segment.
func (f *Figure) QuadraticTo(cx, cy, x, y float64) *Figure {
	f.Segments = append(f.Segments, &QuadraticBezierSegment{
		Point1: newPoint(cx, cy),
		Point2: newPoint(x, y),
	})
	return f
}

// CubicTo appends a cubic segment.
func (f *Figure) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Figure {
	f.Segments = append(f.Segments, &CubicBezierSegment{
		Point1: newPoint(c1x, c1y),
		Point2: newPoint(c2x, c2y),
		Point3: newPoint(x, y),
	})
	return f
}

// ArcTo appends an arc segment. rotation is in degrees.
func (f *Figure) ArcTo(x, y, width, height, rotation float64, isLargeArc, clockwise bool) *Figure {
	f.Segments = append(f.Segments, &ArcSegment{
		Point:         newPoint(x, y),
		Width:         width,
		Height:        height,
		RotationAngle: rotation,
		IsLargeArc:    isLargeArc,
		Clockwise:     clockwise,
	})
	return f
}

func (f *Figure) points(dst []*Point) []*Point {
	dst = append(dst, f.StartPoint)
	for _, s := range f.Segments {
		dst = s.points(dst)
	}
	return dst
}

// PathGeometry is an ordered list of figures with a fill rule.
type PathGeometry struct {
	FillRule ggedit.FillRule
	Figures  []*Figure
}

// BeginFigure starts a new figure at (x, y).
func (g *PathGeometry) BeginFigure(x, y float64, isFilled, isClosed bool) *Figure {
	f := &Figure{StartPoint: newPoint(x, y), IsFilled: isFilled, IsClosed: isClosed}
	g.Figures = append(g.Figures, f)
	return f
}

// AppendTo adds the outline of every figure to p.
func (g *PathGeometry) AppendTo(p *ggedit.Path) {
	p.FillRule = g.FillRule
	for _, f := range g.Figures {
		p.MoveTo(f.StartPoint.X, f.StartPoint.Y)
		for _, s := range f.Segments {
			s.appendTo(p)
		}
		if f.IsClosed {
			p.Close()
		}
	}
}

// Path is a shape made of one or more figures.
type Path struct {
	Base
	Geometry *PathGeometry
}

func (p *Path) Kind() Kind { return KindPath }

func (p *Path) Points(dst []*Point) []*Point {
	for _, f := range p.Geometry.Figures {
		dst = f.points(dst)
	}
	return dst
}

func (p *Path) Move(dx, dy float64) {
	movePoints(dx, dy, Unique(p.Points(nil))...)
}

func (p *Path) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, p) }

func (p *Path) IsDirty() bool { return p.dirty || anyDirty(p.Points(nil)...) }

func (p *Path) Invalidate() {
	p.dirty = false
	clearDirty(p.Points(nil)...)
}

func (p *Path) Copy(shared map[*Point]*Point) Shape {
	geo := &PathGeometry{FillRule: p.Geometry.FillRule}
	for _, f := range p.Geometry.Figures {
		cf := &Figure{
			StartPoint: copyPoint(f.StartPoint, shared),
			IsFilled:   f.IsFilled,
			IsClosed:   f.IsClosed,
		}
		for _, s := range f.Segments {
			cf.Segments = append(cf.Segments, s.copySegment(shared))
		}
		geo.Figures = append(geo.Figures, cf)
	}
	c := &Path{Base: p.copyBase(KindPath), Geometry: geo}
	claim(c.ID(), c.Points(nil)...)
	return c
}

// newPoint creates a point owned by a shape under construction. The
// factory sets the owner once the shape has an ID.
func newPoint(x, y float64) *Point {
	return &Point{Base: newBase(KindPoint, nil, StateVisible|StatePrintable), X: x, Y: y}
}
