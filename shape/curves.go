package shape

import (
	"math"

	"github.com/gogpu/ggedit"
)

// Arc is an elliptical arc. Point1 and Point2 are opposite corners of the
// ellipse's bounding box; the arc starts on the ray from the center through
// Point3 and ends on the ray through Point4, running clockwise on screen.
type Arc struct {
	Base
	Point1, Point2, Point3, Point4 *Point
}

func (a *Arc) Kind() Kind { return KindArc }

// ArcGeometry is the center parameterization of an Arc.
type ArcGeometry struct {
	Center     ggedit.Point
	RX, RY     float64
	Start      float64
	Sweep      float64
	StartPoint ggedit.Point
	EndPoint   ggedit.Point
}

// Geometry resolves the arc's four points into center form.
func (a *Arc) Geometry() ArcGeometry {
	box := ggedit.NewRect(a.Point1.Pt(), a.Point2.Pt())
	g := ArcGeometry{
		Center: box.Center(),
		RX:     box.Width() / 2,
		RY:     box.Height() / 2,
	}
	g.Start = angleOnEllipse(g.Center, g.RX, g.RY, a.Point3.Pt())
	end := angleOnEllipse(g.Center, g.RX, g.RY, a.Point4.Pt())
	g.Sweep = end - g.Start
	for g.Sweep <= 0 {
		g.Sweep += 2 * math.Pi
	}
	g.StartPoint = g.at(g.Start)
	g.EndPoint = g.at(g.Start + g.Sweep)
	return g
}

func (g ArcGeometry) at(angle float64) ggedit.Point {
	sin, cos := math.Sincos(angle)
	return ggedit.Pt(g.Center.X+g.RX*cos, g.Center.Y+g.RY*sin)
}

// angleOnEllipse returns the parametric angle of the ellipse point on the
// ray from center through p.
func angleOnEllipse(center ggedit.Point, rx, ry float64, p ggedit.Point) float64 {
	dx, dy := p.X-center.X, p.Y-center.Y
	if rx > 0 {
		dx /= rx
	}
	if ry > 0 {
		dy /= ry
	}
	return math.Atan2(dy, dx)
}

// AppendTo adds the arc outline to p as a new subpath.
func (a *Arc) AppendTo(p *ggedit.Path) {
	g := a.Geometry()
	p.MoveTo(g.StartPoint.X, g.StartPoint.Y)
	p.EllipticArc(g.Center, g.RX, g.RY, g.Start, g.Sweep)
}

func (a *Arc) Points(dst []*Point) []*Point {
	return append(dst, a.Point1, a.Point2, a.Point3, a.Point4)
}

func (a *Arc) Move(dx, dy float64) { movePoints(dx, dy, a.Point1, a.Point2, a.Point3, a.Point4) }

func (a *Arc) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, a) }

func (a *Arc) IsDirty() bool {
	return a.dirty || anyDirty(a.Point1, a.Point2, a.Point3, a.Point4)
}

func (a *Arc) Invalidate() {
	a.dirty = false
	clearDirty(a.Point1, a.Point2, a.Point3, a.Point4)
}

func (a *Arc) Copy(shared map[*Point]*Point) Shape {
	c := &Arc{
		Base:   a.copyBase(KindArc),
		Point1: copyPoint(a.Point1, shared),
		Point2: copyPoint(a.Point2, shared),
		Point3: copyPoint(a.Point3, shared),
		Point4: copyPoint(a.Point4, shared),
	}
	claim(c.ID(), c.Point1, c.Point2, c.Point3, c.Point4)
	return c
}

// QuadraticBezier is a quadratic curve; Point2 is the control point.
type QuadraticBezier struct {
	Base
	Point1, Point2, Point3 *Point
}

func (q *QuadraticBezier) Kind() Kind { return KindQuadraticBezier }

// Bez returns the current curve geometry.
func (q *QuadraticBezier) Bez() ggedit.QuadBez {
	return ggedit.QuadBez{P0: q.Point1.Pt(), P1: q.Point2.Pt(), P2: q.Point3.Pt()}
}

func (q *QuadraticBezier) Points(dst []*Point) []*Point {
	return append(dst, q.Point1, q.Point2, q.Point3)
}

func (q *QuadraticBezier) Move(dx, dy float64) { movePoints(dx, dy, q.Point1, q.Point2, q.Point3) }

func (q *QuadraticBezier) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, q) }

func (q *QuadraticBezier) IsDirty() bool {
	return q.dirty || anyDirty(q.Point1, q.Point2, q.Point3)
}

func (q *QuadraticBezier) Invalidate() {
	q.dirty = false
	clearDirty(q.Point1, q.Point2, q.Point3)
}

func (q *QuadraticBezier) Copy(shared map[*Point]*Point) Shape {
	c := &QuadraticBezier{
		Base:   q.copyBase(KindQuadraticBezier),
		Point1: copyPoint(q.Point1, shared),
		Point2: copyPoint(q.Point2, shared),
		Point3: copyPoint(q.Point3, shared),
	}
	claim(c.ID(), c.Point1, c.Point2, c.Point3)
	return c
}

// CubicBezier is a cubic curve; Point2 and Point3 are control points.
type CubicBezier struct {
	Base
	Point1, Point2, Point3, Point4 *Point
}

func (c *CubicBezier) Kind() Kind { return KindCubicBezier }

// Bez returns the current curve geometry.
func (c *CubicBezier) Bez() ggedit.CubicBez {
	return ggedit.CubicBez{P0: c.Point1.Pt(), P1: c.Point2.Pt(), P2: c.Point3.Pt(), P3: c.Point4.Pt()}
}

func (c *CubicBezier) Points(dst []*Point) []*Point {
	return append(dst, c.Point1, c.Point2, c.Point3, c.Point4)
}

func (c *CubicBezier) Move(dx, dy float64) {
	movePoints(dx, dy, c.Point1, c.Point2, c.Point3, c.Point4)
}

func (c *CubicBezier) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, c) }

func (c *CubicBezier) IsDirty() bool {
	return c.dirty || anyDirty(c.Point1, c.Point2, c.Point3, c.Point4)
}

func (c *CubicBezier) Invalidate() {
	c.dirty = false
	clearDirty(c.Point1, c.Point2, c.Point3, c.Point4)
}

func (c *CubicBezier) Copy(shared map[*Point]*Point) Shape {
	out := &CubicBezier{
		Base:   c.copyBase(KindCubicBezier),
		Point1: copyPoint(c.Point1, shared),
		Point2: copyPoint(c.Point2, shared),
		Point3: copyPoint(c.Point3, shared),
		Point4: copyPoint(c.Point4, shared),
	}
	claim(out.ID(), out.Point1, out.Point2, out.Point3, out.Point4)
	return out
}
