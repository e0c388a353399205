package bounds

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// PointBounds serves standalone and connector points. A point is hit
// inside the square of half-size tolerance around it.
type PointBounds struct{}

func (PointBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	p := s.(*shape.Point)
	if nearPoint(p.Pt(), target, tolerance(radius, scale)) {
		return p
	}
	return nil
}

func (PointBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	return nearPoint(s.(*shape.Point).Pt(), target, tolerance(radius, scale))
}

func (PointBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	return rect.Inflate(tolerance(radius, scale)).Contains(s.(*shape.Point).Pt())
}

// LineBounds hit-tests the segment within tolerance.
type LineBounds struct{}

func (LineBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	l := s.(*shape.Line)
	return tryPoints([]*shape.Point{l.Start, l.End}, target, tolerance(radius, scale))
}

func (LineBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	return s.(*shape.Line).Segment().Distance(target) <= tolerance(radius, scale)
}

func (LineBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	return s.(*shape.Line).Segment().Intersects(rect.Inflate(tolerance(radius, scale)))
}

// curveContains shares the logic of every outline-based kind: the stroke is
// hit within tolerance and, when filled, the interior is hit too.
func curveContains(s shape.Shape, lines []ggedit.Polyline, target ggedit.Point, tol float64, closed bool, rule ggedit.FillRule) bool {
	if nearStroke(lines, target, tol) {
		return true
	}
	if s.AsBase().IsFilled || closed {
		return inside(lines, target, rule)
	}
	return false
}

// ArcBounds hit-tests the flattened arc.
type ArcBounds struct{}

func (ArcBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	return tryPoints(s.Points(nil), target, tolerance(radius, scale))
}

func (ArcBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	a := s.(*shape.Arc)
	return curveContains(s, outline(a.AppendTo), target, tolerance(radius, scale), false, ggedit.FillRuleNonZero)
}

func (ArcBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	a := s.(*shape.Arc)
	return overlapsLines(outline(a.AppendTo), rect.Inflate(tolerance(radius, scale)), a.IsFilled, ggedit.FillRuleNonZero)
}

// QuadraticBezierBounds hit-tests the flattened curve.
type QuadraticBezierBounds struct{}

func quadOutline(q *shape.QuadraticBezier) []ggedit.Polyline {
	b := q.Bez()
	return outline(func(p *ggedit.Path) {
		p.MoveTo(b.P0.X, b.P0.Y)
		p.QuadraticTo(b.P1.X, b.P1.Y, b.P2.X, b.P2.Y)
	})
}

func (QuadraticBezierBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	return tryPoints(s.Points(nil), target, tolerance(radius, scale))
}

func (QuadraticBezierBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	q := s.(*shape.QuadraticBezier)
	return curveContains(s, quadOutline(q), target, tolerance(radius, scale), false, ggedit.FillRuleNonZero)
}

func (QuadraticBezierBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	q := s.(*shape.QuadraticBezier)
	return overlapsLines(quadOutline(q), rect.Inflate(tolerance(radius, scale)), q.IsFilled, ggedit.FillRuleNonZero)
}

// CubicBezierBounds hit-tests the flattened curve.
type CubicBezierBounds struct{}

func cubicOutline(c *shape.CubicBezier) []ggedit.Polyline {
	b := c.Bez()
	return outline(func(p *ggedit.Path) {
		p.MoveTo(b.P0.X, b.P0.Y)
		p.CubicTo(b.P1.X, b.P1.Y, b.P2.X, b.P2.Y, b.P3.X, b.P3.Y)
	})
}

func (CubicBezierBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	return tryPoints(s.Points(nil), target, tolerance(radius, scale))
}

func (CubicBezierBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	c := s.(*shape.CubicBezier)
	return curveContains(s, cubicOutline(c), target, tolerance(radius, scale), false, ggedit.FillRuleNonZero)
}

func (CubicBezierBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	c := s.(*shape.CubicBezier)
	return overlapsLines(cubicOutline(c), rect.Inflate(tolerance(radius, scale)), c.IsFilled, ggedit.FillRuleNonZero)
}

// boxed is implemented by every kind that embeds shape.Box.
type boxed interface {
	shape.Shape
	Rect() ggedit.Rect
}

// BoxBounds serves rectangles, text and images. The whole box, grown by
// the tolerance, is hit. Shapes flagged with a constant screen size are
// measured at their rendered size.
type BoxBounds struct{}

func (BoxBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	return tryPoints(s.Points(nil), target, tolerance(radius, scale))
}

func (BoxBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	b := s.(boxed)
	return rendered(s, b.Rect(), scale).Inflate(tolerance(radius, scale)).Contains(target)
}

func (BoxBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	b := s.(boxed)
	return rendered(s, b.Rect(), scale).Inflate(tolerance(radius, scale)).Intersects(rect)
}

// EllipseBounds tests against the ellipse grown by the tolerance on both
// radii.
type EllipseBounds struct{}

func (EllipseBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	return tryPoints(s.Points(nil), target, tolerance(radius, scale))
}

func (EllipseBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	e := s.(*shape.Ellipse)
	r := rendered(s, e.Rect(), scale)
	tol := tolerance(radius, scale)
	rx := r.Width()/2 + tol
	ry := r.Height()/2 + tol
	c := r.Center()
	dx := (target.X - c.X) / rx
	dy := (target.Y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

func (EllipseBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	e := s.(*shape.Ellipse)
	r := rendered(s, e.Rect(), scale)
	lines := outline(func(p *ggedit.Path) { p.Ellipse(r) })
	return overlapsLines(lines, rect.Inflate(tolerance(radius, scale)), true, ggedit.FillRuleNonZero)
}

// PathBounds hit-tests every figure. Filled figures are hit inside their
// area according to the geometry's fill rule.
type PathBounds struct{}

func (PathBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) *shape.Point {
	return tryPoints(s.Points(nil), target, tolerance(radius, scale))
}

func (PathBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, _ *Registry) bool {
	p := s.(*shape.Path)
	stroke, fill := pathOutlines(p)
	tol := tolerance(radius, scale)
	if nearStroke(stroke, target, tol) {
		return true
	}
	return len(fill) > 0 && inside(fill, target, p.Geometry.FillRule)
}

func (PathBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, _ *Registry) bool {
	p := s.(*shape.Path)
	stroke, fill := pathOutlines(p)
	rect = rect.Inflate(tolerance(radius, scale))
	return overlapsLines(stroke, rect, false, p.Geometry.FillRule) ||
		(len(fill) > 0 && inside(fill, rect.Center(), p.Geometry.FillRule))
}

// pathOutlines flattens each figure, returning every outline and the
// subset that is filled.
func pathOutlines(p *shape.Path) (stroke, fill []ggedit.Polyline) {
	for _, f := range p.Geometry.Figures {
		lines := outline(func(gp *ggedit.Path) {
			(&shape.PathGeometry{Figures: []*shape.Figure{f}}).AppendTo(gp)
		})
		stroke = append(stroke, lines...)
		if f.IsFilled || f.IsClosed || p.IsFilled {
			fill = append(fill, lines...)
		}
	}
	return stroke, fill
}

// GroupBounds recurses into members through the registry. Connectors are
// tested before member shapes.
type GroupBounds struct{}

func (GroupBounds) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, r *Registry) *shape.Point {
	g := s.(*shape.Group)
	for _, c := range g.Connectors {
		if p := r.TryGetPoint(c, target, radius, scale); p != nil {
			return p
		}
	}
	for i := len(g.Shapes) - 1; i >= 0; i-- {
		if p := r.TryGetPoint(g.Shapes[i], target, radius, scale); p != nil {
			return p
		}
	}
	return nil
}

func (GroupBounds) Contains(s shape.Shape, target ggedit.Point, radius, scale float64, r *Registry) bool {
	g := s.(*shape.Group)
	for _, c := range g.Connectors {
		if r.Contains(c, target, radius, scale) {
			return true
		}
	}
	for i := len(g.Shapes) - 1; i >= 0; i-- {
		if r.Contains(g.Shapes[i], target, radius, scale) {
			return true
		}
	}
	return false
}

func (GroupBounds) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, r *Registry) bool {
	for _, m := range s.(*shape.Group).Members() {
		if r.Overlaps(m, rect, radius, scale) {
			return true
		}
	}
	return false
}

// Of returns the axis-aligned bounding box of the defining points of
// shapes. It reports false when there are no points.
func Of(shapes []shape.Shape) (ggedit.Rect, bool) {
	pts := shape.AllPoints(shapes)
	if len(pts) == 0 {
		return ggedit.Rect{}, false
	}
	r := ggedit.NewRect(pts[0].Pt(), pts[0].Pt())
	for _, p := range pts[1:] {
		r = r.Extend(p.Pt())
	}
	return r, true
}
