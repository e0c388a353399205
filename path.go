package ggedit

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a backend-agnostic vector outline. Draw nodes build one per shape
// and hand it to a Surface; bounds providers flatten it for hit-testing.
type Path struct {
	FillRule FillRule

	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 8)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Reset removes all elements, keeping the allocated storage.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(r Rect) {
	p.MoveTo(r.Min.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Max.Y)
	p.LineTo(r.Min.X, r.Max.Y)
	p.Close()
}

// Ellipse adds a closed ellipse subpath inscribed in r.
func (p *Path) Ellipse(r Rect) {
	c := r.Center()
	p.MoveTo(c.X+r.Width()/2, c.Y)
	p.EllipticArc(c, r.Width()/2, r.Height()/2, 0, 2*math.Pi)
	p.Close()
}

// EllipticArc appends an axis-aligned elliptical arc around center,
// starting at angle start and sweeping by sweep radians. The arc begins
// with a line from the current point to the arc start when they differ.
func (p *Path) EllipticArc(center Point, rx, ry, start, sweep float64) {
	p.arc(center, rx, ry, 0, start, sweep)
}

// ArcTo appends an SVG-style elliptical arc from the current point to
// (x, y). rotation is in radians. Degenerate radii produce a straight line.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	from := p.current
	to := Pt(x, y)
	if from == to {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}

	// Endpoint to center parameterization, SVG 1.1 appendix F.6.5.
	sin, cos := math.Sincos(rotation)
	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := Point{
		X: cos*cx1 - sin*cy1 + (from.X+to.X)/2,
		Y: sin*cx1 + cos*cy1 + (from.Y+to.Y)/2,
	}

	u := V2((x1-cx1)/rx, (y1-cy1)/ry)
	v := V2((-x1-cx1)/rx, (-y1-cy1)/ry)
	theta := u.Atan2()
	delta := u.Angle(v)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	p.arc(center, rx, ry, rotation, theta, delta)
}

// arc splits the sweep into quarter turns and approximates each with a
// cubic Bezier.
func (p *Path) arc(center Point, rx, ry, rotation, start, sweep float64) {
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	rot := Rotate(rotation)
	at := func(a float64) (Point, Vec2) {
		sin, cos := math.Sincos(a)
		pt := rot.TransformPoint(Pt(rx*cos, ry*sin)).Add(center)
		tan := rot.TransformPoint(Pt(-rx*sin, ry*cos))
		return pt, tan.Vec()
	}

	p0, t0 := at(start)
	if len(p.elements) == 0 {
		p.MoveTo(p0.X, p0.Y)
	} else if p.current != p0 {
		p.LineTo(p0.X, p0.Y)
	}
	for i := 1; i <= n; i++ {
		p1, t1 := at(start + step*float64(i))
		p.CubicTo(
			p0.X+k*t0.X, p0.Y+k*t0.Y,
			p1.X-k*t1.X, p1.Y-k*t1.Y,
			p1.X, p1.Y,
		)
		p0, t0 = p1, t1
	}
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, one per subpath, with curves
// approximated to within tolerance.
func (p *Path) Flatten(tolerance float64) []Polyline {
	var out []Polyline
	var cur *Polyline
	var last Point
	begin := func(pt Point) {
		out = append(out, Polyline{Points: []Point{pt}})
		cur = &out[len(out)-1]
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
			last = e.Point
			continue
		case Close:
			if cur != nil {
				cur.Closed = true
				last = cur.Points[0]
				cur = nil
			}
			continue
		}
		if cur == nil {
			begin(last)
		}
		switch e := elem.(type) {
		case LineTo:
			cur.Points = append(cur.Points, e.Point)
			last = e.Point
		case QuadTo:
			cur.Points = QuadBez{P0: last, P1: e.Control, P2: e.Point}.Flatten(tolerance, cur.Points)
			last = e.Point
		case CubicTo:
			cur.Points = CubicBez{P0: last, P1: e.Control1, P2: e.Control2, P3: e.Point}.Flatten(tolerance, cur.Points)
			last = e.Point
		}
	}
	return out
}

// Bounds returns the tight bounding box of the path. Empty paths report
// false.
func (p *Path) Bounds() (Rect, bool) {
	var r Rect
	ok := false
	add := func(b Rect) {
		if !ok {
			r, ok = b, true
			return
		}
		r = r.Union(b)
	}
	var start, last Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(NewRect(e.Point, e.Point))
			start, last = e.Point, e.Point
		case LineTo:
			add(Segment{P0: last, P1: e.Point}.BoundingBox())
			last = e.Point
		case QuadTo:
			add(QuadBez{P0: last, P1: e.Control, P2: e.Point}.BoundingBox())
			last = e.Point
		case CubicTo:
			add(CubicBez{P0: last, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
			last = e.Point
		case Close:
			last = start
		}
	}
	return r, ok
}
