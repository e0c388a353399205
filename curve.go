package ggedit

import (
	"math"
	"sort"
)

// maxFlattenSteps bounds the number of line segments a single curve is
// flattened into.
const maxFlattenSteps = 256

// -------------------------------------------------------------------
// Segment - straight line
// -------------------------------------------------------------------

// Segment is a straight line from P0 to P1.
type Segment struct {
	P0, P1 Point
}

// Eval evaluates the segment at parameter t (0 to 1).
func (l Segment) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// BoundingBox returns the axis-aligned bounding box of the segment.
func (l Segment) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the length of the segment.
func (l Segment) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Distance returns the shortest distance from p to the segment.
func (l Segment) Distance(p Point) float64 {
	d := l.P1.Sub(l.P0).Vec()
	lenSq := d.LengthSq()
	if lenSq == 0 {
		return p.Distance(l.P0)
	}
	t := p.Sub(l.P0).Vec().Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(l.Eval(t))
}

// Intersects reports whether the segment crosses or touches r.
func (l Segment) Intersects(r Rect) bool {
	if r.Contains(l.P0) || r.Contains(l.P1) {
		return true
	}
	if !l.BoundingBox().Intersects(r) {
		return false
	}
	c := r.Corners()
	for i := range c {
		if segmentsCross(l.P0, l.P1, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

func segmentsCross(a, b, c, d Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) || (d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) || (d4 == 0 && onSegment(a, b, d))
}

func orient(a, b, c Point) float64 {
	return b.Sub(a).Vec().Cross(c.Sub(a).Vec())
}

func onSegment(a, b, p Point) bool {
	return NewRect(a, b).Contains(p)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez is a quadratic Bezier curve. P1 is the control point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Extrema returns the parameter values in (0, 1) where the derivative of
// either coordinate is zero, sorted ascending.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = bbox.Extend(q.Eval(t))
	}
	return bbox
}

// Flatten appends a polyline approximation of the curve to dst, excluding
// P0, so that consecutive curves can share endpoints.
func (q QuadBez) Flatten(tolerance float64, dst []Point) []Point {
	m := q.P0.Sub(q.P1.Mul(2)).Add(q.P2).Vec().Length()
	n := flattenSteps(2, m, tolerance)
	for i := 1; i <= n; i++ {
		dst = append(dst, q.Eval(float64(i)/float64(n)))
	}
	return dst
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez is a cubic Bezier curve. P1 and P2 are control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Extrema returns the parameter values in (0, 1) where the derivative of
// either coordinate is zero. A cubic has at most four, sorted ascending.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, solveQuadraticUnit(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticUnit(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.Extend(c.Eval(t))
	}
	return bbox
}

// Flatten appends a polyline approximation of the curve to dst, excluding
// P0.
func (c CubicBez) Flatten(tolerance float64, dst []Point) []Point {
	a := c.P0.Sub(c.P1.Mul(2)).Add(c.P2).Vec().Length()
	b := c.P1.Sub(c.P2.Mul(2)).Add(c.P3).Vec().Length()
	n := flattenSteps(3, math.Max(a, b), tolerance)
	for i := 1; i <= n; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(n)))
	}
	return dst
}

// flattenSteps applies Wang's formula: a degree-d curve whose largest
// second difference has length m needs sqrt(d(d-1)/8 * m / tolerance)
// segments to stay within tolerance of the chord polyline.
func flattenSteps(degree int, m, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	d := float64(degree)
	n := int(math.Ceil(math.Sqrt(d * (d - 1) / 8 * m / tolerance)))
	return max(1, min(n, maxFlattenSteps))
}

// solveQuadraticUnit returns the roots of a*t^2 + b*t + c = 0 that lie in
// the open interval (0, 1).
func solveQuadraticUnit(a, b, c float64) []float64 {
	const eps = 1e-12
	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	if math.Abs(a) < eps {
		if math.Abs(b) >= eps {
			keep(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return roots
	case disc == 0:
		keep(-b / (2 * a))
	default:
		sq := math.Sqrt(disc)
		// Numerically stable form avoiding cancellation.
		q := -0.5 * (b + math.Copysign(sq, b))
		keep(q / a)
		if q != 0 {
			keep(c / q)
		}
	}
	return roots
}
