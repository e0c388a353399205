package ggedit

import "math"

// Rect is an axis-aligned rectangle. A normalized Rect has Min <= Max on
// both axes; zero width or height is valid.
type Rect struct {
	Min, Max Point
}

// NewRect returns the normalized rectangle spanned by two corners.
func NewRect(p0, p1 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		Max: Point{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

// RectFromPoints returns the smallest rectangle containing pts.
// It returns the zero Rect and false when pts is empty.
func RectFromPoints(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Extend(p)
	}
	return r, true
}

// XYWH returns the rectangle with top-left (x, y) and the given size.
// Negative sizes are normalized.
func XYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Right() float64  { return r.Max.X }
func (r Rect) Bottom() float64 { return r.Max.Y }

// Width returns the horizontal span, never negative.
func (r Rect) Width() float64 { return math.Max(0, r.Max.X-r.Min.X) }

// Height returns the vertical span, never negative.
func (r Rect) Height() float64 { return math.Max(0, r.Max.Y-r.Min.Y) }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// IsDegenerate reports whether the rectangle has zero area.
func (r Rect) IsDegenerate() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return r.Extend(o.Min).Extend(o.Max)
}

// Inflate grows the rectangle by d on every side. Negative d shrinks it,
// collapsing to the center rather than inverting.
func (r Rect) Inflate(d float64) Rect {
	out := Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
	c := r.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether the rectangles share any point, edges included.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}
