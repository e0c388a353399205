package bounds

import (
	"math"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
	"github.com/rclancey/earcut"
)

// flattenTolerance is the maximum distance between a curve and the
// polyline used to hit-test it.
const flattenTolerance = 0.25

// tolerance converts a device radius into model units.
func tolerance(radius, scale float64) float64 {
	if scale <= 0 {
		return radius
	}
	return radius / scale
}

// rendered returns the rectangle s occupies on screen. Shapes flagged to
// keep a constant screen size shrink about their center as zoom grows.
func rendered(s shape.Shape, r ggedit.Rect, scale float64) ggedit.Rect {
	if scale <= 0 || scale == 1 || !s.AsBase().State.ScalesSize() {
		return r
	}
	c := r.Center()
	hw := r.Width() / 2 / scale
	hh := r.Height() / 2 / scale
	return ggedit.NewRect(ggedit.Pt(c.X-hw, c.Y-hh), ggedit.Pt(c.X+hw, c.Y+hh))
}

func nearPoint(p, target ggedit.Point, tol float64) bool {
	return math.Abs(p.X-target.X) <= tol && math.Abs(p.Y-target.Y) <= tol
}

func tryPoints(pts []*shape.Point, target ggedit.Point, tol float64) *shape.Point {
	for _, p := range pts {
		if nearPoint(p.Pt(), target, tol) {
			return p
		}
	}
	return nil
}

func edges(l ggedit.Polyline, fn func(ggedit.Segment) bool) bool {
	pts := l.Points
	if len(pts) == 1 {
		return fn(ggedit.Segment{P0: pts[0], P1: pts[0]})
	}
	for i := 1; i < len(pts); i++ {
		if fn(ggedit.Segment{P0: pts[i-1], P1: pts[i]}) {
			return true
		}
	}
	if l.Closed && len(pts) > 2 {
		return fn(ggedit.Segment{P0: pts[len(pts)-1], P1: pts[0]})
	}
	return false
}

// nearStroke reports whether target lies within tol of any polyline edge.
func nearStroke(lines []ggedit.Polyline, target ggedit.Point, tol float64) bool {
	for _, l := range lines {
		if edges(l, func(s ggedit.Segment) bool { return s.Distance(target) <= tol }) {
			return true
		}
	}
	return false
}

// inside reports whether target is inside the area enclosed by lines under
// rule. Each polyline is treated as closed.
func inside(lines []ggedit.Polyline, target ggedit.Point, rule ggedit.FillRule) bool {
	if rule != ggedit.FillRuleEvenOdd {
		wn := 0
		for _, l := range lines {
			wn += winding(l.Points, target)
		}
		return wn != 0
	}
	count := 0
	for _, l := range lines {
		if inRing(l.Points, target) {
			count++
		}
	}
	return count%2 == 1
}

// winding returns the signed number of times the closed ring pts winds
// around target.
func winding(pts []ggedit.Point, target ggedit.Point) int {
	if len(pts) < 3 {
		return 0
	}
	wn := 0
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		side := (b.X-a.X)*(target.Y-a.Y) - (target.X-a.X)*(b.Y-a.Y)
		switch {
		case a.Y <= target.Y && b.Y > target.Y && side > 0:
			wn++
		case a.Y > target.Y && b.Y <= target.Y && side < 0:
			wn--
		}
	}
	return wn
}

// inRing triangulates the ring with earcut and tests each triangle.
func inRing(pts []ggedit.Point, target ggedit.Point) bool {
	if len(pts) < 3 {
		return false
	}
	coords := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}
	tris, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return false
	}
	for i := 0; i+2 < len(tris); i += 3 {
		if inTriangle(target, pts[tris[i]], pts[tris[i+1]], pts[tris[i+2]]) {
			return true
		}
	}
	return false
}

func inTriangle(p, a, b, c ggedit.Point) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(a, b, p ggedit.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// overlapsLines reports whether any edge touches rect or, for filled
// outlines, whether rect lies inside the fill.
func overlapsLines(lines []ggedit.Polyline, rect ggedit.Rect, filled bool, rule ggedit.FillRule) bool {
	for _, l := range lines {
		if edges(l, func(s ggedit.Segment) bool { return s.Intersects(rect) }) {
			return true
		}
	}
	return filled && inside(lines, rect.Center(), rule)
}

// outline flattens a path built by fn.
func outline(fn func(p *ggedit.Path)) []ggedit.Polyline {
	p := ggedit.NewPath()
	fn(p)
	return p.Flatten(flattenTolerance)
}
