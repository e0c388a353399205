// Package transform tracks the bounding box of a shape selection and
// applies edit-time transforms to its movable points.
//
// The movable point set is the deduplicated union of the defining points
// of every selected shape. Points shared between shapes, such as a
// connector joined to a line end, are transformed exactly once.
package transform

import (
	"math"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// GroupBox is the axis-aligned bounding box of a shape set.
type GroupBox struct {
	shapes []shape.Shape
	points []*shape.Point
	bounds ggedit.Rect
}

// New returns a box over shapes.
func New(shapes []shape.Shape) *GroupBox {
	b := &GroupBox{}
	b.Rebuild(shapes)
	return b
}

// Rebuild replaces the shape set and recomputes the point set and bounds.
func (b *GroupBox) Rebuild(shapes []shape.Shape) {
	b.shapes = shapes
	b.points = shape.Unique(shape.AllPoints(shapes))
	b.Refresh()
}

// Refresh recomputes the bounds from the current point positions without
// changing point membership.
func (b *GroupBox) Refresh() {
	if len(b.points) == 0 {
		b.bounds = ggedit.Rect{}
		return
	}
	r := ggedit.NewRect(b.points[0].Pt(), b.points[0].Pt())
	for _, p := range b.points[1:] {
		r = r.Extend(p.Pt())
	}
	b.bounds = r
}

// Bounds returns the current box. An empty box is the zero Rect.
func (b *GroupBox) Bounds() ggedit.Rect { return b.bounds }

// Shapes returns the shape set passed to the last Rebuild.
func (b *GroupBox) Shapes() []shape.Shape { return b.shapes }

// MovablePoints returns the deduplicated point set in first-seen order.
func (b *GroupBox) MovablePoints() []*shape.Point { return b.points }

// Empty reports whether the box has no points.
func (b *GroupBox) Empty() bool { return len(b.points) == 0 }

// Translate moves every point by (dx, dy).
func (b *GroupBox) Translate(dx, dy float64, points []*shape.Point) {
	for _, p := range points {
		p.Move(dx, dy)
	}
	b.Refresh()
}

// ScaleLeft moves the left edge by delta, keeping the right edge fixed.
func (b *GroupBox) ScaleLeft(delta float64, points []*shape.Point) {
	r := b.bounds
	b.scaleX(r.Right(), r.Width(), r.Width()-delta, points)
}

// ScaleRight moves the right edge by delta, keeping the left edge fixed.
func (b *GroupBox) ScaleRight(delta float64, points []*shape.Point) {
	r := b.bounds
	b.scaleX(r.Left(), r.Width(), r.Width()+delta, points)
}

// ScaleTop moves the top edge by delta, keeping the bottom edge fixed.
func (b *GroupBox) ScaleTop(delta float64, points []*shape.Point) {
	r := b.bounds
	b.scaleY(r.Bottom(), r.Height(), r.Height()-delta, points)
}

// ScaleBottom moves the bottom edge by delta, keeping the top edge fixed.
func (b *GroupBox) ScaleBottom(delta float64, points []*shape.Point) {
	r := b.bounds
	b.scaleY(r.Top(), r.Height(), r.Height()+delta, points)
}

// canScale reports whether a span change yields finite, ordered results.
func canScale(oldSpan, newSpan float64) bool {
	return oldSpan != 0 && newSpan > 0 && !math.IsInf(newSpan, 0) && !math.IsNaN(newSpan)
}

func (b *GroupBox) scaleX(fixed, oldSpan, newSpan float64, points []*shape.Point) {
	if !canScale(oldSpan, newSpan) {
		return
	}
	k := newSpan / oldSpan
	for _, p := range points {
		p.Set(fixed+(p.X-fixed)*k, p.Y)
	}
	b.Refresh()
}

func (b *GroupBox) scaleY(fixed, oldSpan, newSpan float64, points []*shape.Point) {
	if !canScale(oldSpan, newSpan) {
		return
	}
	k := newSpan / oldSpan
	for _, p := range points {
		p.Set(p.X, fixed+(p.Y-fixed)*k)
	}
	b.Refresh()
}

// Pivot is the running reference of a rotate gesture. The zero value is
// ready to use; Reset it when the gesture ends.
type Pivot struct {
	Center  ggedit.Point
	Angle   float64
	latched bool
}

// Latched reports whether the pivot has captured its center.
func (p *Pivot) Latched() bool { return p.latched }

// Reset forgets the latched center and angle.
func (p *Pivot) Reset() { *p = Pivot{} }

// Rotate rotates points about the pivot center by the angle the pointer
// (x, y) swept since the previous call. The first call on a fresh pivot
// latches the box center and the pointer angle without moving anything.
func (b *GroupBox) Rotate(x, y float64, points []*shape.Point, ref *Pivot) {
	if !ref.latched {
		ref.Center = b.bounds.Center()
		ref.Angle = math.Atan2(y-ref.Center.Y, x-ref.Center.X)
		ref.latched = true
		return
	}
	angle := math.Atan2(y-ref.Center.Y, x-ref.Center.X)
	m := ggedit.RotateAt(angle-ref.Angle, ref.Center)
	ref.Angle = angle
	if m.IsIdentity() {
		return
	}
	for _, p := range points {
		q := m.TransformPoint(p.Pt())
		p.Set(q.X, q.Y)
	}
	b.Refresh()
}
