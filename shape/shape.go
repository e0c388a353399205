// Package shape defines the diagram model: a closed set of shape kinds that
// share a common capability surface, plus styles, groups and the layer,
// page, document and project containers.
//
// Points are the only geometry. Every other kind is defined by a fixed set
// of *Point values, and two shapes that hold the same *Point are
// geometrically joined there. A point's Owner field is a weak reference to
// the shape ID that last claimed it; it is used for lookup only.
package shape

import "github.com/gogpu/ggedit"

// Shape is implemented by every kind in this package. The set is closed:
// kind-specific behavior outside the package dispatches on Kind or through
// the bounds provider registry.
type Shape interface {
	Kind() Kind
	AsBase() *Base

	// Points appends the defining points to dst and returns the result.
	// Shared points appear once per reference.
	Points(dst []*Point) []*Point

	// Move translates every defining point of the shape.
	Move(dx, dy float64)

	// Draw hands the shape, or its members, to the renderer.
	Draw(dc ggedit.Surface, r Renderer)

	// IsDirty reports whether the shape or any of its points changed since
	// the last Invalidate.
	IsDirty() bool

	// Invalidate clears the dirty state of the shape and its points.
	Invalidate()

	// Copy returns a deep copy with fresh IDs. Points already present in
	// shared are reused, which preserves connections inside a copied set.
	Copy(shared map[*Point]*Point) Shape

	isShape()
}

// Renderer draws a single leaf shape. Composite shapes call it once per
// member.
type Renderer interface {
	DrawShape(dc ggedit.Surface, s Shape)
}

// AllPoints returns the defining points of every shape in order.
func AllPoints(shapes []Shape) []*Point {
	var pts []*Point
	for _, s := range shapes {
		pts = s.Points(pts)
	}
	return pts
}

// CopyAll copies shapes as one set so that points shared between them
// remain shared in the copies.
func CopyAll(shapes []Shape) []Shape {
	shared := make(map[*Point]*Point)
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Copy(shared)
	}
	return out
}
