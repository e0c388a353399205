// Package hittest resolves pointer positions to shapes and points.
//
// Candidates are tested front to back, which is the reverse of paint
// order, so the topmost shape always wins. Every geometric question is
// delegated to a [bounds.Registry]; the engine itself knows nothing about
// shape kinds.
package hittest

import (
	"log/slog"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/bounds"
	"github.com/gogpu/ggedit/shape"
)

// Engine resolves hits against a bounds registry.
type Engine struct {
	registry *bounds.Registry
}

// New returns an engine over r. A nil r uses [bounds.Default].
func New(r *bounds.Registry) *Engine {
	if r == nil {
		r = bounds.Default()
	}
	return &Engine{registry: r}
}

// Registry returns the registry the engine consults.
func (e *Engine) Registry() *bounds.Registry { return e.registry }

// TryGetShape returns the topmost visible shape containing target within
// radius/zoom model units, or nil.
func (e *Engine) TryGetShape(shapes []shape.Shape, target ggedit.Point, radius, zoom float64) shape.Shape {
	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		if !s.AsBase().State.IsVisible() {
			continue
		}
		if e.registry.Contains(s, target, radius, zoom) {
			ggedit.Logger().Debug("hittest: shape hit",
				slog.String("id", string(s.AsBase().ID())),
				slog.String("kind", s.Kind().String()))
			return s
		}
	}
	return nil
}

// TryGetPoint returns the defining point of the topmost visible shape that
// lies within radius/zoom of target, or nil.
func (e *Engine) TryGetPoint(shapes []shape.Shape, target ggedit.Point, radius, zoom float64) *shape.Point {
	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		if !s.AsBase().State.IsVisible() {
			continue
		}
		if p := e.registry.TryGetPoint(s, target, radius, zoom); p != nil {
			return p
		}
	}
	return nil
}

// TryGetShapes returns every visible shape overlapping rect, in paint
// order. It returns nil when nothing overlaps.
func (e *Engine) TryGetShapes(shapes []shape.Shape, rect ggedit.Rect, radius, zoom float64) []shape.Shape {
	var out []shape.Shape
	for _, s := range shapes {
		if !s.AsBase().State.IsVisible() {
			continue
		}
		if e.registry.Overlaps(s, rect, radius, zoom) {
			out = append(out, s)
		}
	}
	return out
}
