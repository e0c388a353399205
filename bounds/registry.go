// Package bounds answers geometric queries about shapes: point
// containment, rectangle overlap and nearest editable point.
//
// Each shape kind is served by a Provider registered in a Registry. The
// hit-test engine only talks to the registry, so new kinds can be supported
// by registering a provider without touching the hit-test algorithm.
package bounds

import (
	"log/slog"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// Provider answers bounds queries for one shape kind. The effective
// tolerance of every query is radius/scale. Providers of composite kinds
// recurse through the registry they are given.
type Provider interface {
	// TryGetPoint returns a defining point of s within tolerance of
	// target, or nil.
	TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64, r *Registry) *shape.Point

	// Contains reports whether target hits s. Filled or closed shapes
	// test their interior; open shapes test proximity to the stroke.
	Contains(s shape.Shape, target ggedit.Point, radius, scale float64, r *Registry) bool

	// Overlaps reports whether s intersects rect, for marquee selection.
	Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64, r *Registry) bool
}

// Registry maps shape kinds to providers. It is not safe for concurrent
// mutation; populate it before editing starts.
type Registry struct {
	providers map[shape.Kind]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[shape.Kind]Provider)}
}

// Default returns a registry with providers for every built-in kind.
func Default() *Registry {
	r := NewRegistry()
	r.Register(shape.KindPoint, PointBounds{})
	r.Register(shape.KindLine, LineBounds{})
	r.Register(shape.KindArc, ArcBounds{})
	r.Register(shape.KindQuadraticBezier, QuadraticBezierBounds{})
	r.Register(shape.KindCubicBezier, CubicBezierBounds{})
	r.Register(shape.KindRectangle, BoxBounds{})
	r.Register(shape.KindEllipse, EllipseBounds{})
	r.Register(shape.KindPath, PathBounds{})
	r.Register(shape.KindText, BoxBounds{})
	r.Register(shape.KindImage, BoxBounds{})
	r.Register(shape.KindGroup, GroupBounds{})
	return r
}

// Register installs p for kind, replacing any previous provider. A nil p
// removes the kind.
func (r *Registry) Register(kind shape.Kind, p Provider) {
	if p == nil {
		delete(r.providers, kind)
		return
	}
	r.providers[kind] = p
}

// Resolve returns the provider for the kind of s.
func (r *Registry) Resolve(s shape.Shape) (Provider, bool) {
	p, ok := r.providers[s.Kind()]
	return p, ok
}

// resolve is Resolve with the missing-provider case logged.
func (r *Registry) resolve(s shape.Shape) (Provider, bool) {
	p, ok := r.Resolve(s)
	if !ok {
		ggedit.Logger().Debug("bounds: no provider registered",
			slog.String("kind", s.Kind().String()),
			slog.String("id", string(s.AsBase().ID())))
	}
	return p, ok
}

// TryGetPoint dispatches to the provider of s. A kind without a provider
// yields nil.
func (r *Registry) TryGetPoint(s shape.Shape, target ggedit.Point, radius, scale float64) *shape.Point {
	p, ok := r.resolve(s)
	if !ok {
		return nil
	}
	return p.TryGetPoint(s, target, radius, scale, r)
}

// Contains dispatches to the provider of s. A kind without a provider
// never matches.
func (r *Registry) Contains(s shape.Shape, target ggedit.Point, radius, scale float64) bool {
	p, ok := r.resolve(s)
	if !ok {
		return false
	}
	return p.Contains(s, target, radius, scale, r)
}

// Overlaps dispatches to the provider of s. A kind without a provider
// never matches.
func (r *Registry) Overlaps(s shape.Shape, rect ggedit.Rect, radius, scale float64) bool {
	p, ok := r.resolve(s)
	if !ok {
		return false
	}
	return p.Overlaps(s, rect, radius, scale, r)
}
