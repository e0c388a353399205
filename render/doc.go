// Package render turns shapes into draw calls against a [ggedit.Surface].
//
// Every visible shape owns a lazily built [Node] holding its resolved fill
// brush, stroke pen and local geometry. The [Renderer] keeps nodes in an
// LRU cache keyed by shape ID and rebuilds only what changed: geometry when
// the shape or one of its points is dirty, paint state when the style
// reference or style version changes.
//
// # Zoom compensation
//
// Shapes flagged [shape.StateSize] keep a constant screen size and shapes
// flagged [shape.StateThickness] keep a constant stroke width. A node
// scales about its own center to achieve this, so the same cached
// geometry serves every zoom level.
//
// # Backends
//
// Output formats register themselves by name, following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/ggedit/render/raster"
//
//	exp, err := render.NewBackend("raster", r)
//	if err != nil {
//	    return err
//	}
//	err = exp.Export(w, page)
package render
