// Package ggedit is the geometry and editing core of a 2D vector-diagram
// editor.
//
// # Overview
//
// The root package holds the value types every other package builds on:
// [Point], [Vec2], [Rect], [Matrix], the Bezier helpers used for bounds and
// hit-testing ([Segment], [QuadBez], [CubicBez]), the backend-agnostic [Path]
// description that draw nodes cache, and the [Surface] capability contract
// that rendering backends implement.
//
// The editing engine lives in sub-packages:
//   - shape: the closed set of shape kinds, styles, groups and containers
//   - bounds: per-kind bounds providers behind a registry
//   - hittest: front-to-back pointer resolution
//   - transform: group bounding box with translate, scale and rotate
//   - decorator: the resize/move handle state machine
//   - render: draw node cache, renderer and backend registry
//   - editor: the explicit editing context tying it all together
//
// # Quick Start
//
//	ed, err := editor.New(config.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	line := ed.Factory().Line(0, 0, 100, 100)
//	ed.Add(line)
//
//	// Drag the end point, then undo.
//	ed.PointerPressed(input.At(100, 100))
//	ed.PointerMoved(input.At(130, 100))
//	ed.PointerReleased(input.At(130, 100))
//	ed.Undo()
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// # Threading
//
// Editing is single-threaded. Every mutation happens synchronously on the
// goroutine delivering input, so the engine packages carry no locks. Only
// the package-level registries are safe for concurrent use.
package ggedit

// Version is the current version of the module.
const Version = "0.3.0"
