// Package input defines the pointer event contract consumed by the
// editor: pointer arguments, modifier keys and grid snapping.
package input

import (
	"math"
	"strings"

	"github.com/gogpu/ggedit"
)

// Modifier is a bitset of keyboard modifiers held during a pointer event.
type Modifier uint8

const (
	ModifierShift Modifier = 1 << iota
	ModifierControl
	ModifierAlt

	// ModifierNone is the empty set.
	ModifierNone Modifier = 0
)

// Has reports whether every flag in f is set.
func (m Modifier) Has(f Modifier) bool { return m&f == f }

func (m Modifier) String() string {
	if m == ModifierNone {
		return "None"
	}
	var parts []string
	for _, f := range []struct {
		flag Modifier
		name string
	}{
		{ModifierShift, "Shift"},
		{ModifierControl, "Control"},
		{ModifierAlt, "Alt"},
	} {
		if m.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Args is a pointer position in model coordinates plus the modifiers held.
type Args struct {
	X, Y     float64
	Modifier Modifier
}

// At returns Args for (x, y) with no modifiers.
func At(x, y float64) Args { return Args{X: x, Y: y} }

// Point returns the position as a point.
func (a Args) Point() ggedit.Point { return ggedit.Pt(a.X, a.Y) }

// SnapFunc maps a pointer position to the position an edit should use.
type SnapFunc func(Args) (float64, float64)

// NoSnap returns the pointer position unchanged.
func NoSnap(a Args) (float64, float64) { return a.X, a.Y }

// GridSnap returns a SnapFunc that rounds to a grid of sx by sy. When
// enabled is false, or a step is not positive, that axis is passed
// through.
func GridSnap(enabled bool, sx, sy float64) SnapFunc {
	if !enabled {
		return NoSnap
	}
	return func(a Args) (float64, float64) {
		return Snap(a.X, sx), Snap(a.Y, sy)
	}
}

// Snap rounds v to the nearest multiple of step. Halfway values round
// away from zero. A non-positive step returns v.
func Snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
