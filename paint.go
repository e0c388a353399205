package ggedit

import "fmt"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapFlat specifies a flat line cap.
	LineCapFlat LineCap = iota
	// LineCapSquare specifies a square line cap.
	LineCapSquare
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// String returns the lowercase cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapFlat:
		return "flat"
	case LineCapSquare:
		return "square"
	case LineCapRound:
		return "round"
	}
	return fmt.Sprintf("LineCap(%d)", int(c))
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero
)

// String returns "evenodd" or "nonzero".
func (r FillRule) String() string {
	switch r {
	case FillRuleEvenOdd:
		return "evenodd"
	case FillRuleNonZero:
		return "nonzero"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r FillRule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is used by the
// TOML and environment configuration loaders.
func (r *FillRule) UnmarshalText(b []byte) error {
	switch string(b) {
	case "evenodd", "EvenOdd":
		*r = FillRuleEvenOdd
	case "nonzero", "NonZero":
		*r = FillRuleNonZero
	default:
		return fmt.Errorf("ggedit: unknown fill rule %q", b)
	}
	return nil
}

// RGBA is a color with straight (non-premultiplied) components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA8 builds a color from 8-bit channels.
func RGBA8(a, r, g, b uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// IsTransparent reports whether the color has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// Paint is a resolved fill brush.
type Paint struct {
	Color RGBA
}

// Pen is a resolved stroke. Width is in device units after zoom
// compensation has been applied by the draw node.
type Pen struct {
	Color      RGBA
	Width      float64
	Cap        LineCap
	Dashes     []float64
	DashOffset float64
}

// Font selects a typeface for DrawText.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}
