package shape

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggedit"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
)

// ArgbColor is an 8-bit color with straight alpha.
type ArgbColor struct {
	A, R, G, B uint8
}

// ARGB is a convenience constructor.
func ARGB(a, r, g, b uint8) ArgbColor {
	return ArgbColor{A: a, R: r, G: g, B: b}
}

// ParseArgb parses "#AARRGGBB" or "#RRGGBB". The short form is opaque.
func ParseArgb(s string) (ArgbColor, error) {
	hex := strings.TrimPrefix(s, "#")
	var alpha uint8 = 0xff
	switch len(hex) {
	case 6:
	case 8:
		if _, err := fmt.Sscanf(hex[:2], "%02x", &alpha); err != nil {
			return ArgbColor{}, fmt.Errorf("shape: invalid alpha in %q: %w", s, err)
		}
		hex = hex[2:]
	default:
		return ArgbColor{}, fmt.Errorf("shape: invalid color %q", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return ArgbColor{}, fmt.Errorf("shape: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return ArgbColor{A: alpha, R: r, G: g, B: b}, nil
}

// MustParseArgb is like ParseArgb but panics on malformed input. It is
// meant for constant colors.
func MustParseArgb(s string) ArgbColor {
	c, err := ParseArgb(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHsv builds a color from hue in degrees and saturation/value in [0,1].
func FromHsv(h, s, v float64, alpha uint8) ArgbColor {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return ArgbColor{A: alpha, R: r, G: g, B: b}
}

// Hsv returns the hue, saturation and value of the color.
func (c ArgbColor) Hsv() (h, s, v float64) {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsv()
}

// RGBA converts to the backend color representation.
func (c ArgbColor) RGBA() ggedit.RGBA {
	return ggedit.RGBA8(c.A, c.R, c.G, c.B)
}

// String formats the color as #AARRGGBB.
func (c ArgbColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c ArgbColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ArgbColor) UnmarshalText(b []byte) error {
	parsed, err := ParseArgb(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TextHAlignment is the horizontal placement of text inside its box.
type TextHAlignment int

const (
	TextHAlignLeft TextHAlignment = iota
	TextHAlignCenter
	TextHAlignRight
)

// TextVAlignment is the vertical placement of text inside its box.
type TextVAlignment int

const (
	TextVAlignTop TextVAlignment = iota
	TextVAlignCenter
	TextVAlignBottom
)

// TextStyle describes the font and alignment of text shapes.
type TextStyle struct {
	FontName string
	FontFile string
	FontSize float64
	Bold     bool
	Italic   bool
	HAlign   TextHAlignment
	VAlign   TextVAlignment
}

// Font returns the backend font selector.
func (t TextStyle) Font() ggedit.Font {
	return ggedit.Font{Family: t.FontName, Size: t.FontSize, Bold: t.Bold, Italic: t.Italic}
}

// Style is shared by reference between shapes. Mutate it through Update so
// that draw nodes notice the change.
type Style struct {
	ID         ID
	Name       string
	Stroke     ArgbColor
	Fill       ArgbColor
	Thickness  float64
	LineCap    ggedit.LineCap
	Dashes     []float64
	DashOffset float64
	Text       TextStyle

	version uint64
}

// NewStyle returns a style with the default stroke and text settings.
func NewStyle(name string, stroke, fill ArgbColor, thickness float64) *Style {
	return &Style{
		ID:        NewID(PrefixStyle),
		Name:      name,
		Stroke:    stroke,
		Fill:      fill,
		Thickness: thickness,
		LineCap:   ggedit.LineCapRound,
		Text: TextStyle{
			FontName: "Calibri",
			FontSize: 12,
			HAlign:   TextHAlignCenter,
			VAlign:   TextVAlignCenter,
		},
	}
}

// Version is incremented by every Update call.
func (s *Style) Version() uint64 { return s.version }

// Update applies fn to the style and bumps its version.
func (s *Style) Update(fn func(*Style)) {
	fn(s)
	s.version++
}

// Clone returns a deep copy with a new ID and a fresh version counter.
func (s *Style) Clone() *Style {
	out := &Style{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		// Style holds only plain values and slices; copier cannot fail on it.
		panic(fmt.Sprintf("shape: clone style: %v", err))
	}
	out.ID = NewID(PrefixStyle)
	out.version = 0
	return out
}

// Pen resolves the stroke for drawing at the given width.
func (s *Style) Pen(width float64) ggedit.Pen {
	var dashes []float64
	if len(s.Dashes) > 0 {
		dashes = make([]float64, len(s.Dashes))
		for i, d := range s.Dashes {
			dashes[i] = d * width
		}
	}
	return ggedit.Pen{
		Color:      s.Stroke.RGBA(),
		Width:      width,
		Cap:        s.LineCap,
		Dashes:     dashes,
		DashOffset: s.DashOffset * width,
	}
}

// Brush resolves the fill for drawing.
func (s *Style) Brush() ggedit.Paint {
	return ggedit.Paint{Color: s.Fill.RGBA()}
}
