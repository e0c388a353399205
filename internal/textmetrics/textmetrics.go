// Package textmetrics measures and places single-line text inside a box.
//
// Advances come from HarfBuzz shaping (go-text/typesetting) so kerning
// and ligatures are accounted for. Vertical metrics come from the
// golang.org/x/image OpenType face. The embedded Go Regular font is used
// when no other font data is supplied.
package textmetrics

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// Size is the extent of a measured string. Ascent and Descent are both
// positive distances from the baseline.
type Size struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (s Size) Height() float64 { return s.Ascent + s.Descent }

// Measurer measures strings in one font. It is safe for concurrent use.
type Measurer struct {
	mu     sync.Mutex
	font   *gtfont.Font
	ot     *opentype.Font
	shaper shaping.HarfbuzzShaper
}

// New parses TrueType or OpenType data.
func New(data []byte) (*Measurer, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parse font: %w", err)
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parse font metrics: %w", err)
	}
	return &Measurer{font: face.Font, ot: ot}, nil
}

var (
	defaultOnce     sync.Once
	defaultMeasurer *Measurer
)

// Default returns a shared measurer for Go Regular.
func Default() *Measurer {
	defaultOnce.Do(func() {
		m, err := New(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("textmetrics: embedded font: %v", err))
		}
		defaultMeasurer = m
	})
	return defaultMeasurer
}

// Advance returns the shaped width of s at size.
func (m *Measurer) Advance(s string, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	runes := []rune(s)
	dir := Direction(s)
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir.di(),
		Face:      gtfont.NewFace(m.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    script(runes),
		Language:  language.NewLanguage("en"),
	}
	m.mu.Lock()
	out := m.shaper.Shape(in)
	m.mu.Unlock()
	adv := float64(out.Advance) / 64
	if adv < 0 {
		adv = -adv
	}
	return adv
}

// VMetrics returns the ascent and descent at size.
func (m *Measurer) VMetrics(size float64) (ascent, descent float64) {
	if size <= 0 {
		return 0, 0
	}
	face, err := opentype.NewFace(m.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return size * 0.8, size * 0.2
	}
	defer face.Close()
	met := face.Metrics()
	return float64(met.Ascent) / 64, float64(met.Descent) / 64
}

// Measure returns the extent of s at size.
func (m *Measurer) Measure(s string, size float64) Size {
	a, d := m.VMetrics(size)
	return Size{Width: m.Advance(s, size), Ascent: a, Descent: d}
}

// Layout returns the baseline origin that places s inside box with the
// given alignment. For right-to-left text the horizontal alignment is
// mirrored, so Left always means the start of the line.
func (m *Measurer) Layout(s string, size float64, box ggedit.Rect, h shape.TextHAlignment, v shape.TextVAlignment) ggedit.Point {
	sz := m.Measure(s, size)
	if Direction(s) == RightToLeft {
		switch h {
		case shape.TextHAlignLeft:
			h = shape.TextHAlignRight
		case shape.TextHAlignRight:
			h = shape.TextHAlignLeft
		}
	}

	var x float64
	switch h {
	case shape.TextHAlignLeft:
		x = box.Left()
	case shape.TextHAlignRight:
		x = box.Right() - sz.Width
	default:
		x = box.Center().X - sz.Width/2
	}

	var y float64
	switch v {
	case shape.TextVAlignTop:
		y = box.Top() + sz.Ascent
	case shape.TextVAlignBottom:
		y = box.Bottom() - sz.Descent
	default:
		y = box.Center().Y + (sz.Ascent-sz.Descent)/2
	}
	return ggedit.Pt(x, y)
}
