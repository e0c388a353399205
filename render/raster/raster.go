// Package raster renders pages to pixels with gg.Context.
//
// Importing the package registers the "raster" backend:
//
//	import _ "github.com/gogpu/ggedit/render/raster"
//
//	exp, _ := render.NewBackend("raster", r)
//	err := exp.Export(w, page) // PNG
//
// Only pages can be exported. Text is drawn with the embedded Go fonts;
// the font family of a style is not consulted, only its weight and slant.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/render"
	"github.com/gogpu/ggedit/shape"
)

// Name is the registry name of this backend.
const Name = "raster"

func init() {
	render.RegisterBackend(Name, func(r *render.Renderer) render.Exporter {
		return NewExporter(r)
	})
}

// Surface draws onto a gg.Context. It implements ggedit.Surface.
type Surface struct {
	ctx   *gg.Context
	faces map[faceKey]text.Face
}

var _ ggedit.Surface = (*Surface)(nil)

// NewSurface creates a transparent surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	return &Surface{
		ctx:   gg.NewContext(width, height),
		faces: make(map[faceKey]text.Face),
	}
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.ctx }

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// EncodePNG writes the rendered pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.ctx.EncodePNG(w) }

// Close releases the context.
func (s *Surface) Close() error { return s.ctx.Close() }

func (s *Surface) Save()                    { s.ctx.Push() }
func (s *Surface) Restore()                 { s.ctx.Pop() }
func (s *Surface) Translate(dx, dy float64) { s.ctx.Translate(dx, dy) }
func (s *Surface) Scale(sx, sy float64)     { s.ctx.Scale(sx, sy) }

// FillPath fills p using its fill rule.
func (s *Surface) FillPath(p *ggedit.Path, fill ggedit.Paint) {
	if p == nil || fill.Color.IsTransparent() {
		return
	}
	s.ctx.ClearPath()
	s.setPath(p)
	s.ctx.SetFillRule(convertFillRule(p.FillRule))
	s.ctx.SetFillBrush(gg.Solid(convertColor(fill.Color)))
	s.fill()
}

// StrokePath strokes p with pen.
func (s *Surface) StrokePath(p *ggedit.Path, pen ggedit.Pen) {
	if p == nil {
		return
	}
	s.ctx.ClearPath()
	s.setPath(p)
	s.stroke(pen)
}

func (s *Surface) FillRect(r ggedit.Rect, fill ggedit.Paint) {
	if fill.Color.IsTransparent() {
		return
	}
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	s.ctx.SetFillRule(gg.FillRuleNonZero)
	s.ctx.SetFillBrush(gg.Solid(convertColor(fill.Color)))
	s.fill()
}

func (s *Surface) StrokeRect(r ggedit.Rect, pen ggedit.Pen) {
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	s.stroke(pen)
}

func (s *Surface) FillEllipse(r ggedit.Rect, fill ggedit.Paint) {
	if fill.Color.IsTransparent() {
		return
	}
	c := r.Center()
	s.ctx.ClearPath()
	s.ctx.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	s.ctx.SetFillRule(gg.FillRuleNonZero)
	s.ctx.SetFillBrush(gg.Solid(convertColor(fill.Color)))
	s.fill()
}

func (s *Surface) StrokeEllipse(r ggedit.Rect, pen ggedit.Pen) {
	c := r.Center()
	s.ctx.ClearPath()
	s.ctx.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	s.stroke(pen)
}

// DrawText draws s with its baseline at origin. The context draws glyphs
// in device space, so the origin and size are mapped through the current
// transform here.
func (s *Surface) DrawText(str string, origin ggedit.Point, font ggedit.Font, fill ggedit.Paint) {
	if str == "" || font.Size <= 0 || fill.Color.IsTransparent() {
		return
	}
	m := s.ctx.GetTransform()
	size := font.Size * math.Hypot(m.A, m.D)
	face, ok := s.face(font, size)
	if !ok {
		return
	}
	x, y := s.ctx.TransformPoint(origin.X, origin.Y)

	s.ctx.Push()
	s.ctx.Identity()
	s.ctx.SetFont(face)
	s.ctx.SetFillBrush(gg.Solid(convertColor(fill.Color)))
	s.ctx.DrawString(str, x, y)
	s.ctx.Pop()
}

// DrawImage scales img into dst.
func (s *Surface) DrawImage(img image.Image, dst ggedit.Rect) {
	if img == nil || dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}
	s.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         dst.Min.X,
		Y:         dst.Min.Y,
		DstWidth:  dst.Width(),
		DstHeight: dst.Height(),
	})
}

func (s *Surface) fill() {
	if err := s.ctx.Fill(); err != nil {
		ggedit.Logger().Warn("raster: fill failed", "err", err)
	}
}

func (s *Surface) stroke(pen ggedit.Pen) {
	if pen.Width <= 0 || pen.Color.IsTransparent() {
		s.ctx.ClearPath()
		return
	}
	s.ctx.SetStrokeBrush(gg.Solid(convertColor(pen.Color)))
	s.ctx.SetLineWidth(pen.Width)
	s.ctx.SetLineCap(convertLineCap(pen.Cap))
	if len(pen.Dashes) > 0 {
		s.ctx.SetDash(pen.Dashes...)
		s.ctx.SetDashOffset(pen.DashOffset)
	} else {
		s.ctx.ClearDash()
	}
	if err := s.ctx.Stroke(); err != nil {
		ggedit.Logger().Warn("raster: stroke failed", "err", err)
	}
}

// setPath replays p onto the context's current path.
func (s *Surface) setPath(p *ggedit.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case ggedit.MoveTo:
			s.ctx.MoveTo(e.Point.X, e.Point.Y)
		case ggedit.LineTo:
			s.ctx.LineTo(e.Point.X, e.Point.Y)
		case ggedit.QuadTo:
			s.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case ggedit.CubicTo:
			s.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case ggedit.Close:
			s.ctx.ClosePath()
		}
	}
}

type faceKey struct {
	bold, italic bool
	size         float64
}

func (s *Surface) face(font ggedit.Font, size float64) (text.Face, bool) {
	key := faceKey{bold: font.Bold, italic: font.Italic, size: size}
	if f, ok := s.faces[key]; ok {
		return f, true
	}
	src, err := goSource(font.Bold, font.Italic)
	if err != nil {
		ggedit.Logger().Warn("raster: font unavailable", "err", err)
		return nil, false
	}
	f := src.Face(size)
	s.faces[key] = f
	return f, true
}

var (
	sourcesOnce sync.Once
	sources     [4]*text.FontSource
	sourcesErr  error
)

// goSource returns the shared Go font source for the given style.
func goSource(bold, italic bool) (*text.FontSource, error) {
	sourcesOnce.Do(func() {
		for i, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			src, err := text.NewFontSource(data)
			if err != nil {
				sourcesErr = fmt.Errorf("raster: load go font: %w", err)
				return
			}
			sources[i] = src
		}
	})
	if sourcesErr != nil {
		return nil, sourcesErr
	}
	i := 0
	if bold {
		i |= 1
	}
	if italic {
		i |= 2
	}
	return sources[i], nil
}

func convertColor(c ggedit.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func convertFillRule(r ggedit.FillRule) gg.FillRule {
	if r == ggedit.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func convertLineCap(c ggedit.LineCap) gg.LineCap {
	switch c {
	case ggedit.LineCapRound:
		return gg.LineCapRound
	case ggedit.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// Exporter renders pages through a shared renderer and encodes them as PNG.
type Exporter struct {
	r *render.Renderer
}

// NewExporter returns an exporter drawing through r.
func NewExporter(r *render.Renderer) *Exporter {
	return &Exporter{r: r}
}

// Render draws p at the renderer's zoom. The caller owns the returned
// surface.
func (e *Exporter) Render(p *shape.Page) (*Surface, error) {
	zoom := e.r.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w := int(math.Ceil(p.Width * zoom))
	h := int(math.Ceil(p.Height * zoom))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: page %q has no area (%gx%g)", p.Name, p.Width, p.Height)
	}
	s := NewSurface(w, h)
	s.Save()
	s.Scale(zoom, zoom)
	e.r.DrawPage(s, p)
	s.Restore()
	return s, nil
}

// Export writes a *shape.Page as PNG. Other containers are rejected with
// an error wrapping render.ErrUnsupportedContainer.
func (e *Exporter) Export(w io.Writer, container any) error {
	p, ok := container.(*shape.Page)
	if !ok {
		return render.Unsupported(Name, container)
	}
	s, err := e.Render(p)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	ggedit.Logger().Info("raster: exported page", "page", p.Name, "zoom", e.r.Zoom)
	return nil
}
