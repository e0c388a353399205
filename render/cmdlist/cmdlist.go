// Package cmdlist records draw calls as a serializable command list.
//
// The list is useful for golden tests and for replaying a drawing in a
// host that has its own rasterizer. Importing the package registers the
// "cmdlist" backend, which writes JSON; set [Exporter.Format] to
// [FormatYAML] for YAML output. Pages and documents can be exported.
package cmdlist

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/render"
	"github.com/gogpu/ggedit/shape"
)

// Name is the registry name of this backend.
const Name = "cmdlist"

func init() {
	render.RegisterBackend(Name, func(r *render.Renderer) render.Exporter {
		return NewExporter(r)
	})
}

// Command is one recorded surface call. Only the fields relevant to Op
// are set.
type Command struct {
	Op     string    `json:"op" yaml:"op"`
	Args   []float64 `json:"args,omitempty" yaml:"args,omitempty,flow"`
	Path   string    `json:"path,omitempty" yaml:"path,omitempty"`
	Rule   string    `json:"rule,omitempty" yaml:"rule,omitempty"`
	Color  string    `json:"color,omitempty" yaml:"color,omitempty"`
	Width  float64   `json:"width,omitempty" yaml:"width,omitempty"`
	Cap    string    `json:"cap,omitempty" yaml:"cap,omitempty"`
	Dashes []float64 `json:"dashes,omitempty" yaml:"dashes,omitempty,flow"`
	Offset float64   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Text   string    `json:"text,omitempty" yaml:"text,omitempty"`
	Font   *Font     `json:"font,omitempty" yaml:"font,omitempty"`
	Image  string    `json:"image,omitempty" yaml:"image,omitempty"`
}

// Font is the serialized font selector.
type Font struct {
	Family string  `json:"family,omitempty" yaml:"family,omitempty"`
	Size   float64 `json:"size" yaml:"size"`
	Bold   bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
}

// Surface appends a Command for every call. It implements ggedit.Surface.
type Surface struct {
	Commands []Command
}

var _ ggedit.Surface = (*Surface)(nil)

func (s *Surface) add(c Command) { s.Commands = append(s.Commands, c) }

func (s *Surface) Save()    { s.add(Command{Op: "save"}) }
func (s *Surface) Restore() { s.add(Command{Op: "restore"}) }

func (s *Surface) Translate(dx, dy float64) {
	s.add(Command{Op: "translate", Args: []float64{dx, dy}})
}

func (s *Surface) Scale(sx, sy float64) {
	s.add(Command{Op: "scale", Args: []float64{sx, sy}})
}

func (s *Surface) FillPath(p *ggedit.Path, fill ggedit.Paint) {
	s.add(Command{Op: "fill-path", Path: PathData(p), Rule: p.FillRule.String(), Color: hex(fill.Color)})
}

func (s *Surface) StrokePath(p *ggedit.Path, pen ggedit.Pen) {
	s.add(stroke(Command{Op: "stroke-path", Path: PathData(p)}, pen))
}

func (s *Surface) FillRect(r ggedit.Rect, fill ggedit.Paint) {
	s.add(Command{Op: "fill-rect", Args: rect(r), Color: hex(fill.Color)})
}

func (s *Surface) StrokeRect(r ggedit.Rect, pen ggedit.Pen) {
	s.add(stroke(Command{Op: "stroke-rect", Args: rect(r)}, pen))
}

func (s *Surface) FillEllipse(r ggedit.Rect, fill ggedit.Paint) {
	s.add(Command{Op: "fill-ellipse", Args: rect(r), Color: hex(fill.Color)})
}

func (s *Surface) StrokeEllipse(r ggedit.Rect, pen ggedit.Pen) {
	s.add(stroke(Command{Op: "stroke-ellipse", Args: rect(r)}, pen))
}

func (s *Surface) DrawText(str string, origin ggedit.Point, font ggedit.Font, fill ggedit.Paint) {
	s.add(Command{
		Op:    "text",
		Args:  []float64{origin.X, origin.Y},
		Text:  str,
		Color: hex(fill.Color),
		Font:  &Font{Family: font.Family, Size: font.Size, Bold: font.Bold, Italic: font.Italic},
	})
}

// DrawImage records the destination and the source pixel size.
func (s *Surface) DrawImage(img image.Image, dst ggedit.Rect) {
	if img == nil {
		return
	}
	size := img.Bounds().Size()
	s.add(Command{Op: "image", Args: rect(dst), Image: fmt.Sprintf("%dx%d", size.X, size.Y)})
}

func stroke(c Command, pen ggedit.Pen) Command {
	c.Color = hex(pen.Color)
	c.Width = pen.Width
	c.Cap = pen.Cap.String()
	c.Dashes = pen.Dashes
	c.Offset = pen.DashOffset
	return c
}

func rect(r ggedit.Rect) []float64 {
	return []float64{r.Min.X, r.Min.Y, r.Width(), r.Height()}
}

func hex(c ggedit.RGBA) string {
	ch := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return shape.ARGB(ch(c.A), ch(c.R), ch(c.G), ch(c.B)).String()
}

// PathData formats p in SVG path syntax.
func PathData(p *ggedit.Path) string {
	var b strings.Builder
	num := func(vs ...float64) {
		for _, v := range vs {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	for i, elem := range p.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case ggedit.MoveTo:
			b.WriteByte('M')
			num(e.Point.X, e.Point.Y)
		case ggedit.LineTo:
			b.WriteByte('L')
			num(e.Point.X, e.Point.Y)
		case ggedit.QuadTo:
			b.WriteByte('Q')
			num(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case ggedit.CubicTo:
			b.WriteByte('C')
			num(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case ggedit.Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// Page is the serialized form of one page.
type Page struct {
	Name     string    `json:"name" yaml:"name"`
	Width    float64   `json:"width" yaml:"width"`
	Height   float64   `json:"height" yaml:"height"`
	Commands []Command `json:"commands" yaml:"commands"`
}

// Document is the serialized form of a document.
type Document struct {
	Name  string `json:"name" yaml:"name"`
	Pages []Page `json:"pages" yaml:"pages"`
}

// Format selects the output encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Exporter records pages through a shared renderer.
type Exporter struct {
	Format Format
	// Indent pretty-prints JSON output.
	Indent bool

	r *render.Renderer
}

// NewExporter returns a JSON exporter drawing through r.
func NewExporter(r *render.Renderer) *Exporter {
	return &Exporter{r: r}
}

// RecordPage draws p and returns its command list.
func (e *Exporter) RecordPage(p *shape.Page) Page {
	var s Surface
	e.r.DrawPage(&s, p)
	return Page{Name: p.Name, Width: p.Width, Height: p.Height, Commands: s.Commands}
}

// RecordDocument records every page of d in order.
func (e *Exporter) RecordDocument(d *shape.Document) Document {
	out := Document{Name: d.Name, Pages: make([]Page, 0, len(d.Pages))}
	for _, p := range d.Pages {
		out.Pages = append(out.Pages, e.RecordPage(p))
	}
	return out
}

// Export writes a *shape.Page or *shape.Document. Other containers are
// rejected with an error wrapping render.ErrUnsupportedContainer.
func (e *Exporter) Export(w io.Writer, container any) error {
	var v any
	switch c := container.(type) {
	case *shape.Page:
		v = e.RecordPage(c)
	case *shape.Document:
		v = e.RecordDocument(c)
	default:
		return render.Unsupported(Name, container)
	}
	if err := e.encode(w, v); err != nil {
		return fmt.Errorf("cmdlist: encode: %w", err)
	}
	ggedit.Logger().Info("cmdlist: exported", "container", fmt.Sprintf("%T", container))
	return nil
}

func (e *Exporter) encode(w io.Writer, v any) error {
	switch e.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		if e.Indent {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)
	}
}

// ParseFormat maps "json" or "yaml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("cmdlist: unknown format %q", s)
}
