package render

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// geometry is the kind-specific half of a node. update recomputes the
// cached local geometry and returns the transform center; draw issues the
// surface calls with an already compensated pen.
type geometry interface {
	update(n *Node)
	draw(dc ggedit.Surface, n *Node, pen ggedit.Pen)
}

// Node is the cached draw state of one shape.
type Node struct {
	Shape shape.Shape
	Style *shape.Style

	Fill   ggedit.Paint
	Stroke ggedit.Pen
	Center ggedit.Point

	ScaleThickness bool
	ScaleSize      bool

	renderer *Renderer
	geo      geometry
	version  uint64
	fillOnly bool
}

func newNode(r *Renderer, s shape.Shape, style *shape.Style, geo geometry) *Node {
	n := &Node{Shape: s, Style: style, renderer: r, geo: geo}
	n.UpdateStyle()
	n.UpdateGeometry()
	return n
}

// UpdateGeometry rereads the shape's points and state flags.
func (n *Node) UpdateGeometry() {
	if !n.fillOnly {
		st := n.Shape.AsBase().State
		n.ScaleThickness = st.ScalesThickness()
		n.ScaleSize = st.ScalesSize()
	}
	n.geo.update(n)
}

// UpdateStyle resolves the brush and pen from the current style.
func (n *Node) UpdateStyle() {
	if n.Style == nil {
		return
	}
	n.Fill = n.Style.Brush()
	n.Stroke = n.Style.Pen(n.Style.Thickness)
	n.version = n.Style.Version()
}

// layoutFromStyle reports whether the cached geometry depends on the
// style, as text placement does on font size and alignment.
func (n *Node) layoutFromStyle() bool {
	_, ok := n.geo.(*textNode)
	return ok
}

func (n *Node) stale(style *shape.Style) bool {
	return n.Style != style || (style != nil && n.version != style.Version())
}

// Draw issues the node's draw calls at the given zoom.
func (n *Node) Draw(dc ggedit.Surface, zoom float64) {
	if n.fillOnly {
		n.geo.draw(dc, n, n.Stroke)
		return
	}
	if zoom <= 0 {
		zoom = 1
	}

	scale := 1.0
	if n.ScaleSize {
		scale = 1 / zoom
	}
	thickness := n.Stroke.Width
	if n.ScaleThickness {
		thickness /= zoom
	}
	if scale != 1 {
		thickness /= scale
	}
	pen := withWidth(n.Stroke, thickness)

	m := ggedit.ScaleAt(scale, scale, n.Center)
	if m.IsIdentity() {
		n.geo.draw(dc, n, pen)
		return
	}
	dc.Save()
	dc.Translate(m.C, m.F)
	dc.Scale(m.A, m.E)
	n.geo.draw(dc, n, pen)
	dc.Restore()
}

// withWidth returns pen at width w. Dash lengths are relative to the
// width, so they follow it.
func withWidth(pen ggedit.Pen, w float64) ggedit.Pen {
	if pen.Width == w {
		return pen
	}
	if len(pen.Dashes) > 0 && pen.Width > 0 {
		k := w / pen.Width
		dashes := make([]float64, len(pen.Dashes))
		for i, d := range pen.Dashes {
			dashes[i] = d * k
		}
		pen.Dashes = dashes
		pen.DashOffset *= k
	}
	pen.Width = w
	return pen
}

// fillNode paints a solid rectangle, used for page backgrounds. It is
// never zoom compensated.
type fillNode struct {
	rect  ggedit.Rect
	color shape.ArgbColor
}

func (g *fillNode) update(n *Node) {
	n.Center = g.rect.Center()
	n.Fill = ggedit.Paint{Color: g.color.RGBA()}
}

func (g *fillNode) draw(dc ggedit.Surface, n *Node, _ ggedit.Pen) {
	dc.FillRect(g.rect, n.Fill)
}

// NewFillNode returns a node that fills r with c.
func NewFillNode(r ggedit.Rect, c shape.ArgbColor) *Node {
	g := &fillNode{rect: r, color: c}
	n := &Node{geo: g, fillOnly: true}
	g.update(n)
	return n
}
