package render

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// geometryFor returns the node geometry for a leaf kind, or nil for kinds
// that are drawn through their members.
func geometryFor(k shape.Kind) geometry {
	switch k {
	case shape.KindPoint:
		return &pointNode{}
	case shape.KindLine, shape.KindArc, shape.KindQuadraticBezier, shape.KindCubicBezier:
		return &curveNode{}
	case shape.KindRectangle:
		return &rectNode{}
	case shape.KindEllipse:
		return &ellipseNode{}
	case shape.KindPath:
		return &pathNode{}
	case shape.KindText:
		return &textNode{}
	case shape.KindImage:
		return &imageNode{}
	}
	return nil
}

// pointNode draws a marker square of the renderer's point size. Markers
// always keep their screen size and stroke width.
type pointNode struct {
	rect ggedit.Rect
}

func (g *pointNode) update(n *Node) {
	p := n.Shape.(*shape.Point)
	size := n.renderer.PointSize
	g.rect = ggedit.NewRect(ggedit.Pt(p.X-size, p.Y-size), ggedit.Pt(p.X+size, p.Y+size))
	n.Center = g.rect.Center()
	n.ScaleSize = true
	n.ScaleThickness = true
}

func (g *pointNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	dc.FillRect(g.rect, n.Fill)
	dc.StrokeRect(g.rect, pen)
}

// curveNode covers lines, arcs and both Bezier kinds: all of them are a
// single open subpath.
type curveNode struct {
	path *ggedit.Path
}

func (g *curveNode) update(n *Node) {
	p := ggedit.NewPath()
	switch s := n.Shape.(type) {
	case *shape.Line:
		p.MoveTo(s.Start.X, s.Start.Y)
		p.LineTo(s.End.X, s.End.Y)
	case *shape.Arc:
		s.AppendTo(p)
	case *shape.QuadraticBezier:
		p.MoveTo(s.Point1.X, s.Point1.Y)
		p.QuadraticTo(s.Point2.X, s.Point2.Y, s.Point3.X, s.Point3.Y)
	case *shape.CubicBezier:
		p.MoveTo(s.Point1.X, s.Point1.Y)
		p.CubicTo(s.Point2.X, s.Point2.Y, s.Point3.X, s.Point3.Y, s.Point4.X, s.Point4.Y)
	}
	g.path = p
	n.Center = pathCenter(p)
}

func (g *curveNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	b := n.Shape.AsBase()
	if b.IsFilled && n.Shape.Kind() != shape.KindLine {
		dc.FillPath(g.path, n.Fill)
	}
	if b.IsStroked {
		dc.StrokePath(g.path, pen)
	}
}

type rectNode struct {
	rect ggedit.Rect
}

func (g *rectNode) update(n *Node) {
	g.rect = n.Shape.(*shape.Rectangle).Rect()
	n.Center = g.rect.Center()
}

func (g *rectNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	b := n.Shape.AsBase()
	if b.IsFilled {
		dc.FillRect(g.rect, n.Fill)
	}
	if b.IsStroked {
		dc.StrokeRect(g.rect, pen)
	}
}

type ellipseNode struct {
	rect ggedit.Rect
}

func (g *ellipseNode) update(n *Node) {
	g.rect = n.Shape.(*shape.Ellipse).Rect()
	n.Center = g.rect.Center()
}

func (g *ellipseNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	b := n.Shape.AsBase()
	if b.IsFilled {
		dc.FillEllipse(g.rect, n.Fill)
	}
	if b.IsStroked {
		dc.StrokeEllipse(g.rect, pen)
	}
}

// pathNode keeps the full outline for stroking and a second path holding
// only the figures that are filled.
type pathNode struct {
	outline *ggedit.Path
	fill    *ggedit.Path
}

func (g *pathNode) update(n *Node) {
	s := n.Shape.(*shape.Path)
	g.outline = ggedit.NewPath()
	s.Geometry.AppendTo(g.outline)

	filled := &shape.PathGeometry{FillRule: s.Geometry.FillRule}
	for _, f := range s.Geometry.Figures {
		if f.IsFilled || s.IsFilled {
			filled.Figures = append(filled.Figures, f)
		}
	}
	g.fill = nil
	if len(filled.Figures) > 0 {
		g.fill = ggedit.NewPath()
		filled.AppendTo(g.fill)
	}
	n.Center = pathCenter(g.outline)
}

func (g *pathNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	if g.fill != nil {
		dc.FillPath(g.fill, n.Fill)
	}
	if n.Shape.AsBase().IsStroked {
		dc.StrokePath(g.outline, pen)
	}
}

// textNode caches the baseline origin computed from the text style's
// alignment. Text is painted with the stroke color.
type textNode struct {
	text   string
	origin ggedit.Point
	font   ggedit.Font
}

func (g *textNode) update(n *Node) {
	s := n.Shape.(*shape.Text)
	box := s.Rect()
	g.text = s.Text
	n.Center = box.Center()
	if n.Style == nil {
		g.font = ggedit.Font{}
		g.origin = box.Min
		return
	}
	ts := n.Style.Text
	g.font = ts.Font()
	g.origin = n.renderer.measurer().Layout(s.Text, ts.FontSize, box, ts.HAlign, ts.VAlign)
}

func (g *textNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	if g.text == "" || g.font.Size <= 0 {
		return
	}
	dc.DrawText(g.text, g.origin, g.font, ggedit.Paint{Color: pen.Color})
}

// imageNode resolves its bitmap through the renderer's image source at
// draw time, so replacing the bytes under a key needs no rebuild.
type imageNode struct {
	rect ggedit.Rect
	key  string
}

func (g *imageNode) update(n *Node) {
	s := n.Shape.(*shape.Image)
	g.rect = s.Rect()
	g.key = s.Key
	n.Center = g.rect.Center()
}

func (g *imageNode) draw(dc ggedit.Surface, n *Node, pen ggedit.Pen) {
	b := n.Shape.AsBase()
	if b.IsFilled {
		dc.FillRect(g.rect, n.Fill)
	}
	if src := n.renderer.Images; src != nil {
		if img, ok := src.Image(g.key); ok {
			dc.DrawImage(img, g.rect)
		}
	}
	if b.IsStroked {
		dc.StrokeRect(g.rect, pen)
	}
}

func pathCenter(p *ggedit.Path) ggedit.Point {
	bb, ok := p.Bounds()
	if !ok {
		return p.CurrentPoint()
	}
	return bb.Center()
}
