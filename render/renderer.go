package render

import (
	"image"
	"sync"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/cache"
	"github.com/gogpu/ggedit/internal/textmetrics"
	"github.com/gogpu/ggedit/shape"
)

// DefaultPointSize is the half extent of point markers.
const DefaultPointSize = 4.0

// DefaultCacheCapacity bounds the number of cached nodes.
const DefaultCacheCapacity = 4096

// ImageSource resolves image shape keys to decoded bitmaps.
// *imagecache.Cache implements it.
type ImageSource interface {
	Image(key string) (image.Image, bool)
}

// Renderer draws shapes through cached nodes. It implements
// [shape.Renderer]. A Renderer is not safe for concurrent use.
type Renderer struct {
	// Cache holds one node per shape ID.
	Cache *cache.Cache[shape.ID, *Node]

	// Zoom is the current view scale, used for zoom compensation.
	Zoom float64

	// DrawPoints draws a marker on every defining point of each shape.
	DrawPoints bool

	// PointSize is the half extent of point markers.
	PointSize float64

	// PointStyle is used for points that carry no style of their own.
	PointStyle *shape.Style

	// Images supplies bitmaps for image shapes. Nil draws no bitmaps.
	Images ImageSource

	// Text measures and aligns text shapes. Nil uses the built-in font.
	Text *textmetrics.Measurer

	backgrounds map[shape.ID]*Node
	drawn       []shape.Shape
	textOnce    sync.Once
}

// NewRenderer returns a renderer at zoom 1 with the default point size.
func NewRenderer() *Renderer {
	return &Renderer{
		Cache:       cache.New[shape.ID, *Node](DefaultCacheCapacity),
		Zoom:        1,
		PointSize:   DefaultPointSize,
		PointStyle:  shape.NewStyle("Point", shape.ARGB(255, 0, 0, 0), shape.ARGB(255, 0, 0, 0), 1),
		backgrounds: make(map[shape.ID]*Node),
	}
}

func (r *Renderer) measurer() *textmetrics.Measurer {
	r.textOnce.Do(func() {
		if r.Text == nil {
			r.Text = textmetrics.Default()
		}
	})
	return r.Text
}

// ClearCache drops every cached node. Nodes are rebuilt on the next draw.
func (r *Renderer) ClearCache() {
	r.Cache.Clear()
	clear(r.backgrounds)
	r.drawn = r.drawn[:0]
}

// DrawShape draws s, building or refreshing its node as needed. Composite
// shapes are drawn member by member.
func (r *Renderer) DrawShape(dc ggedit.Surface, s shape.Shape) {
	if g, ok := s.(*shape.Group); ok {
		g.Draw(dc, r)
		r.drawn = append(r.drawn, g)
		return
	}
	n := r.Node(s)
	if n == nil {
		return
	}
	n.Draw(dc, r.Zoom)
	r.drawn = append(r.drawn, s)

	if r.DrawPoints && s.Kind() != shape.KindPoint {
		for _, p := range shape.Unique(s.Points(nil)) {
			if pn := r.Node(p); pn != nil {
				pn.Draw(dc, r.Zoom)
				r.drawn = append(r.drawn, p)
			}
		}
	}
}

// Node returns the up to date node of a leaf shape, or nil for groups and
// shapes with no style to draw with.
func (r *Renderer) Node(s shape.Shape) *Node {
	style := s.AsBase().Style
	if style == nil && s.Kind() == shape.KindPoint {
		style = r.PointStyle
	}
	if style == nil {
		return nil
	}

	id := s.AsBase().ID()
	n, ok := r.Cache.Get(id)
	if !ok || n.Shape != s {
		geo := geometryFor(s.Kind())
		if geo == nil {
			return nil
		}
		n = newNode(r, s, style, geo)
		r.Cache.Set(id, n)
		ggedit.Logger().Debug("render: node built", "id", id, "kind", s.Kind())
		return n
	}
	restyled := n.stale(style)
	if restyled {
		n.Style = style
		n.UpdateStyle()
	}
	if s.IsDirty() || restyled && n.layoutFromStyle() {
		n.UpdateGeometry()
		ggedit.Logger().Debug("render: node rebuilt", "id", id)
	}
	return n
}

// Commit clears the dirty state of every shape drawn since the last
// commit. Shapes sharing a point are all rebuilt before the point is
// marked clean.
func (r *Renderer) Commit() {
	for _, s := range r.drawn {
		s.Invalidate()
	}
	r.drawn = r.drawn[:0]
}

// DrawShapes draws shapes in paint order, skipping invisible ones, and
// commits.
func (r *Renderer) DrawShapes(dc ggedit.Surface, shapes []shape.Shape) {
	r.drawVisible(dc, shapes)
	r.Commit()
}

func (r *Renderer) drawVisible(dc ggedit.Surface, shapes []shape.Shape) {
	for _, s := range shapes {
		if s.AsBase().State.IsVisible() {
			r.DrawShape(dc, s)
		}
	}
}

// DrawLayer draws a visible layer without committing. Callers drawing
// several layers call Commit once all of them are drawn, since a point may
// be shared by shapes on different layers.
func (r *Renderer) DrawLayer(dc ggedit.Surface, l *shape.Layer) {
	if l == nil || !l.IsVisible {
		return
	}
	r.drawVisible(dc, l.Shapes)
}

// DrawPage fills the page background, draws its layers bottom to top and
// commits.
func (r *Renderer) DrawPage(dc ggedit.Surface, p *shape.Page) {
	if p == nil {
		return
	}
	r.background(p).Draw(dc, r.Zoom)
	for _, l := range p.Layers {
		r.DrawLayer(dc, l)
	}
	r.Commit()
}

func (r *Renderer) background(p *shape.Page) *Node {
	rect := ggedit.XYWH(0, 0, p.Width, p.Height)
	n, ok := r.backgrounds[p.ID]
	if ok {
		if g := n.geo.(*fillNode); g.rect == rect && g.color == p.Background {
			return n
		}
	}
	n = NewFillNode(rect, p.Background)
	r.backgrounds[p.ID] = n
	return n
}
