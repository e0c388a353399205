package shape

import (
	"slices"

	"github.com/gogpu/ggedit"
)

// Group aggregates member shapes and connector points. Members are owned
// by the group: their Owner is the group ID and they are not standalone.
type Group struct {
	Base
	Shapes     []Shape
	Connectors []*Point
}

func (g *Group) Kind() Kind { return KindGroup }

// AddShape adds s as a member. Points are added as connectors instead.
func (g *Group) AddShape(s Shape) {
	if p, ok := s.(*Point); ok {
		g.AddConnectorAsNone(p)
		return
	}
	b := s.AsBase()
	b.Owner = g.ID()
	b.State &^= StateStandalone
	g.Shapes = append(g.Shapes, s)
	g.dirty = true
}

// AddConnectorAsNone adds p as a connector with no direction.
func (g *Group) AddConnectorAsNone(p *Point) { g.addConnector(p, StateNone) }

// AddConnectorAsInput adds p as an input connector.
func (g *Group) AddConnectorAsInput(p *Point) { g.addConnector(p, StateInput) }

// AddConnectorAsOutput adds p as an output connector.
func (g *Group) AddConnectorAsOutput(p *Point) { g.addConnector(p, StateOutput) }

func (g *Group) addConnector(p *Point, role State) {
	p.Owner = g.ID()
	p.State = p.State.AsConnector(role)
	g.Connectors = append(g.Connectors, p)
	g.dirty = true
}

// Members returns the member shapes followed by the connectors, in the
// order they were added.
func (g *Group) Members() []Shape {
	out := make([]Shape, 0, len(g.Shapes)+len(g.Connectors))
	out = append(out, g.Shapes...)
	for _, c := range g.Connectors {
		out = append(out, c)
	}
	return out
}

func (g *Group) Points(dst []*Point) []*Point {
	for _, s := range g.Shapes {
		dst = s.Points(dst)
	}
	return append(dst, g.Connectors...)
}

func (g *Group) Move(dx, dy float64) {
	movePoints(dx, dy, Unique(g.Points(nil))...)
}

func (g *Group) Draw(dc ggedit.Surface, r Renderer) {
	for _, s := range g.Shapes {
		if s.AsBase().State.IsVisible() {
			s.Draw(dc, r)
		}
	}
	for _, c := range g.Connectors {
		if c.State.IsVisible() {
			c.Draw(dc, r)
		}
	}
}

func (g *Group) IsDirty() bool {
	if g.dirty || anyDirty(g.Connectors...) {
		return true
	}
	return slices.ContainsFunc(g.Shapes, Shape.IsDirty)
}

func (g *Group) Invalidate() {
	g.dirty = false
	for _, s := range g.Shapes {
		s.Invalidate()
	}
	clearDirty(g.Connectors...)
}

func (g *Group) Copy(shared map[*Point]*Point) Shape {
	if shared == nil {
		shared = make(map[*Point]*Point)
	}
	c := &Group{Base: g.copyBase(KindGroup)}
	for _, s := range g.Shapes {
		m := s.Copy(shared)
		m.AsBase().Owner = c.ID()
		c.Shapes = append(c.Shapes, m)
	}
	for _, p := range g.Connectors {
		cp := copyPoint(p, shared)
		cp.Owner = c.ID()
		c.Connectors = append(c.Connectors, cp)
	}
	return c
}

// GroupShapes moves shapes from layer into a new group appended to the
// layer. Shapes that are not on the layer are still added to the group.
func GroupShapes(f *Factory, name string, shapes []Shape, layer *Layer) *Group {
	g := f.Group(name)
	for _, s := range shapes {
		g.AddShape(s)
		layer.Remove(s)
	}
	layer.Add(g)
	return g
}

// Ungroup releases the members of g back onto layer and removes g from it.
// Members regain the standalone flag and lose every connector role.
func Ungroup(g *Group, layer *Layer) []Shape {
	members := g.Members()
	idx := layer.IndexOf(g)
	for _, s := range members {
		b := s.AsBase()
		b.State = b.State.AsStandalone()
		b.Owner = ""
		b.dirty = true
	}
	if idx < 0 {
		layer.Add(members...)
	} else {
		layer.Replace(idx, members...)
	}
	g.Shapes = nil
	g.Connectors = nil
	return members
}
