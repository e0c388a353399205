package shape

import "github.com/gogpu/ggedit"

// Line is a straight stroke between two points.
type Line struct {
	Base
	Start, End *Point
}

func (l *Line) Kind() Kind { return KindLine }

// Segment returns the current geometry.
func (l *Line) Segment() ggedit.Segment {
	return ggedit.Segment{P0: l.Start.Pt(), P1: l.End.Pt()}
}

func (l *Line) Points(dst []*Point) []*Point { return append(dst, l.Start, l.End) }

func (l *Line) Move(dx, dy float64) { movePoints(dx, dy, l.Start, l.End) }

func (l *Line) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, l) }

func (l *Line) IsDirty() bool { return l.dirty || anyDirty(l.Start, l.End) }

func (l *Line) Invalidate() {
	l.dirty = false
	clearDirty(l.Start, l.End)
}

func (l *Line) Copy(shared map[*Point]*Point) Shape {
	c := &Line{
		Base:  l.copyBase(KindLine),
		Start: copyPoint(l.Start, shared),
		End:   copyPoint(l.End, shared),
	}
	claim(c.ID(), c.Start, c.End)
	return c
}

// ConnectStart replaces the start point with p, sharing it with whatever
// shape already holds it. The line becomes the point's owner.
func (l *Line) ConnectStart(p *Point) {
	l.Start = connect(l.ID(), p)
	l.dirty = true
}

// ConnectEnd replaces the end point with p. See ConnectStart.
func (l *Line) ConnectEnd(p *Point) {
	l.End = connect(l.ID(), p)
	l.dirty = true
}

func connect(owner ID, p *Point) *Point {
	p.Owner = owner
	if !p.State.IsConnector() {
		p.State = p.State.AsConnector(StateNone)
	}
	return p
}
