package shape

import "github.com/gogpu/ggedit"

// Point is a shared, owned position. It is both the geometry of every other
// kind and a shape in its own right.
type Point struct {
	Base
	X, Y float64
}

func (p *Point) Kind() Kind { return KindPoint }

// Pt returns the position as a value.
func (p *Point) Pt() ggedit.Point { return ggedit.Pt(p.X, p.Y) }

// Set moves the point to (x, y).
func (p *Point) Set(x, y float64) {
	p.X, p.Y = x, y
	p.dirty = true
}

func (p *Point) Points(dst []*Point) []*Point { return append(dst, p) }

func (p *Point) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
	p.dirty = true
}

func (p *Point) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, p) }

func (p *Point) IsDirty() bool { return p.dirty }

func (p *Point) Invalidate() { p.dirty = false }

func (p *Point) Copy(shared map[*Point]*Point) Shape { return copyPoint(p, shared) }

func copyPoint(p *Point, shared map[*Point]*Point) *Point {
	if p == nil {
		return nil
	}
	if c, ok := shared[p]; ok {
		return c
	}
	c := &Point{Base: p.copyBase(KindPoint), X: p.X, Y: p.Y}
	if shared != nil {
		shared[p] = c
	}
	return c
}

func anyDirty(pts ...*Point) bool {
	for _, p := range pts {
		if p.dirty {
			return true
		}
	}
	return false
}

func clearDirty(pts ...*Point) {
	for _, p := range pts {
		p.dirty = false
	}
}

func movePoints(dx, dy float64, pts ...*Point) {
	for _, p := range pts {
		p.Move(dx, dy)
	}
}

// claim sets the owner of every point to id.
func claim(id ID, pts ...*Point) {
	for _, p := range pts {
		p.Owner = id
	}
}

// Unique returns pts with repeated pointers removed, keeping the first
// occurrence. The input slice is reused.
func Unique(pts []*Point) []*Point {
	seen := make(map[*Point]struct{}, len(pts))
	out := pts[:0]
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
