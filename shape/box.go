package shape

import "github.com/gogpu/ggedit"

// Box is the two-corner geometry shared by rectangles, ellipses, text and
// images.
type Box struct {
	TopLeft, BottomRight *Point
}

// Rect returns the normalized rectangle spanned by the corners.
func (b *Box) Rect() ggedit.Rect {
	return ggedit.NewRect(b.TopLeft.Pt(), b.BottomRight.Pt())
}

func (b *Box) copyBox(shared map[*Point]*Point) Box {
	return Box{
		TopLeft:     copyPoint(b.TopLeft, shared),
		BottomRight: copyPoint(b.BottomRight, shared),
	}
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Base
	Box
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Points(dst []*Point) []*Point { return append(dst, r.TopLeft, r.BottomRight) }

func (r *Rectangle) Move(dx, dy float64) { movePoints(dx, dy, r.TopLeft, r.BottomRight) }

func (r *Rectangle) Draw(dc ggedit.Surface, rr Renderer) { rr.DrawShape(dc, r) }

func (r *Rectangle) IsDirty() bool { return r.dirty || anyDirty(r.TopLeft, r.BottomRight) }

func (r *Rectangle) Invalidate() {
	r.dirty = false
	clearDirty(r.TopLeft, r.BottomRight)
}

func (r *Rectangle) Copy(shared map[*Point]*Point) Shape {
	c := &Rectangle{Base: r.copyBase(KindRectangle), Box: r.copyBox(shared)}
	claim(c.ID(), c.TopLeft, c.BottomRight)
	return c
}

// Ellipse is the ellipse inscribed in its box.
type Ellipse struct {
	Base
	Box
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Points(dst []*Point) []*Point { return append(dst, e.TopLeft, e.BottomRight) }

func (e *Ellipse) Move(dx, dy float64) { movePoints(dx, dy, e.TopLeft, e.BottomRight) }

func (e *Ellipse) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, e) }

func (e *Ellipse) IsDirty() bool { return e.dirty || anyDirty(e.TopLeft, e.BottomRight) }

func (e *Ellipse) Invalidate() {
	e.dirty = false
	clearDirty(e.TopLeft, e.BottomRight)
}

func (e *Ellipse) Copy(shared map[*Point]*Point) Shape {
	c := &Ellipse{Base: e.copyBase(KindEllipse), Box: e.copyBox(shared)}
	claim(c.ID(), c.TopLeft, c.BottomRight)
	return c
}

// Text is a string laid out inside its box according to the style's text
// alignment.
type Text struct {
	Base
	Box
	Text string
}

func (t *Text) Kind() Kind { return KindText }

// SetText replaces the string and marks the shape dirty.
func (t *Text) SetText(s string) {
	t.Text = s
	t.dirty = true
}

func (t *Text) Points(dst []*Point) []*Point { return append(dst, t.TopLeft, t.BottomRight) }

func (t *Text) Move(dx, dy float64) { movePoints(dx, dy, t.TopLeft, t.BottomRight) }

func (t *Text) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, t) }

func (t *Text) IsDirty() bool { return t.dirty || anyDirty(t.TopLeft, t.BottomRight) }

func (t *Text) Invalidate() {
	t.dirty = false
	clearDirty(t.TopLeft, t.BottomRight)
}

func (t *Text) Copy(shared map[*Point]*Point) Shape {
	c := &Text{Base: t.copyBase(KindText), Box: t.copyBox(shared), Text: t.Text}
	claim(c.ID(), c.TopLeft, c.BottomRight)
	return c
}

// Image draws the bitmap stored under Key, scaled into its box.
type Image struct {
	Base
	Box
	Key string
}

func (i *Image) Kind() Kind { return KindImage }

func (i *Image) Points(dst []*Point) []*Point { return append(dst, i.TopLeft, i.BottomRight) }

func (i *Image) Move(dx, dy float64) { movePoints(dx, dy, i.TopLeft, i.BottomRight) }

func (i *Image) Draw(dc ggedit.Surface, r Renderer) { r.DrawShape(dc, i) }

func (i *Image) IsDirty() bool { return i.dirty || anyDirty(i.TopLeft, i.BottomRight) }

func (i *Image) Invalidate() {
	i.dirty = false
	clearDirty(i.TopLeft, i.BottomRight)
}

func (i *Image) Copy(shared map[*Point]*Point) Shape {
	c := &Image{Base: i.copyBase(KindImage), Box: i.copyBox(shared), Key: i.Key}
	claim(c.ID(), c.TopLeft, c.BottomRight)
	return c
}
