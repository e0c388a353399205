package transform

import "github.com/gogpu/ggedit/shape"

// Proportional resize keeps the aspect ratio of the box. Every operation
// derives the change on the locked axis from the width and height the box
// had before the call. A zero span on the derived axis falls back to the
// plain edge scale.

// ProportionalTop drags the top edge by dy and shrinks or grows the width
// symmetrically.
func (b *GroupBox) ProportionalTop(_, dy float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if h != 0 {
		dx := w*((h+dy)/h) - w
		b.ScaleLeft(dx/2, points)
		b.ScaleRight(-dx/2, points)
	}
	b.ScaleTop(dy, points)
}

// ProportionalBottom drags the bottom edge by dy.
func (b *GroupBox) ProportionalBottom(_, dy float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if h != 0 {
		dx := w*((h+dy)/h) - w
		b.ScaleLeft(-dx/2, points)
		b.ScaleRight(dx/2, points)
	}
	b.ScaleBottom(dy, points)
}

// ProportionalLeft drags the left edge by dx and adjusts the height
// symmetrically.
func (b *GroupBox) ProportionalLeft(dx, _ float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if w != 0 {
		dy := h*((w+dx)/w) - h
		b.ScaleTop(dy/2, points)
		b.ScaleBottom(-dy/2, points)
	}
	b.ScaleLeft(dx, points)
}

// ProportionalRight drags the right edge by dx.
func (b *GroupBox) ProportionalRight(dx, _ float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if w != 0 {
		dy := h*((w+dx)/w) - h
		b.ScaleTop(-dy/2, points)
		b.ScaleBottom(dy/2, points)
	}
	b.ScaleRight(dx, points)
}

// ProportionalTopLeft drags the top-left corner. The vertical change is
// derived from dx.
func (b *GroupBox) ProportionalTopLeft(dx, dy float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if w != 0 {
		dy = h*((w+dx)/w) - h
	}
	b.ScaleTop(dy, points)
	b.ScaleLeft(dx, points)
}

// ProportionalTopRight drags the top-right corner.
func (b *GroupBox) ProportionalTopRight(dx, dy float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if w != 0 {
		dy = h*((w-dx)/w) - h
	}
	b.ScaleTop(dy, points)
	b.ScaleRight(dx, points)
}

// ProportionalBottomLeft drags the bottom-left corner.
func (b *GroupBox) ProportionalBottomLeft(dx, dy float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if w != 0 {
		dy = h*((w-dx)/w) - h
	}
	b.ScaleBottom(dy, points)
	b.ScaleLeft(dx, points)
}

// ProportionalBottomRight drags the bottom-right corner.
func (b *GroupBox) ProportionalBottomRight(dx, dy float64, points []*shape.Point) {
	w, h := b.bounds.Width(), b.bounds.Height()
	if w != 0 {
		dy = h*((w+dx)/w) - h
	}
	b.ScaleBottom(dy, points)
	b.ScaleRight(dx, points)
}
