package shape

import "slices"

// Layer is an ordered shape list. Index order is paint order: the last
// shape is drawn on top.
type Layer struct {
	ID        ID
	Name      string
	IsVisible bool
	Shapes    []Shape

	// OnInvalidate, when set, is called by InvalidateLayer.
	OnInvalidate func(*Layer)
}

// Add appends shapes on top of the layer.
func (l *Layer) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// IndexOf returns the paint index of s, or -1.
func (l *Layer) IndexOf(s Shape) int {
	return slices.Index(l.Shapes, s)
}

// Remove deletes s from the layer and reports whether it was present.
func (l *Layer) Remove(s Shape) bool {
	i := l.IndexOf(s)
	if i < 0 {
		return false
	}
	l.Shapes = slices.Delete(l.Shapes, i, i+1)
	return true
}

// Replace swaps the shape at index i for shapes, in place.
func (l *Layer) Replace(i int, shapes ...Shape) {
	l.Shapes = slices.Replace(l.Shapes, i, i+1, shapes...)
}

// InvalidateLayer notifies the host that the layer needs repainting.
func (l *Layer) InvalidateLayer() {
	if l.OnInvalidate != nil {
		l.OnInvalidate(l)
	}
}

// Page is a drawing surface with a stack of layers.
type Page struct {
	ID            ID
	Name          string
	Width, Height float64
	Background    ArgbColor
	Layers        []*Layer
	CurrentLayer  *Layer
}

// Current returns the layer new shapes go to.
func (p *Page) Current() *Layer {
	if p.CurrentLayer == nil && len(p.Layers) > 0 {
		p.CurrentLayer = p.Layers[0]
	}
	return p.CurrentLayer
}

// LayerOf returns the layer holding s, or nil when no layer does.
func (p *Page) LayerOf(s Shape) *Layer {
	for _, l := range p.Layers {
		if l.IndexOf(s) >= 0 {
			return l
		}
	}
	return nil
}

// Shapes returns every shape on visible layers in paint order.
func (p *Page) Shapes() []Shape {
	var out []Shape
	for _, l := range p.Layers {
		if l.IsVisible {
			out = append(out, l.Shapes...)
		}
	}
	return out
}

// Document is an ordered list of pages.
type Document struct {
	ID    ID
	Name  string
	Pages []*Page
}

// Project bundles documents with the style library.
type Project struct {
	ID           ID
	Name         string
	Documents    []*Document
	Styles       []*Style
	CurrentStyle *Style
}

// Style returns the library style with the given name.
func (p *Project) Style(name string) (*Style, bool) {
	for _, s := range p.Styles {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
