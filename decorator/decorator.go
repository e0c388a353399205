// Package decorator implements the selection box decorator: eight resize
// handles, a move handle covering the selection bounds and an optional
// rotate handle, driven by press/move/release pointer events.
//
// The decorator owns no geometry. It resolves the selection's movable
// points lazily on the first move of a gesture, forwards every move to the
// transform engine and emits one history snapshot on release.
package decorator

import (
	"log/slog"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/history"
	"github.com/gogpu/ggedit/hittest"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/shape"
	"github.com/gogpu/ggedit/transform"
)

const (
	sizeLarge      = 4.0
	sizeSmall      = 4.0
	rotateDistance = -16.875
)

// Styles are the four handle styles.
type Styles struct {
	Handle         *shape.Style
	Bounds         *shape.Style
	SelectedHandle *shape.Style
	SelectedBounds *shape.Style
}

// DefaultStyles returns the deep-sky-blue handle styles. The selected
// variants are copies of the plain ones.
func DefaultStyles() Styles {
	blue := shape.FromHsv(195, 1, 1, 255)
	white := shape.ARGB(255, 255, 255, 255)
	st := Styles{
		Handle: shape.NewStyle("Handle", blue, white, 2),
		Bounds: shape.NewStyle("Bounds", blue, white, 1),
	}
	st.SelectedHandle = st.Handle.Clone()
	st.SelectedHandle.Name = "SelectedHandle"
	st.SelectedHandle.Fill = blue
	st.SelectedBounds = st.Bounds.Clone()
	st.SelectedBounds.Name = "SelectedBounds"
	return st
}

// Options configure a decorator. Zero fields take defaults.
type Options struct {
	// Radius is the hit tolerance in device units.
	Radius float64
	// Snap maps pointer positions; nil leaves them unsnapped.
	Snap input.SnapFunc
	// Recorder receives one snapshot per completed gesture.
	Recorder history.Recorder
	// Engine resolves handle hits; nil uses the default registry.
	Engine *hittest.Engine
	// Styles overrides the handle styles.
	Styles *Styles
	// EnableRotate shows the rotate handle.
	EnableRotate bool
}

// BoxDecorator is the selection handle state machine.
type BoxDecorator struct {
	layer  *shape.Layer
	shapes []shape.Shape
	box    *transform.GroupBox

	engine       *hittest.Engine
	snap         input.SnapFunc
	recorder     history.Recorder
	radius       float64
	styles       Styles
	enableRotate bool

	bounds      *shape.Rectangle
	rotateLine  *shape.Line
	rotate      *shape.Ellipse
	topLeft     *shape.Ellipse
	topRight    *shape.Ellipse
	bottomLeft  *shape.Ellipse
	bottomRight *shape.Ellipse
	top         *shape.Rectangle
	bottom      *shape.Rectangle
	left        *shape.Rectangle
	right       *shape.Rectangle
	handles     []shape.Shape

	visible bool
	mode    Mode
	current shape.Shape
	points  []*shape.Point
	before  history.PointSet
	pivot   transform.Pivot
	startX  float64
	startY  float64
}

// New returns a hidden decorator.
func New(opts Options) *BoxDecorator {
	d := &BoxDecorator{
		engine:       opts.Engine,
		snap:         opts.Snap,
		recorder:     opts.Recorder,
		radius:       opts.Radius,
		enableRotate: opts.EnableRotate,
	}
	if d.engine == nil {
		d.engine = hittest.New(nil)
	}
	if d.snap == nil {
		d.snap = input.NoSnap
	}
	if d.recorder == nil {
		d.recorder = history.Discard
	}
	if opts.Styles != nil {
		d.styles = *opts.Styles
	} else {
		d.styles = DefaultStyles()
	}

	f := shape.NewFactory(d.styles.Handle)
	f.IsFilled = true
	named := func(s shape.Shape, name string) {
		b := s.AsBase()
		b.Name = name
		b.State |= shape.StateSize | shape.StateThickness
	}
	d.rotate = f.Ellipse(0, 0, 0, 0)
	d.topLeft = f.Ellipse(0, 0, 0, 0)
	d.topRight = f.Ellipse(0, 0, 0, 0)
	d.bottomLeft = f.Ellipse(0, 0, 0, 0)
	d.bottomRight = f.Ellipse(0, 0, 0, 0)
	d.top = f.Rectangle(0, 0, 0, 0)
	d.bottom = f.Rectangle(0, 0, 0, 0)
	d.left = f.Rectangle(0, 0, 0, 0)
	d.right = f.Rectangle(0, 0, 0, 0)
	named(d.rotate, "_rotateHandle")
	named(d.topLeft, "_topLeftHandle")
	named(d.topRight, "_topRightHandle")
	named(d.bottomLeft, "_bottomLeftHandle")
	named(d.bottomRight, "_bottomRightHandle")
	named(d.top, "_topHandle")
	named(d.bottom, "_bottomHandle")
	named(d.left, "_leftHandle")
	named(d.right, "_rightHandle")

	f.Style = d.styles.Bounds
	f.IsFilled = false
	d.bounds = f.Rectangle(0, 0, 0, 0)
	d.bounds.Name = "_boundsHandle"
	d.bounds.State |= shape.StateThickness
	d.rotateLine = f.Line(0, 0, 0, 0)
	d.rotateLine.Name = "_rotateLine"
	d.rotateLine.State |= shape.StateThickness

	// Paint order: the bounds handle is at the bottom so every resize
	// handle wins a hit over it.
	d.handles = []shape.Shape{d.bounds}
	if d.enableRotate {
		d.handles = append(d.handles, d.rotateLine, d.rotate)
	}
	d.handles = append(d.handles,
		d.topLeft, d.topRight, d.bottomLeft, d.bottomRight,
		d.top, d.bottom, d.left, d.right)
	return d
}

// SetLayer sets the layer the handles are shown on.
func (d *BoxDecorator) SetLayer(l *shape.Layer) { d.layer = l }

// Layer returns the handle layer.
func (d *BoxDecorator) Layer() *shape.Layer { return d.layer }

// SetShapes sets the decorated selection. Call Update to rebuild the box.
func (d *BoxDecorator) SetShapes(shapes []shape.Shape) { d.shapes = shapes }

// Shapes returns the decorated selection.
func (d *BoxDecorator) Shapes() []shape.Shape { return d.shapes }

// IsVisible reports whether the handles are shown.
func (d *BoxDecorator) IsVisible() bool { return d.visible }

// Mode returns the current gesture.
func (d *BoxDecorator) Mode() Mode { return d.mode }

// Box returns the transform box, or nil before the first Update.
func (d *BoxDecorator) Box() *transform.GroupBox { return d.box }

// Handles returns every handle shape in paint order.
func (d *BoxDecorator) Handles() []shape.Shape { return d.handles }

// Handle returns the handle shape that starts gesture m, or nil.
func (d *BoxDecorator) Handle(m Mode) shape.Shape {
	switch m {
	case ModeMove:
		return d.bounds
	case ModeRotate:
		return d.rotate
	case ModeTop:
		return d.top
	case ModeBottom:
		return d.bottom
	case ModeLeft:
		return d.left
	case ModeRight:
		return d.right
	case ModeTopLeft:
		return d.topLeft
	case ModeTopRight:
		return d.topRight
	case ModeBottomLeft:
		return d.bottomLeft
	case ModeBottomRight:
		return d.bottomRight
	}
	return nil
}

func (d *BoxDecorator) modeOf(s shape.Shape) Mode {
	for m := ModeMove; m <= ModeBottomRight; m++ {
		if d.Handle(m) == s {
			return m
		}
	}
	return ModeNone
}

// IsDirty reports whether any handle changed since the last Invalidate.
func (d *BoxDecorator) IsDirty() bool {
	for _, h := range d.handles {
		if h.IsDirty() {
			return true
		}
	}
	return false
}

// Invalidate clears the dirty state of every handle.
func (d *BoxDecorator) Invalidate() {
	for _, h := range d.handles {
		h.Invalidate()
	}
}

func setBox(b *shape.Box, x1, y1, x2, y2 float64) {
	b.TopLeft.Set(x1, y1)
	b.BottomRight.Set(x2, y2)
}

func setVisible(visible bool, shapes ...shape.Shape) {
	for _, s := range shapes {
		b := s.AsBase()
		if visible {
			b.State |= shape.StateVisible
		} else {
			b.State &^= shape.StateVisible
		}
	}
}

// Update repositions the handles around the selection. With rebuild set
// the point set is recomputed from the selection; otherwise only the
// bounds are refreshed.
func (d *BoxDecorator) Update(rebuild bool) {
	if d.layer == nil || d.shapes == nil {
		return
	}
	if rebuild || d.box == nil {
		d.box = transform.New(d.shapes)
	} else {
		d.box.Refresh()
	}

	r := d.box.Bounds()
	c := r.Center()
	setBox(&d.bounds.Box, r.Left(), r.Top(), r.Right(), r.Bottom())

	d.rotateLine.Start.Set(c.X, r.Top())
	d.rotateLine.End.Set(c.X, r.Top()+rotateDistance)
	setBox(&d.rotate.Box, c.X-sizeLarge, r.Top()+rotateDistance-sizeLarge, c.X+sizeLarge, r.Top()+rotateDistance+sizeLarge)

	setBox(&d.topLeft.Box, r.Left()-sizeLarge, r.Top()-sizeLarge, r.Left()+sizeLarge, r.Top()+sizeLarge)
	setBox(&d.topRight.Box, r.Right()-sizeLarge, r.Top()-sizeLarge, r.Right()+sizeLarge, r.Top()+sizeLarge)
	setBox(&d.bottomLeft.Box, r.Left()-sizeLarge, r.Bottom()-sizeLarge, r.Left()+sizeLarge, r.Bottom()+sizeLarge)
	setBox(&d.bottomRight.Box, r.Right()-sizeLarge, r.Bottom()-sizeLarge, r.Right()+sizeLarge, r.Bottom()+sizeLarge)

	setBox(&d.top.Box, c.X-sizeSmall, r.Top()-sizeSmall, c.X+sizeSmall, r.Top()+sizeSmall)
	setBox(&d.bottom.Box, c.X-sizeSmall, r.Bottom()-sizeSmall, c.X+sizeSmall, r.Bottom()+sizeSmall)
	setBox(&d.left.Box, r.Left()-sizeSmall, c.Y-sizeSmall, r.Left()+sizeSmall, c.Y+sizeSmall)
	setBox(&d.right.Box, r.Right()-sizeSmall, c.Y-sizeSmall, r.Right()+sizeSmall, c.Y+sizeSmall)

	hasWidth := r.Width() > 0
	hasHeight := r.Height() > 0
	setVisible(hasWidth, d.left, d.right)
	setVisible(hasHeight, d.top, d.bottom)
	setVisible(hasWidth && hasHeight, d.topLeft, d.topRight, d.bottomLeft, d.bottomRight)

	d.layer.InvalidateLayer()
}

// Show adds the handles to the layer.
func (d *BoxDecorator) Show() {
	if d.layer == nil || d.shapes == nil || d.visible {
		return
	}
	d.reset()
	d.visible = true
	d.layer.Add(d.handles...)
	d.layer.InvalidateLayer()
}

// Hide removes the handles from the layer and abandons any gesture in
// progress.
func (d *BoxDecorator) Hide() {
	if d.layer == nil || d.shapes == nil {
		return
	}
	d.reset()
	if d.visible {
		for _, h := range d.handles {
			d.layer.Remove(h)
		}
	}
	d.visible = false
	d.layer.InvalidateLayer()
}

// reset drops the gesture state and restores the unselected style.
func (d *BoxDecorator) reset() {
	d.mode = ModeNone
	if d.current != nil {
		b := d.current.AsBase()
		if d.current == shape.Shape(d.bounds) {
			b.Style = d.styles.Bounds
		} else {
			b.Style = d.styles.Handle
		}
		b.MarkDirty()
		d.current = nil
	}
	d.points = nil
	d.before = nil
	d.pivot.Reset()
}

// HitTest tests the visible handles at the pointer position and, on a
// hit, starts the matching gesture. zoom is the current view scale.
func (d *BoxDecorator) HitTest(args input.Args, zoom float64) bool {
	if !d.visible {
		return false
	}
	sx, sy := d.snap(args)

	if d.current != nil {
		d.reset()
		d.layer.InvalidateLayer()
	}
	d.mode = ModeNone

	visible := make([]shape.Shape, 0, len(d.handles))
	for _, h := range d.handles {
		if h.AsBase().State.IsVisible() {
			visible = append(visible, h)
		}
	}
	hit := d.engine.TryGetShape(visible, args.Point(), d.radius, zoom)
	if hit == nil {
		return false
	}
	m := d.modeOf(hit)
	if m == ModeNone {
		return false
	}

	d.mode = m
	d.current = hit
	b := hit.AsBase()
	if hit == shape.Shape(d.bounds) {
		b.Style = d.styles.SelectedBounds
	} else {
		b.Style = d.styles.SelectedHandle
	}
	b.MarkDirty()
	d.startX, d.startY = sx, sy
	d.points = nil
	d.pivot.Reset()
	ggedit.Logger().Debug("decorator: handle selected", slog.String("mode", m.String()))
	d.layer.InvalidateLayer()
	return true
}

// Move advances the current gesture to the pointer position. Shift
// switches resize gestures to proportional mode.
func (d *BoxDecorator) Move(args input.Args) {
	if d.layer == nil || d.shapes == nil || !d.visible || d.mode == ModeNone || d.box == nil {
		return
	}
	sx, sy := d.snap(args)
	dx, dy := sx-d.startX, sy-d.startY
	d.startX, d.startY = sx, sy

	if d.points == nil {
		d.points = d.box.MovablePoints()
		if len(d.points) == 0 {
			return
		}
		d.before = history.Capture(d.points)
	}

	pts := d.points
	proportional := args.Modifier.Has(input.ModifierShift)
	b := d.box
	switch d.mode {
	case ModeMove:
		b.Translate(dx, dy, pts)
	case ModeRotate:
		b.Rotate(sx, sy, pts, &d.pivot)
	case ModeTop:
		if proportional {
			b.ProportionalTop(dx, dy, pts)
		} else {
			b.ScaleTop(dy, pts)
		}
	case ModeBottom:
		if proportional {
			b.ProportionalBottom(dx, dy, pts)
		} else {
			b.ScaleBottom(dy, pts)
		}
	case ModeLeft:
		if proportional {
			b.ProportionalLeft(dx, dy, pts)
		} else {
			b.ScaleLeft(dx, pts)
		}
	case ModeRight:
		if proportional {
			b.ProportionalRight(dx, dy, pts)
		} else {
			b.ScaleRight(dx, pts)
		}
	case ModeTopLeft:
		if proportional {
			b.ProportionalTopLeft(dx, dy, pts)
		} else {
			b.ScaleTop(dy, pts)
			b.ScaleLeft(dx, pts)
		}
	case ModeTopRight:
		if proportional {
			b.ProportionalTopRight(dx, dy, pts)
		} else {
			b.ScaleTop(dy, pts)
			b.ScaleRight(dx, pts)
		}
	case ModeBottomLeft:
		if proportional {
			b.ProportionalBottomLeft(dx, dy, pts)
		} else {
			b.ScaleBottom(dy, pts)
			b.ScaleLeft(dx, pts)
		}
	case ModeBottomRight:
		if proportional {
			b.ProportionalBottomRight(dx, dy, pts)
		} else {
			b.ScaleBottom(dy, pts)
			b.ScaleRight(dx, pts)
		}
	}
	d.Update(false)
}

// Release ends the current gesture. When points moved, one snapshot of
// their positions before and after the gesture is sent to the recorder.
func (d *BoxDecorator) Release() {
	if d.mode == ModeNone {
		return
	}
	if d.before != nil {
		after := history.Capture(d.points)
		if !after.Equal(d.before) {
			ggedit.Logger().Info("decorator: gesture committed",
				slog.String("mode", d.mode.String()),
				slog.Int("points", len(after)))
			d.recorder.Snapshot(d.before, after, d.restore)
		}
	}
	d.reset()
	if d.layer != nil {
		d.layer.InvalidateLayer()
	}
}

func (d *BoxDecorator) restore(ps history.PointSet) {
	ps.Restore()
	d.Update(false)
}
