// Package editor ties the engine packages into one editing context.
//
// An [Editor] owns a project, the page being edited, a history stack and
// the selection decorator. Pointer events drive the selection tool:
//
//   - a press on a decorator handle starts a move, resize or rotate;
//   - a press on a shape's defining point drags that point;
//   - a press on a shape selects it and starts a move;
//   - a press on empty space starts a marquee selection.
//
// Decorator handles and the marquee live on a helper layer that is drawn
// over the page but never hit-tested as content or exported.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/bounds"
	"github.com/gogpu/ggedit/config"
	"github.com/gogpu/ggedit/decorator"
	"github.com/gogpu/ggedit/history"
	"github.com/gogpu/ggedit/hittest"
	"github.com/gogpu/ggedit/imagecache"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/render"
	"github.com/gogpu/ggedit/shape"
)

// DefaultHistoryLimit caps the undo stack when no limit is given.
const DefaultHistoryLimit = 100

// ErrNoSelection is returned by operations that need selected shapes.
var ErrNoSelection = errors.New("editor: nothing selected")

// Gesture is the pointer gesture in progress.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureDecorator
	GesturePoint
	GestureMarquee
)

func (g Gesture) String() string {
	switch g {
	case GestureDecorator:
		return "Decorator"
	case GesturePoint:
		return "Point"
	case GestureMarquee:
		return "Marquee"
	}
	return "None"
}

// Option configures an Editor during creation.
type Option func(*editorOptions)

type editorOptions struct {
	project  *shape.Project
	registry *bounds.Registry
	renderer *render.Renderer
	images   *imagecache.Cache
	limit    int
}

// WithProject edits p instead of a new empty project. The first page of
// the first document becomes the current page.
func WithProject(p *shape.Project) Option {
	return func(o *editorOptions) { o.project = p }
}

// WithRegistry resolves hits through r instead of [bounds.Default].
func WithRegistry(r *bounds.Registry) Option {
	return func(o *editorOptions) { o.registry = r }
}

// WithRenderer draws through r. Its zoom and point settings are
// overwritten from the editor options.
func WithRenderer(r *render.Renderer) Option {
	return func(o *editorOptions) { o.renderer = r }
}

// WithImages supplies the image cache used for image shapes.
func WithImages(c *imagecache.Cache) Option {
	return func(o *editorOptions) { o.images = c }
}

// WithHistoryLimit caps the number of undoable edits. Zero means no limit.
func WithHistoryLimit(n int) Option {
	return func(o *editorOptions) { o.limit = n }
}

// Editor is an explicit editing context. It is not safe for concurrent
// use.
type Editor struct {
	opts config.Options

	factory  *shape.Factory
	project  *shape.Project
	page     *shape.Page
	helper   *shape.Layer
	engine   *hittest.Engine
	history  *history.Stack
	deco     *decorator.BoxDecorator
	renderer *render.Renderer
	images   *imagecache.Cache
	snap     input.SnapFunc

	selected []shape.Shape
	point    *shape.Point

	gesture     Gesture
	pointBefore history.PointSet
	marquee     *shape.Rectangle
	anchor      ggedit.Point
	drawPoints  bool
}

// New returns an editor configured by opts. Without WithProject it
// creates a project holding one document with one page.
func New(opts config.Options, options ...Option) (*Editor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := editorOptions{limit: DefaultHistoryLimit}
	for _, opt := range options {
		opt(&o)
	}

	f := shape.NewFactory(nil)
	f.IsStroked = opts.DefaultIsStroked
	f.IsFilled = opts.DefaultIsFilled
	f.IsClosed = opts.DefaultIsClosed
	f.FillRule = opts.DefaultFillRule

	e := &Editor{
		opts:     opts,
		factory:  f,
		project:  o.project,
		engine:   hittest.New(o.registry),
		history:  history.NewStack(o.limit),
		renderer: o.renderer,
		images:   o.images,
		snap:     input.GridSnap(opts.SnapToGrid, opts.SnapX, opts.SnapY),
	}
	if e.project == nil {
		e.project = f.Project("Project")
		doc := f.Document("Document")
		doc.Pages = append(doc.Pages, f.Page("Page", 600, 600))
		e.project.Documents = append(e.project.Documents, doc)
	}
	if e.project.CurrentStyle != nil {
		f.Style = e.project.CurrentStyle
	}
	if e.images == nil {
		e.images = imagecache.New(opts.ImageCacheSize)
	}
	if e.renderer == nil {
		e.renderer = render.NewRenderer()
	}
	e.renderer.Zoom = opts.Zoom
	e.renderer.PointSize = opts.PointSize
	e.renderer.DrawPoints = opts.DrawPoints
	e.renderer.Images = e.images

	e.helper = f.Layer("Helper")
	e.deco = decorator.New(decorator.Options{
		Radius:       opts.HitThreshold,
		Snap:         e.snap,
		Recorder:     e.history,
		Engine:       e.engine,
		EnableRotate: opts.EnableRotate,
	})
	e.deco.SetLayer(e.helper)

	for _, d := range e.project.Documents {
		if len(d.Pages) > 0 {
			e.page = d.Pages[0]
			break
		}
	}
	if e.page == nil {
		return nil, fmt.Errorf("editor: project %q has no pages", e.project.Name)
	}
	return e, nil
}

// Options returns the options the editor was created with.
func (e *Editor) Options() config.Options { return e.opts }

// Factory returns the shape factory seeded from the default options.
func (e *Editor) Factory() *shape.Factory { return e.factory }

// Project returns the edited project.
func (e *Editor) Project() *shape.Project { return e.project }

// Page returns the current page.
func (e *Editor) Page() *shape.Page { return e.page }

// Layer returns the layer new shapes are added to.
func (e *Editor) Layer() *shape.Layer { return e.page.Current() }

// Helper returns the layer holding handles and the marquee.
func (e *Editor) Helper() *shape.Layer { return e.helper }

// History returns the undo stack.
func (e *Editor) History() *history.Stack { return e.history }

// Decorator returns the selection decorator.
func (e *Editor) Decorator() *decorator.BoxDecorator { return e.deco }

// Renderer returns the renderer used by Draw and Export.
func (e *Editor) Renderer() *render.Renderer { return e.renderer }

// Images returns the image cache backing image shapes.
func (e *Editor) Images() *imagecache.Cache { return e.images }

// Gesture returns the pointer gesture in progress.
func (e *Editor) Gesture() Gesture { return e.gesture }

// Zoom returns the view scale.
func (e *Editor) Zoom() float64 { return e.renderer.Zoom }

// SetZoom changes the view scale used for hit tolerance and rendering.
func (e *Editor) SetZoom(zoom float64) error {
	if !(zoom > 0) {
		return fmt.Errorf("editor: zoom must be positive, got %v", zoom)
	}
	e.renderer.Zoom = zoom
	return nil
}

// SetPage makes p the current page, dropping the selection.
func (e *Editor) SetPage(p *shape.Page) {
	e.Deselect()
	e.page = p
}

// Add appends shapes to the current layer.
func (e *Editor) Add(shapes ...shape.Shape) {
	l := e.Layer()
	l.Add(shapes...)
	l.InvalidateLayer()
}

// Delete removes the selected shapes from the layers holding them.
func (e *Editor) Delete() error {
	if len(e.selected) == 0 {
		return ErrNoSelection
	}
	shapes := e.selected
	e.Deselect()
	invalidate(e.detach(shapes))
	ggedit.Logger().Info("editor: shapes deleted", slog.Int("count", len(shapes)))
	return nil
}

// detach removes shapes from whichever page layers hold them and returns
// the layers it changed.
func (e *Editor) detach(shapes []shape.Shape) []*shape.Layer {
	var touched []*shape.Layer
	for _, s := range shapes {
		l := e.page.LayerOf(s)
		if l == nil {
			continue
		}
		l.Remove(s)
		if !slices.Contains(touched, l) {
			touched = append(touched, l)
		}
	}
	return touched
}

func invalidate(layers []*shape.Layer) {
	for _, l := range layers {
		l.InvalidateLayer()
	}
}

// Selection returns the selected shapes.
func (e *Editor) Selection() []shape.Shape { return e.selected }

// SelectedPoint returns the selected point, or nil.
func (e *Editor) SelectedPoint() *shape.Point { return e.point }

// Select replaces the selection with shapes and shows the decorator
// around them. An empty list deselects.
func (e *Editor) Select(shapes ...shape.Shape) {
	if len(shapes) == 0 {
		e.Deselect()
		return
	}
	e.point = nil
	e.selected = slices.Clone(shapes)
	e.deco.SetShapes(e.selected)
	e.deco.Update(true)
	if !e.deco.IsVisible() {
		e.drawPoints = e.renderer.DrawPoints
		e.renderer.DrawPoints = false
		e.deco.Show()
	}
	ggedit.Logger().Debug("editor: selection changed", slog.Int("count", len(e.selected)))
}

// SelectPoint selects a single point. Points are edited without the
// decorator.
func (e *Editor) SelectPoint(p *shape.Point) {
	e.Deselect()
	e.point = p
}

// Deselect clears the selection and hides the decorator.
func (e *Editor) Deselect() {
	if e.deco.IsVisible() {
		e.deco.Hide()
		e.renderer.DrawPoints = e.drawPoints
	}
	e.selected = nil
	e.point = nil
}

// IsSelected reports whether s is part of the selection.
func (e *Editor) IsSelected(s shape.Shape) bool {
	return slices.Contains(e.selected, s)
}

func (e *Editor) toggle(s shape.Shape) {
	if i := slices.Index(e.selected, s); i >= 0 {
		e.Select(slices.Delete(slices.Clone(e.selected), i, i+1)...)
		return
	}
	e.Select(append(slices.Clone(e.selected), s)...)
}

// Marquee selects every shape on the page overlapping rect and returns
// them.
func (e *Editor) Marquee(rect ggedit.Rect) []shape.Shape {
	hits := e.engine.TryGetShapes(e.page.Shapes(), rect, e.opts.HitThreshold, e.Zoom())
	e.Select(hits...)
	return hits
}

// Group moves the selection into a new group on the current layer and
// selects the group. Selected shapes on other layers leave those layers.
func (e *Editor) Group(name string) (*shape.Group, error) {
	if len(e.selected) == 0 {
		return nil, ErrNoSelection
	}
	shapes := e.selected
	e.Deselect()
	touched := e.detach(shapes)
	l := e.Layer()
	g := shape.GroupShapes(e.factory, name, shapes, l)
	if !slices.Contains(touched, l) {
		touched = append(touched, l)
	}
	invalidate(touched)
	e.Select(g)
	ggedit.Logger().Info("editor: grouped",
		slog.String("id", string(g.ID())),
		slog.Int("members", len(shapes)))
	return g, nil
}

// Ungroup releases every selected group onto the layer holding it and
// selects the released members together with the other selected shapes.
func (e *Editor) Ungroup() ([]shape.Shape, error) {
	if len(e.selected) == 0 {
		return nil, ErrNoSelection
	}
	shapes := e.selected
	e.Deselect()
	var (
		out     []shape.Shape
		touched []*shape.Layer
	)
	for _, s := range shapes {
		g, ok := s.(*shape.Group)
		if !ok {
			out = append(out, s)
			continue
		}
		l := e.page.LayerOf(g)
		if l == nil {
			l = e.Layer()
		}
		out = append(out, shape.Ungroup(g, l)...)
		if !slices.Contains(touched, l) {
			touched = append(touched, l)
		}
	}
	invalidate(touched)
	e.Select(out...)
	return out, nil
}

// PointerPressed starts a gesture at args. It reports whether anything
// was hit.
func (e *Editor) PointerPressed(args input.Args) bool {
	e.cancelPoint()
	shapes := e.page.Shapes()
	target := args.Point()

	// Control toggles shape membership and never starts a drag.
	if args.Modifier.Has(input.ModifierControl) {
		s := e.engine.TryGetShape(shapes, target, e.opts.HitThreshold, e.Zoom())
		if s == nil {
			return false
		}
		e.toggle(s)
		return true
	}

	if e.deco.IsVisible() && e.deco.HitTest(args, e.Zoom()) {
		e.gesture = GestureDecorator
		return true
	}

	if p := e.engine.TryGetPoint(shapes, target, e.opts.HitThreshold, e.Zoom()); p != nil {
		e.SelectPoint(p)
		e.gesture = GesturePoint
		e.anchor = target
		return true
	}

	if s := e.engine.TryGetShape(shapes, target, e.opts.HitThreshold, e.Zoom()); s != nil {
		if !e.IsSelected(s) {
			e.Select(s)
		}
		if e.deco.HitTest(args, e.Zoom()) {
			e.gesture = GestureDecorator
		}
		return true
	}

	e.Deselect()
	e.startMarquee(target)
	return false
}

// PointerMoved advances the gesture in progress.
func (e *Editor) PointerMoved(args input.Args) {
	switch e.gesture {
	case GestureDecorator:
		e.deco.Move(args)
	case GesturePoint:
		if e.point == nil {
			return
		}
		if e.pointBefore == nil {
			e.pointBefore = history.Capture([]*shape.Point{e.point})
		}
		x, y := e.snap(args)
		e.point.Set(x, y)
		e.Layer().InvalidateLayer()
	case GestureMarquee:
		e.marquee.BottomRight.Set(args.X, args.Y)
		e.helper.InvalidateLayer()
	}
}

// PointerReleased ends the gesture in progress.
func (e *Editor) PointerReleased(args input.Args) {
	switch e.gesture {
	case GestureDecorator:
		e.deco.Release()
	case GesturePoint:
		e.commitPoint(args)
	case GestureMarquee:
		rect := e.marquee.Rect()
		e.helper.Remove(e.marquee)
		e.marquee = nil
		e.helper.InvalidateLayer()
		if args.Point() != e.anchor {
			e.Marquee(rect)
		}
	}
	e.gesture = GestureNone
}

func (e *Editor) startMarquee(at ggedit.Point) {
	f := shape.NewFactory(e.deco.Handle(decorator.ModeMove).AsBase().Style)
	f.IsFilled = false
	e.marquee = f.Rectangle(at.X, at.Y, at.X, at.Y)
	e.marquee.Name = "_marquee"
	e.marquee.State |= shape.StateThickness
	e.anchor = at
	e.helper.Add(e.marquee)
	e.gesture = GestureMarquee
}

func (e *Editor) commitPoint(args input.Args) {
	p := e.point
	before := e.pointBefore
	e.pointBefore = nil
	if p == nil || before == nil {
		return
	}
	after := history.Capture([]*shape.Point{p})
	if !after.Equal(before) {
		e.history.Push(history.NewEdit("move point", before, after, e.restore))
	}
	if e.opts.TryToConnect {
		e.tryToConnect(p, args.Point())
	}
}

// cancelPoint abandons a point drag that was never released.
func (e *Editor) cancelPoint() {
	if e.gesture == GesturePoint && e.pointBefore != nil {
		e.pointBefore.Restore()
		e.pointBefore = nil
	}
	if e.gesture == GestureMarquee && e.marquee != nil {
		e.helper.Remove(e.marquee)
		e.marquee = nil
	}
	e.gesture = GestureNone
}

// tryToConnect joins a dragged line end to another shape's point under
// the pointer. It reports whether a connection was made.
func (e *Editor) tryToConnect(p *shape.Point, at ggedit.Point) bool {
	var line *shape.Line
	var others []shape.Shape
	for _, s := range e.page.Shapes() {
		if l, ok := s.(*shape.Line); ok && line == nil && (l.Start == p || l.End == p) {
			line = l
			continue
		}
		others = append(others, s)
	}
	if line == nil {
		return false
	}
	target := e.engine.TryGetPoint(others, at, e.opts.HitThreshold, e.Zoom())
	if target == nil || target == p {
		return false
	}
	return e.Connect(line, line.End == p, target)
}

// Connect replaces the start or end point of l with target, so both
// shapes share it. It reports whether the line changed.
func (e *Editor) Connect(l *shape.Line, end bool, target *shape.Point) bool {
	if target == nil || target == l.Start || target == l.End {
		return false
	}
	if end {
		l.ConnectEnd(target)
	} else {
		l.ConnectStart(target)
	}
	e.Layer().InvalidateLayer()
	ggedit.Logger().Info("editor: line connected",
		slog.String("line", string(l.ID())),
		slog.Bool("end", end))
	return true
}

func (e *Editor) restore(ps history.PointSet) {
	ps.Restore()
	e.refresh()
}

func (e *Editor) refresh() {
	if e.deco.IsVisible() {
		e.deco.Update(true)
	}
	e.Layer().InvalidateLayer()
}

// Undo reverts the newest edit. It reports whether there was one.
func (e *Editor) Undo() bool {
	e.cancelPoint()
	edit := e.history.Undo()
	if edit == nil {
		return false
	}
	e.refresh()
	ggedit.Logger().Debug("editor: undo", slog.String("edit", edit.Name))
	return true
}

// Redo reapplies the most recently undone edit. It reports whether there
// was one.
func (e *Editor) Redo() bool {
	e.cancelPoint()
	edit := e.history.Redo()
	if edit == nil {
		return false
	}
	e.refresh()
	ggedit.Logger().Debug("editor: redo", slog.String("edit", edit.Name))
	return true
}

// Draw paints the current page and then the helper layer.
func (e *Editor) Draw(dc ggedit.Surface) {
	e.renderer.DrawPage(dc, e.page)
	e.renderer.DrawLayer(dc, e.helper)
	e.renderer.Commit()
}

// Export writes container through the named backend. Backends register
// themselves when their package is imported.
func (e *Editor) Export(w io.Writer, backend string, container any) error {
	exp, err := render.NewBackend(backend, e.renderer)
	if err != nil {
		return err
	}
	// Handles and point markers are editing aids, not content.
	drawPoints := e.renderer.DrawPoints
	e.renderer.DrawPoints = false
	defer func() { e.renderer.DrawPoints = drawPoints }()
	return exp.Export(w, container)
}
