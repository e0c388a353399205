package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit/history"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/shape"
)

type fixture struct {
	layer *shape.Layer
	rect  *shape.Rectangle
	stack *history.Stack
	d     *BoxDecorator
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := shape.NewFactory(shape.DefaultStyle())
	layer := f.Layer("layer")
	rect := f.Rectangle(0, 0, 100, 100)
	layer.Add(rect)

	stack := history.NewStack(0)
	if opts.Radius == 0 {
		opts.Radius = 7
	}
	opts.Recorder = stack
	d := New(opts)
	d.SetLayer(layer)
	d.SetShapes([]shape.Shape{rect})
	d.Update(true)
	d.Show()
	return &fixture{layer: layer, rect: rect, stack: stack, d: d}
}

func TestShowHide(t *testing.T) {
	fx := newFixture(t, Options{})
	assert.True(t, fx.d.IsVisible())
	assert.Len(t, fx.layer.Shapes, 1+9)
	assert.Equal(t, 1, fx.layer.IndexOf(fx.d.Handle(ModeMove)), "bounds handle is painted first")
	assert.Equal(t, -1, fx.layer.IndexOf(fx.d.Handle(ModeRotate)), "rotate handle is off by default")

	fx.d.Show()
	assert.Len(t, fx.layer.Shapes, 10, "Show is idempotent")

	fx.d.Hide()
	assert.False(t, fx.d.IsVisible())
	assert.Equal(t, []shape.Shape{fx.rect}, fx.layer.Shapes)
	assert.False(t, fx.d.HitTest(input.At(50, 50), 1))
}

func TestHitTestHandleCenters(t *testing.T) {
	fx := newFixture(t, Options{})
	tests := []struct {
		x, y float64
		want Mode
	}{
		{50, 50, ModeMove},
		{50, 0, ModeTop},
		{50, 100, ModeBottom},
		{0, 50, ModeLeft},
		{100, 50, ModeRight},
		{0, 0, ModeTopLeft},
		{100, 0, ModeTopRight},
		{0, 100, ModeBottomLeft},
		{100, 100, ModeBottomRight},
	}
	for _, zoom := range []float64{1, 2} {
		for _, tt := range tests {
			require.True(t, fx.d.HitTest(input.At(tt.x, tt.y), zoom), "(%v,%v) zoom %v", tt.x, tt.y, zoom)
			assert.Equal(t, tt.want, fx.d.Mode(), "(%v,%v) zoom %v", tt.x, tt.y, zoom)
			fx.d.Release()
			assert.Equal(t, ModeNone, fx.d.Mode())
		}
	}
}

func TestHitTestOutOfReach(t *testing.T) {
	fx := newFixture(t, Options{})
	// Left handle half-size 4 plus radius 7, one unit further out.
	assert.False(t, fx.d.HitTest(input.At(-12, 50), 1))
	assert.Equal(t, ModeNone, fx.d.Mode())
	assert.True(t, fx.d.HitTest(input.At(-10, 50), 1))
}

func TestSelectedStyleSwap(t *testing.T) {
	fx := newFixture(t, Options{})
	h := fx.d.Handle(ModeRight)
	st := fx.d.styles

	require.True(t, fx.d.HitTest(input.At(100, 50), 1))
	assert.Same(t, st.SelectedHandle, h.AsBase().Style)
	fx.d.Release()
	assert.Same(t, st.Handle, h.AsBase().Style)

	require.True(t, fx.d.HitTest(input.At(50, 50), 1))
	assert.Same(t, st.SelectedBounds, fx.d.Handle(ModeMove).AsBase().Style)
	fx.d.Hide()
	assert.Same(t, st.Bounds, fx.d.Handle(ModeMove).AsBase().Style)
}

func TestResizeGestureRecordsOneSnapshot(t *testing.T) {
	fx := newFixture(t, Options{})

	require.True(t, fx.d.HitTest(input.At(100, 50), 1))
	fx.d.Move(input.At(120, 50))
	fx.d.Move(input.At(150, 60))
	assert.Equal(t, 150.0, fx.rect.BottomRight.X)
	assert.Equal(t, 100.0, fx.rect.BottomRight.Y, "right edge ignores vertical motion")
	assert.Equal(t, 150.0, fx.d.Box().Bounds().Right())
	assert.Equal(t, 150.0, fx.d.Handle(ModeRight).(*shape.Rectangle).Rect().Center().X)
	assert.True(t, fx.rect.IsDirty())

	fx.d.Release()
	require.Equal(t, 1, fx.stack.Len())

	fx.stack.Undo()
	assert.Equal(t, 100.0, fx.rect.BottomRight.X)
	assert.Equal(t, 100.0, fx.d.Box().Bounds().Right())
	fx.stack.Redo()
	assert.Equal(t, 150.0, fx.rect.BottomRight.X)
}

func TestReleaseWithoutMotionRecordsNothing(t *testing.T) {
	fx := newFixture(t, Options{})
	require.True(t, fx.d.HitTest(input.At(50, 50), 1))
	fx.d.Release()
	assert.Equal(t, 0, fx.stack.Len())
}

func TestMoveGesture(t *testing.T) {
	fx := newFixture(t, Options{Snap: input.GridSnap(true, 15, 15)})

	require.True(t, fx.d.HitTest(input.At(49, 52), 1))
	// (49,52) snaps to (45,45) and (62,50) to (60,45).
	fx.d.Move(input.At(62, 50))
	assert.Equal(t, 15.0, fx.rect.TopLeft.X)
	assert.Equal(t, 0.0, fx.rect.TopLeft.Y)
}

func TestProportionalCorner(t *testing.T) {
	fx := newFixture(t, Options{})
	require.True(t, fx.d.HitTest(input.At(100, 100), 1))
	fx.d.Move(input.Args{X: 150, Y: 120, Modifier: input.ModifierShift})

	assert.Equal(t, 150.0, fx.rect.BottomRight.X)
	assert.Equal(t, 150.0, fx.rect.BottomRight.Y)
}

func TestDegenerateBoxHidesCollapsedHandles(t *testing.T) {
	f := shape.NewFactory(shape.DefaultStyle())
	layer := f.Layer("layer")
	line := f.Line(0, 0, 0, 100)
	layer.Add(line)
	d := New(Options{Radius: 7})
	d.SetLayer(layer)
	d.SetShapes([]shape.Shape{line})
	d.Update(true)
	d.Show()

	for _, m := range []Mode{ModeLeft, ModeRight, ModeTopLeft, ModeTopRight, ModeBottomLeft, ModeBottomRight} {
		assert.False(t, d.Handle(m).AsBase().State.IsVisible(), "%v", m)
	}
	for _, m := range []Mode{ModeTop, ModeBottom, ModeMove} {
		assert.True(t, d.Handle(m).AsBase().State.IsVisible(), "%v", m)
	}

	require.True(t, d.HitTest(input.At(0, 50), 1))
	assert.Equal(t, ModeMove, d.Mode())
	d.Move(input.At(10, 50))
	assert.Equal(t, 10.0, line.Start.X)
	assert.Equal(t, 10.0, line.End.X)

	// Restoring width brings the handles back.
	line.End.Set(50, 100)
	d.Update(false)
	assert.True(t, d.Handle(ModeLeft).AsBase().State.IsVisible())
	assert.True(t, d.Handle(ModeTopLeft).AsBase().State.IsVisible())
}

func TestRotateHandle(t *testing.T) {
	fx := newFixture(t, Options{EnableRotate: true})
	assert.Len(t, fx.layer.Shapes, 1+11)

	require.True(t, fx.d.HitTest(input.At(50, rotateDistance), 1))
	require.Equal(t, ModeRotate, fx.d.Mode())

	// The first move latches the pivot; a quarter turn follows.
	fx.d.Move(input.At(150, 50))
	assert.Equal(t, 0.0, fx.rect.TopLeft.X)
	fx.d.Move(input.At(50, 150))
	assert.InDelta(t, 100, fx.rect.TopLeft.X, 1e-9)
	assert.InDelta(t, 0, fx.rect.TopLeft.Y, 1e-9)

	fx.d.Release()
	assert.Equal(t, 1, fx.stack.Len())
}

func TestDefaultStyles(t *testing.T) {
	st := DefaultStyles()
	blue := shape.ARGB(255, 0, 191, 255)
	assert.Equal(t, blue, st.Handle.Stroke)
	assert.Equal(t, blue, st.SelectedHandle.Fill)
	assert.Equal(t, shape.ARGB(255, 255, 255, 255), st.Handle.Fill)

	assert.Equal(t, "SelectedBounds", st.SelectedBounds.Name)
	assert.Equal(t, st.Bounds.Thickness, st.SelectedBounds.Thickness)
	assert.NotEqual(t, st.Bounds.ID, st.SelectedBounds.ID)
	assert.NotSame(t, st.Handle, st.SelectedHandle)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "BottomRight", ModeBottomRight.String())
	assert.Equal(t, "Mode(?)", Mode(99).String())
}
