package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit/shape"
)

func movedLine(t *testing.T) (*shape.Line, PointSet, PointSet) {
	t.Helper()
	l := shape.NewFactory(shape.DefaultStyle()).Line(0, 0, 10, 0)
	pts := l.Points(nil)
	before := Capture(pts)
	l.Move(5, 5)
	return l, before, Capture(pts)
}

func TestCaptureRestore(t *testing.T) {
	l, before, after := movedLine(t)
	assert.False(t, before.Equal(after))

	before.Restore()
	assert.Equal(t, 0.0, l.Start.X)
	assert.Equal(t, 10.0, l.End.X)
	assert.True(t, l.IsDirty())

	after.Restore()
	assert.Equal(t, 5.0, l.Start.Y)
}

func TestStackUndoRedo(t *testing.T) {
	l, before, after := movedLine(t)
	s := NewStack(0)
	assert.False(t, s.CanUndo())
	assert.Nil(t, s.Undo())

	applied := 0
	s.Snapshot(before, after, func(ps PointSet) {
		applied++
		ps.Restore()
	})
	require.True(t, s.CanUndo())

	e := s.Undo()
	require.NotNil(t, e)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, 0.0, l.Start.Y)
	assert.True(t, s.CanRedo())

	assert.Same(t, e, s.Redo())
	assert.Equal(t, 5.0, l.Start.Y)
	assert.Equal(t, 2, applied)
	assert.False(t, s.CanRedo())
}

func TestStackPushClearsRedo(t *testing.T) {
	_, before, after := movedLine(t)
	s := NewStack(0)
	s.Push(NewEdit("move", before, after, nil))
	s.Undo()
	require.True(t, s.CanRedo())

	s.Push(NewEdit("scale", before, after, nil))
	assert.False(t, s.CanRedo())
	assert.Equal(t, 1, s.Len())
}

func TestStackLimit(t *testing.T) {
	_, before, after := movedLine(t)
	s := NewStack(2)
	first := NewEdit("a", before, after, nil)
	s.Push(first)
	s.Push(NewEdit("b", before, after, nil))
	s.Push(NewEdit("c", before, after, nil))
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, "c", s.Undo().Name)
	assert.Equal(t, "b", s.Undo().Name)
	assert.Nil(t, s.Undo())

	s.Reset()
	assert.False(t, s.CanRedo())
}

func TestRecorderFunc(t *testing.T) {
	var got int
	var r Recorder = RecorderFunc(func(prev, next PointSet, _ func(PointSet)) {
		got = len(prev) + len(next)
	})
	r.Snapshot(make(PointSet, 2), make(PointSet, 3), nil)
	assert.Equal(t, 5, got)
	assert.NotPanics(t, func() { Discard.Snapshot(nil, nil, nil) })
}
