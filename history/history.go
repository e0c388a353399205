// Package history records completed edit gestures as snapshots of point
// positions and replays them for undo and redo.
package history

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

// PointState is the recorded position of one point.
type PointState struct {
	Point *shape.Point
	X, Y  float64
}

// PointSet is a snapshot of point positions.
type PointSet []PointState

// Capture records the current position of every point.
func Capture(points []*shape.Point) PointSet {
	ps := make(PointSet, len(points))
	for i, p := range points {
		ps[i] = PointState{Point: p, X: p.X, Y: p.Y}
	}
	return ps
}

// Restore moves every point back to its recorded position.
func (ps PointSet) Restore() {
	for _, s := range ps {
		s.Point.Set(s.X, s.Y)
	}
}

// Equal reports whether both sets record the same points at the same
// positions.
func (ps PointSet) Equal(o PointSet) bool {
	if len(ps) != len(o) {
		return false
	}
	for i := range ps {
		if ps[i] != o[i] {
			return false
		}
	}
	return true
}

// Recorder receives one snapshot per completed gesture. restore applies a
// snapshot to the model and refreshes any dependent state.
type Recorder interface {
	Snapshot(prev, next PointSet, restore func(PointSet))
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(prev, next PointSet, restore func(PointSet))

func (f RecorderFunc) Snapshot(prev, next PointSet, restore func(PointSet)) { f(prev, next, restore) }

// Discard is a Recorder that drops every snapshot.
var Discard Recorder = RecorderFunc(func(PointSet, PointSet, func(PointSet)) {})

// Edit is one undoable command.
type Edit struct {
	ID     uuid.UUID
	Name   string
	Before PointSet
	After  PointSet
	Apply  func(PointSet)
}

// NewEdit returns an edit with a fresh ID. A nil apply restores point
// positions only.
func NewEdit(name string, before, after PointSet, apply func(PointSet)) *Edit {
	if apply == nil {
		apply = PointSet.Restore
	}
	return &Edit{ID: uuid.New(), Name: name, Before: before, After: after, Apply: apply}
}

// Undo applies the before snapshot.
func (e *Edit) Undo() { e.Apply(e.Before) }

// Redo applies the after snapshot.
func (e *Edit) Redo() { e.Apply(e.After) }

// Stack is a bounded undo/redo stack. It implements Recorder. The zero
// value is unbounded and ready to use.
type Stack struct {
	// Limit caps the number of undoable edits. Zero means no limit.
	Limit int

	undo []*Edit
	redo []*Edit
}

// NewStack returns a stack holding at most limit edits.
func NewStack(limit int) *Stack { return &Stack{Limit: limit} }

// Snapshot records an unnamed edit.
func (s *Stack) Snapshot(prev, next PointSet, restore func(PointSet)) {
	s.Push(NewEdit("edit", prev, next, restore))
}

// Push records e as the newest edit and clears the redo list.
func (s *Stack) Push(e *Edit) {
	s.undo = append(s.undo, e)
	if s.Limit > 0 && len(s.undo) > s.Limit {
		s.undo = s.undo[len(s.undo)-s.Limit:]
	}
	s.redo = s.redo[:0]
	ggedit.Logger().Info("history: edit recorded",
		slog.String("id", e.ID.String()),
		slog.String("name", e.Name),
		slog.Int("points", len(e.After)))
}

// CanUndo reports whether an edit is available to undo.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether an undone edit is available to redo.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Undo reverts the newest edit and returns it, or nil when there is none.
func (s *Stack) Undo() *Edit {
	if len(s.undo) == 0 {
		return nil
	}
	e := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	e.Undo()
	s.redo = append(s.redo, e)
	return e
}

// Redo reapplies the most recently undone edit and returns it, or nil.
func (s *Stack) Redo() *Edit {
	if len(s.redo) == 0 {
		return nil
	}
	e := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	e.Redo()
	s.undo = append(s.undo, e)
	return e
}

// Len returns the number of undoable edits.
func (s *Stack) Len() int { return len(s.undo) }

// Reset drops every edit.
func (s *Stack) Reset() {
	s.undo = nil
	s.redo = nil
}
