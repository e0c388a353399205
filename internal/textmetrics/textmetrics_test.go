package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/shape"
)

func TestMeasure(t *testing.T) {
	m := Default()
	short := m.Measure("Hi", 12)
	long := m.Measure("Hello, world", 12)

	assert.Greater(t, short.Width, 0.0)
	assert.Greater(t, long.Width, short.Width)
	assert.Greater(t, short.Ascent, 0.0)
	assert.Greater(t, short.Descent, 0.0)
	assert.Less(t, short.Height(), 12*1.5)

	double := m.Measure("Hello, world", 24)
	assert.InDelta(t, long.Width*2, double.Width, 1)
	assert.Equal(t, 0.0, m.Advance("", 12))
}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := New([]byte("not a font"))
	require.Error(t, err)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, LeftToRight, Direction("abc"))
	assert.Equal(t, LeftToRight, Direction("123"))
	assert.Equal(t, RightToLeft, Direction("  שלום"))
	assert.Equal(t, RightToLeft, Direction("مرحبا abc"))
}

func TestLayout(t *testing.T) {
	m := Default()
	box := ggedit.XYWH(0, 0, 200, 100)
	sz := m.Measure("abc", 12)

	left := m.Layout("abc", 12, box, shape.TextHAlignLeft, shape.TextVAlignTop)
	assert.Equal(t, 0.0, left.X)
	assert.InDelta(t, sz.Ascent, left.Y, 1e-9)

	right := m.Layout("abc", 12, box, shape.TextHAlignRight, shape.TextVAlignBottom)
	assert.InDelta(t, 200-sz.Width, right.X, 1e-9)
	assert.InDelta(t, 100-sz.Descent, right.Y, 1e-9)

	center := m.Layout("abc", 12, box, shape.TextHAlignCenter, shape.TextVAlignCenter)
	assert.InDelta(t, 100-sz.Width/2, center.X, 1e-9)

	rtl := m.Layout("שלום", 12, box, shape.TextHAlignLeft, shape.TextVAlignTop)
	assert.InDelta(t, 200-m.Advance("שלום", 12), rtl.X, 1e-9, "start of an RTL line is on the right")
}
