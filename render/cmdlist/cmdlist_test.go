package cmdlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/render"
	"github.com/gogpu/ggedit/shape"
)

func testPage(f *shape.Factory, name string) *shape.Page {
	page := f.Page(name, 100, 50)
	page.Current().Add(f.Rectangle(10, 10, 30, 20))
	return page
}

func newFactory() *shape.Factory {
	return shape.NewFactory(shape.NewStyle("s", shape.ARGB(255, 0, 0, 0), shape.ARGB(255, 255, 0, 0), 2))
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, render.Backends(), Name)
}

func TestRecordPage(t *testing.T) {
	e := NewExporter(render.NewRenderer())
	got := e.RecordPage(testPage(newFactory(), "p1"))

	assert.Equal(t, "p1", got.Name)
	require.Len(t, got.Commands, 2)
	assert.Equal(t, Command{Op: "fill-rect", Args: []float64{0, 0, 100, 50}, Color: "#FFFFFFFF"}, got.Commands[0])
	assert.Equal(t, Command{
		Op:    "stroke-rect",
		Args:  []float64{10, 10, 20, 10},
		Color: "#FF000000",
		Width: 2,
		Cap:   "round",
	}, got.Commands[1])
}

func TestExportJSONPage(t *testing.T) {
	var buf bytes.Buffer
	e := NewExporter(render.NewRenderer())
	require.NoError(t, e.Export(&buf, testPage(newFactory(), "p1")))

	var page Page
	require.NoError(t, json.Unmarshal(buf.Bytes(), &page))
	assert.Equal(t, 100.0, page.Width)
	assert.Len(t, page.Commands, 2)
}

func TestExportYAMLDocument(t *testing.T) {
	f := newFactory()
	doc := f.Document("doc")
	doc.Pages = append(doc.Pages, testPage(f, "a"), testPage(f, "b"))

	var buf bytes.Buffer
	e := NewExporter(render.NewRenderer())
	e.Format = FormatYAML
	require.NoError(t, e.Export(&buf, doc))

	var got Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Pages, 2)
	assert.Equal(t, "b", got.Pages[1].Name)
	assert.Equal(t, "stroke-rect", got.Pages[1].Commands[1].Op)
}

func TestExportRejectsProject(t *testing.T) {
	e := NewExporter(render.NewRenderer())
	err := e.Export(&bytes.Buffer{}, newFactory().Project("proj"))
	assert.True(t, errors.Is(err, render.ErrUnsupportedContainer))
	assert.ErrorContains(t, err, "cmdlist: ")
}

func TestPathData(t *testing.T) {
	p := ggedit.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0.5)
	p.QuadraticTo(1, 2, 3, 4)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()
	assert.Equal(t, "M 0 0 L 10 0.5 Q 1 2 3 4 C 1 2 3 4 5 6 Z", PathData(p))
}

func TestZoomedHandleRecordsTransform(t *testing.T) {
	f := newFactory()
	r := render.NewRenderer()
	r.Zoom = 2
	h := f.Rectangle(0, 0, 8, 8)
	h.State = shape.StateVisible | shape.StateSize | shape.StateThickness

	var s Surface
	r.DrawShapes(&s, []shape.Shape{h})
	ops := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		ops[i] = c.Op
	}
	assert.Equal(t, []string{"save", "translate", "scale", "stroke-rect", "restore"}, ops)
	assert.Equal(t, []float64{2, 2}, s.Commands[1].Args)
	assert.Equal(t, []float64{0.5, 0.5}, s.Commands[2].Args)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
