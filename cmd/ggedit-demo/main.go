// Command ggedit-demo builds a small diagram, replays a few editing
// gestures on it and exports the result as a PNG and a command list.
//
// Options come from the built-in defaults, an optional TOML file (-config)
// and GGEDIT_* environment variables, in that order.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/config"
	"github.com/gogpu/ggedit/editor"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/render"
	"github.com/gogpu/ggedit/render/cmdlist"
	"github.com/gogpu/ggedit/render/raster"
	"github.com/gogpu/ggedit/shape"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML options file")
		outDir     = flag.String("out", ".", "output directory")
		format     = flag.String("format", "json", "command list format (json or yaml)")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
		dumpConfig = flag.Bool("dump-config", false, "print the effective options as TOML and exit")
	)
	flag.Parse()

	if *verbose {
		ggedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		log.Fatalf("Failed to load options: %v", err)
	}
	if *dumpConfig {
		if err := opts.Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	listFormat, err := cmdlist.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	e, err := editor.New(opts)
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}
	if err := buildDiagram(e); err != nil {
		log.Fatalf("Failed to build diagram: %v", err)
	}
	replay(e)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	pngPath := filepath.Join(*outDir, "page.png")
	if err := exportFile(pngPath, func(w *os.File) error {
		return e.Export(w, raster.Name, e.Page())
	}); err != nil {
		log.Fatalf("Failed to export PNG: %v", err)
	}

	listPath := filepath.Join(*outDir, "document."+listExt(listFormat))
	if err := exportFile(listPath, func(w *os.File) error {
		exp := cmdlist.NewExporter(e.Renderer())
		exp.Format = listFormat
		exp.Indent = true
		return exp.Export(w, e.Project().Documents[0])
	}); err != nil {
		log.Fatalf("Failed to export command list: %v", err)
	}

	log.Printf("Diagram saved to %s and %s (backends: %v)\n", pngPath, listPath, render.Backends())
}

func loadOptions(path string) (config.Options, error) {
	opts := config.Default()
	if path != "" {
		var err error
		if opts, err = config.Load(path); err != nil {
			return opts, err
		}
	}
	return config.FromEnv(opts)
}

func listExt(f cmdlist.Format) string {
	if f == cmdlist.FormatYAML {
		return "yaml"
	}
	return "json"
}

func exportFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// buildDiagram adds two boxes joined by a connector line, a caption, a
// filled path and a generated bitmap.
func buildDiagram(e *editor.Editor) error {
	f := e.Factory()

	stroke := shape.MustParseArgb("#FF1E6FD9")
	h, sat, _ := stroke.Hsv()
	accent := shape.NewStyle("Accent", stroke, shape.FromHsv(h, sat/3, 1, 0x40), 2)
	e.Project().Styles = append(e.Project().Styles, accent)

	left := f.Rectangle(60, 60, 210, 150)
	right := f.Ellipse(360, 60, 510, 150)
	right.Style = accent

	link := f.Line(210, 105, 360, 105)
	link.ConnectStart(left.BottomRight)

	caption := f.Text(60, 180, 510, 210, "ggedit demo")
	caption.Style = accent

	geo := f.PathGeometry()
	geo.BeginFigure(90, 300, true, true).
		LineTo(180, 240).
		QuadraticTo(240, 300, 180, 360).
		CubicTo(150, 390, 120, 390, 90, 360)
	star := f.Path(geo)
	star.IsFilled = true
	star.Style = accent

	data, err := checker(32, 32)
	if err != nil {
		return err
	}
	e.Images().Add("checker", data)
	pic := f.Image(360, 240, 480, 360, "checker")

	e.Add(left, right, link, caption, star, pic)
	return nil
}

// replay drags the left box, resizes the selection, groups the boxes
// with a marquee and undoes the resize.
func replay(e *editor.Editor) {
	drag := func(from, to input.Args) {
		e.PointerPressed(from)
		e.PointerMoved(to)
		e.PointerReleased(to)
	}

	drag(input.At(135, 100), input.At(150, 130))
	drag(input.At(225, 180), input.At(255, 195))
	e.Undo()

	drag(input.At(30, 30), input.At(540, 170))
	if _, err := e.Group("boxes"); err != nil {
		ggedit.Logger().Warn("demo: group failed", slog.Any("error", err))
	}
	e.Deselect()
	fmt.Fprintf(os.Stderr, "edits: %d, shapes on layer: %d\n", e.History().Len(), len(e.Layer().Shapes))
}

func checker(w, h int) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 30, G: 111, B: 217, A: 255}
			if (x/8+y/8)%2 == 0 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
