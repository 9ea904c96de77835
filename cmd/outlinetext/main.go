// Command outlinetext renders outlined text to a PNG or SVG file, or as a
// preview in the terminal.
//
// Usage:
//
//	outlinetext [flags] text...
//
// Examples:
//
//	outlinetext -bold -thickness 2 -o hello.png Hello
//	outlinetext -font "DejaVu Sans" -fill gold -stroke black -o hello.svg Hello
//	outlinetext -italic Hello        # terminal preview
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/gogpu/outlined"
	"github.com/gogpu/outlined/recording"
	"github.com/gogpu/outlined/recording/backends/raster"
	_ "github.com/gogpu/outlined/recording/backends/svg"
	"github.com/gogpu/outlined/text"
)

type config struct {
	family     string
	fontFile   string
	size       float64
	bold       bool
	italic     bool
	fill       string
	stroke     string
	thickness  uint
	maxWidth   float64
	maxHeight  float64
	background string
	padding    float64
	snap       bool
	output     string
	cols       int
	verbose    bool
}

// measureHost records the element's latest measurement.
type measureHost struct {
	width, height float64
	redraws       int
}

func (h *measureHost) RequestRedraw() { h.redraws++ }

func (h *measureHost) ReportMeasurement(w, hgt float64) {
	h.width, h.height = w, hgt
}

func main() {
	var cfg config
	def := outlined.DefaultStyle()
	flag.StringVar(&cfg.family, "font", def.FontFamily, "font family; unknown families fall back to the embedded Go fonts")
	flag.StringVar(&cfg.fontFile, "fontfile", "", "register a TrueType/OpenType file and use its family")
	flag.Float64Var(&cfg.size, "size", def.FontSize, "font size in pixels")
	flag.BoolVar(&cfg.bold, "bold", false, "bold weight")
	flag.BoolVar(&cfg.italic, "italic", false, "italic style")
	flag.StringVar(&cfg.fill, "fill", "lightsteelblue", "fill color (name or #hex)")
	flag.StringVar(&cfg.stroke, "stroke", "teal", "stroke color (name or #hex)")
	flag.UintVar(&cfg.thickness, "thickness", 2, "stroke thickness")
	flag.Float64Var(&cfg.maxWidth, "max-width", def.MaxTextWidth, "wrap width")
	flag.Float64Var(&cfg.maxHeight, "max-height", def.MaxTextHeight, "maximum text height")
	flag.StringVar(&cfg.background, "bg", "", "background color; empty is transparent in files and black in the terminal")
	flag.Float64Var(&cfg.padding, "padding", 8, "margin around the text")
	flag.BoolVar(&cfg.snap, "snap", true, "snap the text origin to whole pixels")
	flag.StringVar(&cfg.output, "o", "", "output file (.png or .svg); empty previews in the terminal")
	flag.IntVar(&cfg.cols, "cols", 80, "terminal preview width in columns")
	flag.BoolVar(&cfg.verbose, "v", false, "log layout details to stderr")
	flag.Parse()

	if cfg.verbose {
		outlined.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	content := strings.Join(flag.Args(), " ")
	if content == "" {
		content = "Hello, World"
	}

	if err := run(cfg, content); err != nil {
		log.Fatalf("outlinetext: %v", err)
	}
}

func run(cfg config, content string) error {
	reg := text.NewDefaultRegistry(text.WithFallbackFamily(text.GoFamily))
	if cfg.fontFile != "" {
		src, err := reg.RegisterFile(cfg.fontFile)
		if err != nil {
			return err
		}
		cfg.family = src.Family()
	}

	host := &measureHost{}
	el := outlined.New(
		outlined.WithHost(host),
		outlined.WithLayouter(outlined.NewTextLayouter(text.NewEngine(text.WithRegistry(reg)))),
	)
	if err := configure(el, cfg, content); err != nil {
		return err
	}

	rec, err := record(el, host, cfg)
	if err != nil {
		return err
	}
	if cfg.output != "" {
		return save(rec, cfg)
	}
	return preview(rec, cfg, caption(content, host.width, host.height))
}

// configure applies the flags to el. Every effective change lays the text
// out again, like property changes in a UI.
func configure(el *outlined.OutlinedText, cfg config, content string) error {
	fill, err := outlined.ParseColor(cfg.fill)
	if err != nil {
		return err
	}
	stroke, err := outlined.ParseColor(cfg.stroke)
	if err != nil {
		return err
	}
	if cfg.thickness > math.MaxUint16 {
		return fmt.Errorf("thickness %d out of range", cfg.thickness)
	}

	for _, set := range []func() error{
		func() error { return el.SetFontFamily(cfg.family) },
		func() error { return el.SetFontSize(cfg.size) },
		func() error { return el.SetBold(cfg.bold) },
		func() error { return el.SetItalic(cfg.italic) },
		func() error { return el.SetFill(outlined.Solid(fill)) },
		func() error { return el.SetStroke(outlined.Solid(stroke)) },
		func() error { return el.SetStrokeThickness(uint16(cfg.thickness)) },
		func() error { return el.SetMaxTextWidth(cfg.maxWidth) },
		func() error { return el.SetMaxTextHeight(cfg.maxHeight) },
		func() error { return el.AddChildText(content) },
	} {
		if err := set(); err != nil {
			return err
		}
	}
	return nil
}

// record paints el into a recording sized to its measurement.
func record(el *outlined.OutlinedText, host *measureHost, cfg config) (*recording.Recording, error) {
	margin := cfg.padding + float64(cfg.thickness)/2
	width := int(math.Ceil(host.width + 2*margin))
	height := int(math.Ceil(host.height + 2*margin))
	rec := recording.NewRecorder(max(width, 1), max(height, 1))

	if cfg.background != "" {
		bg, err := outlined.ParseColor(cfg.background)
		if err != nil {
			return nil, err
		}
		if err := rec.DrawGeometry(outlined.Solid(bg), outlined.Pen{}, rectangle(width, height)); err != nil {
			return nil, err
		}
	}

	rec.Translate(margin, margin)
	if err := el.Paint(rec); err != nil {
		return nil, err
	}
	outlined.Logger().Debug("outlinetext: recorded", "width", width, "height", height, "redraws", host.redraws)
	return rec.FinishRecording(), nil
}

func save(rec *recording.Recording, cfg config) error {
	backend, err := recording.BackendForFile(cfg.output)
	if err != nil {
		return err
	}
	if rb, ok := backend.(*raster.Backend); ok {
		rb.SetCanvasOptions(outlined.WithPixelSnapping(cfg.snap))
	}
	if err := rec.Playback(backend); err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend for %s cannot write files", cfg.output)
	}
	if err := fb.SaveToFile(cfg.output); err != nil {
		return err
	}
	log.Printf("saved %s (%dx%d)", cfg.output, rec.Width(), rec.Height())
	return nil
}

func preview(rec *recording.Recording, cfg config, summary string) error {
	backend := raster.NewBackend(outlined.WithPixelSnapping(cfg.snap))
	bg := outlined.Black
	if cfg.background != "" {
		c, err := outlined.ParseColor(cfg.background)
		if err != nil {
			return err
		}
		bg = c
	}
	backend.SetBackground(bg)
	if err := rec.Playback(backend); err != nil {
		return err
	}
	out := termenv.NewOutput(os.Stdout)
	if err := writePreview(os.Stdout, out, backend.Image(), cfg.cols); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, styleCaption(out.Profile, summary, cfg.cols))
	return err
}

func rectangle(width, height int) *outlined.Path {
	p := outlined.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(float64(width), 0)
	p.LineTo(float64(width), float64(height))
	p.LineTo(0, float64(height))
	p.Close()
	return p
}
