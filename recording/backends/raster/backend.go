// Package raster renders recordings to PNG images with outlined.Canvas.
//
// Importing the package registers the backend as "png":
//
//	import _ "github.com/gogpu/outlined/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("png")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("out.png")
package raster

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/outlined"
	"github.com/gogpu/outlined/recording"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to an RGBA image.
type Backend struct {
	opts       []outlined.CanvasOption
	background *outlined.RGBA

	canvas *outlined.Canvas
	stack  []outlined.Matrix
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

var errNotStarted = errors.New("raster: Begin has not been called")

// NewBackend creates a raster backend. The options configure the canvas
// created by Begin.
func NewBackend(opts ...outlined.CanvasOption) *Backend {
	return &Backend{opts: opts}
}

// SetCanvasOptions replaces the options of canvases created by Begin.
func (b *Backend) SetCanvasOptions(opts ...outlined.CanvasOption) {
	b.opts = opts
}

// SetBackground makes Begin clear the canvas to c instead of transparency.
func (b *Backend) SetBackground(c outlined.RGBA) {
	b.background = &c
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("raster: canvas size must be positive")
	}
	b.canvas = outlined.NewCanvas(width, height, b.opts...)
	b.stack = b.stack[:0]
	if b.background != nil {
		b.canvas.Clear(*b.background)
	}
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error { return nil }

// Save implements recording.Backend.
func (b *Backend) Save() {
	if b.canvas != nil {
		b.stack = append(b.stack, b.canvas.Transform())
	}
}

// Restore implements recording.Backend.
func (b *Backend) Restore() {
	if n := len(b.stack); n > 0 && b.canvas != nil {
		b.canvas.SetTransform(b.stack[n-1])
		b.stack = b.stack[:n-1]
	}
}

// SetTransform implements recording.Backend.
func (b *Backend) SetTransform(m outlined.Matrix) {
	if b.canvas != nil {
		b.canvas.SetTransform(m)
	}
}

// DrawGeometry implements recording.Backend.
func (b *Backend) DrawGeometry(fill outlined.Brush, pen outlined.Pen, geometry *outlined.Path) error {
	if b.canvas == nil {
		return errNotStarted
	}
	return b.canvas.DrawGeometry(fill, pen, geometry)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	if b.canvas == nil {
		return nil
	}
	return b.canvas.Image()
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, errNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.canvas.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile writes the image to a PNG file.
func (b *Backend) SaveToFile(path string) error {
	if b.canvas == nil {
		return errNotStarted
	}
	return b.canvas.SavePNG(path)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
