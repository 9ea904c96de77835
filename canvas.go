package outlined

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/outlined/internal/stroke"
)

// Canvas is a Surface that rasterizes geometry into an RGBA image with
// anti-aliasing. Fills use the non-zero winding of the geometry, which is
// how glyph counters stay empty.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.RGBA
	transform Matrix
	snap      bool
	tolerance float64
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithPixelSnapping rounds the translation of the canvas transform to whole
// pixels so that horizontal and vertical glyph stems render crisp.
func WithPixelSnapping(enabled bool) CanvasOption {
	return func(c *Canvas) {
		c.snap = enabled
	}
}

// WithTolerance sets the curve flattening tolerance of strokes in pixels.
// Default: 0.1.
func WithTolerance(tol float64) CanvasOption {
	return func(c *Canvas) {
		if tol > 0 {
			c.tolerance = tol
		}
	}
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		transform: Identity(),
		tolerance: 0.1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with col, replacing its content.
func (c *Canvas) Clear(col RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// SetTransform sets the transform applied to geometry before drawing.
func (c *Canvas) SetTransform(m Matrix) { c.transform = m }

// Transform returns the current transform.
func (c *Canvas) Transform() Matrix { return c.transform }

// DrawGeometry implements Surface. The interior is filled first and the
// stroke painted over it, centered on the outline edge.
func (c *Canvas) DrawGeometry(fill Brush, pen Pen, geometry *Path) error {
	if geometry.IsEmpty() || c.img.Bounds().Empty() {
		return nil
	}
	m := c.deviceTransform()

	if fill != nil {
		z := c.newRasterizer()
		fillPath(z, geometry, m)
		if err := c.paint(z, fill, m); err != nil {
			return err
		}
	}

	if pen.Visible() {
		style := stroke.Style{
			Width:      pen.Width * m.ScaleFactor(),
			Cap:        stroke.LineCap(pen.Cap),
			Join:       stroke.LineJoin(pen.Join),
			MiterLimit: pen.MiterLimit,
		}
		e := stroke.NewExpander(style)
		e.SetTolerance(c.tolerance)
		polys := e.Expand(strokeElements(geometry, m))
		if len(polys) == 0 {
			return nil
		}
		z := c.newRasterizer()
		for _, poly := range polys {
			z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
			for _, p := range poly[1:] {
				z.LineTo(float32(p.X), float32(p.Y))
			}
			z.ClosePath()
		}
		if err := c.paint(z, pen.Brush, m); err != nil {
			return err
		}
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("outlined: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := c.EncodePNG(w); err != nil {
		return err
	}
	return w.Flush()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("outlined: encode png: %w", err)
	}
	return nil
}

func (c *Canvas) deviceTransform() Matrix {
	m := c.transform
	if c.snap {
		m.C = math.Round(m.C)
		m.F = math.Round(m.F)
	}
	return m
}

func (c *Canvas) newRasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

// paint composites the coverage accumulated in z using brush b.
func (c *Canvas) paint(z *vector.Rasterizer, b Brush, m Matrix) error {
	var src image.Image
	switch br := b.(type) {
	case SolidBrush:
		src = image.NewUniform(br.Color.Color())
	default:
		inv, ok := m.Invert()
		if !ok {
			return fmt.Errorf("outlined: singular transform %+v", m)
		}
		src = &brushImage{brush: b, inv: inv}
	}
	z.Draw(c.img, c.img.Bounds(), src, image.Point{})
	return nil
}

// fillPath adds the contours of p, transformed by m, to z. Open contours
// are closed implicitly.
func fillPath(z *vector.Rasterizer, p *Path, m Matrix) {
	open := false
	pt := func(q Point) (float32, float32) {
		q = m.TransformPoint(q)
		return float32(q.X), float32(q.Y)
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(e.Point))
			open = true
		case LineTo:
			z.LineTo(pt(e.Point))
		case QuadTo:
			cx, cy := pt(e.Control)
			x, y := pt(e.Point)
			z.QuadTo(cx, cy, x, y)
		case CubicTo:
			c1x, c1y := pt(e.Control1)
			c2x, c2y := pt(e.Control2)
			x, y := pt(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// strokeElements converts p to device space path elements for the stroker.
func strokeElements(p *Path, m Matrix) []stroke.PathElement {
	pt := func(q Point) stroke.Point {
		q = m.TransformPoint(q)
		return stroke.Point{X: q.X, Y: q.Y}
	}
	out := make([]stroke.PathElement, 0, p.Len())
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, stroke.MoveTo{Point: pt(e.Point)})
		case LineTo:
			out = append(out, stroke.LineTo{Point: pt(e.Point)})
		case QuadTo:
			out = append(out, stroke.QuadTo{Control: pt(e.Control), Point: pt(e.Point)})
		case CubicTo:
			out = append(out, stroke.CubicTo{
				Control1: pt(e.Control1),
				Control2: pt(e.Control2),
				Point:    pt(e.Point),
			})
		case Close:
			out = append(out, stroke.Close{})
		}
	}
	return out
}

// brushImage samples a brush at pixel centers mapped back to layout space.
type brushImage struct {
	brush Brush
	inv   Matrix
}

func (b *brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b *brushImage) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (b *brushImage) At(x, y int) color.Color {
	p := b.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	return b.brush.ColorAt(p.X, p.Y).Color()
}
