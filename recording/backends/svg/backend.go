// Package svg exports recordings as SVG documents.
//
// Importing the package registers the backend as "svg". Glyph outlines
// become <path> elements with fill-rule nonzero; pens map to the SVG
// stroke properties and linear gradients to <linearGradient> definitions
// in user space.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/outlined"
	"github.com/gogpu/outlined/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend writes an SVG document.
type Backend struct {
	width, height int

	defs bytes.Buffer
	body bytes.Buffer
	out  []byte

	transform outlined.Matrix
	stack     []outlined.Matrix
	gradients int
	ended     bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

var errNotEnded = errors.New("svg: End has not been called")

// NewBackend creates an SVG backend.
func NewBackend() *Backend {
	return &Backend{transform: outlined.Identity()}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("svg: canvas size must be positive")
	}
	b.width, b.height = width, height
	b.defs.Reset()
	b.body.Reset()
	b.out = nil
	b.transform = outlined.Identity()
	b.stack = b.stack[:0]
	b.gradients = 0
	b.ended = false
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.width, b.height, b.width, b.height)
	if b.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.Write(b.defs.Bytes())
		doc.WriteString("</defs>\n")
	}
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")
	b.out = doc.Bytes()
	b.ended = true
	return nil
}

// Save implements recording.Backend.
func (b *Backend) Save() { b.stack = append(b.stack, b.transform) }

// Restore implements recording.Backend.
func (b *Backend) Restore() {
	if n := len(b.stack); n > 0 {
		b.transform = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

// SetTransform implements recording.Backend.
func (b *Backend) SetTransform(m outlined.Matrix) { b.transform = m }

// DrawGeometry implements recording.Backend.
func (b *Backend) DrawGeometry(fill outlined.Brush, pen outlined.Pen, geometry *outlined.Path) error {
	if geometry.IsEmpty() {
		return nil
	}
	fillAttr, err := b.paint(fill)
	if err != nil {
		return err
	}

	b.body.WriteString(`<path d="`)
	writePathData(&b.body, geometry)
	b.body.WriteString(`"`)
	if !b.transform.IsIdentity() {
		m := b.transform
		fmt.Fprintf(&b.body, ` transform="matrix(%s %s %s %s %s %s)"`,
			num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
	}
	fmt.Fprintf(&b.body, ` fill=%q fill-rule="nonzero"`, fillAttr)

	if pen.Visible() {
		strokeAttr, err := b.paint(pen.Brush)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b.body, ` stroke=%q stroke-width="%s" stroke-linecap="%s" stroke-linejoin="%s"`,
			strokeAttr, num(pen.Width), lineCap(pen.Cap), lineJoin(pen.Join))
		if pen.Join == outlined.LineJoinMiter && pen.MiterLimit >= 1 {
			fmt.Fprintf(&b.body, ` stroke-miterlimit="%s"`, num(pen.MiterLimit))
		}
	}
	b.body.WriteString("/>\n")
	return nil
}

// Bytes returns the document after End.
func (b *Backend) Bytes() []byte { return b.out }

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, errNotEnded
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile implements recording.FileBackend.
func (b *Backend) SaveToFile(path string) error {
	if !b.ended {
		return errNotEnded
	}
	if err := os.WriteFile(path, b.out, 0o644); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// paint returns the value of a fill or stroke attribute for br, adding a
// gradient definition when needed.
func (b *Backend) paint(br outlined.Brush) (string, error) {
	switch v := br.(type) {
	case nil:
		return "none", nil
	case outlined.SolidBrush:
		return colorValue(v.Color), nil
	case outlined.LinearGradientBrush:
		b.gradients++
		id := "g" + strconv.Itoa(b.gradients)
		fmt.Fprintf(&b.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
			id, num(v.Start.X), num(v.Start.Y), num(v.End.X), num(v.End.Y))
		writeStop(&b.defs, 0, v.From)
		writeStop(&b.defs, 1, v.To)
		b.defs.WriteString("</linearGradient>\n")
		return "url(#" + id + ")", nil
	}
	return "", fmt.Errorf("svg: unsupported brush %T", br)
}

func writeStop(buf *bytes.Buffer, offset float64, c outlined.RGBA) {
	fmt.Fprintf(buf, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
		num(offset), rgbHex(c), num(c.A))
}

// colorValue formats c as #RRGGBB, or rgba() when translucent.
func colorValue(c outlined.RGBA) string {
	if c.A >= 1 {
		return rgbHex(c)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", to8(c.R), to8(c.G), to8(c.B), num(c.A))
}

func rgbHex(c outlined.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

func writePathData(buf *bytes.Buffer, p *outlined.Path) {
	sep := func(cmd byte) {
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '"' {
			buf.WriteByte(' ')
		}
		buf.WriteByte(cmd)
	}
	pt := func(q outlined.Point) {
		buf.WriteString(num(q.X))
		buf.WriteByte(',')
		buf.WriteString(num(q.Y))
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case outlined.MoveTo:
			sep('M')
			pt(e.Point)
		case outlined.LineTo:
			sep('L')
			pt(e.Point)
		case outlined.QuadTo:
			sep('Q')
			pt(e.Control)
			buf.WriteByte(' ')
			pt(e.Point)
		case outlined.CubicTo:
			sep('C')
			pt(e.Control1)
			buf.WriteByte(' ')
			pt(e.Control2)
			buf.WriteByte(' ')
			pt(e.Point)
		case outlined.Close:
			sep('Z')
		}
	}
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lineCap(c outlined.LineCap) string {
	switch c {
	case outlined.LineCapRound:
		return "round"
	case outlined.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func lineJoin(j outlined.LineJoin) string {
	switch j {
	case outlined.LineJoinRound:
		return "round"
	case outlined.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
