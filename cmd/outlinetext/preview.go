package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// upperHalf paints the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = "▀"

// asciiRamp maps luminance to characters on terminals without color.
const asciiRamp = " .:-=+*#%@"

// writePreview draws img on out using at most cols terminal columns, two
// image rows per terminal row.
func writePreview(w io.Writer, out *termenv.Output, img image.Image, cols int) error {
	b := img.Bounds()
	if b.Empty() || cols <= 0 {
		return nil
	}
	cols = min(cols, b.Dx())
	scale := float64(b.Dx()) / float64(cols)
	rows := int(float64(b.Dy())/scale+1) / 2

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for row := range rows {
		line.Reset()
		for col := range cols {
			top := average(img, b, col, 2*row, scale)
			bottom := average(img, b, col, 2*row+1, scale)
			line.WriteString(cell(out.Profile, top, bottom))
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func cell(p termenv.Profile, top, bottom color.RGBA) string {
	if p == termenv.Ascii {
		l := (luminance(top) + luminance(bottom)) / 2
		i := int(math.Round(l * float64(len(asciiRamp)-1)))
		i = max(0, min(i, len(asciiRamp)-1))
		return string(asciiRamp[i])
	}
	return p.String(upperHalf).
		Foreground(p.FromColor(top)).
		Background(p.FromColor(bottom)).
		String()
}

// average returns the mean color of the image block at cell (cx, cy) of
// size scale x scale.
func average(img image.Image, b image.Rectangle, cx, cy int, scale float64) color.RGBA {
	x0 := b.Min.X + int(float64(cx)*scale)
	y0 := b.Min.Y + int(float64(cy)*scale)
	x1 := min(b.Min.X+int(float64(cx+1)*scale), b.Max.X)
	y1 := min(b.Min.Y+int(float64(cy+1)*scale), b.Max.Y)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)

	var r, g, bl, a, n uint64
	for y := y0; y < y1 && y < b.Max.Y; y++ {
		for x := x0; x < x1 && x < b.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			r += uint64(cr)
			g += uint64(cg)
			bl += uint64(cb)
			a += uint64(ca)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(r / n >> 8),
		G: uint8(g / n >> 8),
		B: uint8(bl / n >> 8),
		A: uint8(a / n >> 8),
	}
}

func luminance(c color.RGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// caption summarizes the previewed text and its measured size.
func caption(content string, width, height float64) string {
	return fmt.Sprintf("%q %.0fx%.0f", content, width, height)
}

// styleCaption fits s into cols terminal cells and dims it on terminals
// with color.
func styleCaption(p termenv.Profile, s string, cols int) string {
	if cols > 0 && runewidth.StringWidth(s) > cols {
		s = runewidth.Truncate(s, cols, "…")
	}
	if p == termenv.Ascii {
		return s
	}
	return p.String(s).Faint().String()
}
