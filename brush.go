package outlined

import "fmt"

// Brush describes how an area is painted.
// This is a sealed interface: SolidBrush and LinearGradientBrush are the
// only implementations. Both are comparable values, so two brushes can be
// compared with ==.
type Brush interface {
	// brushMarker seals the interface.
	brushMarker()

	// ColorAt returns the color at the given layout coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidBrush paints with a single color.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// String returns the brush color as #AARRGGBB.
func (b SolidBrush) String() string {
	return b.Color.String()
}

// Solid creates a SolidBrush.
//
// Example:
//
//	el.SetFill(outlined.Solid(outlined.Teal))
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
// Invalid strings produce opaque black.
func SolidHex(hex string) SolidBrush {
	c, ok := Hex(hex)
	if !ok {
		c = Black
	}
	return SolidBrush{Color: c}
}

// LinearGradientBrush interpolates between two colors along the segment
// Start→End. Points before Start take From, points past End take To.
type LinearGradientBrush struct {
	Start, End Point
	From, To   RGBA
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush by projecting (x, y) onto the gradient axis.
func (b LinearGradientBrush) ColorAt(x, y float64) RGBA {
	axis := b.End.Sub(b.Start)
	lenSq := axis.X*axis.X + axis.Y*axis.Y
	if lenSq == 0 {
		return b.From
	}
	rel := Pt(x, y).Sub(b.Start)
	t := (rel.X*axis.X + rel.Y*axis.Y) / lenSq
	switch {
	case t <= 0:
		return b.From
	case t >= 1:
		return b.To
	}
	return b.From.Lerp(b.To, t)
}

// String describes the gradient in the same #AARRGGBB notation as solid brushes.
func (b LinearGradientBrush) String() string {
	return fmt.Sprintf("linear(%g,%g %s; %g,%g %s)",
		b.Start.X, b.Start.Y, b.From, b.End.X, b.End.Y, b.To)
}

// LinearGradient creates a LinearGradientBrush.
func LinearGradient(start, end Point, from, to RGBA) LinearGradientBrush {
	return LinearGradientBrush{Start: start, End: end, From: from, To: to}
}
