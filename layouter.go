package outlined

import (
	"sync"

	"github.com/gogpu/outlined/text"
)

// LayoutRequest is the input of a text layout.
type LayoutRequest struct {
	Text       string
	FontFamily string
	FontSize   float64
	Weight     text.Weight
	Style      text.Style
	Direction  text.Direction

	// Locale is a BCP 47 language tag.
	Locale string

	// Foreground is the brush the text would be drawn with. Layouters
	// that only produce geometry ignore it.
	Foreground Brush

	// LineSpacing multiplies the natural line height of the font.
	LineSpacing float64

	MaxWidth  float64
	MaxHeight float64
}

// LayoutResult is the outline of laid out text, anchored with the top
// left of the layout box at the origin, and its measured size.
type LayoutResult struct {
	Geometry *Path
	Width    float64
	Height   float64
}

// Layouter is the text layout service used by OutlinedText.
type Layouter interface {
	Layout(req LayoutRequest) (LayoutResult, error)
}

// TextLayouter lays out text with a text.Engine.
// It is safe for concurrent use.
type TextLayouter struct {
	engine *text.Engine
}

var (
	defaultLayouter     *TextLayouter
	defaultLayouterOnce sync.Once
)

// DefaultLayouter returns the shared TextLayouter over text.DefaultEngine().
//
// Families are looked up among the embedded Go fonts and installed system
// fonts. The default family Arial falls back to Liberation Sans or Arimo
// when it is not installed; with none of them present, layout of the
// default style fails with text.ErrFontNotFound. Use WithLayouter with a
// registry built with text.WithFallbackFamily(text.GoFamily) to always
// resolve.
func DefaultLayouter() *TextLayouter {
	defaultLayouterOnce.Do(func() {
		defaultLayouter = NewTextLayouter(text.DefaultEngine())
	})
	return defaultLayouter
}

// NewTextLayouter creates a layouter over engine.
// A nil engine means text.DefaultEngine().
func NewTextLayouter(engine *text.Engine) *TextLayouter {
	if engine == nil {
		engine = text.DefaultEngine()
	}
	return &TextLayouter{engine: engine}
}

// Engine returns the underlying text engine.
func (l *TextLayouter) Engine() *text.Engine {
	return l.engine
}

// Layout implements Layouter.
func (l *TextLayouter) Layout(req LayoutRequest) (LayoutResult, error) {
	layout, err := l.engine.Layout(req.Text, text.Params{
		Family:      req.FontFamily,
		Size:        req.FontSize,
		Weight:      req.Weight,
		Style:       req.Style,
		Direction:   req.Direction,
		Locale:      req.Locale,
		LineSpacing: req.LineSpacing,
		MaxWidth:    req.MaxWidth,
		MaxHeight:   req.MaxHeight,
	})
	if err != nil {
		return LayoutResult{}, err
	}
	outline, err := l.engine.Outline(layout)
	if err != nil {
		return LayoutResult{}, err
	}
	return LayoutResult{
		Geometry: outlineToPath(outline),
		Width:    layout.Width,
		Height:   layout.Height,
	}, nil
}

// outlineToPath converts text outline segments into a Path.
func outlineToPath(o *text.Outline) *Path {
	p := NewPath()
	if o.IsEmpty() {
		return p
	}
	for _, s := range o.Segments {
		pts := s.Points
		switch s.Op {
		case text.OutlineOpMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case text.OutlineOpLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case text.OutlineOpQuadTo:
			p.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case text.OutlineOpCubicTo:
			p.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case text.OutlineOpClose:
			p.Close()
		}
	}
	return p
}
