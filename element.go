package outlined

import (
	"fmt"

	"github.com/gogpu/outlined/text"
)

// Fixed layout inputs of an OutlinedText.
const (
	// Locale is the language every element is shaped in.
	Locale = "en-us"

	// LineSpacing multiplies the natural line height of the font.
	LineSpacing = 1.25
)

// OutlinedText is a text element painted as filled glyph outlines with a
// stroked border.
//
// Changing any style field regenerates the outline synchronously, reports
// the new measurement to the host and requests a redraw. Paint then fills
// and strokes the cached outline without touching the style.
//
// An OutlinedText is not safe for concurrent use; like any UI element it
// belongs to the goroutine running the host's event loop.
type OutlinedText struct {
	style    Style
	host     Host
	layouter Layouter
	equality Equality

	// geometry is nil until the first successful regeneration.
	geometry      *Path
	width, height float64
}

// New creates an element with DefaultStyle. Without WithLayouter it
// uses DefaultLayouter, whose font lookup depends on the installed fonts.
func New(opts ...Option) *OutlinedText {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.layouter == nil {
		o.layouter = DefaultLayouter()
	}

	t := &OutlinedText{
		style:    DefaultStyle(),
		host:     o.host,
		layouter: o.layouter,
		equality: o.equality,
	}
	if o.style != nil {
		for _, f := range Fields() {
			v, err := normalize(f, o.style.Value(f))
			if err != nil {
				Logger().Warn("outlined: initial style value ignored", "field", f, "err", err)
				continue
			}
			t.style = t.style.with(f, v)
		}
	}
	return t
}

// Set assigns value to field. A value equal to the current one under the
// element's Equality policy is a no-op. Otherwise the outline is
// regenerated and the value committed only if layout succeeds.
//
// Set returns an *InvalidStyleError for out-of-domain values and a
// *LayoutError when the text cannot be laid out. In both cases the style,
// geometry and measurement stay as they were.
func (t *OutlinedText) Set(field Field, value any) error {
	v, err := normalize(field, value)
	if err != nil {
		return err
	}
	if t.equality.equal(t.style.Value(field), v) {
		return nil
	}
	return t.regenerate(t.style.with(field, v), true)
}

// SetText sets the text content.
func (t *OutlinedText) SetText(s string) error { return t.Set(FieldText, s) }

// SetFontFamily sets the font family name.
func (t *OutlinedText) SetFontFamily(family string) error { return t.Set(FieldFontFamily, family) }

// SetFontSize sets the font size.
func (t *OutlinedText) SetFontSize(size float64) error { return t.Set(FieldFontSize, size) }

// SetBold selects the bold weight.
func (t *OutlinedText) SetBold(bold bool) error { return t.Set(FieldBold, bold) }

// SetItalic selects the italic style.
func (t *OutlinedText) SetItalic(italic bool) error { return t.Set(FieldItalic, italic) }

// SetFill sets the interior brush.
func (t *OutlinedText) SetFill(b Brush) error { return t.Set(FieldFill, b) }

// SetStroke sets the border brush.
func (t *OutlinedText) SetStroke(b Brush) error { return t.Set(FieldStroke, b) }

// SetStrokeThickness sets the border width.
func (t *OutlinedText) SetStrokeThickness(w uint16) error { return t.Set(FieldStrokeThickness, w) }

// SetMaxTextWidth sets the wrapping width.
func (t *OutlinedText) SetMaxTextWidth(w float64) error { return t.Set(FieldMaxTextWidth, w) }

// SetMaxTextHeight sets the height past which lines are dropped.
func (t *OutlinedText) SetMaxTextHeight(h float64) error { return t.Set(FieldMaxTextHeight, h) }

// AddChildText sets the text content. It is the content-model form of
// SetText for builders that supply text as nested content.
func (t *OutlinedText) AddChildText(value string) error {
	return t.SetText(value)
}

// AddChild accepts nested content. Strings and fmt.Stringer values become
// the text; anything else is rejected with ErrUnsupportedChild.
func (t *OutlinedText) AddChild(value any) error {
	switch v := value.(type) {
	case string:
		return t.AddChildText(v)
	case fmt.Stringer:
		return t.AddChildText(v.String())
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedChild, value)
}

// Regenerate lays out the current style again, replacing the cached
// outline and measurement.
func (t *OutlinedText) Regenerate() error {
	return t.regenerate(t.style, true)
}

// Paint draws the cached outline on s: one DrawGeometry call with the Fill
// brush and a pen of the Stroke brush and StrokeThickness width.
// The outline is generated first if no change has happened yet.
func (t *OutlinedText) Paint(s Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	if t.geometry == nil {
		// Already painting: no redraw request.
		if err := t.regenerate(t.style, false); err != nil {
			return err
		}
	}
	return s.DrawGeometry(t.style.Fill, t.pen(), t.geometry)
}

// Style returns a copy of the current style.
func (t *OutlinedText) Style() Style {
	return t.style
}

// Geometry returns the cached outline, or nil before the first
// regeneration. The path must not be modified.
func (t *OutlinedText) Geometry() *Path {
	return t.geometry
}

// MinWidth returns the measured width of the last layout.
func (t *OutlinedText) MinWidth() float64 {
	return t.width
}

// MinHeight returns the measured height of the last layout.
func (t *OutlinedText) MinHeight() float64 {
	return t.height
}

// Ready reports whether the cached outline matches the current style.
func (t *OutlinedText) Ready() bool {
	return t.geometry != nil
}

func (t *OutlinedText) pen() Pen {
	return NewPen(t.style.Stroke, float64(t.style.StrokeThickness))
}

// regenerate lays out candidate and, on success, commits it together with
// the new geometry and measurement.
func (t *OutlinedText) regenerate(candidate Style, redraw bool) error {
	req := layoutRequest(candidate)
	res, err := t.layouter.Layout(req)
	if err != nil {
		Logger().Warn("outlined: layout failed",
			"family", candidate.FontFamily,
			"size", candidate.FontSize,
			"err", err)
		return &LayoutError{Style: candidate, Err: err}
	}
	if res.Geometry == nil {
		res.Geometry = NewPath()
	}

	t.style = candidate
	t.geometry = res.Geometry
	t.width, t.height = res.Width, res.Height

	Logger().Debug("outlined: regenerated",
		"text", candidate.Text,
		"family", candidate.FontFamily,
		"weight", req.Weight,
		"style", req.Style,
		"size", candidate.FontSize,
		"width", t.width,
		"height", t.height,
		"contours", t.geometry.Contours())

	t.host.ReportMeasurement(t.width, t.height)
	if redraw {
		t.host.RequestRedraw()
	}
	return nil
}

// layoutRequest derives the layout input of s.
func layoutRequest(s Style) LayoutRequest {
	weight := text.WeightMedium
	if s.Bold {
		weight = text.WeightBold
	}
	style := text.StyleNormal
	if s.Italic {
		style = text.StyleItalic
	}
	return LayoutRequest{
		Text:        s.Text,
		FontFamily:  s.FontFamily,
		FontSize:    s.FontSize,
		Weight:      weight,
		Style:       style,
		Direction:   text.DirectionLTR,
		Locale:      Locale,
		Foreground:  Solid(Black),
		LineSpacing: LineSpacing,
		MaxWidth:    s.MaxTextWidth,
		MaxHeight:   s.MaxTextHeight,
	}
}
