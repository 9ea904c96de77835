package outlined

import (
	"math"
	"strings"
)

// Style holds the styling state of an OutlinedText.
// Every field affects the outline geometry or its paint, so every
// effective change regenerates the outline and requests a redraw.
type Style struct {
	Text       string
	FontFamily string

	// FontSize is the em size in layout units. Must be positive and finite.
	FontSize float64

	Bold   bool
	Italic bool

	// Fill paints the glyph interiors.
	Fill Brush

	// Stroke paints the glyph borders, StrokeThickness units wide.
	// A thickness of 0 disables the border.
	Stroke          Brush
	StrokeThickness uint16

	// MaxTextWidth and MaxTextHeight bound the layout box. Lines wrap at
	// MaxTextWidth and lines past MaxTextHeight are dropped.
	// Both must be positive; +Inf removes the bound.
	MaxTextWidth  float64
	MaxTextHeight float64
}

// DefaultStyle returns the style of a freshly constructed element.
func DefaultStyle() Style {
	return Style{
		FontFamily:    "Arial",
		FontSize:      48,
		Fill:          Solid(LightSteelBlue),
		Stroke:        Solid(Teal),
		MaxTextWidth:  1000,
		MaxTextHeight: 1000,
	}
}

// Field identifies a Style field for the generic setter.
type Field int

// Style fields.
const (
	FieldText Field = iota
	FieldFontFamily
	FieldFontSize
	FieldBold
	FieldItalic
	FieldFill
	FieldStroke
	FieldStrokeThickness
	FieldMaxTextWidth
	FieldMaxTextHeight

	fieldCount
)

var fieldNames = [...]string{
	FieldText:            "Text",
	FieldFontFamily:      "FontFamily",
	FieldFontSize:        "FontSize",
	FieldBold:            "Bold",
	FieldItalic:          "Italic",
	FieldFill:            "Fill",
	FieldStroke:          "Stroke",
	FieldStrokeThickness: "StrokeThickness",
	FieldMaxTextWidth:    "MaxTextWidth",
	FieldMaxTextHeight:   "MaxTextHeight",
}

// String returns the field name.
func (f Field) String() string {
	if f >= 0 && f < fieldCount {
		return fieldNames[f]
	}
	return "Unknown"
}

// Fields returns every style field in declaration order.
func Fields() []Field {
	fields := make([]Field, fieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// ParseField returns the field with the given name, matched
// case-insensitively.
func ParseField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Field(i), true
		}
	}
	return 0, false
}

// Value returns the current value of field f.
func (s Style) Value(f Field) any {
	switch f {
	case FieldText:
		return s.Text
	case FieldFontFamily:
		return s.FontFamily
	case FieldFontSize:
		return s.FontSize
	case FieldBold:
		return s.Bold
	case FieldItalic:
		return s.Italic
	case FieldFill:
		return s.Fill
	case FieldStroke:
		return s.Stroke
	case FieldStrokeThickness:
		return s.StrokeThickness
	case FieldMaxTextWidth:
		return s.MaxTextWidth
	case FieldMaxTextHeight:
		return s.MaxTextHeight
	}
	return nil
}

// with returns a copy of s with field f set to v, which must already be
// normalized by normalize.
func (s Style) with(f Field, v any) Style {
	switch f {
	case FieldText:
		s.Text = v.(string)
	case FieldFontFamily:
		s.FontFamily = v.(string)
	case FieldFontSize:
		s.FontSize = v.(float64)
	case FieldBold:
		s.Bold = v.(bool)
	case FieldItalic:
		s.Italic = v.(bool)
	case FieldFill:
		s.Fill = v.(Brush)
	case FieldStroke:
		s.Stroke = v.(Brush)
	case FieldStrokeThickness:
		s.StrokeThickness = v.(uint16)
	case FieldMaxTextWidth:
		s.MaxTextWidth = v.(float64)
	case FieldMaxTextHeight:
		s.MaxTextHeight = v.(float64)
	}
	return s
}

// normalize validates v for field f and converts it to the field's type.
// Numeric fields accept any Go numeric kind; brush fields also accept a
// bare RGBA, painted as a solid brush.
func normalize(f Field, v any) (any, error) {
	invalid := func(reason string) error {
		return &InvalidStyleError{Field: f, Value: v, Reason: reason}
	}

	switch f {
	case FieldText:
		s, ok := v.(string)
		if !ok {
			return nil, invalid("not a string")
		}
		return s, nil

	case FieldFontFamily:
		s, ok := v.(string)
		if !ok {
			return nil, invalid("not a string")
		}
		if strings.TrimSpace(s) == "" {
			return nil, invalid("empty family name")
		}
		return s, nil

	case FieldFontSize:
		x, ok := toFloat(v)
		if !ok {
			return nil, invalid("not a number")
		}
		if !(x > 0) || math.IsInf(x, 0) {
			return nil, invalid("must be positive and finite")
		}
		return x, nil

	case FieldBold, FieldItalic:
		b, ok := v.(bool)
		if !ok {
			return nil, invalid("not a bool")
		}
		return b, nil

	case FieldFill, FieldStroke:
		switch b := v.(type) {
		case Brush:
			return b, nil
		case RGBA:
			return Brush(Solid(b)), nil
		case nil:
			return nil, invalid("nil brush")
		}
		return nil, invalid("not a brush")

	case FieldStrokeThickness:
		x, ok := toFloat(v)
		if !ok {
			return nil, invalid("not a number")
		}
		if x < 0 || x > math.MaxUint16 || x != math.Trunc(x) {
			return nil, invalid("must be a whole number in [0, 65535]")
		}
		return uint16(x), nil

	case FieldMaxTextWidth, FieldMaxTextHeight:
		x, ok := toFloat(v)
		if !ok {
			return nil, invalid("not a number")
		}
		if !(x > 0) {
			return nil, invalid("must be positive")
		}
		return x, nil
	}
	return nil, invalid("unknown field")
}

// toFloat converts any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}
