package outlined

import (
	"errors"
	"testing"
)

func TestFieldNames(t *testing.T) {
	fields := Fields()
	if len(fields) != 10 {
		t.Fatalf("Fields() has %d entries, want 10", len(fields))
	}
	for _, f := range fields {
		got, ok := ParseField(f.String())
		if !ok || got != f {
			t.Errorf("ParseField(%q) = %v, %v; want %v", f.String(), got, ok, f)
		}
	}
	if f, ok := ParseField(" fontsize "); !ok || f != FieldFontSize {
		t.Errorf("ParseField(fontsize) = %v, %v; want FontSize", f, ok)
	}
	if _, ok := ParseField("Color"); ok {
		t.Error("ParseField(Color) succeeded")
	}
	if got := Field(-1).String(); got != "Unknown" {
		t.Errorf("Field(-1).String() = %q, want Unknown", got)
	}
}

func TestNormalizeConversions(t *testing.T) {
	tests := []struct {
		field Field
		in    any
		want  any
	}{
		{FieldFontSize, 12, 12.0},
		{FieldFontSize, int8(7), 7.0},
		{FieldFontSize, uint64(30), 30.0},
		{FieldFontSize, float32(10.5), 10.5},
		{FieldStrokeThickness, 3, uint16(3)},
		{FieldStrokeThickness, 4.0, uint16(4)},
		{FieldStrokeThickness, uint16(65535), uint16(65535)},
		{FieldMaxTextWidth, int32(640), 640.0},
		{FieldFill, Teal, Brush(Solid(Teal))},
		{FieldStroke, Solid(Black), Brush(Solid(Black))},
		{FieldText, "", ""},
	}
	for _, tt := range tests {
		got, err := normalize(tt.field, tt.in)
		if err != nil {
			t.Errorf("normalize(%s, %v) error = %v", tt.field, tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalize(%s, %v) = %#v, want %#v", tt.field, tt.in, got, tt.want)
		}
	}
}

func TestStyleValueAndWith(t *testing.T) {
	s := DefaultStyle()
	for _, f := range Fields() {
		if got := s.with(f, s.Value(f)); got != s {
			t.Errorf("with(%s, Value(%s)) changed the style", f, f)
		}
	}
	if s.Value(Field(42)) != nil {
		t.Error("Value() of an unknown field should be nil")
	}

	changed := s.with(FieldItalic, true)
	if !changed.Italic || s.Italic {
		t.Error("with() should return a modified copy")
	}
}

func TestInvalidStyleErrorMessage(t *testing.T) {
	_, err := normalize(FieldFontSize, -5)
	var ise *InvalidStyleError
	if !errors.As(err, &ise) {
		t.Fatalf("normalize() error = %v, want *InvalidStyleError", err)
	}
	want := "outlined: invalid FontSize -5: must be positive and finite"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEquality(t *testing.T) {
	tests := []struct {
		e    Equality
		a, b any
		want bool
	}{
		{EqualityValue, 1.0, 1.0, true},
		{EqualityValue, Brush(Solid(Teal)), Brush(SolidHex("#008080")), true},
		{EqualityValue, Brush(Solid(Teal)), Brush(LinearGradient(Pt(0, 0), Pt(1, 1), Teal, Teal)), false},
		{EqualityString, 48.0, 48.0, true},
		{EqualityString, "a", "b", false},
		{EqualityString, Brush(Solid(Teal)), Brush(Solid(Teal.WithAlpha(0.999))), true},
	}
	for _, tt := range tests {
		if got := tt.e.equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s.equal(%v, %v) = %v, want %v", tt.e, tt.a, tt.b, got, tt.want)
		}
	}
	if EqualityValue.String() != "Value" || EqualityString.String() != "String" || Equality(7).String() != "Unknown" {
		t.Error("Equality.String() mismatch")
	}
}
