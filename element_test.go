package outlined

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/outlined/text"
)

// stubLayouter counts layout calls and returns a box per rune.
type stubLayouter struct {
	requests []LayoutRequest
	fail     error
}

func (p *stubLayouter) Layout(req LayoutRequest) (LayoutResult, error) {
	p.requests = append(p.requests, req)
	if p.fail != nil {
		return LayoutResult{}, p.fail
	}
	g := NewPath()
	advance := req.FontSize / 2
	n := 0
	for range req.Text {
		x := float64(n) * advance
		g.MoveTo(x, 0)
		g.LineTo(x+advance, 0)
		g.LineTo(x+advance, req.FontSize)
		g.Close()
		n++
	}
	return LayoutResult{
		Geometry: g,
		Width:    float64(n) * advance,
		Height:   req.FontSize * req.LineSpacing,
	}, nil
}

func (p *stubLayouter) calls() int { return len(p.requests) }

func (p *stubLayouter) last() LayoutRequest { return p.requests[len(p.requests)-1] }

// stubHost records host notifications.
type stubHost struct {
	redraws      int
	measurements [][2]float64
}

func (h *stubHost) RequestRedraw() { h.redraws++ }

func (h *stubHost) ReportMeasurement(w, hgt float64) {
	h.measurements = append(h.measurements, [2]float64{w, hgt})
}

// drawCall is one DrawGeometry call seen by stubSurface.
type drawCall struct {
	fill     Brush
	pen      Pen
	geometry *Path
}

type stubSurface struct {
	calls []drawCall
}

func (s *stubSurface) DrawGeometry(fill Brush, pen Pen, geometry *Path) error {
	s.calls = append(s.calls, drawCall{fill, pen, geometry})
	return nil
}

func newStub(opts ...Option) (*OutlinedText, *stubLayouter, *stubHost) {
	l := &stubLayouter{}
	h := &stubHost{}
	el := New(append([]Option{WithLayouter(l), WithHost(h)}, opts...)...)
	return el, l, h
}

func TestNewDefaults(t *testing.T) {
	el, l, _ := newStub()

	s := el.Style()
	if s != DefaultStyle() {
		t.Errorf("Style() = %+v, want defaults", s)
	}
	if s.Text != "" || s.FontFamily != "Arial" || s.FontSize != 48 || s.StrokeThickness != 0 {
		t.Errorf("unexpected defaults %+v", s)
	}
	if s.Fill != Brush(Solid(LightSteelBlue)) || s.Stroke != Brush(Solid(Teal)) {
		t.Errorf("brushes = %v, %v; want LightSteelBlue, Teal", s.Fill, s.Stroke)
	}
	if s.MaxTextWidth != 1000 || s.MaxTextHeight != 1000 {
		t.Errorf("max size = %vx%v, want 1000x1000", s.MaxTextWidth, s.MaxTextHeight)
	}
	if el.Ready() || el.Geometry() != nil {
		t.Error("new element should have no geometry")
	}
	if l.calls() != 0 {
		t.Errorf("New() made %d layout calls, want 0", l.calls())
	}
}

func TestSetTextScenario(t *testing.T) {
	el, l, h := newStub()

	if err := el.Set(FieldText, "Hi"); err != nil {
		t.Fatalf("Set(Text) error = %v", err)
	}
	if l.calls() != 1 {
		t.Fatalf("layout calls = %d, want 1", l.calls())
	}

	req := l.last()
	want := LayoutRequest{
		Text:        "Hi",
		FontFamily:  "Arial",
		FontSize:    48,
		Weight:      text.WeightMedium,
		Style:       text.StyleNormal,
		Direction:   text.DirectionLTR,
		Locale:      "en-us",
		Foreground:  Solid(Black),
		LineSpacing: 1.25,
		MaxWidth:    1000,
		MaxHeight:   1000,
	}
	if req != want {
		t.Errorf("request = %+v, want %+v", req, want)
	}

	// Reported size equals the measured layout size.
	if el.MinWidth() != 48 || el.MinHeight() != 60 {
		t.Errorf("MinWidth/MinHeight = %v/%v, want 48/60", el.MinWidth(), el.MinHeight())
	}
	if len(h.measurements) != 1 || h.measurements[0] != [2]float64{48, 60} {
		t.Errorf("ReportMeasurement calls = %v, want [[48 60]]", h.measurements)
	}
	if h.redraws != 1 {
		t.Errorf("RequestRedraw calls = %d, want 1", h.redraws)
	}
	if !el.Ready() || el.Geometry().Contours() != 2 {
		t.Errorf("geometry has %d contours, want 2", el.Geometry().Contours())
	}
}

func TestMeasurementRoundTrip(t *testing.T) {
	el, l, h := newStub()

	steps := []struct {
		field Field
		value any
	}{
		{FieldText, "Hello"},
		{FieldFontSize, 20.0},
		{FieldBold, true},
		{FieldMaxTextWidth, 300.0},
		{FieldText, "Hello, world"},
	}
	for _, s := range steps {
		if err := el.Set(s.field, s.value); err != nil {
			t.Fatalf("Set(%s) error = %v", s.field, err)
		}
		res, err := l.Layout(l.last())
		if err != nil {
			t.Fatal(err)
		}
		if el.MinWidth() != res.Width || el.MinHeight() != res.Height {
			t.Errorf("after Set(%s): size %vx%v, want %vx%v", s.field, el.MinWidth(), el.MinHeight(), res.Width, res.Height)
		}
		got := h.measurements[len(h.measurements)-1]
		if got != [2]float64{res.Width, res.Height} {
			t.Errorf("after Set(%s): reported %v, want %vx%v", s.field, got, res.Width, res.Height)
		}
	}
}

func TestSetSameValueIsNoop(t *testing.T) {
	el, l, h := newStub()

	tests := []struct {
		field Field
		value any
	}{
		{FieldText, ""},
		{FieldFontFamily, "Arial"},
		{FieldFontSize, 48.0},
		{FieldFontSize, 48}, // int converts to the same float64
		{FieldBold, false},
		{FieldItalic, false},
		{FieldFill, Solid(LightSteelBlue)},
		{FieldStroke, Teal},
		{FieldStrokeThickness, 0},
		{FieldMaxTextWidth, 1000.0},
		{FieldMaxTextHeight, float32(1000)},
	}
	for _, tt := range tests {
		if err := el.Set(tt.field, tt.value); err != nil {
			t.Errorf("Set(%s, %v) error = %v", tt.field, tt.value, err)
		}
	}
	if l.calls() != 0 || h.redraws != 0 {
		t.Errorf("unchanged values caused %d layouts and %d redraws, want 0", l.calls(), h.redraws)
	}
}

func TestSetTextEmptyToA(t *testing.T) {
	el, l, _ := newStub()

	if err := el.SetText(""); err != nil {
		t.Fatal(err)
	}
	if l.calls() != 0 {
		t.Fatalf(`Set(Text, "") made %d layout calls, want 0`, l.calls())
	}
	if err := el.SetText("A"); err != nil {
		t.Fatal(err)
	}
	if l.calls() != 1 {
		t.Errorf(`Set(Text, "A") made %d layout calls, want 1`, l.calls())
	}
	if err := el.SetText("A"); err != nil {
		t.Fatal(err)
	}
	if l.calls() != 1 {
		t.Errorf(`repeated Set(Text, "A") made %d layout calls, want 1`, l.calls())
	}
}

func TestAddChildTextMatchesSetText(t *testing.T) {
	a, _, _ := newStub()
	b, _, _ := newStub()

	if err := a.AddChildText("Hello"); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(FieldText, "Hello"); err != nil {
		t.Fatal(err)
	}

	if a.Style() != b.Style() {
		t.Errorf("styles differ: %+v vs %+v", a.Style(), b.Style())
	}
	if a.MinWidth() != b.MinWidth() || a.MinHeight() != b.MinHeight() {
		t.Errorf("measurements differ: %vx%v vs %vx%v", a.MinWidth(), a.MinHeight(), b.MinWidth(), b.MinHeight())
	}
	ga, gb := a.Geometry().Elements(), b.Geometry().Elements()
	if len(ga) != len(gb) {
		t.Fatalf("geometry lengths differ: %d vs %d", len(ga), len(gb))
	}
	for i := range ga {
		if ga[i] != gb[i] {
			t.Errorf("element %d differs: %v vs %v", i, ga[i], gb[i])
		}
	}
}

func TestAddChild(t *testing.T) {
	el, _, _ := newStub()

	if err := el.AddChild("text"); err != nil {
		t.Errorf("AddChild(string) error = %v", err)
	}
	if err := el.AddChild(FieldBold); err != nil {
		t.Errorf("AddChild(Stringer) error = %v", err)
	}
	if got := el.Style().Text; got != "Bold" {
		t.Errorf("Text = %q, want %q", got, "Bold")
	}
	if err := el.AddChild(42); !errors.Is(err, ErrUnsupportedChild) {
		t.Errorf("AddChild(42) error = %v, want ErrUnsupportedChild", err)
	}
}

func TestBoldThenItalic(t *testing.T) {
	el, l, _ := newStub()

	if err := el.Set(FieldBold, true); err != nil {
		t.Fatal(err)
	}
	if got := l.last(); got.Weight != text.WeightBold || got.Style != text.StyleNormal {
		t.Errorf("first request = %s %s, want Bold Normal", got.Weight, got.Style)
	}
	if err := el.Set(FieldItalic, true); err != nil {
		t.Fatal(err)
	}
	if l.calls() != 2 {
		t.Fatalf("layout calls = %d, want 2", l.calls())
	}
	if got := l.last(); got.Weight != text.WeightBold || got.Style != text.StyleItalic {
		t.Errorf("second request = %s %s, want Bold Italic", got.Weight, got.Style)
	}
}

func TestSetInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value any
	}{
		{"negative size", FieldFontSize, -5},
		{"zero size", FieldFontSize, 0.0},
		{"NaN size", FieldFontSize, math.NaN()},
		{"infinite size", FieldFontSize, math.Inf(1)},
		{"string size", FieldFontSize, "12"},
		{"empty family", FieldFontFamily, "  "},
		{"family type", FieldFontFamily, 3},
		{"text type", FieldText, []byte("x")},
		{"bold type", FieldBold, 1},
		{"nil fill", FieldFill, nil},
		{"fill type", FieldFill, "red"},
		{"negative thickness", FieldStrokeThickness, -1},
		{"fractional thickness", FieldStrokeThickness, 1.5},
		{"huge thickness", FieldStrokeThickness, 70000},
		{"negative width", FieldMaxTextWidth, -1.0},
		{"zero height", FieldMaxTextHeight, 0},
		{"NaN height", FieldMaxTextHeight, math.NaN()},
		{"unknown field", Field(99), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, l, h := newStub()
			before := el.Style()

			err := el.Set(tt.field, tt.value)
			if !errors.Is(err, ErrInvalidStyleValue) {
				t.Fatalf("Set(%s, %v) error = %v, want ErrInvalidStyleValue", tt.field, tt.value, err)
			}
			var ise *InvalidStyleError
			if !errors.As(err, &ise) || ise.Field != tt.field {
				t.Errorf("error = %#v, want *InvalidStyleError for %s", err, tt.field)
			}
			if el.Style() != before {
				t.Errorf("style changed to %+v", el.Style())
			}
			if l.calls() != 0 || h.redraws != 0 {
				t.Errorf("rejected value caused %d layouts, %d redraws", l.calls(), h.redraws)
			}
		})
	}
}

func TestSetFontSizeNegativeKeepsValue(t *testing.T) {
	el, l, _ := newStub()
	if err := el.SetFontSize(20); err != nil {
		t.Fatal(err)
	}

	if err := el.Set(FieldFontSize, -5); !errors.Is(err, ErrInvalidStyleValue) {
		t.Fatalf("Set(FontSize, -5) error = %v, want ErrInvalidStyleValue", err)
	}
	if got := el.Style().FontSize; got != 20 {
		t.Errorf("FontSize = %v, want 20", got)
	}
	if l.calls() != 1 {
		t.Errorf("layout calls = %d, want 1", l.calls())
	}
}

func TestSetAcceptsInfiniteBounds(t *testing.T) {
	el, l, _ := newStub()
	if err := el.SetMaxTextWidth(math.Inf(1)); err != nil {
		t.Fatalf("SetMaxTextWidth(+Inf) error = %v", err)
	}
	if got := l.last().MaxWidth; !math.IsInf(got, 1) {
		t.Errorf("MaxWidth = %v, want +Inf", got)
	}
}

func TestLayoutFailureIsTransactional(t *testing.T) {
	el, l, h := newStub()
	if err := el.SetText("ok"); err != nil {
		t.Fatal(err)
	}
	geometry := el.Geometry()
	width, height := el.MinWidth(), el.MinHeight()

	l.fail = text.ErrFontNotFound
	err := el.SetFontFamily("Missing")
	if !errors.Is(err, ErrLayoutFailure) {
		t.Fatalf("SetFontFamily() error = %v, want ErrLayoutFailure", err)
	}
	if !errors.Is(err, text.ErrFontNotFound) {
		t.Errorf("error %v does not wrap the layout error", err)
	}
	var le *LayoutError
	if !errors.As(err, &le) || le.Style.FontFamily != "Missing" {
		t.Errorf("error = %#v, want *LayoutError for the candidate style", err)
	}

	if got := el.Style().FontFamily; got != "Arial" {
		t.Errorf("FontFamily = %q, want the previous value", got)
	}
	if el.Geometry() != geometry || el.MinWidth() != width || el.MinHeight() != height {
		t.Error("failed layout replaced the cached outline")
	}
	if h.redraws != 1 || len(h.measurements) != 1 {
		t.Errorf("failed layout notified host: %d redraws, %d measurements", h.redraws, len(h.measurements))
	}

	// Setting the same failing value again retries the layout.
	if err := el.SetFontFamily("Missing"); !errors.Is(err, ErrLayoutFailure) {
		t.Errorf("retry error = %v, want ErrLayoutFailure", err)
	}
	if l.calls() != 3 {
		t.Errorf("layout calls = %d, want 3", l.calls())
	}
}

func TestPaint(t *testing.T) {
	el, l, h := newStub()
	if err := el.SetStrokeThickness(3); err != nil {
		t.Fatal(err)
	}
	if err := el.SetText("ab"); err != nil {
		t.Fatal(err)
	}
	calls, redraws := l.calls(), h.redraws

	s := &stubSurface{}
	if err := el.Paint(s); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if err := el.Paint(s); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	if len(s.calls) != 2 {
		t.Fatalf("DrawGeometry calls = %d, want 2", len(s.calls))
	}
	first := s.calls[0]
	if first.fill != Brush(Solid(LightSteelBlue)) {
		t.Errorf("fill = %v, want LightSteelBlue", first.fill)
	}
	if first.pen.Brush != Brush(Solid(Teal)) || first.pen.Width != 3 {
		t.Errorf("pen = %+v, want Teal width 3", first.pen)
	}
	if first.geometry != el.Geometry() {
		t.Error("Paint did not draw the cached outline")
	}
	if s.calls[1] != first {
		t.Errorf("second paint %+v differs from first %+v", s.calls[1], first)
	}
	if l.calls() != calls || h.redraws != redraws {
		t.Error("Paint regenerated or requested a redraw")
	}
}

func TestPaintRegeneratesLazily(t *testing.T) {
	el, l, h := newStub(WithStyle(Style{Text: "lazy", FontFamily: "Go", FontSize: 10, MaxTextWidth: 100, MaxTextHeight: 100}))
	s := &stubSurface{}

	if err := el.Paint(s); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if l.calls() != 1 || len(s.calls) != 1 {
		t.Fatalf("layout calls = %d, draw calls = %d; want 1, 1", l.calls(), len(s.calls))
	}
	if !el.Ready() {
		t.Error("Ready() = false after first paint")
	}
	if h.redraws != 0 {
		t.Errorf("lazy regeneration requested %d redraws, want 0", h.redraws)
	}
	if len(h.measurements) != 1 {
		t.Errorf("lazy regeneration reported %d measurements, want 1", len(h.measurements))
	}

	if err := el.Paint(s); err != nil {
		t.Fatal(err)
	}
	if l.calls() != 1 {
		t.Errorf("second paint made a layout call")
	}
}

func TestPaintErrors(t *testing.T) {
	el, l, _ := newStub()
	if err := el.Paint(nil); !errors.Is(err, ErrNilSurface) {
		t.Errorf("Paint(nil) error = %v, want ErrNilSurface", err)
	}

	l.fail = errors.New("no fonts")
	s := &stubSurface{}
	if err := el.Paint(s); !errors.Is(err, ErrLayoutFailure) {
		t.Errorf("Paint() error = %v, want ErrLayoutFailure", err)
	}
	if len(s.calls) != 0 || el.Ready() {
		t.Error("failed lazy layout should not draw")
	}
}

func TestWithStyleKeepsDefaultsForInvalidFields(t *testing.T) {
	el, _, _ := newStub(WithStyle(Style{Text: "x", FontSize: -1, Bold: true, MaxTextWidth: 50}))

	s := el.Style()
	if s.Text != "x" || !s.Bold || s.MaxTextWidth != 50 {
		t.Errorf("valid fields not applied: %+v", s)
	}
	if s.FontSize != 48 || s.FontFamily != "Arial" || s.MaxTextHeight != 1000 {
		t.Errorf("invalid fields not defaulted: %+v", s)
	}
	if s.Fill == nil || s.Stroke == nil {
		t.Errorf("nil brushes not defaulted: %+v", s)
	}
}

func TestEqualityString(t *testing.T) {
	tests := []struct {
		name     string
		equality Equality
		field    Field
		value    any
		wantCall bool
	}{
		{"value: equal color brush", EqualityValue, FieldFill, Solid(LightSteelBlue), false},
		{"value: gradient of same color", EqualityValue, FieldFill, LinearGradient(Pt(0, 0), Pt(1, 0), LightSteelBlue, LightSteelBlue), true},
		{"string: hex brush", EqualityString, FieldFill, SolidHex("#B0C4DE"), false},
		{"string: size", EqualityString, FieldFontSize, float32(48), false},
		{"string: different size", EqualityString, FieldFontSize, 48.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, l, _ := newStub(WithEquality(tt.equality))
			if err := el.Set(tt.field, tt.value); err != nil {
				t.Fatal(err)
			}
			if got := l.calls() == 1; got != tt.wantCall {
				t.Errorf("regenerated = %v, want %v", got, tt.wantCall)
			}
		})
	}
}

func TestTypedSetters(t *testing.T) {
	el, l, _ := newStub()

	grad := LinearGradient(Pt(0, 0), Pt(10, 0), Black, White)
	for _, err := range []error{
		el.SetText("abc"),
		el.SetFontFamily("Go"),
		el.SetFontSize(12),
		el.SetBold(true),
		el.SetItalic(true),
		el.SetFill(grad),
		el.SetStroke(Solid(Black)),
		el.SetStrokeThickness(2),
		el.SetMaxTextWidth(200),
		el.SetMaxTextHeight(100),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	if l.calls() != 10 {
		t.Errorf("layout calls = %d, want 10", l.calls())
	}

	want := Style{
		Text: "abc", FontFamily: "Go", FontSize: 12, Bold: true, Italic: true,
		Fill: grad, Stroke: Solid(Black), StrokeThickness: 2,
		MaxTextWidth: 200, MaxTextHeight: 100,
	}
	if el.Style() != want {
		t.Errorf("Style() = %+v, want %+v", el.Style(), want)
	}
	if err := el.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if l.calls() != 11 {
		t.Errorf("Regenerate() did not lay out again")
	}
}

func TestElementWithTextLayouter(t *testing.T) {
	reg := text.NewRegistry()
	if err := reg.RegisterGoFonts(); err != nil {
		t.Fatal(err)
	}
	layouter := NewTextLayouter(text.NewEngine(text.WithRegistry(reg)))
	h := &stubHost{}
	el := New(WithLayouter(layouter), WithHost(h))

	if err := el.SetFontFamily(text.GoFamily); err != nil {
		t.Fatalf("SetFontFamily() error = %v", err)
	}
	if err := el.SetText("Ho"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}
	if el.MinWidth() <= 0 || el.MinHeight() <= 0 {
		t.Errorf("measurement = %vx%v, want positive", el.MinWidth(), el.MinHeight())
	}
	if got := el.Geometry().Contours(); got != 3 {
		t.Errorf("Contours() = %d, want 3", got)
	}

	b := el.Geometry().Bounds()
	if b.Min.X < -1 || b.Min.Y < 0 || b.Max.Y > el.MinHeight() {
		t.Errorf("geometry bounds %+v not anchored in the %vx%v layout box", b, el.MinWidth(), el.MinHeight())
	}

	if err := el.SetFontFamily("No Such Family"); !errors.Is(err, text.ErrFontNotFound) {
		t.Errorf("SetFontFamily(unknown) error = %v, want ErrFontNotFound", err)
	}
}
