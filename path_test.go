package outlined

import (
	"math"
	"testing"
)

func TestPathBuild(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(10, 10, 0, 10)
	p.Close()
	p.MoveTo(20, 20)
	p.CubicTo(25, 15, 30, 25, 35, 20)

	if p.Len() != 6 {
		t.Errorf("Len() = %d, want 6", p.Len())
	}
	if p.Contours() != 2 {
		t.Errorf("Contours() = %d, want 2", p.Contours())
	}
	if got := p.CurrentPoint(); got != Pt(35, 20) {
		t.Errorf("CurrentPoint() = %v, want (35, 20)", got)
	}

	want := Rect{Min: Pt(0, 0), Max: Pt(35, 25)}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPathNil(t *testing.T) {
	var p *Path
	if !p.IsEmpty() || p.Len() != 0 || p.Contours() != 0 {
		t.Error("nil path should be empty")
	}
	if p.Clone() != nil {
		t.Error("Clone() of nil path should be nil")
	}
	if !NewPath().Bounds().Empty() {
		t.Error("Bounds() of empty path should be empty")
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)

	c := p.Clone()
	c.LineTo(3, 3)
	if p.Len() != 2 || c.Len() != 3 {
		t.Errorf("Len() = %d and %d, want 2 and 3", p.Len(), c.Len())
	}
}

func TestPathAppendAndTransform(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(1, 0)
	b := NewPath()
	b.MoveTo(5, 5)
	b.LineTo(6, 5)
	b.Close()

	a.Append(b)
	if a.Contours() != 2 || a.CurrentPoint() != Pt(5, 5) {
		t.Errorf("after Append: %d contours, current %v", a.Contours(), a.CurrentPoint())
	}

	moved := a.Transform(Translate(10, 20).Multiply(Scale(2, 2)))
	want := Rect{Min: Pt(10, 20), Max: Pt(22, 30)}
	if got := moved.Bounds(); got != want {
		t.Errorf("transformed Bounds() = %v, want %v", got, want)
	}
	if a.Bounds().Max != Pt(6, 5) {
		t.Error("Transform() modified the source path")
	}
}

func TestMatrix(t *testing.T) {
	m := Translate(3, 4).Multiply(Scale(2, 0.5))
	if got := m.TransformPoint(Pt(1, 2)); got != Pt(5, 5) {
		t.Errorf("TransformPoint() = %v, want (5, 5)", got)
	}
	if got := m.ScaleFactor(); got != 1 {
		t.Errorf("ScaleFactor() = %v, want 1", got)
	}

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular")
	}
	if got := inv.TransformPoint(Pt(5, 5)); math.Abs(got.X-1) > 1e-12 || math.Abs(got.Y-2) > 1e-12 {
		t.Errorf("inverse TransformPoint() = %v, want (1, 2)", got)
	}
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() of a singular matrix succeeded")
	}
	if !Identity().IsIdentity() || m.IsIdentity() {
		t.Error("IsIdentity() mismatch")
	}

	sheared := Shear(0.5, 0).TransformPoint(Pt(0, 2))
	if sheared != Pt(1, 2) {
		t.Errorf("Shear TransformPoint() = %v, want (1, 2)", sheared)
	}
}
