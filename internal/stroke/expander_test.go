package stroke

import (
	"math"
	"testing"
)

// covered reports whether p lies inside any polygon.
func covered(polys []Polygon, p Point) bool {
	for _, poly := range polys {
		inside := false
		for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
			a, b := poly[i], poly[j]
			if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}
		}
		if inside {
			return true
		}
	}
	return false
}

func square() []PathElement {
	return []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		LineTo{Point: Point{X: 0, Y: 10}},
		Close{},
	}
}

func TestNewExpander(t *testing.T) {
	e := NewExpander(Style{Width: 2})
	if e.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.tolerance)
	}
	if e.style.MiterLimit != 1 {
		t.Errorf("MiterLimit = %v, want clamped to 1", e.style.MiterLimit)
	}

	e.SetTolerance(-1)
	if e.tolerance != 0.1 {
		t.Error("negative tolerance should be ignored")
	}
	e.SetTolerance(0.5)
	if e.tolerance != 0.5 {
		t.Errorf("tolerance = %v, want 0.5", e.tolerance)
	}
}

func TestExpandClosedSquare(t *testing.T) {
	tests := []struct {
		name   string
		join   LineJoin
		corner bool // whether the outer corner point (-0.9, -0.9) is covered
	}{
		{"miter", LineJoinMiter, true},
		{"bevel", LineJoinBevel, false},
		{"round", LineJoinRound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{Width: 2, Join: tt.join, MiterLimit: 10})
			polys := e.Expand(square())
			if len(polys) == 0 {
				t.Fatal("Expand() returned no polygons")
			}

			for _, p := range []Point{{5, 0}, {5, -0.9}, {5, 0.9}, {10.9, 5}, {0.5, 0.5}} {
				if !covered(polys, p) {
					t.Errorf("point %v on the stroke is not covered", p)
				}
			}
			for _, p := range []Point{{5, 5}, {5, -1.5}, {5, 1.5}} {
				if covered(polys, p) {
					t.Errorf("point %v off the stroke is covered", p)
				}
			}
			if got := covered(polys, Point{X: -0.9, Y: -0.9}); got != tt.corner {
				t.Errorf("outer corner covered = %v, want %v", got, tt.corner)
			}
		})
	}
}

func TestExpandOrientation(t *testing.T) {
	e := NewExpander(Style{Width: 3, Join: LineJoinRound, Cap: LineCapRound})
	// Clockwise and counter-clockwise inputs must both yield positive polygons.
	ccw := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 0, Y: 10}},
		LineTo{Point: Point{X: 10, Y: 10}},
		Close{},
	}
	for _, path := range [][]PathElement{square(), ccw} {
		for i, p := range e.Expand(path) {
			if p.SignedArea() <= 0 {
				t.Errorf("polygon %d has signed area %v, want > 0", i, p.SignedArea())
			}
		}
	}
}

func TestExpandCaps(t *testing.T) {
	line := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
	}
	tests := []struct {
		name string
		cap  LineCap
		want bool // whether (-0.5, 0) beyond the start is covered
	}{
		{"butt", LineCapButt, false},
		{"round", LineCapRound, true},
		{"square", LineCapSquare, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys := NewExpander(Style{Width: 2, Cap: tt.cap}).Expand(line)
			if got := covered(polys, Point{X: -0.5, Y: 0}); got != tt.want {
				t.Errorf("start cap coverage = %v, want %v", got, tt.want)
			}
			if got := covered(polys, Point{X: 10.5, Y: 0}); got != tt.want {
				t.Errorf("end cap coverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandZeroWidth(t *testing.T) {
	if polys := NewExpander(Style{Width: 0}).Expand(square()); polys != nil {
		t.Errorf("Expand() with zero width = %d polygons, want none", len(polys))
	}
	if polys := NewExpander(Style{Width: math.NaN()}).Expand(square()); polys != nil {
		t.Errorf("Expand() with NaN width = %d polygons, want none", len(polys))
	}
}

func TestFlatten(t *testing.T) {
	path := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 50, Y: 100}, Point: Point{X: 100, Y: 0}},
		Close{},
		MoveTo{Point: Point{X: 200, Y: 0}}, // bare MoveTo: not a contour
		MoveTo{Point: Point{X: 0, Y: 0}},
		CubicTo{Control1: Point{X: 0, Y: 50}, Control2: Point{X: 100, Y: 50}, Point: Point{X: 100, Y: 0}},
	}
	contours := Flatten(path, 0.1)
	if len(contours) != 2 {
		t.Fatalf("Flatten() = %d contours, want 2", len(contours))
	}
	if !contours[0].Closed || contours[1].Closed {
		t.Errorf("Closed flags = %v, %v; want true, false", contours[0].Closed, contours[1].Closed)
	}
	for i, c := range contours {
		if len(c.Points) < 8 {
			t.Errorf("contour %d has %d points, want the curve subdivided", i, len(c.Points))
		}
	}

	// The quad apex is at y = 50; the flattened polyline must get close.
	maxY := 0.0
	for _, p := range contours[0].Points {
		maxY = math.Max(maxY, p.Y)
	}
	if math.Abs(maxY-50) > 0.2 {
		t.Errorf("flattened quad peak = %v, want ~50", maxY)
	}
}
