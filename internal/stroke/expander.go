package stroke

import (
	"math"
	"slices"
)

// LineCap specifies the shape of open contour ends.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Style defines the pen for stroke expansion.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// Contour is a flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// maxFlattenDepth bounds curve subdivision for degenerate input.
const maxFlattenDepth = 16

// Flatten converts path elements to polylines, approximating curves
// within tolerance.
func Flatten(elements []PathElement, tolerance float64) []Contour {
	var (
		contours []Contour
		cur      Contour
		start    Point
		last     Point
		drawn    bool
	)
	finish := func() {
		// A MoveTo with no drawing after it is not a contour.
		if drawn && len(cur.Points) > 0 {
			if cur.Closed && len(cur.Points) > 1 && cur.Points[0] == cur.Points[len(cur.Points)-1] {
				cur.Points = cur.Points[:len(cur.Points)-1]
			}
			contours = append(contours, cur)
		}
		cur = Contour{}
		drawn = false
	}
	add := func(p Point) {
		drawn = true
		if len(cur.Points) == 0 {
			cur.Points = append(cur.Points, last)
		}
		if p != cur.Points[len(cur.Points)-1] {
			cur.Points = append(cur.Points, p)
		}
		last = p
	}

	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			finish()
			start, last = e.Point, e.Point
			cur.Points = append(cur.Points, e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			p0 := last
			flattenQuadRec(p0, e.Control, e.Point, tolerance, 0, add)
		case CubicTo:
			p0 := last
			flattenCubicRec(p0, e.Control1, e.Control2, e.Point, tolerance, 0, add)
		case Close:
			if len(cur.Points) > 0 {
				cur.Closed = true
			}
			finish()
			last = start
		}
	}
	finish()
	return contours
}

func flattenQuadRec(p0, p1, p2 Point, tol float64, depth int, emit func(Point)) {
	if depth >= maxFlattenDepth || distanceToLine(p1, p0, p2) < tol {
		emit(p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadRec(p0, q0, q2, tol, depth+1, emit)
	flattenQuadRec(q2, q1, p2, tol, depth+1, emit)
}

func flattenCubicRec(p0, p1, p2, p3 Point, tol float64, depth int, emit func(Point)) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || d < tol {
		emit(p3)
		return
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tol, depth+1, emit)
	flattenCubicRec(s, r1, q2, p3, tol, depth+1, emit)
}

// Expander converts stroked paths to filled polygons.
// An Expander is not safe for concurrent use; it is cheap to create.
type Expander struct {
	style Style

	// Tolerance for curve flattening and arc approximation.
	// Smaller values produce more accurate results but more segments.
	tolerance float64

	out []Polygon
}

// NewExpander creates an expander for style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	return &Expander{
		style:     style,
		tolerance: 0.1,
	}
}

// SetTolerance sets the curve flattening tolerance.
// Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the polygons covering the stroke of elements.
// Every polygon has positive signed area.
func (e *Expander) Expand(elements []PathElement) []Polygon {
	e.out = nil
	if !(e.style.Width > 0) {
		return nil
	}
	for _, c := range Flatten(elements, e.tolerance) {
		e.strokeContour(c)
	}
	return e.out
}

func (e *Expander) strokeContour(c Contour) {
	hw := e.style.Width / 2
	pts := c.Points
	n := len(pts)

	if n == 1 {
		// A lone point is only visible through its caps.
		if !c.Closed {
			switch e.style.Cap {
			case LineCapRound:
				e.emit(e.circle(pts[0], hw))
			case LineCapSquare:
				p := pts[0]
				e.emit(Polygon{
					{p.X - hw, p.Y - hw}, {p.X + hw, p.Y - hw},
					{p.X + hw, p.Y + hw}, {p.X - hw, p.Y + hw},
				})
			}
		}
		return
	}

	segs := n - 1
	if c.Closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		nrm := b.Sub(a).Normalize().Perp().Scale(hw)
		e.emit(Polygon{a.Add(nrm), b.Add(nrm), b.Add(nrm.Neg()), a.Add(nrm.Neg())})
	}

	if c.Closed {
		for i := range n {
			e.join(pts[(i-1+n)%n], pts[i], pts[(i+1)%n], hw)
		}
		return
	}

	for i := 1; i < n-1; i++ {
		e.join(pts[i-1], pts[i], pts[i+1], hw)
	}
	e.lineCap(pts[0], pts[0].Sub(pts[1]).Normalize(), hw)
	e.lineCap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize(), hw)
}

// join covers the wedge left open on the outer side of the corner at p.
func (e *Expander) join(p0, p, p1 Point, hw float64) {
	d0 := p.Sub(p0).Normalize()
	d1 := p1.Sub(p).Normalize()
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)

	if math.Abs(cross) < 1e-9 && dot > 0 {
		return // collinear
	}
	if e.style.Join == LineJoinRound {
		e.emit(e.circle(p, hw))
		return
	}
	if math.Abs(cross) < 1e-9 {
		return // full reversal: nothing to bevel or miter
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := d0.Perp().Scale(hw * side)
	n1 := d1.Perp().Scale(hw * side)
	o0, o1 := p.Add(n0), p.Add(n1)

	if e.style.Join == LineJoinMiter {
		// The miter length over the stroke width is 1/cos(turn/2).
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 0 && 1/cosHalf <= e.style.MiterLimit {
			bisector := Vec2{X: n0.X + n1.X, Y: n0.Y + n1.Y}.Normalize()
			m := p.Add(bisector.Scale(hw / cosHalf))
			e.emit(Polygon{p, o0, m, o1})
			return
		}
	}
	e.emit(Polygon{p, o0, o1})
}

// lineCap adds the cap at end point p, where u points away from the stroke.
func (e *Expander) lineCap(p Point, u Vec2, hw float64) {
	switch e.style.Cap {
	case LineCapRound:
		e.emit(e.circle(p, hw))
	case LineCapSquare:
		nrm := u.Perp().Scale(hw)
		ext := u.Scale(hw)
		e.emit(Polygon{
			p.Add(nrm), p.Add(nrm).Add(ext),
			p.Add(nrm.Neg()).Add(ext), p.Add(nrm.Neg()),
		})
	}
}

// circle approximates a circle with a polygon whose sagitta stays within
// the tolerance.
func (e *Expander) circle(c Point, r float64) Polygon {
	segments := 8
	if r > e.tolerance {
		segments = int(math.Ceil(math.Pi / math.Acos(1-e.tolerance/r)))
	}
	segments = min(max(segments, 8), 256)

	poly := make(Polygon, segments)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(segments)
		poly[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return poly
}

// emit appends p with positive orientation, dropping degenerate polygons.
func (e *Expander) emit(p Polygon) {
	area := p.SignedArea()
	switch {
	case math.Abs(area) < 1e-12 || math.IsNaN(area):
		return
	case area < 0:
		slices.Reverse(p)
	}
	e.out = append(e.out, p)
}
