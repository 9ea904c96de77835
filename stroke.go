package outlined

// LineCap is the shape of open contour ends.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound adds a semicircle of radius width/2.
	LineCapRound
	// LineCapSquare extends the stroke by width/2.
	LineCapSquare
)

// LineJoin is the shape of corners between stroked segments.
type LineJoin int

const (
	// LineJoinMiter joins with a sharp corner, limited by MiterLimit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound joins with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight line.
	LineJoinBevel
)

// Pen describes how the border of a geometry is stroked.
// A Pen with zero Width or a nil Brush draws nothing.
type Pen struct {
	// Brush paints the stroked area.
	Brush Brush

	// Width is the stroke width, centered on the geometry edge.
	Width float64

	// Cap is the shape of open contour ends. Default: LineCapButt.
	Cap LineCap

	// Join is the shape of corners. Default: LineJoinMiter.
	Join LineJoin

	// MiterLimit bounds miter joins before they fall back to bevels.
	MiterLimit float64
}

// NewPen returns a pen with flat caps, miter joins and a miter limit of 10.
func NewPen(b Brush, width float64) Pen {
	return Pen{
		Brush:      b,
		Width:      width,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// Visible reports whether stroking with p produces any coverage.
func (p Pen) Visible() bool {
	return p.Brush != nil && p.Width > 0
}

// WithJoin returns a copy of p with the given join.
func (p Pen) WithJoin(join LineJoin) Pen {
	p.Join = join
	return p
}

// WithCap returns a copy of p with the given cap.
func (p Pen) WithCap(lineCap LineCap) Pen {
	p.Cap = lineCap
	return p
}
