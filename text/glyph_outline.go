package text

import (
	"errors"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SyntheticItalicAngle is the slant, in degrees, applied to upright faces
// standing in for a missing italic.
const SyntheticItalicAngle = 12.0

// OutlinePoint is a point of an outline. Y grows downward.
type OutlinePoint struct {
	X, Y float64
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo

	// OutlineOpClose closes the current contour.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	case OutlineOpClose:
		return "Close"
	default:
		return unknownStr
	}
}

// OutlineSegment represents a segment of an outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	// - Close: unused
	Points [3]OutlinePoint
}

// Outline is the vector geometry of laid out text: closed contours, one
// or more per glyph, in layout coordinates.
type Outline struct {
	Segments []OutlineSegment
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Contours returns the number of contours.
func (o *Outline) Contours() int {
	if o == nil {
		return 0
	}
	n := 0
	for _, s := range o.Segments {
		if s.Op == OutlineOpMoveTo {
			n++
		}
	}
	return n
}

// glyphOutline is the outline of one glyph at one size, relative to its
// origin. Contours are closed explicitly.
type glyphOutline struct {
	segments []OutlineSegment
}

// outlineKey identifies a cached glyph outline.
type outlineKey struct {
	source    *FontSource
	gid       GlyphID
	size      float64
	synthetic bool
}

// extractOutline converts the sfnt segments of a glyph, closing each
// contour and slanting it when synthetic is set.
func extractOutline(src *FontSource, gid GlyphID, size float64, synthetic bool) (*glyphOutline, error) {
	segs, err := src.loadGlyph(gid, size)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			// Bitmap and color glyphs have no outline to stroke.
			slogger().Debug("text: skipping colored glyph", "gid", gid, "face", src.String())
			return &glyphOutline{}, nil
		}
		return nil, &FontError{Err: err}
	}

	slant := 0.0
	if synthetic {
		slant = math.Tan(SyntheticItalicAngle * math.Pi / 180)
	}
	pt := func(p fixed.Point26_6) OutlinePoint {
		x, y := fixedToFloat(p.X), fixedToFloat(p.Y)
		// y is negative above the baseline, so this leans glyphs right.
		return OutlinePoint{X: x - y*slant, Y: y}
	}

	out := &glyphOutline{segments: make([]OutlineSegment, 0, len(segs)+4)}
	open := false
	for _, seg := range segs {
		var s OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out.segments = append(out.segments, OutlineSegment{Op: OutlineOpClose})
			}
			open = true
			s.Op = OutlineOpMoveTo
			s.Points[0] = pt(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
			s.Points[0] = pt(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			s.Op = OutlineOpQuadTo
			s.Points[0] = pt(seg.Args[0])
			s.Points[1] = pt(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			s.Op = OutlineOpCubicTo
			s.Points[0] = pt(seg.Args[0])
			s.Points[1] = pt(seg.Args[1])
			s.Points[2] = pt(seg.Args[2])
		}
		out.segments = append(out.segments, s)
	}
	if open {
		out.segments = append(out.segments, OutlineSegment{Op: OutlineOpClose})
	}
	return out, nil
}

// appendTranslated appends g moved to (dx, dy).
func (g *glyphOutline) appendTranslated(dst []OutlineSegment, dx, dy float64) []OutlineSegment {
	for _, s := range g.segments {
		for i := range s.Points {
			if pointCount(s.Op) > i {
				s.Points[i].X += dx
				s.Points[i].Y += dy
			}
		}
		dst = append(dst, s)
	}
	return dst
}

// pointCount returns how many of Points op uses.
func pointCount(op OutlineOp) int {
	switch op {
	case OutlineOpMoveTo, OutlineOpLineTo:
		return 1
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 0
	}
}
