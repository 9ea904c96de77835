// Package stroke converts stroked paths into filled polygons.
//
// Curves are flattened to polylines within a tolerance, then every piece
// of the stroke is emitted as its own small polygon:
//
//   - one quadrilateral per polyline segment, offset by ±width/2
//   - one join polygon per interior vertex (and at the seam of closed contours)
//   - one cap polygon per end of an open contour
//
// All polygons share the same orientation, so a rasterizer that accumulates
// signed coverage and clamps its magnitude (such as golang.org/x/image/vector)
// paints their union without holes where pieces overlap.
//
// # Usage
//
//	expander := stroke.NewExpander(stroke.Style{
//	    Width:      2.0,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 10,
//	})
//	expander.SetTolerance(0.1) // Optional: adjust curve flattening
//
//	polygons := expander.Expand([]stroke.PathElement{
//	    stroke.MoveTo{Point: stroke.Point{X: 0, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 100}},
//	})
package stroke
