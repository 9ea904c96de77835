// Package text lays out strings as glyph outlines.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Registry: family name lookup over registered and system fonts
//   - Face: a FontSource at a size, with metrics
//   - Shaper: HarfBuzz shaping via go-text/typesetting
//   - Engine: wrapping, line placement and outline extraction
//
// # Example usage
//
//	engine := text.NewEngine()
//	layout, err := engine.Layout("Hello, outlines!", text.Params{
//	    Family:      text.GoFamily,
//	    Size:        48,
//	    Weight:      text.WeightMedium,
//	    LineSpacing: 1.25,
//	    MaxWidth:    400,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outline, err := engine.Outline(layout)
//
// Coordinates use a top-left origin with Y growing downward. The layout box
// starts at (0, 0); the first baseline sits at the half-leading plus the
// font ascent.
//
// Wrapping uses the UAX #14 line-break opportunities of the go-text
// segmenter. Widths exclude trailing whitespace; lines that would end below
// Params.MaxHeight are dropped and reported with Layout.Truncated.
package text
