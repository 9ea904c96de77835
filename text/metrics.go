package text

// Metrics are the vertical metrics of a face, in layout units at the face
// size. Descent is positive below the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64

	XHeight   float64
	CapHeight float64
}

// GlyphHeight is the extent from the highest ascender to the lowest
// descender.
func (m Metrics) GlyphHeight() float64 {
	return m.Ascent + m.Descent
}

// LineHeight is the natural baseline-to-baseline distance: GlyphHeight plus
// the font's line gap. Layout multiplies it by Params.LineSpacing.
func (m Metrics) LineHeight() float64 {
	return m.GlyphHeight() + m.LineGap
}

// HalfLeading returns the space above the ascender of a line lineHeight
// tall. It is negative when lineHeight is smaller than GlyphHeight.
func (m Metrics) HalfLeading(lineHeight float64) float64 {
	return (lineHeight - m.GlyphHeight()) / 2
}
