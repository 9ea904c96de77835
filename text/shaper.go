package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedGlyph is a glyph produced by shaping, in logical pen space.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the index of the first rune of the glyph's cluster in
	// the shaped text.
	Cluster int

	// XOffset and YOffset adjust the glyph relative to the pen position.
	// YOffset is positive upward, as in OpenType.
	XOffset, YOffset float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations must be safe for concurrent use.
type Shaper interface {
	// Shape shapes text as a single run with face. Glyphs are returned in
	// visual order.
	Shape(text []rune, face *Face, dir Direction, lang language.Language) []ShapedGlyph
}

// HarfbuzzShaper shapes text with the HarfBuzz port of go-text/typesetting,
// so kerning, ligatures and complex scripts are honored.
//
// HarfbuzzShaper is safe for concurrent use. shaping.HarfbuzzShaper keeps
// mutable buffers, so instances are pooled, and a font.Face (also not safe
// for concurrent use) is created per call around the shared *font.Font.
type HarfbuzzShaper struct {
	pool sync.Pool
}

// NewHarfbuzzShaper creates a HarfbuzzShaper.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape implements Shaper.
func (s *HarfbuzzShaper) Shape(text []rune, face *Face, dir Direction, lang language.Language) []ShapedGlyph {
	if len(text) == 0 || face == nil {
		return nil
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: mapDirection(dir),
		Face:      font.NewFace(face.Source().shaped),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(text),
		Language:  lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// mapDirection converts Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first letter-like rune.
// Mixed-script text is shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if sc := language.LookupScript(r); sc != language.Common && sc != language.Inherited {
			return sc
		}
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph values.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster:  g.ClusterIndex,
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.Advance),
		}
	}
	return result
}
