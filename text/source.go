package text

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	ximagefont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// One FontSource serves every size; Face binds it to one.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte

	// outlines come from x/image, shaping from go-text.
	sfnt   *sfnt.Font
	shaped *font.Font

	family string
	weight Weight
	style  Style

	// bufPool pools sfnt.Buffer values; a Buffer is not safe for concurrent use.
	bufPool sync.Pool
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, &FontError{Err: err}
	}
	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &FontError{Err: err}
	}

	s := &FontSource{
		data:   dataCopy,
		sfnt:   parsed,
		shaped: face.Font,
	}
	s.addr = s
	s.bufPool.New = func() any { return new(sfnt.Buffer) }

	desc := face.Font.Describe()
	s.family = desc.Family
	s.weight = Weight(math.Round(float64(desc.Aspect.Weight)))
	s.style = StyleNormal
	if desc.Aspect.Style == font.StyleItalic {
		s.style = StyleItalic
	}
	if s.family == "" {
		if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
			s.family = name
		}
	}

	if config.family != "" {
		s.family = config.family
	}
	if config.weight != 0 {
		s.weight = config.weight
	}
	if config.hasStyle {
		s.style = config.style
	}
	if s.weight == 0 {
		s.weight = WeightNormal
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}
	s, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("text: %s: %w", path, err)
	}
	return s, nil
}

// Family returns the family name the source is registered under.
func (s *FontSource) Family() string {
	s.copyCheck()
	return s.family
}

// Weight returns the weight of the face.
func (s *FontSource) Weight() Weight {
	s.copyCheck()
	return s.weight
}

// Style returns the style of the face.
func (s *FontSource) Style() Style {
	s.copyCheck()
	return s.style
}

// String returns "Family Weight Style", as used in log output.
func (s *FontSource) String() string {
	return fmt.Sprintf("%s %s %s", s.family, s.weight, s.style)
}

// Face creates a Face at the specified size in pixels per em.
func (s *FontSource) Face(size float64) *Face {
	s.copyCheck()
	return &Face{source: s, size: size}
}

// metrics returns the vertical metrics at size.
func (s *FontSource) metrics(size float64) (Metrics, error) {
	buf := s.bufPool.Get().(*sfnt.Buffer)
	defer s.bufPool.Put(buf)

	m, err := s.sfnt.Metrics(buf, floatToFixed(size), ximagefont.HintingNone)
	if err != nil {
		return Metrics{}, &FontError{Err: err}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   gap,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}, nil
}

// loadGlyph returns the glyph segments of gid scaled to size.
// Coordinates are relative to the glyph origin with Y pointing down.
func (s *FontSource) loadGlyph(gid GlyphID, size float64) (sfnt.Segments, error) {
	buf := s.bufPool.Get().(*sfnt.Buffer)
	defer s.bufPool.Put(buf)

	segs, err := s.sfnt.LoadGlyph(buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil {
		return nil, err
	}
	// segs aliases buf, which goes back to the pool.
	out := make(sfnt.Segments, len(segs))
	copy(out, segs)
	return out, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// normalizeFamily folds a family name for lookups.
func normalizeFamily(family string) string {
	return strings.ToLower(strings.Join(strings.Fields(family), " "))
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
