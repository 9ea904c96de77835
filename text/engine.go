package text

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/language"
	xlanguage "golang.org/x/text/language"
)

// Engine is the text layout service: it resolves fonts, shapes and wraps
// text, and extracts glyph outlines.
//
// Engine is safe for concurrent use.
type Engine struct {
	registry *Registry
	shaper   Shaper
	outlines *Cache[outlineKey, *glyphOutline]
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// DefaultEngine returns the shared engine over NewDefaultRegistry.
func DefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// NewEngine creates an engine.
func NewEngine(opts ...EngineOption) *Engine {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.registry == nil {
		config.registry = NewDefaultRegistry()
	}
	if config.shaper == nil {
		config.shaper = NewHarfbuzzShaper()
	}
	return &Engine{
		registry: config.registry,
		shaper:   config.shaper,
		outlines: NewCache[outlineKey, *glyphOutline](config.cacheLimit),
	}
}

// Registry returns the registry the engine resolves fonts from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// OutlineCacheStats reports the glyph outline cache counters.
func (e *Engine) OutlineCacheStats() CacheStats {
	return e.outlines.Stats()
}

// Layout resolves the font of p and lays out text.
func (e *Engine) Layout(text string, p Params) (*Layout, error) {
	if p.Size <= 0 || math.IsNaN(p.Size) || math.IsInf(p.Size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, p.Size)
	}
	if p.LineSpacing == 0 {
		p.LineSpacing = 1
	}
	if p.LineSpacing < 0 || math.IsNaN(p.LineSpacing) || math.IsInf(p.LineSpacing, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLineSpacing, p.LineSpacing)
	}
	lang, err := parseLocale(p.Locale)
	if err != nil {
		return nil, err
	}

	face, err := e.registry.Resolve(p.Family, p.Weight, p.Style, p.Size)
	if err != nil {
		return nil, err
	}
	metrics, err := face.Metrics()
	if err != nil {
		return nil, err
	}

	var lines []Line
	for _, para := range splitParagraphs(text) {
		lines = append(lines, e.layoutParagraph(para, face, p, lang)...)
	}

	l := &Layout{Face: face, Metrics: metrics}
	placeLines(l, lines, p)

	slogger().Debug("text: layout",
		"face", face.String(),
		"lines", len(l.Lines),
		"width", l.Width,
		"height", l.Height,
		"truncated", l.Truncated)
	return l, nil
}

// Outline returns the glyph outlines of l in layout coordinates.
func (e *Engine) Outline(l *Layout) (*Outline, error) {
	out := &Outline{}
	if l == nil || l.Face == nil {
		return out, nil
	}
	face := l.Face
	src := face.Source()

	for i := range l.Lines {
		for _, g := range l.Lines[i].Glyphs {
			key := outlineKey{source: src, gid: g.GID, size: face.Size(), synthetic: face.SyntheticItalic()}
			glyph, err := e.outlines.GetOrCreate(key, func() (*glyphOutline, error) {
				return extractOutline(src, g.GID, face.Size(), face.SyntheticItalic())
			})
			if err != nil {
				return nil, fmt.Errorf("text: glyph %d of %s: %w", g.GID, src, err)
			}
			out.Segments = glyph.appendTranslated(out.Segments, g.X, g.Y)
		}
	}
	return out, nil
}

// parseLocale validates a BCP 47 tag and converts it for the shaper.
func parseLocale(locale string) (language.Language, error) {
	if locale == "" {
		return language.NewLanguage("en"), nil
	}
	tag, err := xlanguage.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	return language.NewLanguage(tag.String()), nil
}
