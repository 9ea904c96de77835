package text

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// GoFamily is the family name of the embedded Go fonts.
const GoFamily = "Go"

// Registry maps family names to font faces.
//
// Families are matched case-insensitively. A family may hold any number of
// faces; Resolve picks the one closest to the requested weight and style.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	faces   map[string][]*FontSource
	aliases map[string]string

	config registryConfig

	// systemOnce guards the scan of installed font files.
	systemOnce  sync.Once
	systemFiles []string
	// systemLoads holds one search of the installed fonts per family.
	systemLoads map[string]*sync.Once
}

// substitutes lists metric-compatible families tried, in order, when a
// common proprietary family is not installed.
var substitutes = map[string][]string{
	"arial":           {"Liberation Sans", "Arimo"},
	"helvetica":       {"Liberation Sans", "Arimo"},
	"times new roman": {"Liberation Serif", "Tinos"},
	"courier new":     {"Liberation Mono", "Cousine"},
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		faces:       make(map[string][]*FontSource),
		aliases:     make(map[string]string),
		systemLoads: make(map[string]*sync.Once),
	}
	for _, opt := range opts {
		opt(&r.config)
	}
	return r
}

// NewDefaultRegistry creates a registry holding the embedded Go family
// with system font lookup enabled. Options are applied after the defaults.
func NewDefaultRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(append([]RegistryOption{WithSystemFonts(true)}, opts...)...)
	if err := r.RegisterGoFonts(); err != nil {
		// The embedded fonts are known-good; this only fails on a broken build.
		panic(err)
	}
	return r
}

// RegisterGoFonts registers the embedded Go fonts under GoFamily.
func (r *Registry) RegisterGoFonts() error {
	faces := []struct {
		data   []byte
		weight Weight
		style  Style
	}{
		{goregular.TTF, WeightNormal, StyleNormal},
		{goitalic.TTF, WeightNormal, StyleItalic},
		{gomedium.TTF, WeightMedium, StyleNormal},
		{gomediumitalic.TTF, WeightMedium, StyleItalic},
		{gobold.TTF, WeightBold, StyleNormal},
		{gobolditalic.TTF, WeightBold, StyleItalic},
	}
	for _, f := range faces {
		src, err := NewFontSource(f.data,
			WithFamilyName(GoFamily), WithWeight(f.weight), WithStyle(f.style))
		if err != nil {
			return err
		}
		r.Register(src)
	}
	return nil
}

// Register adds src under its family name.
func (r *Registry) Register(src *FontSource) {
	key := normalizeFamily(src.Family())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[key] = append(r.faces[key], src)
}

// RegisterData parses font data and registers it.
func (r *Registry) RegisterData(data []byte, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	r.Register(src)
	return src, nil
}

// RegisterFile loads a font file and registers it.
func (r *Registry) RegisterFile(path string, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	r.Register(src)
	return src, nil
}

// Alias makes alias resolve to family.
// Aliases are followed once, so an alias cannot point at another alias.
func (r *Registry) Alias(alias, family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[normalizeFamily(alias)] = normalizeFamily(family)
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.faces))
	for _, faces := range r.faces {
		if len(faces) > 0 {
			names = append(names, faces[0].Family())
		}
	}
	sort.Strings(names)
	return names
}

// Resolve returns a face of family closest to weight and style.
//
// When the family only has upright faces and italic is requested, the
// returned face is marked for synthetic italic. Unknown families are
// searched among system fonts (if enabled), then metric-compatible
// substitutes such as Liberation Sans for Arial, then the fallback family.
// A *FontNotFoundError is returned when all of that fails.
func (r *Registry) Resolve(family string, weight Weight, style Style, size float64) (*Face, error) {
	src, ok := r.find(family, weight, style)
	for _, sub := range substitutes[normalizeFamily(family)] {
		if ok {
			break
		}
		if src, ok = r.find(sub, weight, style); ok {
			slogger().Debug("text: using substitute family",
				"family", family, "substitute", sub)
		}
	}
	if !ok && r.config.fallback != "" && normalizeFamily(r.config.fallback) != normalizeFamily(family) {
		slogger().Debug("text: using fallback family",
			"family", family, "fallback", r.config.fallback)
		src, ok = r.lookup(r.config.fallback, weight, style)
	}
	if !ok {
		return nil, &FontNotFoundError{Family: family, Weight: weight, Style: style}
	}

	face := src.Face(size)
	if style == StyleItalic && src.Style() != StyleItalic {
		face.synthetic = true
		slogger().Warn("text: no italic face, slanting upright face",
			"family", family, "face", src.String())
	}
	return face, nil
}

// find looks family up, searching system fonts once when it is unknown.
func (r *Registry) find(family string, weight Weight, style Style) (*FontSource, bool) {
	src, ok := r.lookup(family, weight, style)
	if !ok && r.config.systemFonts {
		r.loadSystem(family)
		src, ok = r.lookup(family, weight, style)
	}
	return src, ok
}

// lookup picks the best registered face of family.
func (r *Registry) lookup(family string, weight Weight, style Style) (*FontSource, bool) {
	key := normalizeFamily(family)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[key]; ok {
		key = target
	}
	faces := r.faces[key]
	if len(faces) == 0 {
		return nil, false
	}

	best, bestScore := faces[0], matchScore(faces[0], weight, style)
	for _, src := range faces[1:] {
		if score := matchScore(src, weight, style); score < bestScore {
			best, bestScore = src, score
		}
	}
	return best, true
}

// matchScore ranks a face against the request; lower is better.
// Style mismatches outweigh any weight difference.
func matchScore(src *FontSource, weight Weight, style Style) int {
	score := int(src.Weight() - weight)
	if score < 0 {
		// Prefer the heavier face when equally distant.
		score = -score*2 + 1
	} else {
		score *= 2
	}
	if src.Style() != style {
		score += 10000
	}
	return score
}

// loadSystem registers installed fonts whose family matches family.
// Each family is searched at most once; concurrent callers wait for the
// search to finish.
func (r *Registry) loadSystem(family string) {
	key := normalizeFamily(family)
	r.mu.Lock()
	once, ok := r.systemLoads[key]
	if !ok {
		once = new(sync.Once)
		r.systemLoads[key] = once
	}
	r.mu.Unlock()

	once.Do(func() { r.searchSystem(family, key) })
}

func (r *Registry) searchSystem(family, key string) {
	byFile := isFontFileName(family)
	for _, path := range r.systemCandidates(family) {
		src, err := NewFontSourceFromFile(path)
		if err != nil {
			slogger().Debug("text: skipping unreadable system font", "path", path, "err", err)
			continue
		}
		if byFile {
			r.Register(src)
			r.Alias(family, src.Family())
			continue
		}
		if normalizeFamily(src.Family()) != key {
			slogger().Debug("text: rejecting system font candidate",
				"path", path, "family", src.Family(), "want", family)
			continue
		}
		slogger().Debug("text: registered system font", "path", path, "face", src.String())
		r.Register(src)
	}
}

// systemCandidates lists font files that may belong to family, judged by
// file name. Names that look like a file are located directly.
func (r *Registry) systemCandidates(family string) []string {
	if isFontFileName(family) {
		path, err := findfont.Find(family)
		if err != nil {
			return nil
		}
		return []string{path}
	}

	r.systemOnce.Do(func() {
		for _, path := range findfont.List() {
			// Collections are not supported by the parser.
			if strings.EqualFold(filepath.Ext(path), ".ttc") {
				continue
			}
			r.systemFiles = append(r.systemFiles, path)
		}
		slogger().Debug("text: scanned system fonts", "count", len(r.systemFiles))
	})

	needle := compactName(family)
	if needle == "" {
		return nil
	}
	var out []string
	for _, path := range r.systemFiles {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if strings.HasPrefix(compactName(base), needle) {
			out = append(out, path)
		}
	}
	return out
}

// compactName lowercases s and drops separators, so that "DejaVu Sans"
// matches "DejaVuSans-Bold".
func compactName(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if c == ' ' || c == '-' || c == '_' {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// isFontFileName reports whether name looks like a font file rather than a
// family, e.g. "DejaVuSans.ttf".
func isFontFileName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}
