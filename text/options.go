package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
// Zero-valued fields fall back to the font's own description.
type sourceConfig struct {
	family   string
	weight   Weight
	style    Style
	hasStyle bool
}

// WithFamilyName registers the source under family instead of the name
// found in the font's name table.
func WithFamilyName(family string) SourceOption {
	return func(c *sourceConfig) {
		c.family = family
	}
}

// WithWeight overrides the weight read from the font's OS/2 table.
func WithWeight(w Weight) SourceOption {
	return func(c *sourceConfig) {
		c.weight = w
	}
}

// WithStyle overrides the style read from the font.
func WithStyle(s Style) SourceOption {
	return func(c *sourceConfig) {
		c.style = s
		c.hasStyle = true
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	systemFonts bool
	fallback    string
}

// WithSystemFonts enables lookup of unregistered families among the
// fonts installed on the system.
func WithSystemFonts(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.systemFonts = enabled
	}
}

// WithFallbackFamily makes Resolve fall back to family when the
// requested one cannot be found. Empty disables fallback (the default).
func WithFallbackFamily(family string) RegistryOption {
	return func(c *registryConfig) {
		c.fallback = family
	}
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	registry   *Registry
	shaper     Shaper
	cacheLimit int
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		cacheLimit: 4096,
	}
}

// WithRegistry sets the registry fonts are resolved from.
// The default is NewDefaultRegistry().
func WithRegistry(r *Registry) EngineOption {
	return func(c *engineConfig) {
		c.registry = r
	}
}

// WithShaper replaces the HarfBuzz shaper.
func WithShaper(s Shaper) EngineOption {
	return func(c *engineConfig) {
		c.shaper = s
	}
}

// WithOutlineCacheLimit sets the soft limit of cached glyph outlines.
// A value of 0 disables the limit.
func WithOutlineCacheLimit(n int) EngineOption {
	return func(c *engineConfig) {
		c.cacheLimit = n
	}
}
