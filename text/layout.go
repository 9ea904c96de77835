package text

import (
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/language"
)

// Alignment specifies horizontal alignment of lines within the layout width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Params describes a layout request.
type Params struct {
	// Family is the font family name resolved through the engine's registry.
	Family string

	// Size is the font size in pixels per em. Must be positive and finite.
	Size float64

	Weight Weight
	Style  Style

	// Direction is the shaping direction. Default: DirectionLTR.
	Direction Direction

	// Locale is a BCP 47 tag such as "en-us". Empty means "en".
	Locale string

	// LineSpacing multiplies the font's natural line height. Zero means 1.
	LineSpacing float64

	// MaxWidth wraps lines wider than it. Zero or +Inf disables wrapping.
	MaxWidth float64

	// MaxHeight drops lines that would end below it. Zero or +Inf keeps
	// every line.
	MaxHeight float64

	Wrap      WrapMode
	Alignment Alignment
}

// Line is a laid out line of text. Glyph X positions are absolute within
// the layout box; Baseline is the line's baseline Y, growing downward.
type Line struct {
	Glyphs []PositionedGlyph

	// Text is the content of the line, trailing whitespace included.
	Text string

	// Width is the advance width without trailing whitespace.
	Width float64

	// WidthIncludingTrailingWhitespace is the full advance width.
	WidthIncludingTrailingWhitespace float64

	// X is the left edge of the line after alignment.
	X float64

	Baseline float64
}

// PositionedGlyph is a glyph placed in layout coordinates.
type PositionedGlyph struct {
	GID GlyphID

	// X, Y is the glyph origin. Y is on the baseline shifted by any
	// vertical offset from shaping.
	X, Y float64

	Advance float64
}

// Layout is the result of Engine.Layout.
type Layout struct {
	Lines []Line

	// Face is the resolved face all lines were shaped with.
	Face *Face

	Metrics Metrics

	// LineHeight is the distance between consecutive baselines.
	LineHeight float64

	// Width is the widest line without trailing whitespace.
	Width float64

	// WidthIncludingTrailingWhitespace is the widest full line.
	WidthIncludingTrailingWhitespace float64

	// Height is LineHeight times the number of lines.
	Height float64

	// Truncated reports whether lines were dropped to fit MaxHeight.
	Truncated bool
}

// GlyphCount returns the total number of glyphs in the layout.
func (l *Layout) GlyphCount() int {
	n := 0
	for i := range l.Lines {
		n += len(l.Lines[i].Glyphs)
	}
	return n
}

// splitParagraphs splits text by hard line breaks.
func splitParagraphs(text string) []string {
	// Normalize line endings and Unicode line/paragraph separators
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u2028", "\n")
	text = strings.ReplaceAll(text, "\u2029", "\n")

	return strings.Split(text, "\n")
}

// layoutParagraph shapes a paragraph once and cuts it into lines.
// Glyph positions are relative to the line start and the baseline.
func (e *Engine) layoutParagraph(para string, face *Face, p Params, lang language.Language) []Line {
	if para == "" {
		// Empty paragraph still produces a line (for line height)
		return []Line{{}}
	}

	runes := []rune(para)
	glyphs := dropControls(runes, e.shaper.Shape(shapingRunes(runes), face, p.Direction, lang))
	advances, _ := runeAdvances(len(runes), glyphs)

	ranges := wrapParagraph(runes, glyphs, p.MaxWidth, p.Wrap)
	lines := make([]Line, 0, len(ranges))
	for _, r := range ranges {
		line := Line{Text: string(runes[r.start:r.end])}

		var pen float64
		for _, g := range glyphs {
			if g.Cluster < r.start || g.Cluster >= r.end {
				continue
			}
			line.Glyphs = append(line.Glyphs, PositionedGlyph{
				GID:     g.GID,
				X:       pen + g.XOffset,
				Y:       -g.YOffset,
				Advance: g.XAdvance,
			})
			pen += g.XAdvance
		}
		line.WidthIncludingTrailingWhitespace = pen
		line.Width = pen - trailingSpaceWidth(runes, advances, r.start, r.end)
		if line.Width < 0 {
			line.Width = 0
		}
		lines = append(lines, line)
	}
	return lines
}

// shapingRunes returns runes with control characters replaced by spaces,
// so fonts without glyphs for them do not produce .notdef boxes.
// Indices are preserved.
func shapingRunes(runes []rune) []rune {
	var out []rune
	for i, r := range runes {
		if !unicode.IsControl(r) {
			continue
		}
		if out == nil {
			out = slices.Clone(runes)
		}
		out[i] = ' '
	}
	if out == nil {
		return runes
	}
	return out
}

// dropControls removes the glyphs of control characters other than tab,
// which keeps the advance of a space.
func dropControls(runes []rune, glyphs []ShapedGlyph) []ShapedGlyph {
	return slices.DeleteFunc(glyphs, func(g ShapedGlyph) bool {
		if g.Cluster < 0 || g.Cluster >= len(runes) {
			return false
		}
		r := runes[g.Cluster]
		return r != '\t' && unicode.IsControl(r)
	})
}

// placeLines assigns baselines and alignment, dropping lines that would
// end below MaxHeight. The first line is always kept.
func placeLines(l *Layout, lines []Line, p Params) {
	m := l.Metrics
	l.LineHeight = m.LineHeight() * p.LineSpacing
	halfLeading := m.HalfLeading(l.LineHeight)

	limit := p.MaxHeight
	if limit <= 0 {
		limit = math.Inf(1)
	}

	const epsilon = 1e-9
	for i := range lines {
		bottom := float64(i+1) * l.LineHeight
		if i > 0 && bottom > limit+epsilon {
			l.Truncated = true
			break
		}
		line := lines[i]
		line.Baseline = float64(i)*l.LineHeight + halfLeading + m.Ascent
		l.Lines = append(l.Lines, line)
		l.Height = bottom
		l.Width = math.Max(l.Width, line.Width)
		l.WidthIncludingTrailingWhitespace = math.Max(l.WidthIncludingTrailingWhitespace,
			line.WidthIncludingTrailingWhitespace)
	}

	box := l.Width
	if p.MaxWidth > 0 && !isInf(p.MaxWidth) {
		box = p.MaxWidth
	}
	for i := range l.Lines {
		line := &l.Lines[i]
		switch p.Alignment {
		case AlignCenter:
			line.X = (box - line.Width) / 2
		case AlignRight:
			line.X = box - line.Width
		}
		for j := range line.Glyphs {
			g := &line.Glyphs[j]
			g.X += line.X
			g.Y += line.Baseline
		}
	}
}

func isInf(v float64) bool {
	return math.IsInf(v, 1)
}
