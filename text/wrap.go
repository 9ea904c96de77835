package text

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// breakUnit is an unbreakable span of a paragraph, [start, end) in runes.
type breakUnit struct {
	start, end int

	// advance is the width of the unit; trailing is the part of it taken
	// by whitespace at the end of the unit.
	advance, trailing float64
}

// lineRange is the rune span of one wrapped line.
type lineRange struct {
	start, end int
}

// runeAdvances attributes every glyph advance to the first rune of its
// cluster. Runes inside a multi-rune cluster get zero, and clusterStart
// marks the runes a line may begin at.
func runeAdvances(n int, glyphs []ShapedGlyph) (advances []float64, clusterStart []bool) {
	advances = make([]float64, n)
	clusterStart = make([]bool, n+1)
	for _, g := range glyphs {
		if g.Cluster >= 0 && g.Cluster < n {
			advances[g.Cluster] += g.XAdvance
			clusterStart[g.Cluster] = true
		}
	}
	clusterStart[n] = true
	return advances, clusterStart
}

// breakUnits splits a paragraph at the UAX #14 line-break opportunities
// reported by the go-text segmenter.
func breakUnits(runes []rune, advances []float64) []breakUnit {
	var seg segmenter.Segmenter
	seg.Init(runes)

	var units []breakUnit
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		units = append(units, newUnit(runes, advances, line.Offset, line.Offset+len(line.Text)))
	}
	return units
}

// clusterUnits splits [start, end) at every cluster boundary.
func clusterUnits(runes []rune, advances []float64, clusterStart []bool, start, end int) []breakUnit {
	var units []breakUnit
	from := start
	for i := start + 1; i <= end; i++ {
		if clusterStart[i] || i == end {
			units = append(units, newUnit(runes, advances, from, i))
			from = i
		}
	}
	return units
}

func newUnit(runes []rune, advances []float64, start, end int) breakUnit {
	u := breakUnit{start: start, end: end}
	for i := start; i < end; i++ {
		u.advance += advances[i]
	}
	for i := end - 1; i >= start && unicode.IsSpace(runes[i]); i-- {
		u.trailing += advances[i]
	}
	return u
}

// wrapUnits greedily packs units into lines no wider than maxWidth,
// ignoring trailing whitespace. A unit wider than a line gets a line of
// its own.
func wrapUnits(units []breakUnit, maxWidth float64) []lineRange {
	if len(units) == 0 {
		return nil
	}

	var lines []lineRange
	cur := lineRange{start: units[0].start, end: units[0].start}
	var width float64

	for _, u := range units {
		if cur.end > cur.start && width+u.advance-u.trailing > maxWidth {
			lines = append(lines, cur)
			cur = lineRange{start: u.start, end: u.start}
			width = 0
		}
		cur.end = u.end
		width += u.advance
	}
	return append(lines, cur)
}

// wrapParagraph returns the line ranges of a shaped paragraph.
func wrapParagraph(runes []rune, glyphs []ShapedGlyph, maxWidth float64, mode WrapMode) []lineRange {
	n := len(runes)
	if n == 0 || mode == WrapNone || maxWidth <= 0 || isInf(maxWidth) {
		return []lineRange{{start: 0, end: n}}
	}

	advances, clusterStart := runeAdvances(n, glyphs)

	var units []breakUnit
	switch mode {
	case WrapChar:
		units = clusterUnits(runes, advances, clusterStart, 0, n)
	case WrapWord:
		units = breakUnits(runes, advances)
	default:
		for _, u := range breakUnits(runes, advances) {
			if u.advance-u.trailing <= maxWidth {
				units = append(units, u)
				continue
			}
			units = append(units, clusterUnits(runes, advances, clusterStart, u.start, u.end)...)
		}
	}
	return wrapUnits(units, maxWidth)
}

// trailingSpaceWidth returns the advance of the whitespace that ends
// [start, end).
func trailingSpaceWidth(runes []rune, advances []float64, start, end int) float64 {
	var w float64
	for i := end - 1; i >= start && unicode.IsSpace(runes[i]); i-- {
		w += advances[i]
	}
	return w
}
