package text

import (
	"golang.org/x/text/encoding/charmap"
)

// GlyphMapping maps characters to glyph indices in a font atlas.
type GlyphMapping interface {
	// Index returns the glyph index of r. Characters without a glyph map
	// to the replacement glyph.
	Index(r rune) int
}

// StrGlyphMapping maps characters by their position in a string.
//
// A NUL character starts a range: the two characters after it are the
// first and last characters of a consecutive run of glyphs. For example
// "\x00az!" maps 'a' to 0, 'z' to 25 and '!' to 26.
type StrGlyphMapping struct {
	chars       []rune
	replacement int
}

// NewStrGlyphMapping creates a mapping from a character string. The
// replacement index is used for characters not in the string.
func NewStrGlyphMapping(chars string, replacement int) (*StrGlyphMapping, error) {
	runes := []rune(chars)
	for i := 0; i < len(runes); i++ {
		if runes[i] != 0 {
			continue
		}
		if i+2 >= len(runes) || runes[i+2] < runes[i+1] {
			return nil, ErrInvalidMapping
		}
		i += 2
	}
	return &StrGlyphMapping{chars: runes, replacement: replacement}, nil
}

// Index implements GlyphMapping.
func (m *StrGlyphMapping) Index(r rune) int {
	index := 0
	for i := 0; i < len(m.chars); i++ {
		c := m.chars[i]
		if c == 0 {
			lo, hi := m.chars[i+1], m.chars[i+2]
			if r >= lo && r <= hi {
				return index + int(r-lo)
			}
			index += int(hi-lo) + 1
			i += 2
			continue
		}
		if c == r {
			return index
		}
		index++
	}
	return m.replacement
}

// CharmapGlyphMapping maps characters through a single-byte character set.
// The glyph index is the encoded byte minus first.
type CharmapGlyphMapping struct {
	charmap     *charmap.Charmap
	first       byte
	count       int
	replacement int
}

// NewCharmapGlyphMapping creates a mapping for an atlas holding count
// glyphs for the bytes starting at first.
func NewCharmapGlyphMapping(cm *charmap.Charmap, first byte, count, replacement int) *CharmapGlyphMapping {
	return &CharmapGlyphMapping{charmap: cm, first: first, count: count, replacement: replacement}
}

// Index implements GlyphMapping.
func (m *CharmapGlyphMapping) Index(r rune) int {
	b, ok := m.charmap.EncodeRune(r)
	if !ok || b < m.first || int(b-m.first) >= m.count {
		return m.replacement
	}
	return int(b - m.first)
}

// rangeMapping maps consecutive runs of characters, each run [low, high)
// starting at glyph offset.
type rangeMapping struct {
	ranges      []glyphRange
	replacement int
}

type glyphRange struct {
	low, high rune
	offset    int
}

// Index implements GlyphMapping.
func (m *rangeMapping) Index(r rune) int {
	for _, rg := range m.ranges {
		if r >= rg.low && r < rg.high {
			return rg.offset + int(r-rg.low)
		}
	}
	return m.replacement
}
