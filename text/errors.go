package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrNoGlyphs is returned when a font source defines no glyphs.
	ErrNoGlyphs = errors.New("text: font has no glyphs")

	// ErrInvalidMapping is returned when a glyph mapping string contains a
	// truncated range.
	ErrInvalidMapping = errors.New("text: invalid glyph mapping")
)
