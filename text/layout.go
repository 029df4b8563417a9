package text

import "fmt"

// Alignment specifies the horizontal alignment of text lines relative to
// the text position.
type Alignment int

const (
	// AlignLeft starts each line at the position (default).
	AlignLeft Alignment = iota
	// AlignCenter centers each line on the position.
	AlignCenter
	// AlignRight ends each line at the position.
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

// offset returns how far a line of the given width is moved left.
func (a Alignment) offset(width uint32) int32 {
	if width == 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return int32(width-1) / 2
	case AlignRight:
		return int32(width - 1)
	}
	return 0
}

// Baseline specifies which row of the text the position refers to.
type Baseline int

const (
	// BaselineAlphabetic places the position on the font baseline
	// (default).
	BaselineAlphabetic Baseline = iota
	// BaselineTop places the position on the top row.
	BaselineTop
	// BaselineBottom places the position on the bottom row.
	BaselineBottom
	// BaselineMiddle places the position on the middle row.
	BaselineMiddle
)

// String returns the string representation of the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineTop:
		return "Top"
	case BaselineBottom:
		return "Bottom"
	case BaselineMiddle:
		return "Middle"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

type lineHeightKind uint8

const (
	lineHeightDefault lineHeightKind = iota
	lineHeightPixels
	lineHeightPercent
)

// LineHeight is the distance between the baselines of consecutive lines,
// either in pixels or relative to the character style's line height. The
// zero value is 100 percent.
type LineHeight struct {
	kind  lineHeightKind
	value uint32
}

// LineHeightPixels returns an absolute line height.
func LineHeightPixels(px uint32) LineHeight {
	return LineHeight{kind: lineHeightPixels, value: px}
}

// LineHeightPercent returns a line height relative to the style's line
// height.
func LineHeightPercent(percent uint32) LineHeight {
	return LineHeight{kind: lineHeightPercent, value: percent}
}

// ToAbsolute resolves the line height against base.
func (l LineHeight) ToAbsolute(base uint32) uint32 {
	switch l.kind {
	case lineHeightPixels:
		return l.value
	case lineHeightPercent:
		return uint32(uint64(base) * uint64(l.value) / 100)
	}
	return base
}

// String returns the line height as "Npx" or "N%".
func (l LineHeight) String() string {
	switch l.kind {
	case lineHeightPixels:
		return fmt.Sprintf("%dpx", l.value)
	case lineHeightPercent:
		return fmt.Sprintf("%d%%", l.value)
	}
	return "100%"
}

// TextStyle holds the layout properties of a Text.
type TextStyle struct {
	Alignment  Alignment
	Baseline   Baseline
	LineHeight LineHeight
}

// NewTextStyle returns a style with the given alignment and baseline and
// the default line height.
func NewTextStyle(alignment Alignment, baseline Baseline) TextStyle {
	return TextStyle{Alignment: alignment, Baseline: baseline}
}
