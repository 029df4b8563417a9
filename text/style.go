package text

import (
	"iter"

	"golang.org/x/image/font"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// TextMetrics is the result of measuring a string.
type TextMetrics struct {
	// BoundingBox covers every pixel drawing the string could set.
	BoundingBox geometry.Rectangle
	// NextPosition is where the following string continues.
	NextPosition geometry.Point
}

// CharacterStyle renders single lines of text.
type CharacterStyle[C pixelcolor.Color] interface {
	// MeasureString returns the metrics of text drawn at position.
	MeasureString(text string, position geometry.Point, baseline Baseline) TextMetrics

	// DrawString draws text and returns the position for the next string.
	DrawString(text string, position geometry.Point, baseline Baseline, target draw.DrawTarget[C]) (geometry.Point, error)

	// DrawWhitespace draws width pixels of empty space with the style's
	// background and decorations.
	DrawWhitespace(width uint32, position geometry.Point, baseline Baseline, target draw.DrawTarget[C]) (geometry.Point, error)

	// LineHeight returns the default distance between lines.
	LineHeight() uint32
}

type decorationMode uint8

const (
	decorationNone decorationMode = iota
	decorationTextColor
	decorationCustom
)

// DecorationColor selects the color of an underline or strikethrough. The
// zero value draws no decoration.
type DecorationColor[C pixelcolor.Color] struct {
	mode  decorationMode
	color C
}

// DecorationTextColor draws the decoration in the text color.
func DecorationTextColor[C pixelcolor.Color]() DecorationColor[C] {
	return DecorationColor[C]{mode: decorationTextColor}
}

// DecorationCustom draws the decoration in c.
func DecorationCustom[C pixelcolor.Color](c C) DecorationColor[C] {
	return DecorationColor[C]{mode: decorationCustom, color: c}
}

// IsNone reports whether no decoration is drawn.
func (d DecorationColor[C]) IsNone() bool {
	return d.mode == decorationNone
}

func (d DecorationColor[C]) resolve(text C, hasText bool) (C, bool) {
	switch d.mode {
	case decorationTextColor:
		return text, hasText
	case decorationCustom:
		return d.color, true
	}
	var zero C
	return zero, false
}

// MonoTextStyle draws text with a MonoFont.
type MonoTextStyle[C pixelcolor.Color] struct {
	font          *MonoFont
	text          C
	background    C
	hasText       bool
	hasBackground bool
	underline     DecorationColor[C]
	strikethrough DecorationColor[C]
}

// NewMonoTextStyle creates a style drawing glyphs of f in textColor.
func NewMonoTextStyle[C pixelcolor.Color](f *MonoFont, textColor C) MonoTextStyle[C] {
	return MonoTextStyle[C]{font: f, text: textColor, hasText: true}
}

// Font returns the font.
func (s MonoTextStyle[C]) Font() *MonoFont { return s.font }

// TextColor returns the text color and whether it is set.
func (s MonoTextStyle[C]) TextColor() (C, bool) { return s.text, s.hasText }

// BackgroundColor returns the background color and whether it is set.
func (s MonoTextStyle[C]) BackgroundColor() (C, bool) { return s.background, s.hasBackground }

// Builder returns a builder initialized with the style.
func (s MonoTextStyle[C]) Builder() MonoTextStyleBuilder[C] {
	return MonoTextStyleBuilder[C]{style: s}
}

// LineHeight implements CharacterStyle.
func (s MonoTextStyle[C]) LineHeight() uint32 {
	return s.font.CharacterSize.Height
}

// Metrics returns the vertical metrics of the font.
func (s MonoTextStyle[C]) Metrics() font.Metrics {
	return s.font.Metrics()
}

// baselineOffset returns the distance from the top of a glyph cell to
// the row selected by baseline.
func (s MonoTextStyle[C]) baselineOffset(baseline Baseline) int32 {
	h := int32(s.font.CharacterSize.Height)
	switch baseline {
	case BaselineTop:
		return 0
	case BaselineBottom:
		return max(h-1, 0)
	case BaselineMiddle:
		return max(h-1, 0) / 2
	default:
		return int32(s.font.Baseline)
	}
}

// advance returns the horizontal distance covered by n characters,
// including the spacing after the last one.
func (s MonoTextStyle[C]) advance(n int) int32 {
	return int32(n) * int32(s.font.CharacterSize.Width+s.font.CharacterSpacing)
}

// inkWidth returns the width of n characters without trailing spacing.
func (s MonoTextStyle[C]) inkWidth(n int) uint32 {
	if n == 0 {
		return 0
	}
	return uint32(s.advance(n)) - s.font.CharacterSpacing
}

// MeasureString implements CharacterStyle.
func (s MonoTextStyle[C]) MeasureString(text string, position geometry.Point, baseline Baseline) TextMetrics {
	n := 0
	for range text {
		n++
	}
	top := position.Sub(geometry.Pt(0, s.baselineOffset(baseline)))
	h := s.font.CharacterSize.Height
	if !s.underline.IsNone() {
		h = max(h, s.font.Underline.Offset+s.font.Underline.Height)
	}
	w := s.inkWidth(n)
	if w == 0 {
		h = 0
	}
	return TextMetrics{
		BoundingBox:  geometry.NewRectangle(top, geometry.NewSize(w, h)),
		NextPosition: position.Add(geometry.Pt(s.advance(n), 0)),
	}
}

// DrawString implements CharacterStyle. Glyph pixels are drawn in the text
// color and, when set, the rest of each cell and the spacing between
// characters in the background color.
func (s MonoTextStyle[C]) DrawString(text string, position geometry.Point, baseline Baseline, target draw.DrawTarget[C]) (geometry.Point, error) {
	top := position.Sub(geometry.Pt(0, s.baselineOffset(baseline)))
	cell := s.font.CharacterSize
	spacing := s.font.CharacterSpacing
	at := top
	n := 0
	for _, r := range text {
		if n > 0 && spacing > 0 {
			if s.hasBackground {
				gap := geometry.NewRectangle(at, geometry.NewSize(spacing, cell.Height))
				if err := draw.FillSolid(target, gap, s.background); err != nil {
					return position, err
				}
			}
			at = at.Add(geometry.Pt(int32(spacing), 0))
		}
		if err := s.drawGlyph(r, at, target); err != nil {
			return position, err
		}
		at = at.Add(geometry.Pt(int32(cell.Width), 0))
		n++
	}
	if err := s.drawDecorations(s.inkWidth(n), top, target); err != nil {
		return position, err
	}
	return position.Add(geometry.Pt(s.advance(n), 0)), nil
}

func (s MonoTextStyle[C]) drawGlyph(r rune, at geometry.Point, target draw.DrawTarget[C]) error {
	switch {
	case s.hasText:
		gt := &glyphTarget[C]{parent: target, on: s.text, off: s.background, hasOff: s.hasBackground}
		return s.font.Glyph(r).Draw(draw.Translate[pixelcolor.BinaryColor](gt, at))
	case s.hasBackground:
		return draw.FillSolid(target, geometry.NewRectangle(at, s.font.CharacterSize), s.background)
	}
	return nil
}

// DrawWhitespace implements CharacterStyle.
func (s MonoTextStyle[C]) DrawWhitespace(width uint32, position geometry.Point, baseline Baseline, target draw.DrawTarget[C]) (geometry.Point, error) {
	top := position.Sub(geometry.Pt(0, s.baselineOffset(baseline)))
	if s.hasBackground && width > 0 {
		area := geometry.NewRectangle(top, geometry.NewSize(width, s.font.CharacterSize.Height))
		if err := draw.FillSolid(target, area, s.background); err != nil {
			return position, err
		}
	}
	if err := s.drawDecorations(width, top, target); err != nil {
		return position, err
	}
	return position.Add(geometry.Pt(int32(width), 0)), nil
}

func (s MonoTextStyle[C]) drawDecorations(width uint32, top geometry.Point, target draw.DrawTarget[C]) error {
	if width == 0 {
		return nil
	}
	lines := []struct {
		color DecorationColor[C]
		dim   DecorationDimensions
	}{
		{s.strikethrough, s.font.Strikethrough},
		{s.underline, s.font.Underline},
	}
	for _, l := range lines {
		c, ok := l.color.resolve(s.text, s.hasText)
		if !ok || l.dim.Height == 0 {
			continue
		}
		area := geometry.NewRectangle(top.Add(geometry.Pt(0, int32(l.dim.Offset))), geometry.NewSize(width, l.dim.Height))
		if err := draw.FillSolid(target, area, c); err != nil {
			return err
		}
	}
	return nil
}

// glyphTarget maps binary glyph pixels to the text and background colors.
// Off pixels are dropped without a background.
type glyphTarget[C pixelcolor.Color] struct {
	parent draw.DrawTarget[C]
	on     C
	off    C
	hasOff bool
}

func (g *glyphTarget[C]) BoundingBox() geometry.Rectangle {
	return g.parent.BoundingBox()
}

func (g *glyphTarget[C]) DrawIter(pixels iter.Seq[draw.Pixel[pixelcolor.BinaryColor]]) error {
	return g.parent.DrawIter(func(yield func(draw.Pixel[C]) bool) {
		for p := range pixels {
			switch {
			case p.Color.IsOn():
				if !yield(draw.NewPixel(p.Point, g.on)) {
					return
				}
			case g.hasOff:
				if !yield(draw.NewPixel(p.Point, g.off)) {
					return
				}
			}
		}
	})
}

func (g *glyphTarget[C]) FillContiguous(area geometry.Rectangle, colors iter.Seq[pixelcolor.BinaryColor]) error {
	if !g.hasOff {
		return g.DrawIter(draw.ContiguousPixels(area, colors))
	}
	return draw.FillContiguous(g.parent, area, func(yield func(C) bool) {
		for c := range colors {
			v := g.off
			if c.IsOn() {
				v = g.on
			}
			if !yield(v) {
				return
			}
		}
	})
}

// MonoTextStyleBuilder builds a MonoTextStyle.
type MonoTextStyleBuilder[C pixelcolor.Color] struct {
	style MonoTextStyle[C]
}

// NewMonoTextStyleBuilder returns a builder for a style using f with no
// colors set.
func NewMonoTextStyleBuilder[C pixelcolor.Color](f *MonoFont) MonoTextStyleBuilder[C] {
	return MonoTextStyleBuilder[C]{style: MonoTextStyle[C]{font: f}}
}

// Font sets the font.
func (b MonoTextStyleBuilder[C]) Font(f *MonoFont) MonoTextStyleBuilder[C] {
	b.style.font = f
	return b
}

// TextColor sets the text color.
func (b MonoTextStyleBuilder[C]) TextColor(c C) MonoTextStyleBuilder[C] {
	b.style.text, b.style.hasText = c, true
	return b
}

// ResetTextColor removes the text color.
func (b MonoTextStyleBuilder[C]) ResetTextColor() MonoTextStyleBuilder[C] {
	var zero C
	b.style.text, b.style.hasText = zero, false
	return b
}

// BackgroundColor sets the background color.
func (b MonoTextStyleBuilder[C]) BackgroundColor(c C) MonoTextStyleBuilder[C] {
	b.style.background, b.style.hasBackground = c, true
	return b
}

// ResetBackgroundColor removes the background color.
func (b MonoTextStyleBuilder[C]) ResetBackgroundColor() MonoTextStyleBuilder[C] {
	var zero C
	b.style.background, b.style.hasBackground = zero, false
	return b
}

// Underline sets the underline color.
func (b MonoTextStyleBuilder[C]) Underline(d DecorationColor[C]) MonoTextStyleBuilder[C] {
	b.style.underline = d
	return b
}

// Strikethrough sets the strikethrough color.
func (b MonoTextStyleBuilder[C]) Strikethrough(d DecorationColor[C]) MonoTextStyleBuilder[C] {
	b.style.strikethrough = d
	return b
}

// Build returns the style.
func (b MonoTextStyleBuilder[C]) Build() MonoTextStyle[C] {
	return b.style
}
