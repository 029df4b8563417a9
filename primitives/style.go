package primitives

import "github.com/gogpu/tinygfx/pixelcolor"

// StrokeAlignment places the stroke relative to the outline of a closed
// shape.
type StrokeAlignment uint8

const (
	// StrokeCenter centers the stroke on the outline. For odd widths the
	// extra pixel is on the inside.
	StrokeCenter StrokeAlignment = iota
	// StrokeInside draws the stroke inside the outline.
	StrokeInside
	// StrokeOutside draws the stroke outside the outline.
	StrokeOutside
)

// String returns the alignment name.
func (a StrokeAlignment) String() string {
	switch a {
	case StrokeCenter:
		return "Center"
	case StrokeInside:
		return "Inside"
	case StrokeOutside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// PrimitiveStyle describes how a primitive is drawn. The zero value is
// transparent.
type PrimitiveStyle[C pixelcolor.Color] struct {
	fill, stroke       C
	hasFill, hasStroke bool
	strokeWidth        uint32
	alignment          StrokeAlignment
}

// NewFill returns a style that only fills.
func NewFill[C pixelcolor.Color](fill C) PrimitiveStyle[C] {
	return PrimitiveStyle[C]{fill: fill, hasFill: true}
}

// NewStroke returns a style that only strokes, centered on the outline.
func NewStroke[C pixelcolor.Color](stroke C, width uint32) PrimitiveStyle[C] {
	return PrimitiveStyle[C]{stroke: stroke, hasStroke: true, strokeWidth: width}
}

// Fill returns the fill color, if any.
func (s PrimitiveStyle[C]) Fill() (C, bool) { return s.fill, s.hasFill }

// Stroke returns the stroke color, if any.
func (s PrimitiveStyle[C]) Stroke() (C, bool) { return s.stroke, s.hasStroke }

// StrokeWidth returns the stroke width in pixels.
func (s PrimitiveStyle[C]) StrokeWidth() uint32 { return s.strokeWidth }

// StrokeAlignment returns the stroke alignment.
func (s PrimitiveStyle[C]) StrokeAlignment() StrokeAlignment { return s.alignment }

// IsTransparent reports whether drawing with the style produces no pixels.
func (s PrimitiveStyle[C]) IsTransparent() bool {
	_, stroked := s.visibleStroke()
	return !stroked && !s.hasFill
}

// InsideStrokeWidth returns the part of the stroke width inside the
// outline.
func (s PrimitiveStyle[C]) InsideStrokeWidth() uint32 {
	switch s.alignment {
	case StrokeInside:
		return s.strokeWidth
	case StrokeOutside:
		return 0
	default:
		return s.strokeWidth - s.strokeWidth/2
	}
}

// OutsideStrokeWidth returns the part of the stroke width outside the
// outline.
func (s PrimitiveStyle[C]) OutsideStrokeWidth() uint32 {
	switch s.alignment {
	case StrokeInside:
		return 0
	case StrokeOutside:
		return s.strokeWidth
	default:
		return s.strokeWidth / 2
	}
}

// visibleStroke returns the stroke color when the stroke draws pixels.
func (s PrimitiveStyle[C]) visibleStroke() (C, bool) {
	return s.stroke, s.hasStroke && s.strokeWidth > 0
}

// StyleBuilder builds a PrimitiveStyle. The stroke width defaults to 0,
// so a stroke color alone draws nothing.
type StyleBuilder[C pixelcolor.Color] struct {
	style PrimitiveStyle[C]
}

// NewStyleBuilder returns a builder for a transparent style.
func NewStyleBuilder[C pixelcolor.Color]() StyleBuilder[C] {
	return StyleBuilder[C]{}
}

// FillColor sets the fill color.
func (b StyleBuilder[C]) FillColor(c C) StyleBuilder[C] {
	b.style.fill, b.style.hasFill = c, true
	return b
}

// ResetFillColor removes the fill color.
func (b StyleBuilder[C]) ResetFillColor() StyleBuilder[C] {
	var zero C
	b.style.fill, b.style.hasFill = zero, false
	return b
}

// StrokeColor sets the stroke color.
func (b StyleBuilder[C]) StrokeColor(c C) StyleBuilder[C] {
	b.style.stroke, b.style.hasStroke = c, true
	return b
}

// ResetStrokeColor removes the stroke color.
func (b StyleBuilder[C]) ResetStrokeColor() StyleBuilder[C] {
	var zero C
	b.style.stroke, b.style.hasStroke = zero, false
	return b
}

// StrokeWidth sets the stroke width.
func (b StyleBuilder[C]) StrokeWidth(w uint32) StyleBuilder[C] {
	b.style.strokeWidth = w
	return b
}

// StrokeAlignment sets the stroke alignment.
func (b StyleBuilder[C]) StrokeAlignment(a StrokeAlignment) StyleBuilder[C] {
	b.style.alignment = a
	return b
}

// Build returns the style.
func (b StyleBuilder[C]) Build() PrimitiveStyle[C] {
	return b.style
}

// Builder returns a builder initialized with the style.
func (s PrimitiveStyle[C]) Builder() StyleBuilder[C] {
	return StyleBuilder[C]{style: s}
}
