package text

import (
	"strings"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// Text is a drawable multi-line string.
//
// Lines are separated by '\n'. The first line is drawn at Position and
// each following line one line height further down. Each line is aligned
// to Position according to TextStyle.Alignment.
type Text[C pixelcolor.Color] struct {
	Text           string
	Position       geometry.Point
	CharacterStyle CharacterStyle[C]
	TextStyle      TextStyle
}

// NewText creates a left-aligned text on the alphabetic baseline.
func NewText[C pixelcolor.Color](text string, position geometry.Point, style CharacterStyle[C]) Text[C] {
	return Text[C]{Text: text, Position: position, CharacterStyle: style}
}

// NewTextWithStyle creates a text with explicit layout properties.
func NewTextWithStyle[C pixelcolor.Color](text string, position geometry.Point, style CharacterStyle[C], textStyle TextStyle) Text[C] {
	return Text[C]{Text: text, Position: position, CharacterStyle: style, TextStyle: textStyle}
}

// Translate returns the text moved by offset.
func (t Text[C]) Translate(by geometry.Point) Text[C] {
	t.Position = t.Position.Add(by)
	return t
}

// lines yields every line with its aligned position.
func (t Text[C]) lines(yield func(line string, pos geometry.Point) bool) {
	spacing := int32(t.TextStyle.LineHeight.ToAbsolute(t.CharacterStyle.LineHeight()))
	pos := t.Position
	for line := range strings.SplitSeq(t.Text, "\n") {
		m := t.CharacterStyle.MeasureString(line, geometry.Zero(), t.TextStyle.Baseline)
		at := pos.Sub(geometry.Pt(t.TextStyle.Alignment.offset(m.BoundingBox.Size.Width), 0))
		if !yield(line, at) {
			return
		}
		pos.Y += spacing
	}
}

// BoundingBox returns the envelope of every line. Empty lines do not
// contribute; an empty text has a zero-sized box at Position.
func (t Text[C]) BoundingBox() geometry.Rectangle {
	var box geometry.Rectangle
	found := false
	for line, pos := range t.lines {
		b := t.CharacterStyle.MeasureString(line, pos, t.TextStyle.Baseline).BoundingBox
		if b.IsZeroSized() {
			continue
		}
		if !found {
			box, found = b, true
			continue
		}
		box = box.Envelope(b)
	}
	if !found {
		return geometry.Rectangle{TopLeft: t.Position}
	}
	return box
}

// Draw draws every line and stops at the first error.
func (t Text[C]) Draw(target draw.DrawTarget[C]) error {
	var err error
	for line, pos := range t.lines {
		if _, err = t.CharacterStyle.DrawString(line, pos, t.TextStyle.Baseline, target); err != nil {
			break
		}
	}
	return err
}
