// Package text draws text with monospaced bitmap fonts.
//
// A MonoFont stores its glyphs in a binary atlas image and maps characters
// to glyph indices with a GlyphMapping. MonoTextStyle combines a font with
// colors and decorations and implements CharacterStyle. Text lays out
// multi-line strings using a TextStyle.
//
// # Example usage
//
//	style := text.NewMonoTextStyle(text.Font7x13, pixelcolor.BinaryOn)
//	t := text.NewText("Hello\nworld", geometry.Pt(10, 20), style)
//	if err := t.Draw(display); err != nil {
//	    return err
//	}
//
// Fonts can be built from the fixed bitmap faces of
// golang.org/x/image/font/basicfont with FromBasicFont. Font7x13 is
// built from basicfont.Face7x13.
package text
