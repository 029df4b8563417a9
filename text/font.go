package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tinygfx"
	"github.com/gogpu/tinygfx/bitmap"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// glyphsPerRow is the atlas width in glyphs used by FromBasicFont.
const glyphsPerRow = 16

// DecorationDimensions positions a decoration line inside a glyph cell.
type DecorationDimensions struct {
	// Offset is the first row of the decoration relative to the top of
	// the cell.
	Offset uint32
	// Height is the line thickness in pixels.
	Height uint32
}

// MonoFont is a monospaced bitmap font.
//
// Glyphs are stored left to right, top to bottom in Image, each occupying
// a CharacterSize cell. The number of glyphs per atlas row is the image
// width divided by the cell width.
type MonoFont struct {
	Image            *bitmap.Raw[pixelcolor.BinaryColor]
	CharacterSize    geometry.Size
	CharacterSpacing uint32
	// Baseline is the row of the baseline relative to the top of the cell.
	Baseline      uint32
	Underline     DecorationDimensions
	Strikethrough DecorationDimensions
	GlyphMapping  GlyphMapping
}

// Font7x13 is a font with 6x13 glyphs and one pixel spacing, built from
// basicfont.Face7x13. It covers Latin-1, Latin Extended-A and common
// symbols.
var Font7x13 = mustFromBasicFont(basicfont.Face7x13)

func mustFromBasicFont(face *basicfont.Face) *MonoFont {
	f, err := FromBasicFont(face)
	if err != nil {
		panic(err)
	}
	return f
}

// FromBasicFont builds a MonoFont from a fixed bitmap face. Pixels with at
// least half coverage are set. Characters the face does not cover map to
// its U+FFFD glyph, or to the first glyph when there is none.
func FromBasicFont(face *basicfont.Face) (*MonoFont, error) {
	count := 0
	for _, rg := range face.Ranges {
		count += max(int(rg.High-rg.Low), 0)
	}
	if count == 0 {
		return nil, ErrNoGlyphs
	}

	cell := geometry.NewSize(uint32(face.Width), uint32(face.Ascent+face.Descent))
	rows := (count + glyphsPerRow - 1) / glyphsPerRow
	atlas := geometry.NewSize(cell.Width*glyphsPerRow, cell.Height*uint32(rows))
	set := make([]bool, int(atlas.Width)*int(atlas.Height))

	mapping := &rangeMapping{}
	index := 0
	for _, rg := range face.Ranges {
		if rg.High <= rg.Low {
			continue
		}
		mapping.ranges = append(mapping.ranges, glyphRange{low: rg.Low, high: rg.High, offset: index})
		for r := rg.Low; r < rg.High; r++ {
			ox := (index % glyphsPerRow) * int(cell.Width)
			oy := (index / glyphsPerRow) * int(cell.Height)
			dr, mask, mp, _, ok := face.Glyph(fixed.P(0, face.Ascent), r)
			if ok {
				for y := dr.Min.Y; y < dr.Max.Y; y++ {
					for x := dr.Min.X; x < dr.Max.X; x++ {
						if x < 0 || y < 0 || x >= int(cell.Width) || y >= int(cell.Height) {
							continue
						}
						_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
						if a >= 0x8000 {
							set[(oy+y)*int(atlas.Width)+ox+x] = true
						}
					}
				}
			}
			index++
		}
	}
	mapping.replacement = mapping.Index('\ufffd')
	if mapping.replacement >= count {
		mapping.replacement = 0
	}

	data := bitmap.Pack(atlas, bitmap.BigEndian, func(p geometry.Point) pixelcolor.BinaryColor {
		return pixelcolor.BinaryFromBool(set[int(p.Y)*int(atlas.Width)+int(p.X)])
	})
	tinygfx.Logger().Debug("text: built font from basic face",
		"glyphs", count, "cell", cell.String(), "atlas", atlas.String())

	ascent := uint32(face.Ascent)
	return &MonoFont{
		Image:            bitmap.NewRaw[pixelcolor.BinaryColor](data, atlas.Width),
		CharacterSize:    cell,
		CharacterSpacing: uint32(max(face.Advance-face.Width, 0)),
		Baseline:         ascent - 1,
		Underline:        DecorationDimensions{Offset: ascent + 1, Height: 1},
		Strikethrough:    DecorationDimensions{Offset: cell.Height / 2, Height: 1},
		GlyphMapping:     mapping,
	}, nil
}

// glyphCapacity returns the number of glyph cells in the atlas.
func (f *MonoFont) glyphCapacity() (perRow, total int) {
	size := f.Image.Size()
	if f.CharacterSize.IsZero() {
		return 0, 0
	}
	perRow = int(size.Width / f.CharacterSize.Width)
	return perRow, perRow * int(size.Height/f.CharacterSize.Height)
}

// Glyph returns the atlas image of the glyph for r.
func (f *MonoFont) Glyph(r rune) *bitmap.SubImage[pixelcolor.BinaryColor] {
	perRow, total := f.glyphCapacity()
	index := f.GlyphMapping.Index(r)
	if index < 0 || index >= total {
		index = 0
	}
	var area geometry.Rectangle
	if total > 0 {
		area = geometry.NewRectangle(
			geometry.Pt(int32(index%perRow)*int32(f.CharacterSize.Width), int32(index/perRow)*int32(f.CharacterSize.Height)),
			f.CharacterSize,
		)
	}
	return bitmap.NewSubImage[pixelcolor.BinaryColor](f.Image, area)
}

// Metrics returns the vertical font metrics in whole pixels.
func (f *MonoFont) Metrics() font.Metrics {
	h := int(f.CharacterSize.Height)
	ascent := int(f.Baseline) + 1
	return font.Metrics{
		Height:    fixed.I(h),
		Ascent:    fixed.I(ascent),
		Descent:   fixed.I(h - ascent),
		CapHeight: fixed.I(ascent),
	}
}
