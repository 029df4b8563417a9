// Package pixelcolor provides the fixed-width color types used by tinygfx.
//
// Every color is an opaque value stored in the smallest byte-aligned integer
// that holds its bit pattern. Colors convert into each other with Convert:
//
//   - narrowing a channel drops its low bits (8-bit to 5-bit is v >> 3)
//   - widening a channel scales with rounding, so narrow -> wide -> narrow
//     is lossless
//   - RGB to grayscale uses the integer luma (77r + 151g + 28b) >> 8
//   - any non-black grayscale or RGB value becomes BinaryOn
//
// All types implement image/color.Color for interoperability with the
// standard library and with codec packages.
package pixelcolor

import "image/color"

// Color is implemented by the color types of this package. The set of
// implementations is closed.
type Color interface {
	color.Color

	// BitsPerPixel returns the number of significant bits of the raw value.
	BitsPerPixel() int

	// RawBits returns the raw storage value widened to 32 bits.
	RawBits() uint32

	canonical() canon
}

type colorKind uint8

const (
	kindBinary colorKind = iota
	kindGray
	kindRGB
)

// canon is the 8-bit-per-channel pivot every conversion goes through.
// Gray colors use r == g == b.
type canon struct {
	kind    colorKind
	r, g, b uint8
}

func (c canon) luma() uint8 {
	if c.kind != kindRGB {
		return c.r
	}
	return uint8((uint32(c.r)*77 + uint32(c.g)*151 + uint32(c.b)*28) >> 8)
}

func (c canon) isBlack() bool {
	return c.r == 0 && c.g == 0 && c.b == 0
}

// Convert converts a color into another color type.
func Convert[To Color](from Color) To {
	if v, ok := from.(To); ok {
		return v
	}
	var out To
	c := from.canonical()
	switch p := any(&out).(type) {
	case *BinaryColor:
		*p = BinaryFromBool(!c.isBlack())
	case *Gray2:
		*p = Gray2{luma: grayLuma(c, 2)}
	case *Gray4:
		*p = Gray4{luma: grayLuma(c, 4)}
	case *Gray8:
		*p = Gray8{luma: grayLuma(c, 8)}
	case *Rgb555:
		*p = NewRgb555(narrow(c.r, 5), narrow(c.g, 5), narrow(c.b, 5))
	case *Bgr555:
		*p = NewBgr555(narrow(c.r, 5), narrow(c.g, 5), narrow(c.b, 5))
	case *Rgb565:
		*p = NewRgb565(narrow(c.r, 5), narrow(c.g, 6), narrow(c.b, 5))
	case *Bgr565:
		*p = NewBgr565(narrow(c.r, 5), narrow(c.g, 6), narrow(c.b, 5))
	case *Rgb666:
		*p = NewRgb666(narrow(c.r, 6), narrow(c.g, 6), narrow(c.b, 6))
	case *Bgr666:
		*p = NewBgr666(narrow(c.r, 6), narrow(c.g, 6), narrow(c.b, 6))
	case *Rgb888:
		*p = NewRgb888(c.r, c.g, c.b)
	case *Bgr888:
		*p = NewBgr888(c.r, c.g, c.b)
	}
	return out
}

// grayLuma returns the luma of c narrowed to bits. Binary colors map to
// the extremes.
func grayLuma(c canon, bits uint) uint8 {
	if c.kind == kindBinary {
		if c.isBlack() {
			return 0
		}
		return uint8(1<<bits - 1)
	}
	return narrow(c.luma(), bits)
}

// FromStd converts a standard library color. Alpha is ignored: tinygfx
// colors are opaque.
func FromStd[C Color](c color.Color) C {
	if v, ok := c.(C); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Convert[C](NewRgb888(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

// narrow reduces an 8-bit channel to the given number of bits by
// truncation.
func narrow(v uint8, bits uint) uint8 {
	return v >> (8 - bits)
}

// widen scales a channel of the given bit width to 8 bits with rounding.
func widen(v uint8, bits uint) uint8 {
	if bits >= 8 {
		return v
	}
	fromMax := uint32(1)<<bits - 1
	return uint8((uint32(v)*255 + fromMax/2) / fromMax)
}

// stdRGBA expands 8-bit channels to the 16-bit opaque values returned by
// color.Color.RGBA.
func stdRGBA(c canon) (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, 0xffff
}
