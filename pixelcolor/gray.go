package pixelcolor

import "fmt"

// Gray2 is a 2-bit grayscale color.
type Gray2 struct{ luma uint8 }

// Gray4 is a 4-bit grayscale color.
type Gray4 struct{ luma uint8 }

// Gray8 is an 8-bit grayscale color.
type Gray8 struct{ luma uint8 }

// NewGray2 creates a Gray2 color. Bits above the lowest two are ignored.
func NewGray2(luma uint8) Gray2 { return Gray2{luma: luma & 0x3} }

// NewGray4 creates a Gray4 color. Bits above the lowest four are ignored.
func NewGray4(luma uint8) Gray4 { return Gray4{luma: luma & 0xf} }

// NewGray8 creates a Gray8 color.
func NewGray8(luma uint8) Gray8 { return Gray8{luma: luma} }

// Luma returns the brightness in the type's bit width.
func (c Gray2) Luma() uint8 { return c.luma }

// Luma returns the brightness in the type's bit width.
func (c Gray4) Luma() uint8 { return c.luma }

// Luma returns the brightness.
func (c Gray8) Luma() uint8 { return c.luma }

func (c Gray2) Raw() uint8 { return c.luma }
func (c Gray4) Raw() uint8 { return c.luma }
func (c Gray8) Raw() uint8 { return c.luma }

func (c Gray2) String() string { return fmt.Sprintf("Gray2(%d)", c.luma) }
func (c Gray4) String() string { return fmt.Sprintf("Gray4(%d)", c.luma) }
func (c Gray8) String() string { return fmt.Sprintf("Gray8(%d)", c.luma) }

func (c Gray2) ToBeBytes() [1]byte { return [1]byte{c.luma} }
func (c Gray2) ToLeBytes() [1]byte { return [1]byte{c.luma} }
func (c Gray4) ToBeBytes() [1]byte { return [1]byte{c.luma} }
func (c Gray4) ToLeBytes() [1]byte { return [1]byte{c.luma} }
func (c Gray8) ToBeBytes() [1]byte { return [1]byte{c.luma} }
func (c Gray8) ToLeBytes() [1]byte { return [1]byte{c.luma} }

func (Gray2) BitsPerPixel() int { return 2 }
func (Gray4) BitsPerPixel() int { return 4 }
func (Gray8) BitsPerPixel() int { return 8 }

func (c Gray2) RawBits() uint32 { return uint32(c.luma) }
func (c Gray4) RawBits() uint32 { return uint32(c.luma) }
func (c Gray8) RawBits() uint32 { return uint32(c.luma) }

func (c Gray2) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }
func (c Gray4) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }
func (c Gray8) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Gray2) canonical() canon { return grayCanon(widen(c.luma, 2)) }
func (c Gray4) canonical() canon { return grayCanon(widen(c.luma, 4)) }
func (c Gray8) canonical() canon { return grayCanon(c.luma) }

func grayCanon(l uint8) canon {
	return canon{kind: kindGray, r: l, g: l, b: l}
}
