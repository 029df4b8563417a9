package pixelcolor

import "fmt"

// RGB color types store their channels packed into a single raw integer.
// The type name gives the channel order from the most significant bits
// down: Rgb565 keeps red in bits 15..11, green in 10..5 and blue in 4..0,
// while Bgr565 stores blue in the high bits.

// Rgb555 is a 15-bit RGB color with 5/5/5 bits per channel.
type Rgb555 struct{ raw uint16 }

// NewRgb555 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewRgb555(r, g, b uint8) Rgb555 {
	return Rgb555{raw: uint16(r&0x1f)<<10 | uint16(g&0x1f)<<5 | uint16(b&0x1f)}
}

// Rgb555FromRaw creates a color from its raw storage value.
func Rgb555FromRaw(raw uint16) Rgb555 {
	return Rgb555{raw: raw & 0x7fff}
}

// R returns the red channel (5 bits).
func (c Rgb555) R() uint8 { return uint8(c.raw >> 10 & 0x1f) }

// G returns the green channel (5 bits).
func (c Rgb555) G() uint8 { return uint8(c.raw >> 5 & 0x1f) }

// B returns the blue channel (5 bits).
func (c Rgb555) B() uint8 { return uint8(c.raw & 0x1f) }

// Raw returns the raw storage value.
func (c Rgb555) Raw() uint16 { return c.raw }

func (c Rgb555) String() string {
	return fmt.Sprintf("Rgb555(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Rgb555) ToBeBytes() [2]byte { return [2]byte{byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Rgb555) ToLeBytes() [2]byte { return [2]byte{byte(c.raw), byte(c.raw >> 8)} }

func (Rgb555) BitsPerPixel() int { return 15 }

func (c Rgb555) RawBits() uint32 { return uint32(c.raw) }

func (c Rgb555) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Rgb555) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 5), g: widen(c.G(), 5), b: widen(c.B(), 5)}
}

// Bgr555 is a 15-bit BGR color with 5/5/5 bits per channel.
type Bgr555 struct{ raw uint16 }

// NewBgr555 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewBgr555(r, g, b uint8) Bgr555 {
	return Bgr555{raw: uint16(r&0x1f) | uint16(g&0x1f)<<5 | uint16(b&0x1f)<<10}
}

// Bgr555FromRaw creates a color from its raw storage value.
func Bgr555FromRaw(raw uint16) Bgr555 {
	return Bgr555{raw: raw & 0x7fff}
}

// R returns the red channel (5 bits).
func (c Bgr555) R() uint8 { return uint8(c.raw & 0x1f) }

// G returns the green channel (5 bits).
func (c Bgr555) G() uint8 { return uint8(c.raw >> 5 & 0x1f) }

// B returns the blue channel (5 bits).
func (c Bgr555) B() uint8 { return uint8(c.raw >> 10 & 0x1f) }

// Raw returns the raw storage value.
func (c Bgr555) Raw() uint16 { return c.raw }

func (c Bgr555) String() string {
	return fmt.Sprintf("Bgr555(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Bgr555) ToBeBytes() [2]byte { return [2]byte{byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Bgr555) ToLeBytes() [2]byte { return [2]byte{byte(c.raw), byte(c.raw >> 8)} }

func (Bgr555) BitsPerPixel() int { return 15 }

func (c Bgr555) RawBits() uint32 { return uint32(c.raw) }

func (c Bgr555) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Bgr555) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 5), g: widen(c.G(), 5), b: widen(c.B(), 5)}
}

// Rgb565 is a 16-bit RGB color with 5/6/5 bits per channel.
type Rgb565 struct{ raw uint16 }

// NewRgb565 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewRgb565(r, g, b uint8) Rgb565 {
	return Rgb565{raw: uint16(r&0x1f)<<11 | uint16(g&0x3f)<<5 | uint16(b&0x1f)}
}

// Rgb565FromRaw creates a color from its raw storage value.
func Rgb565FromRaw(raw uint16) Rgb565 {
	return Rgb565{raw: raw & 0xffff}
}

// R returns the red channel (5 bits).
func (c Rgb565) R() uint8 { return uint8(c.raw >> 11 & 0x1f) }

// G returns the green channel (6 bits).
func (c Rgb565) G() uint8 { return uint8(c.raw >> 5 & 0x3f) }

// B returns the blue channel (5 bits).
func (c Rgb565) B() uint8 { return uint8(c.raw & 0x1f) }

// Raw returns the raw storage value.
func (c Rgb565) Raw() uint16 { return c.raw }

func (c Rgb565) String() string {
	return fmt.Sprintf("Rgb565(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Rgb565) ToBeBytes() [2]byte { return [2]byte{byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Rgb565) ToLeBytes() [2]byte { return [2]byte{byte(c.raw), byte(c.raw >> 8)} }

func (Rgb565) BitsPerPixel() int { return 16 }

func (c Rgb565) RawBits() uint32 { return uint32(c.raw) }

func (c Rgb565) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Rgb565) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 5), g: widen(c.G(), 6), b: widen(c.B(), 5)}
}

// Bgr565 is a 16-bit BGR color with 5/6/5 bits per channel.
type Bgr565 struct{ raw uint16 }

// NewBgr565 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewBgr565(r, g, b uint8) Bgr565 {
	return Bgr565{raw: uint16(r&0x1f) | uint16(g&0x3f)<<5 | uint16(b&0x1f)<<11}
}

// Bgr565FromRaw creates a color from its raw storage value.
func Bgr565FromRaw(raw uint16) Bgr565 {
	return Bgr565{raw: raw & 0xffff}
}

// R returns the red channel (5 bits).
func (c Bgr565) R() uint8 { return uint8(c.raw & 0x1f) }

// G returns the green channel (6 bits).
func (c Bgr565) G() uint8 { return uint8(c.raw >> 5 & 0x3f) }

// B returns the blue channel (5 bits).
func (c Bgr565) B() uint8 { return uint8(c.raw >> 11 & 0x1f) }

// Raw returns the raw storage value.
func (c Bgr565) Raw() uint16 { return c.raw }

func (c Bgr565) String() string {
	return fmt.Sprintf("Bgr565(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Bgr565) ToBeBytes() [2]byte { return [2]byte{byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Bgr565) ToLeBytes() [2]byte { return [2]byte{byte(c.raw), byte(c.raw >> 8)} }

func (Bgr565) BitsPerPixel() int { return 16 }

func (c Bgr565) RawBits() uint32 { return uint32(c.raw) }

func (c Bgr565) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Bgr565) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 5), g: widen(c.G(), 6), b: widen(c.B(), 5)}
}

// Rgb666 is a 18-bit RGB color with 6/6/6 bits per channel.
type Rgb666 struct{ raw uint32 }

// NewRgb666 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewRgb666(r, g, b uint8) Rgb666 {
	return Rgb666{raw: uint32(r&0x3f)<<12 | uint32(g&0x3f)<<6 | uint32(b&0x3f)}
}

// Rgb666FromRaw creates a color from its raw storage value.
func Rgb666FromRaw(raw uint32) Rgb666 {
	return Rgb666{raw: raw & 0x3ffff}
}

// R returns the red channel (6 bits).
func (c Rgb666) R() uint8 { return uint8(c.raw >> 12 & 0x3f) }

// G returns the green channel (6 bits).
func (c Rgb666) G() uint8 { return uint8(c.raw >> 6 & 0x3f) }

// B returns the blue channel (6 bits).
func (c Rgb666) B() uint8 { return uint8(c.raw & 0x3f) }

// Raw returns the raw storage value.
func (c Rgb666) Raw() uint32 { return c.raw }

func (c Rgb666) String() string {
	return fmt.Sprintf("Rgb666(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Rgb666) ToBeBytes() [3]byte { return [3]byte{byte(c.raw >> 16), byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Rgb666) ToLeBytes() [3]byte { return [3]byte{byte(c.raw), byte(c.raw >> 8), byte(c.raw >> 16)} }

func (Rgb666) BitsPerPixel() int { return 18 }

func (c Rgb666) RawBits() uint32 { return uint32(c.raw) }

func (c Rgb666) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Rgb666) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 6), g: widen(c.G(), 6), b: widen(c.B(), 6)}
}

// Bgr666 is a 18-bit BGR color with 6/6/6 bits per channel.
type Bgr666 struct{ raw uint32 }

// NewBgr666 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewBgr666(r, g, b uint8) Bgr666 {
	return Bgr666{raw: uint32(r&0x3f) | uint32(g&0x3f)<<6 | uint32(b&0x3f)<<12}
}

// Bgr666FromRaw creates a color from its raw storage value.
func Bgr666FromRaw(raw uint32) Bgr666 {
	return Bgr666{raw: raw & 0x3ffff}
}

// R returns the red channel (6 bits).
func (c Bgr666) R() uint8 { return uint8(c.raw & 0x3f) }

// G returns the green channel (6 bits).
func (c Bgr666) G() uint8 { return uint8(c.raw >> 6 & 0x3f) }

// B returns the blue channel (6 bits).
func (c Bgr666) B() uint8 { return uint8(c.raw >> 12 & 0x3f) }

// Raw returns the raw storage value.
func (c Bgr666) Raw() uint32 { return c.raw }

func (c Bgr666) String() string {
	return fmt.Sprintf("Bgr666(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Bgr666) ToBeBytes() [3]byte { return [3]byte{byte(c.raw >> 16), byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Bgr666) ToLeBytes() [3]byte { return [3]byte{byte(c.raw), byte(c.raw >> 8), byte(c.raw >> 16)} }

func (Bgr666) BitsPerPixel() int { return 18 }

func (c Bgr666) RawBits() uint32 { return uint32(c.raw) }

func (c Bgr666) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Bgr666) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 6), g: widen(c.G(), 6), b: widen(c.B(), 6)}
}

// Rgb888 is a 24-bit RGB color with 8/8/8 bits per channel.
type Rgb888 struct{ raw uint32 }

// NewRgb888 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewRgb888(r, g, b uint8) Rgb888 {
	return Rgb888{raw: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// Rgb888FromRaw creates a color from its raw storage value.
func Rgb888FromRaw(raw uint32) Rgb888 {
	return Rgb888{raw: raw & 0xffffff}
}

// R returns the red channel (8 bits).
func (c Rgb888) R() uint8 { return uint8(c.raw >> 16 & 0xff) }

// G returns the green channel (8 bits).
func (c Rgb888) G() uint8 { return uint8(c.raw >> 8 & 0xff) }

// B returns the blue channel (8 bits).
func (c Rgb888) B() uint8 { return uint8(c.raw & 0xff) }

// Raw returns the raw storage value.
func (c Rgb888) Raw() uint32 { return c.raw }

func (c Rgb888) String() string {
	return fmt.Sprintf("Rgb888(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Rgb888) ToBeBytes() [3]byte { return [3]byte{byte(c.raw >> 16), byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Rgb888) ToLeBytes() [3]byte { return [3]byte{byte(c.raw), byte(c.raw >> 8), byte(c.raw >> 16)} }

func (Rgb888) BitsPerPixel() int { return 24 }

func (c Rgb888) RawBits() uint32 { return uint32(c.raw) }

func (c Rgb888) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Rgb888) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 8), g: widen(c.G(), 8), b: widen(c.B(), 8)}
}

// Bgr888 is a 24-bit BGR color with 8/8/8 bits per channel.
type Bgr888 struct{ raw uint32 }

// NewBgr888 creates a color from channel values in the type's bit widths.
// Excess high bits are ignored.
func NewBgr888(r, g, b uint8) Bgr888 {
	return Bgr888{raw: uint32(r) | uint32(g)<<8 | uint32(b)<<16}
}

// Bgr888FromRaw creates a color from its raw storage value.
func Bgr888FromRaw(raw uint32) Bgr888 {
	return Bgr888{raw: raw & 0xffffff}
}

// R returns the red channel (8 bits).
func (c Bgr888) R() uint8 { return uint8(c.raw & 0xff) }

// G returns the green channel (8 bits).
func (c Bgr888) G() uint8 { return uint8(c.raw >> 8 & 0xff) }

// B returns the blue channel (8 bits).
func (c Bgr888) B() uint8 { return uint8(c.raw >> 16 & 0xff) }

// Raw returns the raw storage value.
func (c Bgr888) Raw() uint32 { return c.raw }

func (c Bgr888) String() string {
	return fmt.Sprintf("Bgr888(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ToBeBytes returns the raw value in big-endian byte order.
func (c Bgr888) ToBeBytes() [3]byte { return [3]byte{byte(c.raw >> 16), byte(c.raw >> 8), byte(c.raw)} }

// ToLeBytes returns the raw value in little-endian byte order.
func (c Bgr888) ToLeBytes() [3]byte { return [3]byte{byte(c.raw), byte(c.raw >> 8), byte(c.raw >> 16)} }

func (Bgr888) BitsPerPixel() int { return 24 }

func (c Bgr888) RawBits() uint32 { return uint32(c.raw) }

func (c Bgr888) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c Bgr888) canonical() canon {
	return canon{kind: kindRGB, r: widen(c.R(), 8), g: widen(c.G(), 8), b: widen(c.B(), 8)}
}
