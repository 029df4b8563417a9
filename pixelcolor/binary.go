package pixelcolor

// BinaryColor is a two-valued color for monochrome displays.
type BinaryColor uint8

const (
	// BinaryOff is the inactive state.
	BinaryOff BinaryColor = 0
	// BinaryOn is the active state.
	BinaryOn BinaryColor = 1
)

// BinaryFromBool returns BinaryOn for true.
func BinaryFromBool(on bool) BinaryColor {
	if on {
		return BinaryOn
	}
	return BinaryOff
}

// IsOn reports whether the color is BinaryOn.
func (c BinaryColor) IsOn() bool { return c != BinaryOff }

// IsOff reports whether the color is BinaryOff.
func (c BinaryColor) IsOff() bool { return c == BinaryOff }

// Invert returns the opposite state.
func (c BinaryColor) Invert() BinaryColor { return BinaryFromBool(c.IsOff()) }

// Raw returns 0 or 1.
func (c BinaryColor) Raw() uint8 {
	if c.IsOn() {
		return 1
	}
	return 0
}

// String returns "On" or "Off".
func (c BinaryColor) String() string {
	if c.IsOn() {
		return "On"
	}
	return "Off"
}

// ToBeBytes returns the raw value as a single byte.
func (c BinaryColor) ToBeBytes() [1]byte { return [1]byte{c.Raw()} }

// ToLeBytes returns the raw value as a single byte.
func (c BinaryColor) ToLeBytes() [1]byte { return [1]byte{c.Raw()} }

// BitsPerPixel implements Color.
func (BinaryColor) BitsPerPixel() int { return 1 }

// RawBits implements Color.
func (c BinaryColor) RawBits() uint32 { return uint32(c.Raw()) }

// RGBA implements color.Color: Off is black, On is white.
func (c BinaryColor) RGBA() (r, g, b, a uint32) { return stdRGBA(c.canonical()) }

func (c BinaryColor) canonical() canon {
	if c.IsOn() {
		return canon{kind: kindBinary, r: 255, g: 255, b: 255}
	}
	return canon{kind: kindBinary}
}
