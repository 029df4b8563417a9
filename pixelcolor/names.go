package pixelcolor

// Named colors, converted into any color type. BinaryColor maps every
// non-black color to BinaryOn.

// Black returns black in color type C.
func Black[C Color]() C { return Convert[C](NewRgb888(0, 0, 0)) }

// White returns white in color type C.
func White[C Color]() C { return Convert[C](NewRgb888(255, 255, 255)) }

// Red returns red in color type C.
func Red[C Color]() C { return Convert[C](NewRgb888(255, 0, 0)) }

// Green returns green in color type C.
func Green[C Color]() C { return Convert[C](NewRgb888(0, 255, 0)) }

// Blue returns blue in color type C.
func Blue[C Color]() C { return Convert[C](NewRgb888(0, 0, 255)) }

// Yellow returns yellow in color type C.
func Yellow[C Color]() C { return Convert[C](NewRgb888(255, 255, 0)) }

// Magenta returns magenta in color type C.
func Magenta[C Color]() C { return Convert[C](NewRgb888(255, 0, 255)) }

// Cyan returns cyan in color type C.
func Cyan[C Color]() C { return Convert[C](NewRgb888(0, 255, 255)) }

// Hex parses "RGB" or "RRGGBB" hex notation with an optional leading '#'
// into color type C. It reports false for malformed input.
func Hex[C Color](hex string) (C, bool) {
	var zero C
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return zero, false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return zero, false
		}
	default:
		return zero, false
	}
	return Convert[C](NewRgb888(uint8(r), uint8(g), uint8(b))), true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
