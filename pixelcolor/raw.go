package pixelcolor

// FromRawBits creates a color of type C from a raw storage value. Bits
// beyond the type's width are ignored.
func FromRawBits[C Color](v uint32) C {
	var out C
	switch p := any(&out).(type) {
	case *BinaryColor:
		*p = BinaryFromBool(v&1 != 0)
	case *Gray2:
		*p = NewGray2(uint8(v))
	case *Gray4:
		*p = NewGray4(uint8(v))
	case *Gray8:
		*p = NewGray8(uint8(v))
	case *Rgb555:
		*p = Rgb555FromRaw(uint16(v))
	case *Bgr555:
		*p = Bgr555FromRaw(uint16(v))
	case *Rgb565:
		*p = Rgb565FromRaw(uint16(v))
	case *Bgr565:
		*p = Bgr565FromRaw(uint16(v))
	case *Rgb666:
		*p = Rgb666FromRaw(v)
	case *Bgr666:
		*p = Bgr666FromRaw(v)
	case *Rgb888:
		*p = Rgb888FromRaw(v)
	case *Bgr888:
		*p = Bgr888FromRaw(v)
	}
	return out
}

// BitsPerPixel returns the raw bit width of color type C.
func BitsPerPixel[C Color]() int {
	var zero C
	return zero.BitsPerPixel()
}

// StorageBits returns the raw bit width of C rounded up to the storage
// granularity used by packed images: 1, 2, 4, 8, 16 or 24 bits.
func StorageBits[C Color]() int {
	switch bpp := BitsPerPixel[C](); {
	case bpp <= 8:
		return bpp
	case bpp <= 16:
		return 16
	default:
		return 24
	}
}
