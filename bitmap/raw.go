package bitmap

import (
	"iter"

	"github.com/gogpu/tinygfx"
	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// ByteOrder selects the byte order of multi-byte pixel formats.
type ByteOrder uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

// String returns the byte order name.
func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LittleEndian"
	}
	return "BigEndian"
}

// RawOption configures a Raw image.
type RawOption func(*rawOptions)

type rawOptions struct {
	order ByteOrder
}

// WithByteOrder sets the byte order of 16 and 24 bit formats.
func WithByteOrder(order ByteOrder) RawOption {
	return func(o *rawOptions) { o.order = order }
}

// Raw is an image stored as packed pixel data.
type Raw[C pixelcolor.Color] struct {
	data   []byte
	size   geometry.Size
	stride int // bytes per row
	bits   int
	order  ByteOrder
}

// NewRaw creates an image of the given width over data. The height is the
// number of complete rows in data; trailing bytes are ignored.
func NewRaw[C pixelcolor.Color](data []byte, width uint32, opts ...RawOption) *Raw[C] {
	var o rawOptions
	for _, opt := range opts {
		opt(&o)
	}
	bits := pixelcolor.StorageBits[C]()
	stride := rowBytes(width, bits)
	r := &Raw[C]{data: data, stride: stride, bits: bits, order: o.order}
	if stride == 0 {
		return r
	}
	height := len(data) / stride
	if rest := len(data) % stride; rest != 0 {
		tinygfx.Logger().Debug("bitmap: trailing bytes ignored",
			"width", width, "stride", stride, "trailing", rest)
	}
	r.size = geometry.NewSize(width, uint32(height))
	return r
}

func rowBytes(width uint32, bits int) int {
	return (int(width)*bits + 7) / 8
}

// Size returns the image size.
func (r *Raw[C]) Size() geometry.Size {
	return r.size
}

// BoundingBox returns the image area at the origin.
func (r *Raw[C]) BoundingBox() geometry.Rectangle {
	return geometry.OriginBox(r)
}

// Data returns the packed pixel data.
func (r *Raw[C]) Data() []byte {
	return r.data
}

// ByteOrder returns the byte order of the data.
func (r *Raw[C]) ByteOrder() ByteOrder {
	return r.order
}

// Pixel returns the color at p. It reports false for points outside the
// image.
func (r *Raw[C]) Pixel(p geometry.Point) (C, bool) {
	if !r.BoundingBox().Contains(p) {
		var zero C
		return zero, false
	}
	return r.at(int(p.X), int(p.Y)), true
}

func (r *Raw[C]) at(x, y int) C {
	row := r.data[y*r.stride : (y+1)*r.stride]
	var v uint32
	switch r.bits {
	case 1, 2, 4:
		bit := x * r.bits
		shift := 8 - r.bits - bit%8
		v = uint32(row[bit/8]>>shift) & (1<<r.bits - 1)
	case 8:
		v = uint32(row[x])
	case 16:
		b := row[x*2 : x*2+2]
		if r.order == LittleEndian {
			v = uint32(b[1])<<8 | uint32(b[0])
		} else {
			v = uint32(b[0])<<8 | uint32(b[1])
		}
	default:
		b := row[x*3 : x*3+3]
		if r.order == LittleEndian {
			v = uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
		} else {
			v = uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
		}
	}
	return pixelcolor.FromRawBits[C](v)
}

// colors yields the pixels of area, which must lie inside the image, in
// row-major order.
func (r *Raw[C]) colors(area geometry.Rectangle) iter.Seq[C] {
	return func(yield func(C) bool) {
		x0, x1 := area.Columns()
		y0, y1 := area.Rows()
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if !yield(r.at(int(x), int(y))) {
					return
				}
			}
		}
	}
}

// Draw draws the whole image with its top-left corner at the origin.
func (r *Raw[C]) Draw(target draw.DrawTarget[C]) error {
	return draw.FillContiguous(target, r.BoundingBox(), r.colors(r.BoundingBox()))
}

// DrawSubImage draws the part of the image inside area with the area's
// top-left corner at the origin. The area is clipped to the image.
func (r *Raw[C]) DrawSubImage(target draw.DrawTarget[C], area geometry.Rectangle) error {
	area = area.Intersection(r.BoundingBox())
	if area.IsZeroSized() {
		return nil
	}
	return draw.FillContiguous(target, geometry.Rectangle{Size: area.Size}, r.colors(area))
}

// Pack encodes size.Width*size.Height colors returned by at into the
// packed layout read by NewRaw.
func Pack[C pixelcolor.Color](size geometry.Size, order ByteOrder, at func(geometry.Point) C) []byte {
	bits := pixelcolor.StorageBits[C]()
	stride := rowBytes(size.Width, bits)
	data := make([]byte, stride*int(size.Height))
	for y := range int(size.Height) {
		row := data[y*stride : (y+1)*stride]
		for x := range int(size.Width) {
			v := at(geometry.Pt(int32(x), int32(y))).RawBits()
			switch bits {
			case 1, 2, 4:
				bit := x * bits
				shift := 8 - bits - bit%8
				row[bit/8] |= byte(v&(1<<bits-1)) << shift
			case 8:
				row[x] = byte(v)
			case 16:
				if order == LittleEndian {
					row[x*2], row[x*2+1] = byte(v), byte(v>>8)
				} else {
					row[x*2], row[x*2+1] = byte(v>>8), byte(v)
				}
			default:
				if order == LittleEndian {
					row[x*3], row[x*3+1], row[x*3+2] = byte(v), byte(v>>8), byte(v>>16)
				} else {
					row[x*3], row[x*3+1], row[x*3+2] = byte(v>>16), byte(v>>8), byte(v)
				}
			}
		}
	}
	return data
}
