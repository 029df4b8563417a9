package geometry

import (
	"fmt"
	"math"
)

// Size is an unsigned 2D extent.
//
// All arithmetic saturates: results are clamped to [0, math.MaxUint32]
// instead of wrapping around.
type Size struct {
	Width, Height uint32
}

// NewSize creates a size.
func NewSize(width, height uint32) Size {
	return Size{Width: width, Height: height}
}

// NewSizeEqual creates a size with equal width and height.
func NewSizeEqual(value uint32) Size {
	return Size{Width: value, Height: value}
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero reports whether the width or height is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Area returns width * height.
func (s Size) Area() uint64 {
	return uint64(s.Width) * uint64(s.Height)
}

// Add returns the saturating sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: satAdd(s.Width, o.Width), Height: satAdd(s.Height, o.Height)}
}

// Sub returns the saturating difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{Width: satSub(s.Width, o.Width), Height: satSub(s.Height, o.Height)}
}

// Mul returns the size scaled by a scalar, saturating on overflow.
func (s Size) Mul(v uint32) Size {
	return Size{Width: satMul(s.Width, v), Height: satMul(s.Height, v)}
}

// Div returns the size divided by a scalar. Division by zero returns the
// zero size.
func (s Size) Div(v uint32) Size {
	if v == 0 {
		return Size{}
	}
	return Size{Width: s.Width / v, Height: s.Height / v}
}

// ComponentMin returns the component-wise minimum.
func (s Size) ComponentMin(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// ComponentMax returns the component-wise maximum.
func (s Size) ComponentMax(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// ComponentMul returns the component-wise saturating product.
func (s Size) ComponentMul(o Size) Size {
	return Size{Width: satMul(s.Width, o.Width), Height: satMul(s.Height, o.Height)}
}

// ComponentDiv returns the component-wise quotient; zero divisors yield zero.
func (s Size) ComponentDiv(o Size) Size {
	var r Size
	if o.Width != 0 {
		r.Width = s.Width / o.Width
	}
	if o.Height != 0 {
		r.Height = s.Height / o.Height
	}
	return r
}

// Point converts the size into a point, clamping to math.MaxInt32.
func (s Size) Point() Point {
	return Point{X: clampToI32(s.Width), Y: clampToI32(s.Height)}
}

// centerOffset is the offset from the top-left corner to the center pixel.
func (s Size) centerOffset() Point {
	return s.Sub(NewSizeEqual(1)).Div(2).Point()
}

func satAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func satSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

func satMul(a, b uint32) uint32 {
	r := uint64(a) * uint64(b)
	if r > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(r)
}

func clampToI32(v uint32) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
