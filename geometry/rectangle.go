package geometry

import (
	"fmt"
	"iter"
	"math"
)

// Rectangle is an axis-aligned rectangle defined by its top-left corner and
// size.
//
// A rectangle with zero width or height contains no points, but its
// top-left corner is still meaningful: it is translated, anchored and
// envelope-merged like any other rectangle.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

// NewRectangle creates a rectangle.
func NewRectangle(topLeft Point, size Size) Rectangle {
	return Rectangle{TopLeft: topLeft, Size: size}
}

// Rect is a shorthand for NewRectangle with scalar arguments.
func Rect(x, y int32, width, height uint32) Rectangle {
	return Rectangle{TopLeft: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// RectangleWithCorners creates a rectangle from two inclusive corners given
// in any order.
func RectangleWithCorners(a, b Point) Rectangle {
	tl := a.ComponentMin(b)
	br := a.ComponentMax(b)
	return Rectangle{
		TopLeft: tl,
		Size:    Size{Width: uint32(int64(br.X) - int64(tl.X) + 1), Height: uint32(int64(br.Y) - int64(tl.Y) + 1)},
	}
}

// RectangleWithCenter creates a rectangle of the given size whose Center is
// center.
func RectangleWithCenter(center Point, size Size) Rectangle {
	return Rectangle{TopLeft: center.Sub(size.centerOffset()), Size: size}
}

// ZeroRectangle returns the zero-sized rectangle at the origin.
func ZeroRectangle() Rectangle {
	return Rectangle{}
}

// String returns a string representation of the rectangle.
func (r Rectangle) String() string {
	return fmt.Sprintf("%v+%v", r.TopLeft, r.Size)
}

// IsZeroSized reports whether the rectangle has no area.
func (r Rectangle) IsZeroSized() bool {
	return r.Size.IsZero()
}

// BoundingBox returns the rectangle itself.
func (r Rectangle) BoundingBox() Rectangle {
	return r
}

// Center returns the center pixel. For even sizes this is the top-left
// pixel of the four center pixels.
func (r Rectangle) Center() Point {
	return r.TopLeft.Add(r.Size.centerOffset())
}

// Center2x returns the exact center in doubled coordinates.
func (r Rectangle) Center2x() Point {
	return r.TopLeft.Mul(2).Add(r.Size.Sub(NewSizeEqual(1)).Point())
}

// BottomRight returns the inclusive bottom-right corner. It reports false
// for zero-sized rectangles.
func (r Rectangle) BottomRight() (Point, bool) {
	if r.IsZeroSized() {
		return Point{}, false
	}
	return Point{X: lastCoord(r.TopLeft.X, r.Size.Width), Y: lastCoord(r.TopLeft.Y, r.Size.Height)}, true
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return int64(p.X) >= int64(r.TopLeft.X) && int64(p.X) < int64(r.TopLeft.X)+int64(r.Size.Width) &&
		int64(p.Y) >= int64(r.TopLeft.Y) && int64(p.Y) < int64(r.TopLeft.Y)+int64(r.Size.Height)
}

// Translate returns the rectangle moved by the given offset.
func (r Rectangle) Translate(by Point) Rectangle {
	return Rectangle{TopLeft: r.TopLeft.Add(by), Size: r.Size}
}

// Intersection returns the overlapping area of two rectangles.
//
// A zero-sized rectangle that lies inside a non-empty one is returned
// unchanged, so degenerate rectangles keep their position. Disjoint
// rectangles yield the zero rectangle.
func (r Rectangle) Intersection(o Rectangle) Rectangle {
	rbr, rok := r.BottomRight()
	obr, ook := o.BottomRight()
	switch {
	case rok && ook:
		if overlaps(r.TopLeft.X, rbr.X, o.TopLeft.X, obr.X) && overlaps(r.TopLeft.Y, rbr.Y, o.TopLeft.Y, obr.Y) {
			return RectangleWithCorners(r.TopLeft.ComponentMax(o.TopLeft), rbr.ComponentMin(obr))
		}
	case ook:
		if o.Contains(r.TopLeft) {
			return r
		}
	case rok:
		if r.Contains(o.TopLeft) {
			return o
		}
	}
	return ZeroRectangle()
}

// Envelope returns the smallest rectangle containing both rectangles.
// A zero-sized rectangle contributes only its top-left corner.
func (r Rectangle) Envelope(o Rectangle) Rectangle {
	rbr, rok := r.BottomRight()
	obr, ook := o.BottomRight()
	switch {
	case rok && ook:
		return RectangleWithCorners(r.TopLeft.ComponentMin(o.TopLeft), rbr.ComponentMax(obr))
	case rok:
		return RectangleWithCorners(r.TopLeft.ComponentMin(o.TopLeft), rbr.ComponentMax(o.TopLeft))
	case ook:
		return RectangleWithCorners(o.TopLeft.ComponentMin(r.TopLeft), obr.ComponentMax(r.TopLeft))
	default:
		tl := r.TopLeft.ComponentMin(o.TopLeft)
		br := r.TopLeft.ComponentMax(o.TopLeft)
		if tl == br {
			return Rectangle{TopLeft: tl}
		}
		return RectangleWithCorners(tl, br)
	}
}

// Offset grows the rectangle by offset pixels on every side, or shrinks it
// for negative offsets. The center stays in place and sizes saturate at
// zero.
func (r Rectangle) Offset(offset int32) Rectangle {
	var size Size
	if offset >= 0 {
		size = r.Size.Add(NewSizeEqual(satMul(uint32(offset), 2)))
	} else {
		size = r.Size.Sub(NewSizeEqual(satMul(uint32(-int64(offset)), 2)))
	}
	return RectangleWithCenter(r.Center(), size)
}

// Resized returns a rectangle of the given size anchored at the same
// anchor point as r.
func (r Rectangle) Resized(size Size, anchor AnchorPoint) Rectangle {
	p := r.AnchorPoint(anchor)
	out := Rectangle{Size: size}
	return out.Translate(p.Sub(out.AnchorPoint(anchor)))
}

// ResizedWidth changes the width, keeping the horizontal anchor in place.
func (r Rectangle) ResizedWidth(width uint32, anchor AnchorX) Rectangle {
	return r.Resized(Size{Width: width, Height: r.Size.Height}, AnchorPointFromXY(anchor, AnchorYTop))
}

// ResizedHeight changes the height, keeping the vertical anchor in place.
func (r Rectangle) ResizedHeight(height uint32, anchor AnchorY) Rectangle {
	return r.Resized(Size{Width: r.Size.Width, Height: height}, AnchorPointFromXY(AnchorXLeft, anchor))
}

// AnchorPoint returns the point at the given anchor. For zero-sized
// rectangles every anchor is the top-left corner.
func (r Rectangle) AnchorPoint(anchor AnchorPoint) Point {
	x := r.TopLeft.X
	y := r.TopLeft.Y
	w := int32(r.Size.Width)
	h := int32(r.Size.Height)
	switch anchor.X() {
	case AnchorXCenter:
		x += max(w-1, 0) / 2
	case AnchorXRight:
		x += max(w-1, 0)
	}
	switch anchor.Y() {
	case AnchorYCenter:
		y += max(h-1, 0) / 2
	case AnchorYBottom:
		y += max(h-1, 0)
	}
	return Point{X: x, Y: y}
}

// Rows returns the half-open row range [first, end) covered by the
// rectangle. The end saturates at math.MaxInt32.
func (r Rectangle) Rows() (first, end int32) {
	return r.TopLeft.Y, endCoord(r.TopLeft.Y, r.Size.Height)
}

// Columns returns the half-open column range [first, end) covered by the
// rectangle. The end saturates at math.MaxInt32.
func (r Rectangle) Columns() (first, end int32) {
	return r.TopLeft.X, endCoord(r.TopLeft.X, r.Size.Width)
}

// Points returns an iterator over every point of the rectangle in row-major
// order. Points beyond math.MaxInt32 are not produced.
func (r Rectangle) Points() *RectanglePoints {
	it := &RectanglePoints{x0: r.TopLeft.X, x: r.TopLeft.X, y: r.TopLeft.Y, done: r.IsZeroSized()}
	if !it.done {
		it.x1 = lastCoord(r.TopLeft.X, r.Size.Width)
		it.y1 = lastCoord(r.TopLeft.Y, r.Size.Height)
	}
	return it
}

// RectanglePoints iterates the points of a rectangle row by row.
type RectanglePoints struct {
	x0     int32
	x1, y1 int32 // inclusive
	x, y   int32
	done   bool
}

// Next returns the next point, or false once every point was produced.
func (it *RectanglePoints) Next() (Point, bool) {
	if it.done {
		return Point{}, false
	}
	p := Point{X: it.x, Y: it.y}
	switch {
	case it.x < it.x1:
		it.x++
	case it.y < it.y1:
		it.x = it.x0
		it.y++
	default:
		it.done = true
	}
	return p, true
}

// All adapts the iterator for use with range loops.
func (it *RectanglePoints) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// endCoord returns start + n, saturated to the int32 range.
func endCoord(start int32, n uint32) int32 {
	return int32(min(int64(start)+int64(n), math.MaxInt32))
}

// lastCoord returns the last of n > 0 coordinates starting at start,
// saturated to the int32 range.
func lastCoord(start int32, n uint32) int32 {
	return int32(min(int64(start)+int64(n)-1, math.MaxInt32))
}

// overlaps reports whether the inclusive ranges [a0, a1] and [b0, b1] share
// at least one value.
func overlaps(a0, a1, b0, b1 int32) bool {
	return a0 <= b1 && b0 <= a1
}
