package geometry

import "fmt"

// Point represents a signed 2D integer coordinate or vector.
type Point struct {
	X, Y int32
}

// NewPoint creates a point.
func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Zero returns the origin.
func Zero() Point {
	return Point{}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddSize translates the point by a size.
func (p Point) AddSize(s Size) Point {
	return Point{X: p.X + int32(s.Width), Y: p.Y + int32(s.Height)}
}

// SubSize translates the point by a negated size.
func (p Point) SubSize(s Size) Point {
	return Point{X: p.X - int32(s.Width), Y: p.Y - int32(s.Height)}
}

// Neg returns the negated vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s int32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar, truncating toward zero.
// Division by zero returns the zero point.
func (p Point) Div(s int32) Point {
	if s == 0 {
		return Point{}
	}
	return Point{X: p.X / s, Y: p.Y / s}
}

// ComponentMin returns the component-wise minimum of two points.
func (p Point) ComponentMin(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// ComponentMax returns the component-wise maximum of two points.
func (p Point) ComponentMax(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// ComponentMul returns the component-wise product of two points.
func (p Point) ComponentMul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// ComponentDiv returns the component-wise quotient of two points.
// A zero divisor component yields zero for that component.
func (p Point) ComponentDiv(q Point) Point {
	var r Point
	if q.X != 0 {
		r.X = p.X / q.X
	}
	if q.Y != 0 {
		r.Y = p.Y / q.Y
	}
	return r
}

// Abs returns the point with both components made non-negative.
func (p Point) Abs() Point {
	return Point{X: abs32(p.X), Y: abs32(p.Y)}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}

// Determinant returns the 2D cross product p.X*q.Y - p.Y*q.X.
func (p Point) Determinant(q Point) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() int64 {
	return p.Dot(p)
}

// Rotate90 returns the vector rotated by 90 degrees clockwise on screen.
func (p Point) Rotate90() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Size converts the point into a size. Negative components become zero.
func (p Point) Size() Size {
	return Size{Width: uint32(max(p.X, 0)), Height: uint32(max(p.Y, 0))}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
