package primitives

import (
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/internal/raster"
)

// CornerRadii holds the horizontal and vertical radius of each corner of a
// rounded rectangle.
type CornerRadii struct {
	TopLeft     geometry.Size
	TopRight    geometry.Size
	BottomRight geometry.Size
	BottomLeft  geometry.Size
}

// NewCornerRadii returns radii with the same value for every corner.
func NewCornerRadii(radius geometry.Size) CornerRadii {
	return CornerRadii{TopLeft: radius, TopRight: radius, BottomRight: radius, BottomLeft: radius}
}

// ConfineTo clamps each radius to half of the adjacent sides of size.
func (c CornerRadii) ConfineTo(size geometry.Size) CornerRadii {
	half := size.Div(2)
	return CornerRadii{
		TopLeft:     c.TopLeft.ComponentMin(half),
		TopRight:    c.TopRight.ComponentMin(half),
		BottomRight: c.BottomRight.ComponentMin(half),
		BottomLeft:  c.BottomLeft.ComponentMin(half),
	}
}

func (c CornerRadii) array() [4]geometry.Size {
	var a [4]geometry.Size
	a[raster.TopLeft] = c.TopLeft
	a[raster.TopRight] = c.TopRight
	a[raster.BottomRight] = c.BottomRight
	a[raster.BottomLeft] = c.BottomLeft
	return a
}

// RoundedRectangle is a rectangle with elliptical corners. Radii larger
// than half of a side are clamped when drawing.
type RoundedRectangle struct {
	Rectangle geometry.Rectangle
	Corners   CornerRadii
}

// NewRoundedRectangle creates a rounded rectangle.
func NewRoundedRectangle(r geometry.Rectangle, corners CornerRadii) RoundedRectangle {
	return RoundedRectangle{Rectangle: r, Corners: corners}
}

// RoundedRectangleWithEqualCorners creates a rounded rectangle with the
// same radius at every corner.
func RoundedRectangleWithEqualCorners(r geometry.Rectangle, radius geometry.Size) RoundedRectangle {
	return NewRoundedRectangle(r, NewCornerRadii(radius))
}

// ConfinedCorners returns the radii after clamping.
func (r RoundedRectangle) ConfinedCorners() CornerRadii {
	return r.Corners.ConfineTo(r.Rectangle.Size)
}

// BoundingBox returns the rectangle.
func (r RoundedRectangle) BoundingBox() geometry.Rectangle {
	return r.Rectangle
}

// Contains reports whether p lies inside the rounded rectangle.
func (r RoundedRectangle) Contains(p geometry.Point) bool {
	return raster.Contains(r.fillShape(0), p)
}

// Points returns an iterator over the pixels inside the rounded rectangle.
func (r RoundedRectangle) Points() *PointIterator {
	return shapePoints(r.fillShape(0))
}

// Translate returns the rounded rectangle moved by offset.
func (r RoundedRectangle) Translate(by geometry.Point) RoundedRectangle {
	r.Rectangle = r.Rectangle.Translate(by)
	return r
}

func (r RoundedRectangle) empty() bool        { return r.Rectangle.IsZeroSized() }
func (RoundedRectangle) strokeGrowsBox() bool { return true }

func (r RoundedRectangle) strokeShape(_, inside, outside uint32) raster.Shape {
	return raster.RoundedRectStroke(r.Rectangle, r.Corners.array(), inside, outside)
}

func (r RoundedRectangle) fillShape(inside uint32) raster.Shape {
	return raster.RoundedRectFill(r.Rectangle, r.Corners.array(), inside)
}
