package primitives

import (
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/internal/raster"
)

// Circle is a circle given by the top-left corner of its bounding box and
// its diameter.
type Circle struct {
	TopLeft  geometry.Point
	Diameter uint32
}

// NewCircle creates a circle.
func NewCircle(topLeft geometry.Point, diameter uint32) Circle {
	return Circle{TopLeft: topLeft, Diameter: diameter}
}

// CircleWithCenter creates a circle around center. For even diameters
// center is the top-left of the four center pixels.
func CircleWithCenter(center geometry.Point, diameter uint32) Circle {
	r := geometry.RectangleWithCenter(center, geometry.NewSizeEqual(diameter))
	return Circle{TopLeft: r.TopLeft, Diameter: diameter}
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() geometry.Rectangle {
	return geometry.NewRectangle(c.TopLeft, geometry.NewSizeEqual(c.Diameter))
}

// Center returns the center pixel.
func (c Circle) Center() geometry.Point {
	return c.BoundingBox().Center()
}

// Contains reports whether p lies inside the circle.
func (c Circle) Contains(p geometry.Point) bool {
	return raster.Contains(c.fillShape(0), p)
}

// Points returns an iterator over the pixels inside the circle.
func (c Circle) Points() *PointIterator {
	return shapePoints(c.fillShape(0))
}

// Translate returns the circle moved by offset.
func (c Circle) Translate(by geometry.Point) Circle {
	c.TopLeft = c.TopLeft.Add(by)
	return c
}

func (c Circle) empty() bool        { return c.Diameter == 0 }
func (Circle) strokeGrowsBox() bool { return true }

func (c Circle) strokeShape(_, inside, outside uint32) raster.Shape {
	return raster.CircleStroke(c.TopLeft, c.Diameter, inside, outside)
}

func (c Circle) fillShape(inside uint32) raster.Shape {
	return raster.CircleFill(c.TopLeft, c.Diameter, inside)
}

// Ellipse is an axis-aligned ellipse given by its bounding box.
type Ellipse struct {
	TopLeft geometry.Point
	Size    geometry.Size
}

// NewEllipse creates an ellipse.
func NewEllipse(topLeft geometry.Point, size geometry.Size) Ellipse {
	return Ellipse{TopLeft: topLeft, Size: size}
}

// EllipseWithCenter creates an ellipse around center.
func EllipseWithCenter(center geometry.Point, size geometry.Size) Ellipse {
	r := geometry.RectangleWithCenter(center, size)
	return Ellipse{TopLeft: r.TopLeft, Size: size}
}

// BoundingBox returns the rectangle enclosing the ellipse.
func (e Ellipse) BoundingBox() geometry.Rectangle {
	return geometry.NewRectangle(e.TopLeft, e.Size)
}

// Center returns the center pixel.
func (e Ellipse) Center() geometry.Point {
	return e.BoundingBox().Center()
}

// Contains reports whether p lies inside the ellipse.
func (e Ellipse) Contains(p geometry.Point) bool {
	return raster.Contains(e.fillShape(0), p)
}

// Points returns an iterator over the pixels inside the ellipse.
func (e Ellipse) Points() *PointIterator {
	return shapePoints(e.fillShape(0))
}

// Translate returns the ellipse moved by offset.
func (e Ellipse) Translate(by geometry.Point) Ellipse {
	e.TopLeft = e.TopLeft.Add(by)
	return e
}

func (e Ellipse) empty() bool        { return e.Size.IsZero() }
func (Ellipse) strokeGrowsBox() bool { return true }

func (e Ellipse) strokeShape(_, inside, outside uint32) raster.Shape {
	return raster.EllipseStroke(e.BoundingBox(), inside, outside)
}

func (e Ellipse) fillShape(inside uint32) raster.Shape {
	return raster.EllipseFill(e.BoundingBox(), inside)
}
