package primitives

import (
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/internal/raster"
)

// Arc is a section of a circle outline.
//
// Angles are measured from the positive x axis. Positive sweeps run
// clockwise on screen, negative sweeps counterclockwise. A sweep of a full
// turn or more draws the whole circle.
type Arc struct {
	TopLeft    geometry.Point
	Diameter   uint32
	AngleStart geometry.Angle
	AngleSweep geometry.Angle
}

// NewArc creates an arc.
func NewArc(topLeft geometry.Point, diameter uint32, start, sweep geometry.Angle) Arc {
	return Arc{TopLeft: topLeft, Diameter: diameter, AngleStart: start, AngleSweep: sweep}
}

// ArcWithCenter creates an arc of the circle around center.
func ArcWithCenter(center geometry.Point, diameter uint32, start, sweep geometry.Angle) Arc {
	c := CircleWithCenter(center, diameter)
	return NewArc(c.TopLeft, diameter, start, sweep)
}

// Circle returns the circle the arc lies on.
func (a Arc) Circle() Circle {
	return NewCircle(a.TopLeft, a.Diameter)
}

// BoundingBox returns the bounding box of the whole circle.
func (a Arc) BoundingBox() geometry.Rectangle {
	return a.Circle().BoundingBox()
}

// Center returns the center pixel.
func (a Arc) Center() geometry.Point {
	return a.Circle().Center()
}

// Points returns the pixels of the one pixel wide arc in row-major order.
func (a Arc) Points() *PointIterator {
	return shapePoints(a.strokeShape(1, 1, 0))
}

// Translate returns the arc moved by offset.
func (a Arc) Translate(by geometry.Point) Arc {
	a.TopLeft = a.TopLeft.Add(by)
	return a
}

func (a Arc) empty() bool        { return a.Diameter == 0 }
func (Arc) strokeGrowsBox() bool { return false }

func (a Arc) strokeShape(_, inside, outside uint32) raster.Shape {
	return raster.ArcStroke(a.TopLeft, a.Diameter, a.AngleStart, a.AngleSweep, inside, outside)
}

func (Arc) fillShape(uint32) raster.Shape { return nil }

// Sector is a pie slice of a circle, using the same angle conventions as
// Arc.
type Sector struct {
	TopLeft    geometry.Point
	Diameter   uint32
	AngleStart geometry.Angle
	AngleSweep geometry.Angle
}

// NewSector creates a sector.
func NewSector(topLeft geometry.Point, diameter uint32, start, sweep geometry.Angle) Sector {
	return Sector{TopLeft: topLeft, Diameter: diameter, AngleStart: start, AngleSweep: sweep}
}

// SectorWithCenter creates a sector of the circle around center.
func SectorWithCenter(center geometry.Point, diameter uint32, start, sweep geometry.Angle) Sector {
	c := CircleWithCenter(center, diameter)
	return NewSector(c.TopLeft, diameter, start, sweep)
}

// Circle returns the circle the sector is cut from.
func (s Sector) Circle() Circle {
	return NewCircle(s.TopLeft, s.Diameter)
}

// BoundingBox returns the bounding box of the whole circle.
func (s Sector) BoundingBox() geometry.Rectangle {
	return s.Circle().BoundingBox()
}

// Center returns the center pixel.
func (s Sector) Center() geometry.Point {
	return s.Circle().Center()
}

// Contains reports whether p lies inside the sector.
func (s Sector) Contains(p geometry.Point) bool {
	return raster.Contains(s.fillShape(0), p)
}

// Points returns an iterator over the pixels inside the sector.
func (s Sector) Points() *PointIterator {
	return shapePoints(s.fillShape(0))
}

// Translate returns the sector moved by offset.
func (s Sector) Translate(by geometry.Point) Sector {
	s.TopLeft = s.TopLeft.Add(by)
	return s
}

func (s Sector) empty() bool        { return s.Diameter == 0 }
func (Sector) strokeGrowsBox() bool { return false }

func (s Sector) strokeShape(width, inside, outside uint32) raster.Shape {
	return raster.SectorStroke(s.TopLeft, s.Diameter, s.AngleStart, s.AngleSweep, width, inside, outside)
}

func (s Sector) fillShape(inside uint32) raster.Shape {
	return raster.SectorFill(s.TopLeft, s.Diameter, s.AngleStart, s.AngleSweep, inside)
}
