package primitives

import (
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/internal/raster"
)

// Line is a straight line segment between two points, both included.
type Line struct {
	Start, End geometry.Point
}

// NewLine creates a line.
func NewLine(start, end geometry.Point) Line {
	return Line{Start: start, End: end}
}

// BoundingBox returns the rectangle spanned by the end points.
func (l Line) BoundingBox() geometry.Rectangle {
	return geometry.RectangleWithCorners(l.Start, l.End)
}

// Delta returns End - Start.
func (l Line) Delta() geometry.Point {
	return l.End.Sub(l.Start)
}

// Midpoint returns the point halfway between the end points, rounded
// towards Start.
func (l Line) Midpoint() geometry.Point {
	return l.Start.Add(l.Delta().Div(2))
}

// Points returns the one pixel wide line from Start to End, in that order.
func (l Line) Points() *PointIterator {
	return &PointIterator{line: raster.NewLinePoints(l.Start, l.End)}
}

// Translate returns the line moved by offset.
func (l Line) Translate(by geometry.Point) Line {
	return Line{Start: l.Start.Add(by), End: l.End.Add(by)}
}

func (Line) empty() bool          { return false }
func (Line) strokeGrowsBox() bool { return false }

// strokeShape ignores the alignment: a line has no inside.
func (l Line) strokeShape(width, _, _ uint32) raster.Shape {
	return raster.Line(l.Start, l.End, width)
}

func (Line) fillShape(uint32) raster.Shape { return nil }

// Polyline is an open path through a list of vertices. The vertex slice is
// borrowed, not copied.
type Polyline struct {
	Vertices []geometry.Point
	offset   geometry.Point
}

// NewPolyline creates a path through vertices.
func NewPolyline(vertices []geometry.Point) Polyline {
	return Polyline{Vertices: vertices}
}

// vertex returns vertex i with the translation applied.
func (p Polyline) vertex(i int) geometry.Point {
	return p.Vertices[i].Add(p.offset)
}

// BoundingBox returns the rectangle enclosing all vertices. Paths with
// fewer than two vertices have a zero-sized box.
func (p Polyline) BoundingBox() geometry.Rectangle {
	switch len(p.Vertices) {
	case 0:
		return geometry.Rectangle{TopLeft: p.offset}
	case 1:
		return geometry.Rectangle{TopLeft: p.vertex(0)}
	}
	tl, br := p.vertex(0), p.vertex(0)
	for i := range p.Vertices[1:] {
		v := p.vertex(i + 1)
		tl, br = tl.ComponentMin(v), br.ComponentMax(v)
	}
	return geometry.RectangleWithCorners(tl, br)
}

// Points returns the pixels of the one pixel wide path in row-major order.
// Pixels where segments meet or cross appear once.
func (p Polyline) Points() *PointIterator {
	return shapePoints(p.strokeShape(1, 0, 0))
}

// Translate returns the path moved by offset. The vertex slice is shared.
func (p Polyline) Translate(by geometry.Point) Polyline {
	p.offset = p.offset.Add(by)
	return p
}

func (p Polyline) empty() bool        { return len(p.Vertices) < 2 }
func (Polyline) strokeGrowsBox() bool { return false }

func (p Polyline) strokeShape(width, _, _ uint32) raster.Shape {
	return raster.Polyline(p.Vertices, p.offset, width)
}

func (Polyline) fillShape(uint32) raster.Shape { return nil }
