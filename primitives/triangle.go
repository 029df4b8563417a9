package primitives

import (
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/internal/raster"
)

// Triangle is a triangle given by its three vertices in any order.
type Triangle struct {
	Vertices [3]geometry.Point
}

// NewTriangle creates a triangle.
func NewTriangle(a, b, c geometry.Point) Triangle {
	return Triangle{Vertices: [3]geometry.Point{a, b, c}}
}

// BoundingBox returns the rectangle enclosing the vertices.
func (t Triangle) BoundingBox() geometry.Rectangle {
	v := t.Vertices
	return geometry.RectangleWithCorners(
		v[0].ComponentMin(v[1]).ComponentMin(v[2]),
		v[0].ComponentMax(v[1]).ComponentMax(v[2]),
	)
}

// IsCollinear reports whether the vertices lie on one line. Such a
// triangle has no interior.
func (t Triangle) IsCollinear() bool {
	return raster.Orientation(t.Vertices[0], t.Vertices[1], t.Vertices[2]) == 0
}

// Contains reports whether p lies inside the triangle or on its edges.
func (t Triangle) Contains(p geometry.Point) bool {
	return raster.Contains(t.fillShape(0), p)
}

// Points returns an iterator over the pixels inside the triangle.
func (t Triangle) Points() *PointIterator {
	return shapePoints(t.fillShape(0))
}

// Translate returns the triangle moved by offset.
func (t Triangle) Translate(by geometry.Point) Triangle {
	for i := range t.Vertices {
		t.Vertices[i] = t.Vertices[i].Add(by)
	}
	return t
}

func (Triangle) empty() bool          { return false }
func (Triangle) strokeGrowsBox() bool { return false }

func (t Triangle) strokeShape(width, inside, outside uint32) raster.Shape {
	return raster.TriangleStroke(t.Vertices[0], t.Vertices[1], t.Vertices[2], width, inside, outside)
}

// fillShape covers the whole triangle for every alignment. Inside strokes
// are drawn over it.
func (t Triangle) fillShape(uint32) raster.Shape {
	return raster.TriangleFill(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}
