package geometry

// Dimensions is implemented by everything that occupies an area: draw
// targets, drawables and primitives.
type Dimensions interface {
	BoundingBox() Rectangle
}

// OriginDimensions is implemented by objects whose bounding box always
// starts at the origin.
type OriginDimensions interface {
	Size() Size
}

// OriginBox returns the bounding box of an object anchored at the origin.
func OriginBox(d OriginDimensions) Rectangle {
	return Rectangle{Size: d.Size()}
}
