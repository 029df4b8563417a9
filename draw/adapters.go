package draw

import (
	"iter"

	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// Translated is a view of a target with all coordinates shifted by an
// offset.
type Translated[C pixelcolor.Color] struct {
	parent DrawTarget[C]
	offset geometry.Point
}

// Translate returns a view of target that adds offset to every drawn
// coordinate.
func Translate[C pixelcolor.Color](target DrawTarget[C], offset geometry.Point) *Translated[C] {
	return &Translated[C]{parent: target, offset: offset}
}

// BoundingBox returns the parent box in the translated coordinate system.
func (t *Translated[C]) BoundingBox() geometry.Rectangle {
	return t.parent.BoundingBox().Translate(t.offset.Neg())
}

// DrawIter draws the pixels shifted by the offset.
func (t *Translated[C]) DrawIter(pixels iter.Seq[Pixel[C]]) error {
	return t.parent.DrawIter(translatePixels(pixels, t.offset))
}

// FillContiguous forwards the fill to the parent.
func (t *Translated[C]) FillContiguous(area geometry.Rectangle, colors iter.Seq[C]) error {
	return FillContiguous(t.parent, area.Translate(t.offset), colors)
}

// FillSolid forwards the fill to the parent.
func (t *Translated[C]) FillSolid(area geometry.Rectangle, color C) error {
	return FillSolid(t.parent, area.Translate(t.offset), color)
}

// Clear clears the parent.
func (t *Translated[C]) Clear(color C) error {
	return Clear(t.parent, color)
}

// Cropped is a view of a rectangular area of a target. The area's
// top-left corner becomes the origin of the view and pixels outside the
// area are discarded.
type Cropped[C pixelcolor.Color] struct {
	parent DrawTarget[C]
	area   geometry.Rectangle
}

// Crop returns a view of the area of target.
func Crop[C pixelcolor.Color](target DrawTarget[C], area geometry.Rectangle) *Cropped[C] {
	return &Cropped[C]{parent: target, area: area}
}

// BoundingBox returns a box at the origin with the size of the area.
func (c *Cropped[C]) BoundingBox() geometry.Rectangle {
	return geometry.Rectangle{Size: c.area.Size}
}

// DrawIter draws the pixels that fall inside the area.
func (c *Cropped[C]) DrawIter(pixels iter.Seq[Pixel[C]]) error {
	return c.parent.DrawIter(clipPixels(translatePixels(pixels, c.area.TopLeft), c.area))
}

// FillContiguous forwards the fill when it lies completely inside the
// area. Partially visible fills are drawn pixel by pixel.
func (c *Cropped[C]) FillContiguous(area geometry.Rectangle, colors iter.Seq[C]) error {
	moved := area.Translate(c.area.TopLeft)
	if moved.Intersection(c.area) == moved {
		return FillContiguous(c.parent, moved, colors)
	}
	return c.parent.DrawIter(clipPixels(ContiguousPixels(moved, colors), c.area))
}

// FillSolid fills the visible part of area.
func (c *Cropped[C]) FillSolid(area geometry.Rectangle, color C) error {
	visible := area.Translate(c.area.TopLeft).Intersection(c.area)
	if visible.IsZeroSized() {
		return nil
	}
	return FillSolid(c.parent, visible, color)
}

// Clear fills the whole area.
func (c *Cropped[C]) Clear(color C) error {
	return FillSolid(c.parent, c.area, color)
}

// Clipped is a view of a target that discards pixels outside an area.
// Coordinates are not changed.
type Clipped[C pixelcolor.Color] struct {
	parent DrawTarget[C]
	area   geometry.Rectangle
}

// Clip returns a view of target restricted to the part of area that
// overlaps the target.
func Clip[C pixelcolor.Color](target DrawTarget[C], area geometry.Rectangle) *Clipped[C] {
	return &Clipped[C]{parent: target, area: area.Intersection(target.BoundingBox())}
}

// BoundingBox returns the clipping area.
func (c *Clipped[C]) BoundingBox() geometry.Rectangle {
	return c.area
}

// DrawIter draws the pixels inside the clipping area.
func (c *Clipped[C]) DrawIter(pixels iter.Seq[Pixel[C]]) error {
	return c.parent.DrawIter(clipPixels(pixels, c.area))
}

// FillContiguous forwards the fill when it lies completely inside the
// clipping area.
func (c *Clipped[C]) FillContiguous(area geometry.Rectangle, colors iter.Seq[C]) error {
	if area.Intersection(c.area) == area {
		return FillContiguous(c.parent, area, colors)
	}
	return c.parent.DrawIter(clipPixels(ContiguousPixels(area, colors), c.area))
}

// FillSolid fills the visible part of area.
func (c *Clipped[C]) FillSolid(area geometry.Rectangle, color C) error {
	visible := area.Intersection(c.area)
	if visible.IsZeroSized() {
		return nil
	}
	return FillSolid(c.parent, visible, color)
}

// Clear fills the clipping area.
func (c *Clipped[C]) Clear(color C) error {
	return c.FillSolid(c.area, color)
}

// ColorConverted is a view of a target that accepts another color type and
// converts every color with pixelcolor.Convert.
type ColorConverted[From, To pixelcolor.Color] struct {
	parent DrawTarget[To]
}

// ConvertColors returns a view of target accepting colors of type From.
func ConvertColors[From, To pixelcolor.Color](target DrawTarget[To]) *ColorConverted[From, To] {
	return &ColorConverted[From, To]{parent: target}
}

// BoundingBox returns the parent's bounding box.
func (c *ColorConverted[From, To]) BoundingBox() geometry.Rectangle {
	return c.parent.BoundingBox()
}

// DrawIter draws the pixels with converted colors.
func (c *ColorConverted[From, To]) DrawIter(pixels iter.Seq[Pixel[From]]) error {
	return c.parent.DrawIter(func(yield func(Pixel[To]) bool) {
		for p := range pixels {
			if !yield(Pixel[To]{Point: p.Point, Color: pixelcolor.Convert[To](p.Color)}) {
				return
			}
		}
	})
}

// FillContiguous forwards the fill with converted colors.
func (c *ColorConverted[From, To]) FillContiguous(area geometry.Rectangle, colors iter.Seq[From]) error {
	return FillContiguous(c.parent, area, func(yield func(To) bool) {
		for col := range colors {
			if !yield(pixelcolor.Convert[To](col)) {
				return
			}
		}
	})
}

// FillSolid forwards the fill with a converted color.
func (c *ColorConverted[From, To]) FillSolid(area geometry.Rectangle, color From) error {
	return FillSolid(c.parent, area, pixelcolor.Convert[To](color))
}

// Clear clears the parent with a converted color.
func (c *ColorConverted[From, To]) Clear(color From) error {
	return Clear(c.parent, pixelcolor.Convert[To](color))
}

func translatePixels[C pixelcolor.Color](pixels iter.Seq[Pixel[C]], offset geometry.Point) iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		for p := range pixels {
			p.Point = p.Point.Add(offset)
			if !yield(p) {
				return
			}
		}
	}
}

func clipPixels[C pixelcolor.Color](pixels iter.Seq[Pixel[C]], area geometry.Rectangle) iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		for p := range pixels {
			if !area.Contains(p.Point) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
