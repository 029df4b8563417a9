package bitmap

import (
	"image"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// ImageDrawable is an image anchored at the origin.
type ImageDrawable[C pixelcolor.Color] interface {
	geometry.OriginDimensions

	// Draw draws the whole image with its top-left corner at the origin.
	Draw(target draw.DrawTarget[C]) error

	// DrawSubImage draws the part of the image inside area with the area's
	// top-left corner at the origin.
	DrawSubImage(target draw.DrawTarget[C], area geometry.Rectangle) error
}

// drawSubImage draws area of img by shifting and clipping the target and
// drawing the whole image into that view.
func drawSubImage[C pixelcolor.Color](img ImageDrawable[C], target draw.DrawTarget[C], area geometry.Rectangle) error {
	area = area.Intersection(geometry.OriginBox(img))
	if area.IsZeroSized() {
		return nil
	}
	view := draw.Clip[C](draw.Translate(target, area.TopLeft.Neg()), area)
	return img.Draw(view)
}

// Image is an ImageDrawable placed at a position.
type Image[C pixelcolor.Color] struct {
	source   ImageDrawable[C]
	position geometry.Point
}

// NewImage places source with its top-left corner at position.
func NewImage[C pixelcolor.Color](source ImageDrawable[C], position geometry.Point) Image[C] {
	return Image[C]{source: source, position: position}
}

// NewImageWithCenter places source with its center at center.
func NewImageWithCenter[C pixelcolor.Color](source ImageDrawable[C], center geometry.Point) Image[C] {
	r := geometry.RectangleWithCenter(center, source.Size())
	return Image[C]{source: source, position: r.TopLeft}
}

// BoundingBox returns the area covered by the image.
func (i Image[C]) BoundingBox() geometry.Rectangle {
	return geometry.NewRectangle(i.position, i.source.Size())
}

// Translate returns the image moved by offset.
func (i Image[C]) Translate(by geometry.Point) Image[C] {
	i.position = i.position.Add(by)
	return i
}

// Draw draws the image at its position.
func (i Image[C]) Draw(target draw.DrawTarget[C]) error {
	return i.source.Draw(draw.Translate(target, i.position))
}

// SubImage is a rectangular window of another ImageDrawable.
type SubImage[C pixelcolor.Color] struct {
	parent ImageDrawable[C]
	area   geometry.Rectangle
}

// NewSubImage returns the part of parent inside area. The area is clipped
// to the parent.
func NewSubImage[C pixelcolor.Color](parent ImageDrawable[C], area geometry.Rectangle) *SubImage[C] {
	return &SubImage[C]{parent: parent, area: area.Intersection(geometry.OriginBox(parent))}
}

// Size returns the size of the window.
func (s *SubImage[C]) Size() geometry.Size {
	return s.area.Size
}

// Draw draws the window with its top-left corner at the origin.
func (s *SubImage[C]) Draw(target draw.DrawTarget[C]) error {
	return s.parent.DrawSubImage(target, s.area)
}

// DrawSubImage draws a part of the window.
func (s *SubImage[C]) DrawSubImage(target draw.DrawTarget[C], area geometry.Rectangle) error {
	area = area.Intersection(geometry.OriginBox(s))
	if area.IsZeroSized() {
		return nil
	}
	return s.parent.DrawSubImage(target, area.Translate(s.area.TopLeft))
}

// StdImage adapts an image.Image. Colors are converted with
// pixelcolor.FromStd when drawn.
type StdImage[C pixelcolor.Color] struct {
	img image.Image
}

// FromImage adapts a decoded standard library image.
func FromImage[C pixelcolor.Color](img image.Image) *StdImage[C] {
	return &StdImage[C]{img: img}
}

// Size returns the image size.
func (s *StdImage[C]) Size() geometry.Size {
	b := s.img.Bounds()
	return geometry.NewSize(uint32(b.Dx()), uint32(b.Dy()))
}

// Pixel returns the color at p relative to the image's top-left corner.
func (s *StdImage[C]) Pixel(p geometry.Point) (C, bool) {
	if !geometry.OriginBox(s).Contains(p) {
		var zero C
		return zero, false
	}
	o := s.img.Bounds().Min
	return pixelcolor.FromStd[C](s.img.At(o.X+int(p.X), o.Y+int(p.Y))), true
}

// Draw draws the image with its top-left corner at the origin.
func (s *StdImage[C]) Draw(target draw.DrawTarget[C]) error {
	b := s.img.Bounds()
	colors := func(yield func(C) bool) {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if !yield(pixelcolor.FromStd[C](s.img.At(x, y))) {
					return
				}
			}
		}
	}
	return draw.FillContiguous(target, geometry.OriginBox(s), colors)
}

// DrawSubImage draws a part of the image.
func (s *StdImage[C]) DrawSubImage(target draw.DrawTarget[C], area geometry.Rectangle) error {
	return drawSubImage[C](s, target, area)
}
