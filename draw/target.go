package draw

import (
	"iter"

	"github.com/gogpu/tinygfx"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// Pixel is a point with a color.
type Pixel[C pixelcolor.Color] struct {
	Point geometry.Point
	Color C
}

// NewPixel creates a pixel.
func NewPixel[C pixelcolor.Color](p geometry.Point, c C) Pixel[C] {
	return Pixel[C]{Point: p, Color: c}
}

// DrawTarget is a device or buffer that accepts colored pixels.
//
// DrawIter draws the pixels in the order they are supplied. It must accept
// an empty sequence. Pixels outside the target's bounding box are the
// target's responsibility: they are usually discarded.
type DrawTarget[C pixelcolor.Color] interface {
	geometry.Dimensions
	DrawIter(pixels iter.Seq[Pixel[C]]) error
}

// ContiguousFiller is implemented by targets with a faster path for
// filling a rectangle from a row-major color stream.
type ContiguousFiller[C pixelcolor.Color] interface {
	FillContiguous(area geometry.Rectangle, colors iter.Seq[C]) error
}

// SolidFiller is implemented by targets with a faster path for filling a
// rectangle with a single color.
type SolidFiller[C pixelcolor.Color] interface {
	FillSolid(area geometry.Rectangle, color C) error
}

// Clearer is implemented by targets that can fill their whole area at
// once.
type Clearer[C pixelcolor.Color] interface {
	Clear(color C) error
}

// Drawable is anything that can be drawn into a target.
type Drawable[C pixelcolor.Color] interface {
	Draw(target DrawTarget[C]) error
}

// DrawAll draws each drawable in turn and stops at the first error.
func DrawAll[C pixelcolor.Color](target DrawTarget[C], drawables ...Drawable[C]) error {
	for _, d := range drawables {
		if err := d.Draw(target); err != nil {
			return err
		}
	}
	return nil
}

// FillContiguous fills area with colors in row-major order.
//
// The stream is expected to yield exactly area.Width*area.Height colors. A
// shorter stream stops the fill at its end; surplus colors are ignored.
func FillContiguous[C pixelcolor.Color](target DrawTarget[C], area geometry.Rectangle, colors iter.Seq[C]) error {
	if f, ok := target.(ContiguousFiller[C]); ok {
		return f.FillContiguous(area, colors)
	}
	return target.DrawIter(ContiguousPixels(area, colors))
}

// FillSolid fills area with a single color.
func FillSolid[C pixelcolor.Color](target DrawTarget[C], area geometry.Rectangle, color C) error {
	if f, ok := target.(SolidFiller[C]); ok {
		return f.FillSolid(area, color)
	}
	return FillContiguous(target, area, Repeat(color, area.Size.Area()))
}

// Clear fills the whole bounding box of the target with a single color.
func Clear[C pixelcolor.Color](target DrawTarget[C], color C) error {
	if c, ok := target.(Clearer[C]); ok {
		return c.Clear(color)
	}
	return FillSolid(target, target.BoundingBox(), color)
}

// ContiguousPixels pairs the points of area in row-major order with the
// colors of a stream. The sequence ends with whichever runs out first.
func ContiguousPixels[C pixelcolor.Color](area geometry.Rectangle, colors iter.Seq[C]) iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		points := area.Points()
		total := area.Size.Area()
		var n uint64
		for c := range colors {
			p, ok := points.Next()
			if !ok {
				return
			}
			n++
			if !yield(Pixel[C]{Point: p, Color: c}) {
				return
			}
		}
		if n < total {
			tinygfx.Logger().Debug("draw: short color stream",
				"area", area.String(), "want", total, "got", n)
		}
	}
}

// Repeat returns a stream yielding color n times.
func Repeat[C pixelcolor.Color](color C, n uint64) iter.Seq[C] {
	return func(yield func(C) bool) {
		for i := uint64(0); i < n; i++ {
			if !yield(color) {
				return
			}
		}
	}
}

// Pixels adapts a slice of pixels into a stream.
func Pixels[C pixelcolor.Color](pixels ...Pixel[C]) iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		for _, p := range pixels {
			if !yield(p) {
				return
			}
		}
	}
}
