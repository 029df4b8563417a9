// Package framebuffer provides an in-memory draw target backed by a slice
// of colors.
package framebuffer

import (
	"image"
	"image/color"
	"iter"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// Option configures a Framebuffer.
type Option[C pixelcolor.Color] func(*Framebuffer[C])

// WithBackground sets the initial color of every pixel.
func WithBackground[C pixelcolor.Color](c C) Option[C] {
	return func(f *Framebuffer[C]) {
		for i := range f.data {
			f.data[i] = c
		}
	}
}

// Framebuffer is a rectangular pixel buffer with its top-left corner at
// the origin. Pixels drawn outside the buffer are discarded.
type Framebuffer[C pixelcolor.Color] struct {
	width  int
	height int
	data   []C // row-major, width*height entries
}

// New creates a framebuffer with the given dimensions.
func New[C pixelcolor.Color](width, height uint32, opts ...Option[C]) *Framebuffer[C] {
	f := &Framebuffer[C]{
		width:  int(width),
		height: int(height),
		data:   make([]C, int(width)*int(height)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Width returns the width of the framebuffer.
func (f *Framebuffer[C]) Width() int {
	return f.width
}

// Height returns the height of the framebuffer.
func (f *Framebuffer[C]) Height() int {
	return f.height
}

// Data returns the pixels in row-major order.
func (f *Framebuffer[C]) Data() []C {
	return f.data
}

// BoundingBox returns the framebuffer area.
func (f *Framebuffer[C]) BoundingBox() geometry.Rectangle {
	return geometry.Rect(0, 0, uint32(f.width), uint32(f.height))
}

func (f *Framebuffer[C]) index(p geometry.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || int(p.X) >= f.width || int(p.Y) >= f.height {
		return 0, false
	}
	return int(p.Y)*f.width + int(p.X), true
}

// SetPixel sets the color of a single pixel.
func (f *Framebuffer[C]) SetPixel(p geometry.Point, c C) {
	if i, ok := f.index(p); ok {
		f.data[i] = c
	}
}

// Pixel returns the color of a single pixel. It reports false for points
// outside the framebuffer.
func (f *Framebuffer[C]) Pixel(p geometry.Point) (C, bool) {
	i, ok := f.index(p)
	if !ok {
		var zero C
		return zero, false
	}
	return f.data[i], true
}

// DrawIter implements draw.DrawTarget.
func (f *Framebuffer[C]) DrawIter(pixels iter.Seq[draw.Pixel[C]]) error {
	for px := range pixels {
		f.SetPixel(px.Point, px.Color)
	}
	return nil
}

// FillContiguous implements draw.ContiguousFiller. Colors for pixels
// outside the framebuffer are consumed and dropped.
func (f *Framebuffer[C]) FillContiguous(area geometry.Rectangle, colors iter.Seq[C]) error {
	points := area.Points()
	for c := range colors {
		p, ok := points.Next()
		if !ok {
			break
		}
		f.SetPixel(p, c)
	}
	return nil
}

// FillSolid implements draw.SolidFiller.
func (f *Framebuffer[C]) FillSolid(area geometry.Rectangle, c C) error {
	area = area.Intersection(f.BoundingBox())
	if area.IsZeroSized() {
		return nil
	}
	x0, x1 := area.Columns()
	y0, y1 := area.Rows()
	for y := y0; y < y1; y++ {
		row := f.data[int(y)*f.width : int(y+1)*f.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
	return nil
}

// Clear implements draw.Clearer.
func (f *Framebuffer[C]) Clear(c C) error {
	for i := range f.data {
		f.data[i] = c
	}
	return nil
}

// Image returns a read-only image.Image view of the framebuffer.
func (f *Framebuffer[C]) Image() image.Image {
	return imageView[C]{f}
}

// ToRGBA converts the framebuffer to an image.RGBA.
func (f *Framebuffer[C]) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, c := range f.data {
		r, g, b, _ := c.RGBA()
		img.Pix[i*4+0] = uint8(r >> 8)
		img.Pix[i*4+1] = uint8(g >> 8)
		img.Pix[i*4+2] = uint8(b >> 8)
		img.Pix[i*4+3] = 0xff
	}
	return img
}

type imageView[C pixelcolor.Color] struct {
	f *Framebuffer[C]
}

// At implements the image.Image interface.
func (v imageView[C]) At(x, y int) color.Color {
	c, ok := v.f.Pixel(geometry.Pt(int32(x), int32(y)))
	if !ok {
		return color.Transparent
	}
	return c
}

// Bounds implements the image.Image interface.
func (v imageView[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.f.width, v.f.height)
}

// ColorModel implements the image.Image interface.
func (v imageView[C]) ColorModel() color.Model {
	return color.RGBAModel
}
