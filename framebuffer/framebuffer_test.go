package framebuffer

import (
	"image/color"
	"testing"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

type rgb = pixelcolor.Rgb888

var (
	red   = pixelcolor.Red[rgb]()
	blue  = pixelcolor.Blue[rgb]()
	black = pixelcolor.Black[rgb]()
)

// Compile-time interface checks.
var (
	_ draw.DrawTarget[rgb]       = (*Framebuffer[rgb])(nil)
	_ draw.ContiguousFiller[rgb] = (*Framebuffer[rgb])(nil)
	_ draw.SolidFiller[rgb]      = (*Framebuffer[rgb])(nil)
	_ draw.Clearer[rgb]          = (*Framebuffer[rgb])(nil)
)

func TestNewFramebuffer(t *testing.T) {
	f := New(8, 4, WithBackground(blue))
	if f.Width() != 8 || f.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", f.Width(), f.Height())
	}
	if got := len(f.Data()); got != 32 {
		t.Errorf("len(Data()) = %d, want 32", got)
	}
	if c, ok := f.Pixel(geometry.Pt(7, 3)); !ok || c != blue {
		t.Errorf("Pixel(7, 3) = %v, %v, want %v, true", c, ok, blue)
	}
	if _, ok := f.Pixel(geometry.Pt(8, 0)); ok {
		t.Errorf("Pixel(8, 0) reports an in-bounds pixel")
	}
}

func TestDrawIterClips(t *testing.T) {
	f := New[rgb](4, 4)
	err := f.DrawIter(draw.Pixels(
		draw.NewPixel(geometry.Pt(-1, 0), red),
		draw.NewPixel(geometry.Pt(1, 1), red),
		draw.NewPixel(geometry.Pt(4, 4), red),
	))
	if err != nil {
		t.Fatalf("DrawIter() error = %v", err)
	}
	n := 0
	for _, c := range f.Data() {
		if c == red {
			n++
		}
	}
	if n != 1 {
		t.Errorf("red pixels = %d, want 1", n)
	}
}

func TestFillSolidClips(t *testing.T) {
	f := New[rgb](10, 10)
	if err := draw.FillSolid[rgb](f, geometry.Rect(7, -2, 10, 4), red); err != nil {
		t.Fatalf("FillSolid() error = %v", err)
	}
	tests := []struct {
		p    geometry.Point
		want rgb
	}{
		{geometry.Pt(7, 0), red},
		{geometry.Pt(9, 1), red},
		{geometry.Pt(6, 0), black},
		{geometry.Pt(7, 2), black},
	}
	for _, tt := range tests {
		if got, _ := f.Pixel(tt.p); got != tt.want {
			t.Errorf("Pixel(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFillContiguousConsumesClippedColors(t *testing.T) {
	f := New[rgb](2, 2)
	colors := []rgb{red, blue, blue, red, red, blue}
	seq := func(yield func(rgb) bool) {
		for _, c := range colors {
			if !yield(c) {
				return
			}
		}
	}
	// A 3x2 area starting left of the buffer: column -1 is dropped.
	if err := draw.FillContiguous[rgb](f, geometry.Rect(-1, 0, 3, 2), seq); err != nil {
		t.Fatalf("FillContiguous() error = %v", err)
	}
	want := []rgb{blue, blue, red, blue}
	for i, c := range f.Data() {
		if c != want[i] {
			t.Errorf("Data()[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestClearAndImage(t *testing.T) {
	f := New[pixelcolor.Gray8](3, 2)
	if err := draw.Clear[pixelcolor.Gray8](f, pixelcolor.NewGray8(200)); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	img := f.Image()
	if got := img.Bounds().Dx(); got != 3 {
		t.Errorf("Bounds().Dx() = %d, want 3", got)
	}
	got := color.RGBAModel.Convert(img.At(2, 1)).(color.RGBA)
	if got.R != 200 || got.G != 200 || got.B != 200 {
		t.Errorf("At(2, 1) = %v, want gray 200", got)
	}
	if got := img.At(5, 5); got != color.Transparent {
		t.Errorf("At(5, 5) = %v, want transparent", got)
	}
	rgba := f.ToRGBA()
	if rgba.Pix[0] != 200 || rgba.Pix[3] != 0xff {
		t.Errorf("ToRGBA().Pix[0:4] = %v, want [200 200 200 255]", rgba.Pix[0:4])
	}
}
