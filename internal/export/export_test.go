package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/tinygfx/framebuffer"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// frame returns a 3x2 frame with a red top-left and a blue bottom-right
// pixel on black.
func frame() *image.RGBA {
	fb := framebuffer.New[pixelcolor.Rgb888](3, 2)
	fb.SetPixel(geometry.Pt(0, 0), pixelcolor.Red[pixelcolor.Rgb888]())
	fb.SetPixel(geometry.Pt(2, 1), pixelcolor.Blue[pixelcolor.Rgb888]())
	return fb.ToRGBA()
}

func sameImage(t *testing.T, got, want image.Image) {
	t.Helper()
	if got.Bounds().Size() != want.Bounds().Size() {
		t.Fatalf("size = %v, want %v", got.Bounds().Size(), want.Bounds().Size())
	}
	gb, wb := got.Bounds(), want.Bounds()
	for y := range wb.Dy() {
		for x := range wb.Dx() {
			g := color.RGBAModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y))
			w := color.RGBAModel.Convert(want.At(wb.Min.X+x, wb.Min.Y+y))
			if g != w {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "out.png", want: PNG},
		{path: "OUT.PNG", want: PNG},
		{path: "dir/frame.bmp", want: BMP},
		{path: "frame.tif", want: TIFF},
		{path: "frame.tiff", want: TIFF},
		{path: "frame.pdf", want: PDF},
		{path: "frame.jpg", wantErr: true},
		{path: "frame", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, %v, want %v", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestUpscale(t *testing.T) {
	src := frame()
	got := Upscale(src, 3)

	if got.Bounds() != image.Rect(0, 0, 9, 6) {
		t.Fatalf("Bounds() = %v, want (0,0)-(9,6)", got.Bounds())
	}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	black := color.RGBA{A: 255}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red}, {2, 2, red}, {3, 0, black}, {0, 3, black},
		{6, 3, blue}, {8, 5, blue}, {5, 5, black},
	}
	for _, tt := range tests {
		if c := got.RGBAAt(tt.x, tt.y); c != tt.want {
			t.Errorf("RGBAAt(%d, %d) = %v, want %v", tt.x, tt.y, c, tt.want)
		}
	}
}

func TestUpscaleFactorOne(t *testing.T) {
	src := frame()
	sameImage(t, Upscale(src, 0), src)
	sameImage(t, Upscale(src, 1), src)
}

func TestEncodeRoundTrip(t *testing.T) {
	src := frame()
	tests := []struct {
		format Format
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{PNG, func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{BMP, func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }},
		{TIFF, func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(bytes.NewReader(b.Bytes())) }},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, tt.format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			sameImage(t, got, src)
		})
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, frame(), PDFOptions{PixelSize: 4, Margin: 10, Title: "frame"}); err != nil {
		t.Fatalf("WritePDF() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output starts with %q, want %%PDF-", buf.Bytes()[:min(8, buf.Len())])
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Subtype /Image")) {
		t.Error("output has no image XObject")
	}
}

func TestWritePDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, image.NewRGBA(image.Rectangle{}), PDFOptions{}); err == nil {
		t.Error("WritePDF(empty) error = nil, want error")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	src := frame()

	path := filepath.Join(dir, "frame.png")
	if err := WriteFile(path, src, 2); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	sameImage(t, got, Upscale(src, 2))

	if err := WriteFile(filepath.Join(dir, "frame.gif"), src, 1); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("WriteFile(.gif) error = %v, want ErrUnknownFormat", err)
	}
	if err := WriteFile(filepath.Join(dir, "frame.pdf"), src, 1); err != nil {
		t.Errorf("WriteFile(.pdf) error = %v", err)
	}
}
