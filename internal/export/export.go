// Package export writes rendered frames to image and document files.
//
// The output format follows the file extension: .png, .bmp, .tif/.tiff or
// .pdf. Frames can be enlarged by an integer factor with nearest-neighbor
// sampling so single display pixels stay sharp.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output file format.
type Format int

const (
	// PNG is a lossless PNG image.
	PNG Format = iota
	// BMP is an uncompressed Windows bitmap.
	BMP
	// TIFF is a deflate-compressed TIFF image.
	TIFF
	// PDF is a single-page PDF document holding the frame.
	PDF
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// ErrUnknownFormat is returned for file extensions without an encoder.
var ErrUnknownFormat = errors.New("export: unknown output format")

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Upscale returns img enlarged by factor using nearest-neighbor sampling.
// A factor below 2 copies the image unscaled.
func Upscale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	factor = max(factor, 1)
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PDF:
		return WritePDF(w, img, PDFOptions{})
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// WriteFile encodes img, enlarged by scale, into the file at path. The
// format follows the extension of path.
func WriteFile(path string, img image.Image, scale int) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if scale > 1 {
		img = Upscale(img, scale)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("export: encode %s: %w", f, err)
	}
	return nil
}
