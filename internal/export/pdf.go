package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFOptions controls PDF output. Units are points.
type PDFOptions struct {
	// PixelSize is the edge length of one frame pixel. Zero means 1pt.
	PixelSize float64
	// Margin is added around the frame on every side.
	Margin float64
	Title  string
}

// WritePDF writes a single-page PDF whose page is sized to hold img. The
// frame is embedded as a lossless PNG image.
func WritePDF(w io.Writer, img image.Image, opts PDFOptions) error {
	px := opts.PixelSize
	if px <= 0 {
		px = 1
	}
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("export: empty image")
	}
	imgW, imgH := float64(b.Dx())*px, float64(b.Dy())*px
	page := gofpdf.SizeType{Wd: imgW + 2*opts.Margin, Ht: imgH + 2*opts.Margin}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: page})
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetCreator("tinygfx", false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", page)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("frame", opt, &buf)
	pdf.ImageOptions("frame", opts.Margin, opts.Margin, imgW, imgH, false, opt, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
