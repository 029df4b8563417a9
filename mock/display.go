package mock

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// Size is the width and height of a MockDisplay.
const Size = 64

// OverdrawError is returned when a pixel is drawn more than once.
type OverdrawError struct {
	Point geometry.Point
}

func (e *OverdrawError) Error() string {
	return fmt.Sprintf("mock: pixel %v drawn more than once", e.Point)
}

// OutOfBoundsError is returned when a pixel outside the display is drawn.
type OutOfBoundsError struct {
	Point geometry.Point
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("mock: pixel %v is outside the display", e.Point)
}

// Option configures a MockDisplay.
type Option func(*options)

type options struct {
	allowOverdraw    bool
	allowOutOfBounds bool
}

// WithAllowOverdraw permits drawing a pixel more than once.
func WithAllowOverdraw() Option {
	return func(o *options) { o.allowOverdraw = true }
}

// WithAllowOutOfBounds silently discards pixels outside the display.
func WithAllowOutOfBounds() Option {
	return func(o *options) { o.allowOutOfBounds = true }
}

// MockDisplay is a 64x64 draw target that records which pixels were set.
type MockDisplay[C pixelcolor.Color] struct {
	pixels [Size * Size]C
	set    [Size * Size]bool
	opts   options
}

// New creates an empty display.
func New[C pixelcolor.Color](opts ...Option) *MockDisplay[C] {
	d := &MockDisplay[C]{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// SetAllowOverdraw controls whether drawing a pixel twice is an error.
func (d *MockDisplay[C]) SetAllowOverdraw(allow bool) {
	d.opts.allowOverdraw = allow
}

// SetAllowOutOfBounds controls whether drawing outside the display is an
// error. Allowed out of bounds pixels are discarded.
func (d *MockDisplay[C]) SetAllowOutOfBounds(allow bool) {
	d.opts.allowOutOfBounds = allow
}

// BoundingBox returns the 64x64 display area at the origin.
func (d *MockDisplay[C]) BoundingBox() geometry.Rectangle {
	return geometry.Rect(0, 0, Size, Size)
}

func index(p geometry.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= Size || p.Y >= Size {
		return 0, false
	}
	return int(p.Y)*Size + int(p.X), true
}

// DrawIter draws pixels, stopping at the first overdraw or out of bounds
// violation.
func (d *MockDisplay[C]) DrawIter(pixels iter.Seq[draw.Pixel[C]]) error {
	for px := range pixels {
		i, ok := index(px.Point)
		if !ok {
			if d.opts.allowOutOfBounds {
				continue
			}
			return &OutOfBoundsError{Point: px.Point}
		}
		if d.set[i] && !d.opts.allowOverdraw {
			return &OverdrawError{Point: px.Point}
		}
		d.pixels[i] = px.Color
		d.set[i] = true
	}
	return nil
}

// SetPixel sets a single pixel, ignoring the overdraw checks. Points
// outside the display are ignored.
func (d *MockDisplay[C]) SetPixel(p geometry.Point, c C) {
	if i, ok := index(p); ok {
		d.pixels[i] = c
		d.set[i] = true
	}
}

// Get returns the color at p and whether it was drawn.
func (d *MockDisplay[C]) Get(p geometry.Point) (C, bool) {
	i, ok := index(p)
	if !ok || !d.set[i] {
		var zero C
		return zero, false
	}
	return d.pixels[i], true
}

// DrawnPoints returns the drawn points in row-major order.
func (d *MockDisplay[C]) DrawnPoints() []geometry.Point {
	var out []geometry.Point
	for i, ok := range d.set[:] {
		if ok {
			out = append(out, geometry.Pt(int32(i%Size), int32(i/Size)))
		}
	}
	return out
}

// AffectedArea returns the smallest rectangle containing every drawn
// pixel. It is zero sized when nothing was drawn.
func (d *MockDisplay[C]) AffectedArea() geometry.Rectangle {
	points := d.DrawnPoints()
	if len(points) == 0 {
		return geometry.ZeroRectangle()
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.ComponentMin(p)
		hi = hi.ComponentMax(p)
	}
	return geometry.RectangleWithCorners(lo, hi)
}

// Equal reports whether both displays have the same pixels drawn with the
// same colors.
func (d *MockDisplay[C]) Equal(other *MockDisplay[C]) bool {
	for i := range d.set {
		if d.set[i] != other.set[i] {
			return false
		}
		if d.set[i] && d.pixels[i].RawBits() != other.pixels[i].RawBits() {
			return false
		}
	}
	return true
}

// Diff compares two displays. Pixels only drawn in d are green, pixels
// only drawn in other are red and pixels drawn in both with different
// colors are blue.
func (d *MockDisplay[C]) Diff(other *MockDisplay[C]) *MockDisplay[pixelcolor.Rgb888] {
	out := New[pixelcolor.Rgb888]()
	for i := range d.set {
		p := geometry.Pt(int32(i%Size), int32(i/Size))
		switch {
		case d.set[i] && !other.set[i]:
			out.SetPixel(p, pixelcolor.Green[pixelcolor.Rgb888]())
		case !d.set[i] && other.set[i]:
			out.SetPixel(p, pixelcolor.Red[pixelcolor.Rgb888]())
		case d.set[i] && d.pixels[i].RawBits() != other.pixels[i].RawBits():
			out.SetPixel(p, pixelcolor.Blue[pixelcolor.Rgb888]())
		}
	}
	return out
}

// Pattern renders the display as text, one string per row. Rows end at
// the last drawn pixel and trailing empty rows are dropped.
func (d *MockDisplay[C]) Pattern() []string {
	var rows []string
	last := -1
	for y := range Size {
		var b strings.Builder
		for x := range Size {
			i := y*Size + x
			if !d.set[i] {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(colorChar(d.pixels[i]))
		}
		row := strings.TrimRight(b.String(), " ")
		if row != "" {
			last = y
		}
		rows = append(rows, row)
	}
	return rows[:last+1]
}

func (d *MockDisplay[C]) String() string {
	return strings.Join(d.Pattern(), "\n")
}
