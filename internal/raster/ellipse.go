package raster

import "github.com/gogpu/tinygfx/geometry"

// Rect is a filled rectangle.
type Rect struct {
	r geometry.Rectangle
}

// NewRect creates the shape of a filled rectangle.
func NewRect(r geometry.Rectangle) *Rect {
	return &Rect{r: r}
}

// Rows returns the rectangle's rows.
func (s *Rect) Rows() (first, end int32) {
	if s.r.IsZeroSized() {
		return 0, 0
	}
	return s.r.Rows()
}

// Len returns 1.
func (s *Rect) Len() int { return 1 }

// Span returns the rectangle's columns on rows it covers.
func (s *Rect) Span(_ int, y int32) Span {
	first, end := s.Rows()
	if y < first || y >= end {
		return emptySpan
	}
	x0, x1 := s.r.Columns()
	return Span{X0: x0, X1: x1}
}

// Disc is a filled circle given by its top-left corner and diameter.
//
// A pixel belongs to the disc when |2p - c|^2 < t, where c is the doubled
// center. The threshold t is d^2 for diameters above 4 and d^2 - d/2 for
// smaller ones, which gives small circles a rounder shape.
type Disc struct {
	cx2, cy2  int64
	threshold int64
	top, end  int32
}

// NewDisc creates a disc.
func NewDisc(topLeft geometry.Point, diameter uint32) *Disc {
	d := int64(diameter)
	t := d * d
	if d <= 4 {
		t -= d / 2
	}
	return &Disc{
		cx2:       2*int64(topLeft.X) + d - 1,
		cy2:       2*int64(topLeft.Y) + d - 1,
		threshold: t,
		top:       topLeft.Y,
		end:       clamp32(int64(topLeft.Y) + d),
	}
}

// Rows returns the rows of the disc's bounding box.
func (s *Disc) Rows() (first, end int32) { return s.top, s.end }

// Len returns 1.
func (s *Disc) Len() int { return 1 }

// Span returns the pixels of row y.
func (s *Disc) Span(_ int, y int32) Span {
	dy := 2*int64(y) - s.cy2
	r2 := s.threshold - dy*dy
	if r2 <= 0 {
		return emptySpan
	}
	m := isqrt(r2 - 1)
	return spanOf(ceilDiv(s.cx2-m, 2), floorDiv(s.cx2+m, 2)+1)
}

// Ellipse is a filled axis-aligned ellipse given by its bounding box.
//
// In doubled coordinates relative to the center a pixel belongs to the
// ellipse when h^2*dx^2 + w^2*dy^2 < w^2*h^2.
type Ellipse struct {
	cx2, cy2 int64
	w, h     int64
	top, end int32
}

// NewEllipse creates an ellipse.
func NewEllipse(r geometry.Rectangle) *Ellipse {
	w, h := int64(r.Size.Width), int64(r.Size.Height)
	e := &Ellipse{
		cx2: 2*int64(r.TopLeft.X) + w - 1,
		cy2: 2*int64(r.TopLeft.Y) + h - 1,
		w:   w,
		h:   h,
	}
	if w > 0 && h > 0 {
		e.top, e.end = r.Rows()
	}
	return e
}

// Rows returns the rows of the ellipse's bounding box.
func (s *Ellipse) Rows() (first, end int32) { return s.top, s.end }

// Len returns 1.
func (s *Ellipse) Len() int { return 1 }

// Span returns the pixels of row y.
func (s *Ellipse) Span(_ int, y int32) Span {
	return ellipseSpan(s.cx2, s.cy2, s.w, s.h, y)
}

func ellipseSpan(cx2, cy2, w, h int64, y int32) Span {
	if w <= 0 || h <= 0 {
		return emptySpan
	}
	dy := 2*int64(y) - cy2
	ww := w * w
	r := ww*h*h - ww*dy*dy
	if r <= 0 {
		return emptySpan
	}
	m := isqrt((r - 1) / (h * h))
	return spanOf(ceilDiv(cx2-m, 2), floorDiv(cx2+m, 2)+1)
}

// Ring is the part of an outer shape that is not covered by an inner
// shape. Both shapes must have a single piece.
type Ring struct {
	Outer, Inner Shape
}

// Rows returns the rows of the outer shape.
func (s Ring) Rows() (first, end int32) { return s.Outer.Rows() }

// Len returns 2.
func (s Ring) Len() int { return 2 }

// Span returns the left (i == 0) or right (i == 1) part of row y.
func (s Ring) Span(i int, y int32) Span {
	o := s.Outer.Span(0, y)
	if o.Empty() {
		return emptySpan
	}
	var in Span
	if s.Inner != nil {
		in = s.Inner.Span(0, y)
	}
	if in.Empty() {
		if i == 0 {
			return o
		}
		return emptySpan
	}
	if i == 0 {
		return Span{X0: o.X0, X1: min(o.X1, in.X0)}
	}
	return Span{X0: max(o.X0, in.X1), X1: o.X1}
}

// Corner indices of rounded rectangles.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// RoundedRect is a filled rectangle with elliptical corners. Each corner
// radius is clamped to half of the adjacent sides.
type RoundedRect struct {
	r     geometry.Rectangle
	radii [4]geometry.Size
}

// NewRoundedRect creates a rounded rectangle. radii are indexed by
// TopLeft, TopRight, BottomRight and BottomLeft.
func NewRoundedRect(r geometry.Rectangle, radii [4]geometry.Size) *RoundedRect {
	half := r.Size.Div(2)
	for i := range radii {
		radii[i] = radii[i].ComponentMin(half)
		if radii[i].Width == 0 || radii[i].Height == 0 {
			radii[i] = geometry.Size{}
		}
	}
	return &RoundedRect{r: r, radii: radii}
}

// Rows returns the rectangle's rows.
func (s *RoundedRect) Rows() (first, end int32) {
	if s.r.IsZeroSized() {
		return 0, 0
	}
	return s.r.Rows()
}

// Len returns 1.
func (s *RoundedRect) Len() int { return 1 }

// Span returns the pixels of row y.
func (s *RoundedRect) Span(_ int, y int32) Span {
	top, bottom := s.Rows()
	if y < top || y >= bottom {
		return emptySpan
	}
	left, right := s.r.Columns()
	out := Span{X0: left, X1: right}
	l, r, t, b := int64(left), int64(right), int64(top), int64(bottom)
	yy := int64(y)

	var cornerL, cornerR geometry.Size
	var cy2L, cy2R int64
	switch {
	case yy < t+int64(s.radii[TopLeft].Height) || yy < t+int64(s.radii[TopRight].Height):
		cornerL, cornerR = s.radii[TopLeft], s.radii[TopRight]
		cy2L = 2*t + 2*int64(cornerL.Height) - 1
		cy2R = 2*t + 2*int64(cornerR.Height) - 1
		if yy >= t+int64(cornerL.Height) {
			cornerL = geometry.Size{}
		}
		if yy >= t+int64(cornerR.Height) {
			cornerR = geometry.Size{}
		}
	case yy >= b-int64(s.radii[BottomLeft].Height) || yy >= b-int64(s.radii[BottomRight].Height):
		cornerL, cornerR = s.radii[BottomLeft], s.radii[BottomRight]
		cy2L = 2*b - 2*int64(cornerL.Height) - 1
		cy2R = 2*b - 2*int64(cornerR.Height) - 1
		if yy < b-int64(cornerL.Height) {
			cornerL = geometry.Size{}
		}
		if yy < b-int64(cornerR.Height) {
			cornerR = geometry.Size{}
		}
	}

	if !cornerL.IsZero() {
		w, h := 2*int64(cornerL.Width), 2*int64(cornerL.Height)
		sp := ellipseSpan(2*l+w-1, cy2L, w, h, y)
		if sp.Empty() {
			return emptySpan
		}
		out.X0 = max(out.X0, sp.X0)
	}
	if !cornerR.IsZero() {
		w, h := 2*int64(cornerR.Width), 2*int64(cornerR.Height)
		sp := ellipseSpan(2*r-w-1, cy2R, w, h, y)
		if sp.Empty() {
			return emptySpan
		}
		out.X1 = min(out.X1, sp.X1)
	}
	return out
}
