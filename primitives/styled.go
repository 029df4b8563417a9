package primitives

import (
	"iter"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/internal/raster"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// Primitive is the set of shapes that can be styled.
type Primitive interface {
	geometry.Rectangle | Circle | Ellipse | RoundedRectangle | Line | Triangle | Polyline | Arc | Sector
}

// rasterizer is implemented by every primitive to describe its styled
// geometry.
type rasterizer interface {
	BoundingBox() geometry.Rectangle
	// empty reports whether the primitive has no extent.
	empty() bool
	// strokeGrowsBox reports whether the styled bounding box is the
	// primitive's box grown by the outside stroke width.
	strokeGrowsBox() bool
	strokeShape(width, inside, outside uint32) raster.Shape
	fillShape(inside uint32) raster.Shape
}

func rasterizerOf(p any) rasterizer {
	if r, ok := p.(geometry.Rectangle); ok {
		return rect(r)
	}
	return p.(rasterizer)
}

// rect adapts geometry.Rectangle.
type rect geometry.Rectangle

func (r rect) BoundingBox() geometry.Rectangle { return geometry.Rectangle(r) }
func (r rect) empty() bool                     { return geometry.Rectangle(r).IsZeroSized() }
func (rect) strokeGrowsBox() bool              { return true }

func (r rect) strokeShape(_, inside, outside uint32) raster.Shape {
	return raster.RectStroke(geometry.Rectangle(r), inside, outside)
}

func (r rect) fillShape(inside uint32) raster.Shape {
	return raster.RectFill(geometry.Rectangle(r), inside)
}

// Styled is a primitive combined with a style.
type Styled[P Primitive, C pixelcolor.Color] struct {
	Primitive P
	Style     PrimitiveStyle[C]
}

// NewStyled combines a primitive with a style.
func NewStyled[P Primitive, C pixelcolor.Color](p P, style PrimitiveStyle[C]) Styled[P, C] {
	return Styled[P, C]{Primitive: p, Style: style}
}

// shapes returns the stroke and fill geometry. Colors are not taken into
// account.
func (s Styled[P, C]) shapes() (stroke, fill raster.Shape) {
	r := rasterizerOf(s.Primitive)
	if r.empty() {
		return nil, nil
	}
	in, out := s.Style.InsideStrokeWidth(), s.Style.OutsideStrokeWidth()
	if w := s.Style.StrokeWidth(); w > 0 {
		stroke = r.strokeShape(w, in, out)
	}
	return stroke, r.fillShape(in)
}

// BoundingBox returns the smallest rectangle containing every pixel the
// styled primitive can draw. It depends on the stroke width and alignment
// but not on which colors are set.
func (s Styled[P, C]) BoundingBox() geometry.Rectangle {
	r := rasterizerOf(s.Primitive)
	box := r.BoundingBox()
	if r.empty() {
		return geometry.Rectangle{TopLeft: box.TopLeft}
	}
	if r.strokeGrowsBox() {
		out := s.Style.OutsideStrokeWidth()
		o := int32(out)
		return geometry.NewRectangle(box.TopLeft.Sub(geometry.Pt(o, o)), box.Size.Add(geometry.NewSizeEqual(out).Mul(2)))
	}
	stroke, fill := s.shapes()
	if stroke == nil && fill == nil {
		// Without a stroke the primitive keeps its own box.
		return box
	}
	if b, ok := raster.Bounds(stroke, fill); ok {
		return b
	}
	return geometry.Rectangle{TopLeft: box.TopLeft}
}

// Pixels returns an iterator over the colored pixels of the styled
// primitive.
func (s Styled[P, C]) Pixels() *PixelIterator[C] {
	stroke, fill := s.shapes()
	it := &PixelIterator[C]{}
	if c, ok := s.Style.visibleStroke(); ok {
		it.stroke = c
	} else {
		stroke = nil
	}
	if c, ok := s.Style.Fill(); ok {
		it.fill = c
	} else {
		fill = nil
	}
	it.sc = raster.NewScanner(stroke, fill)
	return it
}

// Draw draws the styled primitive. Rectangles without a visible stroke are
// drawn with a single solid fill.
func (s Styled[P, C]) Draw(target draw.DrawTarget[C]) error {
	if s.Style.IsTransparent() {
		return nil
	}
	if r, ok := any(s.Primitive).(geometry.Rectangle); ok {
		if _, stroked := s.Style.visibleStroke(); !stroked {
			in := int32(s.Style.InsideStrokeWidth())
			area := geometry.NewRectangle(r.TopLeft.Add(geometry.Pt(in, in)),
				r.Size.Sub(geometry.NewSizeEqual(uint32(in)).Mul(2)))
			if area.IsZeroSized() {
				return nil
			}
			c, _ := s.Style.Fill()
			return draw.FillSolid(target, area, c)
		}
	}
	return target.DrawIter(s.Pixels().All())
}

// PixelIterator iterates the pixels of a styled primitive in row-major
// order.
type PixelIterator[C pixelcolor.Color] struct {
	sc           raster.Scanner
	stroke, fill C
}

// Next returns the next pixel, or false once every pixel was produced.
func (it *PixelIterator[C]) Next() (draw.Pixel[C], bool) {
	p, part, ok := it.sc.Next()
	if !ok {
		return draw.Pixel[C]{}, false
	}
	if part == raster.Stroke {
		return draw.Pixel[C]{Point: p, Color: it.stroke}, true
	}
	return draw.Pixel[C]{Point: p, Color: it.fill}, true
}

// All adapts the iterator for use with range loops.
func (it *PixelIterator[C]) All() iter.Seq[draw.Pixel[C]] {
	return func(yield func(draw.Pixel[C]) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// PointIterator iterates the points of an unstyled primitive.
type PointIterator struct {
	shape *raster.Points
	line  *raster.LinePoints
}

func shapePoints(s raster.Shape) *PointIterator {
	if s == nil {
		return &PointIterator{}
	}
	return &PointIterator{shape: raster.NewPoints(s)}
}

// Next returns the next point, or false once every point was produced.
func (it *PointIterator) Next() (geometry.Point, bool) {
	switch {
	case it.line != nil:
		return it.line.Next()
	case it.shape != nil:
		return it.shape.Next()
	}
	return geometry.Point{}, false
}

// All adapts the iterator for use with range loops.
func (it *PointIterator) All() iter.Seq[geometry.Point] {
	return func(yield func(geometry.Point) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
