package raster

import (
	"math"
	"math/bits"

	"github.com/gogpu/tinygfx/geometry"
)

// Span is the half-open pixel range [X0, X1) of a row.
type Span struct {
	X0, X1 int32
}

// Empty reports whether the span contains no pixels.
func (s Span) Empty() bool {
	return s.X0 >= s.X1
}

// Intersect returns the overlap of two spans.
func (s Span) Intersect(o Span) Span {
	return Span{X0: max(s.X0, o.X0), X1: min(s.X1, o.X1)}
}

// Shape is a pixel set described per row by Len pieces.
//
// Rows returns a conservative half-open row range; rows outside it are
// empty. Span returns the span piece i covers on row y, which may be
// empty. Pieces may overlap each other.
type Shape interface {
	Rows() (first, end int32)
	Len() int
	Span(i int, y int32) Span
}

var emptySpan = Span{}

// Union combines shapes into one.
type Union []Shape

// Rows returns the union of the row ranges.
func (u Union) Rows() (first, end int32) {
	set := false
	for _, s := range u {
		f, e := s.Rows()
		if f >= e {
			continue
		}
		if !set {
			first, end, set = f, e, true
			continue
		}
		first, end = min(first, f), max(end, e)
	}
	return first, end
}

// Len returns the total number of pieces.
func (u Union) Len() int {
	n := 0
	for _, s := range u {
		n += s.Len()
	}
	return n
}

// Span returns piece i of the combined shape.
func (u Union) Span(i int, y int32) Span {
	for _, s := range u {
		n := s.Len()
		if i < n {
			return s.Span(i, y)
		}
		i -= n
	}
	return emptySpan
}

// Intersection is the part of Base covered by Mask.
type Intersection struct {
	Base, Mask Shape
}

// Rows returns the rows of the base shape.
func (s Intersection) Rows() (first, end int32) { return s.Base.Rows() }

// Len returns the number of base pieces times the number of mask pieces.
func (s Intersection) Len() int { return s.Base.Len() * s.Mask.Len() }

// Span returns the part of a base piece covered by one mask piece.
func (s Intersection) Span(i int, y int32) Span {
	n := s.Mask.Len()
	b := s.Base.Span(i/n, y)
	if b.Empty() {
		return emptySpan
	}
	return b.Intersect(s.Mask.Span(i%n, y))
}

// nextRun returns the maximal run of pixels of s on row y that starts at
// the first covered pixel at or right of x.
func nextRun(s Shape, y, x int32) (Span, bool) {
	if s == nil {
		return emptySpan, false
	}
	n := s.Len()
	found := false
	var start int32
	for i := range n {
		sp := s.Span(i, y)
		if sp.Empty() || sp.X1 <= x {
			continue
		}
		st := max(sp.X0, x)
		if !found || st < start {
			start, found = st, true
		}
	}
	if !found {
		return emptySpan, false
	}

	end := start
	for changed := true; changed; {
		changed = false
		for i := range n {
			sp := s.Span(i, y)
			if !sp.Empty() && sp.X0 <= end && sp.X1 > end {
				end = sp.X1
				changed = true
			}
		}
	}
	return Span{X0: start, X1: end}, true
}

// rowExtent returns the leftmost and rightmost covered pixels of row y.
func rowExtent(s Shape, y int32) (Span, bool) {
	found := false
	var ext Span
	for i := range s.Len() {
		sp := s.Span(i, y)
		if sp.Empty() {
			continue
		}
		if !found {
			ext, found = sp, true
			continue
		}
		ext.X0 = min(ext.X0, sp.X0)
		ext.X1 = max(ext.X1, sp.X1)
	}
	return ext, found
}

// Bounds returns the bounding box of every pixel covered by the shapes.
// It reports false when the shapes cover nothing. Nil shapes are skipped.
func Bounds(shapes ...Shape) (geometry.Rectangle, bool) {
	var e extent
	for _, s := range shapes {
		if s != nil {
			e.addShape(s)
		}
	}
	return e.rect()
}

// boxer is implemented by shapes that find their bounds without visiting
// every row.
type boxer interface {
	box() (geometry.Rectangle, bool)
}

// extent accumulates the bounds of pixel runs.
type extent struct {
	x0, x1, y0, y1 int32
	found          bool
}

func (e *extent) addSpan(sp Span, y int32) {
	if sp.Empty() {
		return
	}
	if !e.found {
		e.x0, e.x1, e.y0, e.y1, e.found = sp.X0, sp.X1, y, y+1, true
		return
	}
	e.x0, e.x1 = min(e.x0, sp.X0), max(e.x1, sp.X1)
	e.y0, e.y1 = min(e.y0, y), max(e.y1, y+1)
}

func (e *extent) addRect(r geometry.Rectangle) {
	x0, x1 := r.Columns()
	y0, y1 := r.Rows()
	if x0 >= x1 || y0 >= y1 {
		return
	}
	e.addSpan(Span{X0: x0, X1: x1}, y0)
	e.addSpan(Span{X0: x0, X1: x1}, y1-1)
}

// addRows adds every row of s in [first, end).
func (e *extent) addRows(s Shape, first, end int32) {
	for y := first; y < end; y++ {
		if ext, ok := rowExtent(s, y); ok {
			e.addSpan(ext, y)
		}
	}
}

func (e *extent) addShape(s Shape) {
	if b, ok := s.(boxer); ok {
		if r, ok := b.box(); ok {
			e.addRect(r)
		}
		return
	}
	first, end := s.Rows()
	e.addRows(s, first, end)
}

func (e extent) rect() (geometry.Rectangle, bool) {
	if !e.found {
		return geometry.Rectangle{}, false
	}
	return geometry.NewRectangle(geometry.Pt(e.x0, e.y0), geometry.NewSize(uint32(e.x1-e.x0), uint32(e.y1-e.y0))), true
}

// box merges the bounds of every part.
func (u Union) box() (geometry.Rectangle, bool) {
	var e extent
	for _, s := range u {
		e.addShape(s)
	}
	return e.rect()
}

// Contains reports whether the shape covers p.
func Contains(s Shape, p geometry.Point) bool {
	if s == nil {
		return false
	}
	for i := range s.Len() {
		sp := s.Span(i, p.Y)
		if p.X >= sp.X0 && p.X < sp.X1 {
			return true
		}
	}
	return false
}

// isqrt returns floor(sqrt(v)) for v >= 0 and 0 otherwise.
func isqrt(v int64) int64 {
	if v <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}

// floorDiv returns floor(a / b) for b != 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ceilDiv returns ceil(a / b) for b != 0.
func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}

// cmpSqrt returns the sign of v - k*sqrt(s) for s > 0.
func cmpSqrt(v, k, s int64) int {
	switch {
	case v >= 0 && k <= 0:
		if v == 0 && k == 0 {
			return 0
		}
		return 1
	case v <= 0 && k >= 0:
		return -1
	}
	// v and k share a sign: compare v^2 with k^2 * s.
	c := cmpSquares(absU(v), absU(k), uint64(s))
	if v < 0 {
		return -c
	}
	return c
}

// cmpSquares compares a^2 with b^2 * s using 128-bit products.
func cmpSquares(a, b, s uint64) int {
	lhsHi, lhsLo := bits.Mul64(a, a)
	bbHi, bbLo := bits.Mul64(b, b)
	if bbHi != 0 {
		return -1
	}
	rhsHi, rhsLo := bits.Mul64(bbLo, s)
	switch {
	case lhsHi < rhsHi:
		return -1
	case lhsHi > rhsHi:
		return 1
	case lhsLo < rhsLo:
		return -1
	case lhsLo > rhsLo:
		return 1
	}
	return 0
}

func absU(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func clamp32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

func spanOf(x0, x1 int64) Span {
	return Span{X0: clamp32(x0), X1: clamp32(x1)}
}
