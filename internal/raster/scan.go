package raster

import (
	"iter"
	"math"

	"github.com/gogpu/tinygfx/geometry"
)

// Part tells which part of a styled shape a pixel belongs to.
type Part uint8

const (
	// Fill marks interior pixels.
	Fill Part = iota + 1
	// Stroke marks outline pixels.
	Stroke
)

// String returns the part name.
func (p Part) String() string {
	switch p {
	case Fill:
		return "Fill"
	case Stroke:
		return "Stroke"
	default:
		return "Unknown"
	}
}

// Scanner walks the pixels of a stroke shape and a fill shape in
// row-major order. Pixels covered by both are reported once, as Stroke.
// Either shape may be nil.
type Scanner struct {
	stroke, fill Shape

	y, yEnd int32
	x       int32 // search position within row y
	cur     int32
	segEnd  int32
	part    Part
}

// NewScanner creates a scanner over the given shapes.
func NewScanner(stroke, fill Shape) Scanner {
	s := Scanner{stroke: stroke, fill: fill}
	set := false
	for _, sh := range []Shape{stroke, fill} {
		if sh == nil {
			continue
		}
		f, e := sh.Rows()
		if f >= e {
			continue
		}
		if !set {
			s.y, s.yEnd, set = f, e, true
			continue
		}
		s.y, s.yEnd = min(s.y, f), max(s.yEnd, e)
	}
	s.x = math.MinInt32
	return s
}

// Next returns the next pixel and the part it belongs to. It reports
// false once every pixel was produced.
func (s *Scanner) Next() (geometry.Point, Part, bool) {
	for {
		if s.cur < s.segEnd {
			p := geometry.Pt(s.cur, s.y)
			s.cur++
			return p, s.part, true
		}
		if s.y >= s.yEnd {
			return geometry.Point{}, 0, false
		}
		if !s.nextSegment() {
			s.y++
			s.x = math.MinInt32
		}
	}
}

// nextSegment finds the next run of equally colored pixels right of the
// search position.
func (s *Scanner) nextSegment() bool {
	st, sok := nextRun(s.stroke, s.y, s.x)
	fl, fok := nextRun(s.fill, s.y, s.x)
	switch {
	case sok && (!fok || st.X0 <= fl.X0):
		s.cur, s.segEnd, s.part = st.X0, st.X1, Stroke
	case fok:
		end := fl.X1
		if sok {
			end = min(end, st.X0)
		}
		s.cur, s.segEnd, s.part = fl.X0, end, Fill
	default:
		return false
	}
	s.x = s.segEnd
	return true
}

// Points iterates the pixels of a single shape in row-major order.
type Points struct {
	sc Scanner
}

// NewPoints creates an iterator over the pixels of s.
func NewPoints(s Shape) *Points {
	return &Points{sc: NewScanner(nil, s)}
}

// Next returns the next point, or false once every point was produced.
func (it *Points) Next() (geometry.Point, bool) {
	p, _, ok := it.sc.Next()
	return p, ok
}

// All adapts the iterator for use with range loops.
func (it *Points) All() iter.Seq[geometry.Point] {
	return func(yield func(geometry.Point) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
