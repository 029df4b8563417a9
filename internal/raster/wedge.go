package raster

import (
	"math"

	"github.com/gogpu/tinygfx/geometry"
)

// Wedge is the angular region between two rays from a doubled center.
//
// Angles grow from the positive x axis towards the positive y axis, which
// is clockwise on screen. Both bounding rays belong to the wedge. Wedges
// wider than a half turn are split into two halves, each the intersection
// of two half-planes.
type Wedge struct {
	cx2, cy2 int64
	full     bool
	empty    bool
	halves   int
	// Ray directions: start, middle (split wedges only) and end.
	dirs [3]vec
}

// NewWedge creates a wedge starting at start and spanning sweep. Negative
// sweeps are mirrored and sweeps of a full turn or more cover every
// direction. A zero sweep is empty.
func NewWedge(cx2, cy2 int64, start, sweep geometry.Angle) Wedge {
	w := Wedge{cx2: cx2, cy2: cy2, halves: 1}
	s, sw, full := SweepRange(start, sweep)
	switch {
	case full:
		w.full = true
		return w
	case sw == 0:
		w.empty = true
		return w
	}
	w.dirs[0] = direction(s)
	w.dirs[2] = direction(s + sw)
	if sw > math.Pi {
		w.halves = 2
		w.dirs[1] = direction(s + sw/2)
	}
	return w
}

// SweepRange normalizes start and sweep the way NewWedge does. It reports
// full for full turns.
func SweepRange(start, sweep geometry.Angle) (s, sw float64, full bool) {
	if sweep.IsFullTurn() {
		return 0, 2 * math.Pi, true
	}
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	return float64(start.Normalize().ToRadians()), float64(sweep.ToRadians()), false
}

// direction returns the unit vector of angle a. Components close to zero
// are snapped so that multiples of a quarter turn are exact.
func direction(a float64) vec {
	d := vec{math.Cos(a), math.Sin(a)}
	switch {
	case math.Abs(d.x) < 1e-6:
		d = vec{0, math.Copysign(1, d.y)}
	case math.Abs(d.y) < 1e-6:
		d = vec{math.Copysign(1, d.x), 0}
	}
	return d
}

// Full reports whether the wedge covers every direction.
func (w Wedge) Full() bool { return w.full }

// Empty reports whether the wedge covers nothing.
func (w Wedge) Empty() bool { return w.empty }

// Halves returns the number of convex pieces of the wedge.
func (w Wedge) Halves() int { return w.halves }

// span returns the pixels of row y inside half h.
func (w Wedge) span(h int, y int32) Span {
	if w.full {
		return Span{X0: math.MinInt32, X1: math.MaxInt32}
	}
	if w.empty {
		return emptySpan
	}
	from, to := w.dirs[0], w.dirs[2]
	if w.halves == 2 {
		if h == 0 {
			to = w.dirs[1]
		} else {
			from = w.dirs[1]
		}
	}
	qy := float64(2*int64(y) - w.cy2)
	out := Span{X0: math.MinInt32, X1: math.MaxInt32}
	// cross(from, q) >= 0 and cross(q, to) >= 0, each of the form
	// coef*qx + c >= 0.
	for _, hp := range [2][2]float64{{-from.y, from.x * qy}, {to.y, -to.x * qy}} {
		out = out.Intersect(w.halfPlane(hp[0], hp[1]))
		if out.Empty() {
			return emptySpan
		}
	}
	return out
}

// halfPlane returns the pixels x of a row with coef*(2x - cx2) + c >= 0.
func (w Wedge) halfPlane(coef, c float64) Span {
	all := Span{X0: math.MinInt32, X1: math.MaxInt32}
	if coef == 0 {
		if c >= 0 {
			return all
		}
		return emptySpan
	}
	inside := func(x int32) bool {
		return coef*float64(2*int64(x)-w.cx2)+c >= 0
	}
	bound := (float64(w.cx2) - c/coef) / 2
	x := clamp32(int64(math.Floor(bound)))
	if coef > 0 {
		// Satisfied right of the bound.
		for x > math.MinInt32 && inside(x-1) {
			x--
		}
		for x < math.MaxInt32 && !inside(x) {
			x++
		}
		return Span{X0: x, X1: math.MaxInt32}
	}
	for x < math.MaxInt32 && inside(x+1) {
		x++
	}
	for x > math.MinInt32 && !inside(x) {
		x--
	}
	return Span{X0: math.MinInt32, X1: x + 1}
}

// Sectioned is a shape restricted to a wedge.
type Sectioned struct {
	Base  Shape
	Wedge Wedge
}

// Rows returns the rows of the base shape.
func (s Sectioned) Rows() (first, end int32) { return s.Base.Rows() }

// Len returns the number of base pieces times the number of wedge halves.
func (s Sectioned) Len() int { return s.Base.Len() * s.Wedge.halves }

// Span returns the part of a base piece inside one wedge half.
func (s Sectioned) Span(i int, y int32) Span {
	b := s.Base.Span(i/s.Wedge.halves, y)
	if b.Empty() {
		return emptySpan
	}
	return b.Intersect(s.Wedge.span(i%s.Wedge.halves, y))
}
