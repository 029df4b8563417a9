package raster

import (
	"iter"
	"math"

	"github.com/gogpu/tinygfx/geometry"
)

// LinePoints steps along a line with Bresenham's algorithm, from the start
// point to the end point inclusive. The minor coordinate of step i is
//
//	floor((2*i*|dminor| + |dmajor|) / (2*|dmajor|))
//
// relative to the start point.
type LinePoints struct {
	p            geometry.Point
	major, minor geometry.Point // unit steps
	dMajor2      int64
	dMinor2      int64
	rem          int64
	left         int64
}

// NewLinePoints creates an iterator over the pixels of the line from p0 to
// p1.
func NewLinePoints(p0, p1 geometry.Point) *LinePoints {
	dx := int64(p1.X) - int64(p0.X)
	dy := int64(p1.Y) - int64(p0.Y)
	sx, sy := sign32(dx), sign32(dy)
	it := &LinePoints{p: p0}
	if abs64(dx) >= abs64(dy) {
		it.major, it.minor = geometry.Pt(sx, 0), geometry.Pt(0, sy)
		it.dMajor2, it.dMinor2 = 2*abs64(dx), 2*abs64(dy)
	} else {
		it.major, it.minor = geometry.Pt(0, sy), geometry.Pt(sx, 0)
		it.dMajor2, it.dMinor2 = 2*abs64(dy), 2*abs64(dx)
	}
	it.rem = it.dMajor2 / 2
	it.left = it.dMajor2/2 + 1
	return it
}

// Next returns the next point, or false once the end point was produced.
func (it *LinePoints) Next() (geometry.Point, bool) {
	if it.left <= 0 {
		return geometry.Point{}, false
	}
	p := it.p
	it.left--
	it.p = it.p.Add(it.major)
	it.rem += it.dMinor2
	if it.rem >= it.dMajor2 && it.dMajor2 > 0 {
		it.rem -= it.dMajor2
		it.p = it.p.Add(it.minor)
	}
	return p, true
}

// All adapts the iterator for use with range loops.
func (it *LinePoints) All() iter.Seq[geometry.Point] {
	return func(yield func(geometry.Point) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Thin is the row view of the pixels produced by LinePoints.
type Thin struct {
	x0, y0   int64
	adx, ady int64
	sx, sy   int64
}

// NewThin creates the one pixel wide shape of the line from p0 to p1.
func NewThin(p0, p1 geometry.Point) *Thin {
	dx := int64(p1.X) - int64(p0.X)
	dy := int64(p1.Y) - int64(p0.Y)
	return &Thin{
		x0: int64(p0.X), y0: int64(p0.Y),
		adx: abs64(dx), ady: abs64(dy),
		sx: int64(sign32(dx)), sy: int64(sign32(dy)),
	}
}

// Rows returns the rows between both end points.
func (l *Thin) Rows() (first, end int32) {
	y1 := l.y0 + l.sy*l.ady
	return clamp32(min(l.y0, y1)), clamp32(max(l.y0, y1) + 1)
}

// Len returns 1.
func (l *Thin) Len() int { return 1 }

// box returns the box spanned by both end points.
func (l *Thin) box() (geometry.Rectangle, bool) {
	p0 := geometry.Pt(clamp32(l.x0), clamp32(l.y0))
	p1 := geometry.Pt(clamp32(l.x0+l.sx*l.adx), clamp32(l.y0+l.sy*l.ady))
	return geometry.RectangleWithCorners(p0, p1), true
}

// Span returns the pixels of row y.
func (l *Thin) Span(_ int, y int32) Span {
	k := (int64(y) - l.y0) * l.sy
	if l.sy == 0 {
		k = int64(y) - l.y0
	}
	if k < 0 || k > l.ady {
		return emptySpan
	}
	if l.adx == 0 && l.ady == 0 {
		return spanOf(l.x0, l.x0+1)
	}
	if l.ady > l.adx {
		// One pixel per row.
		x := l.x0 + l.sx*floorDiv(2*k*l.adx+l.ady, 2*l.ady)
		return spanOf(x, x+1)
	}
	var lo, hi int64
	if l.ady == 0 {
		lo, hi = 0, l.adx+1
	} else {
		lo = ceilDiv((2*k-1)*l.adx, 2*l.ady)
		hi = ceilDiv((2*k+1)*l.adx, 2*l.ady)
		lo, hi = max(lo, 0), min(hi, l.adx+1)
	}
	if lo >= hi {
		return emptySpan
	}
	if l.sx >= 0 {
		return spanOf(l.x0+lo, l.x0+hi)
	}
	return spanOf(l.x0-hi+1, l.x0-lo+1)
}

// Band is a thick line segment.
//
// It covers the pixel centers whose projection onto the segment lies in
// [-1/2, length+1/2) and whose signed distance from the segment lies in
// [lo/2, hi/2). The distance is positive on the side of the normal
// (-dy, dx). All membership tests are exact.
type Band struct {
	// Doubled end points.
	px, py int64
	qx, qy int64
	// Direction, squared length and projection of the end point.
	dx, dy int64
	s, sl  int64
	lo, hi int64
	rows   [2]int32
}

// NewBand creates a band between the doubled points (px, py) and (qx, qy)
// with the doubled distance range [lo, hi). A zero length band is
// oriented horizontally.
func NewBand(px, py, qx, qy, lo, hi int64) *Band {
	b := &Band{px: px, py: py, qx: qx, qy: qy, lo: lo, hi: hi}
	b.dx, b.dy = qx-px, qy-py
	b.s = b.dx*b.dx + b.dy*b.dy
	b.sl = b.s
	if b.s == 0 {
		b.dx, b.dy, b.s, b.sl = 1, 0, 1, 0
	}
	b.rows = b.rowRange()
	return b
}

// NewLineBand creates the band of a line of the given width, centered on
// the line from p0 to p1.
func NewLineBand(p0, p1 geometry.Point, width uint32) *Band {
	w := int64(width)
	return NewBand(2*int64(p0.X), 2*int64(p0.Y), 2*int64(p1.X), 2*int64(p1.Y), -w, w)
}

// Inside reports whether the pixel center (x, y) lies in the band.
func (b *Band) Inside(x, y int32) bool {
	rx := 2*int64(x) - b.px
	ry := 2*int64(y) - b.py
	a := rx*b.dx + ry*b.dy
	if cmpSqrt(a, -1, b.s) < 0 || cmpSqrt(a-b.sl, 1, b.s) >= 0 {
		return false
	}
	d := ry*b.dx - rx*b.dy
	return cmpSqrt(d, b.lo, b.s) >= 0 && cmpSqrt(d, b.hi, b.s) < 0
}

// Rows returns the rows touched by the band's corners.
func (b *Band) Rows() (first, end int32) {
	return b.rows[0], b.rows[1]
}

func (b *Band) rowRange() [2]int32 {
	ys := b.cornerYs()
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return [2]int32{clamp32(int64(math.Floor(minY)) - 1), clamp32(int64(math.Ceil(maxY)) + 2)}
}

// cornerYs returns the y coordinates of the band's four corners.
func (b *Band) cornerYs() [4]float64 {
	l := math.Sqrt(float64(b.s))
	ux, uy := float64(b.dx)/l, float64(b.dy)/l
	ny := ux
	along := [2]float64{-1, float64(b.sl)/l + 1}
	across := [2]float64{float64(b.lo), float64(b.hi)}
	var ys [4]float64
	for i, a := range along {
		for j, d := range across {
			ys[2*i+j] = (float64(b.py) + a*uy + d*ny) / 2
		}
	}
	return ys
}

// bandScanRows is the height up to which band bounds are found by
// visiting every row.
const bandScanRows = 64

// box returns the bounds of the band. Long bands only visit the rows at
// both ends and the rows next to each corner: a band is convex, so its
// left and right edges move away from the extremes row by row.
func (b *Band) box() (geometry.Rectangle, bool) {
	var e extent
	first, end := b.rows[0], b.rows[1]
	if int64(end)-int64(first) <= bandScanRows {
		e.addRows(b, first, end)
		return e.rect()
	}
	top, bottom := int64(end), int64(first)-1
	for y := int64(first); y < int64(end); y++ {
		if !b.Span(0, int32(y)).Empty() {
			top = y
			break
		}
	}
	for y := int64(end) - 1; y > top; y-- {
		if !b.Span(0, int32(y)).Empty() {
			bottom = y
			break
		}
	}
	if top >= int64(end) {
		return geometry.Rectangle{}, false
	}
	bottom = max(bottom, top)
	e.addSpan(b.Span(0, int32(top)), int32(top))
	e.addSpan(b.Span(0, int32(bottom)), int32(bottom))
	for _, cy := range b.cornerYs() {
		c := int64(math.Floor(cy))
		for y := max(c-3, top); y <= min(c+3, bottom); y++ {
			e.addSpan(b.Span(0, int32(y)), int32(y))
		}
	}
	return e.rect()
}

// Len returns 1.
func (b *Band) Len() int { return 1 }

// Span returns the pixels of row y.
func (b *Band) Span(_ int, y int32) Span {
	if y < b.rows[0] || y >= b.rows[1] {
		return emptySpan
	}
	xl, xr, ok := b.estimate(y)
	if !ok {
		return emptySpan
	}
	return refine(func(x int32) bool { return b.Inside(x, y) }, xl, xr)
}

// estimate returns an approximate range of pixel centers in row y.
func (b *Band) estimate(y int32) (xl, xr float64, ok bool) {
	l := math.Sqrt(float64(b.s))
	ry := 2*float64(y) - float64(b.py)
	xl, xr = math.Inf(-1), math.Inf(1)
	// a(x) = (2x - px)*dx + ry*dy within [-l, sl + l)
	// d(x) = ry*dx - (2x - px)*dy within [lo*l, hi*l)
	constrain := func(coef, c, lo, hi float64) bool {
		// lo <= coef*t + c <= hi with t = 2x - px
		if coef == 0 {
			return c >= lo-1 && c <= hi+1
		}
		t0, t1 := (lo-c)/coef, (hi-c)/coef
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		xl = math.Max(xl, (t0+float64(b.px))/2)
		xr = math.Min(xr, (t1+float64(b.px))/2)
		return true
	}
	if !constrain(float64(b.dx), ry*float64(b.dy), -l, float64(b.sl)+l) {
		return 0, 0, false
	}
	if !constrain(-float64(b.dy), ry*float64(b.dx), float64(b.lo)*l, float64(b.hi)*l) {
		return 0, 0, false
	}
	if xl > xr+2 || math.IsInf(xl, 0) || math.IsInf(xr, 0) {
		return 0, 0, false
	}
	return xl, xr, true
}

// refine turns an approximate range [xl, xr] of a convex row into the
// exact span of pixels satisfying inside.
func refine(inside func(int32) bool, xl, xr float64) Span {
	lo := clamp32(int64(math.Floor(xl)))
	limit := clamp32(int64(math.Ceil(xr)) + 1)
	for lo > math.MinInt32 && inside(lo-1) {
		lo--
	}
	for lo <= limit && !inside(lo) {
		lo++
	}
	if lo > limit {
		return emptySpan
	}
	hi := max(lo, clamp32(int64(math.Floor(xr))))
	for hi > lo && !inside(hi) {
		hi--
	}
	for hi < math.MaxInt32 && inside(hi+1) {
		hi++
	}
	return Span{X0: lo, X1: hi + 1}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v int64) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
