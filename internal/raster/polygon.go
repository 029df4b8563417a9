package raster

import (
	"math"

	"github.com/gogpu/tinygfx/geometry"
)

// Triangle is a closed filled triangle. Pixel centers on an edge belong to
// the triangle. Triangles with collinear vertices are empty.
type Triangle struct {
	v     [3][2]int64
	empty bool
	top   int32
	end   int32
}

// NewTriangle creates a filled triangle.
func NewTriangle(a, b, c geometry.Point) *Triangle {
	t := &Triangle{v: [3][2]int64{
		{int64(a.X), int64(a.Y)},
		{int64(b.X), int64(b.Y)},
		{int64(c.X), int64(c.Y)},
	}}
	area := cross(t.v[1][0]-t.v[0][0], t.v[1][1]-t.v[0][1], t.v[2][0]-t.v[0][0], t.v[2][1]-t.v[0][1])
	switch {
	case area == 0:
		t.empty = true
		return t
	case area < 0:
		t.v[1], t.v[2] = t.v[2], t.v[1]
	}
	t.top = clamp32(min(t.v[0][1], t.v[1][1], t.v[2][1]))
	t.end = clamp32(max(t.v[0][1], t.v[1][1], t.v[2][1]) + 1)
	return t
}

// Orientation returns the sign of the signed area of a, b, c: positive
// when the interior is on the left of a->b in the normal (-dy, dx) sense.
func Orientation(a, b, c geometry.Point) int {
	area := cross(int64(b.X)-int64(a.X), int64(b.Y)-int64(a.Y), int64(c.X)-int64(a.X), int64(c.Y)-int64(a.Y))
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	}
	return 0
}

// Rows returns the rows between the topmost and bottommost vertex.
func (t *Triangle) Rows() (first, end int32) {
	if t.empty {
		return 0, 0
	}
	return t.top, t.end
}

// Len returns 1.
func (t *Triangle) Len() int { return 1 }

// box returns the box spanned by the vertices, which are all covered.
func (t *Triangle) box() (geometry.Rectangle, bool) {
	if t.empty {
		return geometry.Rectangle{}, false
	}
	tl := geometry.Pt(clamp32(min(t.v[0][0], t.v[1][0], t.v[2][0])), t.top)
	br := geometry.Pt(clamp32(max(t.v[0][0], t.v[1][0], t.v[2][0])), t.end-1)
	return geometry.RectangleWithCorners(tl, br), true
}

// Span returns the pixels of row y.
func (t *Triangle) Span(_ int, y int32) Span {
	if t.empty || y < t.top || y >= t.end {
		return emptySpan
	}
	lo, hi := int64(math.MinInt32), int64(math.MaxInt32)
	yy := int64(y)
	for i := range 3 {
		a, b := t.v[i], t.v[(i+1)%3]
		// Edge function (bx-ax)(y-ay) - (by-ay)(x-ax) >= 0, written as
		// coef*x + c >= 0.
		coef := -(b[1] - a[1])
		c := (b[0]-a[0])*(yy-a[1]) + (b[1]-a[1])*a[0]
		switch {
		case coef > 0:
			lo = max(lo, ceilDiv(-c, coef))
		case coef < 0:
			hi = min(hi, floorDiv(c, -coef))
		case c < 0:
			return emptySpan
		}
	}
	if lo > hi {
		return emptySpan
	}
	return spanOf(lo, hi+1)
}

func cross(ax, ay, bx, by int64) int64 {
	return ax*by - ay*bx
}

type vec struct{ x, y float64 }

func (a vec) add(b vec) vec       { return vec{a.x + b.x, a.y + b.y} }
func (a vec) sub(b vec) vec       { return vec{a.x - b.x, a.y - b.y} }
func (a vec) scale(f float64) vec { return vec{a.x * f, a.y * f} }
func (a vec) dot(b vec) float64   { return a.x*b.x + a.y*b.y }
func (a vec) cross(b vec) float64 { return a.x*b.y - a.y*b.x }

func (a vec) unit() vec {
	l := math.Hypot(a.x, a.y)
	if l == 0 {
		return vec{}
	}
	return vec{a.x / l, a.y / l}
}

const polyEps = 1e-9

// Polygon is a small convex polygon in pixel coordinates. It covers the
// pixel centers inside or on its boundary.
type Polygon struct {
	pts  [4]vec
	n    int
	sign float64
	top  int32
	end  int32
}

func newPolygon(pts ...vec) Polygon {
	var p Polygon
	p.n = copy(p.pts[:], pts)
	area := 0.0
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := range p.n {
		a, b := p.pts[i], p.pts[(i+1)%p.n]
		area += a.cross(b)
		minY, maxY = math.Min(minY, a.y), math.Max(maxY, a.y)
	}
	if math.Abs(area) < polyEps {
		return Polygon{}
	}
	p.sign = math.Copysign(1, area)
	p.top = clamp32(int64(math.Ceil(minY - polyEps)))
	p.end = clamp32(int64(math.Floor(maxY+polyEps)) + 1)
	return p
}

// Rows returns the rows between the topmost and bottommost vertex.
func (p *Polygon) Rows() (first, end int32) { return p.top, p.end }

// Len returns 1.
func (p *Polygon) Len() int { return 1 }

// Span returns the pixels of row y.
func (p *Polygon) Span(_ int, y int32) Span {
	if p.n == 0 || y < p.top || y >= p.end {
		return emptySpan
	}
	yy := float64(y)
	xl, xr := math.Inf(-1), math.Inf(1)
	for i := range p.n {
		a, b := p.pts[i], p.pts[(i+1)%p.n]
		coef := -p.sign * (b.y - a.y)
		c := p.sign * ((b.x-a.x)*(yy-a.y) + (b.y-a.y)*a.x)
		switch {
		case math.Abs(coef) < polyEps:
			if c < -polyEps {
				return emptySpan
			}
		case coef > 0:
			xl = math.Max(xl, -c/coef)
		default:
			xr = math.Min(xr, -c/coef)
		}
	}
	lo := int64(math.Ceil(xl - polyEps))
	hi := int64(math.Floor(xr + polyEps))
	if lo > hi {
		return emptySpan
	}
	return spanOf(lo, hi+1)
}

// miterLimit is the largest ratio of miter length to stroke offset that
// is joined with a miter. Sharper corners get a bevel.
const miterLimit = 2

// newJoin returns the polygon that closes the gap on the outer side of a
// corner at v. na and nb are the outward unit normals of the incoming and
// outgoing segment and e is the stroke extent on that side.
//
// The corner point itself is left to the segments: the apex is moved off
// v by a tiny amount so that a join never covers the shape's interior.
func newJoin(v, na, nb vec, e float64, miter bool) Polygon {
	apex := v.add(na.add(nb).unit().scale(1e-6))
	a := v.add(na.scale(e))
	b := v.add(nb.scale(e))
	cos := na.dot(nb)
	// Miter length over e is sqrt(2 / (1 + cos)).
	if miter && 1+cos > 2.0/(miterLimit*miterLimit) {
		m := v.add(na.add(nb).scale(e / (1 + cos)))
		return newPolygon(apex, a, m, b)
	}
	return newPolygon(apex, a, b)
}
