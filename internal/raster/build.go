package raster

import (
	"math"

	"github.com/gogpu/tinygfx/geometry"
)

// The builders below return nil for shapes that cover nothing, so the
// results can be passed to NewScanner and Bounds directly.

// grow returns r grown by n pixels on every side, saturating at zero size.
func grow(r geometry.Rectangle, n int64) geometry.Rectangle {
	if n >= 0 {
		d := uint32(min(n, math.MaxInt32))
		return geometry.NewRectangle(r.TopLeft.Sub(geometry.Pt(int32(d), int32(d))), r.Size.Add(geometry.NewSizeEqual(d).Mul(2)))
	}
	d := uint32(min(-n, math.MaxInt32))
	return geometry.NewRectangle(r.TopLeft.Add(geometry.Pt(int32(d), int32(d))), r.Size.Sub(geometry.NewSizeEqual(d).Mul(2)))
}

func orNil(s Shape, covers bool) Shape {
	if !covers {
		return nil
	}
	return s
}

// Line returns the shape of a line of the given width: Bresenham pixels
// for width 1 and a centered band for wider lines.
func Line(p0, p1 geometry.Point, width uint32) Shape {
	switch width {
	case 0:
		return nil
	case 1:
		return NewThin(p0, p1)
	}
	return NewLineBand(p0, p1, width)
}

// RectFill returns the rectangle shrunk by inside pixels.
func RectFill(r geometry.Rectangle, inside uint32) Shape {
	in := grow(r, -int64(inside))
	return orNil(NewRect(in), !in.IsZeroSized())
}

// RectStroke returns the band between the rectangle grown by outside and
// shrunk by inside.
func RectStroke(r geometry.Rectangle, inside, outside uint32) Shape {
	if inside+outside == 0 {
		return nil
	}
	out := grow(r, int64(outside))
	if out.IsZeroSized() {
		return nil
	}
	return Ring{Outer: NewRect(out), Inner: NewRect(grow(r, -int64(inside)))}
}

// CircleFill returns the disc shrunk by inside pixels.
func CircleFill(topLeft geometry.Point, diameter, inside uint32) Shape {
	d := satSub(diameter, 2*inside)
	return orNil(NewDisc(topLeft.Add(geometry.Pt(int32(inside), int32(inside))), d), d > 0)
}

// CircleStroke returns the ring between the disc grown by outside and
// shrunk by inside.
func CircleStroke(topLeft geometry.Point, diameter, inside, outside uint32) Shape {
	if inside+outside == 0 || diameter+2*outside == 0 {
		return nil
	}
	o := int32(outside)
	return Ring{
		Outer: NewDisc(topLeft.Sub(geometry.Pt(o, o)), diameter+2*outside),
		Inner: CircleFill(topLeft, diameter, inside),
	}
}

// EllipseFill returns the ellipse shrunk by inside pixels.
func EllipseFill(r geometry.Rectangle, inside uint32) Shape {
	in := grow(r, -int64(inside))
	return orNil(NewEllipse(in), !in.IsZeroSized())
}

// EllipseStroke returns the ring between the ellipse grown by outside and
// shrunk by inside.
func EllipseStroke(r geometry.Rectangle, inside, outside uint32) Shape {
	if inside+outside == 0 {
		return nil
	}
	out := grow(r, int64(outside))
	if out.IsZeroSized() {
		return nil
	}
	return Ring{Outer: NewEllipse(out), Inner: EllipseFill(r, inside)}
}

// RoundedRectFill returns the rounded rectangle shrunk by inside pixels.
// Corner radii shrink with it.
func RoundedRectFill(r geometry.Rectangle, radii [4]geometry.Size, inside uint32) Shape {
	in := grow(r, -int64(inside))
	if in.IsZeroSized() {
		return nil
	}
	d := geometry.NewSizeEqual(inside)
	for i := range radii {
		radii[i] = radii[i].Sub(d)
	}
	return NewRoundedRect(in, radii)
}

// RoundedRectStroke returns the band between the rounded rectangle grown
// by outside and shrunk by inside. Only corners with a radius grow.
func RoundedRectStroke(r geometry.Rectangle, radii [4]geometry.Size, inside, outside uint32) Shape {
	if inside+outside == 0 {
		return nil
	}
	out := grow(r, int64(outside))
	if out.IsZeroSized() {
		return nil
	}
	clamped := NewRoundedRect(r, radii).radii
	outer := clamped
	d := geometry.NewSizeEqual(outside)
	for i := range outer {
		if !outer[i].IsZero() {
			outer[i] = outer[i].Add(d)
		}
	}
	return Ring{Outer: NewRoundedRect(out, outer), Inner: RoundedRectFill(r, clamped, inside)}
}

// TriangleFill returns the closed triangle, or nil for collinear vertices.
func TriangleFill(a, b, c geometry.Point) Shape {
	t := NewTriangle(a, b, c)
	return orNil(t, !t.empty)
}

// TriangleStroke returns the outline of a triangle.
//
// Width 1 strokes are the three Bresenham edges. Wider strokes are three
// bands covering [-outside, inside) from each edge, measured towards the
// interior, with miter or bevel joins on the outside of every corner.
// Strokes without an outside part are clipped to the triangle. Collinear
// triangles get centered bands without joins.
func TriangleStroke(a, b, c geometry.Point, width, inside, outside uint32) Shape {
	switch width {
	case 0:
		return nil
	case 1:
		return Union{NewThin(a, b), NewThin(b, c), NewThin(c, a)}
	}
	o := Orientation(a, b, c)
	if o < 0 {
		b, c = c, b
	}
	lo, hi := -2*int64(outside), 2*int64(inside)
	if o == 0 {
		lo, hi = -int64(width), int64(width)
	}
	v := [3]geometry.Point{a, b, c}
	u := make(Union, 0, 6)
	for i := range 3 {
		p, q := v[i], v[(i+1)%3]
		u = append(u, NewBand(2*int64(p.X), 2*int64(p.Y), 2*int64(q.X), 2*int64(q.Y), lo, hi))
	}
	if o == 0 {
		return u
	}
	if outside == 0 {
		return Intersection{Base: u, Mask: NewTriangle(a, b, c)}
	}
	for i := range 3 {
		prev, cur, next := v[(i+2)%3], v[i], v[(i+1)%3]
		na := outwardNormal(prev, cur)
		nb := outwardNormal(cur, next)
		j := newJoin(toVec(cur), na, nb, float64(outside), true)
		u = append(u, &j)
	}
	return u
}

// ArcStroke returns the circle stroke ring restricted to an angular range.
func ArcStroke(topLeft geometry.Point, diameter uint32, start, sweep geometry.Angle, inside, outside uint32) Shape {
	ring := CircleStroke(topLeft, diameter, inside, outside)
	if ring == nil {
		return nil
	}
	cx2, cy2 := center2x(topLeft, diameter)
	w := NewWedge(cx2, cy2, start, sweep)
	switch {
	case w.Empty():
		return nil
	case w.Full():
		return ring
	}
	return Sectioned{Base: ring, Wedge: w}
}

// SectorFill returns the disc shrunk by inside pixels restricted to an
// angular range.
func SectorFill(topLeft geometry.Point, diameter uint32, start, sweep geometry.Angle, inside uint32) Shape {
	disc := CircleFill(topLeft, diameter, inside)
	if disc == nil {
		return nil
	}
	cx2, cy2 := center2x(topLeft, diameter)
	w := NewWedge(cx2, cy2, start, sweep)
	switch {
	case w.Empty():
		return nil
	case w.Full():
		return disc
	}
	return Sectioned{Base: disc, Wedge: w}
}

// SectorStroke returns the outline of a pie slice: the arc ring, a band
// along each radial edge and a bevel at the center on the outer side.
func SectorStroke(topLeft geometry.Point, diameter uint32, start, sweep geometry.Angle, width, inside, outside uint32) Shape {
	if width == 0 {
		return nil
	}
	cx2, cy2 := center2x(topLeft, diameter)
	w := NewWedge(cx2, cy2, start, sweep)
	switch {
	case w.Empty():
		return nil
	case w.Full():
		return CircleStroke(topLeft, diameter, inside, outside)
	}

	u := make(Union, 0, 4)
	if ring := CircleStroke(topLeft, diameter, inside, outside); ring != nil {
		u = append(u, Sectioned{Base: ring, Wedge: w})
	}
	r := float64(diameter)
	ds, de := w.dirs[0], w.dirs[2]
	sx, sy := cx2+int64(math.Round(ds.x*r)), cy2+int64(math.Round(ds.y*r))
	ex, ey := cx2+int64(math.Round(de.x*r)), cy2+int64(math.Round(de.y*r))
	lo, hi := -2*int64(outside), 2*int64(inside)
	// Both edges are oriented so that the sector lies on the positive side.
	u = append(u, NewBand(cx2, cy2, sx, sy, lo, hi), NewBand(ex, ey, cx2, cy2, lo, hi))

	if outside == 0 {
		return Intersection{Base: u, Mask: Sectioned{Base: NewDisc(topLeft, diameter), Wedge: w}}
	}
	if _, sw, _ := SweepRange(start, sweep); sw < math.Pi {
		c := vec{float64(cx2) / 2, float64(cy2) / 2}
		ns := vec{ds.y, -ds.x}
		ne := vec{-de.y, de.x}
		j := newJoin(c, ns, ne, float64(outside), false)
		u = append(u, &j)
	}
	return u
}

// Polyline returns the shape of an open path of the given width, with
// every vertex moved by off.
func Polyline(vertices []geometry.Point, off geometry.Point, width uint32) Shape {
	if width == 0 || len(vertices) < 2 {
		return nil
	}
	return NewPolylineShape(vertices, off, width)
}

func center2x(topLeft geometry.Point, diameter uint32) (int64, int64) {
	d := int64(diameter)
	return 2*int64(topLeft.X) + d - 1, 2*int64(topLeft.Y) + d - 1
}

// outwardNormal returns the unit normal on the negative side of the
// segment from p to q.
func outwardNormal(p, q geometry.Point) vec {
	d := toVec(q).sub(toVec(p)).unit()
	return vec{d.y, -d.x}
}

func toVec(p geometry.Point) vec {
	return vec{float64(p.X), float64(p.Y)}
}

func satSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
