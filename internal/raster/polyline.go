package raster

import "github.com/gogpu/tinygfx/geometry"

// PolylineShape is an open path through a list of vertices.
//
// Its pieces are the segments, followed by one join per interior vertex
// for paths wider than one pixel. Pieces are derived from the vertices on
// every query, so memory use does not grow with the path.
type PolylineShape struct {
	pts   []geometry.Point
	off   geometry.Point
	width uint32
	top   int32
	end   int32
}

// NewPolylineShape creates the shape of a path whose vertices are moved by
// off. Paths with fewer than two vertices are empty.
func NewPolylineShape(pts []geometry.Point, off geometry.Point, width uint32) *PolylineShape {
	s := &PolylineShape{pts: pts, off: off, width: width}
	if len(pts) < 2 || width == 0 {
		return s
	}
	minY, maxY := int64(pts[0].Y), int64(pts[0].Y)
	for _, p := range pts[1:] {
		minY, maxY = min(minY, int64(p.Y)), max(maxY, int64(p.Y))
	}
	minY += int64(off.Y)
	maxY += int64(off.Y)
	// A miter reaches at most miterLimit half widths past its vertex.
	pad := int64(0)
	if width > 1 {
		pad = int64(width)*miterLimit/2 + 2
	}
	s.top, s.end = clamp32(minY-pad), clamp32(maxY+pad+1)
	return s
}

// Rows returns the rows spanned by the vertices and the stroke width.
func (s *PolylineShape) Rows() (first, end int32) { return s.top, s.end }

func (s *PolylineShape) segments() int {
	return max(len(s.pts)-1, 0)
}

// Len returns the number of segments plus the number of joins.
func (s *PolylineShape) Len() int {
	if s.width <= 1 || len(s.pts) < 3 {
		return s.segments()
	}
	return s.segments() + len(s.pts) - 2
}

// Span returns the pixels of piece i on row y.
func (s *PolylineShape) Span(i int, y int32) Span {
	if y < s.top || y >= s.end {
		return emptySpan
	}
	if p := s.piece(i); p != nil {
		return p.Span(0, y)
	}
	return emptySpan
}

// piece returns segment i, or the join at vertex i-n+1 for i >= n. It
// returns nil for joins at straight or repeated vertices.
func (s *PolylineShape) piece(i int) Shape {
	n := s.segments()
	if i < n {
		p, q := s.vertex(i), s.vertex(i+1)
		if s.width == 1 {
			return NewThin(p, q)
		}
		return NewLineBand(p, q, s.width)
	}
	i -= n
	prev, cur, next := s.vertex(i), s.vertex(i+1), s.vertex(i+2)
	if prev == cur || cur == next {
		return nil
	}
	turn := Orientation(prev, cur, next)
	if turn == 0 {
		return nil
	}
	na, nb := outwardNormal(prev, cur), outwardNormal(cur, next)
	e := float64(s.width) / 2
	if turn < 0 {
		// The outer side is the exclusive edge of the segment bands.
		na, nb = na.scale(-1), nb.scale(-1)
		e -= 1e-6
	}
	j := newJoin(toVec(cur), na, nb, e, true)
	return &j
}

// box merges the bounds of every piece.
func (s *PolylineShape) box() (geometry.Rectangle, bool) {
	var e extent
	for i := range s.Len() {
		if p := s.piece(i); p != nil {
			e.addShape(p)
		}
	}
	return e.rect()
}

func (s *PolylineShape) vertex(i int) geometry.Point {
	return s.pts[i].Add(s.off)
}
