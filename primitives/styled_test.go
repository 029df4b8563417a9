package primitives

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/mock"
	"github.com/gogpu/tinygfx/pixelcolor"
)

type rgb = pixelcolor.Rgb565

var (
	red   = pixelcolor.Red[rgb]()
	green = pixelcolor.Green[rgb]()
)

// styledShape is the method set shared by every Styled instantiation.
type styledShape interface {
	BoundingBox() geometry.Rectangle
	Draw(target draw.DrawTarget[rgb]) error
	Pixels() *PixelIterator[rgb]
}

func styledAll(style PrimitiveStyle[rgb]) map[string]styledShape {
	return map[string]styledShape{
		"rectangle": NewStyled(geometry.Rect(10, 10, 20, 15), style),
		"circle":    NewStyled(NewCircle(geometry.Pt(10, 10), 21), style),
		"ellipse":   NewStyled(NewEllipse(geometry.Pt(8, 12), geometry.NewSize(30, 17)), style),
		"rounded": NewStyled(RoundedRectangleWithEqualCorners(
			geometry.Rect(10, 10, 30, 20), geometry.NewSize(6, 4)), style),
		"line":     NewStyled(NewLine(geometry.Pt(5, 7), geometry.Pt(50, 30)), style),
		"triangle": NewStyled(NewTriangle(geometry.Pt(10, 10), geometry.Pt(50, 20), geometry.Pt(20, 50)), style),
		"polyline": NewStyled(NewPolyline([]geometry.Point{{X: 5, Y: 5}, {X: 30, Y: 10}, {X: 15, Y: 40}, {X: 50, Y: 50}}), style),
		"arc":      NewStyled(NewArc(geometry.Pt(10, 10), 30, geometry.Degrees(30), geometry.Degrees(200)), style),
		"sector":   NewStyled(NewSector(geometry.Pt(10, 10), 30, geometry.Degrees(-45), geometry.Degrees(250)), style),
	}
}

func countColors(it *PixelIterator[rgb]) map[rgb]int {
	counts := make(map[rgb]int)
	for p := range it.All() {
		counts[p.Color]++
	}
	return counts
}

func TestStyledNoOverdraw(t *testing.T) {
	widths := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 20}
	for _, align := range []StrokeAlignment{StrokeInside, StrokeCenter, StrokeOutside} {
		for _, width := range widths {
			style := NewStyleBuilder[rgb]().
				StrokeColor(red).
				StrokeWidth(width).
				StrokeAlignment(align).
				FillColor(green).
				Build()
			for name, s := range styledAll(style) {
				seen := make(map[geometry.Point]bool)
				var drawn []geometry.Point
				for p := range s.Pixels().All() {
					if seen[p.Point] {
						t.Errorf("%s %v/%d: pixel %v emitted twice", name, align, width, p.Point)
						break
					}
					seen[p.Point] = true
					drawn = append(drawn, p.Point)
				}
				if len(drawn) == 0 {
					if width > 0 {
						t.Errorf("%s %v/%d: nothing drawn", name, align, width)
					}
					continue
				}
				if got, want := s.BoundingBox(), envelope(drawn); got != want {
					t.Errorf("%s %v/%d: BoundingBox() = %v, want pixel envelope %v", name, align, width, got, want)
				}
			}
		}
	}
}

func TestStyledSharpPolylineJoins(t *testing.T) {
	paths := [][]geometry.Point{
		{{X: 22, Y: 60}, {X: 40, Y: 30}, {X: 58, Y: 60}},
		{{X: 0, Y: 40}, {X: 20, Y: 20}, {X: 40, Y: 40}},
		{{X: 10, Y: 10}, {X: 60, Y: 25}, {X: 10, Y: 40}},
		{{X: 5, Y: 50}, {X: 15, Y: 10}, {X: 25, Y: 50}, {X: 35, Y: 10}},
	}
	for _, width := range []uint32{4, 8, 10, 14, 20} {
		for i, pts := range paths {
			s := NewStyled(NewPolyline(pts), NewStroke(red, width))
			seen := make(map[geometry.Point]bool)
			var drawn []geometry.Point
			for p := range s.Pixels().All() {
				if seen[p.Point] {
					t.Fatalf("path %d/%d: pixel %v emitted twice", i, width, p.Point)
				}
				seen[p.Point] = true
				drawn = append(drawn, p.Point)
			}
			if got, want := s.BoundingBox(), envelope(drawn); got != want {
				t.Errorf("path %d/%d: BoundingBox() = %v, want %v", i, width, got, want)
			}
		}
	}
}

func TestStyledMiterTip(t *testing.T) {
	// Both paths turn upwards at their middle vertex with a miter join.
	paths := [][]geometry.Point{
		{{X: 22, Y: 60}, {X: 40, Y: 30}, {X: 58, Y: 60}},
		{{X: 0, Y: 40}, {X: 20, Y: 20}, {X: 40, Y: 40}},
	}
	for _, width := range []uint32{8, 10, 14, 20} {
		for i, pts := range paths {
			v := pts[1]
			dx, dy := float64(v.X-pts[0].X), float64(pts[0].Y-v.Y)
			half := math.Atan2(dx, dy)
			tip := float64(v.Y) - float64(width)/2/math.Sin(half)
			top := int32(math.MaxInt32)
			for p := range NewStyled(NewPolyline(pts), NewStroke(red, width)).Pixels().All() {
				top = min(top, p.Point.Y)
			}
			if want := int32(math.Ceil(tip)); top > want {
				t.Errorf("path %d/%d: topmost row = %d, want <= %d", i, width, top, want)
			}
		}
	}
}

// envelope returns the smallest rectangle containing ps.
func envelope(ps []geometry.Point) geometry.Rectangle {
	tl, br := ps[0], ps[0]
	for _, p := range ps[1:] {
		tl, br = tl.ComponentMin(p), br.ComponentMax(p)
	}
	return geometry.RectangleWithCorners(tl, br)
}

func TestStyledRectangleAlignment(t *testing.T) {
	r := geometry.Rect(20, 20, 20, 20)
	tests := []struct {
		align  StrokeAlignment
		box    geometry.Rectangle
		fill   int
		stroke int
	}{
		{StrokeInside, geometry.Rect(20, 20, 20, 20), 12 * 12, 400 - 144},
		{StrokeOutside, geometry.Rect(16, 16, 28, 28), 20 * 20, 784 - 400},
		{StrokeCenter, geometry.Rect(18, 18, 24, 24), 16 * 16, 576 - 256},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			style := NewStyleBuilder[rgb]().
				StrokeColor(red).
				StrokeWidth(4).
				StrokeAlignment(tt.align).
				FillColor(green).
				Build()
			s := NewStyled(r, style)
			if got := s.BoundingBox(); got != tt.box {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.box)
			}
			counts := countColors(s.Pixels())
			if counts[green] != tt.fill {
				t.Errorf("fill pixels = %d, want %d", counts[green], tt.fill)
			}
			if counts[red] != tt.stroke {
				t.Errorf("stroke pixels = %d, want %d", counts[red], tt.stroke)
			}
		})
	}
}

func TestStyledRectangleFill(t *testing.T) {
	r := geometry.Rect(3, 4, 5, 6)
	display := mock.New[rgb]()
	if err := NewStyled(r, NewFill(green)).Draw(display); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := len(display.DrawnPoints()); got != 30 {
		t.Errorf("drawn pixels = %d, want 30", got)
	}
	if got := display.AffectedArea(); got != r {
		t.Errorf("AffectedArea() = %v, want %v", got, r)
	}
}

func TestStyledCircleFillArea(t *testing.T) {
	display := mock.New[pixelcolor.BinaryColor]()
	c := NewStyled(NewCircle(geometry.Pt(0, 0), 10), NewFill(pixelcolor.BinaryOn))
	if err := c.Draw(display); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got, want := display.AffectedArea(), geometry.Rect(0, 0, 10, 10); got != want {
		t.Errorf("AffectedArea() = %v, want %v", got, want)
	}
	if got, want := c.BoundingBox(), geometry.Rect(0, 0, 10, 10); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
}

func TestStyledFullArcIsCircle(t *testing.T) {
	style := NewStroke(red, 3)
	arc := mock.New[rgb]()
	if err := NewStyled(NewArc(geometry.Pt(10, 10), 31, geometry.Degrees(45), geometry.Degrees(360)), style).Draw(arc); err != nil {
		t.Fatalf("arc Draw() error = %v", err)
	}
	circle := mock.New[rgb]()
	if err := NewStyled(NewCircle(geometry.Pt(10, 10), 31), style).Draw(circle); err != nil {
		t.Fatalf("circle Draw() error = %v", err)
	}
	arc.AssertEqual(t, circle)
}

func TestStyledDegenerateLine(t *testing.T) {
	s := NewStyled(NewLine(geometry.Pt(5, 5), geometry.Pt(5, 5)), NewStroke(red, 3))
	display := mock.New[rgb]()
	if err := s.Draw(display); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	want := geometry.Rect(5, 4, 1, 3)
	if got := display.AffectedArea(); got != want {
		t.Errorf("AffectedArea() = %v, want %v", got, want)
	}
	if got := len(display.DrawnPoints()); got != 3 {
		t.Errorf("drawn pixels = %d, want 3", got)
	}
	if got := s.BoundingBox(); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
}

func TestStyledZeroSize(t *testing.T) {
	at := geometry.Pt(7, 8)
	both := NewStyleBuilder[rgb]().
		StrokeColor(red).
		StrokeWidth(2).
		StrokeAlignment(StrokeOutside).
		FillColor(green).
		Build()
	tests := []struct {
		name string
		s    styledShape
	}{
		{"rectangle", NewStyled(geometry.NewRectangle(at, geometry.NewSize(0, 5)), both)},
		{"circle", NewStyled(NewCircle(at, 0), both)},
		{"ellipse", NewStyled(NewEllipse(at, geometry.NewSize(0, 4)), both)},
		{"rounded", NewStyled(RoundedRectangleWithEqualCorners(geometry.NewRectangle(at, geometry.Size{}), geometry.NewSize(2, 2)), both)},
		{"arc", NewStyled(NewArc(at, 0, 0, geometry.Degrees(90)), both)},
		{"sector", NewStyled(NewSector(at, 0, 0, geometry.Degrees(90)), both)},
		{"polyline", NewStyled(NewPolyline([]geometry.Point{at}), both)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.s.BoundingBox(), (geometry.Rectangle{TopLeft: at}); got != want {
				t.Errorf("BoundingBox() = %v, want %v", got, want)
			}
			if _, ok := tt.s.Pixels().Next(); ok {
				t.Errorf("Pixels() is not empty")
			}
		})
	}
}

func TestStyledZeroWidthKeepsBox(t *testing.T) {
	fill := NewFill(green)
	line := NewLine(geometry.Pt(7, 8), geometry.Pt(9, 12))
	tri := NewTriangle(geometry.Pt(7, 8), geometry.Pt(9, 8), geometry.Pt(11, 8))
	path := NewPolyline([]geometry.Point{{X: 1, Y: 2}, {X: 6, Y: 9}, {X: 3, Y: 4}})
	arc := NewArc(geometry.Pt(10, 10), 20, geometry.Degrees(0), geometry.Degrees(90))
	tests := []struct {
		name string
		s    styledShape
		want geometry.Rectangle
	}{
		{"line", NewStyled(line, fill), geometry.Rect(7, 8, 3, 5)},
		{"collinear triangle", NewStyled(tri, fill), geometry.Rect(7, 8, 5, 1)},
		{"polyline", NewStyled(path, NewStroke(red, 0)), path.BoundingBox()},
		{"arc", NewStyled(arc, NewStroke(red, 0)), arc.BoundingBox()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.BoundingBox(); got != tt.want {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.want)
			}
			if _, ok := tt.s.Pixels().Next(); ok {
				t.Errorf("Pixels() is not empty")
			}
		})
	}
}

func TestStyledBoundingBoxIgnoresColors(t *testing.T) {
	base := NewStyleBuilder[rgb]().StrokeWidth(4).StrokeAlignment(StrokeOutside)
	styles := []PrimitiveStyle[rgb]{
		base.StrokeColor(red).FillColor(green).Build(),
		base.StrokeColor(red).Build(),
		base.FillColor(green).Build(),
		base.Build(),
	}
	circle := NewCircle(geometry.Pt(20, 20), 15)
	tri := NewTriangle(geometry.Pt(10, 10), geometry.Pt(40, 15), geometry.Pt(20, 35))
	wantCircle := geometry.Rect(16, 16, 23, 23)
	wantTri := NewStyled(tri, styles[0]).BoundingBox()
	for i, style := range styles {
		if got := NewStyled(circle, style).BoundingBox(); got != wantCircle {
			t.Errorf("style %d: circle BoundingBox() = %v, want %v", i, got, wantCircle)
		}
		if got := NewStyled(tri, style).BoundingBox(); got != wantTri {
			t.Errorf("style %d: triangle BoundingBox() = %v, want %v", i, got, wantTri)
		}
	}
	if !wantTri.Contains(geometry.Pt(10, 10)) {
		t.Errorf("triangle BoundingBox() = %v does not contain the vertex (10, 10)", wantTri)
	}
}

func TestStyledStrokeWinsOverFill(t *testing.T) {
	s := NewStyled(NewCircle(geometry.Pt(5, 5), 21), NewStyleBuilder[rgb]().
		StrokeColor(red).StrokeWidth(2).FillColor(green).Build())
	display := mock.New[rgb]()
	if err := s.Draw(display); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if c, _ := display.Get(geometry.Pt(15, 15)); c != green {
		t.Errorf("center = %v, want %v", c, green)
	}
	if c, _ := display.Get(geometry.Pt(15, 5)); c != red {
		t.Errorf("top = %v, want %v", c, red)
	}
}

func TestStyledTransparent(t *testing.T) {
	s := NewStyled(NewCircle(geometry.Pt(0, 0), 10), PrimitiveStyle[rgb]{})
	display := mock.New[rgb]()
	if err := s.Draw(display); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := len(display.DrawnPoints()); got != 0 {
		t.Errorf("drawn pixels = %d, want 0", got)
	}
	if got, want := s.BoundingBox(), geometry.Rect(0, 0, 10, 10); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
}

func TestStyledDrawPropagatesErrors(t *testing.T) {
	display := mock.New[rgb]()
	s := NewStyled(geometry.Rect(60, 60, 10, 10), NewStroke(red, 1))
	var oob *mock.OutOfBoundsError
	if err := s.Draw(display); !errors.As(err, &oob) {
		t.Errorf("Draw() error = %v, want *mock.OutOfBoundsError", err)
	}
}
