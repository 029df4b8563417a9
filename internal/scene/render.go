package scene

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/tinygfx"
	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
	"github.com/gogpu/tinygfx/primitives"
	"github.com/gogpu/tinygfx/text"
)

// ErrUnknownColor is returned for color values that are neither a hex
// triple nor an SVG color name.
var ErrUnknownColor = errors.New("scene: unknown color")

// ParseColor resolves "#rgb", "#rrggbb" or an SVG color name such as
// "steelblue".
func ParseColor(s string) (pixelcolor.Rgb888, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if c, ok := pixelcolor.Hex[pixelcolor.Rgb888](s); ok {
			return c, nil
		}
		return pixelcolor.Rgb888{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return pixelcolor.FromStd[pixelcolor.Rgb888](c), nil
	}
	return pixelcolor.Rgb888{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Drawables converts the shapes of s into drawables of color type C, in
// scene order.
func Drawables[C pixelcolor.Color](s *Scene) ([]draw.Drawable[C], error) {
	out := make([]draw.Drawable[C], 0, len(s.Shapes))
	for i, sh := range s.Shapes {
		d, err := build[C](sh)
		if err != nil {
			return nil, fmt.Errorf("scene: shape %d (%s): %w", i, sh.Kind, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Render clears target to the scene background, if one is set, and draws
// every shape.
func Render[C pixelcolor.Color](s *Scene, target draw.DrawTarget[C]) error {
	drawables, err := Drawables[C](s)
	if err != nil {
		return err
	}
	if s.Background != "" {
		bg, err := ParseColor(s.Background)
		if err != nil {
			return err
		}
		if err := draw.Clear(target, pixelcolor.Convert[C](bg)); err != nil {
			return err
		}
	}
	tinygfx.Logger().Debug("scene: render", "shapes", len(drawables))
	return draw.DrawAll(target, drawables...)
}

func (p Point) point() geometry.Point { return geometry.Pt(p[0], p[1]) }
func (s Size) size() geometry.Size    { return geometry.NewSize(s[0], s[1]) }

func points(ps []Point) []geometry.Point {
	out := make([]geometry.Point, len(ps))
	for i, p := range ps {
		out[i] = p.point()
	}
	return out
}

func color[C pixelcolor.Color](s string) (C, error) {
	c, err := ParseColor(s)
	if err != nil {
		var zero C
		return zero, err
	}
	return pixelcolor.Convert[C](c), nil
}

func build[C pixelcolor.Color](sh Shape) (draw.Drawable[C], error) {
	if sh.Kind == "text" {
		return buildText[C](sh)
	}
	style, err := primitiveStyle[C](sh)
	if err != nil {
		return nil, err
	}
	at := sh.At.point()
	switch sh.Kind {
	case "rectangle":
		return primitives.NewStyled(geometry.NewRectangle(at, sh.Size.size()), style), nil
	case "rounded_rectangle":
		r := primitives.RoundedRectangleWithEqualCorners(geometry.NewRectangle(at, sh.Size.size()), sh.Radius.size())
		return primitives.NewStyled(r, style), nil
	case "circle":
		return primitives.NewStyled(primitives.NewCircle(at, sh.Diameter), style), nil
	case "ellipse":
		return primitives.NewStyled(primitives.NewEllipse(at, sh.Size.size()), style), nil
	case "line":
		if len(sh.Points) != 2 {
			return nil, fmt.Errorf("line needs 2 points, got %d", len(sh.Points))
		}
		return primitives.NewStyled(primitives.NewLine(sh.Points[0].point(), sh.Points[1].point()), style), nil
	case "polyline":
		return primitives.NewStyled(primitives.NewPolyline(points(sh.Points)), style), nil
	case "triangle":
		if len(sh.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d", len(sh.Points))
		}
		p := sh.Points
		return primitives.NewStyled(primitives.NewTriangle(p[0].point(), p[1].point(), p[2].point()), style), nil
	case "arc":
		a := primitives.NewArc(at, sh.Diameter, geometry.Degrees(sh.Start), geometry.Degrees(sh.Sweep))
		return primitives.NewStyled(a, style), nil
	case "sector":
		s := primitives.NewSector(at, sh.Diameter, geometry.Degrees(sh.Start), geometry.Degrees(sh.Sweep))
		return primitives.NewStyled(s, style), nil
	}
	return nil, fmt.Errorf("unknown kind %q", sh.Kind)
}

func primitiveStyle[C pixelcolor.Color](sh Shape) (primitives.PrimitiveStyle[C], error) {
	b := primitives.NewStyleBuilder[C]()
	if sh.Fill != "" {
		c, err := color[C](sh.Fill)
		if err != nil {
			return primitives.PrimitiveStyle[C]{}, err
		}
		b = b.FillColor(c)
	}
	if sh.Stroke != "" {
		c, err := color[C](sh.Stroke)
		if err != nil {
			return primitives.PrimitiveStyle[C]{}, err
		}
		width := uint32(1)
		if sh.StrokeWidth != nil {
			width = *sh.StrokeWidth
		}
		b = b.StrokeColor(c).StrokeWidth(width)
	}
	switch sh.Alignment {
	case "", "center":
		b = b.StrokeAlignment(primitives.StrokeCenter)
	case "inside":
		b = b.StrokeAlignment(primitives.StrokeInside)
	case "outside":
		b = b.StrokeAlignment(primitives.StrokeOutside)
	default:
		return primitives.PrimitiveStyle[C]{}, fmt.Errorf("unknown stroke alignment %q", sh.Alignment)
	}
	return b.Build(), nil
}

func buildText[C pixelcolor.Color](sh Shape) (draw.Drawable[C], error) {
	fg, err := color[C](sh.Color)
	if err != nil {
		return nil, err
	}
	b := text.NewMonoTextStyleBuilder[C](text.Font7x13).TextColor(fg)
	if sh.Background != "" {
		bg, err := color[C](sh.Background)
		if err != nil {
			return nil, err
		}
		b = b.BackgroundColor(bg)
	}
	if sh.Underline {
		b = b.Underline(text.DecorationTextColor[C]())
	}
	if sh.Strikethrough {
		b = b.Strikethrough(text.DecorationTextColor[C]())
	}

	var ts text.TextStyle
	switch sh.Align {
	case "", "left":
		ts.Alignment = text.AlignLeft
	case "center":
		ts.Alignment = text.AlignCenter
	case "right":
		ts.Alignment = text.AlignRight
	default:
		return nil, fmt.Errorf("unknown text alignment %q", sh.Align)
	}
	switch sh.Baseline {
	case "", "alphabetic":
		ts.Baseline = text.BaselineAlphabetic
	case "top":
		ts.Baseline = text.BaselineTop
	case "bottom":
		ts.Baseline = text.BaselineBottom
	case "middle":
		ts.Baseline = text.BaselineMiddle
	default:
		return nil, fmt.Errorf("unknown baseline %q", sh.Baseline)
	}
	return text.NewTextWithStyle[C](sh.Text, sh.At.point(), b.Build(), ts), nil
}
