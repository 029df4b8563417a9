// Package primitives provides the geometric primitives of tinygfx and the
// styled drawing of them.
//
// Each primitive is a small value storing only its defining geometry:
// Circle stores a top-left corner and a diameter, so odd and even
// diameters are both exact. Primitives expose their bounding box and an
// unstyled point iterator. Closed primitives also report containment.
//
// Combining a primitive with a PrimitiveStyle gives a Styled value that
// can be drawn into any draw.DrawTarget:
//
//	style := primitives.NewStyleBuilder[pixelcolor.Rgb565]().
//		StrokeColor(pixelcolor.Red[pixelcolor.Rgb565]()).
//		StrokeWidth(3).
//		FillColor(pixelcolor.Blue[pixelcolor.Rgb565]()).
//		Build()
//	err := primitives.NewStyled(primitives.NewCircle(geometry.Pt(10, 10), 40), style).Draw(display)
//
// Pixel iterators are lazy and restartable. They emit every pixel at most
// once in row-major order and never clip: clipping is the draw target's
// job. Where stroke and fill overlap the stroke color is used.
package primitives
