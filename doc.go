// Package tinygfx is a 2D graphics library for memory-constrained displays.
//
// # Overview
//
// tinygfx turns geometric primitives, text and raster images into streams of
// colored pixels. Nothing is buffered in proportion to the size of a shape:
// every primitive is rasterized by a small state machine that produces one
// pixel at a time, and the caller's draw target decides what to do with it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tinygfx/framebuffer"
//	    "github.com/gogpu/tinygfx/geometry"
//	    "github.com/gogpu/tinygfx/pixelcolor"
//	    "github.com/gogpu/tinygfx/primitives"
//	)
//
//	fb := framebuffer.New[pixelcolor.Rgb565](128, 64)
//
//	style := primitives.NewStyleBuilder[pixelcolor.Rgb565]().
//	    StrokeColor(pixelcolor.NewRgb565(31, 0, 0)).
//	    StrokeWidth(3).
//	    FillColor(pixelcolor.NewRgb565(0, 63, 0)).
//	    Build()
//
//	circle := primitives.NewCircle(geometry.Pt(10, 10), 40)
//	err := primitives.NewStyled(circle, style).Draw(fb)
//
// # Architecture
//
// The library is organized into:
//   - geometry: integer points, sizes, rectangles and angles
//   - pixelcolor: fixed-width color types and conversions
//   - draw: the DrawTarget contract, default fills and adapter targets
//   - primitives: shape descriptors, styles and pixel iterators
//   - bitmap: raw packed images and adapters for decoded images
//   - text: monospace fonts and text layout
//   - framebuffer, mock: in-memory and test targets
//
// # Coordinate System
//
// Integer pixel coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles start at the positive X axis and increase clockwise on screen
//
// # Allocation
//
// Rasterizers keep their state in fixed-size structs. Drawing into a target
// allocates only what the target itself allocates.
package tinygfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
