// Package mock provides MockDisplay, a small in-memory draw target for
// tests.
//
// The display is 64x64 pixels. Drawing the same pixel twice or drawing
// outside the display is reported as an error unless explicitly allowed,
// which catches duplicate emission and bounding box bugs in drawables.
//
// Displays can be built from and compared against text patterns:
//
//	want := mock.MustFromPattern[pixelcolor.BinaryColor]([]string{
//	    "###",
//	    "#.#",
//	    "###",
//	})
//	display.AssertEqual(t, want)
//
// Pattern characters depend on the color type. Binary colors use '.' for
// off and '#' for on. Grayscale colors use a hexadecimal digit of the
// luma. RGB colors use 'K' black, 'R' red, 'G' green, 'B' blue, 'Y'
// yellow, 'M' magenta, 'C' cyan and 'W' white. A space is an undrawn
// pixel.
package mock
