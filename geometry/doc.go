// Package geometry provides the integer geometry types shared by every
// tinygfx package: points, sizes, rectangles, anchor points and angles.
//
// Points are signed and may lie anywhere, including outside of any display.
// Sizes are unsigned and saturate instead of overflowing.
package geometry
