// Package raster implements the scanline engine shared by all primitives.
//
// A Shape describes a pixel set row by row as a fixed number of pieces,
// each contributing at most one horizontal span per row. Overlapping
// pieces are merged by re-querying the pieces while walking a row, so no
// pixel is produced twice and no visited set is needed. Scanner walks a
// stroke shape and a fill shape together, top to bottom and left to
// right, and gives stroke pixels priority over fill pixels.
//
// Integer coordinates are doubled internally so that centers of even sized
// shapes stay exact. Exact predicates use 64-bit integers and are valid
// for coordinates within about ±2^29.
package raster
