// Package bitmap provides images that can be drawn into draw targets.
//
// Raw holds packed pixel data in the storage layout of its color type:
// pixels are stored row by row, rows start on a byte boundary and formats
// narrower than a byte are packed most significant bits first. Formats
// wider than a byte are big endian unless WithByteOrder says otherwise.
//
// Image positions any ImageDrawable on the target and SubImage selects a
// rectangular window of one. FromImage adapts decoded image.Image values,
// for example from golang.org/x/image/bmp.
package bitmap
