// Package draw defines the contract between drawables and the devices or
// buffers they are drawn into.
//
// A DrawTarget only has to accept a stream of pixels through DrawIter.
// Targets that can do better for contiguous areas implement the optional
// ContiguousFiller, SolidFiller and Clearer interfaces; the package level
// FillContiguous, FillSolid and Clear functions pick the accelerated method
// when it is available and fall back to DrawIter otherwise.
//
// Errors returned by a target are passed through unchanged. The first error
// aborts a draw; pixels already accepted by the target stay drawn.
//
// Adapter targets (Translated, Cropped, Clipped, ColorConverted) wrap
// another target. Clipping of coordinates happens only in adapters and in
// concrete targets, never in pixel iterators.
package draw
