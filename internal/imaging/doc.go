// Package imaging is the pixel-processing engine of the image editor.
//
// It defines the canonical Pixel and Image types and the catalog of
// transforms that operate on them: flips, brightness, component greyscale,
// 3×3 color matrices (sepia, luma greyscale), convolution filters (blur,
// sharpen), bilinear downscaling and per-channel histograms. Every transform
// is a pure function from an Image (plus parameters) to a new Image; inputs
// are never modified.
//
// # Coordinate System
//
// Pixels are addressed as (row, col), both 0-based, with (0,0) at the
// top-left corner. Helpers shared with the server tool API
// (SampleColor, Region) use (x, y) where x is the column and y the row.
//
// # Masks
//
// Any same-size transform can be restricted to part of an image with
// Masked. A mask is an ordinary Image of the same size as the source; pure
// black mask pixels (r=g=b=0) select the positions the transform may change,
// all other positions are copied from the source unchanged.
//
// # Clamping
//
// Brighten, convolution and downscale clamp channels to [0, MaxValue] of the
// source image. Color matrix transforms clamp to the fixed range [0, 255]
// whatever the source MaxValue; if that leaves a channel above MaxValue the
// transform fails with ErrConstructionInvariant.
//
// # Registry
//
// Registry is the name → Image store the editor front ends read from and
// write to. It is passed explicitly; the package keeps no global state.
//
// # Error Handling
//
// Functions return errors wrapping one of ErrNotFound, ErrDimensionMismatch,
// ErrInvalidParameter, ErrMalformedInput or ErrConstructionInvariant. A
// failing transform returns no image; there are no partial results.
package imaging
