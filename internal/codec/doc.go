// Package codec moves images between files and the editing engine.
//
// PPM is read and written as plain text with the image's own MaxValue.
// Every other format is decoded to 8-bit NRGBA and converted to an engine
// image with MaxValue 255; on save, channels are rescaled back to 8 bits.
//
// # Supported Formats
//
//   - .ppm: plain-text P3
//   - .bmp: golang.org/x/image/bmp
//   - .png, .jpg, .jpeg, .gif, .tif, .tiff: github.com/disintegration/imaging
package codec
