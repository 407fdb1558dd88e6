package imaging

import "fmt"

// Transform is a whole-image operation that keeps the source dimensions.
// Every pointwise, color matrix and convolution operation has one.
type Transform func(src *Image) (*Image, error)

// FlipTransform returns Flip along axis as a Transform.
func FlipTransform(axis Axis) Transform {
	return func(src *Image) (*Image, error) { return Flip(src, axis) }
}

// BrightenTransform returns Brighten by delta as a Transform.
func BrightenTransform(delta int) Transform {
	return func(src *Image) (*Image, error) { return Brighten(src, delta) }
}

// ComponentTransform returns ComponentGreyscale for channel as a Transform.
func ComponentTransform(channel Channel) Transform {
	return func(src *Image) (*Image, error) { return ComponentGreyscale(src, channel) }
}

// ColorMatrixTransform returns ApplyColorMatrix with m as a Transform.
func ColorMatrixTransform(m ColorMatrix) Transform {
	return func(src *Image) (*Image, error) { return ApplyColorMatrix(src, m) }
}

// ConvolveTransform returns Convolve with k as a Transform.
func ConvolveTransform(k *Kernel) Transform {
	return func(src *Image) (*Image, error) { return Convolve(src, k) }
}

// Masked runs op on src and keeps its output only where mask is pure black.
//
// The candidate image is computed exactly as the unmasked operation would
// compute it. For each position the candidate pixel is kept when the mask
// pixel has r=g=b=0; otherwise the source pixel is copied unchanged.
//
// The mask must have the same width and height as src. A mismatch fails with
// ErrDimensionMismatch before op runs.
func Masked(op Transform, src, mask *Image) (*Image, error) {
	if mask == nil {
		return nil, fmt.Errorf("masked transform: nil mask: %w", ErrInvalidParameter)
	}
	if !src.SameSize(mask) {
		return nil, fmt.Errorf("mask is %dx%d, source is %dx%d: %w",
			mask.width, mask.height, src.width, src.height, ErrDimensionMismatch)
	}

	candidate, err := op(src)
	if err != nil {
		return nil, err
	}
	if !candidate.SameSize(src) {
		return nil, fmt.Errorf("masked transform changed size to %dx%d: %w",
			candidate.width, candidate.height, ErrDimensionMismatch)
	}

	return build(src.width, src.height, src.maxValue, func(row, col int) Pixel {
		if mask.at(row, col).IsBlack() {
			return candidate.at(row, col)
		}
		return src.at(row, col)
	})
}

// MaskedFlip is Flip restricted to the black pixels of mask.
func MaskedFlip(src, mask *Image, axis Axis) (*Image, error) {
	return Masked(FlipTransform(axis), src, mask)
}

// MaskedBrighten is Brighten restricted to the black pixels of mask.
func MaskedBrighten(src, mask *Image, delta int) (*Image, error) {
	return Masked(BrightenTransform(delta), src, mask)
}

// MaskedComponentGreyscale is ComponentGreyscale restricted to the black
// pixels of mask.
func MaskedComponentGreyscale(src, mask *Image, channel Channel) (*Image, error) {
	return Masked(ComponentTransform(channel), src, mask)
}

// MaskedSepia is Sepia restricted to the black pixels of mask.
func MaskedSepia(src, mask *Image) (*Image, error) {
	return Masked(ColorMatrixTransform(SepiaMatrix), src, mask)
}

// MaskedGreyscale is Greyscale restricted to the black pixels of mask.
func MaskedGreyscale(src, mask *Image) (*Image, error) {
	return Masked(ColorMatrixTransform(GreyscaleMatrix), src, mask)
}

// MaskedBlur is Blur restricted to the black pixels of mask.
func MaskedBlur(src, mask *Image) (*Image, error) {
	return Masked(ConvolveTransform(BlurKernel()), src, mask)
}

// MaskedSharpen is Sharpen restricted to the black pixels of mask.
func MaskedSharpen(src, mask *Image) (*Image, error) {
	return Masked(ConvolveTransform(SharpenKernel()), src, mask)
}
