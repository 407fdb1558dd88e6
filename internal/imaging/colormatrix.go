package imaging

import "fmt"

// matrixClampMax bounds every color matrix output. It is a fixed 8-bit
// ceiling and does not follow the source image's MaxValue.
const matrixClampMax = 255

// ColorMatrix is a 3×3 linear transform applied to each pixel's
// (red, green, blue) column vector. Row i produces output channel i.
type ColorMatrix [3][3]float64

var (
	// SepiaMatrix gives images a warm brown tone.
	SepiaMatrix = ColorMatrix{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}

	// GreyscaleMatrix produces the same result as ComponentGreyscale with Luma.
	GreyscaleMatrix = ColorMatrix{
		{lumaRed, lumaGreen, lumaBlue},
		{lumaRed, lumaGreen, lumaBlue},
		{lumaRed, lumaGreen, lumaBlue},
	}
)

// Apply returns the transformed channel vector. Each product is truncated
// to an integer before the three are summed, then the sum is clamped to
// [0, 255].
func (m ColorMatrix) Apply(in [3]int) [3]int {
	var out [3]int
	for i, row := range m {
		sum := 0
		for j, w := range row {
			sum += int(float64(in[j]) * w)
		}
		out[i] = clamp(sum, 0, matrixClampMax)
	}
	return out
}

// ApplyColorMatrix applies m to every pixel of src.
//
// Outputs are clamped to 255 regardless of src.MaxValue. When the source
// declares a smaller MaxValue and a result lands above it, the operation fails
// with ErrConstructionInvariant instead of returning an invalid image.
func ApplyColorMatrix(src *Image, m ColorMatrix) (*Image, error) {
	out, err := mapPixels(src, func(p Pixel) Pixel {
		return p.withChannels(m.Apply(p.Channels()))
	})
	if err != nil {
		return nil, fmt.Errorf("color transform: %w", err)
	}
	return out, nil
}

// Sepia applies SepiaMatrix to src.
func Sepia(src *Image) (*Image, error) {
	return ApplyColorMatrix(src, SepiaMatrix)
}

// Greyscale applies GreyscaleMatrix to src.
func Greyscale(src *Image) (*Image, error) {
	return ApplyColorMatrix(src, GreyscaleMatrix)
}
