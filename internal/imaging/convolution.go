package imaging

import (
	"fmt"

	"github.com/anthonynsimon/bild/convolution"
)

// Kernel is a square, odd-sized matrix of convolution weights.
type Kernel struct {
	k    *convolution.Kernel
	size int
}

// NewKernel builds a kernel from rows of weights. The rows must form a
// non-empty square with an odd side length.
func NewKernel(weights [][]float64) (*Kernel, error) {
	size := len(weights)
	if size == 0 || size%2 == 0 {
		return nil, fmt.Errorf("kernel size %d is not odd: %w", size, ErrInvalidParameter)
	}

	k := convolution.NewKernel(size, size)
	for y, row := range weights {
		if len(row) != size {
			return nil, fmt.Errorf("kernel row %d has %d weights, want %d: %w",
				y, len(row), size, ErrInvalidParameter)
		}
		copy(k.Matrix[y*size:(y+1)*size], row)
	}
	return &Kernel{k: k, size: size}, nil
}

// Size returns the side length of the kernel.
func (k *Kernel) Size() int { return k.size }

// Weight returns the weight at (row, col), both in [0, Size).
func (k *Kernel) Weight(row, col int) float64 {
	return k.k.At(col, row)
}

func (k *Kernel) String() string {
	return fmt.Sprintf("%dx%d kernel", k.size, k.size)
}

func mustKernel(weights [][]float64) *Kernel {
	k, err := NewKernel(weights)
	if err != nil {
		panic(err)
	}
	return k
}

// BlurKernel returns the 3×3 Gaussian-like blur kernel. Its weights sum to 1.
//
//	1/16 1/8 1/16
//	1/8  1/4 1/8
//	1/16 1/8 1/16
func BlurKernel() *Kernel {
	return mustKernel([][]float64{
		{0.0625, 0.125, 0.0625},
		{0.125, 0.25, 0.125},
		{0.0625, 0.125, 0.0625},
	})
}

// SharpenKernel returns the 5×5 sharpen kernel: centre 1, inner ring 1/4,
// outer ring -1/8. Its weights sum to 1.
func SharpenKernel() *Kernel {
	return mustKernel([][]float64{
		{-0.125, -0.125, -0.125, -0.125, -0.125},
		{-0.125, 0.25, 0.25, 0.25, -0.125},
		{-0.125, 0.25, 1, 0.25, -0.125},
		{-0.125, 0.25, 0.25, 0.25, -0.125},
		{-0.125, -0.125, -0.125, -0.125, -0.125},
	})
}

// Convolve applies k to each color channel of src independently.
//
// For every pixel the weighted sum of its neighbourhood is truncated to an
// integer and clamped to [0, MaxValue]. Neighbours outside the image are
// skipped: they are neither mirrored, wrapped nor counted as zero-valued
// samples, so edge pixels are summed over fewer taps.
func Convolve(src *Image, k *Kernel) (*Image, error) {
	if k == nil {
		return nil, fmt.Errorf("convolve: nil kernel: %w", ErrInvalidParameter)
	}
	half := k.size / 2

	return build(src.width, src.height, src.maxValue, func(row, col int) Pixel {
		var sum [3]float64
		for i := -half; i <= half; i++ {
			py := row + i
			if py < 0 || py >= src.height {
				continue
			}
			for j := -half; j <= half; j++ {
				px := col + j
				if px < 0 || px >= src.width {
					continue
				}
				w := k.Weight(i+half, j+half)
				p := src.at(py, px)
				sum[0] += float64(p.R) * w
				sum[1] += float64(p.G) * w
				sum[2] += float64(p.B) * w
			}
		}
		return src.at(row, col).withChannels([3]int{
			clamp(int(sum[0]), 0, src.maxValue),
			clamp(int(sum[1]), 0, src.maxValue),
			clamp(int(sum[2]), 0, src.maxValue),
		})
	})
}

// Blur convolves src with BlurKernel.
func Blur(src *Image) (*Image, error) {
	return Convolve(src, BlurKernel())
}

// Sharpen convolves src with SharpenKernel.
func Sharpen(src *Image) (*Image, error) {
	return Convolve(src, SharpenKernel())
}
