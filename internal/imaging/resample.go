package imaging

import (
	"fmt"
	"math"
)

// Downscale resizes src to width×height using bilinear interpolation.
//
// The target must be positive and no larger than the source on either axis;
// upscaling fails with ErrDimensionMismatch. The result keeps src.MaxValue.
//
// # Algorithm
//
// Destination pixel (r, c) maps to the source position
//
//	x = r · H / H'   (row)
//	y = c · W / W'   (column)
//
// and blends the four neighbours A=(⌊x⌋,⌊y⌋), B=(⌊x⌋+1,⌊y⌋), C=(⌊x⌋,⌊y⌋+1)
// and D=(⌊x⌋+1,⌊y⌋+1). Neighbours past the last row or column repeat the
// edge pixel. Per channel, with dx = x-⌊x⌋ and dy = y-⌊y⌋:
//
//	m = B·dx + A·(1-dx)
//	n = D·dx + C·(1-dx)
//	v = n·dy + m·(1-dy)
//
// v is truncated and clamped to [0, MaxValue]. Alpha is taken from A.
func Downscale(src *Image, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("downscale to %dx%d: %w", width, height, ErrInvalidParameter)
	}
	if width > src.width || height > src.height {
		return nil, fmt.Errorf("downscale %dx%d to larger %dx%d: %w",
			src.width, src.height, width, height, ErrDimensionMismatch)
	}

	lastRow := src.height - 1
	lastCol := src.width - 1

	return build(width, height, src.maxValue, func(row, col int) Pixel {
		x := float64(row*src.height) / float64(height)
		y := float64(col*src.width) / float64(width)
		xf := math.Floor(x)
		yf := math.Floor(y)
		dx := x - xf
		dy := y - yf

		r0 := int(xf)
		c0 := int(yf)
		r1 := min(r0+1, lastRow)
		c1 := min(c0+1, lastCol)

		a := src.at(r0, c0).Channels()
		b := src.at(r1, c0).Channels()
		c := src.at(r0, c1).Channels()
		d := src.at(r1, c1).Channels()

		var out [3]int
		for i := range out {
			m := float64(b[i])*dx + float64(a[i])*(1-dx)
			n := float64(d[i])*dx + float64(c[i])*(1-dx)
			out[i] = clamp(int(n*dy+m*(1-dy)), 0, src.maxValue)
		}
		return src.at(r0, c0).withChannels(out)
	})
}

// DownscaleFactor resizes src by per-axis scale factors in (0, 1]. The
// target size is ⌈W·widthFactor⌉ × ⌈H·heightFactor⌉.
func DownscaleFactor(src *Image, widthFactor, heightFactor float64) (*Image, error) {
	if !validFactor(widthFactor) || !validFactor(heightFactor) {
		return nil, fmt.Errorf("downscale factors %g x %g outside (0, 1]: %w",
			widthFactor, heightFactor, ErrInvalidParameter)
	}
	width := int(math.Ceil(float64(src.width) * widthFactor))
	height := int(math.Ceil(float64(src.height) * heightFactor))
	return Downscale(src, width, height)
}

func validFactor(f float64) bool {
	return f > 0 && f <= 1 && !math.IsNaN(f)
}
