package imaging

import "fmt"

// Image is an immutable width×height grid of pixels with a declared maximum
// channel value.
//
// Rows are indexed top to bottom and columns left to right, both 0-based.
// Every engine operation returns a new Image; none modifies its input.
//
// # Invariants
//
//   - Width, Height and MaxValue are never negative
//   - Every pixel channel lies in [0, MaxValue]
type Image struct {
	width    int
	height   int
	maxValue int
	pix      []Pixel // row-major, len == width*height
}

// New builds an image from a grid of rows. The grid is copied, so the caller
// may reuse it afterwards.
//
// Returns an error wrapping ErrConstructionInvariant if any dimension is
// negative, the grid shape does not match width and height, or a pixel
// channel is negative or above maxValue.
func New(width, height, maxValue int, grid [][]Pixel) (*Image, error) {
	if width < 0 || height < 0 || maxValue < 0 {
		return nil, fmt.Errorf("image %dx%d max %d: negative characteristic: %w",
			width, height, maxValue, ErrConstructionInvariant)
	}
	if len(grid) != height {
		return nil, fmt.Errorf("image has %d rows, want %d: %w", len(grid), height, ErrConstructionInvariant)
	}
	for row, line := range grid {
		if len(line) != width {
			return nil, fmt.Errorf("image row %d has %d pixels, want %d: %w",
				row, len(line), width, ErrConstructionInvariant)
		}
	}

	return build(width, height, maxValue, func(row, col int) Pixel {
		return grid[row][col]
	})
}

// Fill returns a width×height image where every pixel is p.
func Fill(width, height, maxValue int, p Pixel) (*Image, error) {
	if width < 0 || height < 0 || maxValue < 0 {
		return nil, fmt.Errorf("image %dx%d max %d: negative characteristic: %w",
			width, height, maxValue, ErrConstructionInvariant)
	}
	return build(width, height, maxValue, func(int, int) Pixel { return p })
}

// build allocates an image and fills it from f in row-major order. Every
// produced pixel is checked against maxValue; dimensions must already be
// non-negative.
func build(width, height, maxValue int, f func(row, col int) Pixel) (*Image, error) {
	pix := make([]Pixel, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := f(row, col)
			if !p.valid(maxValue) {
				return nil, fmt.Errorf("pixel %v at (%d,%d) outside [0,%d]: %w",
					p, row, col, maxValue, ErrConstructionInvariant)
			}
			pix[row*width+col] = p
		}
	}
	return &Image{width: width, height: height, maxValue: maxValue, pix: pix}, nil
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// MaxValue returns the declared upper bound for channel values.
func (m *Image) MaxValue() int { return m.maxValue }

// At returns the pixel at (row, col), or the zero Pixel when the position is
// outside the image.
func (m *Image) At(row, col int) Pixel {
	if !m.contains(row, col) {
		return Pixel{}
	}
	return m.pix[row*m.width+col]
}

// PixelAt returns the pixel at (row, col) or an error wrapping
// ErrInvalidParameter when the position is outside the image.
func (m *Image) PixelAt(row, col int) (Pixel, error) {
	if !m.contains(row, col) {
		return Pixel{}, fmt.Errorf("position (%d,%d) outside %dx%d image: %w",
			row, col, m.width, m.height, ErrInvalidParameter)
	}
	return m.pix[row*m.width+col], nil
}

// Pixels returns a copy of the pixel grid as rows.
func (m *Image) Pixels() [][]Pixel {
	grid := make([][]Pixel, m.height)
	for row := range grid {
		grid[row] = make([]Pixel, m.width)
		copy(grid[row], m.pix[row*m.width:(row+1)*m.width])
	}
	return grid
}

// SameSize reports whether m and other have identical width and height.
func (m *Image) SameSize(other *Image) bool {
	return m.width == other.width && m.height == other.height
}

// Equal reports whether two images have the same dimensions, maxValue and
// pixels. Pixel alpha is ignored, as in Pixel.Equal.
func (m *Image) Equal(other *Image) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if !m.SameSize(other) || m.maxValue != other.maxValue {
		return false
	}
	for i := range m.pix {
		if !m.pix[i].Equal(other.pix[i]) {
			return false
		}
	}
	return true
}

func (m *Image) String() string {
	return fmt.Sprintf("%dx%d image (max %d)", m.width, m.height, m.maxValue)
}

func (m *Image) contains(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// at is the unchecked accessor used by transform loops.
func (m *Image) at(row, col int) Pixel {
	return m.pix[row*m.width+col]
}

// mapPixels builds an image of the same size and maxValue as src by applying
// f to every source pixel.
func mapPixels(src *Image, f func(p Pixel) Pixel) (*Image, error) {
	return build(src.width, src.height, src.maxValue, func(row, col int) Pixel {
		return f(src.at(row, col))
	})
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
