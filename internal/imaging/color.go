package imaging

import (
	"fmt"
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains one pixel in several representations.
type ColorResult struct {
	Hex      string   `json:"hex"`       // "#RRGGBB", scaled to 8 bits
	Pixel    Pixel    `json:"pixel"`     // Channel values at the image's MaxValue
	MaxValue int      `json:"max_value"` // The image's MaxValue
	RGB      RGBColor `json:"rgb"`       // 8-bit components
	HSL      HSLColor `json:"hsl"`       // HSL representation
}

// SampleColor returns the pixel at column x, row y.
//
// Coordinates are 0-based with origin at top-left. Channels of images whose
// MaxValue is not 255 are rescaled to 8 bits for the Hex, RGB and HSL fields;
// Pixel keeps the raw values.
func SampleColor(img *Image, x, y int) (*ColorResult, error) {
	p, err := img.PixelAt(y, x)
	if err != nil {
		return nil, fmt.Errorf("sample color: %w", err)
	}

	rgb := to8Bit(p, img.maxValue)
	c, _ := colorful.MakeColor(color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex:      fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B),
		Pixel:    p,
		MaxValue: img.maxValue,
		RGB:      rgb,
		HSL:      HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive). X is the column and Y the row.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors of img, or of
// region when it is non-nil.
//
// Colors are scaled to 8 bits and quantized to multiples of 16 per component
// before counting, so near-identical shades are grouped. A region must lie
// inside the image and be non-empty.
func DominantColors(img *Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("dominant colors: count %d: %w", count, ErrInvalidParameter)
	}
	r := Region{X1: 0, Y1: 0, X2: img.width, Y2: img.height}
	if region != nil {
		r = *region
		if r.X1 < 0 || r.Y1 < 0 || r.X2 > img.width || r.Y2 > img.height || r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) invalid for %dx%d image: %w",
				r.X1, r.Y1, r.X2, r.Y2, img.width, img.height, ErrInvalidParameter)
		}
	}

	counts := make(map[RGBColor]int)
	total := 0
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			c := to8Bit(img.at(y, x), img.maxValue)
			c = RGBColor{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			counts[c]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}

// to8Bit rescales p from [0, maxValue] to [0, 255].
func to8Bit(p Pixel, maxValue int) RGBColor {
	scale := func(v int) uint8 {
		if maxValue == 0 {
			return 0
		}
		if maxValue == 255 {
			return uint8(clamp(v, 0, 255))
		}
		return uint8(clamp(v*255/maxValue, 0, 255))
	}
	return RGBColor{R: scale(p.R), G: scale(p.G), B: scale(p.B)}
}
