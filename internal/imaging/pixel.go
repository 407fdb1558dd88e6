package imaging

import "fmt"

// OpaqueAlpha is the alpha value given to pixels built without one.
const OpaqueAlpha = 255

// Pixel is a single red, green, blue sample with an optional alpha.
//
// Pixels are values: transforms build new pixels rather than modifying
// existing ones. Channels are never negative when a pixel comes from
// NewPixel, NewPixelAlpha or any engine transform.
type Pixel struct {
	R int `json:"r"` // Red channel
	G int `json:"g"` // Green channel
	B int `json:"b"` // Blue channel
	A int `json:"a"` // Alpha channel, OpaqueAlpha unless supplied
}

// NewPixel returns an opaque pixel. Any negative channel is rejected.
func NewPixel(r, g, b int) (Pixel, error) {
	return NewPixelAlpha(r, g, b, OpaqueAlpha)
}

// NewPixelAlpha returns a pixel with an explicit alpha value.
func NewPixelAlpha(r, g, b, a int) (Pixel, error) {
	if r < 0 || g < 0 || b < 0 {
		return Pixel{}, fmt.Errorf("pixel (%d,%d,%d): negative channel: %w", r, g, b, ErrConstructionInvariant)
	}
	return Pixel{R: r, G: g, B: b, A: a}, nil
}

// Equal reports whether p and q have the same red, green and blue values.
// Alpha does not take part in the comparison.
func (p Pixel) Equal(q Pixel) bool {
	return p.R == q.R && p.G == q.G && p.B == q.B
}

// IsBlack reports whether all three color channels are zero. A black mask
// pixel selects the corresponding source pixel for editing.
func (p Pixel) IsBlack() bool {
	return p.R == 0 && p.G == 0 && p.B == 0
}

// Channels returns the color channels as a red, green, blue vector.
func (p Pixel) Channels() [3]int {
	return [3]int{p.R, p.G, p.B}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.R, p.G, p.B)
}

// withChannels returns p with its color channels replaced and alpha kept.
func (p Pixel) withChannels(c [3]int) Pixel {
	return Pixel{R: c[0], G: c[1], B: c[2], A: p.A}
}

// grey returns p with all color channels set to v.
func (p Pixel) grey(v int) Pixel {
	return Pixel{R: v, G: v, B: v, A: p.A}
}

func (p Pixel) valid(maxValue int) bool {
	return p.R >= 0 && p.G >= 0 && p.B >= 0 &&
		p.R <= maxValue && p.G <= maxValue && p.B <= maxValue
}
