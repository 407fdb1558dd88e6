package imaging

import (
	"fmt"
	"strings"
)

// Axis selects the direction of a flip.
type Axis int

const (
	// Horizontal mirrors columns: the left edge becomes the right edge.
	Horizontal Axis = iota
	// Vertical mirrors rows: the top edge becomes the bottom edge.
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts "horizontal" or "vertical" (case-insensitive) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown flip axis %q: %w", s, ErrInvalidParameter)
}

// Channel names the value a component greyscale extracts from each pixel.
type Channel int

const (
	Red       Channel = iota // red channel
	Green                    // green channel
	Blue                     // blue channel
	Value                    // max(r, g, b)
	Intensity                // (r + g + b) / 3, rounded down
	Luma                     // ITU-R BT.709 weights, each term truncated
)

var channelNames = [...]string{"red", "green", "blue", "value", "intensity", "luma"}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// ParseChannel converts a channel name such as "red" or "luma"
// (case-insensitive) to a Channel.
func ParseChannel(s string) (Channel, error) {
	lower := strings.ToLower(s)
	for i, name := range channelNames {
		if name == lower {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q: %w", s, ErrInvalidParameter)
}

// Luma weights shared by the component greyscale and the greyscale matrix.
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

// Flip mirrors src along axis. The result has the same dimensions, and
// flipping twice along the same axis gives back the original image.
func Flip(src *Image, axis Axis) (*Image, error) {
	switch axis {
	case Horizontal:
		return build(src.width, src.height, src.maxValue, func(row, col int) Pixel {
			return src.at(row, src.width-1-col)
		})
	case Vertical:
		return build(src.width, src.height, src.maxValue, func(row, col int) Pixel {
			return src.at(src.height-1-row, col)
		})
	}
	return nil, fmt.Errorf("flip: %v: %w", axis, ErrInvalidParameter)
}

// Brighten adds delta to every channel, clamping to [0, MaxValue]. A negative
// delta darkens; a zero delta returns an equal image.
func Brighten(src *Image, delta int) (*Image, error) {
	return mapPixels(src, func(p Pixel) Pixel {
		return p.withChannels([3]int{
			clamp(p.R+delta, 0, src.maxValue),
			clamp(p.G+delta, 0, src.maxValue),
			clamp(p.B+delta, 0, src.maxValue),
		})
	})
}

// ComponentGreyscale sets r=g=b of every pixel to the selected component.
func ComponentGreyscale(src *Image, channel Channel) (*Image, error) {
	if channel < Red || channel > Luma {
		return nil, fmt.Errorf("component greyscale: %v: %w", channel, ErrInvalidParameter)
	}
	return mapPixels(src, func(p Pixel) Pixel {
		return p.grey(clamp(component(p, channel), 0, src.maxValue))
	})
}

func component(p Pixel, channel Channel) int {
	switch channel {
	case Red:
		return p.R
	case Green:
		return p.G
	case Blue:
		return p.B
	case Value:
		return max(p.R, p.G, p.B)
	case Intensity:
		return (p.R + p.G + p.B) / 3
	default:
		return int(float64(p.R)*lumaRed) + int(float64(p.G)*lumaGreen) + int(float64(p.B)*lumaBlue)
	}
}
