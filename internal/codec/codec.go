package codec

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	imgcodec "github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Load reads the image file at path. The format is chosen by extension:
// ".ppm" is plain-text PPM, ".bmp" is decoded with x/image/bmp, and any
// other extension known to disintegration/imaging (png, jpg, jpeg, gif,
// tif, tiff) goes through it.
//
// Unknown extensions fail with ErrInvalidParameter.
func Load(path string) (*imaging.Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ppm" && ext != ".bmp" {
		if _, err := imgcodec.FormatFromFilename(path); err != nil {
			return nil, fmt.Errorf("load %s: unsupported extension %q: %w", path, ext, imaging.ErrInvalidParameter)
		}
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch ext {
	case ".ppm":
		return ReadPPM(f)
	case ".bmp":
		img, err := bmp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode bmp: %w", err)
		}
		return FromImage(img)
	default:
		img, err := imgcodec.Decode(f, imgcodec.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		return FromImage(img)
	}
}

// Save writes img to path in the format implied by its extension, with the
// same dispatch as Load. Channels are rescaled to 8 bits for every format
// except PPM, which keeps the image's MaxValue.
func Save(path string, img *imaging.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	var format imgcodec.Format
	if ext != ".ppm" && ext != ".bmp" {
		var err error
		if format, err = imgcodec.FormatFromFilename(path); err != nil {
			return fmt.Errorf("save %s: unsupported extension %q: %w", path, ext, imaging.ErrInvalidParameter)
		}
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	switch ext {
	case ".ppm":
		err = WritePPM(f, img)
	case ".bmp":
		err = bmp.Encode(f, ToImage(img))
	default:
		err = imgcodec.Encode(f, ToImage(img), format)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// FromImage converts a decoded image to an engine Image with maxValue 255.
// Alpha is carried over; color channels are un-premultiplied 8-bit values.
func FromImage(src image.Image) (*imaging.Image, error) {
	nrgba := imgcodec.Clone(src)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	grid := make([][]imaging.Pixel, h)
	for y := range grid {
		grid[y] = make([]imaging.Pixel, w)
		for x := range grid[y] {
			i := y*nrgba.Stride + x*4
			s := nrgba.Pix[i : i+4 : i+4]
			grid[y][x] = imaging.Pixel{R: int(s[0]), G: int(s[1]), B: int(s[2]), A: int(s[3])}
		}
	}
	return imaging.New(w, h, 255, grid)
}

// ToImage converts img to an 8-bit NRGBA image, rescaling channels from
// [0, MaxValue] to [0, 255]. An image with MaxValue 0 comes out black.
func ToImage(img *imaging.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	scale := func(v int) uint8 {
		switch img.MaxValue() {
		case 0:
			return 0
		case 255:
			return uint8(min(max(v, 0), 255))
		default:
			return uint8(min(max(v*255/img.MaxValue(), 0), 255))
		}
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			p := img.At(y, x)
			i := y*out.Stride + x*4
			out.Pix[i+0] = scale(p.R)
			out.Pix[i+1] = scale(p.G)
			out.Pix[i+2] = scale(p.B)
			out.Pix[i+3] = uint8(min(max(p.A, 0), 255))
		}
	}
	return out
}
