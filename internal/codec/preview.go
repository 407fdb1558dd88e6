package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	imgcodec "github.com/disintegration/imaging"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// PreviewResult is an 8-bit PNG rendering of an image or part of it.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview renders img as a base64-encoded PNG so a client can look at an
// edit without saving it. A non-nil region crops first; a scale other than
// 0 or 1 then resizes with Lanczos resampling.
func Preview(img *imaging.Image, region *imaging.Region, scale float64) (*PreviewResult, error) {
	if scale < 0 {
		return nil, fmt.Errorf("preview scale %g: %w", scale, imaging.ErrInvalidParameter)
	}

	var out image.Image = ToImage(img)
	if region != nil {
		r := *region
		if r.X1 < 0 || r.Y1 < 0 || r.X2 > img.Width() || r.Y2 > img.Height() || r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return nil, fmt.Errorf("preview region (%d,%d)-(%d,%d) outside %dx%d image: %w",
				r.X1, r.Y1, r.X2, r.Y2, img.Width(), img.Height(), imaging.ErrInvalidParameter)
		}
		out = imgcodec.Crop(out, image.Rect(r.X1, r.Y1, r.X2, r.Y2))
	}

	if scale != 0 && scale != 1 {
		w := max(int(float64(out.Bounds().Dx())*scale), 1)
		h := max(int(float64(out.Bounds().Dy())*scale), 1)
		out = imgcodec.Resize(out, w, h, imgcodec.Lanczos)
	}

	var buf bytes.Buffer
	if err := imgcodec.Encode(&buf, out, imgcodec.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// NamedRegion returns the region of a width×height image called name:
// top-left, top-right, bottom-left, bottom-right, top-half, bottom-half,
// left-half, right-half or center (the middle half on both axes).
func NamedRegion(width, height int, name string) (imaging.Region, error) {
	midX, midY := width/2, height/2
	switch name {
	case "top-left":
		return imaging.Region{X1: 0, Y1: 0, X2: midX, Y2: midY}, nil
	case "top-right":
		return imaging.Region{X1: midX, Y1: 0, X2: width, Y2: midY}, nil
	case "bottom-left":
		return imaging.Region{X1: 0, Y1: midY, X2: midX, Y2: height}, nil
	case "bottom-right":
		return imaging.Region{X1: midX, Y1: midY, X2: width, Y2: height}, nil
	case "top-half":
		return imaging.Region{X1: 0, Y1: 0, X2: width, Y2: midY}, nil
	case "bottom-half":
		return imaging.Region{X1: 0, Y1: midY, X2: width, Y2: height}, nil
	case "left-half":
		return imaging.Region{X1: 0, Y1: 0, X2: midX, Y2: height}, nil
	case "right-half":
		return imaging.Region{X1: midX, Y1: 0, X2: width, Y2: height}, nil
	case "center":
		qW, qH := width/4, height/4
		return imaging.Region{X1: qW, Y1: qH, X2: width - qW, Y2: height - qH}, nil
	}
	return imaging.Region{}, fmt.Errorf("unknown region %q: %w", name, imaging.ErrInvalidParameter)
}
