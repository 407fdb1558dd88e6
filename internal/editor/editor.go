package editor

import (
	"fmt"

	"github.com/ironsheep/image-editor-mcp/internal/codec"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Op names an editing operation.
type Op string

// Operations accepted by Apply.
const (
	OpFlip      Op = "flip"      // mirror along Request.Axis
	OpBrighten  Op = "brighten"  // add Request.Delta to every channel
	OpComponent Op = "component" // greyscale from Request.Channel
	OpSepia     Op = "sepia"
	OpGreyscale Op = "greyscale"
	OpBlur      Op = "blur"
	OpSharpen   Op = "sharpen"
	OpDownscale Op = "downscale" // resize to Width×Height or by the factors
)

// Request describes one Apply call. Only the fields used by Op are read.
type Request struct {
	Op     Op
	Source string // registry name of the input image
	Mask   string // optional registry name of a mask image
	Dest   string // registry name for the result

	Delta   int             // OpBrighten
	Channel imaging.Channel // OpComponent
	Axis    imaging.Axis    // OpFlip

	// OpDownscale: an explicit target size when both are positive, otherwise
	// the factors in (0, 1].
	Width        int
	Height       int
	WidthFactor  float64
	HeightFactor float64
}

// Info describes a named image.
type Info struct {
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxValue int    `json:"max_value"`
}

// Editor runs editing operations against named images.
//
// Each operation reads its inputs from the registry and stores its result
// under the destination name; inputs are never modified. An operation that
// fails stores nothing.
type Editor struct {
	reg *imaging.Registry
}

// New creates an editor over reg. A nil reg gets a fresh registry.
func New(reg *imaging.Registry) *Editor {
	if reg == nil {
		reg = imaging.NewRegistry()
	}
	return &Editor{reg: reg}
}

// Registry returns the registry the editor works on.
func (e *Editor) Registry() *imaging.Registry {
	return e.reg
}

// Load reads the image file at path and stores it under name.
func (e *Editor) Load(path, name string) (Info, error) {
	img, err := codec.Load(path)
	if err != nil {
		return Info{}, err
	}
	if err := e.reg.Put(name, img); err != nil {
		return Info{}, err
	}
	return infoOf(name, img), nil
}

// Save writes the image stored under name to path.
func (e *Editor) Save(name, path string) error {
	img, err := e.reg.Get(name)
	if err != nil {
		return err
	}
	return codec.Save(path, img)
}

// Apply runs req and stores the result under req.Dest.
func (e *Editor) Apply(req Request) (Info, error) {
	if req.Dest == "" {
		return Info{}, fmt.Errorf("%s: empty destination name: %w", req.Op, imaging.ErrInvalidParameter)
	}
	src, err := e.reg.Get(req.Source)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", req.Op, err)
	}

	var out *imaging.Image
	if req.Op == OpDownscale {
		if req.Mask != "" {
			return Info{}, fmt.Errorf("%s: masks are not supported: %w", req.Op, imaging.ErrInvalidParameter)
		}
		out, err = downscale(src, req)
	} else {
		out, err = e.transform(src, req)
	}
	if err != nil {
		return Info{}, fmt.Errorf("%s %q: %w", req.Op, req.Source, err)
	}

	if err := e.reg.Put(req.Dest, out); err != nil {
		return Info{}, err
	}
	return infoOf(req.Dest, out), nil
}

// transform runs a same-size operation, through the mask gate when req
// names a mask.
func (e *Editor) transform(src *imaging.Image, req Request) (*imaging.Image, error) {
	op, err := transformFor(req)
	if err != nil {
		return nil, err
	}
	if req.Mask == "" {
		return op(src)
	}
	mask, err := e.reg.Get(req.Mask)
	if err != nil {
		return nil, fmt.Errorf("mask: %w", err)
	}
	return imaging.Masked(op, src, mask)
}

func transformFor(req Request) (imaging.Transform, error) {
	switch req.Op {
	case OpFlip:
		if req.Axis != imaging.Horizontal && req.Axis != imaging.Vertical {
			return nil, fmt.Errorf("flip axis %v: %w", req.Axis, imaging.ErrInvalidParameter)
		}
		return imaging.FlipTransform(req.Axis), nil
	case OpBrighten:
		return imaging.BrightenTransform(req.Delta), nil
	case OpComponent:
		if req.Channel < imaging.Red || req.Channel > imaging.Luma {
			return nil, fmt.Errorf("component channel %v: %w", req.Channel, imaging.ErrInvalidParameter)
		}
		return imaging.ComponentTransform(req.Channel), nil
	case OpSepia:
		return imaging.ColorMatrixTransform(imaging.SepiaMatrix), nil
	case OpGreyscale:
		return imaging.ColorMatrixTransform(imaging.GreyscaleMatrix), nil
	case OpBlur:
		return imaging.ConvolveTransform(imaging.BlurKernel()), nil
	case OpSharpen:
		return imaging.ConvolveTransform(imaging.SharpenKernel()), nil
	}
	return nil, fmt.Errorf("unknown operation %q: %w", req.Op, imaging.ErrInvalidParameter)
}

func downscale(src *imaging.Image, req Request) (*imaging.Image, error) {
	if req.Width > 0 && req.Height > 0 {
		return imaging.Downscale(src, req.Width, req.Height)
	}
	return imaging.DownscaleFactor(src, req.WidthFactor, req.HeightFactor)
}

// Histogram computes the histogram of the image stored under name.
func (e *Editor) Histogram(name string) (*imaging.Histogram, error) {
	img, err := e.reg.Get(name)
	if err != nil {
		return nil, err
	}
	return imaging.ComputeHistogram(img)
}

// Info describes the image stored under name.
func (e *Editor) Info(name string) (Info, error) {
	img, err := e.reg.Get(name)
	if err != nil {
		return Info{}, err
	}
	return infoOf(name, img), nil
}

// List describes every stored image, sorted by name.
func (e *Editor) List() []Info {
	names := e.reg.Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		// A concurrent Delete may remove a name after Names returned it.
		if img, err := e.reg.Get(name); err == nil {
			infos = append(infos, infoOf(name, img))
		}
	}
	return infos
}

// Delete removes the image stored under name.
func (e *Editor) Delete(name string) error {
	if !e.reg.Delete(name) {
		return fmt.Errorf("image %q: %w", name, imaging.ErrNotFound)
	}
	return nil
}

// SampleColor reports the color at column x, row y of the named image.
func (e *Editor) SampleColor(name string, x, y int) (*imaging.ColorResult, error) {
	img, err := e.reg.Get(name)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, x, y)
}

// DominantColors reports the most common colors of the named image, or of
// region when it is non-nil.
func (e *Editor) DominantColors(name string, count int, region *imaging.Region) (*imaging.DominantColorsResult, error) {
	img, err := e.reg.Get(name)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, count, region)
}

func infoOf(name string, img *imaging.Image) Info {
	return Info{Name: name, Width: img.Width(), Height: img.Height(), MaxValue: img.MaxValue()}
}
