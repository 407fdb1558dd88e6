package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/google/go-cmp/cmp"
)

func TestComputeHistogram(t *testing.T) {
	h, err := ComputeHistogram(sampleImage(t))
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}

	want := map[int]Bucket{
		0:   {Red: 1, Green: 1},
		20:  {Blue: 1},
		86:  {Blue: 1},
		100: {Intensity: 1},
		137: {Red: 1},
		141: {Intensity: 1},
		150: {Green: 1, Blue: 1},
		168: {Intensity: 1},
		170: {Intensity: 1},
		200: {Green: 1},
		230: {Green: 1},
		255: {Red: 2, Blue: 1},
	}
	for v := 0; v < HistogramBins; v++ {
		if diff := cmp.Diff(want[v], h.Buckets[v]); diff != "" {
			t.Errorf("bucket %d mismatch (-want +got):\n%s", v, diff)
		}
	}
	if h.Peak() != 2 {
		t.Errorf("Peak: got %d, want 2", h.Peak())
	}
}

func TestComputeHistogram_Totals(t *testing.T) {
	img := gradientImage(t, 13, 11)
	h, err := ComputeHistogram(img)
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}
	n := img.Width() * img.Height()
	want := Bucket{Red: n, Green: n, Blue: n, Intensity: n}
	if diff := cmp.Diff(want, h.Totals()); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeHistogram_MatchesBild(t *testing.T) {
	img := gradientImage(t, 20, 15)
	h, err := ComputeHistogram(img)
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for r := 0; r < img.Height(); r++ {
		for c := 0; c < img.Width(); c++ {
			p := img.At(r, c)
			rgba.SetNRGBA(c, r, color.NRGBA{R: uint8(p.R), G: uint8(p.G), B: uint8(p.B), A: 255})
		}
	}
	ref := histogram.NewRGBAHistogram(rgba)

	for v := 0; v < HistogramBins; v++ {
		b := h.Buckets[v]
		if b.Red != ref.R.Bins[v] || b.Green != ref.G.Bins[v] || b.Blue != ref.B.Bins[v] {
			t.Errorf("bucket %d: got %+v, bild has r=%d g=%d b=%d",
				v, b, ref.R.Bins[v], ref.G.Bins[v], ref.B.Bins[v])
		}
	}
}

func TestComputeHistogram_ChannelAboveRange(t *testing.T) {
	img := mustImage(t, 1023, [][]Pixel{{px(300, 0, 0)}})
	_, err := ComputeHistogram(img)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestComputeHistogram_Empty(t *testing.T) {
	img := mustImage(t, 255, nil)
	h, err := ComputeHistogram(img)
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}
	if h.Totals() != (Bucket{}) {
		t.Errorf("totals: got %+v, want zero", h.Totals())
	}
}
