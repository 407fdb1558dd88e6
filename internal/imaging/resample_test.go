package imaging

import (
	"errors"
	"testing"
)

func TestDownscale_Identity(t *testing.T) {
	img := gradientImage(t, 5, 4)
	got, err := Downscale(img, 5, 4)
	if err != nil {
		t.Fatalf("Downscale failed: %v", err)
	}
	if !got.Equal(img) {
		t.Error("downscaling to the same size should reproduce the image")
	}
}

func TestDownscaleFactor_HalfWidth(t *testing.T) {
	img := gradientImage(t, 4, 4)
	got, err := DownscaleFactor(img, 0.5, 1.0)
	if err != nil {
		t.Fatalf("DownscaleFactor failed: %v", err)
	}
	if got.Width() != 2 || got.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 2x4", got.Width(), got.Height())
	}
	for r := 0; r < 4; r++ {
		// Column 0 samples source column 0 exactly.
		if p := got.At(r, 0); !p.Equal(img.At(r, 0)) {
			t.Errorf("(%d,0): got %v, want %v", r, p, img.At(r, 0))
		}
		// Column 1 maps to source column 2.0: the blend of columns 2 and 3
		// with zero weight on column 3.
		if p := got.At(r, 1); !p.Equal(img.At(r, 2)) {
			t.Errorf("(%d,1): got %v, want %v", r, p, img.At(r, 2))
		}
	}
	if got.MaxValue() != img.MaxValue() {
		t.Errorf("MaxValue: got %d, want %d", got.MaxValue(), img.MaxValue())
	}
}

func TestDownscale_BlendsColumns(t *testing.T) {
	img := mustImage(t, 255, [][]Pixel{{px(0, 10, 0), px(100, 20, 0), px(200, 31, 0)}})
	got, err := Downscale(img, 2, 1)
	if err != nil {
		t.Fatalf("Downscale failed: %v", err)
	}
	// Column 1 maps to source column 1.5: halfway between 100 and 200.
	assertPixels(t, got, [][]Pixel{{px(0, 10, 0), px(150, 25, 0)}})
}

func TestDownscale_BlendsRows(t *testing.T) {
	img := mustImage(t, 255, [][]Pixel{{px(0, 0, 0)}, {px(100, 0, 0)}, {px(200, 0, 0)}})
	got, err := Downscale(img, 1, 2)
	if err != nil {
		t.Fatalf("Downscale failed: %v", err)
	}
	assertPixels(t, got, [][]Pixel{{px(0, 0, 0)}, {px(150, 0, 0)}})
}

func TestDownscale_Errors(t *testing.T) {
	img := gradientImage(t, 4, 4)

	tests := []struct {
		name          string
		width, height int
		want          error
	}{
		{"wider", 5, 4, ErrDimensionMismatch},
		{"taller", 4, 5, ErrDimensionMismatch},
		{"zero width", 0, 4, ErrInvalidParameter},
		{"negative height", 4, -1, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Downscale(img, tt.width, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDownscaleFactor(t *testing.T) {
	img := gradientImage(t, 5, 5)

	got, err := DownscaleFactor(img, 0.5, 0.5)
	if err != nil {
		t.Fatalf("DownscaleFactor failed: %v", err)
	}
	if got.Width() != 3 || got.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3 (rounded up)", got.Width(), got.Height())
	}

	for _, f := range [][2]float64{{0, 1}, {1, 1.5}, {-0.5, 0.5}} {
		if _, err := DownscaleFactor(img, f[0], f[1]); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("factors %v: got %v, want ErrInvalidParameter", f, err)
		}
	}
}

func TestDownscale_ClampLaw(t *testing.T) {
	img := gradientImage(t, 9, 7)
	got, err := Downscale(img, 4, 3)
	if err != nil {
		t.Fatalf("Downscale failed: %v", err)
	}
	for _, row := range got.Pixels() {
		for _, p := range row {
			for _, c := range p.Channels() {
				if c < 0 || c > img.MaxValue() {
					t.Fatalf("channel %d outside [0,%d]", c, img.MaxValue())
				}
			}
		}
	}
}
