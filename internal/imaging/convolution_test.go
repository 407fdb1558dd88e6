package imaging

import (
	"errors"
	"testing"
)

func TestBlur_UniformImage(t *testing.T) {
	got, err := Blur(fillImage(t, 3, 3, px(100, 100, 100)))
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}
	// Out-of-bounds taps are skipped, so borders see only part of the
	// kernel weight: corners 9/16, edges 12/16, centre 16/16.
	assertPixels(t, got, [][]Pixel{
		{px(56, 56, 56), px(75, 75, 75), px(56, 56, 56)},
		{px(75, 75, 75), px(100, 100, 100), px(75, 75, 75)},
		{px(56, 56, 56), px(75, 75, 75), px(56, 56, 56)},
	})
}

func TestBlur_Spot(t *testing.T) {
	img := mustImage(t, 255, [][]Pixel{
		{px(0, 0, 0), px(0, 0, 0), px(0, 0, 0)},
		{px(0, 0, 0), px(160, 0, 80), px(0, 0, 0)},
		{px(0, 0, 0), px(0, 0, 0), px(0, 0, 0)},
	})
	got, err := Blur(img)
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}
	assertPixels(t, got, [][]Pixel{
		{px(10, 0, 5), px(20, 0, 10), px(10, 0, 5)},
		{px(20, 0, 10), px(40, 0, 20), px(20, 0, 10)},
		{px(10, 0, 5), px(20, 0, 10), px(10, 0, 5)},
	})
}

func TestSharpen_UniformImage(t *testing.T) {
	got, err := Sharpen(fillImage(t, 5, 5, px(100, 100, 100)))
	if err != nil {
		t.Fatalf("Sharpen failed: %v", err)
	}
	if p := got.At(2, 2); !p.Equal(px(100, 100, 100)) {
		t.Errorf("centre: got %v, want (100,100,100)", p)
	}
	// Corner taps: centre 1, three inner 0.25, five outer -0.125 = 1.125.
	if p := got.At(0, 0); !p.Equal(px(112, 112, 112)) {
		t.Errorf("corner: got %v, want (112,112,112)", p)
	}
}

func TestSharpen_Clamps(t *testing.T) {
	bright, err := Sharpen(fillImage(t, 5, 5, px(250, 250, 250)))
	if err != nil {
		t.Fatalf("Sharpen failed: %v", err)
	}
	if p := bright.At(0, 0); !p.Equal(px(255, 255, 255)) {
		t.Errorf("corner: got %v, want clamp to 255", p)
	}

	// A dark centre ringed by bright outer pixels sums negative.
	rows := make([][]Pixel, 5)
	for r := range rows {
		rows[r] = make([]Pixel, 5)
		for c := range rows[r] {
			if r == 0 || r == 4 || c == 0 || c == 4 {
				rows[r][c] = px(255, 255, 255)
			} else {
				rows[r][c] = px(0, 0, 0)
			}
		}
	}
	dark, err := Sharpen(mustImage(t, 255, rows))
	if err != nil {
		t.Fatalf("Sharpen failed: %v", err)
	}
	if p := dark.At(2, 2); !p.Equal(px(0, 0, 0)) {
		t.Errorf("centre: got %v, want clamp to 0", p)
	}
}

func TestConvolve_ClampsToMaxValue(t *testing.T) {
	img := mustImage(t, 50, [][]Pixel{{px(50, 50, 50)}})
	k, err := NewKernel([][]float64{{2}})
	if err != nil {
		t.Fatalf("NewKernel failed: %v", err)
	}
	got, err := Convolve(img, k)
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}
	assertPixels(t, got, [][]Pixel{{px(50, 50, 50)}})
}

func TestConvolve_ClampLaw(t *testing.T) {
	img := gradientImage(t, 12, 9)
	for name, k := range map[string]*Kernel{"blur": BlurKernel(), "sharpen": SharpenKernel()} {
		t.Run(name, func(t *testing.T) {
			got, err := Convolve(img, k)
			if err != nil {
				t.Fatalf("Convolve failed: %v", err)
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
		})
	}
}

func TestNewKernel_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		weights [][]float64
	}{
		{"empty", nil},
		{"even", [][]float64{{1, 0}, {0, 1}}},
		{"not square", [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKernel(tt.weights)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestKernel_Weights(t *testing.T) {
	k := SharpenKernel()
	if k.Size() != 5 {
		t.Fatalf("Size: got %d, want 5", k.Size())
	}
	sum := 0.0
	for r := 0; r < k.Size(); r++ {
		for c := 0; c < k.Size(); c++ {
			sum += k.Weight(r, c)
		}
	}
	if sum != 1 {
		t.Errorf("sharpen weights sum to %g, want 1", sum)
	}
	if k.Weight(2, 2) != 1 || k.Weight(1, 2) != 0.25 || k.Weight(0, 4) != -0.125 {
		t.Error("sharpen kernel weights out of place")
	}

	b := BlurKernel()
	if b.Weight(0, 1) != 0.125 || b.Weight(1, 1) != 0.25 {
		t.Error("blur kernel weights out of place")
	}
}
