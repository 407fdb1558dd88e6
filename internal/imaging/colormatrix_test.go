package imaging

import (
	"errors"
	"testing"
)

func TestGreyscale_Scenario(t *testing.T) {
	got, err := Greyscale(sampleImage(t))
	if err != nil {
		t.Fatalf("Greyscale failed: %v", err)
	}
	// Products are truncated one by one: (0,150,150) gives 0+107+10 = 117
	// and (255,230,20) gives 54+164+1 = 219. Truncating the whole sum
	// instead would give 118 and 220.
	assertPixels(t, got, [][]Pixel{
		{px(117, 117, 117), px(72, 72, 72)},
		{px(178, 178, 178), px(219, 219, 219)},
	})
}

func TestGreyscale_EquivalentToLumaComponent(t *testing.T) {
	images := map[string]*Image{
		"sample":   sampleImage(t),
		"gradient": gradientImage(t, 7, 5),
		"white":    fillImage(t, 3, 3, px(255, 255, 255)),
	}
	for name, img := range images {
		t.Run(name, func(t *testing.T) {
			matrix, err := Greyscale(img)
			if err != nil {
				t.Fatalf("Greyscale failed: %v", err)
			}
			luma, err := ComponentGreyscale(img, Luma)
			if err != nil {
				t.Fatalf("ComponentGreyscale failed: %v", err)
			}
			if !matrix.Equal(luma) {
				t.Error("Greyscale and Luma component results differ")
			}
		})
	}
}

func TestSepia(t *testing.T) {
	img := mustImage(t, 255, [][]Pixel{{px(255, 0, 255), px(255, 230, 20)}})
	got, err := Sepia(img)
	if err != nil {
		t.Fatalf("Sepia failed: %v", err)
	}
	// The red output of the second pixel sums to 279 and clamps to 255.
	assertPixels(t, got, [][]Pixel{{px(148, 130, 102), px(255, 248, 193)}})
}

func TestColorMatrix_ClampsNegative(t *testing.T) {
	invert := ColorMatrix{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}
	got, err := ApplyColorMatrix(mustImage(t, 255, [][]Pixel{{px(10, 20, 30)}}), invert)
	if err != nil {
		t.Fatalf("ApplyColorMatrix failed: %v", err)
	}
	assertPixels(t, got, [][]Pixel{{px(0, 0, 30)}})
}

// Matrix outputs clamp to 255 rather than to the image's MaxValue, so a
// result that overshoots a smaller MaxValue is rejected.
func TestSepia_ClampBoundIgnoresMaxValue(t *testing.T) {
	img := mustImage(t, 100, [][]Pixel{{px(100, 100, 100)}})
	_, err := Sepia(img)
	if !errors.Is(err, ErrConstructionInvariant) {
		t.Errorf("got %v, want ErrConstructionInvariant", err)
	}

	dark := mustImage(t, 100, [][]Pixel{{px(10, 10, 10)}})
	got, err := Sepia(dark)
	if err != nil {
		t.Fatalf("Sepia failed: %v", err)
	}
	if got.MaxValue() != 100 {
		t.Errorf("MaxValue: got %d, want 100", got.MaxValue())
	}
}

func TestColorMatrix_ClampLaw(t *testing.T) {
	img := gradientImage(t, 26, 26)
	for name, m := range map[string]ColorMatrix{"sepia": SepiaMatrix, "greyscale": GreyscaleMatrix} {
		t.Run(name, func(t *testing.T) {
			got, err := ApplyColorMatrix(img, m)
			if err != nil {
				t.Fatalf("ApplyColorMatrix failed: %v", err)
			}
			for _, row := range got.Pixels() {
				for _, p := range row {
					for _, c := range p.Channels() {
						if c < 0 || c > 255 {
							t.Fatalf("channel %d outside [0,255]", c)
						}
					}
				}
			}
		})
	}
}
