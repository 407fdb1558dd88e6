package imaging

import "fmt"

// HistogramBins is the number of buckets in a Histogram, one per 8-bit value.
const HistogramBins = 256

// Bucket holds the number of pixels whose channel equals the bucket value.
type Bucket struct {
	Red       int `json:"red"`
	Green     int `json:"green"`
	Blue      int `json:"blue"`
	Intensity int `json:"intensity"`
}

// Histogram is a per-channel frequency table over values 0..255.
//
// Every pixel adds one count to exactly one bucket in each column, so each
// column sums to width·height.
type Histogram struct {
	Buckets [HistogramBins]Bucket `json:"buckets"`
}

// ComputeHistogram counts red, green, blue and intensity values of src, where
// intensity is (r+g+b)/3 rounded down.
//
// Channels above 255 have no bucket; an image containing one fails with
// ErrInvalidParameter.
func ComputeHistogram(src *Image) (*Histogram, error) {
	h := &Histogram{}
	for row := 0; row < src.height; row++ {
		for col := 0; col < src.width; col++ {
			p := src.at(row, col)
			if p.R >= HistogramBins || p.G >= HistogramBins || p.B >= HistogramBins {
				return nil, fmt.Errorf("histogram: pixel %v at (%d,%d) above %d: %w",
					p, row, col, HistogramBins-1, ErrInvalidParameter)
			}
			h.Buckets[p.R].Red++
			h.Buckets[p.G].Green++
			h.Buckets[p.B].Blue++
			h.Buckets[(p.R+p.G+p.B)/3].Intensity++
		}
	}
	return h, nil
}

// Totals sums each column over all buckets.
func (h *Histogram) Totals() Bucket {
	var t Bucket
	for _, b := range h.Buckets {
		t.Red += b.Red
		t.Green += b.Green
		t.Blue += b.Blue
		t.Intensity += b.Intensity
	}
	return t
}

// Peak returns the largest single count across all buckets and columns.
// Chart renderers use it to scale bar heights.
func (h *Histogram) Peak() int {
	peak := 0
	for _, b := range h.Buckets {
		peak = max(peak, b.Red, b.Green, b.Blue, b.Intensity)
	}
	return peak
}
