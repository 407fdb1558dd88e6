package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

const (
	ppmMagic = "P3"

	// MaxPPMValue is the largest maxValue accepted from a PPM header.
	MaxPPMValue = 255

	// MaxDimension bounds width and height read from a PPM header.
	MaxDimension = 1 << 16

	ppmComment = "# Created by image-editor"
)

// ReadPPM parses a plain-text (P3) PPM stream.
//
// Lines whose first non-blank character is '#' are discarded before
// tokenizing. The header is the magic "P3" followed by width, height and
// maxValue; width·height·3 samples follow in row-major order. Tokens after
// the last sample are ignored.
//
// # Errors
//
//   - ErrMalformedInput: wrong magic, missing or non-integer tokens, width or
//     height not positive, maxValue outside [0, 255]
//   - ErrConstructionInvariant: a sample is negative or above maxValue
func ReadPPM(r io.Reader) (*imaging.Image, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	if toks.next() != ppmMagic {
		return nil, fmt.Errorf("ppm: missing %s magic: %w", ppmMagic, imaging.ErrMalformedInput)
	}

	width, err := toks.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := toks.nextInt("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := toks.nextInt("max value")
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("ppm: dimensions %dx%d: %w", width, height, imaging.ErrMalformedInput)
	}
	if maxValue < 0 || maxValue > MaxPPMValue {
		return nil, fmt.Errorf("ppm: max value %d outside [0,%d]: %w",
			maxValue, MaxPPMValue, imaging.ErrMalformedInput)
	}
	if need := width * height * 3; toks.remaining() < need {
		return nil, fmt.Errorf("ppm: %d samples for %dx%d image, want %d: %w",
			toks.remaining(), width, height, need, imaging.ErrMalformedInput)
	}

	grid := make([][]imaging.Pixel, height)
	for row := range grid {
		grid[row] = make([]imaging.Pixel, width)
		for col := range grid[row] {
			var rgb [3]int
			for i := range rgb {
				if rgb[i], err = toks.nextInt("sample"); err != nil {
					return nil, err
				}
			}
			p, err := imaging.NewPixel(rgb[0], rgb[1], rgb[2])
			if err != nil {
				return nil, fmt.Errorf("ppm: pixel (%d,%d): %w", row, col, err)
			}
			grid[row][col] = p
		}
	}

	img, err := imaging.New(width, height, maxValue, grid)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	return img, nil
}

// WritePPM writes img as plain-text PPM: the magic, a comment line, the
// dimensions, maxValue, then one "r g b" line per pixel.
func WritePPM(w io.Writer, img *imaging.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%s\n%d %d\n%d\n", ppmMagic, ppmComment, img.Width(), img.Height(), img.MaxValue())
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			p := img.At(row, col)
			fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: write: %w", err)
	}
	return nil
}

type tokens struct {
	list []string
	pos  int
}

// tokenize splits r into whitespace-separated tokens, skipping comment lines.
func tokenize(r io.Reader) (*tokens, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	t := &tokens{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.list = append(t.list, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ppm: read: %w", err)
	}
	return t, nil
}

func (t *tokens) next() string {
	if t.pos >= len(t.list) {
		return ""
	}
	s := t.list[t.pos]
	t.pos++
	return s
}

func (t *tokens) remaining() int {
	return len(t.list) - t.pos
}

func (t *tokens) nextInt(what string) (int, error) {
	if t.remaining() == 0 {
		return 0, fmt.Errorf("ppm: missing %s: %w", what, imaging.ErrMalformedInput)
	}
	s := t.next()
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ppm: %s %q is not an integer: %w", what, s, imaging.ErrMalformedInput)
	}
	return v, nil
}
