package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/image-editor-mcp/internal/codec"
	"github.com/ironsheep/image-editor-mcp/internal/editor"
)

const samplePPM = "P3\n2 2\n255\n0 150 150\n255 0 255\n137 200 86\n255 230 20\n"

// setup writes the sample image and returns a runner, its output buffer and
// the directory holding sample.ppm.
func setup(t *testing.T) (*Runner, *bytes.Buffer, *editor.Editor, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.ppm"), []byte(samplePPM), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	ed := editor.New(nil)
	var out bytes.Buffer
	return New(ed, &out), &out, ed, dir
}

func TestRun_Script(t *testing.T) {
	r, out, ed, dir := setup(t)
	script := fmt.Sprintf(`# brighten then save
load %[1]s/sample.ppm koala
brighten 30 koala koala-bright

save %[1]s/bright.ppm koala-bright
list
`, dir)

	if err := r.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Contains(out.String(), "Error") {
		t.Fatalf("unexpected error output:\n%s", out.String())
	}

	img, err := codec.Load(filepath.Join(dir, "bright.ppm"))
	if err != nil {
		t.Fatalf("saved image unreadable: %v", err)
	}
	if p := img.At(1, 1); p.R != 255 || p.G != 255 || p.B != 50 {
		t.Errorf("pixel (1,1): got %v, want (255,255,50)", p)
	}

	var names []string
	for _, info := range ed.List() {
		names = append(names, info.Name)
	}
	if diff := cmp.Diff([]string{"koala", "koala-bright"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "koala-bright 2x2, max 255") {
		t.Errorf("list output missing, got:\n%s", out.String())
	}
}

func TestRun_EveryTransformCommand(t *testing.T) {
	r, out, ed, dir := setup(t)
	lines := []string{
		"load " + dir + "/sample.ppm s",
		"load " + dir + "/sample.ppm mask",
		"horizontal-flip s hf",
		"vertical-flip s mask vf",
		"red-component s red",
		"green-component s green",
		"blue-component s blue",
		"value-component s value",
		"intensity-component s mask intensity",
		"luma-component s luma",
		"sepia s sepia",
		"greyscale s mask grey",
		"blur s blur",
		"sharpen s sharp",
		"brighten -20 s mask dark",
		"downscale s small 0.5 0.5",
	}
	if err := r.Run(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Contains(out.String(), "Error") || strings.Contains(out.String(), "Usage") {
		t.Fatalf("unexpected failure output:\n%s", out.String())
	}
	for _, name := range []string{"hf", "vf", "red", "green", "blue", "value", "intensity",
		"luma", "sepia", "grey", "blur", "sharp", "dark", "small"} {
		if _, err := ed.Info(name); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
	if info, _ := ed.Info("small"); info.Width != 1 || info.Height != 1 {
		t.Errorf("small: got %dx%d, want 1x1", info.Width, info.Height)
	}
}

func TestRun_ErrorsContinue(t *testing.T) {
	r, out, ed, dir := setup(t)
	script := strings.Join([]string{
		"frobnicate a b",
		"brighten ten s d",
		"sepia",
		"sepia missing out",
		"downscale s d x 1",
		"load " + dir + "/sample.ppm s",
		"sepia s out",
	}, "\n")

	if err := r.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		`Unknown command "frobnicate"`,
		"Error: brighten amount",
		"Usage: sepia src [mask] dest",
		"image not found",
		"Error: width factor",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if _, err := ed.Info("out"); err != nil {
		t.Errorf("commands after failures should still run: %v", err)
	}
}

func TestRun_Quit(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"lone q", "q\nload x y\n"},
		{"upper Q", "Q\nload x y\n"},
		{"q inside a command", "sepia a q b\nload x y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, _, _ := setup(t)
			if err := r.Run(strings.NewReader(tt.script)); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should run after quit, got:\n%s", out.String())
			}
		})
	}
}

func TestRun_Histogram(t *testing.T) {
	r, out, _, dir := setup(t)
	script := "load " + dir + "/sample.ppm s\nhistogram s\n"
	if err := r.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, want := range []string{"peak 2", "\n255 2 0 1 0", "\n141 0 0 0 1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("histogram output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_PromptAndHelp(t *testing.T) {
	r, out, _, _ := setup(t)
	r.Prompt = true
	if err := r.Run(strings.NewReader("help\n")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	got := out.String()
	if strings.Count(got, "Commands:") != 2 {
		t.Errorf("usage should print on start and for help, got:\n%s", got)
	}
	if !strings.Contains(got, "downscale src dest widthFactor heightFactor") || !strings.HasSuffix(got, "> ") {
		t.Errorf("unexpected prompt output:\n%s", got)
	}
}
