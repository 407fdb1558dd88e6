package script

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Runner executes text commands against an editor, one command per line.
type Runner struct {
	ed  *editor.Editor
	out io.Writer

	// Prompt prints usage on start and a prompt before each line.
	Prompt bool

	// Debug logs every failed command to the standard logger.
	Debug bool
}

// New creates a runner that writes command output to out.
func New(ed *editor.Editor, out io.Writer) *Runner {
	return &Runner{ed: ed, out: out}
}

// Interactive reports whether f is a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run reads and executes commands from in until it is exhausted or a quit
// token is read. A failing command prints a message and does not stop the
// run; only read errors are returned.
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	if r.Prompt {
		r.printUsage()
		fmt.Fprint(r.out, "> ")
	}
	for scanner.Scan() {
		if r.Exec(scanner.Text()) {
			return nil
		}
		if r.Prompt {
			fmt.Fprint(r.out, "> ")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// Exec runs a single command line and reports whether it asked to quit.
//
// Blank lines and lines starting with '#' are ignored. Any token equal to
// "q" or "Q" quits without running the rest of the line.
func (r *Runner) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}
	for _, f := range fields {
		if f == "q" || f == "Q" {
			return true
		}
	}

	name, args := fields[0], fields[1:]
	if name == "help" {
		r.printUsage()
		return false
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(r.out, "Unknown command %q. Type help for the command list.\n", name)
		return false
	}
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		fmt.Fprintf(r.out, "Usage: %s %s\n", name, cmd.usage)
		return false
	}

	msg, err := cmd.run(r.ed, name, args)
	if err != nil {
		if r.Debug {
			log.Printf("Command %q failed: %v", line, err)
		}
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return false
	}
	fmt.Fprintln(r.out, msg)
	return false
}

func (r *Runner) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(r.out, "Commands:")
	for _, name := range names {
		fmt.Fprintf(r.out, "  %s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(r.out, "Bracketed mask names restrict the edit to the mask's black pixels.")
	fmt.Fprintln(r.out, "Lines starting with # are comments. Enter q or Q to quit.")
}

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(ed *editor.Editor, name string, args []string) (string, error)
}

var commands = map[string]command{
	"load":                {"path name", 2, 2, runLoad},
	"save":                {"path name", 2, 2, runSave},
	"brighten":            {"delta src [mask] dest", 3, 4, runBrighten},
	"horizontal-flip":     {"src [mask] dest", 2, 3, runTransform},
	"vertical-flip":       {"src [mask] dest", 2, 3, runTransform},
	"red-component":       {"src [mask] dest", 2, 3, runTransform},
	"green-component":     {"src [mask] dest", 2, 3, runTransform},
	"blue-component":      {"src [mask] dest", 2, 3, runTransform},
	"value-component":     {"src [mask] dest", 2, 3, runTransform},
	"intensity-component": {"src [mask] dest", 2, 3, runTransform},
	"luma-component":      {"src [mask] dest", 2, 3, runTransform},
	"sepia":               {"src [mask] dest", 2, 3, runTransform},
	"greyscale":           {"src [mask] dest", 2, 3, runTransform},
	"blur":                {"src [mask] dest", 2, 3, runTransform},
	"sharpen":             {"src [mask] dest", 2, 3, runTransform},
	"downscale":           {"src dest widthFactor heightFactor", 4, 4, runDownscale},
	"histogram":           {"name", 1, 1, runHistogram},
	"list":                {"", 0, 0, runList},
}

func runLoad(ed *editor.Editor, _ string, args []string) (string, error) {
	info, err := ed.Load(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Loaded %s as %s (%s)", args[0], info.Name, describe(info)), nil
}

func runSave(ed *editor.Editor, _ string, args []string) (string, error) {
	if err := ed.Save(args[1], args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %s to %s", args[1], args[0]), nil
}

func runBrighten(ed *editor.Editor, _ string, args []string) (string, error) {
	delta, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("brighten amount %q is not an integer: %w", args[0], imaging.ErrInvalidParameter)
	}
	req := editor.Request{Op: editor.OpBrighten, Delta: delta}
	setNames(&req, args[1:])
	return apply(ed, req)
}

// runTransform handles every "src [mask] dest" command.
func runTransform(ed *editor.Editor, name string, args []string) (string, error) {
	var req editor.Request
	switch {
	case name == "horizontal-flip":
		req = editor.Request{Op: editor.OpFlip, Axis: imaging.Horizontal}
	case name == "vertical-flip":
		req = editor.Request{Op: editor.OpFlip, Axis: imaging.Vertical}
	case strings.HasSuffix(name, "-component"):
		ch, err := imaging.ParseChannel(strings.TrimSuffix(name, "-component"))
		if err != nil {
			return "", err
		}
		req = editor.Request{Op: editor.OpComponent, Channel: ch}
	default:
		req = editor.Request{Op: editor.Op(name)}
	}
	setNames(&req, args)
	return apply(ed, req)
}

func runDownscale(ed *editor.Editor, _ string, args []string) (string, error) {
	wf, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return "", fmt.Errorf("width factor %q: %w", args[2], imaging.ErrInvalidParameter)
	}
	hf, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return "", fmt.Errorf("height factor %q: %w", args[3], imaging.ErrInvalidParameter)
	}
	return apply(ed, editor.Request{
		Op:           editor.OpDownscale,
		Source:       args[0],
		Dest:         args[1],
		WidthFactor:  wf,
		HeightFactor: hf,
	})
}

func runHistogram(ed *editor.Editor, _ string, args []string) (string, error) {
	h, err := ed.Histogram(args[0])
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Histogram of %s (peak %d)\nvalue red green blue intensity", args[0], h.Peak())
	for v, b := range h.Buckets {
		if b == (imaging.Bucket{}) {
			continue
		}
		fmt.Fprintf(&sb, "\n%d %d %d %d %d", v, b.Red, b.Green, b.Blue, b.Intensity)
	}
	return sb.String(), nil
}

func runList(ed *editor.Editor, _ string, _ []string) (string, error) {
	infos := ed.List()
	if len(infos) == 0 {
		return "No images loaded", nil
	}
	lines := make([]string, len(infos))
	for i, info := range infos {
		lines[i] = fmt.Sprintf("%s %s", info.Name, describe(info))
	}
	return strings.Join(lines, "\n"), nil
}

// setNames fills Source, Mask and Dest from "src [mask] dest".
func setNames(req *editor.Request, names []string) {
	req.Source = names[0]
	req.Dest = names[len(names)-1]
	if len(names) == 3 {
		req.Mask = names[1]
	}
}

func apply(ed *editor.Editor, req editor.Request) (string, error) {
	info, err := ed.Apply(req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created %s (%s)", info.Name, describe(info)), nil
}

func describe(info editor.Info) string {
	return fmt.Sprintf("%dx%d, max %d", info.Width, info.Height, info.MaxValue)
}
