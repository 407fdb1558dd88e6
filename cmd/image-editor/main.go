package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/script"
	"github.com/ironsheep/image-editor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func printHelp() {
	fmt.Println("image-editor - raster image editor with an MCP server and a command mode")
	fmt.Println()
	fmt.Println("Usage: image-editor [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -text            Read editing commands from the terminal")
	fmt.Println("  -file <script>   Run the editing commands in a script file")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_EDITOR_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Without options the MCP server runs over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	mode := "mcp"
	scriptPath := ""

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-editor %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "-text":
			mode = "text"
		case "-file":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "-file requires a script path")
				os.Exit(2)
			}
			mode = "file"
			scriptPath = os.Args[2]
		default:
			fmt.Fprintf(os.Stderr, "unknown option %q\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol and command output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("IMAGE_EDITOR_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Image Editor v%s (built %s, commit %s), mode %s", Version, BuildTime, GitCommit, mode)
	}

	ed := editor.New(nil)

	switch mode {
	case "text":
		r := script.New(ed, os.Stdout)
		r.Prompt = script.Interactive(os.Stdin)
		r.Debug = debug
		if err := r.Run(os.Stdin); err != nil {
			log.Fatalf("Command error: %v", err)
		}
	case "file":
		f, err := os.Open(scriptPath)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer f.Close()

		r := script.New(ed, os.Stdout)
		r.Debug = debug
		if err := r.Run(f); err != nil {
			log.Fatalf("Script error: %v", err)
		}
	default:
		server.Version = Version
		srv := server.New(ed)
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}
