// Package server implements the MCP (Model Context Protocol) server for the
// image editor.
//
// This package provides a JSON-RPC 2.0 server that exposes the editor's
// operations as MCP tools. Images live in memory under client-chosen names:
// a client loads files into names, runs edits that read one name and write
// another, and saves names back to files.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Registry:
//   - image_load, image_save: Move images between files and names
//   - image_list, image_info: Describe stored images
//   - image_delete: Drop a stored image
//
// Edits (each takes source, dest and, except downscale, an optional mask):
//   - image_flip, image_brighten, image_component
//   - image_sepia, image_greyscale
//   - image_blur, image_sharpen
//   - image_downscale
//
// Analysis:
//   - image_histogram: Per-channel value counts
//   - image_sample_color: Color at a pixel
//   - image_dominant_colors: Color palette
//   - image_preview: Base64 PNG rendering
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(nil)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
