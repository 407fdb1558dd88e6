// Package editor is the operation catalog shared by the script runner and
// the MCP server.
//
// An Editor owns a name-keyed registry of images. Files are loaded into the
// registry by name, operations read a source name and store the result under
// a destination name, and named images are saved back to files. Requests
// that carry a mask name are restricted to the mask's black pixels.
package editor
