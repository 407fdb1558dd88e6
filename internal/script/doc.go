// Package script runs line-oriented editing commands, either typed at a
// terminal or read from a script file.
//
// Each line is a command name followed by space-separated arguments:
//
//	load images/koala.ppm koala
//	brighten 10 koala koala-brighter
//	sepia koala mask koala-sepia
//	downscale koala koala-small 0.5 0.5
//	save out/koala-small.png koala-small
//
// Commands that accept a mask take it between the source and destination
// names. A failed command prints an error line and the run continues.
package script
