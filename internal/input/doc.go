// Package input supplies the line sources the ked session reads from.
//
// A Source yields one line per call with trailing whitespace removed and
// returns io.EOF once the input is exhausted. Two sources are provided:
//
//   - ScannerSource reads any io.Reader and suits pipes and scripts.
//   - LinerSource drives an interactive terminal with line editing and a
//     persistent history file.
//
// Open picks between them based on whether stdin and stdout are
// terminals.
package input
