// Package sink provides the output collaborators of the editor: a Display
// that prints lines to a writer and FileOpeners that create write sinks on
// the OS file system or in memory.
package sink
