// Package buffer provides the ordered line store behind the editor.
//
// A Buffer holds text lines in document order. Lines are addressed with
// 1-based line numbers; insertion positions are 0-based "after line n"
// positions, so position 0 inserts before the first line and position
// Len() appends at the end.
//
// Basic usage:
//
//	buf := buffer.New(buffer.WithLines("hello", "world"))
//
//	// Insert after line 1
//	buf.Insert(1, "there")  // hello, there, world
//
//	// Walk lines 2 through 3
//	buf.Each(2, 3, func(n int, text string) error {
//	    fmt.Println(n, text)
//	    return nil
//	})
//
// Buffer is not safe for concurrent use; the editor owns it exclusively.
package buffer
