// Package engine provides the ed command interpreter for ked.
//
// The Editor owns the line buffer, the current-line cursor and the
// remembered filename. It accepts one input line at a time through Exec
// and moves between two modes:
//
//   - Normal: the line is parsed as a command (see package command) and
//     applied to the buffer.
//   - Appending: the line is inserted as literal text after the cursor,
//     until a line holding a lone "." returns to Normal.
//
// # Collaborators
//
// The editor performs no I/O of its own. Printed lines go to a Display and
// written files are opened through a FileOpener, both supplied at
// construction:
//
//	ed := engine.New(sink.NewWriterDisplay(os.Stdout), sink.OSFiles{})
//	for _, line := range []string{"a", "hello", ".", "wout.txt", "q"} {
//	    if err := ed.Exec(line); errors.Is(err, engine.ErrQuit) {
//	        break
//	    }
//	}
//
// # Addresses
//
// Line numbers are 1-based. A command's address is resolved against the
// buffer only when the command runs; resolution fails with
// ErrInvalidAddress for line 0 and for lines past the end. A range whose
// start follows its end is an empty span: print shows nothing and write
// produces an empty file. Append is the one exception to the bounds: it
// accepts any line from 0 through the last line as its insertion point.
//
// # Errors
//
// Failed commands leave the buffer untouched. The only state change that
// survives a failure is the filename given to a write command, which is
// remembered before the file is opened.
package engine
