// Package address parses ed-style line and range addresses.
//
// Addresses are purely syntactic: a Line names a line by absolute index,
// as the current line, or as the last line, and is only turned into a
// concrete line number when a command is applied to a buffer.
//
// Parsing distinguishes three outcomes:
//
//   - an address was given (non-nil result)
//   - no address was given (nil result, nil error)
//   - the text is not an address (ErrInvalidAddress)
//
// Callers use the nil case to substitute a command-specific default, for
// example the current line for print or the whole buffer for write.
//
// Grammar:
//
//	line  = "" | "." | "$" | digits
//	range = "," | ";" | line { ("," | ";") line }
//
// A lone "," is shorthand for 1,$ and a lone ";" for .,$. Otherwise only
// the last two addresses of a list are kept, so "1,2,3" is the range 2,3.
package address
