// Package command parses a single ed command line into a typed Command.
//
// A command line is an optional address, a one-letter verb and an optional
// suffix. The verb is the first letter on the line; everything before it
// is address syntax and everything after it is the suffix:
//
//	1,2wout.txt   address "1,2", verb 'w', suffix "out.txt"
//
// Only one command is parsed per line and the suffix is never scanned for
// further verbs.
package command

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/ked/internal/engine/address"
)

// Errors returned by Parse.
var (
	// ErrNoCommand indicates the line holds no verb at all.
	ErrNoCommand = errors.New("no command")

	// ErrInvalidCommand indicates an unrecognized verb.
	ErrInvalidCommand = errors.New("unknown command")
)

// Verbs recognized by Parse.
const (
	VerbAppend = 'a'
	VerbPrint  = 'p'
	VerbWrite  = 'w'
	VerbQuit   = 'q'
)

// Command is a parsed editor command.
// The concrete type is one of Append, Print, Write or Quit.
type Command interface {
	// Verb returns the command letter.
	Verb() rune

	command()
}

// Append enters append mode after Line.
// A nil Line means no address was given.
type Append struct {
	Line *address.Line
}

// Print displays the lines in Range.
// A nil Range means no address was given.
type Print struct {
	Range *address.Range
}

// Write stores the lines in Range to Filename.
// A nil Range means no address was given; an empty Filename means no
// filename was given.
type Write struct {
	Range    *address.Range
	Filename string
}

// Quit ends the session.
type Quit struct{}

func (Append) Verb() rune { return VerbAppend }
func (Print) Verb() rune  { return VerbPrint }
func (Write) Verb() rune  { return VerbWrite }
func (Quit) Verb() rune   { return VerbQuit }

func (Append) command() {}
func (Print) command()  {}
func (Write) command()  {}
func (Quit) command()   {}

// Parse parses one command line.
func Parse(s string) (Command, error) {
	i := strings.IndexFunc(s, unicode.IsLetter)
	if i < 0 {
		return nil, ErrNoCommand
	}
	verb, size := utf8.DecodeRuneInString(s[i:])
	addr, suffix := s[:i], s[i+size:]

	switch verb {
	case VerbQuit:
		// Address and suffix are ignored.
		return Quit{}, nil
	case VerbAppend:
		l, err := address.ParseLine(addr)
		if err != nil {
			return nil, err
		}
		return Append{Line: l}, nil
	case VerbPrint:
		r, err := address.ParseRange(addr)
		if err != nil {
			return nil, err
		}
		return Print{Range: r}, nil
	case VerbWrite:
		r, err := address.ParseRange(addr)
		if err != nil {
			return nil, err
		}
		return Write{Range: r, Filename: suffix}, nil
	default:
		return nil, ErrInvalidCommand
	}
}
