package address

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAddress indicates malformed or out-of-range address text.
var ErrInvalidAddress = errors.New("invalid address")

// Kind identifies which form a Line takes.
type Kind uint8

const (
	// KindIndex is an absolute, 1-based line number.
	KindIndex Kind = iota
	// KindCurrent is the cursor line (".").
	KindCurrent
	// KindLast is the final line of the buffer ("$").
	KindLast
)

// String returns the address syntax for the kind.
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindCurrent:
		return "."
	case KindLast:
		return "$"
	default:
		return "unknown"
	}
}

// Line is a reference to a single line.
// N is only meaningful when Kind is KindIndex.
type Line struct {
	Kind Kind
	N    int
}

// Current refers to the cursor line.
var Current = Line{Kind: KindCurrent}

// Last refers to the final line of the buffer.
var Last = Line{Kind: KindLast}

// Index returns a reference to the absolute line n.
func Index(n int) Line {
	return Line{Kind: KindIndex, N: n}
}

// String returns the line in address syntax.
func (l Line) String() string {
	if l.Kind == KindIndex {
		return strconv.Itoa(l.N)
	}
	return l.Kind.String()
}

// Range is an inclusive span between two lines.
type Range struct {
	From Line
	To   Line
}

// Repeat returns the range covering only l.
func Repeat(l Line) Range {
	return Range{From: l, To: l}
}

// String returns the range in address syntax.
func (r Range) String() string {
	return r.From.String() + "," + r.To.String()
}

// rangeSeparators split a range into its line addresses.
const rangeSeparators = ",;"

// ParseLine parses a single line address.
// It returns nil, nil when s is empty.
func ParseLine(s string) (*Line, error) {
	switch s {
	case "":
		return nil, nil
	case ".":
		l := Current
		return &l, nil
	case "$":
		l := Last
		return &l, nil
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, ErrInvalidAddress
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Only overflow can get here.
		return nil, ErrInvalidAddress
	}
	l := Index(n)
	return &l, nil
}

// ParseRange parses a range address.
// It returns nil, nil when s holds no line addresses at all.
func ParseRange(s string) (*Range, error) {
	switch s {
	case ",":
		return &Range{From: Index(1), To: Last}, nil
	case ";":
		return &Range{From: Current, To: Last}, nil
	}

	// Two-slot window over the parsed addresses. Empty tokens are
	// dropped by the split and never evict a slot.
	var first, second *Line
	for _, tok := range strings.FieldsFunc(s, isSeparator) {
		l, err := ParseLine(tok)
		if err != nil {
			return nil, err
		}
		first, second = second, l
	}

	switch {
	case second == nil:
		return nil, nil
	case first == nil:
		r := Repeat(*second)
		return &r, nil
	default:
		return &Range{From: *first, To: *second}, nil
	}
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(rangeSeparators, r)
}
