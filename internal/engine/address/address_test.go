package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linePtr(l Line) *Line { return &l }

func rangePtr(from, to Line) *Range { return &Range{From: from, To: to} }

func TestParseLine(t *testing.T) {
	tests := []struct {
		input    string
		expected *Line
		err      error
	}{
		{input: "", expected: nil},
		{input: ".", expected: linePtr(Current)},
		{input: "$", expected: linePtr(Last)},
		{input: "0", expected: linePtr(Index(0))},
		{input: "1", expected: linePtr(Index(1))},
		{input: "42", expected: linePtr(Index(42))},
		{input: "007", expected: linePtr(Index(7))},
		{input: "x", err: ErrInvalidAddress},
		{input: "-1", err: ErrInvalidAddress},
		{input: "+1", err: ErrInvalidAddress},
		{input: " 1", err: ErrInvalidAddress},
		{input: "..", err: ErrInvalidAddress},
		{input: "$1", err: ErrInvalidAddress},
		{input: "1,2", err: ErrInvalidAddress},
		{input: "99999999999999999999999", err: ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLine(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected *Range
		err      error
	}{
		{input: "", expected: nil},
		{input: ",", expected: rangePtr(Index(1), Last)},
		{input: ";", expected: rangePtr(Current, Last)},
		{input: "1", expected: rangePtr(Index(1), Index(1))},
		{input: "1,", expected: rangePtr(Index(1), Index(1))},
		{input: "1,1", expected: rangePtr(Index(1), Index(1))},
		{input: "1,1,", expected: rangePtr(Index(1), Index(1))},
		{input: "1,1,1", expected: rangePtr(Index(1), Index(1))},
		{input: "1,2", expected: rangePtr(Index(1), Index(2))},
		{input: "1;2", expected: rangePtr(Index(1), Index(2))},
		{input: "1,2,3", expected: rangePtr(Index(2), Index(3))},
		{input: "1,2,", expected: rangePtr(Index(1), Index(2))},
		{input: ",5", expected: rangePtr(Index(5), Index(5))},
		{input: "1,,2", expected: rangePtr(Index(1), Index(2))},
		{input: ".,$", expected: rangePtr(Current, Last)},
		{input: "$;.", expected: rangePtr(Last, Current)},
		{input: ",,", expected: nil},
		{input: "1,x", err: ErrInvalidAddress},
		{input: "x,1", err: ErrInvalidAddress},
		{input: "1,2,x", err: ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	for _, input := range []string{"", ".", "$", "12", "1,2,3", ",", ";", "bad"} {
		l1, err1 := ParseLine(input)
		l2, err2 := ParseLine(input)
		assert.Equal(t, l1, l2, "ParseLine(%q)", input)
		assert.Equal(t, err1, err2, "ParseLine(%q)", input)

		r1, err1 := ParseRange(input)
		r2, err2 := ParseRange(input)
		assert.Equal(t, r1, r2, "ParseRange(%q)", input)
		assert.Equal(t, err1, err2, "ParseRange(%q)", input)
	}
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "7", Index(7).String())
	assert.Equal(t, ".", Current.String())
	assert.Equal(t, "$", Last.String())
	assert.Equal(t, "1,$", Range{From: Index(1), To: Last}.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
