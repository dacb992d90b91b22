package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(s string) *parser { return &parser{sc: scanner{src: s}} }

func TestParseNumber(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
		end  int // offset after the number
	}{
		{"0", 0, 1},
		{"5.", 5, 2},
		{"+3", 3, 2},
		{"-3.25", -3.25, 5},
		{"007.50", 7.5, 6},
		{"12.5.5", 12.5, 4},
		{"1-2", 1, 1},
		{"3,4", 3, 1},
	} {
		p := newParser(test.in)
		got, err := p.parseNumber()
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
		assert.Equal(t, test.end, p.sc.offset(), test.in)
	}
}

func TestParseFlag(t *testing.T) {
	for in, want := range map[string]float64{"0": 0, "1": 1, "1.0": 1, "+0": 0} {
		got, err := newParser(in).parseFlag()
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"2", "0.5", "-1", "11"} {
		_, err := newParser(in).parseFlag()
		assert.ErrorIs(t, err, ErrInvalidFlag, in)
	}
}

func TestCommaWhitespace(t *testing.T) {
	for _, test := range []struct {
		in  string
		end int
	}{
		{",", 1},
		{", \t", 3},
		{" ", 1},
		{" , ", 3},
		{"\n\r,\f5", 4},
		{",,", 1},
	} {
		p := newParser(test.in)
		require.NoError(t, p.parseCommaWhitespace(), test.in)
		assert.Equal(t, test.end, p.sc.offset(), test.in)
	}

	assert.ErrorIs(t, newParser("").parseCommaWhitespace(), ErrUnexpectedEnd)
	assert.ErrorIs(t, newParser("5").parseCommaWhitespace(), ErrMalformedNumber)
}

func TestScanner(t *testing.T) {
	sc := scanner{src: "ab"}
	assert.True(t, sc.match('a'))
	assert.Equal(t, byte('a'), sc.consume())
	assert.Equal(t, byte('b'), sc.peek())
	sc.consume()
	assert.True(t, sc.done())
	assert.False(t, sc.match('b'))
	assert.Panics(t, func() { sc.peek() })
}
