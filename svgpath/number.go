package svgpath

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// This file implements the lexing of numbers, flags
// and separators used between coordinates.

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (p *parser) fail(err error) error {
	return &SyntaxError{Offset: p.sc.offset(), Err: err}
}

func (p *parser) matchWhitespace() bool {
	if p.sc.done() {
		return false
	}
	switch p.sc.peek() {
	case 0x9, 0x20, 0xa, 0xc, 0xd:
		return true
	}
	return false
}

func (p *parser) matchCommaWhitespace() bool {
	return p.matchWhitespace() || p.sc.match(',')
}

// matchNumber reports whether a number may start at the current position.
// A leading '.' is not accepted by the grammar.
func (p *parser) matchNumber() bool {
	if p.sc.done() {
		return false
	}
	c := p.sc.peek()
	return isDigit(c) || c == '-' || c == '+'
}

func (p *parser) skipWhitespace() {
	for p.matchWhitespace() {
		p.sc.consume()
	}
}

// parseCommaWhitespace consumes either a comma followed by
// optional whitespaces, or at least one whitespace followed by
// an optional comma and whitespaces.
func (p *parser) parseCommaWhitespace() error {
	if p.sc.match(',') {
		p.sc.consume()
		p.skipWhitespace()
		return nil
	}
	if !p.matchWhitespace() {
		if p.sc.done() {
			return p.fail(ErrUnexpectedEnd)
		}
		return p.fail(ErrMalformedNumber)
	}
	p.skipWhitespace()
	if p.sc.match(',') {
		p.sc.consume()
	}
	p.skipWhitespace()
	return nil
}

// skipOptionalSeparator consumes a comma_whitespace if one is present.
func (p *parser) skipOptionalSeparator() {
	if p.matchCommaWhitespace() {
		_ = p.parseCommaWhitespace() // cannot fail: a separator is present
	}
}

// parseFractionalConstant reads digit+ ('.' digit*)?
func (p *parser) parseFractionalConstant() (float64, error) {
	start := p.sc.offset()
	for !p.sc.done() && isDigit(p.sc.peek()) {
		p.sc.consume()
	}
	if p.sc.offset() == start {
		if p.sc.done() {
			return 0, p.fail(ErrUnexpectedEnd)
		}
		return 0, p.fail(ErrMalformedNumber)
	}
	end := p.sc.offset()
	if p.sc.match('.') {
		p.sc.consume()
		for !p.sc.done() && isDigit(p.sc.peek()) {
			p.sc.consume()
		}
		if p.sc.offset() > end+1 { // a trailing '.' adds nothing
			end = p.sc.offset()
		}
	}

	// ParseFloat only knows about '.', whatever the host locale
	literal := []byte(p.sc.src[start:end])
	f, n := strconv.ParseFloat(literal)
	if n != len(literal) {
		return 0, &SyntaxError{Offset: start, Err: ErrMalformedNumber}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) { // overflow, which would not print back
		return 0, &SyntaxError{Offset: start, Err: ErrMalformedNumber}
	}
	return f, nil
}

// parseNumber reads sign? fractional_constant
func (p *parser) parseNumber() (float64, error) {
	negative := false
	if p.sc.match('-') {
		p.sc.consume()
		negative = true
	} else if p.sc.match('+') {
		p.sc.consume()
	}
	f, err := p.parseFractionalConstant()
	if err != nil {
		return 0, err
	}
	if p.sc.match('e') || p.sc.match('E') {
		return 0, p.fail(ErrUnsupportedExponent)
	}
	if negative {
		f = -f
	}
	return f, nil
}

// parseFlag reads a number which must be exactly 0 or 1.
func (p *parser) parseFlag() (float64, error) {
	start := p.sc.offset()
	f, err := p.parseNumber()
	if err != nil {
		return 0, err
	}
	if f != 0 && f != 1 {
		return 0, &SyntaxError{Offset: start, Err: ErrInvalidFlag}
	}
	return f, nil
}
