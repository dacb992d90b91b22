package svgpath

// scanner is a byte cursor over path data.
// Path data is pure ASCII: any other byte is
// rejected by the parser, so working on bytes is enough.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

// peek returns the current byte. It must not be called when done() is true.
func (s *scanner) peek() byte {
	if s.done() {
		panic("svgpath: peek past the end of input")
	}
	return s.src[s.pos]
}

// consume returns the current byte and advances.
// It must not be called when done() is true.
func (s *scanner) consume() byte {
	c := s.peek()
	s.pos++
	return c
}

// match returns true if the current byte is `c`, without consuming it.
func (s *scanner) match(c byte) bool {
	return !s.done() && s.src[s.pos] == c
}

func (s *scanner) offset() int { return s.pos }
