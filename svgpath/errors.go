package svgpath

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedNumber     = errors.New("malformed number")
	ErrUnsupportedExponent = errors.New("exponent in number is not supported")
	ErrInvalidFlag         = errors.New("flag must be 0 or 1")
	ErrUnexpectedEnd       = errors.New("unexpected end of path data")
	ErrUnsupportedCommand  = errors.New("unsupported path command")
	ErrMissingMoveTo       = errors.New("path data must start with a moveto command")
)

// SyntaxError reports where the path data could not be decoded.
// Err is one of the ErrXXX values of this package.
type SyntaxError struct {
	Offset int // byte offset in the source
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid path data at offset %d: %s", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
