package svgicon

import (
	"errors"
	"fmt"

	"github.com/kpango/glg"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
// and invalid path data
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements,
	// and renders nothing for an invalid path
	IgnoreErrorMode ErrorMode = iota

	// WarnErrorMode outputs a warning when an unparsed SVG element
	// or an invalid path is found
	WarnErrorMode

	// StrictErrorMode causes an error when an unparsed SVG element
	// or an invalid path is found
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of String.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch s {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("unknown error mode %q", s)
}

var (
	errParamMismatch = errors.New("param mismatch")
	errUnsupported   = errors.New("unsupported element")
)

// PathError is returned for an invalid path element
// when using StrictErrorMode.
type PathError struct {
	ID  string // id attribute, possibly empty
	Err error  // a *svgpath.SyntaxError or a *svgdraw.BuildError
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.ID, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// report applies the error mode to a non fatal error.
func (c *iconCursor) report(err error) error {
	switch c.icon.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		glg.Warn(err)
	}
	return nil
}
