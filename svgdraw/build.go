package svgdraw

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/pathd/svgpath"
)

var (
	ErrMissingCurrentPoint = errors.New("relative command without current point")
	ErrInvalidInstruction  = errors.New("invalid instruction")
)

// BuildError reports the instruction which could not be resolved.
type BuildError struct {
	Index       int // in the instruction list
	Instruction svgpath.Instruction
	Err         error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building instruction %d (%s): %s", e.Index, e.Instruction, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// family of the previous segment, used by the
// smooth commands to reflect the last control point
type family uint8

const (
	otherFamily family = iota
	cubicFamily
	quadFamily
)

// cursor is the state threaded through the instructions.
type cursor struct {
	current    Point // current point
	start      Point // start of the current subpath
	hasCurrent bool

	lastControl Point // last control point of the previous curve
	previous    family
}

// resolve returns the absolute point for the given coordinates.
func (c cursor) resolve(absolute bool, x, y float64) Point {
	if absolute {
		return Point{x, y}
	}
	return Point{c.current.X + x, c.current.Y + y}
}

// reflect returns the reflection of the last control point
// about the current point, if the previous segment belongs to `f`,
// or the current point otherwise.
func (c cursor) reflect(f family) Point {
	if c.previous != f {
		return c.current
	}
	return Point{2*c.current.X - c.lastControl.X, 2*c.current.Y - c.lastControl.Y}
}

// Build resolves the instructions into a path, using absolute
// coordinates only. Arcs are approximated by cubic bezier curves.
// An empty list returns an empty path.
// The returned error, if any, is a *BuildError.
func Build(instructions svgpath.Instructions) (Path, error) {
	var (
		c   cursor
		out Path
		err error
	)
	for i, ins := range instructions {
		if i == 0 && ins.Type != svgpath.Move {
			return nil, &BuildError{Index: i, Instruction: ins, Err: svgpath.ErrMissingMoveTo}
		}
		var segments Path
		c, segments, err = c.step(ins)
		if err != nil {
			return nil, &BuildError{Index: i, Instruction: ins, Err: err}
		}
		out = append(out, segments...)
	}
	return out, nil
}

// MustBuild is like Build but parses `d` first, and panics on error.
// It is intended for static path data.
func MustBuild(d string) Path {
	p, err := Build(svgpath.MustParse(d))
	if err != nil {
		panic(err)
	}
	return p
}

func checkInstruction(ins svgpath.Instruction) error {
	arity := ins.Type.Arity()
	if arity < 0 || len(ins.Data) != arity {
		return ErrInvalidInstruction
	}
	if ins.Type == svgpath.EllipticalArc {
		for _, f := range ins.Data[3:5] {
			if f != 0 && f != 1 {
				return ErrInvalidInstruction
			}
		}
	}
	return nil
}

// step resolves one instruction, returning the updated cursor
// and the segments to append. `c` is not modified.
func (c cursor) step(ins svgpath.Instruction) (cursor, Path, error) {
	if err := checkInstruction(ins); err != nil {
		return c, nil, err
	}
	if !ins.Absolute && !c.hasCurrent {
		return c, nil, ErrMissingCurrentPoint
	}

	var out Path
	abs, data := ins.Absolute, ins.Data
	next := c
	next.previous = otherFamily
	switch ins.Type {
	case svgpath.Move:
		p := c.resolve(abs, data[0], data[1])
		out.moveTo(p)
		next.current, next.start, next.hasCurrent = p, p, true
	case svgpath.ClosePath:
		out.close()
		next.current = c.start
	case svgpath.Line:
		p := c.resolve(abs, data[0], data[1])
		out.lineTo(p)
		next.current = p
	case svgpath.HorizontalLine:
		p := Point{data[0], c.current.Y}
		if !abs {
			p.X += c.current.X
		}
		out.lineTo(p)
		next.current = p
	case svgpath.VerticalLine:
		p := Point{c.current.X, data[0]}
		if !abs {
			p.Y += c.current.Y
		}
		out.lineTo(p)
		next.current = p
	case svgpath.Curve:
		c1 := c.resolve(abs, data[0], data[1])
		c2 := c.resolve(abs, data[2], data[3])
		p := c.resolve(abs, data[4], data[5])
		out.cubicTo(c1, c2, p)
		next.current, next.lastControl, next.previous = p, c2, cubicFamily
	case svgpath.SmoothCurve:
		c1 := c.reflect(cubicFamily)
		c2 := c.resolve(abs, data[0], data[1])
		p := c.resolve(abs, data[2], data[3])
		out.cubicTo(c1, c2, p)
		next.current, next.lastControl, next.previous = p, c2, cubicFamily
	case svgpath.QuadraticBezierCurve:
		ctrl := c.resolve(abs, data[0], data[1])
		p := c.resolve(abs, data[2], data[3])
		out.quadTo(ctrl, p)
		next.current, next.lastControl, next.previous = p, ctrl, quadFamily
	case svgpath.SmoothQuadraticBezierCurve:
		ctrl := c.reflect(quadFamily)
		p := c.resolve(abs, data[0], data[1])
		out.quadTo(ctrl, p)
		next.current, next.lastControl, next.previous = p, ctrl, quadFamily
	case svgpath.EllipticalArc:
		p := c.resolve(abs, data[5], data[6])
		out.addArc(c.current, p, data[0], data[1], data[2], data[3] != 0, data[4] != 0)
		next.current = p
	}
	return next, out, nil
}
