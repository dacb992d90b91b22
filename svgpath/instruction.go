package svgpath

import (
	"strconv"
	"strings"
)

// InstructionType is the kind of a decoded path command.
type InstructionType uint8

const (
	Invalid InstructionType = iota
	Move
	ClosePath
	Line
	HorizontalLine
	VerticalLine
	Curve
	SmoothCurve
	QuadraticBezierCurve
	SmoothQuadraticBezierCurve
	EllipticalArc
)

func (t InstructionType) String() string {
	switch t {
	case Move:
		return "Move"
	case ClosePath:
		return "ClosePath"
	case Line:
		return "Line"
	case HorizontalLine:
		return "HorizontalLine"
	case VerticalLine:
		return "VerticalLine"
	case Curve:
		return "Curve"
	case SmoothCurve:
		return "SmoothCurve"
	case QuadraticBezierCurve:
		return "QuadraticBezierCurve"
	case SmoothQuadraticBezierCurve:
		return "SmoothQuadraticBezierCurve"
	case EllipticalArc:
		return "EllipticalArc"
	default:
		return "Invalid"
	}
}

// letter returns the uppercase command letter, or 0 for Invalid.
func (t InstructionType) letter() byte {
	for l, c := range commands {
		if c.kind == t {
			return l - 'a' + 'A'
		}
	}
	return 0
}

// Arity is the number of values carried by one instruction of this type.
// It returns -1 for Invalid.
func (t InstructionType) Arity() int {
	switch t {
	case ClosePath:
		return 0
	case HorizontalLine, VerticalLine:
		return 1
	case Move, Line, SmoothQuadraticBezierCurve:
		return 2
	case SmoothCurve, QuadraticBezierCurve:
		return 4
	case Curve:
		return 6
	case EllipticalArc:
		return 7
	default:
		return -1
	}
}

// Instruction is one decoded path command, before its coordinates
// are resolved against the current point.
// Data layout depends on Type :
//	Move, Line, SmoothQuadraticBezierCurve : x y
//	HorizontalLine : x ; VerticalLine : y
//	Curve : x1 y1 x2 y2 x y
//	SmoothCurve : x2 y2 x y
//	QuadraticBezierCurve : x1 y1 x y
//	EllipticalArc : rx ry x-axis-rotation large-arc-flag sweep-flag x y
type Instruction struct {
	Type     InstructionType
	Absolute bool
	Data     []float64
}

// Command returns the path data letter of the instruction
// (lowercase for relative instructions).
func (ins Instruction) Command() byte {
	l := ins.Type.letter()
	if l == 0 {
		return '?'
	}
	if !ins.Absolute {
		l += 'a' - 'A'
	}
	return l
}

func formatNumber(f float64) string {
	// never use exponents : they are not accepted by Parse
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the path data representation of the instruction,
// such as "l5,5".
func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteByte(ins.Command())
	for i, f := range ins.Data {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatNumber(f))
	}
	return b.String()
}

// Instructions is the decoded form of a path data attribute.
// It should be considered as read-only: a new value is returned for
// each parsing.
type Instructions []Instruction

// String returns a path data string which, once parsed,
// yields back the same instructions.
func (l Instructions) String() string {
	chunks := make([]string, len(l))
	for i, ins := range l {
		chunks[i] = ins.String()
	}
	return strings.Join(chunks, " ")
}
