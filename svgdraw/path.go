package svgdraw

import (
	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/pathd/svgpath"
)

// This file defines the resolved path structure

// Point is an absolute position, in user units.
type Point struct{ X, Y float64 }

type segmentCommand uint8

const (
	segMoveTo segmentCommand = iota
	segLineTo
	segQuadTo
	segCubicTo
	segClose
)

// Segment groups the different drawing commands
// of a resolved path.
type Segment interface {
	command() segmentCommand
	// add itself on `q`, after applying the transform `m`
	addTo(q Adder, m *mt.Transform)
}

type MoveTo Point

type LineTo Point

// QuadTo stores the control point and the end point.
type QuadTo [2]Point

// CubicTo stores the two control points and the end point.
type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() segmentCommand  { return segMoveTo }
func (LineTo) command() segmentCommand  { return segLineTo }
func (QuadTo) command() segmentCommand  { return segQuadTo }
func (CubicTo) command() segmentCommand { return segCubicTo }
func (Close) command() segmentCommand   { return segClose }

// toFixed applies `m` and converts to a fixed point.
func toFixed(m *mt.Transform, p Point) fixed.Point26_6 {
	x, y := m.Apply(p.X, p.Y)
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (op MoveTo) addTo(q Adder, m *mt.Transform) {
	q.Stop(false) // implicit close if currently in path.
	q.Start(toFixed(m, Point(op)))
}

func (op LineTo) addTo(q Adder, m *mt.Transform) {
	q.Line(toFixed(m, Point(op)))
}

func (op QuadTo) addTo(q Adder, m *mt.Transform) {
	q.QuadBezier(toFixed(m, op[0]), toFixed(m, op[1]))
}

func (op CubicTo) addTo(q Adder, m *mt.Transform) {
	q.CubeBezier(toFixed(m, op[0]), toFixed(m, op[1]), toFixed(m, op[2]))
}

func (Close) addTo(q Adder, _ *mt.Transform) {
	q.Stop(true)
}

// Path describes a sequence of resolved segments, using absolute
// coordinates only. It is built from path data by Build.
type Path []Segment

func (p *Path) moveTo(a Point)        { *p = append(*p, MoveTo(a)) }
func (p *Path) lineTo(b Point)        { *p = append(*p, LineTo(b)) }
func (p *Path) quadTo(b, c Point)     { *p = append(*p, QuadTo{b, c}) }
func (p *Path) cubicTo(b, c, d Point) { *p = append(*p, CubicTo{b, c, d}) }
func (p *Path) close()                { *p = append(*p, Close{}) }

// AddTo sends the segments of the path to `q`, transformed by `m`.
// Each MoveTo is preceded by q.Stop(false), but the last subpath
// is left open: the caller is responsible for the final Stop.
func (p Path) AddTo(q Adder, m mt.Transform) {
	for _, op := range p {
		op.addTo(q, &m)
	}
}

// CurrentPoint returns the point where the next segment would start,
// or false for an empty path.
func (p Path) CurrentPoint() (Point, bool) {
	var current, start Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, start = Point(op), Point(op)
		case LineTo:
			current = Point(op)
		case QuadTo:
			current = op[1]
		case CubicTo:
			current = op[2]
		case Close:
			current = start
		}
	}
	return current, len(p) != 0
}

// Instructions returns the path as absolute path data
// instructions. Building them yields back the same path.
func (p Path) Instructions() svgpath.Instructions {
	out := make(svgpath.Instructions, len(p))
	for i, op := range p {
		ins := svgpath.Instruction{Absolute: true}
		switch op := op.(type) {
		case MoveTo:
			ins.Type, ins.Data = svgpath.Move, []float64{op.X, op.Y}
		case LineTo:
			ins.Type, ins.Data = svgpath.Line, []float64{op.X, op.Y}
		case QuadTo:
			ins.Type, ins.Data = svgpath.QuadraticBezierCurve, []float64{op[0].X, op[0].Y, op[1].X, op[1].Y}
		case CubicTo:
			ins.Type, ins.Data = svgpath.Curve, []float64{op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y}
		case Close:
			ins.Type = svgpath.ClosePath
		}
		out[i] = ins
	}
	return out
}

// ToSVGPath returns a string representation of the path,
// using only absolute commands.
func (p Path) ToSVGPath() string {
	return p.Instructions().String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}
