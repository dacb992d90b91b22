// Given a resolved path and its style, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"
	"math"

	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/image/math/fixed"
)

// Adder accumulates path commands.
// Transformations are already applied to the points.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge.
type Drawer interface {
	Adder

	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// SetColor set the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Bevel JoinMode = iota
	Round
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Bevel:
		return "Bevel"
	case Round:
		return "Round"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6 // used by the Miter join
	LineJoin   JoinMode
	LineCap    CapMode
}

// FillRule selects the insideness rule used when filling.
type FillRule uint8

const (
	EvenOdd FillRule = iota
	NonZero
)

func (f FillRule) String() string {
	if f == NonZero {
		return "nonzero"
	}
	return "evenodd"
}

// Style holds the render parameters of a path.
// A nil Fill (or Stroke) color disables filling (or stroking).
type Style struct {
	Fill, Stroke color.Color
	StrokeWidth  float64
	FillRule     FillRule
	Opacity      float64 // in [0, 1], applied to both fill and stroke

	LineJoin   JoinMode
	LineCap    CapMode
	MiterLimit float64
}

// DefaultStyle fills in black with the even-odd rule,
// at full opacity, and does not stroke.
var DefaultStyle = Style{
	Fill:        color.Black,
	StrokeWidth: 1,
	FillRule:    EvenOdd,
	Opacity:     1,
	LineJoin:    Bevel,
	LineCap:     ButtCap,
	MiterLimit:  4,
}

// lineScale returns the factor applied by `m` to lengths,
// used to scale the stroke width.
func lineScale(m mt.Transform) float64 {
	return math.Sqrt(math.Abs(m[0][0]*m[1][1] - m[0][1]*m[1][0]))
}

// Paint draws the path into the driver `d`, using the given style
// and applying the transform `m` to every point.
func (p Path) Paint(d Driver, style Style, m mt.Transform) {
	filler, stroker := d.SetupDrawers(style.Fill != nil, style.Stroke != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(style.FillRule == NonZero)

		p.AddTo(filler, m)
		filler.Stop(false)

		filler.SetColor(style.Fill, style.Opacity)
		filler.Draw()
		filler.SetWinding(true) // rasterx default
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()

		scale := lineScale(m)
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth:  fixed.Int26_6(style.StrokeWidth * scale * 64),
			MiterLimit: fixed.Int26_6(style.MiterLimit * 64),
			LineJoin:   style.LineJoin,
			LineCap:    style.LineCap,
		})

		p.AddTo(stroker, m)
		stroker.Stop(false)

		stroker.SetColor(style.Stroke, style.Opacity)
		stroker.Draw()
	}
}
