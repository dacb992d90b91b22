// Implements a PDF backend to render path data and SVG images,
// by wrapping codeberg.org/go-pdf/fpdf.
package svgpdf

import (
	"fmt"
	"image/color"
	"io"

	"codeberg.org/go-pdf/fpdf"
	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgicon"
	"github.com/benoitkugler/pathd/svgpath"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

// vectorizer is the subset of *fpdf.Fpdf used to write
// path construction operators.
type vectorizer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y float64)
	ClosePath()
}

type Renderer struct {
	pdf *fpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf     vectorizer
	started bool            // false for an empty path, which is not painted
	a       fixed.Point26_6 // current point, needed to elevate quadratic curves
}

// implements the filling operation
type filler struct {
	pather
	out               *fpdf.Fpdf
	useNonZeroWinding bool
}

// implements the stroking operation. The path
// is written again, since DrawPath ends it.
type stroker struct {
	pather
	out *fpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the current page of `pdf`.
// Since fpdf uses a top-left origin, SVG coordinates
// may be used directly, in the document unit.
func NewRenderer(pdf *fpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, out: r.pdf}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}, out: r.pdf}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {
	p.started = false
	p.a = fixed.Point26_6{}
}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
	p.started = true
	p.a = a
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
	p.a = b
}

// QuadBezier writes the degree elevated cubic curve, since
// PDF has no quadratic curve operator.
func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.a)
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveBezierCubicTo(
		x0+2*(cx-x0)/3, y0+2*(cy-y0)/3,
		x+2*(cx-x)/3, y+2*(cy-y)/3,
		x, y)
	p.a = c
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.a = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop && p.started {
		p.pdf.ClosePath()
	}
}

// toRGB returns the color components and the alpha as a fraction
func toRGB(c color.Color) (r, g, b int, alpha float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := toRGB(c)
	f.out.SetFillColor(r, g, b)
	f.out.SetAlpha(a*opacity, "")
}

func (f *filler) Draw() {
	if !f.started {
		return
	}
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.out.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	var capStyle, joinStyle string
	switch options.LineCap {
	case svgdraw.ButtCap:
		capStyle = "butt"
	case svgdraw.RoundCap:
		capStyle = "round"
	case svgdraw.SquareCap:
		capStyle = "square"
	}
	switch options.LineJoin {
	case svgdraw.Bevel:
		joinStyle = "bevel"
	case svgdraw.Miter:
		joinStyle = "miter"
	case svgdraw.Round:
		joinStyle = "round"
	}
	s.out.SetLineWidth(float64(options.LineWidth) / 64)
	s.out.SetLineCapStyle(capStyle)
	s.out.SetLineJoinStyle(joinStyle)
	if options.MiterLimit >= 64 { // PDF requires a limit of at least 1
		// fpdf has no setter for the miter limit (M operator)
		s.out.RawWriteStr(fmt.Sprintf("%.2f M", float64(options.MiterLimit)/64))
	}
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := toRGB(c)
	s.out.SetDrawColor(r, g, b)
	s.out.SetAlpha(a*opacity, "")
}

func (s *stroker) Draw() {
	if !s.started {
		return
	}
	s.out.DrawPath("D")
}

// newDocument returns a one page document of the given size, in points.
func newDocument(width, height float64) *fpdf.Fpdf {
	size := fpdf.SizeType{Wd: width, Ht: height}
	pdf := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", Size: size})
	pdf.AddPageFormat("P", size)
	return pdf
}

// RenderPathToPDF writes to `out` a one page document of size
// `width` x `height` (in points) showing the path data `d`,
// transformed by `m`.
func RenderPathToPDF(d string, width, height float64, style svgdraw.Style, m mt.Transform, out io.Writer) error {
	instructions, err := svgpath.Parse(d)
	if err != nil {
		return err
	}
	path, err := svgdraw.Build(instructions)
	if err != nil {
		return err
	}
	return RenderResolvedPathToPDF(path, width, height, style, m, out)
}

// RenderResolvedPathToPDF is like RenderPathToPDF, for an already built path.
func RenderResolvedPathToPDF(path svgdraw.Path, width, height float64, style svgdraw.Style, m mt.Transform, out io.Writer) error {
	pdf := newDocument(width, height)
	path.Paint(NewRenderer(pdf), style, m)
	return pdf.Output(out)
}

// RenderSVGIconToPDF reads the given icon and renders it
// into `out`, using the view box as page size.
func RenderSVGIconToPDF(icon io.Reader, out io.Writer, errMode svgicon.ErrorMode) error {
	parsedIcon, err := svgicon.ReadIconStream(icon, errMode)
	if err != nil {
		return err
	}
	w, h := parsedIcon.ViewBox.W, parsedIcon.ViewBox.H
	pdf := newDocument(w, h)
	parsedIcon.SetTarget(0, 0, w, h)
	if err = parsedIcon.Draw(NewRenderer(pdf), 1); err != nil {
		return err
	}
	return pdf.Output(out)
}
