// Implements a raster backend to render path data and SVG images,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	mt "github.com/rustyoz/Mtransform"
	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanFT"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgicon"
	"github.com/benoitkugler/pathd/svgpath"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// NewImageRenderer returns a renderer drawing on a new transparent image.
// It uses a scanFT scanner, since rasterx.ScannerGV ignores the
// even-odd rule.
func NewImageRenderer(width, height int) (*Renderer, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := scanFT.NewScannerFT(width, height, scanFT.NewRGBAPainter(img))
	return NewRenderer(width, height, scanner), img
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round: rasterx.Round,
		svgdraw.Bevel: rasterx.Bevel,
		svgdraw.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.SquareCap: rasterx.SquareCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.SetStroke(
		options.LineWidth, options.MiterLimit, capToFunc[options.LineCap],
		capToFunc[options.LineCap], rasterx.RoundGap,
		joinToJoin[options.LineJoin], nil, 0,
	)
}

// RasterPath draws the path data `d` on a new image of size `width` x `height`,
// applying the transformation `m`.
// The returned error is either a *svgpath.SyntaxError or a *svgdraw.BuildError.
func RasterPath(d string, width, height int, style svgdraw.Style, m mt.Transform) (*image.RGBA, error) {
	instructions, err := svgpath.Parse(d)
	if err != nil {
		return nil, err
	}
	path, err := svgdraw.Build(instructions)
	if err != nil {
		return nil, err
	}
	return RasterResolvedPath(path, width, height, style, m), nil
}

// RasterResolvedPath is like RasterPath, for an already built path.
func RasterResolvedPath(path svgdraw.Path, width, height int, style svgdraw.Style, m mt.Transform) *image.RGBA {
	renderer, img := NewImageRenderer(width, height)
	path.Paint(renderer, style, m)
	return img
}

// RasterSVGIconToImage uses a ScannerFT instance to renderer the
// icon into an image and returns it
func RasterSVGIconToImage(icon io.Reader, errMode svgicon.ErrorMode) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, errMode)
	if err != nil {
		return nil, err
	}
	w, h := int(parsedIcon.ViewBox.W), int(parsedIcon.ViewBox.H)
	renderer, img := NewImageRenderer(w, h)
	parsedIcon.SetTarget(0, 0, float64(w), float64(h))
	if err = parsedIcon.Draw(renderer, 1.0); err != nil {
		return nil, err
	}
	return img, nil
}
