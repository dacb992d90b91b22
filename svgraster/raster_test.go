package svgraster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgicon"
	"github.com/benoitkugler/pathd/svgpath"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func isPainted(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R > 0xf0 && c.A > 0xf0
}

func isEmpty(img *image.RGBA, x, y int) bool { return img.RGBAAt(x, y).A == 0 }

func TestRasterSquare(t *testing.T) {
	style := svgdraw.DefaultStyle
	style.Fill = red

	img, err := RasterPath("M2,2 H8 V8 H2 Z", 10, 10, style, mt.Identity())
	require.NoError(t, err)
	assert.True(t, isPainted(img, 5, 5))
	assert.True(t, isPainted(img, 2, 7))
	assert.True(t, isEmpty(img, 0, 0))
	assert.True(t, isEmpty(img, 9, 5))

	// scaled to fill the whole image
	m := svgdraw.Fit(svgdraw.Bounds{X: 2, Y: 2, W: 6, H: 6}, 0, 0, 20, 20)
	img, err = RasterPath("M2,2 H8 V8 H2 Z", 20, 20, style, m)
	require.NoError(t, err)
	assert.True(t, isPainted(img, 0, 0))
	assert.True(t, isPainted(img, 19, 19))
}

func TestRasterFillRule(t *testing.T) {
	const nested = "M0,0 H10 V10 H0 Z M3,3 H7 V7 H3 Z"
	style := svgdraw.DefaultStyle
	style.Fill = red

	style.FillRule = svgdraw.EvenOdd
	img, err := RasterPath(nested, 10, 10, style, mt.Identity())
	require.NoError(t, err)
	assert.True(t, isPainted(img, 1, 1))
	assert.True(t, isEmpty(img, 5, 5))

	style.FillRule = svgdraw.NonZero
	img, err = RasterPath(nested, 10, 10, style, mt.Identity())
	require.NoError(t, err)
	assert.True(t, isPainted(img, 1, 1))
	assert.True(t, isPainted(img, 5, 5))
}

func TestRasterStroke(t *testing.T) {
	style := svgdraw.DefaultStyle
	style.Fill = nil
	style.Stroke = red
	style.StrokeWidth = 2

	img, err := RasterPath("M1,5 H9", 10, 10, style, mt.Identity())
	require.NoError(t, err)
	assert.True(t, isPainted(img, 5, 5))
	assert.True(t, isPainted(img, 5, 4))
	assert.True(t, isEmpty(img, 5, 1))
	assert.True(t, isEmpty(img, 5, 8))
}

func TestRasterErrors(t *testing.T) {
	_, err := RasterPath("M0,0 L1e3,0", 10, 10, svgdraw.DefaultStyle, mt.Identity())
	var syntaxErr *svgpath.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))

	_, err = RasterPath("m0,0 l5,5", 10, 10, svgdraw.DefaultStyle, mt.Identity())
	assert.True(t, errors.Is(err, svgdraw.ErrMissingCurrentPoint))
}

const icon = `<svg viewBox="0 0 10 10" width="20" height="20">
	<path fill="#f00" d="M0,0 H5 V5 H0 Z"/>
	<path fill="#f00" d="m0,0"/>
</svg>`

func TestRasterIcon(t *testing.T) {
	img, err := RasterSVGIconToImage(strings.NewReader(icon), svgicon.IgnoreErrorMode)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	assert.True(t, isPainted(img, 2, 2))
	assert.True(t, isEmpty(img, 7, 7))

	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	decoded, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	_, err = RasterSVGIconToImage(strings.NewReader(icon), svgicon.StrictErrorMode)
	assert.Error(t, err)
}
