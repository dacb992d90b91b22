package svgpdf

import (
	"bytes"
	"strings"
	"testing"

	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgicon"
)

// contentOf paints `d` on an uncompressed 10x10 page and returns the document.
func contentOf(t *testing.T, d string, style svgdraw.Style) string {
	pdf := newDocument(10, 10)
	pdf.SetCompression(false)
	svgdraw.MustBuild(d).Paint(NewRenderer(pdf), style, mt.Identity())

	var b bytes.Buffer
	require.NoError(t, pdf.Output(&b))
	return b.String()
}

func TestFill(t *testing.T) {
	style := svgdraw.DefaultStyle

	content := contentOf(t, "M2,2 H8 V8 Z", style)
	assert.Contains(t, content, "2.00 8.00 m\n") // y axis is flipped
	assert.Contains(t, content, "\nf*\n")
	assert.NotContains(t, content, "\nS\n")

	style.FillRule = svgdraw.NonZero
	content = contentOf(t, "M2,2 H8 V8 Z", style)
	assert.Contains(t, content, "\nf\n")
}

func TestStroke(t *testing.T) {
	style := svgdraw.DefaultStyle
	style.Fill = nil
	style.Stroke = svgdraw.DefaultStyle.Fill
	content := contentOf(t, "M2,2 Q5,0 8,2", style)
	assert.Contains(t, content, "\nS\n")
	assert.NotContains(t, content, "\nf*\n")

	// both operations write the path
	style.Fill = style.Stroke
	content = contentOf(t, "M2,2 L8,8", style)
	assert.Equal(t, 2, strings.Count(content, "2.00 8.00 m\n"))
}

func TestQuadraticCurve(t *testing.T) {
	content := contentOf(t, "M0,10 Q5,0 10,10", svgdraw.DefaultStyle)
	// control points at 2/3 of the way to (5, 0), y axis flipped
	assert.Contains(t, content, "0.00 0.00 m\n3.33333 6.66667 6.66667 6.66667 10.00000 0.00000 c\n")
	assert.NotContains(t, content, " v\n")

	// the current point is tracked across segments
	content = contentOf(t, "M0,10 L2,10 T10,10", svgdraw.DefaultStyle)
	assert.Contains(t, content, "2.00 0.00 l\n")
	assert.Contains(t, content, " c\n")
	assert.NotContains(t, content, " v\n")
}

func TestStrokeOptions(t *testing.T) {
	style := svgdraw.DefaultStyle
	style.Fill = nil
	style.Stroke = svgdraw.DefaultStyle.Fill
	style.StrokeWidth = 3
	style.MiterLimit = 4
	style.LineJoin = svgdraw.Miter
	style.LineCap = svgdraw.RoundCap

	content := contentOf(t, "M2,2 L8,2 L8,8", style)
	assert.Contains(t, content, "\n3.00 w\n")
	assert.Contains(t, content, "\n4.00 M\n")
	assert.Contains(t, content, "\n0 j\n") // miter join
	assert.Contains(t, content, "\n1 J\n") // round cap
}

func TestRenderPath(t *testing.T) {
	var b bytes.Buffer
	err := RenderPathToPDF("M0,0 A5,5 0 0 1 10,10", 20, 20, svgdraw.DefaultStyle, mt.Identity(), &b)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))

	err = RenderPathToPDF("M0,0 A5,5 0 2 1 10,10", 20, 20, svgdraw.DefaultStyle, mt.Identity(), &b)
	assert.Error(t, err)
}

func TestRenderIcon(t *testing.T) {
	const icon = `<svg viewBox="0 0 24 24"><path fill="teal" d="M2,2 h20 v20 h-20 z"/></svg>`
	var b bytes.Buffer
	require.NoError(t, RenderSVGIconToPDF(strings.NewReader(icon), &b, svgicon.StrictErrorMode))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}
