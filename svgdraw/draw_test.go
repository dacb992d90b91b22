package svgdraw

import (
	"fmt"
	"image/color"
	"testing"

	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

// recorder logs the draw operations it receives
type recorder struct {
	ops     []string
	winding bool
	options StrokeOptions
	color   color.Color
	opacity float64
}

func pt(p fixed.Point26_6) string {
	return fmt.Sprintf("%g,%g", float64(p.X)/64, float64(p.Y)/64)
}

func (r *recorder) Clear() { r.ops = r.ops[:0] }

func (r *recorder) Start(a fixed.Point26_6) { r.ops = append(r.ops, "start "+pt(a)) }

func (r *recorder) Line(b fixed.Point26_6) { r.ops = append(r.ops, "line "+pt(b)) }

func (r *recorder) QuadBezier(b, c fixed.Point26_6) {
	r.ops = append(r.ops, "quad "+pt(b)+" "+pt(c))
}

func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) {
	r.ops = append(r.ops, "cube "+pt(b)+" "+pt(c)+" "+pt(d))
}

func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.ops = append(r.ops, "close")
	}
}

func (r *recorder) SetColor(c color.Color, opacity float64) { r.color, r.opacity = c, opacity }

func (r *recorder) Draw() { r.ops = append(r.ops, "draw") }

func (r *recorder) SetWinding(useNonZeroWinding bool) { r.winding = useNonZeroWinding }

func (r *recorder) SetStrokeOptions(options StrokeOptions) { r.options = options }

type recordDriver struct {
	filler, stroker *recorder
	windings        []bool // received by the filler, before drawing
}

func (d *recordDriver) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		d.filler = &recorder{}
		f = windingSpy{d.filler, d}
	}
	if willStroke {
		d.stroker = &recorder{}
		s = d.stroker
	}
	return f, s
}

type windingSpy struct {
	*recorder
	d *recordDriver
}

func (w windingSpy) SetWinding(nonZero bool) {
	w.d.windings = append(w.d.windings, nonZero)
	w.recorder.SetWinding(nonZero)
}

func TestAddTo(t *testing.T) {
	var r recorder
	p := MustBuild("M0,0 L10,0 Q10,10,0,10 Z M20,20 C21,21,22,22,23,23")
	p.AddTo(&r, mt.Identity())
	assert.Equal(t, []string{
		"start 0,0", "line 10,0", "quad 10,10 0,10", "close",
		"start 20,20", "cube 21,21 22,22 23,23",
	}, r.ops)

	r.Clear()
	p = MustBuild("M1,2 L3,4")
	p.AddTo(&r, mt.Transform{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}})
	assert.Equal(t, []string{"start 2,4", "line 6,8"}, r.ops)
}

func TestPaint(t *testing.T) {
	p := MustBuild("M0,0 h5v5h-5z")
	red := color.RGBA{R: 0xff, A: 0xff}

	d := &recordDriver{}
	style := DefaultStyle
	style.Fill = red
	style.Opacity = 0.5
	p.Paint(d, style, mt.Identity())
	assert.Nil(t, d.stroker)
	assert.Equal(t, []string{"start 0,0", "line 5,0", "line 5,5", "line 0,5", "close", "draw"}, d.filler.ops)
	assert.Equal(t, red, d.filler.color)
	assert.Equal(t, 0.5, d.filler.opacity)
	assert.Equal(t, []bool{false, true}, d.windings) // even-odd, then reset

	d = &recordDriver{}
	style = DefaultStyle
	style.Fill = nil
	style.Stroke = red
	style.StrokeWidth = 3
	style.LineJoin = Round
	p.Paint(d, style, mt.Transform{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}})
	assert.Nil(t, d.filler)
	assert.Equal(t, fixed.Int26_6(6*64), d.stroker.options.LineWidth)
	assert.Equal(t, Round, d.stroker.options.LineJoin)
	assert.Equal(t, "draw", d.stroker.ops[len(d.stroker.ops)-1])

	d = &recordDriver{}
	style = DefaultStyle
	style.FillRule = NonZero
	p.Paint(d, style, mt.Identity())
	assert.Equal(t, []bool{true, true}, d.windings)
}
