package svgdraw

import (
	"math/rand"
	"testing"

	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, Path(nil).Bounds())

	for _, test := range []struct {
		d    string
		want Bounds
	}{
		{"M3,4", Bounds{3, 4, 0, 0}},
		{"M0,0 h5v5h-5z", Bounds{0, 0, 5, 5}},
		{"M0,0 L-3,2 M10,10", Bounds{-3, 0, 13, 10}},
		// control points are not part of the extent
		{"M0,0 Q5,10,10,0", Bounds{0, 0, 10, 5}},
		{"M0,0 C0,10,10,10,10,0", Bounds{0, 0, 10, 7.5}},
	} {
		assert.Equal(t, test.want, build(t, test.d).Bounds(), test.d)
	}
}

func randPoint(offset float64) Point {
	return Point{rand.Float64()*100 + offset, rand.Float64()*100 + offset}
}

// sample checks that the curve lies inside the bounds,
// and that the bounds are reached
func TestBoundsContainCurves(t *testing.T) {
	const eps = 1e-9
	for i := 0; i < 200; i++ {
		var curve bezier
		switch i % 3 {
		case 0:
			curve = line{randPoint(0), randPoint(0)}
		case 1:
			curve = quadBezier{randPoint(0), randPoint(-20), randPoint(0)}
		case 2:
			curve = cubicBezier{randPoint(0), randPoint(-20), randPoint(20), randPoint(0)}
		}
		ext := newExtent()
		ext.addCurve(curve)

		sampled := newExtent()
		for j := 0; j <= 1000; j++ {
			p := curve.evaluateCurve(float64(j) / 1000)
			assert.True(t, ext.minX-eps <= p.X && p.X <= ext.maxX+eps)
			assert.True(t, ext.minY-eps <= p.Y && p.Y <= ext.maxY+eps)
			sampled.add(p)
		}
		assert.InDelta(t, ext.minX, sampled.minX, 1e-2)
		assert.InDelta(t, ext.maxX, sampled.maxX, 1e-2)
		assert.InDelta(t, ext.minY, sampled.minY, 1e-2)
		assert.InDelta(t, ext.maxY, sampled.maxY, 1e-2)
	}
}

func TestFit(t *testing.T) {
	m := Fit(Bounds{0, 0, 10, 20}, 0, 0, 100, 100)
	assert.Equal(t, mt.Transform{{10, 0, 0}, {0, 5, 0}, {0, 0, 1}}, m)

	m = Fit(Bounds{5, 5, 10, 10}, 1, 2, 20, 20)
	x, y := m.Apply(5, 5)
	assert.Equal(t, 1., x)
	assert.Equal(t, 2., y)
	x, y = m.Apply(15, 15)
	assert.Equal(t, 21., x)
	assert.Equal(t, 22., y)

	// degenerate box are only translated
	m = Fit(Bounds{3, 4, 0, 0}, 0, 0, 10, 10)
	x, y = m.Apply(3, 4)
	assert.Equal(t, 0., x)
	assert.Equal(t, 0., y)
}
