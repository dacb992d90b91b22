package svgdraw

import "math"

// This file implements the transformation from
// elliptical arcs to their cubic bezier equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// ellipseArc is the center parameterization of an arc
type ellipseArc struct {
	cx, cy         float64 // center
	rx, ry         float64 // radii, possibly scaled up
	sinPhi, cosPhi float64 // x-axis rotation
	etaStart, dEta float64 // start angle and signed span, in ellipse parametric
}

// centerArc converts the endpoint parameterization of an arc
// to its center parameterization.
// `from` and `to` must be distinct, and the radii strictly positive.
// Radii too small to join the endpoints are scaled up,
// preserving their ratio.
func centerArc(from, to Point, rx, ry, rotation float64, largeArc, sweep bool) ellipseArc {
	sinPhi, cosPhi := math.Sincos(rotation * math.Pi / 180) // Convert degress to radians

	// move the origin to the middle of the chord,
	// and rotate the ellipse x-axis to the coordinate x-axis
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1, y1 := cosPhi*dx+sinPhi*dy, -sinPhi*dx+cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		// requested ellipse does not exist
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	var coef float64
	if num > 0 { // zero up to roundoff for scaled radii
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cx1, cy1 := coef*rx*y1/ry, -coef*ry*x1/rx

	// reverse rotate and translate back to original coordinates
	out := ellipseArc{
		cx:     cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2,
		cy:     sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2,
		rx:     rx,
		ry:     ry,
		sinPhi: sinPhi,
		cosPhi: cosPhi,
	}

	out.etaStart = math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	etaEnd := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	out.dEta = etaEnd - out.etaStart
	if sweep && out.dEta < 0 {
		out.dEta += math.Pi * 2
	} else if !sweep && out.dEta > 0 {
		out.dEta -= math.Pi * 2
	}
	return out
}

// addArc adds to `p` the arc from `from` to `to`, approximated
// by cubic bezier curves, each spanning at most maxDx.
// Identical endpoints add nothing, and a zero radius degrades to a line.
func (p *Path) addArc(from, to Point, rx, ry, rotation float64, largeArc, sweep bool) {
	if from == to {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.lineTo(to)
		return
	}
	arc := centerArc(from, to, rx, ry, rotation, largeArc, sweep)

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(arc.dEta)/maxDx) + 1
	dEta := arc.dEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!
	last := from
	ldx, ldy := arc.prime(arc.etaStart)
	for i := 1; i <= segs; i++ {
		eta := arc.etaStart + dEta*float64(i)
		var pt Point
		if i == segs {
			pt = to // Just makes the end point exact; no roundoff error
		} else {
			pt = arc.pointAt(eta)
		}
		dx, dy := arc.prime(eta)
		p.cubicTo(Point{last.X + alpha*ldx, last.Y + alpha*ldy},
			Point{pt.X - alpha*dx, pt.Y - alpha*dy}, pt)
		last, ldx, ldy = pt, dx, dy
	}
}

// prime gives tangent vectors for the parameterized ellipse
func (e ellipseArc) prime(eta float64) (px, py float64) {
	bCosEta := e.ry * math.Cos(eta)
	aSinEta := e.rx * math.Sin(eta)
	px = -aSinEta*e.cosPhi - bCosEta*e.sinPhi
	py = -aSinEta*e.sinPhi + bCosEta*e.cosPhi
	return
}

// pointAt gives points for the parameterized ellipse
func (e ellipseArc) pointAt(eta float64) Point {
	aCosEta := e.rx * math.Cos(eta)
	bSinEta := e.ry * math.Sin(eta)
	return Point{
		X: e.cx + aCosEta*e.cosPhi - bSinEta*e.sinPhi,
		Y: e.cy + aCosEta*e.sinPhi + bSinEta*e.cosPhi,
	}
}
