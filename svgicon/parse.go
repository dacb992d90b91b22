package svgicon

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/benoitkugler/pathd/svgdraw"
)

type (
	// iconStyle is the inherited state of the SVG style
	iconStyle struct {
		svgdraw.Style
		fillOpacity, strokeOpacity float64
	}

	// iconCursor is used while parsing SVG files
	iconCursor struct {
		icon                    *SvgIcon
		styleStack              []iconStyle
		inTitleText, inDescText bool
	}
)

// defaultStyle fills black with the nonzero rule,
// full opacity, no stroke, ButtCap line end and Bevel line connect.
var defaultStyle = iconStyle{
	Style: svgdraw.Style{
		Fill:        color.Black,
		StrokeWidth: 1,
		FillRule:    svgdraw.NonZero,
		Opacity:     1,
		LineJoin:    svgdraw.Bevel,
		LineCap:     svgdraw.ButtCap,
		MiterLimit:  4,
	},
	fillOpacity:   1,
	strokeOpacity: 1,
}

// resolve applies the fill and stroke opacities to the colors
func (s iconStyle) resolve() svgdraw.Style {
	out := s.Style
	out.Fill = withOpacity(out.Fill, s.fillOpacity)
	out.Stroke = withOpacity(out.Stroke, s.strokeOpacity)
	return out
}

// parseFloat reads a number, using the full SVG number syntax
func parseFloat(s string) (float64, error) {
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// parseBasicFloat accepts an optional px unit
func parseBasicFloat(s string) (float64, error) {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"))
}

// readFraction accepts either a number or a percentage
func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = parseFloat(v)
	f /= d
	if f > 1 {
		f = 1
	} else if f < 0 {
		f = 0
	}
	return
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func readPoints(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		out[i], err = parseFloat(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *iconCursor) readStyleAttr(curStyle *iconStyle, k, v string) error {
	switch k {
	case "fill":
		col, err := parseSVGColor(v)
		if err != nil {
			return err
		}
		curStyle.Fill = col
	case "stroke":
		col, err := parseSVGColor(v)
		if err != nil {
			return err
		}
		curStyle.Stroke = col
	case "fill-rule":
		switch v {
		case "evenodd":
			curStyle.FillRule = svgdraw.EvenOdd
		case "nonzero":
			curStyle.FillRule = svgdraw.NonZero
		default:
			return fmt.Errorf("invalid fill-rule %q", v)
		}
	case "stroke-linecap":
		switch v {
		case "butt":
			curStyle.LineCap = svgdraw.ButtCap
		case "round":
			curStyle.LineCap = svgdraw.RoundCap
		case "square":
			curStyle.LineCap = svgdraw.SquareCap
		}
	case "stroke-linejoin":
		switch v {
		case "miter":
			curStyle.LineJoin = svgdraw.Miter
		case "round":
			curStyle.LineJoin = svgdraw.Round
		case "bevel":
			curStyle.LineJoin = svgdraw.Bevel
		}
	case "stroke-miterlimit":
		mLimit, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		curStyle.MiterLimit = mLimit
	case "stroke-width":
		width, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		curStyle.StrokeWidth = width
	case "opacity", "stroke-opacity", "fill-opacity":
		op, err := readFraction(v)
		if err != nil {
			return err
		}
		switch k {
		case "opacity":
			curStyle.Opacity *= op
		case "fill-opacity":
			curStyle.fillOpacity = op
		case "stroke-opacity":
			curStyle.strokeOpacity = op
		}
	}
	return nil
}

// pushStyle parses the style element, and push it on the style stack.
// Note that this parses both the contents of a style attribute plus
// direct presentation attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name.Local+":"+attr.Value)
		}
	}
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, pair := range pairs {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			k := strings.ToLower(kv[0])
			k = strings.TrimSpace(k)
			v := strings.TrimSpace(kv[1])
			err := c.readStyleAttr(&curStyle, k, v)
			if err != nil {
				return err
			}
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.report(fmt.Errorf("cannot process svg element %s: %w", se.Name.Local, errUnsupported))
	}
	return df(c, se.Attr)
}
