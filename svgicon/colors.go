package svgicon

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseSVGColor reads a color as found in fill and stroke attributes:
// "none", a color keyword, #rgb, #rrggbb or rgb(r, g, b)
// with integers or percentages.
// "none" returns a nil color (and no error).
func ParseSVGColor(v string) (color.Color, error) {
	return parseSVGColor(v)
}

func parseSVGColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "none" || v == "":
		return nil, nil
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(strings.ToLower(v))
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %s", v, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		fields := splitOnCommaOrSpace(v[len("rgb(") : len(v)-1])
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid color %q: %w", v, errParamMismatch)
		}
		var rgb [3]uint8
		for i, f := range fields {
			c, err := parseColorValue(f)
			if err != nil {
				return nil, fmt.Errorf("invalid color %q: %s", v, err)
			}
			rgb[i] = c
		}
		return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unsupported color %q", v)
}

// parseColorValue reads an integer in [0, 255] or a percentage
func parseColorValue(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") {
		f, err := parseFloat(strings.TrimSuffix(s, "%"))
		if err != nil {
			return 0, err
		}
		return clamp255(f * 255 / 100), nil
	}
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	return clamp255(f), nil
}

func clamp255(f float64) uint8 {
	if f < 0 {
		return 0
	} else if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}

// withOpacity multiplies the alpha channel of `c` by `opacity`.
func withOpacity(c color.Color, opacity float64) color.Color {
	if c == nil || opacity >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = clamp255(float64(n.A) * opacity)
	return n
}
