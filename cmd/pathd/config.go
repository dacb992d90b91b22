package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
	mt "github.com/rustyoz/Mtransform"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgicon"
)

// renderConfig holds the render parameters, read from
// a TOML file and overridden by the command line flags.
type renderConfig struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Margin      float64 `toml:"margin"`
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke-width"`
	FillRule    string  `toml:"fill-rule"`
	ErrorMode   string  `toml:"error-mode"`
}

var defaultConfig = renderConfig{
	Width:       256,
	Height:      256,
	Margin:      8,
	Fill:        "black",
	Stroke:      "none",
	StrokeWidth: 1,
	FillRule:    "evenodd",
	ErrorMode:   "warn",
}

// loadConfig returns the default configuration, updated by the
// keys found in `file`, if not empty.
func loadConfig(file string) (renderConfig, error) {
	cfg := defaultConfig
	if file == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", file, err)
	}
	return cfg, nil
}

// override copies the values of the flags for which `changed` returns true.
func (cfg *renderConfig) override(flags renderConfig, changed func(name string) bool) {
	if changed("width") {
		cfg.Width = flags.Width
	}
	if changed("height") {
		cfg.Height = flags.Height
	}
	if changed("margin") {
		cfg.Margin = flags.Margin
	}
	if changed("fill") {
		cfg.Fill = flags.Fill
	}
	if changed("stroke") {
		cfg.Stroke = flags.Stroke
	}
	if changed("stroke-width") {
		cfg.StrokeWidth = flags.StrokeWidth
	}
	if changed("fill-rule") {
		cfg.FillRule = flags.FillRule
	}
	if changed("error-mode") {
		cfg.ErrorMode = flags.ErrorMode
	}
}

func (cfg renderConfig) style() (svgdraw.Style, error) {
	style := svgdraw.DefaultStyle
	var err error
	if style.Fill, err = svgicon.ParseSVGColor(cfg.Fill); err != nil {
		return style, err
	}
	if style.Stroke, err = svgicon.ParseSVGColor(cfg.Stroke); err != nil {
		return style, err
	}
	switch cfg.FillRule {
	case "evenodd":
		style.FillRule = svgdraw.EvenOdd
	case "nonzero":
		style.FillRule = svgdraw.NonZero
	default:
		return style, fmt.Errorf("invalid fill rule %q", cfg.FillRule)
	}
	style.StrokeWidth = cfg.StrokeWidth
	return style, nil
}

func (cfg renderConfig) errorMode() (svgicon.ErrorMode, error) {
	return svgicon.ParseErrorMode(cfg.ErrorMode)
}

// fitBounds maps `b` into the image, inside the margins,
// preserving the aspect ratio.
func (cfg renderConfig) fitBounds(b svgdraw.Bounds) mt.Transform {
	w, h := float64(cfg.Width)-2*cfg.Margin, float64(cfg.Height)-2*cfg.Margin
	scale := math.Inf(1)
	if b.W > 0 {
		scale = w / b.W
	}
	if b.H > 0 {
		scale = math.Min(scale, h/b.H)
	}
	if math.IsInf(scale, 1) { // a single point
		scale = 1
	}
	return mt.Transform{
		{scale, 0, cfg.Margin - b.X*scale},
		{0, scale, cfg.Margin - b.Y*scale},
		{0, 0, 1},
	}
}
