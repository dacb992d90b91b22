// Command pathd decodes, resolves and renders SVG path data.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgpath"
	"github.com/benoitkugler/pathd/svgpdf"
	"github.com/benoitkugler/pathd/svgraster"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		glg.Fatalf("pathd: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathd",
		Short:         "Decode, resolve and render SVG path data",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newParseCmd(), newBuildCmd(), newRenderCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <d>",
		Short: "Print the instructions of the path data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instructions, err := svgpath.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ins := range instructions {
				kind := "relative"
				if ins.Absolute {
					kind = "absolute"
				}
				fmt.Fprintf(out, "%-26s %s %v\n", ins.Type, kind, ins.Data)
			}
			fmt.Fprintln(out, instructions)
			return nil
		},
	}
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <d>",
		Short: "Print the resolved path and its bounding box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := buildPath(args[0])
			if err != nil {
				return err
			}
			b := path.Bounds()
			fmt.Fprintln(cmd.OutOrStdout(), path)
			fmt.Fprintf(cmd.OutOrStdout(), "bounds: x=%g y=%g w=%g h=%g\n", b.X, b.Y, b.W, b.H)
			return nil
		},
	}
}

func buildPath(d string) (svgdraw.Path, error) {
	instructions, err := svgpath.Parse(d)
	if err != nil {
		return nil, err
	}
	return svgdraw.Build(instructions)
}

func newRenderCmd() *cobra.Command {
	var (
		flags      = defaultConfig
		configFile string
		svgFile    string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "render [<d>]",
		Short: "Render path data, or the paths of an SVG file, to PNG or PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			cfg.override(flags, cmd.Flags().Changed)

			if (svgFile == "") == (len(args) == 0) {
				return fmt.Errorf("expected either path data or the --svg flag")
			}
			if err = render(cfg, svgFile, args, output); err != nil {
				return err
			}
			glg.Infof("wrote %s", output)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "", "output file (.png or .pdf)")
	fs.StringVarP(&configFile, "config", "c", "", "TOML file with default render parameters")
	fs.StringVar(&svgFile, "svg", "", "SVG file to render instead of path data")
	fs.IntVar(&flags.Width, "width", flags.Width, "image width")
	fs.IntVar(&flags.Height, "height", flags.Height, "image height")
	fs.Float64Var(&flags.Margin, "margin", flags.Margin, "space around the path")
	fs.StringVar(&flags.Fill, "fill", flags.Fill, "fill color, or none")
	fs.StringVar(&flags.Stroke, "stroke", flags.Stroke, "stroke color, or none")
	fs.Float64Var(&flags.StrokeWidth, "stroke-width", flags.StrokeWidth, "stroke width, in pixels")
	fs.StringVar(&flags.FillRule, "fill-rule", flags.FillRule, "evenodd or nonzero")
	fs.StringVar(&flags.ErrorMode, "error-mode", flags.ErrorMode, "ignore, warn or strict, for SVG files")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// render writes the output file only once the drawing succeeded,
// so that invalid input leaves no empty file behind.
func render(cfg renderConfig, svgFile string, args []string, output string) error {
	ext := strings.ToLower(filepath.Ext(output))
	if ext != ".png" && ext != ".pdf" {
		return fmt.Errorf("unsupported output format %q", ext)
	}

	var (
		buf bytes.Buffer
		err error
	)
	if svgFile != "" {
		err = renderSVG(cfg, svgFile, ext, &buf)
	} else {
		err = renderPathData(cfg, args[0], ext, &buf)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}

func renderSVG(cfg renderConfig, svgFile, ext string, out io.Writer) error {
	mode, err := cfg.errorMode()
	if err != nil {
		return err
	}
	in, err := os.Open(svgFile)
	if err != nil {
		return err
	}
	defer in.Close()

	if ext == ".pdf" {
		return svgpdf.RenderSVGIconToPDF(in, out, mode)
	}
	img, err := svgraster.RasterSVGIconToImage(in, mode)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}

func renderPathData(cfg renderConfig, d, ext string, out io.Writer) error {
	style, err := cfg.style()
	if err != nil {
		return err
	}
	path, err := buildPath(d)
	if err != nil {
		return err
	}
	m := cfg.fitBounds(path.Bounds())
	glg.Infof("rendering %d segments", len(path))

	if ext == ".pdf" {
		return svgpdf.RenderResolvedPathToPDF(path, float64(cfg.Width), float64(cfg.Height), style, m, out)
	}
	return png.Encode(out, svgraster.RasterResolvedPath(path, cfg.Width, cfg.Height, style, m))
}
