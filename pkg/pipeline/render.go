package pipeline

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/render"
	"github.com/slidegeom/slidegeom/pkg/render/dot"
)

// Render generates every requested artifact format from a built
// diagram. JSON and SVG are computed in-process; PNG and PDF convert
// the SVG through librsvg; DOT formats re-express the connector graph
// through Graphviz.
func Render(res *diagram.Result, canvas diagram.Canvas, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	svgOpts := []render.SVGOption{render.WithScale(opts.Scale)}
	if opts.Background != "" {
		svgOpts = append(svgOpts, render.WithBackground(opts.Background))
	}

	// SVG feeds the raster formats; render it once.
	var svg []byte
	needSVG := func() []byte {
		if svg == nil {
			svg = render.RenderSVG(res, canvas, svgOpts...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			data, err := diagram.MarshalResult(res)
			if err != nil {
				return nil, fmt.Errorf("marshal result: %w", err)
			}
			artifacts[FormatJSON] = data

		case FormatSVG:
			artifacts[FormatSVG] = needSVG()

		case FormatPNG:
			data, err := render.ToPNG(needSVG(), opts.PNGScale)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[FormatPNG] = data

		case FormatPDF:
			data, err := render.ToPDF(needSVG())
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			artifacts[FormatPDF] = data

		case FormatDOT:
			artifacts[FormatDOT] = []byte(dot.ToDOT(res, dot.Options{Detailed: opts.Detailed}))

		case FormatDOTSVG:
			data, err := dot.RenderSVG(dot.ToDOT(res, dot.Options{Detailed: opts.Detailed}))
			if err != nil {
				return nil, fmt.Errorf("render dot svg: %w", err)
			}
			artifacts[FormatDOTSVG] = data

		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
}
