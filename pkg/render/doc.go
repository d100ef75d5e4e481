// Package render provides visualization output for built diagrams.
//
// # Overview
//
// This package turns a built diagram (shapes plus routed connectors)
// into drawable artifacts. It provides:
//
//   - Native SVG output ([RenderSVG])
//   - Generic format conversion (SVG to PDF/PNG)
//   - Graphviz DOT export (in [dot] subpackage)
//
// # SVG Output
//
// [RenderSVG] draws every shape and connector at its exact computed
// position. Canvas units are scaled to pixels; connectors are drawn
// under shapes so arrowheads stay visible.
//
//	svg := render.RenderSVG(res, canvas, render.WithScale(80))
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg).
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # DOT Export
//
// The [dot] subpackage exports the connector graph in Graphviz DOT
// format, useful for debugging connectivity independent of geometry.
//
//	src := dot.ToDOT(res, dot.Options{})
//	svg, err := dot.RenderSVG(src)
//
// [dot]: github.com/slidegeom/slidegeom/pkg/render/dot
package render
