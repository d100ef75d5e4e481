// Package dot renders a built diagram's connector graph in Graphviz
// DOT format. This is a structure preview: it shows which shapes
// connect to which, letting Graphviz choose positions, and ignores
// the computed canvas geometry.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/render"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes shape kind and fill in node labels.
	// When false, only the shape text (or ID) is shown.
	Detailed bool
}

// ToDOT converts a built diagram to Graphviz DOT format. Only shapes
// that participate in the connector graph appear; free-standing
// labels and terminal decorations are skipped unless they carry a
// connector.
func ToDOT(res *diagram.Result, opts Options) string {
	connected := make(map[string]bool)
	for _, c := range res.Connectors {
		if c.From.ShapeID != "" {
			connected[c.From.ShapeID] = true
		}
		if c.To.ShapeID != "" {
			connected[c.To.ShapeID] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, s := range res.Shapes {
		if !connected[s.ID] && s.Terminal {
			continue
		}
		label := fmtLabel(s, opts.Detailed)
		attrs := fmtAttrs(s, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range res.Connectors {
		if c.From.ShapeID == "" || c.To.ShapeID == "" {
			continue
		}
		if c.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", c.From.ShapeID, c.To.ShapeID, c.Label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", c.From.ShapeID, c.To.ShapeID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s diagram.Shape, detailed bool) string {
	label := s.Text
	if label == "" {
		label = s.ID
	}
	if detailed {
		label = fmt.Sprintf("%s\n[%s %s]", label, s.Kind, s.Fill)
	}
	return label
}

func fmtAttrs(s diagram.Shape, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if s.Kind == diagram.KindOval {
		attrs = append(attrs, "shape=ellipse")
	}
	if s.Fill != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.Fill), "fontcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz
// engine.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the viewBox
// starts at the origin and the pixel size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
