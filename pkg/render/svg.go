package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/slidegeom/slidegeom/pkg/diagram"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale      float64
	background string
	fontFamily string
}

// WithScale sets the pixels-per-canvas-unit factor (default 80).
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) { r.scale = s }
}

// WithBackground sets the canvas background color (default white).
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithFontFamily overrides the text font family.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// RenderSVG paints a built diagram as a standalone SVG document.
// Shape and connector coordinates are in canvas units and scaled
// uniformly to pixels.
func RenderSVG(res *diagram.Result, canvas diagram.Canvas, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 80, background: "#ffffff", fontFamily: "Lato, sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	w := canvas.Width * r.scale
	h := canvas.Height * r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, r.background)

	// Connectors go under the shapes they join.
	for _, c := range res.Connectors {
		r.renderConnector(&buf, c)
	}
	for _, s := range res.Shapes {
		r.renderShape(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">` + "\n")
	buf.WriteString(`      <path d="M 0 0 L 10 5 L 0 10 z" fill="context-stroke"/>` + "\n")
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
}

func (r *svgRenderer) renderShape(buf *bytes.Buffer, s diagram.Shape) {
	x := s.Position.X * r.scale
	y := s.Position.Y * r.scale
	w := s.Size.W * r.scale
	h := s.Size.H * r.scale

	switch s.Kind {
	case diagram.KindBox:
		fmt.Fprintf(buf, `  <rect id=%q x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%.1f" rx="3"/>`+"\n",
			s.ID, x, y, w, h, orNone(s.Fill), orNone(s.Border.Color), s.Border.Width)
	case diagram.KindOval:
		fmt.Fprintf(buf, `  <ellipse id=%q cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			s.ID, x+w/2, y+h/2, w/2, h/2, orNone(s.Fill), orNone(s.Border.Color), s.Border.Width)
	case diagram.KindLabel:
		// Text only; an optional fill tints the glyphs, not a box.
	}

	if s.Text != "" {
		r.renderText(buf, s, x+w/2, y+h/2)
	}
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, s diagram.Shape, cx, cy float64) {
	color := textColor(s)
	weight := "normal"
	if s.FontWeight == "bold" {
		weight = "bold"
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" font-weight="%s" fill="%s">%s</text>`+"\n",
		cx, cy, r.fontFamily, s.FontSize, weight, color, html.EscapeString(s.Text))
}

// textColor picks the glyph color: labels use their fill directly,
// filled shapes get a contrast-safe dark or light tone.
func textColor(s diagram.Shape) string {
	if s.Kind == diagram.KindLabel {
		if s.Fill != "" {
			return s.Fill
		}
		return "#333333"
	}
	if s.TextRole == diagram.RoleHeader || isDark(s.Fill) {
		return "#ffffff"
	}
	return "#333333"
}

// isDark reports whether a hex fill is dark enough to need light text.
func isDark(hex string) bool {
	if len(hex) != 7 || hex[0] != '#' {
		return false
	}
	var rr, gg, bb int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &rr, &gg, &bb); err != nil {
		return false
	}
	// Rec. 601 luma.
	return 0.299*float64(rr)+0.587*float64(gg)+0.114*float64(bb) < 140
}

func (r *svgRenderer) renderConnector(buf *bytes.Buffer, c diagram.Connector) {
	if len(c.Points) < 2 {
		return
	}
	markers := ""
	if c.Arrow.End {
		markers += ` marker-end="url(#arrow)"`
	}
	if c.Arrow.Start {
		markers += ` marker-start="url(#arrow)"`
	}
	dash := ""
	if c.Style.Dash != "" {
		dash = fmt.Sprintf(` stroke-dasharray=%q`, c.Style.Dash)
	}

	switch c.Shape {
	case diagram.ConnectorCurve:
		// Quadratic curve through the routed control point.
		p := c.Points
		fmt.Fprintf(buf, `  <path id=%q d="M %.1f %.1f Q %.1f %.1f %.1f %.1f" fill="none" stroke="%s" stroke-width="%.1f"%s%s/>`+"\n",
			c.ID,
			p[0].X*r.scale, p[0].Y*r.scale,
			p[1].X*r.scale, p[1].Y*r.scale,
			p[len(p)-1].X*r.scale, p[len(p)-1].Y*r.scale,
			c.Style.Color, c.Style.Width, dash, markers)
	default:
		var pts bytes.Buffer
		for i, p := range c.Points {
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.1f,%.1f", p.X*r.scale, p.Y*r.scale)
		}
		fmt.Fprintf(buf, `  <polyline id=%q points="%s" fill="none" stroke="%s" stroke-width="%.1f"%s%s/>`+"\n",
			c.ID, pts.String(), c.Style.Color, c.Style.Width, dash, markers)
	}

	if c.Label != "" {
		mid := c.Points[len(c.Points)/2]
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="11" fill="%s">%s</text>`+"\n",
			mid.X*r.scale, mid.Y*r.scale-6, r.fontFamily, c.Style.Color, html.EscapeString(c.Label))
	}
}

func orNone(color string) string {
	if color == "" {
		return "none"
	}
	return color
}
