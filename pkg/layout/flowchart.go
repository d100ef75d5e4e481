package layout

import (
	"fmt"
	"math"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/route"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

const (
	// Fraction of a cell occupied by the shape; the rest is gap.
	flowFillFrac = 0.8
	// Oval height relative to a step panel.
	flowOvalFrac = 0.5
)

type flowStyle struct {
	pal        styles.Palette
	headerFont styles.FontSpec
	bodyFont   styles.FontSpec
	labelFont  styles.FontSpec
	line       diagram.LineStyle
}

func flowStyles() (flowStyle, error) {
	var fs flowStyle
	var err error
	if fs.pal, err = styles.GetPalette(diagram.TypeFlowchart); err != nil {
		return fs, err
	}
	if fs.headerFont, err = styles.GetFontSpec(diagram.TypeFlowchart, diagram.RoleHeader); err != nil {
		return fs, err
	}
	if fs.bodyFont, err = styles.GetFontSpec(diagram.TypeFlowchart, diagram.RoleBody); err != nil {
		return fs, err
	}
	if fs.labelFont, err = styles.GetFontSpec(diagram.TypeFlowchart, diagram.RoleLabel); err != nil {
		return fs, err
	}
	fs.line = diagram.LineStyle{Color: fs.pal.Primary, Width: 1.5}
	return fs, nil
}

// buildFlowchart lays out a start oval, the step panels, and an end
// oval, wired in sequence. The variant decides the flow direction:
// a single row, a single column, a two-row snake, a column with
// substep callouts, or a column with labeled branch curves.
func buildFlowchart(c *diagram.FlowchartContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	fs, err := flowStyles()
	if err != nil {
		return nil, err
	}
	area := contentArea(canvas)

	var out *Output
	switch variant {
	case diagram.VariantFlowLinearHorizontal:
		out = flowRow(c, fs, area)
	case diagram.VariantFlowLinearVertical, diagram.VariantFlowBranching:
		out = flowColumn(c, fs, area, area.W*flowFillFrac*0.6)
	case diagram.VariantFlowWithSubsteps:
		// Panels keep to the left half so substep callouts fit beside
		// them.
		out = flowColumn(c, fs, area, area.W*0.45)
		addSubsteps(out, c, fs, area)
	case diagram.VariantFlowSnake:
		out = flowSnake(c, fs, area)
	default:
		out = flowRow(c, fs, area)
	}

	if variant == diagram.VariantFlowBranching {
		for i, b := range c.Branches {
			out.Specs = append(out.Specs, route.Spec{
				ID:    fmt.Sprintf("branch-%d", i),
				From:  diagram.ShapeEndpoint(stepHeaderID(b.From)),
				To:    diagram.ShapeEndpoint(stepHeaderID(b.To)),
				Shape: diagram.ConnectorCurve,
				Style: diagram.LineStyle{Color: fs.pal.Accents[0], Width: 1.5},
				Arrow: diagram.Arrow{End: true},
				Label: b.Label,
			})
		}
	}
	if c.Cyclical {
		out.Specs = append(out.Specs, route.Spec{
			ID:    "conn-cycle",
			From:  diagram.ShapeEndpoint("end"),
			To:    diagram.ShapeEndpoint("start"),
			Shape: diagram.ConnectorCurve,
			Style: diagram.LineStyle{Color: fs.pal.Primary, Width: 1.5, Dash: "4 2"},
			Arrow: diagram.Arrow{End: true},
		})
	}
	return out, nil
}

func stepHeaderID(i int) string { return fmt.Sprintf("step-%d-header", i) }

// flowNode is one element of the main sequence: the start oval, each
// step panel, then the end oval.
type flowNode struct {
	id   string // connector target: oval id or step header id
	oval bool
	text string
	step *diagram.FlowchartStep
}

func flowSequence(c *diagram.FlowchartContent) []flowNode {
	nodes := []flowNode{{id: "start", oval: true, text: c.StartLabel}}
	for i := range c.Steps {
		nodes = append(nodes, flowNode{id: stepHeaderID(i), step: &c.Steps[i]})
	}
	return append(nodes, flowNode{id: "end", oval: true, text: c.EndLabel})
}

// emitNode places one sequence element inside its cell and returns the
// shapes.
func emitNode(n flowNode, cell geom.Rect, fs flowStyle) []diagram.Shape {
	if n.oval {
		w := cell.W * flowFillFrac
		h := cell.H * flowFillFrac * flowOvalFrac
		r := geom.Rect{X: cell.CenterX() - w/2, Y: cell.CenterY() - h/2, W: w, H: h}
		s := shapeAt(n.id, diagram.KindOval, r)
		s.Fill = fs.pal.Secondary
		s.Border = diagram.Border{Color: fs.pal.Primary, Width: 1.5}
		s.Text = n.text
		s.TextRole = diagram.RoleLabel
		s.FontSize = fs.labelFont.Size
		s.FontWeight = "bold"
		return []diagram.Shape{s}
	}
	w := cell.W * flowFillFrac
	h := cell.H * flowFillFrac
	r := geom.Rect{X: cell.CenterX() - w/2, Y: cell.CenterY() - h/2, W: w, H: h}
	prefix := n.id[:len(n.id)-len("-header")]
	return twoTonePanel(prefix, r, diagram.TypeFlowchart, fs.pal.Primary, n.step.Header, n.step.Body, fs.headerFont, fs.bodyFont, fs.pal)
}

func connectSequence(out *Output, nodes []flowNode, shape diagram.ConnectorShape, fs flowStyle) {
	for i := 1; i < len(nodes); i++ {
		out.Specs = append(out.Specs, route.Spec{
			ID:    connID(nodes[i-1].id, nodes[i].id),
			From:  diagram.ShapeEndpoint(nodes[i-1].id),
			To:    diagram.ShapeEndpoint(nodes[i].id),
			Shape: shape,
			Style: fs.line,
			Arrow: diagram.Arrow{End: true},
		})
	}
}

func flowRow(c *diagram.FlowchartContent, fs flowStyle, area geom.Rect) *Output {
	nodes := flowSequence(c)
	out := &Output{}
	cellW := area.W / float64(len(nodes))
	h := area.H * 0.5
	y := area.CenterY() - h/2
	for i, n := range nodes {
		cell := geom.Rect{X: area.X + float64(i)*cellW, Y: y, W: cellW, H: h}
		out.Shapes = append(out.Shapes, emitNode(n, cell, fs)...)
	}
	connectSequence(out, nodes, diagram.ConnectorStraight, fs)
	return out
}

func flowColumn(c *diagram.FlowchartContent, fs flowStyle, area geom.Rect, width float64) *Output {
	nodes := flowSequence(c)
	out := &Output{}
	cellH := area.H / float64(len(nodes))
	x := area.X
	for i, n := range nodes {
		cell := geom.Rect{X: x, Y: area.Y + float64(i)*cellH, W: width, H: cellH}
		out.Shapes = append(out.Shapes, emitNode(n, cell, fs)...)
	}
	connectSequence(out, nodes, diagram.ConnectorStraight, fs)
	return out
}

// flowSnake arranges the sequence over two rows: left to right on the
// top row, then right to left on the bottom. The row-crossing link is
// an elbow; the rest are straight.
func flowSnake(c *diagram.FlowchartContent, fs flowStyle, area geom.Rect) *Output {
	nodes := flowSequence(c)
	out := &Output{}
	topCount := int(math.Ceil(float64(len(nodes)) / 2))
	cols := topCount
	cellW := area.W / float64(cols)
	cellH := area.H / 2

	for i, n := range nodes {
		row := 0
		col := i
		if i >= topCount {
			row = 1
			// Bottom row runs right to left.
			col = cols - 1 - (i - topCount)
		}
		cell := geom.Rect{
			X: area.X + float64(col)*cellW,
			Y: area.Y + float64(row)*cellH,
			W: cellW,
			H: cellH,
		}
		out.Shapes = append(out.Shapes, emitNode(n, cell, fs)...)
	}

	for i := 1; i < len(nodes); i++ {
		shape := diagram.ConnectorStraight
		if i == topCount {
			shape = diagram.ConnectorElbow
		}
		out.Specs = append(out.Specs, route.Spec{
			ID:    connID(nodes[i-1].id, nodes[i].id),
			From:  diagram.ShapeEndpoint(nodes[i-1].id),
			To:    diagram.ShapeEndpoint(nodes[i].id),
			Shape: shape,
			Style: fs.line,
			Arrow: diagram.Arrow{End: true},
		})
	}
	return out
}

// addSubsteps places substep callouts to the right of each step panel
// and wires them back with thin straight connectors.
func addSubsteps(out *Output, c *diagram.FlowchartContent, fs flowStyle, area geom.Rect) {
	calloutX := area.X + area.W*0.55
	calloutW := area.W * 0.4
	cellH := area.H / float64(len(c.Steps)+2)

	for i, step := range c.Steps {
		if len(step.Substeps) == 0 {
			continue
		}
		// Substeps share the vertical band of their parent step.
		bandTop := area.Y + float64(i+1)*cellH
		subH := cellH * flowFillFrac / float64(len(step.Substeps))
		for j, sub := range step.Substeps {
			id := fmt.Sprintf("step-%d-sub-%d", i, j)
			r := geom.Rect{
				X: calloutX,
				Y: bandTop + cellH*(1-flowFillFrac)/2 + float64(j)*subH,
				W: calloutW,
				H: subH * 0.85,
			}
			s := shapeAt(id, diagram.KindBox, r)
			s.Fill = geom.LightenColor(fs.pal.Secondary, 0.5)
			s.Border = diagram.Border{Color: fs.pal.Secondary, Width: 1}
			s.Text = sub
			s.TextRole = diagram.RoleCaption
			s.FontSize = fs.labelFont.Size
			out.Shapes = append(out.Shapes, s)

			out.Specs = append(out.Specs, route.Spec{
				ID:    connID(stepHeaderID(i), id),
				From:  diagram.ShapeEndpoint(stepHeaderID(i)),
				To:    diagram.ShapeEndpoint(id),
				Shape: diagram.ConnectorStraight,
				Style: diagram.LineStyle{Color: fs.pal.Secondary, Width: 1},
			})
		}
	}
}
