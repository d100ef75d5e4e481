package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/route"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// buildHierarchy lays the tree out top-down, depth-first, each node a
// single box whose fill and font step with recursion depth. The wide
// variant flattens the node aspect for broad fan-outs.
func buildHierarchy(c *diagram.HierarchyContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	pal, err := styles.GetPalette(diagram.TypeHierarchy)
	if err != nil {
		return nil, err
	}
	headerFont, err := styles.GetFontSpec(diagram.TypeHierarchy, diagram.RoleHeader)
	if err != nil {
		return nil, err
	}
	labelFont, err := styles.GetFontSpec(diagram.TypeHierarchy, diagram.RoleLabel)
	if err != nil {
		return nil, err
	}

	area := contentArea(canvas)
	levels := hierarchyDepth(&c.Root)
	levelH := area.H / float64(levels)

	nodeHFrac := 0.5
	widthFrac := 0.8
	if variant == diagram.VariantHierarchyWide {
		nodeHFrac = 0.4
		widthFrac = 0.92
	}

	out := &Output{}
	var walk func(n *diagram.HierarchyNode, id string, span geom.Rect, depth int)
	walk = func(n *diagram.HierarchyNode, id string, span geom.Rect, depth int) {
		fill := styles.DepthAccent(pal, depth)
		font := labelFont
		if depth == 0 {
			font = headerFont
		}
		w := span.W * widthFrac
		if maxW := area.W / 2; w > maxW {
			w = maxW
		}
		h := levelH * nodeHFrac
		r := geom.Rect{X: span.CenterX() - w/2, Y: span.Y + (levelH-h)/2, W: w, H: h}
		s := shapeAt(id, diagram.KindBox, r)
		s.Fill = fill
		s.Border = diagram.Border{Color: fill, Width: 1}
		s.Text = n.Label
		s.TextRole = diagram.RoleLabel
		s.FontSize = font.Size
		if depth == 0 {
			s.FontWeight = "bold"
		}
		out.Shapes = append(out.Shapes, s)

		if len(n.Children) == 0 {
			return
		}
		childW := span.W / float64(len(n.Children))
		for i := range n.Children {
			childID := fmt.Sprintf("%s-%d", id, i)
			childSpan := geom.Rect{
				X: span.X + float64(i)*childW,
				Y: span.Y + levelH,
				W: childW,
				H: span.H - levelH,
			}
			walk(&n.Children[i], childID, childSpan, depth+1)
			out.Specs = append(out.Specs, route.Spec{
				ID:          connID(id, childID),
				From:        diagram.ShapeEndpoint(id),
				To:          diagram.ShapeEndpoint(childID),
				Shape:       diagram.ConnectorElbow,
				StartAnchor: geom.SideBottom,
				EndAnchor:   geom.SideTop,
				Style:       diagram.LineStyle{Color: pal.Primary, Width: 1.5},
			})
		}
	}
	walk(&c.Root, "node", area, 0)
	return out, nil
}

func hierarchyDepth(n *diagram.HierarchyNode) int {
	max := 0
	for i := range n.Children {
		if d := hierarchyDepth(&n.Children[i]); d > max {
			max = d
		}
	}
	return max + 1
}
