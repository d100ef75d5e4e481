package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/route"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// outcomeColors maps an outcome's color key to its fill. Unknown keys
// fall back to the palette primary.
var outcomeColors = map[string]string{
	"positive": "#2e7d32",
	"negative": "#c62828",
	"caution":  "#f9a825",
	"neutral":  "#616161",
}

// buildDecisionTree recurses depth-first from the root, dividing each
// node's horizontal span among its children. Nodes are two-tone
// panels (header above the question text) accented by depth; parents
// connect to children bottom-to-top. An optional outcome row sits in
// a band under the tree.
func buildDecisionTree(c *diagram.DecisionTreeContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	pal, err := styles.GetPalette(diagram.TypeDecisionTree)
	if err != nil {
		return nil, err
	}
	headerFont, err := styles.GetFontSpec(diagram.TypeDecisionTree, diagram.RoleHeader)
	if err != nil {
		return nil, err
	}
	bodyFont, err := styles.GetFontSpec(diagram.TypeDecisionTree, diagram.RoleBody)
	if err != nil {
		return nil, err
	}
	labelFont, err := styles.GetFontSpec(diagram.TypeDecisionTree, diagram.RoleLabel)
	if err != nil {
		return nil, err
	}

	area := contentArea(canvas)
	treeArea := area
	if len(c.Outcomes) > 0 {
		treeArea.H = area.H * 0.78
	}
	levels := decisionDepth(&c.Root)
	levelH := treeArea.H / float64(levels)

	// A single split has room for wider panels.
	widthFrac := 0.8
	if variant == diagram.VariantTreeSingleSplit {
		widthFrac = 0.9
	}

	out := &Output{}
	var walk func(n *diagram.DecisionNode, id string, span geom.Rect, depth int)
	walk = func(n *diagram.DecisionNode, id string, span geom.Rect, depth int) {
		accent := styles.DepthAccent(pal, depth)
		w := span.W * widthFrac
		maxW := treeArea.W / 2
		if w > maxW {
			w = maxW
		}
		h := levelH * 0.65
		r := geom.Rect{X: span.CenterX() - w/2, Y: span.Y + (levelH-h)/2, W: w, H: h}
		out.Shapes = append(out.Shapes, twoTonePanel(id, r, diagram.TypeDecisionTree, accent, n.Header, n.Question, headerFont, bodyFont, pal)...)

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
				From:        diagram.ShapeEndpoint(id + "-header"),
				To:          diagram.ShapeEndpoint(childID + "-header"),
				Shape:       diagram.ConnectorStraight,
				StartAnchor: geom.SideBottom,
				EndAnchor:   geom.SideTop,
				Style:       diagram.LineStyle{Color: pal.Primary, Width: 1.5},
				Arrow:       diagram.Arrow{End: true},
			})
		}
	}
	walk(&c.Root, "node", geom.Rect{X: treeArea.X, Y: treeArea.Y, W: treeArea.W, H: treeArea.H}, 0)

	if len(c.Outcomes) > 0 {
		bandY := area.Y + area.H*0.82
		bandH := area.H * 0.18
		cellW := area.W / float64(len(c.Outcomes))
		for i, o := range c.Outcomes {
			fill, ok := outcomeColors[o.ColorKey]
			if !ok {
				fill = pal.Primary
			}
			w := cellW * 0.8
			r := geom.Rect{X: area.X + float64(i)*cellW + (cellW-w)/2, Y: bandY, W: w, H: bandH * 0.8}
			s := shapeAt(fmt.Sprintf("outcome-%d", i), diagram.KindBox, r)
			s.Fill = fill
			s.Border = diagram.Border{Color: fill, Width: 1}
			s.Text = o.Label
			s.TextRole = diagram.RoleLabel
			s.FontSize = labelFont.Size
			s.FontWeight = "bold"
			s.Terminal = true
			out.Shapes = append(out.Shapes, s)
		}
	}
	return out, nil
}

func decisionDepth(n *diagram.DecisionNode) int {
	max := 0
	for i := range n.Children {
		if d := decisionDepth(&n.Children[i]); d > max {
			max = d
		}
	}
	return max + 1
}
