// Package layout turns diagram content into positioned geometry.
//
// It has two halves: the variant selector, a deterministic ordered
// rule chain per diagram type that maps structural features to one of
// a fixed menu of layout variants, and the seven builders, one per
// diagram type, that consume content plus a variant and emit shapes
// and connector specs.
//
// Builders are pure: identical (content, variant, canvas) inputs
// always produce identical geometry, and every emitted shape lies
// fully inside the canvas.
package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/route"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// Output is what a builder emits: positioned shapes plus the connector
// specs for the router to resolve.
type Output struct {
	Shapes []diagram.Shape
	Specs  []route.Spec
}

// marginFrac is the canvas margin on every side, as a fraction of the
// smaller canvas dimension.
const marginFrac = 0.04

// Build dispatches to the builder for the request's type. The variant
// must already be selected (see SelectVariant) and legal for the type.
func Build(req *diagram.Request, variant diagram.Variant) (*Output, error) {
	if err := diagram.CheckStructure(req); err != nil {
		return nil, err
	}
	if !variantAllowed(req.Type, variant) {
		return nil, errors.New(errors.ErrCodeNoVariantFits, "variant %q is not defined for diagram type %q", variant, req.Type)
	}

	switch req.Type {
	case diagram.TypeTable:
		return buildTable(req.Table, variant, req.Canvas)
	case diagram.TypeFlowchart:
		return buildFlowchart(req.Flowchart, variant, req.Canvas)
	case diagram.TypeDecisionTree:
		return buildDecisionTree(req.DecisionTree, variant, req.Canvas)
	case diagram.TypeHierarchy:
		return buildHierarchy(req.Hierarchy, variant, req.Canvas)
	case diagram.TypeTimeline:
		return buildTimeline(req.Timeline, variant, req.Canvas)
	case diagram.TypeSpectrum:
		return buildSpectrum(req.Spectrum, variant, req.Canvas)
	case diagram.TypeKeyDifferentiators:
		return buildKeyDifferentiators(req.KeyDifferentiators, variant, req.Canvas)
	}
	return nil, errors.New(errors.ErrCodeUnknownDiagramType, "unknown diagram type %q", req.Type)
}

// contentArea returns the canvas rectangle inset by the shared margin.
func contentArea(c diagram.Canvas) geom.Rect {
	m := marginFrac * min(c.Width, c.Height)
	return geom.Rect{X: m, Y: m, W: c.Width - 2*m, H: c.Height - 2*m}
}

// shapeAt builds a shape from a bounding rectangle.
func shapeAt(id string, kind diagram.ShapeKind, r geom.Rect) diagram.Shape {
	return diagram.Shape{
		ID:       id,
		Kind:     kind,
		Position: geom.Point{X: r.X, Y: r.Y},
		Size:     diagram.Size{W: r.W, H: r.H},
	}
}

// twoTonePanel emits the header/body shape pair for a composite
// element: an accent-colored header with a bold label stacked above a
// light-tinted body with detail text. The header height share is the
// diagram type's fixed proportion.
func twoTonePanel(idPrefix string, bounds geom.Rect, t diagram.Type, accent, headerText, bodyText string, headerFont, bodyFont styles.FontSpec, pal styles.Palette) []diagram.Shape {
	prop := styles.HeaderProportion(t)
	headerRect := geom.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: bounds.H * prop}
	bodyRect := geom.Rect{X: bounds.X, Y: bounds.Y + headerRect.H, W: bounds.W, H: bounds.H - headerRect.H}

	header := shapeAt(idPrefix+"-header", diagram.KindBox, headerRect)
	header.Fill = accent
	header.Text = headerText
	header.TextRole = diagram.RoleHeader
	header.FontSize = headerFont.Size
	header.FontWeight = "bold"
	header.Border = diagram.Border{Color: accent, Width: 1}

	body := shapeAt(idPrefix+"-body", diagram.KindBox, bodyRect)
	body.Fill = geom.LightenColor(accent, 0.85)
	body.Text = bodyText
	body.TextRole = diagram.RoleBody
	body.FontSize = bodyFont.Size
	body.FontWeight = bodyFont.Weight
	body.Border = diagram.Border{Color: accent, Width: 1}
	// The body inherits connectivity from the panel; only the header
	// participates in the connector graph.
	body.Terminal = true

	return []diagram.Shape{header, body}
}

func connID(from, to string) string {
	return fmt.Sprintf("conn-%s-%s", from, to)
}
