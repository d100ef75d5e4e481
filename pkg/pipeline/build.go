package pipeline

import (
	"github.com/google/uuid"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/layout"
	"github.com/slidegeom/slidegeom/pkg/route"
	"github.com/slidegeom/slidegeom/pkg/validate"
)

// diagramNamespace is the fixed UUIDv5 namespace for diagram IDs, so
// identical requests map to identical IDs everywhere.
var diagramNamespace = uuid.MustParse("7bd3a6e2-40f1-5c38-9a07-c2b6e18f54d1")

// Build runs the full geometry stage for one request: structural
// checks, variant selection, layout, connector routing, and
// validation. Structurally invalid requests abort with no geometry;
// soft violations come back inside the validation report.
func Build(req *diagram.Request) (*diagram.Result, error) {
	features, err := diagram.ExtractFeatures(req)
	if err != nil {
		return nil, err
	}
	variant, err := layout.ResolveVariant(req.Type, req.Variant, features)
	if err != nil {
		return nil, err
	}

	out, err := layout.Build(req, variant)
	if err != nil {
		return nil, err
	}

	connectors, warnings, err := route.RouteAll(out.Specs, out.Shapes)
	if err != nil {
		return nil, err
	}

	report := validate.Check(req, out.Shapes, connectors)

	return &diagram.Result{
		Shapes:     out.Shapes,
		Connectors: connectors,
		Metadata: diagram.Metadata{
			DiagramID:      DiagramID(req),
			Type:           req.Type,
			Variant:        variant,
			ShapeCount:     len(out.Shapes),
			ConnectorCount: len(connectors),
			Warnings:       warnings,
		},
		Validation: report,
	}, nil
}

// DiagramID derives the deterministic ID for a request: a UUIDv5 over
// its canonical JSON encoding.
func DiagramID(req *diagram.Request) string {
	data, err := diagram.MarshalRequest(req)
	if err != nil {
		return uuid.Nil.String()
	}
	return uuid.NewSHA1(diagramNamespace, data).String()
}
