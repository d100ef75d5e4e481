// Package route computes connector geometry between shapes or points:
// anchor-point inference, path construction, and the derived rotation
// and length of every connector.
//
// Builders describe the connectors they want as Specs; the router
// resolves each spec against the emitted shapes. Rotation and length
// are pure functions of the resolved endpoints, recomputed on every
// call and never cached anywhere else.
package route

import (
	"math"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/geom"
)

// Spec is a builder's request for one connector. Anchors left empty
// are inferred from the relative position of the endpoint shapes.
type Spec struct {
	ID          string
	From        diagram.Endpoint
	To          diagram.Endpoint
	Shape       diagram.ConnectorShape
	StartAnchor geom.Side // optional override
	EndAnchor   geom.Side // optional override
	Style       diagram.LineStyle
	Arrow       diagram.Arrow
	Label       string
}

// curveBulge is the perpendicular control-point offset for curved
// connectors, as a fraction of the connector length.
const curveBulge = 0.15

// Route resolves a single spec. A spec whose endpoints coincide yields
// a nil connector and a ZERO_LENGTH_CONNECTOR warning: the connector
// is omitted from the render rather than failing the build.
func Route(spec Spec, lookup func(id string) (diagram.Shape, bool)) (*diagram.Connector, *diagram.Warning, error) {
	start, startAnchor, err := resolveEndpoint(spec.From, spec.To, spec.StartAnchor, lookup)
	if err != nil {
		return nil, nil, err
	}
	end, endAnchor, err := resolveEndpoint(spec.To, spec.From, spec.EndAnchor, lookup)
	if err != nil {
		return nil, nil, err
	}

	if start == end {
		return nil, &diagram.Warning{
			Code:      string(errors.WarnZeroLengthConnector),
			Message:   "connector endpoints coincide; connector omitted",
			ElementID: spec.ID,
		}, nil
	}

	shape := spec.Shape
	if shape == "" {
		shape = diagram.ConnectorStraight
	}

	conn := diagram.Connector{
		ID:          spec.ID,
		From:        spec.From,
		To:          spec.To,
		StartAnchor: startAnchor,
		EndAnchor:   endAnchor,
		Shape:       shape,
		Points:      buildPath(shape, start, end),
		Style:       spec.Style,
		Arrow:       spec.Arrow,
		Label:       spec.Label,

		// Derived about the connector midpoint, never an endpoint.
		RotationDegrees: geom.AngleBetween(start, end),
		LengthUnits:     geom.DistanceBetween(start, end),
	}
	return &conn, nil, nil
}

// RouteAll resolves a batch of specs against the given shapes,
// collecting zero-length warnings and dropping their connectors.
func RouteAll(specs []Spec, shapes []diagram.Shape) ([]diagram.Connector, []diagram.Warning, error) {
	index := make(map[string]diagram.Shape, len(shapes))
	for _, s := range shapes {
		index[s.ID] = s
	}
	lookup := func(id string) (diagram.Shape, bool) {
		s, ok := index[id]
		return s, ok
	}

	connectors := make([]diagram.Connector, 0, len(specs))
	var warnings []diagram.Warning
	for _, spec := range specs {
		conn, warn, err := Route(spec, lookup)
		if err != nil {
			return nil, nil, err
		}
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		connectors = append(connectors, *conn)
	}
	return connectors, warnings, nil
}

// resolveEndpoint turns an endpoint into a concrete anchor point.
// For shape endpoints without an explicit anchor, the side is inferred
// from the direction toward the other endpoint: the dominant axis of
// the center-to-center delta picks left/right versus top/bottom, with
// exact ties broken toward the horizontal axis.
func resolveEndpoint(ep, other diagram.Endpoint, override geom.Side, lookup func(id string) (diagram.Shape, bool)) (geom.Point, geom.Side, error) {
	if ep.Point != nil {
		return *ep.Point, "", nil
	}

	shape, ok := lookup(ep.ShapeID)
	if !ok {
		return geom.Point{}, "", errors.New(errors.ErrCodeInternal, "connector references unknown shape %q", ep.ShapeID)
	}
	bounds := shape.Bounds()

	side := override
	if side == "" {
		side = inferSide(bounds.Center(), endpointCenter(other, lookup))
	}
	return bounds.Anchor(side), side, nil
}

// endpointCenter returns the reference point an anchor inference
// should aim at: the other shape's center, or the bare point.
func endpointCenter(ep diagram.Endpoint, lookup func(id string) (diagram.Shape, bool)) geom.Point {
	if ep.Point != nil {
		return *ep.Point
	}
	if s, ok := lookup(ep.ShapeID); ok {
		return s.Bounds().Center()
	}
	return geom.Point{}
}

// inferSide picks the exit (or entry) side facing the target point.
func inferSide(from, toward geom.Point) geom.Side {
	dx := toward.X - from.X
	dy := toward.Y - from.Y

	var side geom.Side
	if math.Abs(dx) >= math.Abs(dy) { // ties go horizontal
		if dx >= 0 {
			side = geom.SideRight
		} else {
			side = geom.SideLeft
		}
	} else {
		if dy >= 0 {
			side = geom.SideBottom
		} else {
			side = geom.SideTop
		}
	}
	return side
}

// buildPath constructs the resolved point path for a connector shape.
//
// Elbow paths jog at the midpoint of the dominant axis: travel along
// the dominant axis to its midpoint, cross, then continue. When the
// endpoints already share the cross-axis coordinate the jog collapses
// and the path degenerates to a straight segment.
//
// Curve paths carry a single control point offset perpendicular from
// the midpoint; sinks render them as a quadratic through it.
func buildPath(shape diagram.ConnectorShape, start, end geom.Point) []geom.Point {
	switch shape {
	case diagram.ConnectorElbow:
		dx := math.Abs(end.X - start.X)
		dy := math.Abs(end.Y - start.Y)
		if dx >= dy { // ties go horizontal
			if start.Y == end.Y {
				return []geom.Point{start, end}
			}
			midX := (start.X + end.X) / 2
			return []geom.Point{start, {X: midX, Y: start.Y}, {X: midX, Y: end.Y}, end}
		}
		if start.X == end.X {
			return []geom.Point{start, end}
		}
		midY := (start.Y + end.Y) / 2
		return []geom.Point{start, {X: start.X, Y: midY}, {X: end.X, Y: midY}, end}

	case diagram.ConnectorCurve:
		mid := geom.Midpoint(start, end)
		length := geom.DistanceBetween(start, end)
		// Unit perpendicular to the connector direction.
		px := -(end.Y - start.Y) / length
		py := (end.X - start.X) / length
		control := geom.Point{
			X: mid.X + px*length*curveBulge,
			Y: mid.Y + py*length*curveBulge,
		}
		return []geom.Point{start, control, end}

	default:
		return []geom.Point{start, end}
	}
}
