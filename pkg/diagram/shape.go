package diagram

import "github.com/slidegeom/slidegeom/pkg/geom"

// ShapeKind distinguishes the drawable primitives a builder can emit.
type ShapeKind string

// Shape kinds.
const (
	KindBox   ShapeKind = "box"
	KindOval  ShapeKind = "oval"
	KindLabel ShapeKind = "label"
)

// TextRole names what a shape's text is, for character-limit lookup.
type TextRole string

// Text roles used by the style catalog and the validator.
const (
	RoleHeader  TextRole = "header"
	RoleBody    TextRole = "body"
	RoleLabel   TextRole = "label"
	RoleCaption TextRole = "caption"
)

// Border describes a shape outline.
type Border struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Shape is one positioned element of a computed layout. Shapes are
// request-scoped value objects: they are owned exclusively by the
// result that carries them and have no cross-request identity.
type Shape struct {
	ID         string     `json:"id"`
	Kind       ShapeKind  `json:"kind"`
	Position   geom.Point `json:"position"`
	Size       Size       `json:"size"`
	Fill       string     `json:"fill,omitempty"`
	Border     Border     `json:"border,omitempty"`
	Text       string     `json:"text,omitempty"`
	TextRole   TextRole   `json:"text_role,omitempty"`
	FontSize   float64    `json:"font_size,omitempty"`
	FontWeight string     `json:"font_weight,omitempty"` // "regular" or "bold"

	// Terminal marks a shape that the content graph does not require
	// to be connected; the validator skips it when checking connector
	// completeness.
	Terminal bool `json:"terminal,omitempty"`
}

// Size is a width/height pair in canvas units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Bounds returns the shape's bounding rectangle.
func (s Shape) Bounds() geom.Rect {
	return geom.Rect{X: s.Position.X, Y: s.Position.Y, W: s.Size.W, H: s.Size.H}
}

// ConnectorShape selects how a connector is drawn between its anchors.
type ConnectorShape string

// Connector shapes.
const (
	ConnectorStraight ConnectorShape = "straight"
	ConnectorElbow    ConnectorShape = "elbow"
	ConnectorCurve    ConnectorShape = "curve"
)

// Endpoint is either a shape reference or a bare point.
type Endpoint struct {
	ShapeID string      `json:"shape_id,omitempty"`
	Point   *geom.Point `json:"point,omitempty"`
}

// ShapeEndpoint returns an endpoint referencing a shape by ID.
func ShapeEndpoint(id string) Endpoint { return Endpoint{ShapeID: id} }

// PointEndpoint returns an endpoint at a fixed canvas point.
func PointEndpoint(p geom.Point) Endpoint { return Endpoint{Point: &p} }

// LineStyle describes connector stroke appearance.
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"` // SVG dash pattern, e.g. "4 2"
}

// Arrow flags arrowheads at either end of a connector. Arrowheads are
// data on the connector, not separate shapes.
type Arrow struct {
	Start bool `json:"start,omitempty"`
	End   bool `json:"end,omitempty"`
}

// Connector joins two shapes or points. RotationDegrees and LengthUnits
// are derived quantities: the router recomputes them from the resolved
// endpoints on every route call, and nothing else ever writes them.
// Rotation describes rotation about the connector's own midpoint.
type Connector struct {
	ID          string         `json:"id"`
	From        Endpoint       `json:"from"`
	To          Endpoint       `json:"to"`
	StartAnchor geom.Side      `json:"start_anchor,omitempty"`
	EndAnchor   geom.Side      `json:"end_anchor,omitempty"`
	Shape       ConnectorShape `json:"shape"`
	Points      []geom.Point   `json:"points"` // resolved path, bends included
	Style       LineStyle      `json:"style,omitempty"`
	Arrow       Arrow          `json:"arrow,omitempty"`
	Label       string         `json:"label,omitempty"`

	RotationDegrees float64 `json:"rotation_degrees"`
	LengthUnits     float64 `json:"length_units"`
}

// Start returns the first resolved path point.
func (c Connector) Start() geom.Point {
	if len(c.Points) == 0 {
		return geom.Point{}
	}
	return c.Points[0]
}

// End returns the last resolved path point.
func (c Connector) End() geom.Point {
	if len(c.Points) == 0 {
		return geom.Point{}
	}
	return c.Points[len(c.Points)-1]
}

// Status is the overall outcome of constraint validation.
type Status string

// Validation statuses.
const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Violation is a single constraint failure tied to an element.
type Violation struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ElementID string `json:"element_id,omitempty"`
}

// ValidationReport is produced fresh on every build. A FAIL report
// still accompanies full geometry so callers can inspect what went
// over the limits.
type ValidationReport struct {
	Status     Status      `json:"status"`
	Violations []Violation `json:"violations,omitempty"`
}

// Warning is a non-fatal condition raised during building, such as a
// zero-length connector that was omitted from the result.
type Warning struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ElementID string `json:"element_id,omitempty"`
}

// Metadata summarizes a build for callers and cache keys.
type Metadata struct {
	DiagramID      string    `json:"diagram_id"`
	Type           Type      `json:"type"`
	Variant        Variant   `json:"variant"`
	ShapeCount     int       `json:"shape_count"`
	ConnectorCount int       `json:"connector_count"`
	Warnings       []Warning `json:"warnings,omitempty"`
}

// Result is the engine's output: exact geometry plus the validation
// report. It is a pure function of the originating request.
type Result struct {
	Shapes     []Shape          `json:"shapes"`
	Connectors []Connector      `json:"connectors"`
	Metadata   Metadata         `json:"metadata"`
	Validation ValidationReport `json:"validation"`
}

// ShapeByID returns the shape with the given ID, if present.
func (r *Result) ShapeByID(id string) (Shape, bool) {
	for _, s := range r.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}
