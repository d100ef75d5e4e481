// Package diagram defines the data model shared by the layout engine:
// diagram requests, per-type content payloads, computed shapes and
// connectors, and validation reports.
//
// A DiagramRequest is an immutable value object consumed once by the
// pipeline. The content payload is a discriminated union: exactly one
// of the per-type content fields must be set, matching Type.
//
// All geometry uses one caller-chosen linear unit per request; the
// engine never mixes units. The canvas contract is that every shape
// produced for a request lies fully inside [0, Width] x [0, Height].
package diagram

import (
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/geom"
)

// Type identifies one of the seven supported diagram kinds.
type Type string

// Supported diagram types.
const (
	TypeTable              Type = "table"
	TypeFlowchart          Type = "flowchart"
	TypeDecisionTree       Type = "decision_tree"
	TypeHierarchy          Type = "hierarchy"
	TypeTimeline           Type = "timeline"
	TypeSpectrum           Type = "spectrum"
	TypeKeyDifferentiators Type = "key_differentiators"
)

// Types lists every supported diagram type in a fixed order.
var Types = []Type{
	TypeTable,
	TypeFlowchart,
	TypeDecisionTree,
	TypeHierarchy,
	TypeTimeline,
	TypeSpectrum,
	TypeKeyDifferentiators,
}

// Known reports whether t is a supported diagram type.
func (t Type) Known() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// Variant names a fixed geometric template within a diagram type.
// Variants are scoped per type; see pkg/layout for the selection rules.
type Variant string

// Layout variants, grouped by the type they belong to.
const (
	// Table
	VariantTableStandard Variant = "standard"
	VariantTableCompact  Variant = "compact"

	// Flowchart
	VariantFlowLinearHorizontal Variant = "linear_horizontal"
	VariantFlowLinearVertical   Variant = "linear_vertical"
	VariantFlowWithSubsteps     Variant = "with_substeps"
	VariantFlowSnake            Variant = "snake"
	VariantFlowBranching        Variant = "branching"

	// DecisionTree
	VariantTreeSingleSplit Variant = "single_split"
	VariantTreeMultiLevel  Variant = "multi_level"

	// Hierarchy
	VariantHierarchyVertical Variant = "tree_vertical"
	VariantHierarchyWide     Variant = "tree_wide"

	// Timeline
	VariantTimelineBar   Variant = "horizontal_bar"
	VariantTimelineCards Variant = "alternating_cards"

	// Spectrum
	VariantSpectrumGradient Variant = "gradient_bar"
	VariantSpectrumBipolar  Variant = "bipolar"

	// KeyDifferentiators
	VariantKeyDiffSideBySide Variant = "side_by_side"
	VariantKeyDiffMultiCol   Variant = "multi_column"
)

// Canvas describes the drawable area for one request, in caller units.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Request is the engine's input: a classified content payload plus the
// canvas it must fit. Exactly one content field matching Type must be
// set.
type Request struct {
	Type    Type    `json:"type"`
	Variant Variant `json:"variant,omitempty"` // optional layout override
	Canvas  Canvas  `json:"canvas"`

	Table              *TableContent              `json:"table,omitempty"`
	Flowchart          *FlowchartContent          `json:"flowchart,omitempty"`
	DecisionTree       *DecisionTreeContent       `json:"decision_tree,omitempty"`
	Hierarchy          *HierarchyContent          `json:"hierarchy,omitempty"`
	Timeline           *TimelineContent           `json:"timeline,omitempty"`
	Spectrum           *SpectrumContent           `json:"spectrum,omitempty"`
	KeyDifferentiators *KeyDifferentiatorsContent `json:"key_differentiators,omitempty"`
}

// TableContent holds a header row plus data rows.
type TableContent struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// FlowchartStep is one step in a flowchart: a bold header above
// optional detail text, with optional indented substeps.
type FlowchartStep struct {
	Header   string   `json:"header"`
	Body     string   `json:"body,omitempty"`
	Substeps []string `json:"substeps,omitempty"`
}

// FlowchartBranch is a labeled jump between two steps, drawn as an
// extra connector on top of the main step sequence.
type FlowchartBranch struct {
	From  int    `json:"from"` // step index
	To    int    `json:"to"`   // step index
	Label string `json:"label,omitempty"`
}

// FlowchartContent describes a start-to-end step sequence.
type FlowchartContent struct {
	StartLabel string            `json:"start_label"`
	EndLabel   string            `json:"end_label"`
	Steps      []FlowchartStep   `json:"steps"`
	Branches   []FlowchartBranch `json:"branches,omitempty"`
	Cyclical   bool              `json:"cyclical,omitempty"`
}

// DecisionNode is one decision point: a header, the question asked at
// that point, and the child decisions or outcomes below it. Children
// are owned by value; a node never references its parent.
type DecisionNode struct {
	Header   string         `json:"header"`
	Question string         `json:"question,omitempty"`
	Children []DecisionNode `json:"children,omitempty"`
}

// Outcome is a terminal result row rendered beneath a decision tree.
type Outcome struct {
	Label    string `json:"label"`
	ColorKey string `json:"color_key,omitempty"`
}

// DecisionTreeContent holds the nested decision levels plus the
// outcome legend.
type DecisionTreeContent struct {
	Root     DecisionNode `json:"root"`
	Outcomes []Outcome    `json:"outcomes,omitempty"`
}

// HierarchyNode is a plain recursive value with children by value.
type HierarchyNode struct {
	Label    string          `json:"label"`
	Children []HierarchyNode `json:"children,omitempty"`
}

// HierarchyContent wraps the hierarchy root.
type HierarchyContent struct {
	Root HierarchyNode `json:"root"`
}

// TimelineEvent is a dated event card on a timeline.
type TimelineEvent struct {
	Label       string `json:"label"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// TimelineContent holds the ordered event list.
type TimelineContent struct {
	Events []TimelineEvent `json:"events"`
}

// SpectrumSegment is one labeled position along a spectrum.
type SpectrumSegment struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// SpectrumEndpoints are the low/high pole labels of the spectrum.
type SpectrumEndpoints struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

// SpectrumContent describes a gradient spectrum with labeled segments.
// Bipolar spectra get an emphasized center marker and oppositely
// colored end labels.
type SpectrumContent struct {
	Endpoints   SpectrumEndpoints `json:"endpoints"`
	Segments    []SpectrumSegment `json:"segments"`
	GradientKey string            `json:"gradient_key,omitempty"`
	Bipolar     bool              `json:"bipolar,omitempty"`
}

// Concept is one compared concept column.
type Concept struct {
	Name     string            `json:"name"`
	Features map[string]string `json:"features"`
}

// KeyDifferentiatorsContent compares 2-4 concepts across feature rows.
// Feature names listed in KeyDifferentiators are flagged as the
// decisive distinctions and rendered with a visual accent.
type KeyDifferentiatorsContent struct {
	Concepts           []Concept `json:"concepts"`
	KeyDifferentiators []string  `json:"key_differentiators"`
}

// Content returns the content field matching the request type, or an
// UNKNOWN_DIAGRAM_TYPE / INVALID_CONTENT error when the union is not
// populated coherently.
func (r *Request) Content() (any, error) {
	var c any
	switch r.Type {
	case TypeTable:
		if r.Table != nil {
			c = r.Table
		}
	case TypeFlowchart:
		if r.Flowchart != nil {
			c = r.Flowchart
		}
	case TypeDecisionTree:
		if r.DecisionTree != nil {
			c = r.DecisionTree
		}
	case TypeHierarchy:
		if r.Hierarchy != nil {
			c = r.Hierarchy
		}
	case TypeTimeline:
		if r.Timeline != nil {
			c = r.Timeline
		}
	case TypeSpectrum:
		if r.Spectrum != nil {
			c = r.Spectrum
		}
	case TypeKeyDifferentiators:
		if r.KeyDifferentiators != nil {
			c = r.KeyDifferentiators
		}
	default:
		return nil, errors.New(errors.ErrCodeUnknownDiagramType, "unknown diagram type %q", r.Type)
	}
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidContent, "request type %q has no matching content payload", r.Type)
	}
	return c, nil
}

// Bounds returns the canvas as a rectangle anchored at the origin.
func (c Canvas) Bounds() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: c.Width, H: c.Height}
}
