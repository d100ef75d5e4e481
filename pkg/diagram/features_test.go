package diagram

import (
	"reflect"
	"testing"

	"github.com/slidegeom/slidegeom/pkg/errors"
)

func tableReq(rows, cols int) *Request {
	headers := make([]string, cols)
	for i := range headers {
		headers[i] = "h"
	}
	data := make([][]string, rows)
	for i := range data {
		row := make([]string, cols)
		for j := range row {
			row[j] = "x"
		}
		data[i] = row
	}
	return &Request{
		Type:   TypeTable,
		Canvas: Canvas{Width: 12, Height: 6},
		Table:  &TableContent{Headers: headers, Rows: data},
	}
}

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want Features
	}{
		{
			name: "table counts rows and columns",
			req:  tableReq(3, 4),
			want: Features{RowCount: 3, ColCount: 4},
		},
		{
			name: "flowchart detects substeps and branches",
			req: &Request{
				Type:   TypeFlowchart,
				Canvas: Canvas{Width: 12, Height: 6},
				Flowchart: &FlowchartContent{
					StartLabel: "Start",
					EndLabel:   "End",
					Steps: []FlowchartStep{
						{Header: "A", Substeps: []string{"a1"}},
						{Header: "B"},
						{Header: "C"},
					},
					Branches: []FlowchartBranch{{From: 0, To: 2}},
					Cyclical: true,
				},
			},
			want: Features{StepCount: 3, HasSubsteps: true, HasBranches: true, IsCyclical: true},
		},
		{
			name: "decision tree counts nodes levels branching",
			req: &Request{
				Type:   TypeDecisionTree,
				Canvas: Canvas{Width: 12, Height: 6},
				DecisionTree: &DecisionTreeContent{
					Root: DecisionNode{
						Header: "Root",
						Children: []DecisionNode{
							{Header: "L", Children: []DecisionNode{{Header: "LL"}}},
							{Header: "M"},
							{Header: "R"},
						},
					},
				},
			},
			want: Features{NodeCount: 5, LevelCount: 3, MaxBranching: 3},
		},
		{
			name: "key differentiators counts concepts and rows",
			req: &Request{
				Type:   TypeKeyDifferentiators,
				Canvas: Canvas{Width: 12, Height: 6},
				KeyDifferentiators: &KeyDifferentiatorsContent{
					Concepts: []Concept{
						{Name: "A", Features: map[string]string{"cost": "low", "speed": "fast"}},
						{Name: "B", Features: map[string]string{"cost": "high"}},
					},
					KeyDifferentiators: []string{"cost"},
				},
			},
			want: Features{ConceptCount: 2, FeatureRowCount: 2, KeyRowCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFeatures(tt.req)
			if err != nil {
				t.Fatalf("ExtractFeatures() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractFeatures() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheckStructure(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		wantCode errors.Code
	}{
		{
			name: "valid table passes",
			req:  tableReq(3, 3),
		},
		{
			name:     "table over row ceiling",
			req:      tableReq(MaxTableRows+1, 2),
			wantCode: errors.ErrCodeElementCountExceeded,
		},
		{
			name:     "table over column ceiling",
			req:      tableReq(2, MaxTableCols+1),
			wantCode: errors.ErrCodeElementCountExceeded,
		},
		{
			name: "empty table is invalid content",
			req: &Request{
				Type:   TypeTable,
				Canvas: Canvas{Width: 12, Height: 6},
				Table:  &TableContent{},
			},
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name: "single-step flowchart is invalid content",
			req: &Request{
				Type:   TypeFlowchart,
				Canvas: Canvas{Width: 12, Height: 6},
				Flowchart: &FlowchartContent{
					StartLabel: "Start",
					EndLabel:   "End",
					Steps:      []FlowchartStep{{Header: "Only"}},
				},
			},
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name: "branch referencing missing step is invalid content",
			req: &Request{
				Type:   TypeFlowchart,
				Canvas: Canvas{Width: 12, Height: 6},
				Flowchart: &FlowchartContent{
					StartLabel: "Start",
					EndLabel:   "End",
					Steps:      []FlowchartStep{{Header: "A"}, {Header: "B"}},
					Branches:   []FlowchartBranch{{From: 0, To: 5}},
				},
			},
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name: "negative branch index is invalid content",
			req: &Request{
				Type:   TypeFlowchart,
				Canvas: Canvas{Width: 12, Height: 6},
				Flowchart: &FlowchartContent{
					StartLabel: "Start",
					EndLabel:   "End",
					Steps:      []FlowchartStep{{Header: "A"}, {Header: "B"}},
					Branches:   []FlowchartBranch{{From: -1, To: 1}},
				},
			},
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name: "unknown type",
			req: &Request{
				Type:   Type("venn"),
				Canvas: Canvas{Width: 12, Height: 6},
			},
			wantCode: errors.ErrCodeUnknownDiagramType,
		},
		{
			name: "missing content union",
			req: &Request{
				Type:   TypeTimeline,
				Canvas: Canvas{Width: 12, Height: 6},
			},
			wantCode: errors.ErrCodeInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStructure(tt.req)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("CheckStructure() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestFeatureNamesSortedUnion(t *testing.T) {
	c := &KeyDifferentiatorsContent{
		Concepts: []Concept{
			{Name: "A", Features: map[string]string{"setup": "easy", "cost": "low"}},
			{Name: "B", Features: map[string]string{"latency": "high", "cost": "high"}},
		},
		KeyDifferentiators: []string{"latency"},
	}

	want := []string{"cost", "latency", "setup"}
	if got := c.FeatureNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FeatureNames() = %v, want %v", got, want)
	}

	if !c.IsKey("latency") {
		t.Error("IsKey(latency) = false, want true")
	}
	if c.IsKey("cost") {
		t.Error("IsKey(cost) = true, want false")
	}
}
