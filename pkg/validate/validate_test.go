package validate

import (
	"strings"
	"testing"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

func passingTableRequest() *diagram.Request {
	return &diagram.Request{
		Type:   diagram.TypeTable,
		Canvas: diagram.Canvas{Width: 12, Height: 6},
		Table: &diagram.TableContent{
			Headers: []string{"Feature", "A"},
			Rows:    [][]string{{"Speed", "fast"}},
		},
	}
}

func TestCheckPass(t *testing.T) {
	shapes := []diagram.Shape{
		{ID: "header-0", Kind: diagram.KindBox, Text: "Feature", TextRole: diagram.RoleHeader, FontSize: 16, Terminal: true},
		{ID: "cell-0-0", Kind: diagram.KindBox, Text: "Speed", TextRole: diagram.RoleBody, FontSize: 13, Terminal: true},
	}
	report := Check(passingTableRequest(), shapes, nil)
	if report.Status != diagram.StatusPass {
		t.Fatalf("status = %s, want PASS; violations: %+v", report.Status, report.Violations)
	}
	if len(report.Violations) != 0 {
		t.Errorf("violations = %+v, want none", report.Violations)
	}
}

func TestCheckCollectsAllViolations(t *testing.T) {
	// One oversized text, one tiny font, and a disconnected shape in
	// a single pass: the report must carry all three.
	req := &diagram.Request{
		Type:   diagram.TypeFlowchart,
		Canvas: diagram.Canvas{Width: 12, Height: 6},
		Flowchart: &diagram.FlowchartContent{
			StartLabel: "Start", EndLabel: "End",
			Steps: []diagram.FlowchartStep{{Header: "A"}, {Header: "B"}},
		},
	}
	shapes := []diagram.Shape{
		{ID: "step-0-header", Kind: diagram.KindBox, Text: strings.Repeat("x", 400), TextRole: diagram.RoleHeader, FontSize: 16},
		{ID: "step-1-header", Kind: diagram.KindBox, Text: "B", TextRole: diagram.RoleHeader, FontSize: 7},
	}
	connectors := []diagram.Connector{
		{ID: "c1", From: diagram.ShapeEndpoint("step-0-header"), To: diagram.ShapeEndpoint("gone")},
	}

	report := Check(req, shapes, connectors)
	if report.Status != diagram.StatusFail {
		t.Fatal("expected FAIL")
	}

	codes := make(map[string]int)
	for _, v := range report.Violations {
		codes[v.Code]++
	}
	if codes[string(errors.ViolationCharacterLimit)] != 1 {
		t.Errorf("char-limit violations = %d, want 1", codes[string(errors.ViolationCharacterLimit)])
	}
	if codes[string(errors.ViolationMinimumFont)] != 1 {
		t.Errorf("min-font violations = %d, want 1", codes[string(errors.ViolationMinimumFont)])
	}
	if codes[string(errors.ViolationDisconnected)] != 1 {
		t.Errorf("disconnected violations = %d, want 1", codes[string(errors.ViolationDisconnected)])
	}
}

func TestCheckConnectivitySkipsTerminalAndLabels(t *testing.T) {
	req := &diagram.Request{
		Type:   diagram.TypeTimeline,
		Canvas: diagram.Canvas{Width: 12, Height: 6},
		Timeline: &diagram.TimelineContent{Events: []diagram.TimelineEvent{
			{Label: "A", Date: "Jan"}, {Label: "B", Date: "Feb"},
		}},
	}
	shapes := []diagram.Shape{
		{ID: "bar", Kind: diagram.KindBox, Terminal: true},
		{ID: "date-0", Kind: diagram.KindLabel, Text: "Jan", TextRole: diagram.RoleCaption, FontSize: 11, Terminal: true},
		{ID: "marker-0", Kind: diagram.KindOval},
	}
	connectors := []diagram.Connector{
		{ID: "c1", From: diagram.ShapeEndpoint("marker-0"), To: diagram.ShapeEndpoint("card-0-header")},
	}
	report := Check(req, shapes, connectors)
	if report.Status != diagram.StatusPass {
		t.Errorf("status = %s, want PASS; violations: %+v", report.Status, report.Violations)
	}
}

func TestCheckConnectivityOnlyForConnectorTypes(t *testing.T) {
	// A spectrum has no connector graph; nothing needs an incident
	// connector even without the terminal flag.
	req := &diagram.Request{
		Type:   diagram.TypeSpectrum,
		Canvas: diagram.Canvas{Width: 12, Height: 6},
		Spectrum: &diagram.SpectrumContent{
			Endpoints: diagram.SpectrumEndpoints{Low: "L", High: "H"},
			Segments:  []diagram.SpectrumSegment{{Label: "A"}, {Label: "B"}},
		},
	}
	shapes := []diagram.Shape{{ID: "segment-0", Kind: diagram.KindBox}}
	report := Check(req, shapes, nil)
	if report.Status != diagram.StatusPass {
		t.Errorf("status = %s, want PASS", report.Status)
	}
}

func TestCheckElementCeilingRecorded(t *testing.T) {
	req := passingTableRequest()
	for i := 0; i < 7; i++ {
		req.Table.Rows = append(req.Table.Rows, []string{"r", "v"})
	}
	report := Check(req, nil, nil)
	if report.Status != diagram.StatusFail {
		t.Fatal("expected FAIL for over-ceiling table")
	}
	found := false
	for _, v := range report.Violations {
		if v.Code == string(errors.ViolationElementCount) {
			found = true
		}
	}
	if !found {
		t.Errorf("missing element-count violation: %+v", report.Violations)
	}
}

func TestWrappedLines(t *testing.T) {
	tests := []struct {
		text     string
		maxChars int
		want     int
	}{
		{"short", 10, 1},
		{"exactly ten!!", 13, 1},
		{strings.Repeat("a", 25), 10, 3},
		{"one\ntwo", 10, 2},
		{"a long line that wraps\nand another", 10, 5},
		{"", 10, 1},
	}
	for _, tt := range tests {
		if got := wrappedLines(tt.text, tt.maxChars); got != tt.want {
			t.Errorf("wrappedLines(%q, %d) = %d, want %d", tt.text, tt.maxChars, got, tt.want)
		}
	}
}
