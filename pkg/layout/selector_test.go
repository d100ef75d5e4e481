package layout

import (
	"testing"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

func TestSelectVariantFlowchart(t *testing.T) {
	tests := []struct {
		name string
		f    diagram.Features
		want diagram.Variant
	}{
		{"substeps win over everything", diagram.Features{StepCount: 3, HasSubsteps: true, HasBranches: true}, diagram.VariantFlowWithSubsteps},
		{"branches before count rules", diagram.Features{StepCount: 3, HasBranches: true}, diagram.VariantFlowBranching},
		{"two steps horizontal", diagram.Features{StepCount: 2}, diagram.VariantFlowLinearHorizontal},
		{"four steps horizontal", diagram.Features{StepCount: 4}, diagram.VariantFlowLinearHorizontal},
		{"five steps vertical", diagram.Features{StepCount: 5}, diagram.VariantFlowLinearVertical},
		{"six steps vertical", diagram.Features{StepCount: 6}, diagram.VariantFlowLinearVertical},
		{"seven steps snake", diagram.Features{StepCount: 7}, diagram.VariantFlowSnake},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectVariant(diagram.TypeFlowchart, tt.f)
			if err != nil {
				t.Fatalf("SelectVariant error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectVariant = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectVariantPerType(t *testing.T) {
	tests := []struct {
		name string
		typ  diagram.Type
		f    diagram.Features
		want diagram.Variant
	}{
		{"small table standard", diagram.TypeTable, diagram.Features{RowCount: 3, ColCount: 3}, diagram.VariantTableStandard},
		{"dense table compact", diagram.TypeTable, diagram.Features{RowCount: 5, ColCount: 3}, diagram.VariantTableCompact},
		{"wide table compact", diagram.TypeTable, diagram.Features{RowCount: 2, ColCount: 4}, diagram.VariantTableCompact},
		{"shallow tree single split", diagram.TypeDecisionTree, diagram.Features{NodeCount: 3, LevelCount: 2}, diagram.VariantTreeSingleSplit},
		{"deep tree multi level", diagram.TypeDecisionTree, diagram.Features{NodeCount: 7, LevelCount: 3}, diagram.VariantTreeMultiLevel},
		{"narrow hierarchy vertical", diagram.TypeHierarchy, diagram.Features{MaxBranching: 3}, diagram.VariantHierarchyVertical},
		{"broad hierarchy wide", diagram.TypeHierarchy, diagram.Features{MaxBranching: 4}, diagram.VariantHierarchyWide},
		{"four events bar", diagram.TypeTimeline, diagram.Features{EventCount: 4}, diagram.VariantTimelineBar},
		{"five events cards", diagram.TypeTimeline, diagram.Features{EventCount: 5}, diagram.VariantTimelineCards},
		{"plain spectrum gradient", diagram.TypeSpectrum, diagram.Features{SegmentCount: 4}, diagram.VariantSpectrumGradient},
		{"bipolar spectrum", diagram.TypeSpectrum, diagram.Features{SegmentCount: 4, Bipolar: true}, diagram.VariantSpectrumBipolar},
		{"two concepts side by side", diagram.TypeKeyDifferentiators, diagram.Features{ConceptCount: 2}, diagram.VariantKeyDiffSideBySide},
		{"three concepts multi column", diagram.TypeKeyDifferentiators, diagram.Features{ConceptCount: 3}, diagram.VariantKeyDiffMultiCol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectVariant(tt.typ, tt.f)
			if err != nil {
				t.Fatalf("SelectVariant error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectVariant = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectVariantUnknownType(t *testing.T) {
	_, err := SelectVariant(diagram.Type("venn"), diagram.Features{})
	if !errors.Is(err, errors.ErrCodeUnknownDiagramType) {
		t.Errorf("expected UNKNOWN_DIAGRAM_TYPE, got %v", err)
	}
}

func TestResolveVariantOverride(t *testing.T) {
	f := diagram.Features{StepCount: 3}

	got, err := ResolveVariant(diagram.TypeFlowchart, diagram.VariantFlowSnake, f)
	if err != nil {
		t.Fatalf("ResolveVariant error: %v", err)
	}
	if got != diagram.VariantFlowSnake {
		t.Errorf("override ignored: got %q", got)
	}

	_, err = ResolveVariant(diagram.TypeFlowchart, diagram.VariantTableCompact, f)
	if !errors.Is(err, errors.ErrCodeNoVariantFits) {
		t.Errorf("expected NO_VARIANT_FITS for foreign variant, got %v", err)
	}

	got, err = ResolveVariant(diagram.TypeFlowchart, "", f)
	if err != nil {
		t.Fatalf("ResolveVariant error: %v", err)
	}
	if got != diagram.VariantFlowLinearHorizontal {
		t.Errorf("fallback selection = %q, want %q", got, diagram.VariantFlowLinearHorizontal)
	}
}
