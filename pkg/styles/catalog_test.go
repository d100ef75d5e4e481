package styles

import (
	"testing"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

func TestGetPaletteKnownTypes(t *testing.T) {
	for _, typ := range diagram.Types {
		t.Run(string(typ), func(t *testing.T) {
			p, err := GetPalette(typ)
			if err != nil {
				t.Fatalf("GetPalette(%s) error: %v", typ, err)
			}
			if p.Primary == "" || p.Secondary == "" {
				t.Errorf("palette for %s missing primary/secondary", typ)
			}
			if len(p.Accents) == 0 {
				t.Errorf("palette for %s has no accents", typ)
			}
		})
	}
}

func TestGetPaletteUnknownType(t *testing.T) {
	_, err := GetPalette(diagram.Type("venn"))
	if !errors.Is(err, errors.ErrCodeUnknownDiagramType) {
		t.Errorf("expected UNKNOWN_DIAGRAM_TYPE, got %v", err)
	}
}

func TestGetFontSpec(t *testing.T) {
	spec, err := GetFontSpec(diagram.TypeFlowchart, diagram.RoleHeader)
	if err != nil {
		t.Fatalf("GetFontSpec error: %v", err)
	}
	if spec.Weight != "bold" {
		t.Errorf("header weight = %q, want bold", spec.Weight)
	}
	if spec.Size < MinFontSize {
		t.Errorf("header size %v below the minimum floor %v", spec.Size, MinFontSize)
	}

	if _, err := GetFontSpec(diagram.Type("venn"), diagram.RoleHeader); !errors.Is(err, errors.ErrCodeUnknownDiagramType) {
		t.Errorf("expected UNKNOWN_DIAGRAM_TYPE for unknown type, got %v", err)
	}
}

func TestGetCharLimit(t *testing.T) {
	l, err := GetCharLimit(diagram.TypeTable, diagram.RoleHeader)
	if err != nil {
		t.Fatalf("GetCharLimit error: %v", err)
	}
	if l.MaxCharsPerLine == 0 || l.MaxLines == 0 {
		t.Errorf("empty limit for table header: %+v", l)
	}

	// Unlisted role falls back to the body limit.
	fallback, err := GetCharLimit(diagram.TypeTable, diagram.RoleCaption)
	if err != nil {
		t.Fatalf("GetCharLimit fallback error: %v", err)
	}
	body, _ := GetCharLimit(diagram.TypeTable, diagram.RoleBody)
	if fallback != body {
		t.Errorf("fallback = %+v, want body limit %+v", fallback, body)
	}

	if _, err := GetCharLimit(diagram.Type("venn"), diagram.RoleBody); !errors.Is(err, errors.ErrCodeUnknownDiagramType) {
		t.Errorf("expected UNKNOWN_DIAGRAM_TYPE, got %v", err)
	}
}

func TestHeaderProportion(t *testing.T) {
	if got := HeaderProportion(diagram.TypeFlowchart); got != 0.35 {
		t.Errorf("flowchart header proportion = %v, want 0.35", got)
	}
	if got := HeaderProportion(diagram.TypeTimeline); got != 0.45 {
		t.Errorf("timeline header proportion = %v, want 0.45", got)
	}
}

func TestGradientStops(t *testing.T) {
	if stops := GradientStops("cool_warm"); len(stops) != 3 {
		t.Errorf("cool_warm has %d stops, want 3", len(stops))
	}
	// Unknown keys fall back to the default gradient.
	if stops := GradientStops("no_such_key"); len(stops) == 0 {
		t.Error("unknown gradient key returned no stops")
	}
}

func TestDepthAccent(t *testing.T) {
	p := Palette{Primary: "#111111", Accents: []string{"#222222", "#333333"}}

	if got := DepthAccent(p, 0); got != "#111111" {
		t.Errorf("depth 0 = %s, want primary", got)
	}
	if got := DepthAccent(p, 1); got != "#222222" {
		t.Errorf("depth 1 = %s, want first accent", got)
	}
	if got := DepthAccent(p, 2); got != "#333333" {
		t.Errorf("depth 2 = %s, want second accent", got)
	}
	// Deep levels cycle instead of running out.
	if got := DepthAccent(p, 3); got != "#222222" {
		t.Errorf("depth 3 = %s, want cycled first accent", got)
	}
}
