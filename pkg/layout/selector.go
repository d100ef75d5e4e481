package layout

import (
	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

// variantMenu lists the legal variants per diagram type, in selector
// order.
var variantMenu = map[diagram.Type][]diagram.Variant{
	diagram.TypeTable: {
		diagram.VariantTableStandard,
		diagram.VariantTableCompact,
	},
	diagram.TypeFlowchart: {
		diagram.VariantFlowWithSubsteps,
		diagram.VariantFlowBranching,
		diagram.VariantFlowLinearHorizontal,
		diagram.VariantFlowLinearVertical,
		diagram.VariantFlowSnake,
	},
	diagram.TypeDecisionTree: {
		diagram.VariantTreeSingleSplit,
		diagram.VariantTreeMultiLevel,
	},
	diagram.TypeHierarchy: {
		diagram.VariantHierarchyVertical,
		diagram.VariantHierarchyWide,
	},
	diagram.TypeTimeline: {
		diagram.VariantTimelineBar,
		diagram.VariantTimelineCards,
	},
	diagram.TypeSpectrum: {
		diagram.VariantSpectrumGradient,
		diagram.VariantSpectrumBipolar,
	},
	diagram.TypeKeyDifferentiators: {
		diagram.VariantKeyDiffSideBySide,
		diagram.VariantKeyDiffMultiCol,
	},
}

// Variants returns the legal variants for t, in menu order. The
// returned slice is a copy.
func Variants(t diagram.Type) []diagram.Variant {
	menu := variantMenu[t]
	out := make([]diagram.Variant, len(menu))
	copy(out, menu)
	return out
}

func variantAllowed(t diagram.Type, v diagram.Variant) bool {
	for _, allowed := range variantMenu[t] {
		if v == allowed {
			return true
		}
	}
	return false
}

// SelectVariant picks the layout variant for a diagram from its
// structural features. Each type has a fixed, ordered rule chain; the
// first matching rule wins, so selection is deterministic.
func SelectVariant(t diagram.Type, f diagram.Features) (diagram.Variant, error) {
	switch t {
	case diagram.TypeTable:
		// Dense tables drop to the compact treatment.
		if f.RowCount >= 5 || f.ColCount >= 4 {
			return diagram.VariantTableCompact, nil
		}
		return diagram.VariantTableStandard, nil

	case diagram.TypeFlowchart:
		switch {
		case f.HasSubsteps:
			return diagram.VariantFlowWithSubsteps, nil
		case f.HasBranches:
			return diagram.VariantFlowBranching, nil
		case f.StepCount <= 4:
			return diagram.VariantFlowLinearHorizontal, nil
		case f.StepCount <= 6:
			return diagram.VariantFlowLinearVertical, nil
		default:
			return diagram.VariantFlowSnake, nil
		}

	case diagram.TypeDecisionTree:
		if f.LevelCount <= 2 {
			return diagram.VariantTreeSingleSplit, nil
		}
		return diagram.VariantTreeMultiLevel, nil

	case diagram.TypeHierarchy:
		if f.MaxBranching >= 4 {
			return diagram.VariantHierarchyWide, nil
		}
		return diagram.VariantHierarchyVertical, nil

	case diagram.TypeTimeline:
		if f.EventCount <= 4 {
			return diagram.VariantTimelineBar, nil
		}
		return diagram.VariantTimelineCards, nil

	case diagram.TypeSpectrum:
		if f.Bipolar {
			return diagram.VariantSpectrumBipolar, nil
		}
		return diagram.VariantSpectrumGradient, nil

	case diagram.TypeKeyDifferentiators:
		if f.ConceptCount == 2 {
			return diagram.VariantKeyDiffSideBySide, nil
		}
		return diagram.VariantKeyDiffMultiCol, nil
	}
	return "", errors.New(errors.ErrCodeUnknownDiagramType, "unknown diagram type %q", t)
}

// ResolveVariant applies an explicit override when one is present,
// checking it against the type's menu, and falls back to automatic
// selection otherwise.
func ResolveVariant(t diagram.Type, override diagram.Variant, f diagram.Features) (diagram.Variant, error) {
	if override != "" {
		if !variantAllowed(t, override) {
			return "", errors.New(errors.ErrCodeNoVariantFits, "variant %q is not defined for diagram type %q", override, t)
		}
		return override, nil
	}
	return SelectVariant(t, f)
}
