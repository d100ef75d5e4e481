package diagram

import (
	"sort"

	"github.com/slidegeom/slidegeom/pkg/errors"
)

// Element-count ceilings per diagram type. Exceeding a ceiling is a
// fatal build error: no partial layout is ever returned. Splitting
// oversized content across canvases is the caller's responsibility.
const (
	MaxTableRows      = 6
	MaxTableCols      = 4
	MaxFlowchartSteps = 7
	MinFlowchartSteps = 2
	MaxTreeNodes      = 15
	MaxTreeLevels     = 4
	MaxTimelineEvents = 8
	MinTimelineEvents = 2
	MaxSpectrumSegs   = 6
	MinSpectrumSegs   = 2
	MinConcepts       = 2
	MaxConcepts       = 4
	MaxFeatureRows    = 6
)

// Features captures the structural properties the variant selector
// keys on. It is a flat union: each diagram type reads only the fields
// that apply to it.
type Features struct {
	// Table
	RowCount int
	ColCount int

	// Flowchart
	StepCount   int
	HasSubsteps bool
	HasBranches bool
	IsCyclical  bool

	// Trees (DecisionTree, Hierarchy)
	NodeCount    int
	LevelCount   int
	MaxBranching int

	// Timeline
	EventCount int

	// Spectrum
	SegmentCount int
	Bipolar      bool

	// KeyDifferentiators
	ConceptCount    int
	FeatureRowCount int
	KeyRowCount     int
}

// ExtractFeatures derives the structural features of a request's
// content. The request must carry a coherent content union.
func ExtractFeatures(req *Request) (Features, error) {
	content, err := req.Content()
	if err != nil {
		return Features{}, err
	}

	var f Features
	switch c := content.(type) {
	case *TableContent:
		f.RowCount = len(c.Rows)
		f.ColCount = len(c.Headers)
	case *FlowchartContent:
		f.StepCount = len(c.Steps)
		f.HasBranches = len(c.Branches) > 0
		f.IsCyclical = c.Cyclical
		for _, s := range c.Steps {
			if len(s.Substeps) > 0 {
				f.HasSubsteps = true
				break
			}
		}
	case *DecisionTreeContent:
		f.NodeCount = countDecisionNodes(c.Root)
		f.LevelCount = decisionDepth(c.Root)
		f.MaxBranching = maxDecisionBranching(c.Root)
	case *HierarchyContent:
		f.NodeCount = countHierarchyNodes(c.Root)
		f.LevelCount = hierarchyDepth(c.Root)
		f.MaxBranching = maxHierarchyBranching(c.Root)
	case *TimelineContent:
		f.EventCount = len(c.Events)
	case *SpectrumContent:
		f.SegmentCount = len(c.Segments)
		f.Bipolar = c.Bipolar
	case *KeyDifferentiatorsContent:
		f.ConceptCount = len(c.Concepts)
		f.FeatureRowCount = len(c.FeatureNames())
		f.KeyRowCount = len(c.KeyDifferentiators)
	}
	return f, nil
}

// CheckStructure verifies content minimums and element-count ceilings.
// Minimum violations return INVALID_CONTENT, ceiling violations return
// ELEMENT_COUNT_EXCEEDED. Both are fatal.
func CheckStructure(req *Request) error {
	f, err := ExtractFeatures(req)
	if err != nil {
		return err
	}

	switch req.Type {
	case TypeTable:
		if f.ColCount == 0 || f.RowCount == 0 {
			return errors.New(errors.ErrCodeInvalidContent, "table needs headers and at least one row")
		}
		if f.RowCount > MaxTableRows {
			return errors.New(errors.ErrCodeElementCountExceeded, "table has %d rows (max %d)", f.RowCount, MaxTableRows)
		}
		if f.ColCount > MaxTableCols {
			return errors.New(errors.ErrCodeElementCountExceeded, "table has %d columns (max %d)", f.ColCount, MaxTableCols)
		}
	case TypeFlowchart:
		if f.StepCount < MinFlowchartSteps {
			return errors.New(errors.ErrCodeInvalidContent, "flowchart needs at least %d steps, got %d", MinFlowchartSteps, f.StepCount)
		}
		if f.StepCount > MaxFlowchartSteps {
			return errors.New(errors.ErrCodeElementCountExceeded, "flowchart has %d steps (max %d)", f.StepCount, MaxFlowchartSteps)
		}
		for _, b := range req.Flowchart.Branches {
			if b.From < 0 || b.From >= f.StepCount || b.To < 0 || b.To >= f.StepCount {
				return errors.New(errors.ErrCodeInvalidContent, "flowchart branch %d -> %d references a step outside 0-%d", b.From, b.To, f.StepCount-1)
			}
		}
	case TypeDecisionTree, TypeHierarchy:
		if req.Type == TypeDecisionTree && req.DecisionTree.Root.Header == "" {
			return errors.New(errors.ErrCodeInvalidContent, "decision tree needs a root node")
		}
		if req.Type == TypeHierarchy && req.Hierarchy.Root.Label == "" {
			return errors.New(errors.ErrCodeInvalidContent, "hierarchy needs a root node")
		}
		if f.NodeCount > MaxTreeNodes {
			return errors.New(errors.ErrCodeElementCountExceeded, "%s has %d nodes (max %d)", req.Type, f.NodeCount, MaxTreeNodes)
		}
		if f.LevelCount > MaxTreeLevels {
			return errors.New(errors.ErrCodeElementCountExceeded, "%s has %d levels (max %d)", req.Type, f.LevelCount, MaxTreeLevels)
		}
	case TypeTimeline:
		if f.EventCount < MinTimelineEvents {
			return errors.New(errors.ErrCodeInvalidContent, "timeline needs at least %d events, got %d", MinTimelineEvents, f.EventCount)
		}
		if f.EventCount > MaxTimelineEvents {
			return errors.New(errors.ErrCodeElementCountExceeded, "timeline has %d events (max %d)", f.EventCount, MaxTimelineEvents)
		}
	case TypeSpectrum:
		if f.SegmentCount < MinSpectrumSegs {
			return errors.New(errors.ErrCodeInvalidContent, "spectrum needs at least %d segments, got %d", MinSpectrumSegs, f.SegmentCount)
		}
		if f.SegmentCount > MaxSpectrumSegs {
			return errors.New(errors.ErrCodeElementCountExceeded, "spectrum has %d segments (max %d)", f.SegmentCount, MaxSpectrumSegs)
		}
	case TypeKeyDifferentiators:
		if f.ConceptCount < MinConcepts {
			return errors.New(errors.ErrCodeInvalidContent, "key differentiators needs at least %d concepts, got %d", MinConcepts, f.ConceptCount)
		}
		if f.ConceptCount > MaxConcepts {
			return errors.New(errors.ErrCodeElementCountExceeded, "key differentiators has %d concepts (max %d)", f.ConceptCount, MaxConcepts)
		}
		if f.FeatureRowCount > MaxFeatureRows {
			return errors.New(errors.ErrCodeElementCountExceeded, "key differentiators has %d feature rows (max %d)", f.FeatureRowCount, MaxFeatureRows)
		}
	default:
		return errors.New(errors.ErrCodeUnknownDiagramType, "unknown diagram type %q", req.Type)
	}
	return nil
}

// FeatureNames returns the union of feature names across all concepts,
// sorted alphabetically. Sorting keeps row order deterministic given
// that the per-concept feature sets arrive as maps.
func (c *KeyDifferentiatorsContent) FeatureNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, concept := range c.Concepts {
		for name := range concept.Features {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// IsKey reports whether the named feature row is flagged as a key
// differentiator.
func (c *KeyDifferentiatorsContent) IsKey(feature string) bool {
	for _, k := range c.KeyDifferentiators {
		if k == feature {
			return true
		}
	}
	return false
}

func countDecisionNodes(n DecisionNode) int {
	count := 1
	for _, child := range n.Children {
		count += countDecisionNodes(child)
	}
	return count
}

func decisionDepth(n DecisionNode) int {
	deepest := 0
	for _, child := range n.Children {
		if d := decisionDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

func maxDecisionBranching(n DecisionNode) int {
	most := len(n.Children)
	for _, child := range n.Children {
		if b := maxDecisionBranching(child); b > most {
			most = b
		}
	}
	return most
}

func countHierarchyNodes(n HierarchyNode) int {
	count := 1
	for _, child := range n.Children {
		count += countHierarchyNodes(child)
	}
	return count
}

func hierarchyDepth(n HierarchyNode) int {
	deepest := 0
	for _, child := range n.Children {
		if d := hierarchyDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

func maxHierarchyBranching(n HierarchyNode) int {
	most := len(n.Children)
	for _, child := range n.Children {
		if b := maxHierarchyBranching(child); b > most {
			most = b
		}
	}
	return most
}
