// Package validate checks built geometry against the hard structural
// constraints: element-count ceilings, character limits, the minimum
// font size floor, and connector completeness. Checks run in a fixed
// order and never short-circuit; all violations come back together in
// one report.
package validate

import (
	"fmt"
	"strings"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// connectedTypes lists the diagram types whose content graph implies
// connectivity: every non-terminal box or oval must touch at least
// one connector.
var connectedTypes = map[diagram.Type]bool{
	diagram.TypeFlowchart:    true,
	diagram.TypeDecisionTree: true,
	diagram.TypeHierarchy:    true,
	diagram.TypeTimeline:     true,
}

// Check runs every constraint against the built geometry and collects
// all violations. Geometry is still returned to the caller on FAIL;
// only structurally invalid requests abort earlier in the build.
func Check(req *diagram.Request, shapes []diagram.Shape, connectors []diagram.Connector) diagram.ValidationReport {
	var violations []diagram.Violation
	violations = append(violations, checkElementCounts(req)...)
	violations = append(violations, checkCharLimits(req.Type, shapes)...)
	violations = append(violations, checkFontFloor(shapes)...)
	violations = append(violations, checkConnectivity(req.Type, shapes, connectors)...)

	status := diagram.StatusPass
	if len(violations) > 0 {
		status = diagram.StatusFail
	}
	return diagram.ValidationReport{Status: status, Violations: violations}
}

// checkElementCounts re-verifies the per-type ceilings. The builder
// rejects these up front; the validator records them independently so
// a report is self-contained.
func checkElementCounts(req *diagram.Request) []diagram.Violation {
	err := diagram.CheckStructure(req)
	if err == nil {
		return nil
	}
	return []diagram.Violation{{
		Code:    string(errors.ViolationElementCount),
		Message: errors.UserMessage(err),
	}}
}

// checkCharLimits verifies every shape's text against the catalog
// limit for its role, accounting for forced wraps: text longer than
// one line wraps onto the next, and the wrapped line count must fit
// MaxLines.
func checkCharLimits(t diagram.Type, shapes []diagram.Shape) []diagram.Violation {
	var violations []diagram.Violation
	for _, s := range shapes {
		if s.Text == "" {
			continue
		}
		limit, err := styles.GetCharLimit(t, s.TextRole)
		if err != nil {
			continue
		}
		lines := wrappedLines(s.Text, limit.MaxCharsPerLine)
		if lines > limit.MaxLines {
			violations = append(violations, diagram.Violation{
				Code:      string(errors.ViolationCharacterLimit),
				Message:   fmt.Sprintf("text needs %d lines, limit is %d (%d chars/line)", lines, limit.MaxLines, limit.MaxCharsPerLine),
				ElementID: s.ID,
			})
		}
	}
	return violations
}

// wrappedLines counts the lines the text occupies after forced wraps
// at maxChars. Explicit newlines each start a fresh line.
func wrappedLines(text string, maxChars int) int {
	if maxChars <= 0 {
		return 1
	}
	total := 0
	for _, line := range strings.Split(text, "\n") {
		n := len([]rune(line))
		if n == 0 {
			total++
			continue
		}
		total += (n + maxChars - 1) / maxChars
	}
	return total
}

// checkFontFloor enforces the type-independent minimum font size on
// every text element.
func checkFontFloor(shapes []diagram.Shape) []diagram.Violation {
	var violations []diagram.Violation
	for _, s := range shapes {
		if s.Text == "" || s.FontSize == 0 {
			continue
		}
		if s.FontSize < styles.MinFontSize {
			violations = append(violations, diagram.Violation{
				Code:      string(errors.ViolationMinimumFont),
				Message:   fmt.Sprintf("font size %.1f below floor %.1f", s.FontSize, styles.MinFontSize),
				ElementID: s.ID,
			})
		}
	}
	return violations
}

// checkConnectivity requires every non-terminal box or oval in a
// connector-bearing diagram to have at least one incident connector.
func checkConnectivity(t diagram.Type, shapes []diagram.Shape, connectors []diagram.Connector) []diagram.Violation {
	if !connectedTypes[t] {
		return nil
	}
	incident := make(map[string]bool, len(connectors)*2)
	for _, c := range connectors {
		if c.From.ShapeID != "" {
			incident[c.From.ShapeID] = true
		}
		if c.To.ShapeID != "" {
			incident[c.To.ShapeID] = true
		}
	}

	var violations []diagram.Violation
	for _, s := range shapes {
		if s.Terminal || s.Kind == diagram.KindLabel {
			continue
		}
		if !incident[s.ID] {
			violations = append(violations, diagram.Violation{
				Code:      string(errors.ViolationDisconnected),
				Message:   "shape has no incident connector",
				ElementID: s.ID,
			})
		}
	}
	return violations
}
