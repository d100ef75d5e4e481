// Package styles is the static style catalog: per-diagram-type color
// palettes, font tables, and character-limit tables.
//
// Everything in this package is a constant lookup table built once at
// process start and never mutated, so concurrent readers need no
// synchronization. Lookups for an unrecognized diagram type fail with
// UNKNOWN_DIAGRAM_TYPE; nothing here has side effects.
package styles

import (
	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

// MinFontSize is the hard, type-independent floor on every text
// element, in points. The validator flags anything below it.
const MinFontSize = 10.0

// Palette is the color set for one diagram type.
type Palette struct {
	Primary     string
	Secondary   string
	Accents     []string
	TextOnLight string
	TextOnDark  string
}

// FontSpec describes the font for one text role.
type FontSpec struct {
	Family string
	Size   float64
	Weight string // "regular" or "bold"
}

// CharLimit bounds the text of one field, accounting for forced wraps.
type CharLimit struct {
	MaxCharsPerLine int
	MaxLines        int
}

var palettes = map[diagram.Type]Palette{
	diagram.TypeTable: {
		Primary:     "#1f4e79",
		Secondary:   "#d6e4f0",
		Accents:     []string{"#2e75b6", "#9dc3e6"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
	diagram.TypeFlowchart: {
		Primary:     "#2e7d32",
		Secondary:   "#e8f5e9",
		Accents:     []string{"#43a047", "#66bb6a", "#81c784"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
	diagram.TypeDecisionTree: {
		Primary:     "#6a1b9a",
		Secondary:   "#f3e5f5",
		Accents:     []string{"#8e24aa", "#ab47bc", "#ce93d8"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
	diagram.TypeHierarchy: {
		Primary:     "#00695c",
		Secondary:   "#e0f2f1",
		Accents:     []string{"#00897b", "#26a69a", "#4db6ac", "#80cbc4"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
	diagram.TypeTimeline: {
		Primary:     "#bf360c",
		Secondary:   "#fbe9e7",
		Accents:     []string{"#e64a19", "#ff7043"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
	diagram.TypeSpectrum: {
		Primary:     "#283593",
		Secondary:   "#e8eaf6",
		Accents:     []string{"#3949ab", "#5c6bc0"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
	diagram.TypeKeyDifferentiators: {
		Primary:     "#ad1457",
		Secondary:   "#fce4ec",
		Accents:     []string{"#d81b60", "#ec407a"},
		TextOnLight: "#1a1a1a",
		TextOnDark:  "#ffffff",
	},
}

const defaultFamily = "Lato"

var fonts = map[diagram.TextRole]FontSpec{
	diagram.RoleHeader:  {Family: defaultFamily, Size: 16, Weight: "bold"},
	diagram.RoleBody:    {Family: defaultFamily, Size: 13, Weight: "regular"},
	diagram.RoleLabel:   {Family: defaultFamily, Size: 12, Weight: "regular"},
	diagram.RoleCaption: {Family: defaultFamily, Size: 11, Weight: "regular"},
}

var charLimits = map[diagram.Type]map[diagram.TextRole]CharLimit{
	diagram.TypeTable: {
		diagram.RoleHeader: {MaxCharsPerLine: 18, MaxLines: 1},
		diagram.RoleBody:   {MaxCharsPerLine: 28, MaxLines: 2},
	},
	diagram.TypeFlowchart: {
		diagram.RoleHeader: {MaxCharsPerLine: 24, MaxLines: 1},
		diagram.RoleBody:   {MaxCharsPerLine: 36, MaxLines: 3},
		diagram.RoleLabel:  {MaxCharsPerLine: 16, MaxLines: 1},
	},
	diagram.TypeDecisionTree: {
		diagram.RoleHeader: {MaxCharsPerLine: 20, MaxLines: 1},
		diagram.RoleBody:   {MaxCharsPerLine: 32, MaxLines: 2},
		diagram.RoleLabel:  {MaxCharsPerLine: 18, MaxLines: 1},
	},
	diagram.TypeHierarchy: {
		diagram.RoleHeader: {MaxCharsPerLine: 22, MaxLines: 1},
		diagram.RoleLabel:  {MaxCharsPerLine: 22, MaxLines: 2},
	},
	diagram.TypeTimeline: {
		diagram.RoleHeader: {MaxCharsPerLine: 20, MaxLines: 1},
		diagram.RoleBody:   {MaxCharsPerLine: 40, MaxLines: 3},
		diagram.RoleLabel:  {MaxCharsPerLine: 12, MaxLines: 1},
	},
	diagram.TypeSpectrum: {
		diagram.RoleHeader: {MaxCharsPerLine: 18, MaxLines: 1},
		diagram.RoleBody:   {MaxCharsPerLine: 30, MaxLines: 2},
		diagram.RoleLabel:  {MaxCharsPerLine: 14, MaxLines: 1},
	},
	diagram.TypeKeyDifferentiators: {
		diagram.RoleHeader: {MaxCharsPerLine: 18, MaxLines: 1},
		diagram.RoleBody:   {MaxCharsPerLine: 26, MaxLines: 2},
	},
}

// headerProportions is the fixed share of a two-tone panel's height
// taken by the header sub-shape, per diagram type.
var headerProportions = map[diagram.Type]float64{
	diagram.TypeFlowchart:          0.35,
	diagram.TypeDecisionTree:       0.40,
	diagram.TypeTimeline:           0.45,
	diagram.TypeKeyDifferentiators: 0.30,
}

// densityThresholds is the element count at which adaptive font
// sizing drops one step, per diagram type.
var densityThresholds = map[diagram.Type]int{
	diagram.TypeTable:              5,
	diagram.TypeFlowchart:          6,
	diagram.TypeDecisionTree:       10,
	diagram.TypeHierarchy:          10,
	diagram.TypeTimeline:           6,
	diagram.TypeSpectrum:           5,
	diagram.TypeKeyDifferentiators: 5,
}

// gradients maps spectrum gradient keys to ordered color stops.
var gradients = map[string][]string{
	"cool_warm":   {"#2166ac", "#f7f7f7", "#b2182b"},
	"green_red":   {"#1a9850", "#fee08b", "#d73027"},
	"mono_blue":   {"#deebf7", "#3182bd"},
	"mono_purple": {"#efedf5", "#756bb1"},
}

// defaultGradientKey is used when a spectrum request names no gradient.
const defaultGradientKey = "cool_warm"

// GetPalette returns the color palette for a diagram type.
func GetPalette(t diagram.Type) (Palette, error) {
	p, ok := palettes[t]
	if !ok {
		return Palette{}, errors.New(errors.ErrCodeUnknownDiagramType, "no palette for diagram type %q", t)
	}
	return p, nil
}

// GetFontSpec returns the font for a text role within a diagram type.
// Roles share a common font table today; the type parameter keeps the
// lookup contract per-type and validates it.
func GetFontSpec(t diagram.Type, role diagram.TextRole) (FontSpec, error) {
	if _, ok := palettes[t]; !ok {
		return FontSpec{}, errors.New(errors.ErrCodeUnknownDiagramType, "no font table for diagram type %q", t)
	}
	spec, ok := fonts[role]
	if !ok {
		spec = fonts[diagram.RoleBody]
	}
	return spec, nil
}

// GetCharLimit returns the character limits for a field role within a
// diagram type. Roles without an explicit entry fall back to the
// type's body limit.
func GetCharLimit(t diagram.Type, role diagram.TextRole) (CharLimit, error) {
	limits, ok := charLimits[t]
	if !ok {
		return CharLimit{}, errors.New(errors.ErrCodeUnknownDiagramType, "no character limits for diagram type %q", t)
	}
	if l, ok := limits[role]; ok {
		return l, nil
	}
	if l, ok := limits[diagram.RoleBody]; ok {
		return l, nil
	}
	return limits[diagram.RoleHeader], nil
}

// HeaderProportion returns the header share of a two-tone panel for
// the given type. Types without composite panels return 0.35.
func HeaderProportion(t diagram.Type) float64 {
	if p, ok := headerProportions[t]; ok {
		return p
	}
	return 0.35
}

// DensityThreshold returns the element count at which the type's
// adaptive font size steps down.
func DensityThreshold(t diagram.Type) int {
	if n, ok := densityThresholds[t]; ok {
		return n
	}
	return 6
}

// GradientStops returns the ordered color stops for a gradient key,
// falling back to the default gradient for unknown keys.
func GradientStops(key string) []string {
	if stops, ok := gradients[key]; ok {
		return stops
	}
	return gradients[defaultGradientKey]
}

// DepthAccent returns the accent color for a tree recursion depth.
// Depth 0 is the root; deeper levels cycle through the palette's
// accents so color is a function of depth, never of element identity.
func DepthAccent(p Palette, depth int) string {
	if depth <= 0 || len(p.Accents) == 0 {
		return p.Primary
	}
	return p.Accents[(depth-1)%len(p.Accents)]
}
