package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// buildKeyDifferentiators lays out a comparison grid: a leading
// feature-name column, one column per concept, and one row per
// feature in sorted name order. Rows flagged as key differentiators
// get the accent treatment. At least one row must be flagged.
func buildKeyDifferentiators(c *diagram.KeyDifferentiatorsContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	features := c.FeatureNames()
	keyCount := 0
	for _, f := range features {
		if c.IsKey(f) {
			keyCount++
		}
	}
	if keyCount == 0 {
		return nil, errors.New(errors.ErrCodeNoKeyDifferentiator, "no feature row is marked as a key differentiator")
	}

	pal, err := styles.GetPalette(diagram.TypeKeyDifferentiators)
	if err != nil {
		return nil, err
	}
	headerFont, err := styles.GetFontSpec(diagram.TypeKeyDifferentiators, diagram.RoleHeader)
	if err != nil {
		return nil, err
	}
	bodyFont, err := styles.GetFontSpec(diagram.TypeKeyDifferentiators, diagram.RoleBody)
	if err != nil {
		return nil, err
	}
	labelFont, err := styles.GetFontSpec(diagram.TypeKeyDifferentiators, diagram.RoleLabel)
	if err != nil {
		return nil, err
	}

	area := contentArea(canvas)
	out := &Output{}

	// The feature column takes a narrower share in the two-concept
	// side-by-side variant where concept panels dominate.
	featureColFrac := 0.25
	if variant == diagram.VariantKeyDiffSideBySide {
		featureColFrac = 0.2
	}
	featureColW := area.W * featureColFrac
	conceptColW := (area.W - featureColW) / float64(len(c.Concepts))
	rowH := area.H / float64(len(features)+1)

	bodySize := geom.AdaptiveFontSize(len(features)+1, styles.DensityThreshold(diagram.TypeKeyDifferentiators), bodyFont.Size)

	for i, concept := range c.Concepts {
		r := geom.Rect{X: area.X + featureColW + float64(i)*conceptColW, Y: area.Y, W: conceptColW, H: rowH}
		s := shapeAt(fmt.Sprintf("concept-%d", i), diagram.KindBox, r)
		s.Fill = pal.Primary
		s.Border = diagram.Border{Color: pal.Primary, Width: 1}
		s.Text = concept.Name
		s.TextRole = diagram.RoleHeader
		s.FontSize = headerFont.Size
		s.FontWeight = headerFont.Weight
		s.Terminal = true
		out.Shapes = append(out.Shapes, s)
	}

	for row, feature := range features {
		key := c.IsKey(feature)
		y := area.Y + float64(row+1)*rowH

		nameFill := pal.Secondary
		if key {
			nameFill = pal.Accents[0]
		}
		name := shapeAt(fmt.Sprintf("feature-%d", row), diagram.KindBox, geom.Rect{
			X: area.X, Y: y, W: featureColW, H: rowH,
		})
		name.Fill = nameFill
		name.Border = diagram.Border{Color: pal.Primary, Width: 0.5}
		name.Text = feature
		name.TextRole = diagram.RoleLabel
		name.FontSize = labelFont.Size
		if key {
			name.FontWeight = "bold"
		}
		name.Terminal = true
		out.Shapes = append(out.Shapes, name)

		for col, concept := range c.Concepts {
			fill := geom.LightenColor(pal.Secondary, 0.6)
			if key {
				fill = geom.LightenColor(pal.Accents[0], 0.7)
			}
			s := shapeAt(fmt.Sprintf("value-%d-%d", row, col), diagram.KindBox, geom.Rect{
				X: area.X + featureColW + float64(col)*conceptColW, Y: y, W: conceptColW, H: rowH,
			})
			s.Fill = fill
			s.Border = diagram.Border{Color: pal.Primary, Width: 0.5}
			s.Text = concept.Features[feature]
			s.TextRole = diagram.RoleBody
			s.FontSize = bodySize
			if key {
				s.FontWeight = "bold"
			}
			s.Terminal = true
			out.Shapes = append(out.Shapes, s)
		}
	}
	return out, nil
}
