package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// buildSpectrum renders a horizontal band of segments whose fills are
// sampled along the configured gradient by segment index. Low/high
// endpoint labels anchor the ends; the bipolar variant adds an
// emphasized center marker and colors each endpoint label with its
// end of the gradient. Spectra carry no connectors.
func buildSpectrum(c *diagram.SpectrumContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	pal, err := styles.GetPalette(diagram.TypeSpectrum)
	if err != nil {
		return nil, err
	}
	labelFont, err := styles.GetFontSpec(diagram.TypeSpectrum, diagram.RoleLabel)
	if err != nil {
		return nil, err
	}
	captionFont, err := styles.GetFontSpec(diagram.TypeSpectrum, diagram.RoleCaption)
	if err != nil {
		return nil, err
	}
	stops := styles.GradientStops(c.GradientKey)

	area := contentArea(canvas)
	out := &Output{}

	n := len(c.Segments)
	barH := area.H * 0.3
	barY := area.CenterY() - barH/2
	segW := area.W / float64(n)

	for i, seg := range c.Segments {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fill := geom.InterpolateColor(stops, t)
		r := geom.Rect{X: area.X + float64(i)*segW, Y: barY, W: segW, H: barH}
		s := shapeAt(fmt.Sprintf("segment-%d", i), diagram.KindBox, r)
		s.Fill = fill
		s.Border = diagram.Border{Color: pal.Primary, Width: 0.5}
		s.Text = seg.Label
		s.TextRole = diagram.RoleLabel
		s.FontSize = labelFont.Size
		s.FontWeight = "bold"
		s.Terminal = true
		out.Shapes = append(out.Shapes, s)

		if seg.Description != "" {
			// Descriptions alternate above and below the band.
			dy := barY - area.H*0.12
			if i%2 == 1 {
				dy = barY + barH + area.H*0.04
			}
			d := shapeAt(fmt.Sprintf("segment-%d-desc", i), diagram.KindLabel, geom.Rect{
				X: r.X, Y: dy, W: segW, H: area.H * 0.08,
			})
			d.Text = seg.Description
			d.TextRole = diagram.RoleCaption
			d.FontSize = captionFont.Size
			d.Terminal = true
			out.Shapes = append(out.Shapes, d)
		}
	}

	labelH := area.H * 0.1
	labelY := barY + barH + area.H*0.14
	low := shapeAt("endpoint-low", diagram.KindLabel, geom.Rect{
		X: area.X, Y: labelY, W: area.W * 0.25, H: labelH,
	})
	low.Text = c.Endpoints.Low
	low.TextRole = diagram.RoleLabel
	low.FontSize = labelFont.Size
	low.FontWeight = "bold"
	low.Terminal = true

	high := shapeAt("endpoint-high", diagram.KindLabel, geom.Rect{
		X: area.Right() - area.W*0.25, Y: labelY, W: area.W * 0.25, H: labelH,
	})
	high.Text = c.Endpoints.High
	high.TextRole = diagram.RoleLabel
	high.FontSize = labelFont.Size
	high.FontWeight = "bold"
	high.Terminal = true

	if variant == diagram.VariantSpectrumBipolar {
		low.Fill = geom.InterpolateColor(stops, 0)
		high.Fill = geom.InterpolateColor(stops, 1)

		markerW := area.W * 0.012
		marker := shapeAt("center-marker", diagram.KindBox, geom.Rect{
			X: area.CenterX() - markerW/2, Y: barY - area.H*0.05, W: markerW, H: barH + area.H*0.1,
		})
		marker.Fill = pal.Primary
		marker.Border = diagram.Border{Color: pal.Primary, Width: 1}
		marker.Terminal = true
		out.Shapes = append(out.Shapes, marker)
	}
	out.Shapes = append(out.Shapes, low, high)
	return out, nil
}
