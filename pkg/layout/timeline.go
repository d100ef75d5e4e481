package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/route"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// buildTimeline draws a horizontal bar across the canvas middle with
// evenly spaced event markers. The bar variant puts every card above
// the bar with the date below its marker; the alternating variant
// flips cards above/below by index parity to stay clear of each other
// at higher event counts.
func buildTimeline(c *diagram.TimelineContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	pal, err := styles.GetPalette(diagram.TypeTimeline)
	if err != nil {
		return nil, err
	}
	headerFont, err := styles.GetFontSpec(diagram.TypeTimeline, diagram.RoleHeader)
	if err != nil {
		return nil, err
	}
	bodyFont, err := styles.GetFontSpec(diagram.TypeTimeline, diagram.RoleBody)
	if err != nil {
		return nil, err
	}
	captionFont, err := styles.GetFontSpec(diagram.TypeTimeline, diagram.RoleCaption)
	if err != nil {
		return nil, err
	}

	area := contentArea(canvas)
	out := &Output{}

	barH := area.H * 0.04
	barY := area.CenterY() - barH/2
	bar := shapeAt("bar", diagram.KindBox, geom.Rect{X: area.X, Y: barY, W: area.W, H: barH})
	bar.Fill = pal.Secondary
	bar.Border = diagram.Border{Color: pal.Primary, Width: 1}
	bar.Terminal = true
	out.Shapes = append(out.Shapes, bar)

	n := len(c.Events)
	slotW := area.W / float64(n)
	markerD := area.H * 0.06
	cardW := slotW * 0.85
	cardH := area.H * 0.32
	bodySize := geom.AdaptiveFontSize(n, styles.DensityThreshold(diagram.TypeTimeline), bodyFont.Size)

	for i, ev := range c.Events {
		cx := area.X + (float64(i)+0.5)*slotW

		markerID := fmt.Sprintf("marker-%d", i)
		marker := shapeAt(markerID, diagram.KindOval, geom.Rect{
			X: cx - markerD/2, Y: area.CenterY() - markerD/2, W: markerD, H: markerD,
		})
		marker.Fill = pal.Primary
		marker.Border = diagram.Border{Color: pal.Primary, Width: 1}
		out.Shapes = append(out.Shapes, marker)

		above := true
		if variant == diagram.VariantTimelineCards {
			above = i%2 == 0
		}
		var cardY, dateY float64
		if above {
			cardY = barY - area.H*0.08 - cardH
			dateY = barY + barH + area.H*0.03
		} else {
			cardY = barY + barH + area.H*0.08
			dateY = barY - barH - area.H*0.08
		}

		cardID := fmt.Sprintf("card-%d", i)
		cardRect := geom.Rect{X: cx - cardW/2, Y: cardY, W: cardW, H: cardH}
		panel := twoTonePanel(cardID, cardRect, diagram.TypeTimeline, pal.Primary, ev.Label, ev.Description, headerFont, bodyFont, pal)
		panel[1].FontSize = bodySize
		out.Shapes = append(out.Shapes, panel...)

		date := shapeAt(fmt.Sprintf("date-%d", i), diagram.KindLabel, geom.Rect{
			X: cx - cardW/2, Y: dateY, W: cardW, H: area.H * 0.05,
		})
		date.Text = ev.Date
		date.TextRole = diagram.RoleCaption
		date.FontSize = captionFont.Size
		date.Terminal = true
		out.Shapes = append(out.Shapes, date)

		out.Specs = append(out.Specs, route.Spec{
			ID:    connID(markerID, cardID),
			From:  diagram.ShapeEndpoint(markerID),
			To:    diagram.ShapeEndpoint(cardID + "-header"),
			Shape: diagram.ConnectorStraight,
			Style: diagram.LineStyle{Color: pal.Primary, Width: 1},
		})
	}
	return out, nil
}
