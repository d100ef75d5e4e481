package layout

import (
	"fmt"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/geom"
	"github.com/slidegeom/slidegeom/pkg/styles"
)

// buildTable lays out a header row plus banded data rows on an even
// grid. Column width is the usable width divided by the column count;
// row height divides the usable height evenly across header and data
// rows. Tables carry no connectors, so every cell is terminal.
func buildTable(c *diagram.TableContent, variant diagram.Variant, canvas diagram.Canvas) (*Output, error) {
	pal, err := styles.GetPalette(diagram.TypeTable)
	if err != nil {
		return nil, err
	}
	headerFont, err := styles.GetFontSpec(diagram.TypeTable, diagram.RoleHeader)
	if err != nil {
		return nil, err
	}
	bodyFont, err := styles.GetFontSpec(diagram.TypeTable, diagram.RoleBody)
	if err != nil {
		return nil, err
	}

	area := contentArea(canvas)
	cols := len(c.Headers)
	rows := len(c.Rows)
	colW := area.W / float64(cols)
	rowH := area.H / float64(rows+1)

	bodySize := bodyFont.Size
	if variant == diagram.VariantTableCompact {
		bodySize = geom.AdaptiveFontSize(rows+1, styles.DensityThreshold(diagram.TypeTable), bodyFont.Size)
	}

	out := &Output{}
	for col, header := range c.Headers {
		r := geom.Rect{X: area.X + float64(col)*colW, Y: area.Y, W: colW, H: rowH}
		s := shapeAt(fmt.Sprintf("header-%d", col), diagram.KindBox, r)
		s.Fill = pal.Primary
		s.Border = diagram.Border{Color: pal.Primary, Width: 1}
		s.Text = header
		s.TextRole = diagram.RoleHeader
		s.FontSize = headerFont.Size
		s.FontWeight = headerFont.Weight
		s.Terminal = true
		out.Shapes = append(out.Shapes, s)
	}

	for row, cells := range c.Rows {
		// Band rows by index parity.
		fill := pal.Secondary
		if row%2 == 1 {
			fill = geom.LightenColor(pal.Secondary, 0.5)
		}
		y := area.Y + float64(row+1)*rowH
		for col := 0; col < cols; col++ {
			var text string
			if col < len(cells) {
				text = cells[col]
			}
			r := geom.Rect{X: area.X + float64(col)*colW, Y: y, W: colW, H: rowH}
			s := shapeAt(fmt.Sprintf("cell-%d-%d", row, col), diagram.KindBox, r)
			s.Fill = fill
			s.Border = diagram.Border{Color: pal.Primary, Width: 0.5}
			s.Text = text
			s.TextRole = diagram.RoleBody
			s.FontSize = bodySize
			s.FontWeight = bodyFont.Weight
			s.Terminal = true
			out.Shapes = append(out.Shapes, s)
		}
	}
	return out, nil
}
