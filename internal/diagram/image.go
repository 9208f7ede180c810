package diagram

import (
	"fmt"
	"image/color"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gojoint/internal/joint"
)

// ExportJointElevation exports an X-Y elevation of the synthesized joint to
// an image file (format by extension: png, svg, pdf). Every authored patch is
// drawn as a filled polygon; the rigid link slave nodes are marked.
func ExportJointElevation(res *joint.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Joint Submodel Elevation"
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	lookup := nodeLookup(res.Stations)

	webFill := color.RGBA{R: 100, G: 149, B: 237, A: 120}
	edge := color.RGBA{R: 0, G: 0, B: 139, A: 255}

	for _, patch := range res.Patches {
		outline := make(plotter.XYs, 0, 5)
		ok := true
		for _, n := range patch.Nodes {
			pt, found := lookup[n]
			if !found {
				ok = false
				break
			}
			outline = append(outline, plotter.XY{X: pt.X, Y: pt.Y})
		}
		if !ok {
			continue
		}
		outline = append(outline, outline[0])

		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return fmt.Errorf("patch %s: %w", patch.Tag, err)
		}
		poly.Color = webFill
		poly.LineStyle.Color = edge
		p.Add(poly)
	}

	slaves := make(plotter.XYs, 0, 3)
	for _, g := range []*joint.NodeGroup{res.Stations.Beam, res.Stations.ColumnLower, res.Stations.ColumnUpper} {
		if g == nil {
			continue
		}
		// Mark the template anchor area by its web midpoint.
		a := g.Point(joint.WebBot)
		b := g.Point(joint.WebTop)
		slaves = append(slaves, plotter.XY{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2})
	}
	if len(slaves) > 0 {
		scatter, err := plotter.NewScatter(slaves)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		p.Add(scatter)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

func nodeLookup(st joint.Stations) map[int]v3.Vec {
	lookup := make(map[int]v3.Vec)
	for _, g := range []*joint.NodeGroup{
		st.ColumnLower, st.PanelBottom, st.PanelTop, st.ColumnUpper, st.Beam, st.BeamAtFace,
	} {
		if g == nil {
			continue
		}
		for _, l := range joint.Labels {
			if id, ok := g.ID(l); ok {
				lookup[id] = g.Point(l)
			}
		}
	}
	return lookup
}
