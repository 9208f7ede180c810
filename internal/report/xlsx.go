package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"gojoint/internal/joint"
)

// WriteSynthesisXLSX writes the generated entities of one synthesis run into
// a workbook: one sheet of labeled template nodes, one of quad patches, one
// of rigid link clusters.
func WriteSynthesisXLSX(path string, res *joint.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const nodeSheet = "Nodes"
	f.SetSheetName("Sheet1", nodeSheet)
	header := []interface{}{"Station", "Label", "Node", "X", "Y", "Z"}
	if err := f.SetSheetRow(nodeSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing node header: %w", err)
	}
	row := 2
	for _, g := range []*joint.NodeGroup{
		res.Stations.ColumnLower, res.Stations.PanelBottom, res.Stations.PanelTop,
		res.Stations.ColumnUpper, res.Stations.Beam, res.Stations.BeamAtFace,
	} {
		if g == nil {
			continue
		}
		for _, l := range joint.Labels {
			id, ok := g.ID(l)
			if !ok {
				continue
			}
			p := g.Point(l)
			cells := []interface{}{string(g.Station), l.String(), id, p.X, p.Y, p.Z}
			if err := f.SetSheetRow(nodeSheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				return fmt.Errorf("writing node row: %w", err)
			}
			row++
		}
	}

	const patchSheet = "Patches"
	if _, err := f.NewSheet(patchSheet); err != nil {
		return fmt.Errorf("creating patch sheet: %w", err)
	}
	pheader := []interface{}{"Patch", "Tag", "Property", "N1", "N2", "N3", "N4"}
	if err := f.SetSheetRow(patchSheet, "A1", &pheader); err != nil {
		return fmt.Errorf("writing patch header: %w", err)
	}
	for i, p := range res.Patches {
		id := 0
		if i < len(res.PatchIDs) {
			id = res.PatchIDs[i]
		}
		cells := []interface{}{id, p.Tag, p.Property, p.Nodes[0], p.Nodes[1], p.Nodes[2], p.Nodes[3]}
		if err := f.SetSheetRow(patchSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return fmt.Errorf("writing patch row: %w", err)
		}
	}

	const linkSheet = "Clusters"
	if _, err := f.NewSheet(linkSheet); err != nil {
		return fmt.Errorf("creating cluster sheet: %w", err)
	}
	lheader := []interface{}{"Slave", "Plane", "Masters", "Master IDs"}
	if err := f.SetSheetRow(linkSheet, "A1", &lheader); err != nil {
		return fmt.Errorf("writing cluster header: %w", err)
	}
	for i, c := range res.Clusters {
		ids := make([]string, len(c.Masters))
		for j, m := range c.Masters {
			ids[j] = fmt.Sprintf("%d", m)
		}
		cells := []interface{}{c.Slave, c.Plane.String(), len(c.Masters), strings.Join(ids, " ")}
		if err := f.SetSheetRow(linkSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return fmt.Errorf("writing cluster row: %w", err)
		}
	}

	return f.SaveAs(path)
}
