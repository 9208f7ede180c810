package joint

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"gojoint/internal/geom"
	"gojoint/internal/mesh"
	"gojoint/internal/modeldb"
	"gojoint/internal/section"
)

// Input is one beam-column intersection of the global line-element model,
// reduced to the reference data the local submodel synthesis needs: the two
// member sections and the three intermediate anchor nodes surrounding the
// joint (beam side, column below, column above).
type Input struct {
	Beam   section.Dimensions
	Column section.Dimensions

	BeamAnchor        v3.Vec
	ColumnLowerAnchor v3.Vec
	ColumnUpperAnchor v3.Vec

	// CouplingTolerance is the coordinate-equality tolerance for the rigid
	// link classification; DefaultCouplingTolerance when zero.
	CouplingTolerance float64

	// MergeTolerance is the node zip distance for the finalization pass;
	// the mesh package default when zero.
	MergeTolerance float64
}

// Result is everything one synthesis run produced, for reporting.
type Result struct {
	ColumnFrame geom.LocalFrame
	Stations    Stations
	Patches     []PlatePatch
	PatchIDs    []int
	Clusters    []RigidLinkCluster

	BeamSlave        int
	ColumnLowerSlave int
	ColumnUpperSlave int

	TargetSize float64
	Mesh       *mesh.Summary
	Warnings   []string
}

// Synthesize converts one beam-column intersection into a discretized
// thin-shell submodel: plate properties, mid-plane node templates, quad patch
// topology, rigid link couplings back to the line-element anchors, and the
// final merge/automesh pass. Components run strictly in that order; geometry
// errors abort the joint, database errors abort the run.
func Synthesize(db modeldb.Database, in Input, caps Capabilities) (*Result, error) {
	if err := in.Beam.Validate(); err != nil {
		return nil, fmt.Errorf("beam section: %w", err)
	}
	if err := in.Column.Validate(); err != nil {
		return nil, fmt.Errorf("column section: %w", err)
	}

	props, err := CreateProperties(db, in.Beam, in.Column, caps)
	if err != nil {
		return nil, err
	}

	s, err := NewSession(db, caps)
	if err != nil {
		return nil, err
	}

	res := &Result{}

	// The column's local frame, oriented so its web plane contains the beam
	// direction. A degenerate frame means the anchors cannot describe a
	// joint and the whole member synthesis is aborted.
	hint := caps.NormalHint
	if hint == nil {
		mid := in.ColumnLowerAnchor.Add(in.ColumnUpperAnchor).MulScalar(0.5)
		h := in.BeamAnchor.Sub(mid)
		hint = &h
	}
	res.ColumnFrame, err = geom.NewLocalFrame(in.ColumnLowerAnchor, in.ColumnUpperAnchor, hint)
	if err != nil {
		return nil, fmt.Errorf("column frame: %w", err)
	}
	if math.Abs(res.ColumnFrame.EX.Y) < 1-1e-9 {
		s.Warnf("column axis deviates from global Y; templates are laid out on the global axes")
	}

	// Line-element anchor nodes carried into the submodel; these become the
	// rigid link slaves.
	if res.BeamSlave, err = s.newNode(in.BeamAnchor); err != nil {
		return nil, err
	}
	if res.ColumnLowerSlave, err = s.newNode(in.ColumnLowerAnchor); err != nil {
		return nil, err
	}
	if res.ColumnUpperSlave, err = s.newNode(in.ColumnUpperAnchor); err != nil {
		return nil, err
	}

	// Mid-plane templates.
	beam, err := s.GenerateMidplane(in.BeamAnchor, Beam, in.Beam, StationBeam)
	if err != nil {
		return nil, err
	}
	colLower, err := s.GenerateMidplane(in.ColumnLowerAnchor, Column, in.Column, StationColumnLower)
	if err != nil {
		return nil, err
	}

	// Panel-zone boundaries: the column template replicated at the beam
	// flange mid-plane levels, plus the upper column station.
	yMin, yMax := groupExtent(beam, geom.AxisY)
	panelBottom, err := s.Replicate(colLower, geom.AxisY, yMin, StationBeamYMin)
	if err != nil {
		return nil, err
	}
	panelTop, err := s.Replicate(colLower, geom.AxisY, yMax, StationBeamYMax)
	if err != nil {
		return nil, err
	}
	colUpper, err := s.Replicate(colLower, geom.AxisY, in.ColumnUpperAnchor.Y, StationColumnUpper)
	if err != nil {
		return nil, err
	}

	// Beam template replicated at the nearest column flange mid-plane, so
	// the beam stub lands exactly on the column face.
	faceX := nearestWebEndX(colLower, in.BeamAnchor.X)
	beamAtFace, err := s.Replicate(beam, geom.AxisX, faceX, StationBeamAtFace)
	if err != nil {
		return nil, err
	}

	res.Stations = Stations{
		ColumnLower: colLower,
		PanelBottom: panelBottom,
		PanelTop:    panelTop,
		ColumnUpper: colUpper,
		Beam:        beam,
		BeamAtFace:  beamAtFace,
	}

	// Patch topology.
	res.Patches, err = s.BuildPanels(res.Stations, props)
	if err != nil {
		return nil, err
	}
	res.PatchIDs, err = s.EmitPatches(res.Patches)
	if err != nil {
		return nil, err
	}

	// Kinematic couplings back to the line-element anchors.
	res.Clusters, err = s.CoupleJoint(res.BeamSlave, res.ColumnLowerSlave, res.ColumnUpperSlave, in.CouplingTolerance)
	if err != nil {
		return nil, err
	}

	// Merge, face conversion and automesh at the notch-offset size.
	res.TargetSize = mesh.NotchOffset(props.Thicknesses())
	res.Mesh, err = mesh.Finalize(db, mesh.Options{
		MergeTolerance: in.MergeTolerance,
		TargetSize:     res.TargetSize,
	})
	if err != nil {
		return nil, err
	}

	res.Warnings = s.Warnings()
	return res, nil
}

// groupExtent returns the smallest and largest coordinate of a template's six
// nodes along the given axis.
func groupExtent(g *NodeGroup, axis geom.Axis) (min, max float64) {
	min = geom.Component(g.Point(Labels[0]), axis)
	max = min
	for _, l := range Labels[1:] {
		c := geom.Component(g.Point(l), axis)
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return min, max
}

// nearestWebEndX picks the column web endpoint plane closer to the beam.
func nearestWebEndX(col *NodeGroup, beamX float64) float64 {
	xBot := col.Point(WebBot).X
	xTop := col.Point(WebTop).X
	if math.Abs(xBot-beamX) < math.Abs(xTop-beamX) {
		return xBot
	}
	return xTop
}
