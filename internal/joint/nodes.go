package joint

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"gojoint/internal/geom"
	"gojoint/internal/section"
)

// MemberKind selects the global axes a member's cross-section template is
// laid out on. Beams run along global X with their depth on Y; columns run
// along global Y with their depth on X. Both use Z for the flange width.
type MemberKind int

const (
	Beam MemberKind = iota
	Column
)

func (k MemberKind) String() string {
	if k == Column {
		return "column"
	}
	return "beam"
}

// DepthAxis returns the global axis carrying the section depth D.
func (k MemberKind) DepthAxis() geom.Axis {
	if k == Column {
		return geom.AxisX
	}
	return geom.AxisY
}

// WidthAxis returns the global axis carrying the flange widths.
func (k MemberKind) WidthAxis() geom.Axis {
	return geom.AxisZ
}

// GenerateMidplane creates the six canonical mid-plane nodes of an I-section
// at the given member centerline anchor and returns them as a labeled group.
//
// The anchor is the section centroid, so the web endpoints are placed using
// the true area-weighted centroid offsets; an unsymmetric section shifts them
// accordingly. Each web endpoint sits at the mid-plane of the adjacent
// flange, not at the section's outer skin. Every call allocates fresh node
// ids; templates are never shared between stations.
func (s *Session) GenerateMidplane(anchor v3.Vec, kind MemberKind, dims section.Dimensions, st Station) (*NodeGroup, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	top, bottom := dims.CentroidOffsets()
	depth := kind.DepthAxis()
	width := kind.WidthAxis()

	var pts [labelCount]v3.Vec
	pts[WebBot] = geom.Shift(anchor, depth, -(bottom - dims.Tf1/2))
	pts[WebTop] = geom.Shift(anchor, depth, top-dims.Tf2/2)
	pts[TopLeft] = geom.Shift(pts[WebTop], width, -dims.B2/2)
	pts[TopRight] = geom.Shift(pts[WebTop], width, dims.B2/2)
	pts[BotLeft] = geom.Shift(pts[WebBot], width, -dims.B1/2)
	pts[BotRight] = geom.Shift(pts[WebBot], width, dims.B1/2)

	return s.emitGroup(st, pts)
}

// Replicate copies an existing template to another station, overriding one
// coordinate with the target value and leaving the others untouched. It is
// used to produce the panel-zone boundary templates without recomputing the
// section geometry.
func (s *Session) Replicate(g *NodeGroup, axis geom.Axis, value float64, st Station) (*NodeGroup, error) {
	var pts [labelCount]v3.Vec
	for _, l := range Labels {
		pts[l] = geom.WithComponent(g.Point(l), axis, value)
	}
	return s.emitGroup(st, pts)
}

func (s *Session) emitGroup(st Station, pts [labelCount]v3.Vec) (*NodeGroup, error) {
	var ids [labelCount]int
	for _, l := range Labels {
		id, err := s.newNode(pts[l])
		if err != nil {
			return nil, err
		}
		ids[l] = id
	}
	return newNodeGroup(st, ids, pts)
}
