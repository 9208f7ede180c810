package joint

import (
	"errors"
	"math"

	"gojoint/internal/geom"
	"gojoint/internal/modeldb"
)

// DefaultCouplingTolerance is the coordinate-equality tolerance used when the
// caller does not configure one (model length units).
const DefaultCouplingTolerance = 1e-6

// CouplingPlane identifies the rigid plane a cluster's master set spans.
type CouplingPlane int

const (
	// PlaneNormalToMemberAxis couples a member end to the cross-section
	// plane cut normal to its own axis.
	PlaneNormalToMemberAxis CouplingPlane = iota
	// PlaneNormalToDepthAxis couples a column segment end to the horizontal
	// plane at a beam flange level.
	PlaneNormalToDepthAxis
)

func (p CouplingPlane) String() string {
	if p == PlaneNormalToDepthAxis {
		return "normal-to-depth-axis"
	}
	return "normal-to-member-axis"
}

// RigidLinkCluster couples a slave node's six degrees of freedom to a master
// set that moves with it as an undeformed rigid plane.
type RigidLinkCluster struct {
	Slave   int
	Masters []int
	Plane   CouplingPlane
}

// ClassifyCluster finds every node other than the slave whose coordinate on
// the given axis lies within tol of the slave's, and returns the rigid link
// cluster coupling the slave to that set.
//
// The scan is linear over the whole node population. That is fine at
// local-submodel scale; the population is tens to hundreds of nodes, not the
// global model.
func ClassifyCluster(db modeldb.Database, slave int, axis geom.Axis, tol float64, plane CouplingPlane) (*RigidLinkCluster, error) {
	slaveXYZ, err := db.NodeXYZ(slave)
	if err != nil {
		return nil, err
	}
	want := geom.Component(slaveXYZ, axis)

	total, err := db.Total(modeldb.KindNode)
	if err != nil {
		return nil, err
	}

	var masters []int
	for id := 1; id <= total; id++ {
		if id == slave {
			continue
		}
		xyz, err := db.NodeXYZ(id)
		if err != nil {
			// Sparse id after an upstream merge pass; nothing to couple here.
			continue
		}
		if math.Abs(geom.Component(xyz, axis)-want) <= tol {
			masters = append(masters, id)
		}
	}

	if len(masters) == 0 {
		return nil, &EmptyMasterSetError{Slave: slave, Axis: axis, Tolerance: tol}
	}
	return &RigidLinkCluster{Slave: slave, Masters: masters, Plane: plane}, nil
}

// CoupleJoint creates the three rigid link clusters of one joint: the beam
// end tied to the vertical plane sharing its axial coordinate, and each
// column segment end tied to the horizontal plane sharing its level.
//
// A cluster with no candidate masters is skipped with a warning; the other
// clusters are still created. Database failures are fatal.
func (s *Session) CoupleJoint(beamSlave, columnLowerSlave, columnUpperSlave int, tol float64) ([]RigidLinkCluster, error) {
	if tol <= 0 {
		tol = DefaultCouplingTolerance
	}

	specs := []struct {
		name  string
		slave int
		axis  geom.Axis
		plane CouplingPlane
	}{
		{"beam end", beamSlave, geom.AxisX, PlaneNormalToMemberAxis},
		{"lower column end", columnLowerSlave, geom.AxisY, PlaneNormalToDepthAxis},
		{"upper column end", columnUpperSlave, geom.AxisY, PlaneNormalToDepthAxis},
	}

	var clusters []RigidLinkCluster
	for _, spec := range specs {
		cluster, err := ClassifyCluster(s.db, spec.slave, spec.axis, tol, spec.plane)
		if err != nil {
			var empty *EmptyMasterSetError
			if errors.As(err, &empty) {
				s.Warnf("%s: %v; cluster skipped", spec.name, err)
				continue
			}
			return nil, err
		}
		if _, err := s.db.CreateRigidLink(cluster.Slave, cluster.Masters); err != nil {
			return nil, err
		}
		clusters = append(clusters, *cluster)
	}
	return clusters, nil
}
