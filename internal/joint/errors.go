package joint

import (
	"fmt"

	"gojoint/internal/geom"
)

// MissingGeometryError reports an expected labeled node absent when building
// patches. It indicates an upstream node-generation bug, never a recoverable
// input condition, so it aborts the enclosing joint's synthesis.
type MissingGeometryError struct {
	Member  string
	Station Station
	Label   Label
}

func (e *MissingGeometryError) Error() string {
	return fmt.Sprintf("joint geometry incomplete: %s has no %s node at station %s",
		e.Member, e.Label, e.Station)
}

// EmptyMasterSetError reports a kinematic coupling with no candidate master
// nodes within tolerance. The cluster is skipped with a warning; synthesis
// continues.
type EmptyMasterSetError struct {
	Slave     int
	Axis      geom.Axis
	Tolerance float64
}

func (e *EmptyMasterSetError) Error() string {
	return fmt.Sprintf("no master nodes within %g of slave %d on the %s axis",
		e.Tolerance, e.Slave, e.Axis)
}
