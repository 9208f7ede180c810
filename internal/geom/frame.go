package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// parallelLimit is the |cosine| above which two directions are treated as
// parallel when picking an orientation reference.
const parallelLimit = 0.95

// zeroLength guards divisions by near-zero vector norms (model length units).
const zeroLength = 1e-12

// Axis identifies one of the three global coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Component returns the component of p along the given global axis.
func Component(p v3.Vec, a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	}
	return p.Z
}

// WithComponent returns p with its component along the given axis replaced by v.
func WithComponent(p v3.Vec, a Axis, v float64) v3.Vec {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	}
	return p
}

// Shift returns p translated by d along the given axis.
func Shift(p v3.Vec, a Axis, d float64) v3.Vec {
	return WithComponent(p, a, Component(p, a)+d)
}

// DegenerateGeometryError reports an input from which no local frame can be
// built: a zero-length anchor segment or a normal hint parallel to the axis.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Reason
}

// LocalFrame is a right-handed orthonormal triad attached to a member.
// EX points along the member axis, EY is the transverse direction and EZ the
// out-of-plane direction.
type LocalFrame struct {
	EX v3.Vec
	EY v3.Vec
	EZ v3.Vec
}

// NewLocalFrame builds the local triad of the member running from p0 to p1.
//
// When hint is non-nil it is projected onto the plane orthogonal to the member
// axis and becomes EZ, so that the {EX, EZ} plane contains the hint. This is
// how a column's web plane is forced to contain the beam direction at a joint.
// When hint is nil a default up reference is used: global Z, or global X when
// the member itself is nearly vertical.
func NewLocalFrame(p0, p1 v3.Vec, hint *v3.Vec) (LocalFrame, error) {
	axis := p1.Sub(p0)
	if axis.Length() < zeroLength {
		return LocalFrame{}, &DegenerateGeometryError{
			Reason: fmt.Sprintf("anchor points coincide at (%g, %g, %g)", p0.X, p0.Y, p0.Z),
		}
	}
	ex := axis.Normalize()

	if hint != nil {
		// Remove the axial component of the hint; what is left spans EZ.
		proj := hint.Sub(ex.MulScalar(hint.Dot(ex)))
		if proj.Length() < zeroLength {
			return LocalFrame{}, &DegenerateGeometryError{
				Reason: "normal hint is parallel to the member axis",
			}
		}
		ez := proj.Normalize()
		ey := ez.Cross(ex).Normalize()
		return LocalFrame{EX: ex, EY: ey, EZ: ez}, nil
	}

	ref := v3.Vec{X: 0, Y: 0, Z: 1}
	if ex.Dot(ref) > parallelLimit || ex.Dot(ref) < -parallelLimit {
		ref = v3.Vec{X: 1, Y: 0, Z: 0}
	}
	ey := ref.Cross(ex).Normalize()
	ez := ex.Cross(ey).Normalize()
	return LocalFrame{EX: ex, EY: ey, EZ: ez}, nil
}
