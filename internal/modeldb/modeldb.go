// Package modeldb defines the narrow boundary through which the joint
// synthesizer drives the finite-element model database, together with an
// in-process implementation used when no external solver is attached.
//
// The database is an exclusively-held resource for the duration of one
// synthesis run: a single logical session performs all creation calls and no
// interleaving of unrelated sessions is supported.
package modeldb

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// EntityKind selects an entity population for counting queries.
type EntityKind int

const (
	KindNode EntityKind = iota
	KindPatch
	KindLink
	KindFace
	KindProperty
	KindElement
)

func (k EntityKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindPatch:
		return "patch"
	case KindLink:
		return "link"
	case KindFace:
		return "face"
	case KindProperty:
		return "property"
	case KindElement:
		return "element"
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

// AutomeshResult counts the per-face outcomes of an automatic surface
// discretization pass. A non-zero Failed or Partial count is reported to the
// caller but is not fatal to the run.
type AutomeshResult struct {
	Meshed  int
	Partial int
	Failed  int
}

// CleanStats summarizes a mesh cleaning pass.
type CleanStats struct {
	NodesMerged    int
	PatchesRemoved int
}

// Database is the capability set the synthesizer needs from the model
// database. Every method maps onto one call of the external solver binding;
// any error is fatal to the enclosing synthesis run (no retry, no rollback).
type Database interface {
	// PutNode inserts a point under a caller-chosen id. Ids are allocated by
	// the synthesis session, seeded from Total(KindNode).
	PutNode(id int, xyz v3.Vec) error

	// NodeXYZ reads back the coordinates of a node.
	NodeXYZ(id int) (v3.Vec, error)

	// CreatePlateProperty registers a named thickness property and returns
	// its property number.
	CreatePlateProperty(name string, thickness float64) (int, error)

	// CreateQuadPatch inserts a 4-node surface element bound to a thickness
	// property and returns its id. All four nodes must already exist.
	CreateQuadPatch(nodes [4]int, property int) (int, error)

	// CreateRigidLink inserts a rigid kinematic coupling tying the slave's
	// six degrees of freedom to the master set.
	CreateRigidLink(slave int, masters []int) (int, error)

	// Select marks entities as selected (ids nil means all of that kind).
	// Downstream meshing operations act on the current selection.
	Select(kind EntityKind, ids []int, state bool) error

	// ConvertPatchesToFaces turns the selected quad patches into continuous
	// surface face descriptors, optionally deleting the sources.
	ConvertPatchesToFaces(deleteSources bool) ([]int, error)

	// Automesh requests uniform quadrilateral discretization of the given
	// faces (nil means all) at an absolute target element size.
	Automesh(faces []int, targetSize float64) (AutomeshResult, error)

	// InvalidateAndPurgeFaces removes superseded face descriptors after a
	// successful mesh pass, keeping only the generated elements.
	InvalidateAndPurgeFaces(faces []int) error

	// CleanMesh merges nodes closer than tol, rewrites references to the
	// surviving node, discards patches left with fewer than four distinct
	// nodes and renumbers the populations densely.
	CleanMesh(tol float64) (CleanStats, error)

	// Total returns the current size of an entity population.
	Total(kind EntityKind) (int, error)
}

// DatabaseError wraps a failed database call with the operation name. The
// synthesizer propagates it immediately; the in-progress local submodel must
// be discarded by the caller.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("model database: %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
