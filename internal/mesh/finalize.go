// Package mesh finalizes a hand-authored patch model into a discretized
// shell mesh: coincident nodes are merged, the quad patches become continuous
// surface faces, and the faces are auto-meshed at an element size derived
// from the weld notch offset.
package mesh

import (
	"gojoint/internal/modeldb"
)

// DefaultMergeTolerance is the node zip tolerance used when the caller does
// not configure one (model length units).
const DefaultMergeTolerance = 1e-5

// thicknessFloor filters numerically-zero thicknesses out of the notch
// offset formula.
const thicknessFloor = 1e-9

// NotchOffset computes the empirical distance from a weld toe used to size
// mesh elements away from stress singularities:
//
//	0.5*mean(t) + 1.5*max(t) + 0.7*min(t)
//
// over all positive plate thicknesses. Duplicates stay in the mean; a joint
// with many plates of one gauge is sized for that gauge. It returns 0 when
// no valid thickness is supplied.
func NotchOffset(thicknesses []float64) float64 {
	var valid []float64
	for _, t := range thicknesses {
		if t <= thicknessFloor {
			continue
		}
		valid = append(valid, t)
	}
	if len(valid) == 0 {
		return 0
	}

	tMax, tMin, sum := valid[0], valid[0], 0.0
	for _, t := range valid {
		if t > tMax {
			tMax = t
		}
		if t < tMin {
			tMin = t
		}
		sum += t
	}
	mean := sum / float64(len(valid))

	return 0.5*mean + 1.5*tMax + 0.7*tMin
}

// Options configures a finalization pass.
type Options struct {
	// MergeTolerance is the node zip distance; DefaultMergeTolerance when
	// zero or negative.
	MergeTolerance float64

	// TargetSize is the absolute element size for the automesh pass,
	// normally the notch offset of the configured plate thicknesses.
	TargetSize float64
}

// Summary reports what a finalization pass did. Partial and failed face
// counts are surfaced without aborting; the caller decides whether an
// incomplete local submodel is usable.
type Summary struct {
	NodesMerged    int
	PatchesRemoved int
	FacesCreated   int
	Meshed         int
	Partial        int
	Failed         int
}

// Finalize runs the finishing pipeline over the database: clean mesh, patch
// to face conversion (deleting the authored sources), uniform automesh at
// the target size, and purge of the superseded face descriptors. Database
// failures propagate immediately.
func Finalize(db modeldb.Database, opts Options) (*Summary, error) {
	tol := opts.MergeTolerance
	if tol <= 0 {
		tol = DefaultMergeTolerance
	}

	clean, err := db.CleanMesh(tol)
	if err != nil {
		return nil, err
	}

	if err := db.Select(modeldb.KindPatch, nil, true); err != nil {
		return nil, err
	}
	faces, err := db.ConvertPatchesToFaces(true)
	if err != nil {
		return nil, err
	}

	meshed, err := db.Automesh(faces, opts.TargetSize)
	if err != nil {
		return nil, err
	}

	if err := db.InvalidateAndPurgeFaces(faces); err != nil {
		return nil, err
	}

	return &Summary{
		NodesMerged:    clean.NodesMerged,
		PatchesRemoved: clean.PatchesRemoved,
		FacesCreated:   len(faces),
		Meshed:         meshed.Meshed,
		Partial:        meshed.Partial,
		Failed:         meshed.Failed,
	}, nil
}
