package modeldb

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func putNodes(t *testing.T, m *Memory, pts ...v3.Vec) {
	t.Helper()
	for i, p := range pts {
		if err := m.PutNode(i+1, p); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPutNodeValidation(t *testing.T) {
	m := NewMemory()

	if err := m.PutNode(0, v3.Vec{}); err == nil {
		t.Error("id 0 should be rejected")
	}
	if err := m.PutNode(3, v3.Vec{X: 1}); err != nil {
		t.Fatal(err)
	}
	if err := m.PutNode(3, v3.Vec{X: 2}); err == nil {
		t.Error("duplicate id should be rejected")
	}

	p, err := m.NodeXYZ(3)
	if err != nil || p.X != 1 {
		t.Errorf("NodeXYZ(3) = %+v, %v", p, err)
	}
	var dberr *DatabaseError
	if _, err := m.NodeXYZ(99); !errors.As(err, &dberr) {
		t.Errorf("missing node: want DatabaseError, got %v", err)
	}
}

func TestCreatePlatePropertyByName(t *testing.T) {
	m := NewMemory()

	a, err := m.CreatePlateProperty("t_web", 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.CreatePlateProperty("t_flange", 10)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("distinct names must get distinct numbers")
	}

	// Re-registering a name updates in place.
	c, err := m.CreatePlateProperty("t_web", 8)
	if err != nil {
		t.Fatal(err)
	}
	if c != a {
		t.Errorf("re-registration returned %d, want %d", c, a)
	}
	p, ok := m.Property(a)
	if !ok || p.Thickness != 8 {
		t.Errorf("property %d = %+v", a, p)
	}

	if _, err := m.CreatePlateProperty("bad", 0); err == nil {
		t.Error("zero thickness should be rejected")
	}
}

func TestCreateQuadPatchValidation(t *testing.T) {
	m := NewMemory()
	putNodes(t, m, v3.Vec{}, v3.Vec{X: 1}, v3.Vec{X: 1, Y: 1}, v3.Vec{Y: 1})
	prop, _ := m.CreatePlateProperty("t", 10)

	if _, err := m.CreateQuadPatch([4]int{1, 2, 3, 9}, prop); err == nil {
		t.Error("missing corner node should be rejected")
	}
	if _, err := m.CreateQuadPatch([4]int{1, 2, 2, 3}, prop); err == nil {
		t.Error("repeated corner node should be rejected")
	}
	if _, err := m.CreateQuadPatch([4]int{1, 2, 3, 4}, prop+1); err == nil {
		t.Error("missing property should be rejected")
	}
	id, err := m.CreateQuadPatch([4]int{1, 2, 3, 4}, prop)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("first patch id = %d, want 1", id)
	}
}

func TestCreateRigidLinkValidation(t *testing.T) {
	m := NewMemory()
	putNodes(t, m, v3.Vec{}, v3.Vec{X: 1}, v3.Vec{X: 2})

	if _, err := m.CreateRigidLink(1, nil); err == nil {
		t.Error("empty master set should be rejected")
	}
	if _, err := m.CreateRigidLink(1, []int{1, 2}); err == nil {
		t.Error("slave in master set should be rejected")
	}
	if _, err := m.CreateRigidLink(1, []int{2, 9}); err == nil {
		t.Error("missing master should be rejected")
	}

	id, err := m.CreateRigidLink(1, []int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	l, ok := m.Link(id)
	if !ok || l.Slave != 1 || len(l.Masters) != 2 {
		t.Errorf("link %d = %+v", id, l)
	}
}

func TestCleanMeshMergesAndRenumbers(t *testing.T) {
	m := NewMemory()
	// Nodes 2 and 5 coincide; node 6 is a lone slave coupled to the rest.
	putNodes(t, m,
		v3.Vec{X: 0, Y: 0},
		v3.Vec{X: 1, Y: 0},
		v3.Vec{X: 1, Y: 1},
		v3.Vec{X: 0, Y: 1},
		v3.Vec{X: 1, Y: 0},
		v3.Vec{X: 5, Y: 5},
	)
	prop, _ := m.CreatePlateProperty("t", 10)
	if _, err := m.CreateQuadPatch([4]int{1, 5, 3, 4}, prop); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateRigidLink(6, []int{2, 5, 3}); err != nil {
		t.Fatal(err)
	}

	stats, err := m.CleanMesh(1e-6)
	if err != nil {
		t.Fatalf("CleanMesh: %v", err)
	}
	if stats.NodesMerged != 1 {
		t.Errorf("NodesMerged = %d, want 1", stats.NodesMerged)
	}
	if stats.PatchesRemoved != 0 {
		t.Errorf("PatchesRemoved = %d, want 0", stats.PatchesRemoved)
	}

	total, _ := m.Total(KindNode)
	if total != 5 {
		t.Errorf("nodes after merge = %d, want 5", total)
	}
	// Dense ids: every patch and link reference must resolve.
	p, ok := m.Patch(1)
	if !ok {
		t.Fatal("patch 1 missing after renumber")
	}
	for _, n := range p.Nodes {
		if _, err := m.NodeXYZ(n); err != nil {
			t.Errorf("patch references dangling node %d", n)
		}
	}
	l, ok := m.Link(1)
	if !ok {
		t.Fatal("link 1 missing after renumber")
	}
	// Masters 2 and 5 merged; the duplicate must collapse.
	if len(l.Masters) != 2 {
		t.Errorf("masters after merge = %v, want 2 entries", l.Masters)
	}
}

func TestCleanMeshDropsCollapsedPatches(t *testing.T) {
	m := NewMemory()
	// Corners 2 and 3 coincide, so the patch degenerates after the merge.
	putNodes(t, m,
		v3.Vec{X: 0, Y: 0},
		v3.Vec{X: 1, Y: 0},
		v3.Vec{X: 1, Y: 1e-9},
		v3.Vec{X: 0, Y: 1},
	)
	prop, _ := m.CreatePlateProperty("t", 10)
	if _, err := m.CreateQuadPatch([4]int{1, 2, 3, 4}, prop); err != nil {
		t.Fatal(err)
	}

	stats, err := m.CleanMesh(1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if stats.PatchesRemoved != 1 {
		t.Errorf("PatchesRemoved = %d, want 1", stats.PatchesRemoved)
	}
	total, _ := m.Total(KindPatch)
	if total != 0 {
		t.Errorf("patches left = %d, want 0", total)
	}
}

func TestConvertAndAutomesh(t *testing.T) {
	m := NewMemory()
	putNodes(t, m, v3.Vec{X: 0, Y: 0}, v3.Vec{X: 2, Y: 0}, v3.Vec{X: 2, Y: 1}, v3.Vec{X: 0, Y: 1})
	prop, _ := m.CreatePlateProperty("t", 10)
	id, err := m.CreateQuadPatch([4]int{1, 2, 3, 4}, prop)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Select(KindPatch, []int{id}, true); err != nil {
		t.Fatal(err)
	}
	faces, err := m.ConvertPatchesToFaces(true)
	if err != nil {
		t.Fatalf("ConvertPatchesToFaces: %v", err)
	}
	if len(faces) != 1 {
		t.Fatalf("faces = %v, want one", faces)
	}
	if total, _ := m.Total(KindPatch); total != 0 {
		t.Errorf("source patch should be deleted, %d left", total)
	}

	// 2x1 face at size 0.5 meshes into a 4x2 grid.
	res, err := m.Automesh(faces, 0.5)
	if err != nil {
		t.Fatalf("Automesh: %v", err)
	}
	if res.Meshed != 1 || res.Partial != 0 || res.Failed != 0 {
		t.Errorf("result = %+v", res)
	}
	if elems, _ := m.Total(KindElement); elems != 8 {
		t.Errorf("elements = %d, want 8", elems)
	}

	if err := m.InvalidateAndPurgeFaces(faces); err != nil {
		t.Fatal(err)
	}
	if total, _ := m.Total(KindFace); total != 0 {
		t.Errorf("faces left = %d, want 0", total)
	}
}

func TestAutomeshDegenerateFace(t *testing.T) {
	m := NewMemory()
	// A zero-area sliver: corners 3 and 4 sit exactly on corners 2 and 1.
	putNodes(t, m, v3.Vec{X: 0}, v3.Vec{X: 1}, v3.Vec{X: 1}, v3.Vec{X: 0})

	// Corner nodes are distinct ids even though positions collapse.
	prop, _ := m.CreatePlateProperty("t", 10)
	if _, err := m.CreateQuadPatch([4]int{1, 2, 3, 4}, prop); err != nil {
		t.Fatal(err)
	}
	if err := m.Select(KindPatch, nil, true); err != nil {
		t.Fatal(err)
	}
	faces, err := m.ConvertPatchesToFaces(false)
	if err != nil {
		t.Fatal(err)
	}

	res, err := m.Automesh(faces, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Failed != 1 {
		t.Errorf("result = %+v, want one failed face", res)
	}
}

func TestAutomeshRejectsBadTarget(t *testing.T) {
	m := NewMemory()
	if _, err := m.Automesh(nil, 0); err == nil {
		t.Error("zero target size should be rejected")
	}
}

func TestSelectUnsupportedKind(t *testing.T) {
	m := NewMemory()
	if err := m.Select(KindNode, nil, true); err == nil {
		t.Error("node selection is not supported and should error")
	}
}
