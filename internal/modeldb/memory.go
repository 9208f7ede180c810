package modeldb

import (
	"fmt"
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// maxFaceDivisions caps the structured grid generated for one face. A face
// that needs more divisions than this is meshed at the cap and counted as
// partially meshed.
const maxFaceDivisions = 200

// QuadPatch is a hand-authored 4-node surface element.
type QuadPatch struct {
	Nodes    [4]int
	Property int
}

// PlateProperty is a named plate thickness.
type PlateProperty struct {
	Name      string
	Thickness float64
}

// RigidLink ties a slave node's six degrees of freedom to a master node set.
type RigidLink struct {
	Slave   int
	Masters []int
}

type face struct {
	corners  [4]v3.Vec
	property int
}

type element struct {
	nodes    [4]int
	property int
}

// Memory is an in-process Database. It stands in for the external solver
// binding during synthesis runs without a solver attached and serves as the
// test double for the pipeline. It is not safe for concurrent use; like the
// external database it models, it is held exclusively by one session.
type Memory struct {
	nodes    map[int]v3.Vec
	patches  map[int]QuadPatch
	links    map[int]RigidLink
	props    map[int]PlateProperty
	faces    map[int]face
	elements map[int]element

	selPatches map[int]bool

	maxNode  int
	nextPch  int
	nextLink int
	nextProp int
	nextFace int
	nextElem int
}

// NewMemory returns an empty in-memory model database.
func NewMemory() *Memory {
	return &Memory{
		nodes:      make(map[int]v3.Vec),
		patches:    make(map[int]QuadPatch),
		links:      make(map[int]RigidLink),
		props:      make(map[int]PlateProperty),
		faces:      make(map[int]face),
		elements:   make(map[int]element),
		selPatches: make(map[int]bool),
		nextPch:    1,
		nextLink:   1,
		nextProp:   1,
		nextFace:   1,
		nextElem:   1,
	}
}

// PutNode inserts a point under the given id.
func (m *Memory) PutNode(id int, xyz v3.Vec) error {
	if id <= 0 {
		return &DatabaseError{Op: "PutNode", Err: fmt.Errorf("node id must be positive, got %d", id)}
	}
	if _, ok := m.nodes[id]; ok {
		return &DatabaseError{Op: "PutNode", Err: fmt.Errorf("node %d already exists", id)}
	}
	m.nodes[id] = xyz
	if id > m.maxNode {
		m.maxNode = id
	}
	return nil
}

// NodeXYZ reads back a node position.
func (m *Memory) NodeXYZ(id int) (v3.Vec, error) {
	p, ok := m.nodes[id]
	if !ok {
		return v3.Vec{}, &DatabaseError{Op: "NodeXYZ", Err: fmt.Errorf("node %d does not exist", id)}
	}
	return p, nil
}

// CreatePlateProperty registers a named thickness property. Registering an
// existing name updates its thickness and returns the existing number.
func (m *Memory) CreatePlateProperty(name string, thickness float64) (int, error) {
	if thickness <= 0 {
		return 0, &DatabaseError{Op: "CreatePlateProperty",
			Err: fmt.Errorf("property %q: thickness must be positive, got %g", name, thickness)}
	}
	for num, p := range m.props {
		if p.Name == name {
			m.props[num] = PlateProperty{Name: name, Thickness: thickness}
			return num, nil
		}
	}
	num := m.nextProp
	m.nextProp++
	m.props[num] = PlateProperty{Name: name, Thickness: thickness}
	return num, nil
}

// CreateQuadPatch inserts a 4-node surface element.
func (m *Memory) CreateQuadPatch(nodes [4]int, property int) (int, error) {
	for i, n := range nodes {
		if _, ok := m.nodes[n]; !ok {
			return 0, &DatabaseError{Op: "CreateQuadPatch",
				Err: fmt.Errorf("corner %d references missing node %d", i+1, n)}
		}
		for j := 0; j < i; j++ {
			if nodes[j] == n {
				return 0, &DatabaseError{Op: "CreateQuadPatch",
					Err: fmt.Errorf("corner nodes must be distinct, node %d repeats", n)}
			}
		}
	}
	if _, ok := m.props[property]; !ok {
		return 0, &DatabaseError{Op: "CreateQuadPatch",
			Err: fmt.Errorf("plate property %d does not exist", property)}
	}
	id := m.nextPch
	m.nextPch++
	m.patches[id] = QuadPatch{Nodes: nodes, Property: property}
	return id, nil
}

// CreateRigidLink inserts a rigid kinematic coupling.
func (m *Memory) CreateRigidLink(slave int, masters []int) (int, error) {
	if _, ok := m.nodes[slave]; !ok {
		return 0, &DatabaseError{Op: "CreateRigidLink", Err: fmt.Errorf("slave node %d does not exist", slave)}
	}
	if len(masters) == 0 {
		return 0, &DatabaseError{Op: "CreateRigidLink", Err: fmt.Errorf("master set is empty")}
	}
	for _, n := range masters {
		if n == slave {
			return 0, &DatabaseError{Op: "CreateRigidLink",
				Err: fmt.Errorf("slave node %d cannot appear in its own master set", slave)}
		}
		if _, ok := m.nodes[n]; !ok {
			return 0, &DatabaseError{Op: "CreateRigidLink", Err: fmt.Errorf("master node %d does not exist", n)}
		}
	}
	id := m.nextLink
	m.nextLink++
	cp := make([]int, len(masters))
	copy(cp, masters)
	m.links[id] = RigidLink{Slave: slave, Masters: cp}
	return id, nil
}

// Select marks entities as selected. Only patch selection is consumed by the
// meshing operations; ids nil selects the whole population.
func (m *Memory) Select(kind EntityKind, ids []int, state bool) error {
	if kind != KindPatch {
		return &DatabaseError{Op: "Select", Err: fmt.Errorf("selection of %s entities is not supported", kind)}
	}
	if ids == nil {
		for id := range m.patches {
			m.setPatchSelected(id, state)
		}
		return nil
	}
	for _, id := range ids {
		if _, ok := m.patches[id]; !ok {
			return &DatabaseError{Op: "Select", Err: fmt.Errorf("patch %d does not exist", id)}
		}
		m.setPatchSelected(id, state)
	}
	return nil
}

func (m *Memory) setPatchSelected(id int, state bool) {
	if state {
		m.selPatches[id] = true
	} else {
		delete(m.selPatches, id)
	}
}

// ConvertPatchesToFaces turns the selected patches into face descriptors.
func (m *Memory) ConvertPatchesToFaces(deleteSources bool) ([]int, error) {
	if len(m.selPatches) == 0 {
		return nil, &DatabaseError{Op: "ConvertPatchesToFaces", Err: fmt.Errorf("no patches selected")}
	}

	ids := make([]int, 0, len(m.selPatches))
	for id := range m.selPatches {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var created []int
	for _, id := range ids {
		p := m.patches[id]
		var f face
		f.property = p.Property
		for i, n := range p.Nodes {
			f.corners[i] = m.nodes[n]
		}
		fid := m.nextFace
		m.nextFace++
		m.faces[fid] = f
		created = append(created, fid)

		if deleteSources {
			delete(m.patches, id)
		}
		delete(m.selPatches, id)
	}
	return created, nil
}

// Automesh discretizes the given faces (nil means all) into structured quad
// grids at the absolute target element size.
func (m *Memory) Automesh(faceIDs []int, targetSize float64) (AutomeshResult, error) {
	if targetSize <= 0 {
		return AutomeshResult{}, &DatabaseError{Op: "Automesh",
			Err: fmt.Errorf("target size must be positive, got %g", targetSize)}
	}
	if faceIDs == nil {
		for id := range m.faces {
			faceIDs = append(faceIDs, id)
		}
		sort.Ints(faceIDs)
	}

	var res AutomeshResult
	for _, id := range faceIDs {
		f, ok := m.faces[id]
		if !ok {
			return res, &DatabaseError{Op: "Automesh", Err: fmt.Errorf("face %d does not exist", id)}
		}
		switch m.meshFace(f, targetSize) {
		case meshOK:
			res.Meshed++
		case meshPartial:
			res.Partial++
		default:
			res.Failed++
		}
	}
	return res, nil
}

type meshOutcome int

const (
	meshOK meshOutcome = iota
	meshPartial
	meshFailed
)

// meshFace lays a bilinear structured grid over one quad face.
func (m *Memory) meshFace(f face, target float64) meshOutcome {
	du := gridDivisions(f.corners[0], f.corners[1], f.corners[3], f.corners[2], target)
	dv := gridDivisions(f.corners[0], f.corners[3], f.corners[1], f.corners[2], target)
	if du == 0 || dv == 0 {
		return meshFailed
	}
	outcome := meshOK
	if du > maxFaceDivisions {
		du = maxFaceDivisions
		outcome = meshPartial
	}
	if dv > maxFaceDivisions {
		dv = maxFaceDivisions
		outcome = meshPartial
	}

	grid := make([][]int, du+1)
	for i := 0; i <= du; i++ {
		grid[i] = make([]int, dv+1)
		u := float64(i) / float64(du)
		for j := 0; j <= dv; j++ {
			v := float64(j) / float64(dv)
			p := bilinear(f.corners, u, v)
			m.maxNode++
			m.nodes[m.maxNode] = p
			grid[i][j] = m.maxNode
		}
	}
	for i := 0; i < du; i++ {
		for j := 0; j < dv; j++ {
			id := m.nextElem
			m.nextElem++
			m.elements[id] = element{
				nodes:    [4]int{grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1]},
				property: f.property,
			}
		}
	}
	return outcome
}

// gridDivisions sizes one grid direction from the mean of the two opposite
// edge lengths. Zero means the face is degenerate in that direction.
func gridDivisions(a0, a1, b0, b1 v3.Vec, target float64) int {
	mean := (a1.Sub(a0).Length() + b1.Sub(b0).Length()) / 2
	if mean <= 0 {
		return 0
	}
	n := int(math.Round(mean / target))
	if n < 1 {
		n = 1
	}
	return n
}

func bilinear(c [4]v3.Vec, u, v float64) v3.Vec {
	bottom := c[0].MulScalar(1 - u).Add(c[1].MulScalar(u))
	top := c[3].MulScalar(1 - u).Add(c[2].MulScalar(u))
	return bottom.MulScalar(1 - v).Add(top.MulScalar(v))
}

// InvalidateAndPurgeFaces deletes face descriptors (nil means all).
func (m *Memory) InvalidateAndPurgeFaces(faceIDs []int) error {
	if faceIDs == nil {
		m.faces = make(map[int]face)
		return nil
	}
	for _, id := range faceIDs {
		if _, ok := m.faces[id]; !ok {
			return &DatabaseError{Op: "InvalidateAndPurgeFaces", Err: fmt.Errorf("face %d does not exist", id)}
		}
		delete(m.faces, id)
	}
	return nil
}

// CleanMesh merges nodes closer than tol, rewrites all references to the
// surviving (lowest-id) node, drops patches left degenerate by the merge and
// renumbers nodes and patches densely.
func (m *Memory) CleanMesh(tol float64) (CleanStats, error) {
	if tol < 0 {
		return CleanStats{}, &DatabaseError{Op: "CleanMesh", Err: fmt.Errorf("tolerance must not be negative")}
	}

	ids := make([]int, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	// Pairwise scan is fine at local-submodel scale.
	alias := make(map[int]int)
	for i, a := range ids {
		if _, merged := alias[a]; merged {
			continue
		}
		for _, b := range ids[i+1:] {
			if _, merged := alias[b]; merged {
				continue
			}
			if m.nodes[a].Sub(m.nodes[b]).Length() <= tol {
				alias[b] = a
			}
		}
	}

	var stats CleanStats
	stats.NodesMerged = len(alias)
	for dup := range alias {
		delete(m.nodes, dup)
	}

	resolve := func(id int) int {
		if survivor, ok := alias[id]; ok {
			return survivor
		}
		return id
	}

	// Rewrite references, dropping patches that collapse.
	for id, p := range m.patches {
		for i := range p.Nodes {
			p.Nodes[i] = resolve(p.Nodes[i])
		}
		if distinctCount(p.Nodes) < 4 {
			delete(m.patches, id)
			delete(m.selPatches, id)
			stats.PatchesRemoved++
			continue
		}
		m.patches[id] = p
	}
	for id, e := range m.elements {
		for i := range e.nodes {
			e.nodes[i] = resolve(e.nodes[i])
		}
		m.elements[id] = e
	}
	for id, l := range m.links {
		l.Slave = resolve(l.Slave)
		seen := map[int]bool{l.Slave: true}
		masters := l.Masters[:0]
		for _, n := range l.Masters {
			n = resolve(n)
			if !seen[n] {
				seen[n] = true
				masters = append(masters, n)
			}
		}
		l.Masters = masters
		m.links[id] = l
	}

	m.renumber()
	return stats, nil
}

// renumber packs node and patch ids densely in ascending order.
func (m *Memory) renumber() {
	oldIDs := make([]int, 0, len(m.nodes))
	for id := range m.nodes {
		oldIDs = append(oldIDs, id)
	}
	sort.Ints(oldIDs)

	remap := make(map[int]int, len(oldIDs))
	packed := make(map[int]v3.Vec, len(oldIDs))
	for i, old := range oldIDs {
		remap[old] = i + 1
		packed[i+1] = m.nodes[old]
	}
	m.nodes = packed
	m.maxNode = len(oldIDs)

	for id, p := range m.patches {
		for i := range p.Nodes {
			p.Nodes[i] = remap[p.Nodes[i]]
		}
		m.patches[id] = p
	}
	for id, e := range m.elements {
		for i := range e.nodes {
			e.nodes[i] = remap[e.nodes[i]]
		}
		m.elements[id] = e
	}
	for id, l := range m.links {
		l.Slave = remap[l.Slave]
		for i := range l.Masters {
			l.Masters[i] = remap[l.Masters[i]]
		}
		m.links[id] = l
	}

	oldPatch := make([]int, 0, len(m.patches))
	for id := range m.patches {
		oldPatch = append(oldPatch, id)
	}
	sort.Ints(oldPatch)
	packedPatches := make(map[int]QuadPatch, len(oldPatch))
	sel := make(map[int]bool)
	for i, old := range oldPatch {
		packedPatches[i+1] = m.patches[old]
		if m.selPatches[old] {
			sel[i+1] = true
		}
	}
	m.patches = packedPatches
	m.selPatches = sel
	m.nextPch = len(oldPatch) + 1
}

func distinctCount(nodes [4]int) int {
	n := 0
	for i, a := range nodes {
		dup := false
		for j := 0; j < i; j++ {
			if nodes[j] == a {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

// Total returns the current size of an entity population.
func (m *Memory) Total(kind EntityKind) (int, error) {
	switch kind {
	case KindNode:
		return len(m.nodes), nil
	case KindPatch:
		return len(m.patches), nil
	case KindLink:
		return len(m.links), nil
	case KindFace:
		return len(m.faces), nil
	case KindProperty:
		return len(m.props), nil
	case KindElement:
		return len(m.elements), nil
	}
	return 0, &DatabaseError{Op: "Total", Err: fmt.Errorf("unknown entity kind %d", int(kind))}
}

// Patch reads back an authored patch, for reporting.
func (m *Memory) Patch(id int) (QuadPatch, bool) {
	p, ok := m.patches[id]
	return p, ok
}

// Link reads back a rigid link, for reporting.
func (m *Memory) Link(id int) (RigidLink, bool) {
	l, ok := m.links[id]
	return l, ok
}

// Property reads back a plate property, for reporting.
func (m *Memory) Property(num int) (PlateProperty, bool) {
	p, ok := m.props[num]
	return p, ok
}
