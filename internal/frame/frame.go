// Package frame generates the parametric 2-D steel frame the joint
// synthesizer takes its reference nodes from: two columns, one beam per
// floor, and intermediate nodes offset from every beam-column joint.
package frame

import (
	"fmt"
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Params describes a parametric portal frame.
type Params struct {
	StoryHeight float64 // story height (m)
	Span        float64 // beam span (m)
	Floors      int     // number of floors
	JointOffset float64 // distance of intermediate nodes from each joint (m)

	ColumnProperty int // beam property number assigned to columns
	BeamProperty   int // beam property number assigned to beams
}

// Validate checks the frame parameters.
func (p Params) Validate() error {
	if p.StoryHeight <= 0 {
		return fmt.Errorf("story height must be positive, got %g", p.StoryHeight)
	}
	if p.Span <= 0 {
		return fmt.Errorf("span must be positive, got %g", p.Span)
	}
	if p.Floors < 1 {
		return fmt.Errorf("at least one floor is required, got %d", p.Floors)
	}
	if p.JointOffset < 0 {
		return fmt.Errorf("joint offset must not be negative, got %g", p.JointOffset)
	}
	return nil
}

// Member is a 2-node line element.
type Member struct {
	N1, N2   int
	Property int
}

// Model is a generated line-element frame. Node ids are dense, starting at 1.
type Model struct {
	Nodes     []v3.Vec // Nodes[i] is node id i+1
	Members   []Member
	BaseNodes [2]int // the two supports at y=0
}

// NodeID returns the id of the node at (x, y), or 0 when no node is there.
func (m *Model) NodeID(x, y float64) int {
	for i, p := range m.Nodes {
		if coordKey(p.X) == coordKey(x) && coordKey(p.Y) == coordKey(y) {
			return i + 1
		}
	}
	return 0
}

// Generate builds the frame geometry: columns at x=0 and x=span continuous
// from the base to the top, beams at every floor level, and intermediate
// nodes at the joint offset on each member around the interior joints.
// Coincident nodes are deduplicated.
func Generate(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	height := float64(p.Floors) * p.StoryHeight

	// Beam node columns per floor level: the two joints plus the offset
	// nodes when the offset fits inside the span.
	beamXs := []float64{0, p.Span}
	if p.JointOffset > 0 && p.JointOffset < p.Span {
		beamXs = append(beamXs, p.JointOffset, p.Span-p.JointOffset)
	}
	beamXs = dedupSorted(beamXs)

	var beamLevels []float64
	for k := 1; k <= p.Floors; k++ {
		beamLevels = append(beamLevels, float64(k)*p.StoryHeight)
	}

	columnYs := func() []float64 {
		ys := []float64{0, height}
		for k := 1; k < p.Floors; k++ {
			yk := float64(k) * p.StoryHeight
			ys = append(ys, yk)
			if yk-p.JointOffset > 0 {
				ys = append(ys, yk-p.JointOffset)
			}
			if yk+p.JointOffset < height {
				ys = append(ys, yk+p.JointOffset)
			}
		}
		return dedupSorted(ys)
	}()

	m := &Model{}
	idOf := make(map[[2]int64]int)
	addNode := func(x, y float64) int {
		key := [2]int64{coordKey(x), coordKey(y)}
		if id, ok := idOf[key]; ok {
			return id
		}
		m.Nodes = append(m.Nodes, v3.Vec{X: x, Y: y})
		idOf[key] = len(m.Nodes)
		return len(m.Nodes)
	}

	for _, y := range beamLevels {
		for _, x := range beamXs {
			addNode(x, y)
		}
	}
	for _, x := range []float64{0, p.Span} {
		for _, y := range columnYs {
			addNode(x, y)
		}
	}

	// Beams: consecutive segments along each floor level.
	for _, y := range beamLevels {
		for i := 0; i+1 < len(beamXs); i++ {
			m.Members = append(m.Members, Member{
				N1:       addNode(beamXs[i], y),
				N2:       addNode(beamXs[i+1], y),
				Property: p.BeamProperty,
			})
		}
	}

	// Columns: consecutive segments up each column line.
	for _, x := range []float64{0, p.Span} {
		for i := 0; i+1 < len(columnYs); i++ {
			m.Members = append(m.Members, Member{
				N1:       addNode(x, columnYs[i]),
				N2:       addNode(x, columnYs[i+1]),
				Property: p.ColumnProperty,
			})
		}
	}

	m.BaseNodes = [2]int{addNode(0, 0), addNode(p.Span, 0)}
	return m, nil
}

// JointAnchors returns the three intermediate anchor points around the joint
// at the given floor and column line (0 = left, 1 = right): the beam-side
// node at the joint offset, and the column nodes one offset below and above.
func (p Params) JointAnchors(floor, side int) (beam, columnLower, columnUpper v3.Vec, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if floor < 1 || floor > p.Floors {
		err = fmt.Errorf("floor %d out of range 1..%d", floor, p.Floors)
		return
	}
	if side != 0 && side != 1 {
		err = fmt.Errorf("side must be 0 (left) or 1 (right), got %d", side)
		return
	}
	if p.JointOffset <= 0 || p.JointOffset >= p.Span {
		err = fmt.Errorf("joint offset %g does not place intermediate nodes inside the span %g",
			p.JointOffset, p.Span)
		return
	}

	x := 0.0
	dir := 1.0
	if side == 1 {
		x = p.Span
		dir = -1
	}
	y := float64(floor) * p.StoryHeight

	beam = v3.Vec{X: x + dir*p.JointOffset, Y: y}
	columnLower = v3.Vec{X: x, Y: y - p.JointOffset}
	columnUpper = v3.Vec{X: x, Y: y + p.JointOffset}
	return
}

// coordKey rounds a coordinate for stable deduplication.
func coordKey(v float64) int64 {
	return int64(math.Round(v * 1e9))
}

func dedupSorted(vals []float64) []float64 {
	sort.Float64s(vals)
	out := vals[:0]
	var last float64
	for i, v := range vals {
		if i > 0 && coordKey(v) == coordKey(last) {
			continue
		}
		out = append(out, v)
		last = v
	}
	return out
}
