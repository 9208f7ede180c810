package joint

// PlatePatch is a hand-authored quadrilateral surface patch bound to a plate
// property. Corner nodes are wound consistently so successive patches of one
// structural segment share an edge with matching node order.
type PlatePatch struct {
	Tag      string
	Property int
	Nodes    [4]int
}

// Stations collects the labeled node groups a joint's patch topology is built
// from. PanelBottom and PanelTop are the column template replicated at the
// beam flange levels; BeamAtFace is the beam template replicated at the
// nearest column flange mid-plane.
type Stations struct {
	ColumnLower *NodeGroup
	PanelBottom *NodeGroup
	PanelTop    *NodeGroup
	ColumnUpper *NodeGroup
	Beam        *NodeGroup
	BeamAtFace  *NodeGroup
}

// segment is one structural stretch between two bounding stations.
type segment struct {
	name            string
	a, b            *NodeGroup
	web, ftop, fbot int
}

// BuildPanels assembles the ordered list of quad patches covering the lower
// column, the panel zone, the upper column and the beam stub: one web patch
// and two flange patches per segment, each drawn from the segment's two
// bounding stations. When a gusset property is configured, four corner
// stiffener patches are appended at the panel-zone boundaries; otherwise they
// are omitted with a diagnostic.
//
// A missing expected label is fatal: it indicates an upstream generator bug.
// A patch whose four corners are not distinct is skipped with a warning
// instead of being emitted degenerate.
func (s *Session) BuildPanels(st Stations, props *PropertySet) ([]PlatePatch, error) {
	segments := []segment{
		{"column_lower", st.ColumnLower, st.PanelBottom,
			props.ColumnWeb, props.ColumnFlangeTop, props.ColumnFlangeBot},
		{"panel_zone", st.PanelBottom, st.PanelTop,
			props.PanelZone, props.ColumnFlangeTop, props.ColumnFlangeBot},
		{"column_upper", st.PanelTop, st.ColumnUpper,
			props.ColumnWeb, props.ColumnFlangeTop, props.ColumnFlangeBot},
		{"beam", st.BeamAtFace, st.Beam,
			props.BeamWeb, props.BeamFlangeTop, props.BeamFlangeBot},
	}

	var patches []PlatePatch
	for _, seg := range segments {
		segPatches, err := s.segmentPatches(seg)
		if err != nil {
			return nil, err
		}
		patches = append(patches, segPatches...)
	}

	if props.Gusset == 0 {
		s.Warnf("gusset property not configured: panel-zone corner stiffener patches omitted")
		return patches, nil
	}

	for _, g := range []*NodeGroup{st.PanelBottom, st.PanelTop} {
		left, err := s.stationQuad("column", g, [4]Label{BotLeft, WebBot, WebTop, TopLeft})
		if err != nil {
			return nil, err
		}
		right, err := s.stationQuad("column", g, [4]Label{WebBot, BotRight, TopRight, WebTop})
		if err != nil {
			return nil, err
		}
		tag := "gusset@" + string(g.Station)
		patches = s.appendPatch(patches, PlatePatch{Tag: tag + "/left", Property: props.Gusset, Nodes: left})
		patches = s.appendPatch(patches, PlatePatch{Tag: tag + "/right", Property: props.Gusset, Nodes: right})
	}

	return patches, nil
}

func (s *Session) segmentPatches(seg segment) ([]PlatePatch, error) {
	type strip struct {
		role     string
		property int
		labels   [2]Label // the two labels forming the strip edge at one station
	}
	strips := []strip{
		{"web", seg.web, [2]Label{WebBot, WebTop}},
		{"flange_top", seg.ftop, [2]Label{TopLeft, TopRight}},
		{"flange_bot", seg.fbot, [2]Label{BotLeft, BotRight}},
	}

	var out []PlatePatch
	for _, sp := range strips {
		a0, err := s.labeledID(seg.name, seg.a, sp.labels[0])
		if err != nil {
			return nil, err
		}
		b0, err := s.labeledID(seg.name, seg.b, sp.labels[0])
		if err != nil {
			return nil, err
		}
		b1, err := s.labeledID(seg.name, seg.b, sp.labels[1])
		if err != nil {
			return nil, err
		}
		a1, err := s.labeledID(seg.name, seg.a, sp.labels[1])
		if err != nil {
			return nil, err
		}
		out = s.appendPatch(out, PlatePatch{
			Tag:      seg.name + "/" + sp.role,
			Property: sp.property,
			Nodes:    [4]int{a0, b0, b1, a1},
		})
	}
	return out, nil
}

func (s *Session) stationQuad(member string, g *NodeGroup, labels [4]Label) ([4]int, error) {
	var nodes [4]int
	for i, l := range labels {
		id, err := s.labeledID(member, g, l)
		if err != nil {
			return nodes, err
		}
		nodes[i] = id
	}
	return nodes, nil
}

func (s *Session) labeledID(member string, g *NodeGroup, l Label) (int, error) {
	id, ok := g.ID(l)
	if !ok {
		st := Station("?")
		if g != nil {
			st = g.Station
		}
		return 0, &MissingGeometryError{Member: member, Station: st, Label: l}
	}
	return id, nil
}

// appendPatch appends p unless its corner nodes are not distinct, in which
// case the patch is skipped with a warning.
func (s *Session) appendPatch(patches []PlatePatch, p PlatePatch) []PlatePatch {
	for i, a := range p.Nodes {
		for j := 0; j < i; j++ {
			if p.Nodes[j] == a {
				s.Warnf("patch %s: corner node %d repeats, degenerate patch skipped", p.Tag, a)
				return patches
			}
		}
	}
	return append(patches, p)
}

// EmitPatches writes the patches to the model database in order and returns
// the created patch ids. Any database failure aborts the run.
func (s *Session) EmitPatches(patches []PlatePatch) ([]int, error) {
	ids := make([]int, 0, len(patches))
	for _, p := range patches {
		id, err := s.db.CreateQuadPatch(p.Nodes, p.Property)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
