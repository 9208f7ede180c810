package joint

import (
	"errors"
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"gojoint/internal/geom"
	"gojoint/internal/section"
)

var colDims = section.Dimensions{D: 350, B1: 175, B2: 175, Tw: 12, Tf1: 19, Tf2: 19}

// buildStations generates the six station templates of a joint at the
// origin, with the column on Y and the beam on X.
func buildStations(t *testing.T, s *Session) (Stations, *PropertySet) {
	t.Helper()

	props, err := CreateProperties(s.db, beamDims, colDims, s.Capabilities())
	if err != nil {
		t.Fatal(err)
	}

	var st Stations
	if st.ColumnLower, err = s.GenerateMidplane(v3.Vec{Y: -600}, Column, colDims, StationColumnLower); err != nil {
		t.Fatal(err)
	}
	if st.PanelBottom, err = s.Replicate(st.ColumnLower, geom.AxisY, -145, StationBeamYMin); err != nil {
		t.Fatal(err)
	}
	if st.PanelTop, err = s.Replicate(st.ColumnLower, geom.AxisY, 145, StationBeamYMax); err != nil {
		t.Fatal(err)
	}
	if st.ColumnUpper, err = s.Replicate(st.ColumnLower, geom.AxisY, 600, StationColumnUpper); err != nil {
		t.Fatal(err)
	}
	if st.Beam, err = s.GenerateMidplane(v3.Vec{X: 600}, Beam, beamDims, StationBeam); err != nil {
		t.Fatal(err)
	}
	if st.BeamAtFace, err = s.Replicate(st.Beam, geom.AxisX, 165.5, StationBeamAtFace); err != nil {
		t.Fatal(err)
	}
	return st, props
}

func TestBuildPanelsWithoutGussets(t *testing.T) {
	s, _ := testSession(t, Capabilities{})
	st, props := buildStations(t, s)

	patches, err := s.BuildPanels(st, props)
	if err != nil {
		t.Fatalf("BuildPanels: %v", err)
	}

	// Four segments, three strips each.
	if len(patches) != 12 {
		t.Fatalf("patch count = %d, want 12", len(patches))
	}

	// The panel zone web strip carries the panel property, its flanges the
	// column flange properties.
	byTag := map[string]PlatePatch{}
	for _, p := range patches {
		byTag[p.Tag] = p
	}
	if p := byTag["panel_zone/web"]; p.Property != props.PanelZone {
		t.Errorf("panel zone web on property %d, want %d", p.Property, props.PanelZone)
	}
	if p := byTag["column_lower/web"]; p.Property != props.ColumnWeb {
		t.Errorf("column web on property %d, want %d", p.Property, props.ColumnWeb)
	}
	if p := byTag["beam/web"]; p.Property != props.BeamWeb {
		t.Errorf("beam web on property %d, want %d", p.Property, props.BeamWeb)
	}

	// Corner nodes of every patch are distinct.
	for _, p := range patches {
		seen := map[int]bool{}
		for _, n := range p.Nodes {
			if seen[n] {
				t.Errorf("patch %s repeats node %d", p.Tag, n)
			}
			seen[n] = true
		}
	}

	// Gussets were skipped with a diagnostic, not silently.
	found := false
	for _, w := range s.Warnings() {
		if strings.Contains(w, "gusset") {
			found = true
		}
	}
	if !found {
		t.Error("expected a gusset-omitted diagnostic")
	}
}

func TestBuildPanelsWithGussets(t *testing.T) {
	s, _ := testSession(t, Capabilities{GussetThickness: 8})
	st, props := buildStations(t, s)

	patches, err := s.BuildPanels(st, props)
	if err != nil {
		t.Fatalf("BuildPanels: %v", err)
	}
	if len(patches) != 16 {
		t.Fatalf("patch count = %d, want 16 (12 strips + 4 gussets)", len(patches))
	}

	gussets := 0
	for _, p := range patches {
		if strings.HasPrefix(p.Tag, "gusset@") {
			gussets++
			if p.Property != props.Gusset {
				t.Errorf("gusset %s on property %d, want %d", p.Tag, p.Property, props.Gusset)
			}
		}
	}
	if gussets != 4 {
		t.Errorf("gusset patches = %d, want 4", gussets)
	}
}

func TestBuildPanelsSharedEdges(t *testing.T) {
	s, _ := testSession(t, Capabilities{})
	st, props := buildStations(t, s)

	patches, err := s.BuildPanels(st, props)
	if err != nil {
		t.Fatal(err)
	}
	byTag := map[string]PlatePatch{}
	for _, p := range patches {
		byTag[p.Tag] = p
	}

	// Adjacent column segments meet at the shared station's node pair:
	// the [b0, b1] edge of one is the [a0, a1] edge of the next.
	lower, panel := byTag["column_lower/web"], byTag["panel_zone/web"]
	if lower.Nodes[1] != panel.Nodes[0] || lower.Nodes[2] != panel.Nodes[3] {
		t.Errorf("web strips do not share the panel-bottom edge: %v vs %v", lower.Nodes, panel.Nodes)
	}
}

func TestBuildPanelsMissingStation(t *testing.T) {
	s, _ := testSession(t, Capabilities{})
	st, props := buildStations(t, s)
	st.PanelTop = nil

	_, err := s.BuildPanels(st, props)
	var missing *MissingGeometryError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingGeometryError, got %v", err)
	}
}

func TestEmitPatches(t *testing.T) {
	s, db := testSession(t, Capabilities{})
	st, props := buildStations(t, s)

	patches, err := s.BuildPanels(st, props)
	if err != nil {
		t.Fatal(err)
	}
	ids, err := s.EmitPatches(patches)
	if err != nil {
		t.Fatalf("EmitPatches: %v", err)
	}
	if len(ids) != len(patches) {
		t.Fatalf("emitted %d ids for %d patches", len(ids), len(patches))
	}
	for i, id := range ids {
		p, ok := db.Patch(id)
		if !ok {
			t.Fatalf("patch %d not in database", id)
		}
		if p.Nodes != patches[i].Nodes {
			t.Errorf("patch %d nodes %v, authored %v", id, p.Nodes, patches[i].Nodes)
		}
	}
}

func TestAppendPatchSkipsDegenerate(t *testing.T) {
	s, _ := testSession(t, Capabilities{})

	out := s.appendPatch(nil, PlatePatch{Tag: "x", Nodes: [4]int{1, 2, 2, 3}})
	if len(out) != 0 {
		t.Error("degenerate patch should be skipped")
	}
	if len(s.Warnings()) == 0 {
		t.Error("skipping a degenerate patch must leave a diagnostic")
	}
}
