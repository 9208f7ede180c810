package joint

import (
	"gojoint/internal/modeldb"
	"gojoint/internal/section"
)

// PropertySet maps the structural roles of the joint to plate property
// numbers in the model database. Gusset is zero when corner stiffeners are
// not configured.
type PropertySet struct {
	BeamWeb       int
	BeamFlangeTop int
	BeamFlangeBot int

	ColumnWeb       int
	ColumnFlangeTop int
	ColumnFlangeBot int

	PanelZone int
	Gusset    int

	thicknesses []float64
}

// CreateProperties registers one plate property per structural role with its
// real thickness. The panel-zone thickness defaults to the column web
// thickness when not configured; the gusset property is only created when a
// positive thickness is configured.
func CreateProperties(db modeldb.Database, beam, column section.Dimensions, caps Capabilities) (*PropertySet, error) {
	ps := &PropertySet{}

	create := func(name string, t float64) (int, error) {
		num, err := db.CreatePlateProperty(name, t)
		if err != nil {
			return 0, err
		}
		ps.thicknesses = append(ps.thicknesses, t)
		return num, nil
	}

	var err error
	if ps.BeamWeb, err = create("tw_beam", beam.Tw); err != nil {
		return nil, err
	}
	if ps.BeamFlangeBot, err = create("tf1_beam", beam.Tf1); err != nil {
		return nil, err
	}
	if ps.BeamFlangeTop, err = create("tf2_beam", beam.Tf2); err != nil {
		return nil, err
	}
	if ps.ColumnWeb, err = create("tw_column", column.Tw); err != nil {
		return nil, err
	}
	if ps.ColumnFlangeBot, err = create("tf1_column", column.Tf1); err != nil {
		return nil, err
	}
	if ps.ColumnFlangeTop, err = create("tf2_column", column.Tf2); err != nil {
		return nil, err
	}

	panelThk := caps.PanelThickness
	if panelThk <= 0 {
		panelThk = column.Tw
	}
	if ps.PanelZone, err = create("t_panel", panelThk); err != nil {
		return nil, err
	}

	if caps.GussetConfigured() {
		if ps.Gusset, err = create("t_gusset", caps.GussetThickness); err != nil {
			return nil, err
		}
	}

	return ps, nil
}

// Thicknesses returns the thicknesses of every configured plate property, in
// creation order. This feeds the notch-offset element sizing.
func (ps *PropertySet) Thicknesses() []float64 {
	out := make([]float64, len(ps.thicknesses))
	copy(out, ps.thicknesses)
	return out
}
