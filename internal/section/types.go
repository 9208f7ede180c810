package section

import "fmt"

// Dimensions describes an I-section by its nominal plate dimensions.
// The section is defined in a local coordinate system where:
// - the depth axis runs from the bottom flange to the top flange
// - flange 1 is the bottom flange, flange 2 the top flange
// Unsymmetric sections (B1 != B2, Tf1 != Tf2) are fully supported; nothing
// here assumes double symmetry.
type Dimensions struct {
	D   float64 `json:"d"`   // Overall depth (mm)
	B1  float64 `json:"b1"`  // Bottom flange width (mm)
	B2  float64 `json:"b2"`  // Top flange width (mm)
	Tw  float64 `json:"tw"`  // Web thickness (mm)
	Tf1 float64 `json:"tf1"` // Bottom flange thickness (mm)
	Tf2 float64 `json:"tf2"` // Top flange thickness (mm)
}

// Validate checks if the section definition is valid
func (d Dimensions) Validate() error {
	if d.Tf1 <= 0 || d.Tf2 <= 0 {
		return &ValidationError{"flange thicknesses must be positive"}
	}
	if d.D <= d.Tf1+d.Tf2 {
		return &ValidationError{msg: fmt.Sprintf(
			"depth D=%.4g must exceed the combined flange thickness %.4g", d.D, d.Tf1+d.Tf2)}
	}
	if d.B1 <= 0 || d.B2 <= 0 {
		return &ValidationError{"flange widths must be positive"}
	}
	if d.Tw <= 0 {
		return &ValidationError{"web thickness must be positive"}
	}
	return nil
}

// DoublySymmetric reports whether the two flanges are identical.
func (d Dimensions) DoublySymmetric() bool {
	return d.B1 == d.B2 && d.Tf1 == d.Tf2
}

// WebDepth returns the clear depth of the web between the flange inner faces.
func (d Dimensions) WebDepth() float64 {
	return d.D - d.Tf1 - d.Tf2
}

// Thicknesses returns the three plate thicknesses of the section
// (web, bottom flange, top flange).
func (d Dimensions) Thicknesses() []float64 {
	return []float64{d.Tw, d.Tf1, d.Tf2}
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
