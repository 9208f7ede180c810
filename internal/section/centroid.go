package section

// CentroidOffsets computes the distances from the section's area centroid to
// the top and bottom extreme fibers.
//
// The section is treated as three rectangles (top flange, web, bottom flange)
// combined with the area-weighted centroid formula. For a doubly symmetric
// section both offsets equal D/2. A degenerate section with zero total area
// falls back to the symmetric answer instead of dividing by zero.
func (d Dimensions) CentroidOffsets() (top, bottom float64) {
	webDepth := d.D - d.Tf1 - d.Tf2

	aBot := d.B1 * d.Tf1
	aWeb := d.Tw * webDepth
	aTop := d.B2 * d.Tf2

	// Rectangle centroids measured from the bottom fiber.
	yBot := d.Tf1 / 2
	yWeb := d.Tf1 + webDepth/2
	yTop := d.D - d.Tf2/2

	total := aBot + aWeb + aTop
	if total <= 0 {
		return d.D / 2, d.D / 2
	}

	yc := (aBot*yBot + aWeb*yWeb + aTop*yTop) / total
	return d.D - yc, yc
}
