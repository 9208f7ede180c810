package diagram

import (
	"fmt"
	"strings"

	"gojoint/internal/section"
)

// asciiWidth is the character width the widest flange is scaled to.
const asciiWidth = 36

// asciiWebRows is the number of rows drawn for the web.
const asciiWebRows = 8

// DrawASCIISection renders an elevation sketch of an I-section with its
// nominal dimensions annotated. Flange widths are drawn to relative scale so
// unsymmetric sections read correctly.
func DrawASCIISection(d section.Dimensions) string {
	var sb strings.Builder

	maxB := d.B1
	if d.B2 > maxB {
		maxB = d.B2
	}
	if maxB <= 0 {
		return ""
	}

	wTop := scaleWidth(d.B2, maxB)
	wBot := scaleWidth(d.B1, maxB)

	sb.WriteString("\n")
	writeFlange(&sb, wTop, fmt.Sprintf("tf2 = %.4g, B2 = %.4g", d.Tf2, d.B2))
	for i := 0; i < asciiWebRows; i++ {
		note := ""
		switch i {
		case asciiWebRows/2 - 1:
			note = fmt.Sprintf("D  = %.4g", d.D)
		case asciiWebRows / 2:
			note = fmt.Sprintf("tw = %.4g", d.Tw)
		}
		writeWebRow(&sb, note)
	}
	writeFlange(&sb, wBot, fmt.Sprintf("tf1 = %.4g, B1 = %.4g", d.Tf1, d.B1))
	sb.WriteString("\n")

	return sb.String()
}

func scaleWidth(b, maxB float64) int {
	w := int(b / maxB * asciiWidth)
	if w < 2 {
		w = 2
	}
	if w%2 != 0 {
		w++
	}
	return w
}

func writeFlange(sb *strings.Builder, w int, note string) {
	pad := (asciiWidth - w) / 2
	fmt.Fprintf(sb, "  %s%s%s   %s\n",
		strings.Repeat(" ", pad), strings.Repeat("=", w), strings.Repeat(" ", asciiWidth-w-pad), note)
}

func writeWebRow(sb *strings.Builder, note string) {
	half := asciiWidth / 2
	fmt.Fprintf(sb, "  %s||%s   %s\n",
		strings.Repeat(" ", half-1), strings.Repeat(" ", half-1), note)
}
