// Package report renders synthesis results into engineer-facing deliverables:
// a PDF calculation report and an XLSX workbook of the generated entities.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"gojoint/internal/joint"
	"gojoint/internal/section"
)

// Meta carries the report header fields.
type Meta struct {
	Project string
	Author  string
}

// WriteSynthesisPDF writes a calculation report for one joint synthesis run.
func WriteSynthesisPDF(path string, beam, column section.Dimensions, res *joint.Result, meta Meta) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Joint Submodel Synthesis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeSectionBlock(pdf, "Beam section", beam)
	writeSectionBlock(pdf, "Column section", column)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Synthesis summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quad patches authored: %d", len(res.Patches)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Rigid link clusters: %d", len(res.Clusters)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Target element size (notch offset): %.4g mm", res.TargetSize))
	pdf.Ln(6)
	if res.Mesh != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Nodes merged: %d   Patches removed: %d   Faces: %d",
			res.Mesh.NodesMerged, res.Mesh.PatchesRemoved, res.Mesh.FacesCreated))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Automesh: %d meshed, %d partial, %d failed",
			res.Mesh.Meshed, res.Mesh.Partial, res.Mesh.Failed))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(res.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Diagnostics")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, w := range res.Warnings {
			pdf.MultiCell(0, 5, "- "+w, "", "L", false)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func writeSectionBlock(pdf *gofpdf.Fpdf, title string, d section.Dimensions) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("D = %.4g   B1 = %.4g   B2 = %.4g", d.D, d.B1, d.B2))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("tw = %.4g   tf1 = %.4g   tf2 = %.4g", d.Tw, d.Tf1, d.Tf2))
	pdf.Ln(10)
}
